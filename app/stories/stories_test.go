package stories

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/vango-dev/vango-ui/app/components/ui"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var b bytes.Buffer
	require.NoError(t, c.Render(context.Background(), &b))
	return b.String()
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	text := func() templ.Component { return ui.Text("x") }

	require.NoError(t, r.Register(Story{Group: "button", Name: "a", Render: text}))
	require.NoError(t, r.Register(Story{Group: "badge", Name: "a", Render: text}))
	require.NoError(t, r.Register(Story{Group: "button", Name: "b", Render: text}))

	err := r.Register(Story{Group: "button", Name: "a", Render: text})
	assert.ErrorContains(t, err, "already registered")
	assert.ErrorIs(t, r.Register(Story{Group: "button", Render: text}), ErrSlugEmpty)
	assert.Error(t, r.Register(Story{Group: "button", Name: "c"}))

	assert.Equal(t, []string{"button", "badge"}, r.Groups())
	assert.Len(t, r.All(), 3)
	assert.Len(t, r.InGroup("button"), 2)

	s, err := r.Get("button", "b")
	require.NoError(t, err)
	assert.Equal(t, "button/b", s.ID())
	assert.Equal(t, "/stories/button/b", s.Path())

	_, err = r.Get("button", "missing")
	assert.ErrorIs(t, err, ErrStoryNotFound)
}

func TestRegisterValidatesSlugs(t *testing.T) {
	text := func() templ.Component { return ui.Text("x") }
	tests := []struct {
		group, name string
		wantErr     error
	}{
		{"button", "sizes", nil},
		{"icon-button", "x", nil},
		{"dropdown-menu", "v2", nil},
		{"Button", "sizes", ErrSlugInvalidChars},
		{"button", "two words", ErrSlugInvalidChars},
		{"button", "trailing-", ErrSlugInvalidChars},
		{"button", "1st", ErrSlugInvalidChars},
		{"button", "a--b", ErrSlugConsecutiveHyphens},
		{strings.Repeat("a", 64), "x", ErrSlugTooLong},
		{"", "x", ErrSlugEmpty},
	}

	for _, tt := range tests {
		t.Run(tt.group+"/"+tt.name, func(t *testing.T) {
			err := NewRegistry().Register(Story{Group: tt.group, Name: tt.name, Render: text})
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDefaultStoriesRender(t *testing.T) {
	all := Default().All()
	require.NotEmpty(t, all)

	for _, s := range all {
		t.Run(s.ID(), func(t *testing.T) {
			out := render(t, s.Render())
			assert.NotEmpty(t, out)
			_, err := html.Parse(strings.NewReader(out))
			assert.NoError(t, err)
		})
	}
}

func TestDefaultCoversComponents(t *testing.T) {
	groups := Default().Groups()
	for _, want := range []string{"button", "icon-button", "badge", "form", "card", "accordion", "popover", "tooltip", "dropdown-menu", "avatar", "feedback", "dialog"} {
		assert.Contains(t, groups, want)
	}
}

func TestButtonVariantsStoryUsesTable(t *testing.T) {
	s, err := Default().Get("button", "variants")
	require.NoError(t, err)
	out := render(t, s.Render())

	for _, v := range axisValues("button", "variant") {
		assert.Contains(t, out, `data-variant="`+v+`"`)
	}
}

func TestOverrideStory(t *testing.T) {
	s, err := Default().Get("button", "override")
	require.NoError(t, err)
	out := render(t, s.Render())

	assert.Contains(t, out, "px-10")
	assert.NotContains(t, out, "px-4")
	assert.Contains(t, out, "bg-primary")
}

func TestPage(t *testing.T) {
	out := render(t, Page("Buttons", ui.Button(ui.Content[*ui.ButtonConfig]("Hi"))))

	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Contains(t, out, "<title>Buttons</title>")
	assert.Contains(t, out, `src="https://cdn.tailwindcss.com"`)
	assert.Contains(t, out, "tailwind.config = {")
	assert.Contains(t, out, ">Hi</button>")
}

func TestAxisValuesUnknown(t *testing.T) {
	assert.Nil(t, axisValues("kanban", "variant"))
	assert.Nil(t, axisValues("button", "tone"))
}
