package tw_test

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/vango-dev/vango-ui/pkg/tw"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestCN(t *testing.T) {
	tests := []struct {
		name     string
		sources  []any
		expected string
	}{
		{"no conflicts keeps order", []any{[]string{"flex", "p-1"}, "bg-purple"}, "flex p-1 bg-purple"},
		{"rightmost wins", []any{"px-3", "px-4"}, "px-4"},
		{"falsy sources skipped", []any{"flex", false, nil, "gap-2"}, "flex gap-2"},
		{"empty input", nil, ""},
		{"only falsy", []any{nil, false, ""}, ""},
		{"conditional included", []any{"flex", tw.If(true, "hidden")}, "hidden"},
		{"conditional omitted", []any{"flex", tw.If(false, "hidden")}, "flex"},
		{"nested slices", []any{[]any{"p-2", []any{"m-1", nil}}, "p-4"}, "m-1 p-4"},
		{"map sources", []any{map[string]bool{"underline": true, "italic": false, "font-bold": true}}, "font-bold underline"},
		{"unknown tokens pass through", []any{"card", "foo", "card"}, "card foo card"},
		{"whitespace normalised", []any{"  flex\n\tgap-2  "}, "flex gap-2"},
		{"unsupported types ignored", []any{"flex", 42, struct{}{}}, "flex"},
		{"nil stringer pointers skipped", []any{"flex", (*strings.Builder)(nil), (*bytes.Buffer)(nil), "gap-2"}, "flex gap-2"},
		{"non-nil stringer included", []any{"flex", bytes.NewBufferString("hidden")}, "hidden"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tw.CN(tt.sources...))
		})
	}
}

func TestMergeConflicts(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"background colour", "bg-red-500 bg-primary", "bg-primary"},
		{"opacity modifier", "bg-primary hover:bg-primary/90 hover:bg-accent", "bg-primary hover:bg-accent"},
		{"font size vs colour", "text-sm text-red-500 text-lg", "text-red-500 text-lg"},
		{"text colour vs align", "text-left text-primary text-center", "text-primary text-center"},
		{"padding shorthand clears axis", "px-2 py-1 p-4", "p-4"},
		{"axis after shorthand kept", "p-4 px-2", "p-4 px-2"},
		{"side after axis kept", "px-4 pl-2", "px-4 pl-2"},
		{"axis clears side", "pl-2 px-4", "px-4"},
		{"margin negative", "mt-2 -mt-4", "-mt-4"},
		{"modifiers scope conflicts", "p-2 hover:p-4 p-3", "hover:p-4 p-3"},
		{"modifier order ignored", "hover:focus:bg-red-500 focus:hover:bg-blue-500", "focus:hover:bg-blue-500"},
		{"important scoped separately", "!p-2 p-4 !p-3", "p-4 !p-3"},
		{"trailing important", "p-2! p-3!", "p-3!"},
		{"display", "flex block hidden", "hidden"},
		{"position", "relative absolute", "absolute"},
		{"border width vs colour", "border border-input border-2 border-red-500", "border-2 border-red-500"},
		{"border side width", "border-t border-t-4", "border-t-4"},
		{"border clears sides", "border-t-2 border-4", "border-4"},
		{"ring width vs colour", "ring-2 ring-ring ring-4 ring-offset-2 ring-offset-background", "ring-ring ring-4 ring-offset-2 ring-offset-background"},
		{"shadow size vs colour", "shadow-sm shadow-lg shadow-red-500", "shadow-lg shadow-red-500"},
		{"rounded clears corners", "rounded-tl-lg rounded-md", "rounded-md"},
		{"rounded corner kept after", "rounded-md rounded-t-none", "rounded-md rounded-t-none"},
		{"size clears width and height", "w-4 h-4 size-8", "size-8"},
		{"arbitrary values", "w-[350px] w-full", "w-full"},
		{"arbitrary length font size", "text-sm text-[14px]", "text-[14px]"},
		{"arbitrary colour text", "text-white text-[#333]", "text-[#333]"},
		{"arbitrary property", "[mask-type:luminance] [mask-type:alpha]", "[mask-type:alpha]"},
		{"data variants", "data-[state=open]:fade-in-0 data-[state=open]:fade-in-50", "data-[state=open]:fade-in-50"},
		{"flex direction vs flex", "flex-col flex-row flex-1 flex-auto", "flex-row flex-auto"},
		{"font weight vs family", "font-medium font-mono font-bold", "font-mono font-bold"},
		{"outline style vs width", "outline-none outline-2 outline-dashed", "outline-2 outline-dashed"},
		{"translate arbitrary negative", "translate-x-[-50%] translate-x-0", "translate-x-0"},
		{"gap clears axes", "gap-x-2 gap-y-4 gap-6", "gap-6"},
		{"inset clears sides", "top-0 left-2 inset-4", "inset-4"},
		{"group and peer untouched", "group peer group", "group peer group"},
		{"custom class sharing padding prefix", "px-4 py-2 p-card", "px-4 py-2 p-card"},
		{"custom class sharing inset prefix", "top-0 top-nav", "top-0 top-nav"},
		{"custom class sharing order prefix", "order-1 order-summary", "order-1 order-summary"},
		{"order keyword", "order-1 order-last", "order-last"},
		{"arbitrary shadow", "shadow-sm shadow-[0_0_0_1px_red]", "shadow-[0_0_0_1px_red]"},
		{"max width keywords", "max-w-sm max-w-prose", "max-w-prose"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tw.Default.Merge(tt.input))
		})
	}
}

func TestMergeIsIdempotent(t *testing.T) {
	pairs := [][2]string{
		{"inline-flex h-10 px-4 py-2 bg-primary", "px-10 bg-accent"},
		{"p-4 px-2", "pl-1"},
		{"text-sm text-muted-foreground", "hover:text-foreground md:text-base"},
		{"border rounded-lg", "rounded-t-none border-0"},
	}
	for _, p := range pairs {
		once := tw.CN(p[0], p[1])
		assert.Equal(t, once, tw.CN(once), "merging %q twice", p)
	}
}

func TestFamily(t *testing.T) {
	tests := []struct {
		class  string
		family tw.FamilyID
		ok     bool
	}{
		{"px-4", "px", true},
		{"hover:bg-primary/90", "bg-color", true},
		{"text-2xl", "font-size", true},
		{"text-sm/6", "font-size", true},
		{"text-base", "font-size", true},
		{"text-primary-foreground", "text-color", true},
		{"text-center", "text-align", true},
		{"rounded-tl-lg", "rounded-tl", true},
		{"rounded-lg", "rounded", true},
		{"border-t-2", "border-w-t", true},
		{"border-t-red-500", "border-color-t", true},
		{"border-[3px]", "border-w", true},
		{"border-[#ccc]", "border-color", true},
		{"ring-offset-background", "ring-offset-color", true},
		{"-mt-2", "mt", true},
		{"!font-bold", "font-weight", true},
		{"bg-gradient-to-r", "bg-image", true},
		{"animate-spin", "animate", true},
		{"sr-only", "sr", true},
		{"my-widget", "", false},
		{"p-card", "", false},
		{"top-nav", "", false},
		{"order-summary", "", false},
		{"z-modal", "", false},
		{"w-[var(--trigger-width)]", "w", true},
		{"max-w-prose", "max-w", true},
		{"max-w-screen-md", "max-w", true},
		{"order-last", "order", true},
		{"z-auto", "z", true},
		{"inset-x-0", "inset-x", true},
		{"shadow-[0_0_0_1px_red]", "shadow", true},
		{"shadow-[inset_0_2px_4px_rgba(0,0,0,0.05)]", "shadow", true},
		{"shadow-primary/20", "shadow-color", true},
		{"widget", "", false},
		{"", "", false},
		{"hover:", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.class, func(t *testing.T) {
			family, ok := tw.Default.Family(tt.class)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.family, family)
		})
	}
}

func TestKey(t *testing.T) {
	a, ok := tw.Default.Key("hover:md:px-2")
	require.True(t, ok)
	b, ok := tw.Default.Key("md:hover:px-8")
	require.True(t, ok)
	assert.Equal(t, a, b)

	c, ok := tw.Default.Key("md:hover:!px-8")
	require.True(t, ok)
	assert.NotEqual(t, a, c)

	_, ok = tw.Default.Key("peer")
	assert.False(t, ok)
}

func TestJoin(t *testing.T) {
	assert.Equal(t, "px-2 px-4 flex", tw.Join("px-2", nil, []string{"px-4", ""}, "  flex "))
}

func TestFromContext(t *testing.T) {
	assert.Same(t, tw.Default, tw.FromContext(context.Background()))

	custom := tw.New(tw.Config{})
	ctx := tw.WithResolver(context.Background(), custom)
	assert.Same(t, custom, tw.FromContext(ctx))

	// An empty table recognises nothing, so nothing collides.
	assert.Equal(t, "px-2 px-4", custom.Merge("px-2 px-4"))
}

func TestConcurrentResolution(t *testing.T) {
	const workers = 16
	want := tw.CN("inline-flex h-10 px-4 py-2", "bg-primary text-primary-foreground", "px-10")

	var wg sync.WaitGroup
	results := make([]string, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				results[i] = tw.CN("inline-flex h-10 px-4 py-2", "bg-primary text-primary-foreground", "px-10")
			}
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}
	assert.True(t, strings.HasSuffix(want, "px-10"))
	assert.NotContains(t, want, "px-4")
}
