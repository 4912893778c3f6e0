package handlers

import (
	"errors"
	"net/http"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"

	"github.com/vango-dev/vango-ui/app/components/ui"
	"github.com/vango-dev/vango-ui/app/stories"
)

// Index lists every story by group.
func (h *Handlers) Index(w http.ResponseWriter, r *http.Request) {
	body := ui.El("div").WithClass("space-y-6")
	heading := ui.El("h1", ui.Text("Components")).WithClass("text-3xl font-bold tracking-tight")
	if h.config != nil && !h.config.IsProduction() {
		heading.Append(ui.Badge(
			ui.WithBadgeVariant(ui.BadgeVariantSecondary),
			ui.Class[*ui.BadgeConfig]("ml-3 align-middle"),
			ui.Content[*ui.BadgeConfig](h.config.Environment),
		))
	}
	body.Append(heading)

	for _, group := range h.stories.Groups() {
		list := ui.El("ul").WithClass("space-y-1")
		for _, s := range h.stories.InGroup(group) {
			list.Append(ui.El("li",
				ui.El("a", ui.Text(s.Name)).
					WithClass("font-medium text-primary underline-offset-4 hover:underline").
					Set("href", s.Path()),
				ui.El("span", ui.Text(s.Description)).WithClass("ml-2 text-sm text-muted-foreground"),
			))
		}
		body.Append(ui.Card(ui.Child[*ui.CardConfig](
			ui.CardHeader(ui.Child[*ui.CardHeaderConfig](
				ui.CardTitle(ui.Content[*ui.CardTitleConfig](group)),
			)),
			ui.CardContent(ui.Child[*ui.CardContentConfig](list)),
		)))
	}

	h.render(w, r, http.StatusOK, stories.Page("Stories", body))
}

// Story renders a single story on its own page.
func (h *Handlers) Story(w http.ResponseWriter, r *http.Request) {
	group, name := chi.URLParam(r, "group"), chi.URLParam(r, "name")

	s, err := h.stories.Get(group, name)
	if errors.Is(err, stories.ErrStoryNotFound) {
		h.render(w, r, http.StatusNotFound, stories.Page("Not found", notFound(group+"/"+name)))
		return
	}
	if err != nil {
		h.logger.Error(err, "lookup story")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	body := ui.El("div",
		ui.El("a", ui.Text("All stories")).WithClass("text-sm text-muted-foreground hover:underline").Set("href", "/"),
		ui.El("h1", ui.Text(s.ID())).WithClass("mt-2 text-2xl font-semibold"),
		ui.El("p", ui.Text(s.Description)).WithClass("mb-8 text-muted-foreground"),
		ui.El("section", s.Render()).Set("data-story", s.ID()),
	)
	h.render(w, r, http.StatusOK, stories.Page(s.ID(), body))
}

func notFound(id string) templ.Component {
	return ui.El("div",
		ui.El("h1", ui.Text("Story not found")).WithClass("text-2xl font-semibold"),
		ui.El("p", ui.Text("No story is registered as "+id+".")).WithClass("text-muted-foreground"),
		ui.El("a", ui.Text("All stories")).WithClass("text-primary hover:underline").Set("href", "/"),
	).WithClass("space-y-2")
}
