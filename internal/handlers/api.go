package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vango-dev/vango-ui/app/components/ui"
	"github.com/vango-dev/vango-ui/pkg/tw"
	"github.com/vango-dev/vango-ui/pkg/variants"
)

type mergeResponse struct {
	Classes string `json:"classes"`
}

// Merge resolves the classes query parameters, in order, with the resolver
// of the request context.
func (h *Handlers) Merge(w http.ResponseWriter, r *http.Request) {
	lists := r.URL.Query()["classes"]
	h.writeJSON(w, http.StatusOK, mergeResponse{
		Classes: tw.FromContext(r.Context()).Merge(lists...),
	})
}

type variantTableResponse struct {
	Component string              `json:"component"`
	Base      string              `json:"base"`
	Axes      []variants.AxisInfo `json:"axes"`
}

// VariantTables lists the components that have a variant table.
func (h *Handlers) VariantTables(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string][]string{"components": ui.VariantTableNames()})
}

// VariantTable describes one component's variant table.
func (h *Handlers) VariantTable(w http.ResponseWriter, r *http.Request) {
	component := chi.URLParam(r, "component")
	table, ok := ui.VariantTable(component)
	if !ok {
		h.writeJSON(w, http.StatusNotFound, errorResponse{Error: "unknown component " + component})
		return
	}
	h.writeJSON(w, http.StatusOK, variantTableResponse{
		Component: component,
		Base:      table.Base(),
		Axes:      table.Describe(),
	})
}
