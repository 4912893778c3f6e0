package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vango-dev/vango-ui/app/components/ui"
	"github.com/vango-dev/vango-ui/app/stories"
	"github.com/vango-dev/vango-ui/internal/config"
	"github.com/vango-dev/vango-ui/internal/handlers"
	"github.com/vango-dev/vango-ui/internal/logger"
	"github.com/vango-dev/vango-ui/internal/middleware"
	"github.com/vango-dev/vango-ui/pkg/tw"
)

// testConfig creates a minimal config for testing
func testConfig() *config.Config {
	return &config.Config{
		Port:        "8080",
		BaseURL:     "http://localhost:8080",
		Environment: "development",
		LogLevel:    "error",
	}
}

func testRegistry(t *testing.T) *stories.Registry {
	t.Helper()
	r := stories.NewRegistry()
	r.MustRegister(
		stories.Story{
			Group:       "button",
			Name:        "wide",
			Description: "A wide primary button.",
			Render: func() templ.Component {
				return ui.Button(ui.Variant(ui.ButtonVariantPrimary), ui.Class[*ui.ButtonConfig]("px-10"), ui.Content[*ui.ButtonConfig]("Wide"))
			},
		},
		stories.Story{
			Group: "badge",
			Name:  "default",
			Render: func() templ.Component {
				return ui.Badge(ui.Content[*ui.BadgeConfig]("New"))
			},
		},
	)
	return r
}

// testRouter mounts the handlers without the request logger.
func testRouter(t *testing.T, resolver *tw.Resolver) http.Handler {
	t.Helper()

	h := handlers.New(testConfig(), testRegistry(t), logger.Nop())

	r := chi.NewRouter()
	r.Use(middleware.Resolver(resolver))
	r.Get("/", h.Index)
	r.Get("/health", h.Health)
	r.Get("/stories/{group}/{name}", h.Story)
	r.Get("/api/merge", h.Merge)
	r.Get("/api/variants", h.VariantTables)
	r.Get("/api/variants/{component}", h.VariantTable)
	return r
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	w := get(t, testRouter(t, tw.Default), "/health")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())
}

func TestIndex(t *testing.T) {
	w := get(t, testRouter(t, tw.Default), "/")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")

	body := w.Body.String()
	for _, s := range []string{"<!DOCTYPE html>", "Components", "development", `href="/stories/button/wide"`, "A wide primary button.", `href="/stories/badge/default"`} {
		assert.Contains(t, body, s)
	}
}

func TestStory(t *testing.T) {
	w := get(t, testRouter(t, tw.Default), "/stories/button/wide")

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `data-story="button/wide"`)
	assert.Contains(t, body, "px-10")
	assert.NotContains(t, body, "px-4")
	assert.Contains(t, body, ">Wide</button>")
}

func TestStoryUsesRequestResolver(t *testing.T) {
	w := get(t, testRouter(t, tw.New(tw.Config{})), "/stories/button/wide")

	require.Equal(t, http.StatusOK, w.Code)
	// Without conflict families nothing is dropped.
	assert.Contains(t, w.Body.String(), "px-4")
}

func TestStoryNotFound(t *testing.T) {
	w := get(t, testRouter(t, tw.Default), "/stories/button/missing")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "No story is registered as button/missing.")
}

func TestMerge(t *testing.T) {
	tests := []struct {
		name     string
		query    url.Values
		expected string
	}{
		{"single list", url.Values{"classes": {"px-3 px-4"}}, "px-4"},
		{"lists in order", url.Values{"classes": {"flex p-1", "bg-purple p-2"}}, "flex bg-purple p-2"},
		{"no classes", url.Values{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(t, testRouter(t, tw.Default), "/api/merge?"+tt.query.Encode())
			require.Equal(t, http.StatusOK, w.Code)

			var resp struct {
				Classes string `json:"classes"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.expected, resp.Classes)
		})
	}
}

func TestVariantTables(t *testing.T) {
	w := get(t, testRouter(t, tw.Default), "/api/variants")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Components []string `json:"components"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, ui.VariantTableNames(), resp.Components)
}

func TestVariantTable(t *testing.T) {
	w := get(t, testRouter(t, tw.Default), "/api/variants/button")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Component string `json:"component"`
		Base      string `json:"base"`
		Axes      []struct {
			Name    string `json:"name"`
			Default string `json:"default"`
			Values  []struct {
				Value   string `json:"value"`
				Classes string `json:"classes"`
			} `json:"values"`
		} `json:"axes"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, "button", resp.Component)
	assert.Contains(t, resp.Base, "inline-flex")
	require.Len(t, resp.Axes, 2)
	assert.Equal(t, "variant", resp.Axes[0].Name)
	assert.Equal(t, "default", resp.Axes[0].Default)
	assert.Equal(t, "size", resp.Axes[1].Name)
	assert.Equal(t, "md", resp.Axes[1].Default)
}

func TestVariantTableUnknown(t *testing.T) {
	w := get(t, testRouter(t, tw.Default), "/api/variants/kanban")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"unknown component kanban"}`, w.Body.String())
}
