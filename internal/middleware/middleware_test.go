package middleware_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/vango-dev/vango-ui/internal/logger"
	"github.com/vango-dev/vango-ui/internal/middleware"
	"github.com/vango-dev/vango-ui/pkg/tw"
)

func testLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	buf := &bytes.Buffer{}
	log, err := logger.New(logger.Options{Level: "debug", Writer: buf})
	require.NoError(t, err)
	return log, buf
}

func TestLoggerMiddleware(t *testing.T) {
	log, buf := testLogger(t)

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(middleware.Logger(log))
	r.Get("/teapot", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte("short and stout"))
	})

	req := httptest.NewRequest(http.MethodGet, "/teapot", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "request", entry["message"])
	assert.Equal(t, "GET", entry["method"])
	assert.Equal(t, "/teapot", entry["path"])
	assert.Equal(t, float64(http.StatusTeapot), entry["status"])
	assert.Equal(t, float64(len("short and stout")), entry["size"])
	assert.NotEmpty(t, entry["request_id"])
}

func TestRecovery(t *testing.T) {
	log, buf := testLogger(t)

	r := chi.NewRouter()
	r.Use(middleware.Recovery(log))
	r.Get("/boom", func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	w := httptest.NewRecorder()
	require.NotPanics(t, func() { r.ServeHTTP(w, req) })

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.True(t, strings.Contains(buf.String(), "panic: boom"))
}

func TestResolver(t *testing.T) {
	custom := tw.New(tw.Config{})

	var got *tw.Resolver
	h := middleware.Resolver(custom)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = tw.FromContext(r.Context())
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Same(t, custom, got)
}

// recordingProvider records the names of started and renamed spans.
type recordingProvider struct {
	noop.TracerProvider
	names   []string
	renamed []string
}

func (p *recordingProvider) Tracer(name string, opts ...trace.TracerOption) trace.Tracer {
	return &recordingTracer{p: p}
}

type recordingTracer struct {
	noop.Tracer
	p *recordingProvider
}

func (t *recordingTracer) Start(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	t.p.names = append(t.p.names, name)
	ctx, span := t.Tracer.Start(ctx, name, opts...)
	return ctx, &recordingSpan{Span: span, p: t.p}
}

type recordingSpan struct {
	trace.Span
	p *recordingProvider
}

func (s *recordingSpan) SetName(name string) {
	s.p.renamed = append(s.p.renamed, name)
}

func TestTracing(t *testing.T) {
	tp := &recordingProvider{}

	h := middleware.Tracing(tp)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/merge", nil))

	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.Equal(t, []string{"POST /api/merge"}, tp.names)
	assert.Empty(t, tp.renamed)
}

func TestTracingNamesSpanByRoutePattern(t *testing.T) {
	tp := &recordingProvider{}

	r := chi.NewRouter()
	r.Use(middleware.Tracing(tp))
	r.Get("/stories/{group}/{name}", func(w http.ResponseWriter, r *http.Request) {})

	for _, path := range []string{"/stories/button/sizes", "/stories/badge/variants"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, []string{"GET /stories/button/sizes", "GET /stories/badge/variants"}, tp.names)
	assert.Equal(t, []string{"GET /stories/{group}/{name}", "GET /stories/{group}/{name}"}, tp.renamed)
}

func TestTracingDefaultsToGlobalProvider(t *testing.T) {
	h := middleware.Tracing(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, "ok", w.Body.String())
}
