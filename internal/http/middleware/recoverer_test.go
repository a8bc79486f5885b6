package middleware_test

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"github.com/vuxmai/product-updated-sink/internal/http/middleware"
)

func TestRecoverer(t *testing.T) {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer(slog.New(slog.DiscardHandler)))
	r.Get("/boom", func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})
	r.Get("/ok", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("Should turn a panic into a 500 response", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/boom", nil)
		resp := httptest.NewRecorder()

		assert.NotPanics(t, func() {
			r.ServeHTTP(resp, req)
		})

		assert.Equal(t, http.StatusInternalServerError, resp.Code)
		assert.JSONEq(t, `{"error":"InternalServerError"}`, resp.Body.String())
	})

	t.Run("Should keep serving requests after a panic", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/boom", nil)
		r.ServeHTTP(httptest.NewRecorder(), req)

		req = httptest.NewRequest(http.MethodGet, "/ok", nil)
		resp := httptest.NewRecorder()
		r.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusOK, resp.Code)
	})
}
