package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMiddlewareRecordsStatusAndPattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Post("/api/generate", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	})

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodPost, "/api/generate", "400"))

	req := httptest.NewRequest(http.MethodPost, "/api/generate", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	after := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodPost, "/api/generate", "400"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, before+1, after)
}

func TestGenerationTotal(t *testing.T) {
	before := testutil.ToFloat64(generationTotal.WithLabelValues("multipart", "success"))
	GenerationTotal("multipart", "success")
	assert.Equal(t, before+1, testutil.ToFloat64(generationTotal.WithLabelValues("multipart", "success")))
}
