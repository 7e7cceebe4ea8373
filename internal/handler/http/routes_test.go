package http

import (
	"compress/gzip"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/gatherly/internal/config"
	"github.com/MKhiriev/gatherly/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAPIRouter_RegistrationOrder(t *testing.T) {
	env := newTestEnv(t)

	var got []string
	for _, route := range env.handler.apiRouter().Routes() {
		got = append(got, route.Method+" "+route.Pattern)
	}

	assert.Equal(t, []string{
		"POST /api/auth/register",
		"POST /api/auth/login",
		"GET /api/auth/me",
		"PUT /api/auth/profile",
		"POST /api/auth/change-password",
		"GET /api/venues",
		"GET /api/venues/:id",
		"GET /api/venues/my/list",
		"POST /api/venues",
		"PUT /api/venues/:id",
		"DELETE /api/venues/:id",
		"GET /api/amenities",
		"GET /api/amenities/categories",
		"GET /api/amenities/:id",
		"POST /api/amenities",
		"PUT /api/amenities/:id",
		"DELETE /api/amenities/:id",
		"GET /api/health",
	}, got)
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t)

	rr := env.do(http.MethodGet, "/api/health", nil, "")

	require.Equal(t, http.StatusOK, rr.Code)
	body := decodeEnvelope(t, rr)
	assert.True(t, body.Success)
	assert.Equal(t, "API is running", body.Message)
	assert.NotEmpty(t, body.Timestamp)

	var health models.HealthResponse
	require.NoError(t, json.Unmarshal(body.Data, &health))
	assert.Equal(t, "healthy", health.Status)
	assert.Equal(t, "1.2.3", health.Version)
	assert.NotEmpty(t, health.Timestamp)
}

func TestRoutes_NotFound(t *testing.T) {
	tests := []struct {
		name   string
		method string
		target string
	}{
		{name: "unknown path", method: http.MethodGet, target: "/api/bookings"},
		{name: "unsupported method", method: http.MethodPatch, target: "/api/venues/1"},
		{name: "wrong method", method: http.MethodDelete, target: "/api/health"},
		{name: "parameter with dot", method: http.MethodGet, target: "/api/venues/1.5"},
		{name: "trailing segment", method: http.MethodGet, target: "/api/venues/1/extra"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)

			rr := env.do(tt.method, tt.target, nil, "")

			require.Equal(t, http.StatusNotFound, rr.Code)
			body := decodeEnvelope(t, rr)
			assert.False(t, body.Success)
			assert.Equal(t, "Endpoint not found", body.Message)
		})
	}
}

func TestRoutes_BasePathIsStripped(t *testing.T) {
	env := newTestEnvWithConfig(t, config.Server{BasePath: "/gatherly/backend/"})

	rr := env.do(http.MethodGet, "/gatherly/backend/api/health?verbose=1", nil, "")
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = env.do(http.MethodGet, "/api/health", nil, "")
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestRoutes_LiteralBeforeParameter(t *testing.T) {
	env := newTestEnv(t)
	env.amenities.EXPECT().Categories().Return(models.AmenityCategories)

	rr := env.do(http.MethodGet, "/api/amenities/categories", nil, "")

	require.Equal(t, http.StatusOK, rr.Code)
	var data struct {
		Categories []models.CategoryLabel `json:"categories"`
	}
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rr).Data, &data))
	assert.Equal(t, models.AmenityCategories, data.Categories)
}

func TestRoutes_TraceIDHeader(t *testing.T) {
	env := newTestEnv(t)

	rr := env.do(http.MethodGet, "/api/health", nil, "")
	_, err := uuid.Parse(rr.Header().Get(traceIDHeader))
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set(traceIDHeader, "trace-123")
	rr = httptest.NewRecorder()
	env.server.ServeHTTP(rr, req)
	assert.Equal(t, "trace-123", rr.Header().Get(traceIDHeader))
}

func TestRoutes_MetricsEndpoint(t *testing.T) {
	env := newTestEnv(t)
	env.venues.EXPECT().GetVenue(gomock.Any(), int64(7)).Return(models.Venue{VenueID: 7}, nil)

	env.do(http.MethodGet, "/api/venues/7", nil, "")
	env.do(http.MethodGet, "/api/nowhere", nil, "")
	env.do(http.MethodGet, "/api/auth/me", nil, "")

	rr := env.do(http.MethodGet, "/metrics", nil, "")
	require.Equal(t, http.StatusOK, rr.Code)

	out := rr.Body.String()
	assert.Contains(t, out, `gatherly_http_requests_total{method="GET",route="/api/venues/:id",status="200"} 1`)
	assert.Contains(t, out, `gatherly_http_requests_total{method="GET",route="unmatched",status="404"} 1`)
	assert.Contains(t, out, `gatherly_http_requests_total{method="GET",route="/api/auth/me",status="401"} 1`)
	assert.Contains(t, out, `gatherly_auth_outcomes_total{outcome="no_token"} 1`)
}

func TestRoutes_MetricsCompressedOnce(t *testing.T) {
	env := newTestEnv(t)
	env.do(http.MethodGet, "/api/health", nil, "")

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()
	env.server.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, []string{"gzip"}, rr.Header().Values("Content-Encoding"))

	zr, err := gzip.NewReader(rr.Body)
	require.NoError(t, err)
	text, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(text), "# HELP"), "metrics body after one gunzip: %q", text[:min(len(text), 16)])
	assert.Contains(t, string(text), `gatherly_http_requests_total{method="GET",route="/api/health",status="200"} 1`)
}

func TestRoutes_APIResponsesAreGzipped(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()
	env.server.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))

	zr, err := gzip.NewReader(rr.Body)
	require.NoError(t, err)
	var body envelope
	require.NoError(t, json.NewDecoder(zr).Decode(&body))
	assert.Equal(t, "API is running", body.Message)
}

func TestRoutes_CORS(t *testing.T) {
	preflight := func(origin string) *http.Request {
		req := httptest.NewRequest(http.MethodOptions, "/api/auth/me", nil)
		req.Header.Set("Origin", origin)
		req.Header.Set("Access-Control-Request-Method", http.MethodGet)
		req.Header.Set("Access-Control-Request-Headers", "authorization")
		return req
	}

	t.Run("preflight allowed for any origin by default", func(t *testing.T) {
		env := newTestEnv(t)
		rr := httptest.NewRecorder()
		env.server.ServeHTTP(rr, preflight("https://client.example"))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, rr.Header().Get("Access-Control-Allow-Methods"), http.MethodGet)
		assert.Contains(t, rr.Header().Get("Access-Control-Allow-Headers"), "Authorization")
	})

	t.Run("configured origin is echoed", func(t *testing.T) {
		env := newTestEnvWithConfig(t, config.Server{AllowedOrigins: []string{"https://gatherly.app"}})
		rr := httptest.NewRecorder()
		env.server.ServeHTTP(rr, preflight("https://gatherly.app"))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "https://gatherly.app", rr.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("other origins get no CORS headers", func(t *testing.T) {
		env := newTestEnvWithConfig(t, config.Server{AllowedOrigins: []string{"https://gatherly.app"}})
		rr := httptest.NewRecorder()
		env.server.ServeHTTP(rr, preflight("https://evil.example"))

		assert.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("simple request carries allow origin", func(t *testing.T) {
		env := newTestEnv(t)
		req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
		req.Header.Set("Origin", "https://client.example")
		rr := httptest.NewRecorder()
		env.server.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestRoutes_RecoversFromPanics(t *testing.T) {
	env := newTestEnv(t)
	env.venues.EXPECT().GetVenue(gomock.Any(), int64(1)).DoAndReturn(func(context.Context, int64) (models.Venue, error) {
		panic("boom")
	})

	rr := env.do(http.MethodGet, "/api/venues/1", nil, "")

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
