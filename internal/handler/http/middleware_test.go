package http

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/gatherly/internal/logger"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func zerologTo(w io.Writer) zerolog.Logger {
	return zerolog.New(w)
}

func TestResponseWriter(t *testing.T) {
	tests := []struct {
		name       string
		write      func(w *responseWriter)
		wantStatus int
		wantSize   int
	}{
		{
			name:       "nothing written",
			write:      func(*responseWriter) {},
			wantStatus: http.StatusOK,
		},
		{
			name: "explicit status",
			write: func(w *responseWriter) {
				w.WriteHeader(http.StatusCreated)
				_, _ = w.Write([]byte("abc"))
			},
			wantStatus: http.StatusCreated,
			wantSize:   3,
		},
		{
			name: "implicit status",
			write: func(w *responseWriter) {
				_, _ = w.Write([]byte("ab"))
				_, _ = w.Write([]byte("cd"))
			},
			wantStatus: http.StatusOK,
			wantSize:   4,
		},
		{
			name: "first status wins",
			write: func(w *responseWriter) {
				w.WriteHeader(http.StatusNotFound)
				w.WriteHeader(http.StatusInternalServerError)
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			w := &responseWriter{ResponseWriter: rr}

			tt.write(w)

			assert.Equal(t, tt.wantStatus, w.Status())
			assert.Equal(t, tt.wantSize, w.size)
			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Same(t, rr, w.Unwrap())
		})
	}
}

func TestWithTraceID_LoggerCarriesTraceID(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: &logger.Logger{Logger: zerologTo(&buf)}}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.FromRequest(r).Info().Msg("inside")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set(traceIDHeader, "abc-123")
	rr := httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(rr, req)

	assert.Equal(t, "abc-123", rr.Header().Get(traceIDHeader))
	assert.Contains(t, buf.String(), `"trace_id":"abc-123"`)
}

func TestWithLogging(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: &logger.Logger{Logger: zerologTo(&buf)}}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short"))
	})

	req := httptest.NewRequest(http.MethodPost, "/api/venues?page=2", nil)
	rr := httptest.NewRecorder()
	h.withTraceID(h.withLogging(next)).ServeHTTP(rr, req)

	out := buf.String()
	assert.Contains(t, out, `"uri":"/api/venues?page=2"`)
	assert.Contains(t, out, `"method":"POST"`)
	assert.Contains(t, out, `"status":418`)
	assert.Contains(t, out, `"size":5`)
	assert.Contains(t, out, `"trace_id"`)
}

func TestWithGZip(t *testing.T) {
	echo := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		_, _ = w.Write(body)
	})

	t.Run("compresses when accepted", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"ok":true}`))
		req.Header.Set("Accept-Encoding", "gzip, deflate")
		rr := httptest.NewRecorder()

		withGZip(echo).ServeHTTP(rr, req)

		assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
		zr, err := gzip.NewReader(rr.Body)
		require.NoError(t, err)
		plain, err := io.ReadAll(zr)
		require.NoError(t, err)
		assert.Equal(t, `{"ok":true}`, string(plain))
	})

	t.Run("plain when not accepted", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("plain"))
		rr := httptest.NewRecorder()

		withGZip(echo).ServeHTTP(rr, req)

		assert.Empty(t, rr.Header().Get("Content-Encoding"))
		assert.Equal(t, "plain", rr.Body.String())
	})

	t.Run("inflates gzip request body", func(t *testing.T) {
		var compressed bytes.Buffer
		zw := gzip.NewWriter(&compressed)
		_, _ = zw.Write([]byte(`{"email":"a@b.c"}`))
		require.NoError(t, zw.Close())

		req := httptest.NewRequest(http.MethodPost, "/", &compressed)
		req.Header.Set("Content-Encoding", "gzip")
		rr := httptest.NewRecorder()

		withGZip(echo).ServeHTTP(rr, req)

		assert.Equal(t, `{"email":"a@b.c"}`, rr.Body.String())
	})

	t.Run("rejects corrupt gzip body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("not gzip"))
		req.Header.Set("Content-Encoding", "gzip")
		rr := httptest.NewRecorder()

		withGZip(echo).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "Invalid gzip body")
	})
}
