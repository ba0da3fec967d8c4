package web

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func Test_QueryIntGte(t *testing.T) {
	testCases := []struct {
		name         string
		query        string
		expected     int32
		expectedOK   bool
		expectedCode int
	}{
		{name: "missing uses default", query: "", expected: 100, expectedOK: true, expectedCode: http.StatusOK},
		{name: "valid value", query: "?limit=5", expected: 5, expectedOK: true, expectedCode: http.StatusOK},
		{name: "zero allowed", query: "?limit=0", expected: 0, expectedOK: true, expectedCode: http.StatusOK},
		{name: "negative rejected", query: "?limit=-1", expectedOK: false, expectedCode: http.StatusUnprocessableEntity},
		{name: "not a number", query: "?limit=ten", expectedOK: false, expectedCode: http.StatusUnprocessableEntity},
		{name: "overflow", query: "?limit=99999999999", expectedOK: false, expectedCode: http.StatusUnprocessableEntity},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			req := httptest.NewRequest(http.MethodGet, "/api/v1/products"+tc.query, nil)
			rr := httptest.NewRecorder()

			// when
			value, ok := QueryIntGte(req, rr, discardLogger, "limit", 0, 100)

			// then
			assert.Equal(t, tc.expectedOK, ok)
			assert.Equal(t, tc.expectedCode, rr.Code)
			if tc.expectedOK {
				assert.Equal(t, tc.expected, value)
			}
		})
	}
}

func Test_ParseID(t *testing.T) {
	t.Run("valid id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/products/42", nil)
		req.SetPathValue("id", "42")
		rr := httptest.NewRecorder()

		id, ok := ParseID(rr, req, discardLogger)

		require.True(t, ok)
		assert.Equal(t, int64(42), id)
	})
	t.Run("invalid id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/products/abc", nil)
		req.SetPathValue("id", "abc")
		rr := httptest.NewRecorder()

		_, ok := ParseID(rr, req, discardLogger)

		require.False(t, ok)
		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
		assert.JSONEq(t, `{"detail":"Invalid ID: abc"}`, rr.Body.String())
	})
}

func Test_RequestIDInjector(t *testing.T) {
	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = middleware.GetReqID(r.Context())
	})

	t.Run("propagates incoming header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(middleware.RequestIDHeader, "abc-123")
		rr := httptest.NewRecorder()

		RequestIDInjector(next).ServeHTTP(rr, req)

		assert.Equal(t, "abc-123", seen)
		assert.Equal(t, "abc-123", rr.Header().Get(middleware.RequestIDHeader))
	})
	t.Run("generates id when missing", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rr := httptest.NewRecorder()

		RequestIDInjector(next).ServeHTTP(rr, req)

		assert.Len(t, seen, 36)
		assert.Equal(t, seen, rr.Header().Get(middleware.RequestIDHeader))
	})
}

func Test_Recoverer(t *testing.T) {
	// given
	panicking := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()

	// when
	Recoverer(discardLogger)(panicking).ServeHTTP(rr, req)

	// then
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"detail":"Internal Server Error"}`, rr.Body.String())
}

func Test_RespondValidationError(t *testing.T) {
	rr := httptest.NewRecorder()

	RespondValidationError(rr, discardLogger, map[string]string{"name": "failed on rule: required"})

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"detail":"Validation failed","validation_errors":{"name":"failed on rule: required"}}`, rr.Body.String())
}
