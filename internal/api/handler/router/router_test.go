package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/business-growth-api/pkg/apiErrors"

	jsoniter "github.com/json-iterator/go"
)

func TestRouter_AddRoutes(t *testing.T) {
	var calls []string
	mark := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls = append(calls, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	rt := New(WithRoutes(Route{
		Path:   "/api/business/:business_id",
		Method: http.MethodGet,
		Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls = append(calls, "handler")
			w.WriteHeader(http.StatusOK)
		}),
		Middlewares: []func(http.Handler) http.Handler{mark("primeiro"), mark("segundo")},
	}))

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/business/b1", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"primeiro", "segundo", "handler"}, calls)
}

func TestRouter_ErrosDeRoteamento(t *testing.T) {
	rt := New(WithRoutes(Route{
		Path:    "/api/business/",
		Method:  http.MethodPost,
		Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}),
	}))

	tests := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
		expectedCode   string
		expectedAllow  string
	}{
		{
			name:           "Rota inexistente",
			method:         http.MethodGet,
			path:           "/api/nao-existe",
			expectedStatus: http.StatusNotFound,
			expectedCode:   apiErrors.ErrRouteNotFound,
		},
		{
			name:           "Método errado em rota existente",
			method:         http.MethodDelete,
			path:           "/api/business/",
			expectedStatus: http.StatusMethodNotAllowed,
			expectedCode:   apiErrors.ErrMethodNotAllowed,
			expectedAllow:  "POST",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			rt.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var apiErr apiErrors.APIError
			require.NoError(t, jsoniter.Unmarshal(rec.Body.Bytes(), &apiErr))
			assert.Equal(t, tt.expectedCode, apiErr.Code)

			if tt.expectedAllow != "" {
				assert.Contains(t, rec.Header().Get("Allow"), tt.expectedAllow)
			}
		})
	}
}
