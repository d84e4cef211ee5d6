package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewServer_Constructs(t *testing.T) {
	s := newTestServer(t, &scriptedClient{})
	require.NotNil(t, s)
	require.NotNil(t, s.Handler())
}

func TestServer_CORSPreflight(t *testing.T) {
	s := newTestServer(t, &scriptedClient{})

	req := httptest.NewRequest(http.MethodOptions, "/api/profiles", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	require.Equal(t, http.StatusNoContent, w.Code)
	require.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
