package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	preventionhandler "climaseguro_backend/internal/feature/prevention/transport/handler"
	residencehandler "climaseguro_backend/internal/feature/residence/transport/handler"
	platformhandler "climaseguro_backend/internal/platform/http/handler"
)

func TestNewRouter_Routes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := NewRouter(platformhandler.NewHealth(false),
		residencehandler.NewResidenceHandler(nil, nil),
		preventionhandler.NewPreventionHandler(nil))

	want := map[string]bool{
		"GET /healthz":                        false,
		"POST /api/gemini/analyze-residence":  false,
		"POST /api/gemini/analyze-zone":       false,
		"POST /processos/prevencao":           false,
		"POST /processos/prevencao/:id/fotos": false,
	}
	for _, route := range r.Routes() {
		key := route.Method + " " + route.Path
		if _, ok := want[key]; ok {
			want[key] = true
		}
	}
	for route, found := range want {
		assert.True(t, found, "route %s not registered", route)
	}
}

func TestNewRouter_CORS(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := NewRouter(platformhandler.NewHealth(true),
		residencehandler.NewResidenceHandler(nil, nil),
		preventionhandler.NewPreventionHandler(nil))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
