package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func servidorCORS(production bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CORS(production))
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	return r
}

func solicitarConOrigen(r *gin.Engine, method, origin string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, "/ping", nil)
	if origin != "" {
		req.Header.Set("Origin", origin)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCORSDesarrolloPermiteTodo(t *testing.T) {
	r := servidorCORS(false)

	w := solicitarConOrigen(r, http.MethodGet, "http://localhost:5173")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSProduccionRestringe(t *testing.T) {
	r := servidorCORS(true)

	permitido := solicitarConOrigen(r, http.MethodGet, "https://latienditadelrio.digidevelops.com")
	assert.Equal(t, http.StatusOK, permitido.Code)

	bloqueado := solicitarConOrigen(r, http.MethodGet, "https://otro-sitio.com")
	assert.Equal(t, http.StatusForbidden, bloqueado.Code)
}

func TestCORSPreflight(t *testing.T) {
	r := servidorCORS(false)

	w := solicitarConOrigen(r, http.MethodOptions, "http://localhost:5173")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), "jwt")
}
