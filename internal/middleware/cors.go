package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// allowedOrigins are the production front-end hosts. Outside production every
// origin is accepted so LAN terminals and dev builds can hit the API.
var allowedOrigins = []string{
	"http://latienditadelrio.digidevelops.com",
	"https://latienditadelrio.digidevelops.com",
}

// CORS answers preflights and sets the allow headers. The front end sends the
// session token both as Authorization and under the legacy jwt header.
func CORS(production bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		switch {
		case !production:
			if origin == "" {
				origin = "*"
			}
			c.Header("Access-Control-Allow-Origin", origin)
		case origenPermitido(origin):
			c.Header("Access-Control-Allow-Origin", origin)
		case origin != "":
			c.AbortWithStatus(http.StatusForbidden)
			return
		}

		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization, jwt")
		c.Header("Access-Control-Expose-Headers", "X-Request-ID")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

func origenPermitido(origin string) bool {
	if origin == "" {
		return true
	}
	for _, permitido := range allowedOrigins {
		if strings.EqualFold(origin, permitido) {
			return true
		}
	}
	return false
}
