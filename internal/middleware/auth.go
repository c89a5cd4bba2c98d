package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"sfacapi/internal/apierror"
	"sfacapi/internal/repository"
	"sfacapi/internal/respuesta"
)

const (
	// UserKey holds the resolved user record for the request.
	UserKey = "user"
	// ClaimsKey holds the verified token claims.
	ClaimsKey = "claims"
)

// JWTClaims are the custom claims embedded in every access token.
type JWTClaims struct {
	Email  string `json:"email"`
	UserID int    `json:"userId"`
	jwt.RegisteredClaims
}

// BuscadorUsuarios resolves the token's email claim against the user
// registry. The raw JSON the procedure returns is attached to the context.
type BuscadorUsuarios interface {
	ObtenerPorCorreo(ctx context.Context, correo string) (repository.Salida, error)
}

// JWTAuth validates the Bearer token on every protected route. Only tokens
// signed with the configured algorithm (JWT_ALGORITHM) are accepted. Expiry is
// checked on the unverified claims first so an expired token answers the same
// way regardless of signature problems.
func JWTAuth(secret, algoritmo string, usuarios BuscadorUsuarios) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				apierror.New("No autorizado: Formato de token inválido (se espera 'Bearer token')"))
			return
		}

		tokenStr := strings.TrimPrefix(header, "Bearer ")
		if tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				apierror.New("No autorizado: Token no proporcionado"))
			return
		}

		if expirado(tokenStr) {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				apierror.New("No autorizado: Token expirado"))
			return
		}

		claims := &JWTClaims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			return []byte(secret), nil
		}, jwt.WithValidMethods([]string{algoritmo}))
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				apierror.New("No autorizado: Token inválido"))
			return
		}

		if claims.Email == "" {
			c.AbortWithStatusJSON(http.StatusForbidden,
				apierror.New("No autorizado: Estructura de token inválida"))
			return
		}

		salida, err := usuarios.ObtenerPorCorreo(c.Request.Context(), claims.Email)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError,
				apierror.New("Error interno del servidor"))
			return
		}
		user, ok := salida.ResultString()
		if !ok || salida.TypeResult != respuesta.TipoExitoso {
			c.AbortWithStatusJSON(http.StatusNotFound,
				apierror.New("Usuario no encontrado"))
			return
		}

		c.Set(ClaimsKey, claims)
		c.Set(UserKey, json.RawMessage(user))
		c.Next()
	}
}

// expirado decodes the claims without verifying the signature, only to read
// the exp claim. A token with no expiry is treated as expired.
func expirado(tokenStr string) bool {
	claims := &JWTClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(tokenStr, claims); err != nil {
		return true
	}
	if claims.ExpiresAt == nil {
		return true
	}
	return time.Now().After(claims.ExpiresAt.Time)
}

// GetClaims is a helper to retrieve typed claims from the Gin context.
func GetClaims(c *gin.Context) *JWTClaims {
	claims, _ := c.MustGet(ClaimsKey).(*JWTClaims)
	return claims
}
