package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"sfacapi/internal/apierror"
	"sfacapi/internal/infra"
	"sfacapi/internal/respuesta"
)

// PrivilegedUserKey holds the CodigoUsuario of the supervisor that approved
// the operation, when the request carried a privilegedUser blob.
const PrivilegedUserKey = "privileged_user"

type cuerpoPrivilegiado struct {
	PrivilegedUser string `json:"privilegedUser"`
}

type reclamoPrivilegiado struct {
	UserID int `json:"userId"`
	jwt.RegisteredClaims
}

// PrivilegedAuth handles supervisor re-authentication on sensitive
// operations. The front end ships the supervisor's session token inside an
// AES blob; an absent blob just passes through, the handler decides whether
// the operation needed one.
func PrivilegedAuth(cipher *infra.Cipher, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		cuerpo, err := leerCuerpo(c)
		if err != nil || cuerpo.PrivilegedUser == "" {
			c.Next()
			return
		}

		plano, err := cipher.Decrypt(cuerpo.PrivilegedUser)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden,
				apierror.New("Autenticación adicional fallida."))
			return
		}

		var credenciales struct {
			Token string `json:"Token"`
		}
		if err := json.Unmarshal([]byte(plano), &credenciales); err != nil || credenciales.Token == "" {
			c.AbortWithStatusJSON(http.StatusForbidden,
				apierror.New("Autenticación adicional fallida."))
			return
		}

		claims := &reclamoPrivilegiado{}
		token, err := jwt.ParseWithClaims(credenciales.Token, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusForbidden, respuesta.Envelope{
				Result:     nil,
				TypeResult: respuesta.TipoErrorNoControlado,
				Message:    "Sesión privilegiada expirada",
			})
			return
		}

		c.Set(PrivilegedUserKey, claims.UserID)
		c.Next()
	}
}

// GetPrivilegedUser returns the approving supervisor's id, if any.
func GetPrivilegedUser(c *gin.Context) (int, bool) {
	v, ok := c.Get(PrivilegedUserKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(int)
	return id, ok
}

// leerCuerpo peeks at the JSON body without consuming it for the handler.
func leerCuerpo(c *gin.Context) (cuerpoPrivilegiado, error) {
	var cuerpo cuerpoPrivilegiado
	if c.Request.Body == nil {
		return cuerpo, nil
	}
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return cuerpo, err
	}
	c.Request.Body = io.NopCloser(bytes.NewReader(raw))
	if len(raw) == 0 {
		return cuerpo, nil
	}
	err = json.Unmarshal(raw, &cuerpo)
	return cuerpo, err
}
