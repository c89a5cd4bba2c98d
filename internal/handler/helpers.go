package handler

import (
	"encoding/json"
	"net/http"
	"reflect"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"sfacapi/internal/apierror"
	"sfacapi/internal/middleware"
	"sfacapi/internal/repository"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, gt=0, required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails —
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON inválido: "+err.Error()))
		return false
	}
	return validar(c, req)
}

// bindQuery is the querystring twin of bindAndValidate for GET endpoints.
func bindQuery(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindQuery(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Parámetros inválidos: "+err.Error()))
		return false
	}
	return validar(c, req)
}

func validar(c *gin.Context, req interface{}) bool {
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// responder writes the procedure outcome as-is.
func responder(c *gin.Context, salida repository.Salida, err error) {
	if err != nil {
		c.Error(err)
		return
	}
	status, envelope := salida.Responder()
	c.JSON(status, envelope)
}

// usuarioActual resolves the calling user's id from the record the auth
// middleware attached, falling back to the token claims.
func usuarioActual(c *gin.Context) *int {
	if raw, ok := c.Get(middleware.UserKey); ok {
		if data, ok := raw.(json.RawMessage); ok {
			var usuario struct {
				CodigoUsuario *int `json:"CodigoUsuario"`
			}
			if json.Unmarshal(data, &usuario) == nil && usuario.CodigoUsuario != nil {
				return usuario.CodigoUsuario
			}
		}
	}
	if v, ok := c.Get(middleware.ClaimsKey); ok {
		if claims, ok := v.(*middleware.JWTClaims); ok && claims.UserID != 0 {
			id := claims.UserID
			return &id
		}
	}
	return nil
}

// usuarioAutorizado prefers the supervisor that re-authenticated the
// operation over the session user.
func usuarioAutorizado(c *gin.Context) *int {
	if id, ok := middleware.GetPrivilegedUser(c); ok {
		return &id
	}
	return usuarioActual(c)
}
