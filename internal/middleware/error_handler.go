package middleware

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"sfacapi/internal/printer"
	"sfacapi/internal/respuesta"
)

// ErrorHandler catches errors attached to the context by handlers. Printer
// timeouts get their own status so the front end can tell a dead printer from
// a dead server; everything else answers with the generic envelope and the
// detail stays in the log.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		log.Error().
			Str("request_id", c.GetString(RequestIDKey)).
			Str("path", c.FullPath()).
			Str("method", c.Request.Method).
			Err(err).
			Msg("unhandled error")

		if errors.Is(err, printer.ErrTimeout) {
			c.AbortWithStatusJSON(http.StatusGatewayTimeout, respuesta.Envelope{
				Result:     nil,
				TypeResult: respuesta.TipoErrorNoControlado,
				Message:    "Timeout de conexión con la impresora",
			})
			return
		}

		status, envelope := respuesta.Interna(err)
		c.AbortWithStatusJSON(status, envelope)
	}
}

// Recovery converts panics into 500 responses without leaking stack traces.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().
					Str("request_id", c.GetString(RequestIDKey)).
					Interface("panic", r).
					Msg("panic recovered")
				status, envelope := respuesta.Interna(errors.New("error inesperado"))
				c.AbortWithStatusJSON(status, envelope)
			}
		}()
		c.Next()
	}
}

// Logger logs each request with method, path, status, latency, and request_id.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info().
			Str("request_id", c.GetString(RequestIDKey)).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("request")
	}
}
