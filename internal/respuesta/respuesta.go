// Package respuesta defines the uniform response envelope shared by every
// stored-procedure-backed endpoint. All business errors meant for the end
// user travel through the typeResult=1 channel; anything unexpected funnels
// into the uncontrolled (typeResult=2) channel with a generic message.
package respuesta

import (
	"fmt"
	"net/http"
)

// Three-valued discriminator returned by every stored procedure.
const (
	TipoExitoso           = 0
	TipoErrorControlado   = 1
	TipoErrorNoControlado = 2
)

// Envelope is the JSON body of every business response.
type Envelope struct {
	Result     any    `json:"result"`
	TypeResult int    `json:"typeResult"`
	Message    string `json:"message"`
}

// DesdeSp maps the (typeResult, message, result) tuple of a stored procedure
// into an HTTP status and envelope. Pure function:
//
//	0 → 200 con result
//	1 → 400, result null (error de negocio controlado)
//	otro → 500, result null (error no controlado)
func DesdeSp(typeResult int, message string, result any) (int, Envelope) {
	switch typeResult {
	case TipoExitoso:
		return http.StatusOK, Envelope{Result: result, TypeResult: TipoExitoso, Message: message}
	case TipoErrorControlado:
		return http.StatusBadRequest, Envelope{Result: nil, TypeResult: TipoErrorControlado, Message: message}
	default:
		return http.StatusInternalServerError, Envelope{Result: nil, TypeResult: TipoErrorNoControlado, Message: message}
	}
}

// Exitosa builds a 200 envelope without going through a procedure.
func Exitosa(message string, result any) (int, Envelope) {
	return DesdeSp(TipoExitoso, message, result)
}

// Controlada builds a 400 envelope for business errors raised in this layer.
func Controlada(message string) (int, Envelope) {
	return DesdeSp(TipoErrorControlado, message, nil)
}

// Interna is the single catch-all for unhandled failures: always HTTP 500
// with the generic prefix plus the best-effort extracted message — never a
// stack trace.
func Interna(err error) (int, Envelope) {
	msg := "desconocido"
	if err != nil {
		msg = err.Error()
	}
	return http.StatusInternalServerError, Envelope{
		Result:     nil,
		TypeResult: TipoErrorNoControlado,
		Message:    fmt.Sprintf("Error interno del servidor: %s", msg),
	}
}
