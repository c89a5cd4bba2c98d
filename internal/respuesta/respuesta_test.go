package respuesta

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDesdeSpExitoso(t *testing.T) {
	status, env := DesdeSp(TipoExitoso, "Operación realizada", 42)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, 42, env.Result)
	assert.Equal(t, TipoExitoso, env.TypeResult)
	assert.Equal(t, "Operación realizada", env.Message)
}

func TestDesdeSpControlado(t *testing.T) {
	status, env := DesdeSp(TipoErrorControlado, "Ya existe una caja abierta", map[string]any{"x": 1})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Nil(t, env.Result, "controlled errors never carry a result")
	assert.Equal(t, TipoErrorControlado, env.TypeResult)
}

func TestDesdeSpNoControlado(t *testing.T) {
	for _, tr := range []int{TipoErrorNoControlado, 3, -1, 99} {
		status, env := DesdeSp(tr, "boom", "ignored")
		assert.Equal(t, http.StatusInternalServerError, status)
		assert.Nil(t, env.Result)
		assert.Equal(t, TipoErrorNoControlado, env.TypeResult)
	}
}

// Same triple in, same response out — the mapping holds no hidden state.
func TestDesdeSpIdempotente(t *testing.T) {
	for i := 0; i < 3; i++ {
		status, env := DesdeSp(TipoErrorControlado, "Credenciales inválidas", nil)
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, Envelope{Result: nil, TypeResult: TipoErrorControlado, Message: "Credenciales inválidas"}, env)
	}
}

func TestInterna(t *testing.T) {
	status, env := Interna(errors.New("dial tcp: refused"))
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, TipoErrorNoControlado, env.TypeResult)
	assert.Equal(t, "Error interno del servidor: dial tcp: refused", env.Message)

	_, env = Interna(nil)
	assert.Equal(t, "Error interno del servidor: desconocido", env.Message)
}
