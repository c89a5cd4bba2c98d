package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sfacapi/internal/dto"
	"sfacapi/internal/repository"
	"sfacapi/internal/respuesta"
)

type ordenesFalsas struct {
	porOp  map[repository.OpOrden]repository.Salida
	errs   map[repository.OpOrden]error
	vistas []repository.OpOrden
	ultima dto.OrdenRequest
}

func (o *ordenesFalsas) Gestionar(_ context.Context, op repository.OpOrden, req dto.OrdenRequest) (repository.Salida, error) {
	o.vistas = append(o.vistas, op)
	o.ultima = req
	if err := o.errs[op]; err != nil {
		return repository.Salida{}, err
	}
	return o.porOp[op], nil
}

type emisorFalso struct {
	evento string
	datos  any
	conteo int
}

func (e *emisorFalso) Emitir(evento string, datos any) {
	e.evento = evento
	e.datos = datos
	e.conteo++
}

func TestCrearOrdenDifunde(t *testing.T) {
	ordenes := &ordenesFalsas{porOp: map[repository.OpOrden]repository.Salida{
		repository.OrdenCrear: {TypeResult: respuesta.TipoExitoso, Result: "15", Message: "Orden creada"},
		repository.OrdenObtener: {
			TypeResult: respuesta.TipoExitoso,
			Result:     `[{"CodigoOrden":15,"Detalle":[{"CodigoInventario":5,"Cantidad":2}]}]`,
		},
	}}
	emisor := &emisorFalso{}
	s := NewOrdenService(ordenes, emisor)

	usuario := 7
	status, envelope := s.Crear(context.Background(), dto.OrdenRequest{CodigoUsuario: &usuario})

	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Orden creada", envelope.Message)
	assert.Equal(t, []repository.OpOrden{repository.OrdenCrear, repository.OrdenObtener}, ordenes.vistas)

	// The broadcast carries the first element of the array the procedure
	// returned, under the kitchen event name.
	require.Equal(t, 1, emisor.conteo)
	assert.Equal(t, "nueva-orden", emisor.evento)
	orden, ok := emisor.datos.(map[string]any)
	require.True(t, ok)
	assert.EqualValues(t, 15, orden["CodigoOrden"])
}

func TestCrearOrdenControladaNoDifunde(t *testing.T) {
	ordenes := &ordenesFalsas{porOp: map[repository.OpOrden]repository.Salida{
		repository.OrdenCrear: {TypeResult: respuesta.TipoErrorControlado, Message: "Caja cerrada"},
	}}
	emisor := &emisorFalso{}
	s := NewOrdenService(ordenes, emisor)

	status, envelope := s.Crear(context.Background(), dto.OrdenRequest{})

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Caja cerrada", envelope.Message)
	assert.Zero(t, emisor.conteo)
}

func TestCrearOrdenFalloDeLecturaNoRompeLaRespuesta(t *testing.T) {
	ordenes := &ordenesFalsas{
		porOp: map[repository.OpOrden]repository.Salida{
			repository.OrdenCrear: {TypeResult: respuesta.TipoExitoso, Result: "15"},
		},
		errs: map[repository.OpOrden]error{
			repository.OrdenObtener: errors.New("conexión perdida"),
		},
	}
	emisor := &emisorFalso{}
	s := NewOrdenService(ordenes, emisor)

	status, _ := s.Crear(context.Background(), dto.OrdenRequest{})

	// Broadcast is best-effort: the REST caller still gets the success.
	assert.Equal(t, http.StatusOK, status)
	assert.Zero(t, emisor.conteo)
}

func TestActualizarEstadoDifunde(t *testing.T) {
	ordenes := &ordenesFalsas{porOp: map[repository.OpOrden]repository.Salida{
		repository.OrdenActualizarDetalle: {TypeResult: respuesta.TipoExitoso, Result: "8"},
		repository.OrdenObtener: {
			TypeResult: respuesta.TipoExitoso,
			Result:     `{"CodigoOrden":8,"Estado":"Preparado"}`,
		},
	}}
	emisor := &emisorFalso{}
	s := NewOrdenService(ordenes, emisor)

	status, _ := s.ActualizarEstado(context.Background(), dto.OrdenRequest{})

	require.Equal(t, http.StatusOK, status)
	require.Equal(t, 1, emisor.conteo)
	assert.Equal(t, "orden-actualizada", emisor.evento)
	orden, ok := emisor.datos.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Preparado", orden["Estado"])
}

func TestCodigoDeOrden(t *testing.T) {
	codigo, ok := codigoDeOrden(repository.Salida{Result: "15"})
	require.True(t, ok)
	assert.Equal(t, 15, codigo)

	codigo, ok = codigoDeOrden(repository.Salida{Result: `"23"`})
	require.True(t, ok)
	assert.Equal(t, 23, codigo)

	_, ok = codigoDeOrden(repository.Salida{Result: nil})
	assert.False(t, ok)

	_, ok = codigoDeOrden(repository.Salida{Result: "no-numerico"})
	assert.False(t, ok)
}
