package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"sfacapi/internal/dto"
	"sfacapi/internal/respuesta"
)

func newMockGateway(t *testing.T) (*Gateway, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	return NewGateway(db), mock
}

func outRows(typeResult any, result any, message any) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"typeResult", "result", "message"}).
		AddRow(typeResult, result, message)
}

func TestCallReadsOutParamsOnSameConnection(t *testing.T) {
	g, mock := newMockGateway(t)

	mock.ExpectExec(`CALL sfac_SpGestionarCajaSucursal\(\?, \?, \?, \?, \?, \?, \?, @pnTypeResult, @pcResult, @pcMessage\)`).
		WithArgs(4, nil, nil, nil, nil, nil, 7).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT @pnTypeResult AS typeResult, @pcResult AS result, @pcMessage AS message`).
		WillReturnRows(outRows(0, `[{"Codigo":1}]`, "Cajas obtenidas correctamente"))

	salida, err := g.Call(context.Background(), "sfac_SpGestionarCajaSucursal",
		4, nil, nil, nil, nil, nil, 7)
	require.NoError(t, err)

	assert.Equal(t, respuesta.TipoExitoso, salida.TypeResult)
	assert.Equal(t, `[{"Codigo":1}]`, salida.Result)
	assert.Equal(t, "Cajas obtenidas correctamente", salida.Message)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCallWithoutArgs(t *testing.T) {
	g, mock := newMockGateway(t)

	mock.ExpectExec(`CALL sfac_SpReporteInventario\(@pnTypeResult, @pcResult, @pcMessage\)`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT @pnTypeResult`).
		WillReturnRows(outRows(0, "[]", "ok"))

	_, err := g.Call(context.Background(), "sfac_SpReporteInventario")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCallNullTypeResultIsUncontrolled(t *testing.T) {
	g, mock := newMockGateway(t)

	mock.ExpectExec(`CALL proc\(`).WithArgs(1).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT @pnTypeResult`).WillReturnRows(outRows(nil, nil, nil))

	salida, err := g.Call(context.Background(), "proc", 1)
	require.NoError(t, err)

	status, env := salida.Responder()
	assert.Equal(t, respuesta.TipoErrorNoControlado, salida.TypeResult)
	assert.Equal(t, 500, status)
	assert.Nil(t, env.Result)
}

func TestCallControlledErrorMapsTo400(t *testing.T) {
	g, mock := newMockGateway(t)

	mock.ExpectExec(`CALL sfac_SpGestionarAperturaCierreCaja\(`).
		WithArgs(1, nil, 3, 9, "500.00", nil, nil, nil, nil).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT @pnTypeResult`).
		WillReturnRows(outRows(1, nil, "Ya existe una apertura activa para esta caja"))

	monto := decimal.RequireFromString("500.00")
	caja := NewCajaRepo(g)
	salida, err := caja.Gestionar(context.Background(), CajaAbrir, dto.AperturaCierreCajaRequest{
		CodigoCajaSucursal: ptr(3),
		CodigoUsuario:      ptr(9),
		MontoInicial:       &monto,
	})
	require.NoError(t, err)

	status, env := salida.Responder()
	assert.Equal(t, 400, status)
	assert.Nil(t, env.Result)
	assert.Equal(t, "Ya existe una apertura activa para esta caja", env.Message)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCerrarSinAperturaEsErrorControlado(t *testing.T) {
	g, mock := newMockGateway(t)

	mock.ExpectExec(`CALL sfac_SpGestionarAperturaCierreCaja\(`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT @pnTypeResult`).
		WillReturnRows(outRows(1, nil, "No existe una apertura activa para cerrar"))

	caja := NewCajaRepo(g)
	salida, err := caja.Gestionar(context.Background(), CajaCerrar, dto.AperturaCierreCajaRequest{
		CodigoCajaSucursal: ptr(3),
		CodigoUsuario:      ptr(9),
	})
	require.NoError(t, err)

	status, _ := salida.Responder()
	assert.Equal(t, 400, status)
}

func TestUsuariosRepoParamOrder(t *testing.T) {
	g, mock := newMockGateway(t)

	mock.ExpectExec(`CALL seg_SpGestionarUsuarios\(\?, \?, \?, \?, \?, \?, \?, \?, \?, \?, @pnTypeResult, @pcResult, @pcMessage\)`).
		WithArgs(4, nil, nil, nil, nil, "cajero@sfac.hn", nil, nil, nil, nil).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT @pnTypeResult`).
		WillReturnRows(outRows(0, `[{"CodigoUsuario":9}]`, "ok"))

	repo := NewUsuariosRepo(g)
	salida, err := repo.ObtenerPorCorreo(context.Background(), "cajero@sfac.hn")
	require.NoError(t, err)

	result, ok := salida.ResultString()
	assert.True(t, ok)
	assert.Contains(t, result, "CodigoUsuario")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrdenesRepoSerializaDetalle(t *testing.T) {
	g, mock := newMockGateway(t)

	mock.ExpectExec(`CALL sfac_SpGestionarOrdenes\(`).
		WithArgs(1, nil, 9, nil, nil, nil,
			`[{"CodigoInventario":5,"Cantidad":2}]`, "10.0.0.2", 4).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT @pnTypeResult`).
		WillReturnRows(outRows(0, `{"numeroOrden":77}`, "Orden creada"))

	repo := NewOrdenesRepo(g, "10.0.0.2")
	salida, err := repo.Gestionar(context.Background(), OrdenCrear, dto.OrdenRequest{
		CodigoUsuario: ptr(9),
		CodigoMesa:    ptr(4),
		DetalleOrden: []dto.DetalleOrden{
			{CodigoInventario: ptr(5), Cantidad: 2},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, respuesta.TipoExitoso, salida.TypeResult)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNullIfEmpty(t *testing.T) {
	cero := 0
	vacia := ""

	assert.Nil(t, NullIfEmpty(nil))
	assert.Nil(t, NullIfEmpty(""))
	assert.Nil(t, NullIfEmpty("[]"))
	assert.Nil(t, NullIfEmpty([]int{}))
	assert.Nil(t, NullIfEmpty([]string{}))
	assert.Nil(t, NullIfEmpty((*int)(nil)))
	assert.Nil(t, NullIfEmpty(&vacia))

	// Zero and false are real values for the procedures.
	assert.Equal(t, 0, NullIfEmpty(0))
	assert.Equal(t, 0, NullIfEmpty(&cero))
	assert.Equal(t, false, NullIfEmpty(false))
	assert.Equal(t, "hola", NullIfEmpty("hola"))
	assert.Equal(t, []int{1}, NullIfEmpty([]int{1}))
}

func TestJSONOrNull(t *testing.T) {
	assert.Nil(t, JSONOrNull(nil))
	assert.Nil(t, JSONOrNull([]int{}))
	assert.Nil(t, JSONOrNull(map[string]int{}))
	assert.Nil(t, JSONOrNull(""))

	assert.Equal(t, `[1,2]`, JSONOrNull([]int{1, 2}))
	assert.Equal(t, `{"a":1}`, JSONOrNull(map[string]int{"a": 1}))
	// An already-serialized string re-serializes as a JSON string; the
	// procedures parse it the same way.
	assert.Equal(t, `"[1]"`, JSONOrNull("[1]"))
}

func ptr[T any](v T) *T { return &v }
