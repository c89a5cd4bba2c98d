package handler

import (
	"net/http"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"sfacapi/internal/repository"
)

func TestTotalFacturasRespondeConteo(t *testing.T) {
	g, mock := newGateway(t)
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM sfac_Factura`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(42))

	h := NewFacturaHandler(repository.NewFacturasRepo(g))
	r := gin.New()
	r.GET("/SFAC/ObtenerFacturas/totalFacturas", h.Total)

	w := hacerJSON(t, r, http.MethodGet, "/SFAC/ObtenerFacturas/totalFacturas", "")
	assert.Equal(t, http.StatusOK, w.Code)

	body := decodificar(t, w)
	assert.Equal(t, "Se obtuvieron todos las Facturas", body["message"])
	assert.Equal(t, float64(42), body["result"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEditarFacturaUsaAlSupervisorQueAprobo(t *testing.T) {
	g, mock := newGateway(t)
	mock.ExpectExec(`CALL sfac_SpGestionarFacturas\(`).
		WithArgs(2, 15, 7, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT @pnTypeResult`).
		WillReturnRows(filasSalida(0, nil, "Factura actualizada"))

	h := NewFacturaHandler(repository.NewFacturasRepo(g))
	r := gin.New()
	r.PUT("/SFAC/EditarFactura", conUsuario(9), conSupervisor(7), h.Editar)

	w := hacerJSON(t, r, http.MethodPut, "/SFAC/EditarFactura", `{"CodigoFactura":15}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCrearFacturaSinSupervisorUsaSesion(t *testing.T) {
	g, mock := newGateway(t)
	mock.ExpectExec(`CALL sfac_SpGestionarFacturas\(`).
		WithArgs(1, nil, 9, nil, 4, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT @pnTypeResult`).
		WillReturnRows(filasSalida(0, `{"CodigoFactura":88}`, "Factura creada"))

	h := NewFacturaHandler(repository.NewFacturasRepo(g))
	r := gin.New()
	r.POST("/SFAC/CrearFactura", conUsuario(9), h.Crear)

	w := hacerJSON(t, r, http.MethodPost, "/SFAC/CrearFactura", `{"CodigoPersona":4}`)
	assert.Equal(t, http.StatusOK, w.Code)

	body := decodificar(t, w)
	assert.Equal(t, "Factura creada", body["message"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCrearFacturaErrorControladoEs400(t *testing.T) {
	g, mock := newGateway(t)
	mock.ExpectExec(`CALL sfac_SpGestionarFacturas\(`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT @pnTypeResult`).
		WillReturnRows(filasSalida(1, nil, "No hay una caja abierta"))

	h := NewFacturaHandler(repository.NewFacturasRepo(g))
	r := gin.New()
	r.POST("/SFAC/CrearFactura", conUsuario(9), h.Crear)

	w := hacerJSON(t, r, http.MethodPost, "/SFAC/CrearFactura", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	body := decodificar(t, w)
	assert.Equal(t, "No hay una caja abierta", body["message"])
}

func TestCrearFacturaJSONInvalido(t *testing.T) {
	g, _ := newGateway(t)
	h := NewFacturaHandler(repository.NewFacturasRepo(g))
	r := gin.New()
	r.POST("/SFAC/CrearFactura", h.Crear)

	w := hacerJSON(t, r, http.MethodPost, "/SFAC/CrearFactura", `{no es json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "JSON inválido")
}

func TestObtenerInformacionFacturaAceptaAmbosNombres(t *testing.T) {
	g, mock := newGateway(t)
	mock.ExpectExec(`CALL sfac_SpObtenerInformacionFactura\(\?, @pnTypeResult, @pcResult, @pcMessage\)`).
		WithArgs("000-001-01-00001234").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT @pnTypeResult`).
		WillReturnRows(filasSalida(0, `{"CAI":"ABC123"}`, "ok"))

	h := NewFacturaHandler(repository.NewFacturasRepo(g))
	r := gin.New()
	r.GET("/ObtenerInformacionFactura", h.ObtenerInformacion)

	w := hacerJSON(t, r, http.MethodGet, "/ObtenerInformacionFactura?NumeroFactura=000-001-01-00001234", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
