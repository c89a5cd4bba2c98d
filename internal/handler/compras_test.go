package handler

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sfacapi/internal/infra"
	"sfacapi/internal/repository"
)

func nuevoComprasHandler(t *testing.T) (*ComprasHandler, sqlmock.Sqlmock, string) {
	t.Helper()
	g, mock := newGateway(t)
	base := t.TempDir()
	almacen, err := infra.NewAlmacen(base)
	require.NoError(t, err)
	return NewComprasHandler(repository.NewComprasRepo(g), almacen), mock, base
}

func TestSubirImagenSinArchivo(t *testing.T) {
	h, _, _ := nuevoComprasHandler(t)
	r := gin.New()
	r.POST("/Compras/SubirImagenFactura", h.SubirImagen)

	w := hacerJSON(t, r, http.MethodPost, "/Compras/SubirImagenFactura", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "No file uploaded")
}

func TestSubirImagenReemplazaLaAnterior(t *testing.T) {
	h, _, base := nuevoComprasHandler(t)

	// A PDF for the same invoice was already on disk; uploading a JPG replaces it.
	anterior := filepath.Join(base, "compras", "Compra_12.pdf")
	require.NoError(t, os.WriteFile(anterior, []byte("pdf viejo"), 0o644))

	var cuerpo bytes.Buffer
	mw := multipart.NewWriter(&cuerpo)
	parte, err := mw.CreateFormFile("file", "foto.jpg")
	require.NoError(t, err)
	_, err = parte.Write([]byte("imagen nueva"))
	require.NoError(t, err)
	require.NoError(t, mw.WriteField("codigoFactura", "12"))
	require.NoError(t, mw.Close())

	r := gin.New()
	r.POST("/Compras/SubirImagenFactura", h.SubirImagen)

	req := httptest.NewRequest(http.MethodPost, "/Compras/SubirImagenFactura", &cuerpo)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodificar(t, w)
	assert.Equal(t, "Imagen de factura subida correctamente", body["message"])
	assert.Equal(t, "uploads/compras/Compra_12.jpg", body["result"])

	contenido, err := os.ReadFile(filepath.Join(base, "compras", "Compra_12.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "imagen nueva", string(contenido))
	assert.NoFileExists(t, anterior)
}

func TestSubirImagenSinCodigoFactura(t *testing.T) {
	h, _, _ := nuevoComprasHandler(t)

	var cuerpo bytes.Buffer
	mw := multipart.NewWriter(&cuerpo)
	parte, err := mw.CreateFormFile("file", "foto.jpg")
	require.NoError(t, err)
	_, err = parte.Write([]byte("imagen"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	r := gin.New()
	r.POST("/Compras/SubirImagenFactura", h.SubirImagen)

	req := httptest.NewRequest(http.MethodPost, "/Compras/SubirImagenFactura", &cuerpo)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "codigoFactura es requerido")
}

func TestEliminarImagenSinReferencia(t *testing.T) {
	h, _, _ := nuevoComprasHandler(t)
	r := gin.New()
	r.DELETE("/Compras/EliminarImagenFactura", h.EliminarImagen)

	w := hacerJSON(t, r, http.MethodDelete, "/Compras/EliminarImagenFactura", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "No se proporcionó código de factura o ruta de imagen")
}

func TestEliminarImagenPorCodigo(t *testing.T) {
	h, _, base := nuevoComprasHandler(t)
	archivo := filepath.Join(base, "compras", "Compra_12.jpg")
	require.NoError(t, os.WriteFile(archivo, []byte("imagen"), 0o644))

	r := gin.New()
	r.DELETE("/Compras/EliminarImagenFactura", h.EliminarImagen)

	w := hacerJSON(t, r, http.MethodDelete, "/Compras/EliminarImagenFactura",
		`{"codigoFactura":12}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoFileExists(t, archivo)
}

func TestRecalcularTotalesInvocaElProcedimiento(t *testing.T) {
	g, mock := newGateway(t)
	base := t.TempDir()
	almacen, err := infra.NewAlmacen(base)
	require.NoError(t, err)

	mock.ExpectExec(`CALL sfac_SpRecalcularTotalesFacturaCompra\(\?, \?, @pnTypeResult, @pcResult, @pcMessage\)`).
		WithArgs(12, 9).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT @pnTypeResult`).
		WillReturnRows(filasSalida(0, `{"Total":"1250.00"}`, "Totales recalculados"))

	h := NewComprasHandler(repository.NewComprasRepo(g), almacen)
	r := gin.New()
	r.POST("/Compras/RecalcularTotalesFactura", conUsuario(9), h.RecalcularTotales)

	w := hacerJSON(t, r, http.MethodPost, "/Compras/RecalcularTotalesFactura",
		`{"CodigoFactura":12}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
