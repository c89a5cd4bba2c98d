package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"sfacapi/internal/apierror"
	"sfacapi/internal/dto"
	"sfacapi/internal/infra"
	"sfacapi/internal/repository"
	"sfacapi/internal/respuesta"
)

// ComprasHandler covers purchase invoices, their detail lines, the header
// total recalculation and the invoice attachment files.
type ComprasHandler struct {
	compras *repository.ComprasRepo
	almacen *infra.Almacen
}

func NewComprasHandler(compras *repository.ComprasRepo, almacen *infra.Almacen) *ComprasHandler {
	return &ComprasHandler{compras: compras, almacen: almacen}
}

func (h *ComprasHandler) Obtener(c *gin.Context) {
	var req dto.FacturaCompraRequest
	if !bindQuery(c, &req) {
		return
	}
	req.CodigoUsuario = usuarioActual(c)
	salida, err := h.compras.Gestionar(c.Request.Context(), repository.FacturaCompraObtener, req)
	responder(c, salida, err)
}

// ObtenerPorCodigo reuses the obtener branch with the code filter.
func (h *ComprasHandler) ObtenerPorCodigo(c *gin.Context) {
	var req dto.FacturaCompraRequest
	if !bindQuery(c, &req) {
		return
	}
	req.CodigoUsuario = usuarioActual(c)
	salida, err := h.compras.Gestionar(c.Request.Context(), repository.FacturaCompraObtener, req)
	responder(c, salida, err)
}

func (h *ComprasHandler) Total(c *gin.Context) {
	var req dto.FacturaCompraRequest
	if !bindQuery(c, &req) {
		return
	}
	req.CodigoUsuario = usuarioActual(c)
	salida, err := h.compras.Gestionar(c.Request.Context(), repository.FacturaCompraTotal, req)
	responder(c, salida, err)
}

func (h *ComprasHandler) Crear(c *gin.Context) {
	var req dto.FacturaCompraRequest
	if !bindAndValidate(c, &req) {
		return
	}
	req.CodigoUsuario = usuarioActual(c)
	salida, err := h.compras.Gestionar(c.Request.Context(), repository.FacturaCompraCrear, req)
	responder(c, salida, err)
}

func (h *ComprasHandler) Editar(c *gin.Context) {
	var req dto.FacturaCompraRequest
	if !bindAndValidate(c, &req) {
		return
	}
	req.CodigoUsuario = usuarioActual(c)
	salida, err := h.compras.Gestionar(c.Request.Context(), repository.FacturaCompraEditar, req)
	responder(c, salida, err)
}

func (h *ComprasHandler) Eliminar(c *gin.Context) {
	var req dto.FacturaCompraRequest
	if !bindAndValidate(c, &req) {
		return
	}
	req.CodigoUsuario = usuarioActual(c)
	salida, err := h.compras.Gestionar(c.Request.Context(), repository.FacturaCompraEliminar, req)
	responder(c, salida, err)
}

func (h *ComprasHandler) ObtenerDetalle(c *gin.Context) {
	var req dto.DetalleFacturaCompraRequest
	if !bindQuery(c, &req) {
		return
	}
	req.CodigoUsuario = usuarioActual(c)
	salida, err := h.compras.GestionarDetalle(c.Request.Context(), repository.DetalleCompraObtener, req)
	responder(c, salida, err)
}

func (h *ComprasHandler) CrearDetalle(c *gin.Context) {
	var req dto.DetalleFacturaCompraRequest
	if !bindAndValidate(c, &req) {
		return
	}
	req.CodigoUsuario = usuarioActual(c)
	salida, err := h.compras.GestionarDetalle(c.Request.Context(), repository.DetalleCompraCrear, req)
	responder(c, salida, err)
}

func (h *ComprasHandler) EditarDetalle(c *gin.Context) {
	var req dto.DetalleFacturaCompraRequest
	if !bindAndValidate(c, &req) {
		return
	}
	req.CodigoUsuario = usuarioActual(c)
	salida, err := h.compras.GestionarDetalle(c.Request.Context(), repository.DetalleCompraEditar, req)
	responder(c, salida, err)
}

func (h *ComprasHandler) EliminarDetalle(c *gin.Context) {
	var req dto.DetalleFacturaCompraRequest
	if !bindAndValidate(c, &req) {
		return
	}
	req.CodigoUsuario = usuarioActual(c)
	salida, err := h.compras.GestionarDetalle(c.Request.Context(), repository.DetalleCompraEliminar, req)
	responder(c, salida, err)
}

func (h *ComprasHandler) RecalcularTotales(c *gin.Context) {
	var req dto.FacturaCompraRequest
	if !bindAndValidate(c, &req) {
		return
	}
	salida, err := h.compras.RecalcularTotales(c.Request.Context(), req.CodigoFactura, usuarioActual(c))
	responder(c, salida, err)
}

// SubirImagen stores the attachment under the predictable
// Compra_<codigoFactura> name, replacing any previous file.
func (h *ComprasHandler) SubirImagen(c *gin.Context) {
	archivo, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("No file uploaded"))
		return
	}
	codigoFactura, err := strconv.Atoi(c.PostForm("codigoFactura"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("codigoFactura es requerido"))
		return
	}
	origen, err := archivo.Open()
	if err != nil {
		c.Error(err)
		return
	}
	defer origen.Close()

	ruta, err := h.almacen.GuardarCompra(codigoFactura, archivo.Filename, origen)
	if err != nil {
		c.Error(err)
		return
	}
	status, env := respuesta.Exitosa("Imagen de factura subida correctamente", ruta)
	c.JSON(status, env)
}

// EliminarImagen accepts either the invoice code or an explicit route.
func (h *ComprasHandler) EliminarImagen(c *gin.Context) {
	var req struct {
		CodigoFactura *int   `json:"codigoFactura"`
		RutaImagen    string `json:"rutaImagen"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || (req.CodigoFactura == nil && req.RutaImagen == "") {
		c.JSON(http.StatusBadRequest, apierror.New("No se proporcionó código de factura o ruta de imagen"))
		return
	}
	var eliminados []string
	if req.CodigoFactura != nil {
		eliminados = h.almacen.EliminarCompra(*req.CodigoFactura)
	} else {
		eliminados = h.almacen.EliminarRuta(req.RutaImagen)
	}
	if len(eliminados) == 0 {
		status, env := respuesta.Exitosa("No se encontraron archivos para eliminar", nil)
		c.JSON(status, env)
		return
	}
	status, env := respuesta.Exitosa("Imagen(es) eliminada(s): "+strings.Join(eliminados, ", "), eliminados)
	c.JSON(status, env)
}
