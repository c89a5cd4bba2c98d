package handler

import (
	"github.com/gin-gonic/gin"

	"sfacapi/internal/dto"
	"sfacapi/internal/repository"
	"sfacapi/internal/service"
)

// ImpresionHandler drives the thermal printers: receipt generation, the LAN
// sweep, the test page and the registered-printer CRUD.
type ImpresionHandler struct {
	svc        *service.ImpresionService
	impresoras *repository.ImpresorasRepo
}

func NewImpresionHandler(svc *service.ImpresionService, impresoras *repository.ImpresorasRepo) *ImpresionHandler {
	return &ImpresionHandler{svc: svc, impresoras: impresoras}
}

func (h *ImpresionHandler) GenerarFactura(c *gin.Context) {
	var req dto.ImpresionFacturaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	status, env, err := h.svc.ImprimirFactura(req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(status, env)
}

func (h *ImpresionHandler) GenerarApertura(c *gin.Context) {
	var req dto.ImpresionAperturaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	status, env, err := h.svc.ImprimirApertura(req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(status, env)
}

func (h *ImpresionHandler) GenerarCierre(c *gin.Context) {
	var req dto.ImpresionCierreRequest
	if !bindAndValidate(c, &req) {
		return
	}
	status, env, err := h.svc.ImprimirCierre(req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(status, env)
}

func (h *ImpresionHandler) Buscar(c *gin.Context) {
	status, env := h.svc.BuscarImpresoras(c.Request.Context())
	c.JSON(status, env)
}

func (h *ImpresionHandler) Prueba(c *gin.Context) {
	var req dto.PruebaImpresionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	status, env, err := h.svc.ImprimirPrueba(req.IP)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(status, env)
}

func (h *ImpresionHandler) Obtener(c *gin.Context) {
	var req dto.ImpresoraRequest
	if !bindQuery(c, &req) {
		return
	}
	req.CodigoUsuario = usuarioActual(c)
	salida, err := h.impresoras.Gestionar(c.Request.Context(), repository.ImpresoraObtener, req)
	responder(c, salida, err)
}

func (h *ImpresionHandler) Crear(c *gin.Context) {
	var req dto.ImpresoraRequest
	if !bindAndValidate(c, &req) {
		return
	}
	req.CodigoUsuario = usuarioActual(c)
	salida, err := h.impresoras.Gestionar(c.Request.Context(), repository.ImpresoraCrear, req)
	responder(c, salida, err)
}

func (h *ImpresionHandler) Editar(c *gin.Context) {
	var req dto.ImpresoraRequest
	if !bindAndValidate(c, &req) {
		return
	}
	req.CodigoUsuario = usuarioAutorizado(c)
	salida, err := h.impresoras.Gestionar(c.Request.Context(), repository.ImpresoraEditar, req)
	responder(c, salida, err)
}

func (h *ImpresionHandler) Eliminar(c *gin.Context) {
	var req dto.ImpresoraRequest
	if !bindAndValidate(c, &req) {
		return
	}
	req.CodigoUsuario = usuarioAutorizado(c)
	salida, err := h.impresoras.Gestionar(c.Request.Context(), repository.ImpresoraEliminar, req)
	responder(c, salida, err)
}

func (h *ImpresionHandler) Activar(c *gin.Context) {
	var req dto.ImpresoraRequest
	if !bindAndValidate(c, &req) {
		return
	}
	req.CodigoUsuario = usuarioAutorizado(c)
	salida, err := h.impresoras.Gestionar(c.Request.Context(), repository.ImpresoraActivar, req)
	responder(c, salida, err)
}
