package handler

import (
	"github.com/gin-gonic/gin"

	"sfacapi/internal/dto"
	"sfacapi/internal/repository"
	"sfacapi/internal/service"
)

// OrdenHandler routes kitchen orders. Crear and ActualizarEstado go through
// the service so the realtime hub announces them; the rest hit the procedure
// directly.
type OrdenHandler struct {
	svc     *service.OrdenService
	ordenes *repository.OrdenesRepo
}

func NewOrdenHandler(svc *service.OrdenService, ordenes *repository.OrdenesRepo) *OrdenHandler {
	return &OrdenHandler{svc: svc, ordenes: ordenes}
}

func (h *OrdenHandler) Obtener(c *gin.Context) {
	var req dto.OrdenRequest
	if !bindQuery(c, &req) {
		return
	}
	salida, err := h.ordenes.Gestionar(c.Request.Context(), repository.OrdenObtener, req)
	responder(c, salida, err)
}

// ObtenerDeUsuario lists the open orders of the session user (a waiter sees
// only their own tables).
func (h *OrdenHandler) ObtenerDeUsuario(c *gin.Context) {
	var req dto.OrdenRequest
	if !bindQuery(c, &req) {
		return
	}
	req.CodigoUsuario = usuarioActual(c)
	salida, err := h.ordenes.Gestionar(c.Request.Context(), repository.OrdenObtenerDeUsuario, req)
	responder(c, salida, err)
}

func (h *OrdenHandler) Crear(c *gin.Context) {
	var req dto.OrdenRequest
	if !bindAndValidate(c, &req) {
		return
	}
	req.CodigoUsuario = usuarioActual(c)
	status, env := h.svc.Crear(c.Request.Context(), req)
	c.JSON(status, env)
}

func (h *OrdenHandler) Editar(c *gin.Context) {
	var req dto.OrdenRequest
	if !bindAndValidate(c, &req) {
		return
	}
	req.CodigoUsuario = usuarioActual(c)
	salida, err := h.ordenes.Gestionar(c.Request.Context(), repository.OrdenEditar, req)
	responder(c, salida, err)
}

func (h *OrdenHandler) ActualizarEstado(c *gin.Context) {
	var req dto.OrdenRequest
	if !bindAndValidate(c, &req) {
		return
	}
	req.CodigoUsuario = usuarioActual(c)
	status, env := h.svc.ActualizarEstado(c.Request.Context(), req)
	c.JSON(status, env)
}

func (h *OrdenHandler) Cerrar(c *gin.Context) {
	var req dto.OrdenRequest
	if !bindAndValidate(c, &req) {
		return
	}
	req.CodigoUsuario = usuarioActual(c)
	salida, err := h.ordenes.Gestionar(c.Request.Context(), repository.OrdenCerrar, req)
	responder(c, salida, err)
}
