package handler

import (
	"github.com/gin-gonic/gin"

	"sfacapi/internal/dto"
	"sfacapi/internal/repository"
)

// CajaHandler covers the till session lifecycle, its cash movements and the
// report endpoints. Every call stamps the session user so the procedures can
// resolve which till the cashier is assigned to.
type CajaHandler struct {
	cajas *repository.CajaRepo
}

func NewCajaHandler(cajas *repository.CajaRepo) *CajaHandler { return &CajaHandler{cajas: cajas} }

func (h *CajaHandler) Abrir(c *gin.Context) {
	var req dto.AperturaCierreCajaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	req.CodigoUsuario = usuarioActual(c)
	salida, err := h.cajas.Gestionar(c.Request.Context(), repository.CajaAbrir, req)
	responder(c, salida, err)
}

func (h *CajaHandler) Cerrar(c *gin.Context) {
	var req dto.AperturaCierreCajaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	req.CodigoUsuario = usuarioActual(c)
	salida, err := h.cajas.Gestionar(c.Request.Context(), repository.CajaCerrar, req)
	responder(c, salida, err)
}

func (h *CajaHandler) Estado(c *gin.Context) {
	var req dto.AperturaCierreCajaRequest
	if !bindQuery(c, &req) {
		return
	}
	req.CodigoUsuario = usuarioActual(c)
	salida, err := h.cajas.Gestionar(c.Request.Context(), repository.CajaEstado, req)
	responder(c, salida, err)
}

func (h *CajaHandler) ValidarPuedeFacturar(c *gin.Context) {
	var req dto.AperturaCierreCajaRequest
	if !bindQuery(c, &req) {
		return
	}
	req.CodigoUsuario = usuarioActual(c)
	salida, err := h.cajas.Gestionar(c.Request.Context(), repository.CajaValidarFacturacion, req)
	responder(c, salida, err)
}

// Historial lists past sessions. An explicit CodigoUsuario query param wins
// over the session user, so a supervisor can review another cashier's tills.
func (h *CajaHandler) Historial(c *gin.Context) {
	var req dto.AperturaCierreCajaRequest
	if !bindQuery(c, &req) {
		return
	}
	if req.CodigoUsuario == nil {
		req.CodigoUsuario = usuarioActual(c)
	}
	salida, err := h.cajas.Gestionar(c.Request.Context(), repository.CajaHistorial, req)
	responder(c, salida, err)
}

func (h *CajaHandler) ResumenVentas(c *gin.Context) {
	var req dto.AperturaCierreCajaRequest
	if !bindQuery(c, &req) {
		return
	}
	req.CodigoUsuario = usuarioActual(c)
	salida, err := h.cajas.Gestionar(c.Request.Context(), repository.CajaResumenVentas, req)
	responder(c, salida, err)
}

func (h *CajaHandler) CrearMovimiento(c *gin.Context) {
	var req dto.MovimientoCajaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	req.CodigoUsuario = usuarioActual(c)
	salida, err := h.cajas.GestionarMovimiento(c.Request.Context(), repository.MovimientoCrear, req)
	responder(c, salida, err)
}

func (h *CajaHandler) ObtenerMovimientos(c *gin.Context) {
	var req dto.MovimientoCajaRequest
	if !bindQuery(c, &req) {
		return
	}
	req.CodigoUsuario = usuarioActual(c)
	salida, err := h.cajas.GestionarMovimiento(c.Request.Context(), repository.MovimientoObtener, req)
	responder(c, salida, err)
}

func (h *CajaHandler) EliminarMovimiento(c *gin.Context) {
	var req dto.MovimientoCajaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	req.CodigoUsuario = usuarioActual(c)
	salida, err := h.cajas.GestionarMovimiento(c.Request.Context(), repository.MovimientoEliminar, req)
	responder(c, salida, err)
}

func (h *CajaHandler) ReporteCierre(c *gin.Context) {
	var req dto.ReporteCierreCajaRequest
	if !bindQuery(c, &req) {
		return
	}
	req.CodigoUsuario = usuarioActual(c)
	salida, err := h.cajas.ReporteCierre(c.Request.Context(), req)
	responder(c, salida, err)
}

func (h *CajaHandler) ReporteCierreMensual(c *gin.Context) {
	var req dto.ReporteCierreMensualRequest
	if !bindQuery(c, &req) {
		return
	}
	req.CodigoUsuario = usuarioActual(c)
	salida, err := h.cajas.ReporteCierreMensual(c.Request.Context(), req)
	responder(c, salida, err)
}

func (h *CajaHandler) ReporteVentasDiarias(c *gin.Context) {
	var req dto.ReporteVentasDiariasRequest
	if !bindQuery(c, &req) {
		return
	}
	req.CodigoUsuario = usuarioActual(c)
	salida, err := h.cajas.ReporteVentasDiarias(c.Request.Context(), req)
	responder(c, salida, err)
}

func (h *CajaHandler) ReporteComprasDiarias(c *gin.Context) {
	var req dto.ReporteComprasDiariasRequest
	if !bindQuery(c, &req) {
		return
	}
	req.CodigoUsuario = usuarioActual(c)
	salida, err := h.cajas.ReporteComprasDiarias(c.Request.Context(), req)
	responder(c, salida, err)
}

func (h *CajaHandler) ReporteInventario(c *gin.Context) {
	var req dto.ReporteInventarioRequest
	if !bindQuery(c, &req) {
		return
	}
	req.CodigoUsuario = usuarioActual(c)
	salida, err := h.cajas.ReporteInventario(c.Request.Context(), req)
	responder(c, salida, err)
}
