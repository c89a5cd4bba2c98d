package handler

import (
	"github.com/gin-gonic/gin"

	"sfacapi/internal/dto"
	"sfacapi/internal/repository"
	"sfacapi/internal/respuesta"
)

// FacturaHandler covers the invoice header and its satellites: detail lines,
// payment lines, discounts, talonarios and till assignments. The mutating
// endpoints that can alter an emitted invoice run behind privileged re-auth,
// so those resolve the acting user through usuarioAutorizado.
type FacturaHandler struct {
	facturas *repository.FacturasRepo
}

func NewFacturaHandler(facturas *repository.FacturasRepo) *FacturaHandler {
	return &FacturaHandler{facturas: facturas}
}

func (h *FacturaHandler) Obtener(c *gin.Context) {
	var req dto.FacturaRequest
	if !bindQuery(c, &req) {
		return
	}
	req.CodigoUsuario = usuarioActual(c)
	salida, err := h.facturas.Gestionar(c.Request.Context(), repository.FacturaObtener, req)
	responder(c, salida, err)
}

func (h *FacturaHandler) Total(c *gin.Context) {
	total, err := h.facturas.TotalFacturas(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	status, env := respuesta.Exitosa("Se obtuvieron todos las Facturas", total)
	c.JSON(status, env)
}

func (h *FacturaHandler) Crear(c *gin.Context) {
	var req dto.FacturaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	req.CodigoUsuario = usuarioActual(c)
	salida, err := h.facturas.Gestionar(c.Request.Context(), repository.FacturaCrear, req)
	responder(c, salida, err)
}

// CrearWeb is the public storefront checkout: no session, the cart travels
// complete in Aux.
func (h *FacturaHandler) CrearWeb(c *gin.Context) {
	var req dto.FacturaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	salida, err := h.facturas.Gestionar(c.Request.Context(), repository.FacturaCrearWeb, req)
	responder(c, salida, err)
}

func (h *FacturaHandler) Editar(c *gin.Context) {
	var req dto.FacturaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	req.CodigoUsuario = usuarioAutorizado(c)
	salida, err := h.facturas.Gestionar(c.Request.Context(), repository.FacturaEditar, req)
	responder(c, salida, err)
}

func (h *FacturaHandler) Eliminar(c *gin.Context) {
	var req dto.FacturaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	req.CodigoUsuario = usuarioActual(c)
	salida, err := h.facturas.Gestionar(c.Request.Context(), repository.FacturaEliminar, req)
	responder(c, salida, err)
}

func (h *FacturaHandler) AsignarOrden(c *gin.Context) {
	var req dto.FacturaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	req.CodigoUsuario = usuarioAutorizado(c)
	salida, err := h.facturas.Gestionar(c.Request.Context(), repository.FacturaAsignarOrden, req)
	responder(c, salida, err)
}

// ObtenerInformacion feeds the print preview: one denormalized row with
// everything the ticket needs, by invoice number.
func (h *FacturaHandler) ObtenerInformacion(c *gin.Context) {
	numero := c.Query("numeroFactura")
	if numero == "" {
		numero = c.Query("NumeroFactura")
	}
	salida, err := h.facturas.ObtenerInformacion(c.Request.Context(), numero)
	responder(c, salida, err)
}

func (h *FacturaHandler) ObtenerDetalle(c *gin.Context) {
	var req dto.DetalleFacturaRequest
	if !bindQuery(c, &req) {
		return
	}
	req.CodigoUsuario = usuarioActual(c)
	salida, err := h.facturas.GestionarDetalle(c.Request.Context(), repository.DetalleFacturaObtener, req)
	responder(c, salida, err)
}

func (h *FacturaHandler) CrearDetalle(c *gin.Context) {
	var req dto.DetalleFacturaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	req.CodigoUsuario = usuarioAutorizado(c)
	salida, err := h.facturas.GestionarDetalle(c.Request.Context(), repository.DetalleFacturaCrear, req)
	responder(c, salida, err)
}

func (h *FacturaHandler) CrearDetalleWeb(c *gin.Context) {
	var req dto.DetalleFacturaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	salida, err := h.facturas.GestionarDetalle(c.Request.Context(), repository.DetalleFacturaCrear, req)
	responder(c, salida, err)
}

func (h *FacturaHandler) EditarDetalle(c *gin.Context) {
	var req dto.DetalleFacturaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	req.CodigoUsuario = usuarioAutorizado(c)
	salida, err := h.facturas.GestionarDetalle(c.Request.Context(), repository.DetalleFacturaEditar, req)
	responder(c, salida, err)
}

func (h *FacturaHandler) EliminarDetalle(c *gin.Context) {
	var req dto.DetalleFacturaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	req.CodigoUsuario = usuarioActual(c)
	salida, err := h.facturas.GestionarDetalle(c.Request.Context(), repository.DetalleFacturaEliminar, req)
	responder(c, salida, err)
}

func (h *FacturaHandler) ObtenerFormasPago(c *gin.Context) {
	var req dto.DetalleFormaPagoRequest
	if !bindQuery(c, &req) {
		return
	}
	req.CodigoUsuario = usuarioActual(c)
	salida, err := h.facturas.GestionarFormaPago(c.Request.Context(), repository.FormaPagoObtener, req)
	responder(c, salida, err)
}

func (h *FacturaHandler) CrearFormaPago(c *gin.Context) {
	var req dto.DetalleFormaPagoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	req.CodigoUsuario = usuarioAutorizado(c)
	salida, err := h.facturas.GestionarFormaPago(c.Request.Context(), repository.FormaPagoCrear, req)
	responder(c, salida, err)
}

func (h *FacturaHandler) EditarFormaPago(c *gin.Context) {
	var req dto.DetalleFormaPagoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	req.CodigoUsuario = usuarioAutorizado(c)
	salida, err := h.facturas.GestionarFormaPago(c.Request.Context(), repository.FormaPagoEditar, req)
	responder(c, salida, err)
}

func (h *FacturaHandler) EliminarFormaPago(c *gin.Context) {
	var req dto.DetalleFormaPagoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	req.CodigoUsuario = usuarioActual(c)
	salida, err := h.facturas.GestionarFormaPago(c.Request.Context(), repository.FormaPagoEliminar, req)
	responder(c, salida, err)
}

func (h *FacturaHandler) ObtenerDescuentos(c *gin.Context) {
	var req dto.DescuentoFacturaRequest
	if !bindQuery(c, &req) {
		return
	}
	req.CodigoUsuario = usuarioActual(c)
	salida, err := h.facturas.GestionarDescuento(c.Request.Context(), repository.DescuentoObtener, req)
	responder(c, salida, err)
}

func (h *FacturaHandler) CrearDescuento(c *gin.Context) {
	var req dto.DescuentoFacturaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	req.CodigoUsuario = usuarioAutorizado(c)
	salida, err := h.facturas.GestionarDescuento(c.Request.Context(), repository.DescuentoCrear, req)
	responder(c, salida, err)
}

func (h *FacturaHandler) EditarDescuento(c *gin.Context) {
	var req dto.DescuentoFacturaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	req.CodigoUsuario = usuarioAutorizado(c)
	salida, err := h.facturas.GestionarDescuento(c.Request.Context(), repository.DescuentoEditar, req)
	responder(c, salida, err)
}

func (h *FacturaHandler) EliminarDescuento(c *gin.Context) {
	var req dto.DescuentoFacturaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	req.CodigoUsuario = usuarioActual(c)
	salida, err := h.facturas.GestionarDescuento(c.Request.Context(), repository.DescuentoEliminar, req)
	responder(c, salida, err)
}

func (h *FacturaHandler) ObtenerTalonarios(c *gin.Context) {
	var req dto.TalonarioRequest
	if !bindQuery(c, &req) {
		return
	}
	req.CodigoUsuario = usuarioActual(c)
	salida, err := h.facturas.GestionarTalonario(c.Request.Context(), repository.TalonarioObtener, req)
	responder(c, salida, err)
}

func (h *FacturaHandler) CrearTalonario(c *gin.Context) {
	var req dto.TalonarioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	req.CodigoUsuario = usuarioActual(c)
	salida, err := h.facturas.GestionarTalonario(c.Request.Context(), repository.TalonarioCrear, req)
	responder(c, salida, err)
}

func (h *FacturaHandler) EditarTalonario(c *gin.Context) {
	var req dto.TalonarioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	req.CodigoUsuario = usuarioAutorizado(c)
	salida, err := h.facturas.GestionarTalonario(c.Request.Context(), repository.TalonarioEditar, req)
	responder(c, salida, err)
}

func (h *FacturaHandler) EliminarTalonario(c *gin.Context) {
	var req dto.TalonarioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	req.CodigoUsuario = usuarioAutorizado(c)
	salida, err := h.facturas.GestionarTalonario(c.Request.Context(), repository.TalonarioEliminar, req)
	responder(c, salida, err)
}

func (h *FacturaHandler) ObtenerDetalleTalonario(c *gin.Context) {
	var req dto.DetalleTalonarioRequest
	if !bindQuery(c, &req) {
		return
	}
	req.CodigoUsuario = usuarioActual(c)
	salida, err := h.facturas.GestionarDetalleTalonario(c.Request.Context(), repository.DetalleTalonarioObtener, req)
	responder(c, salida, err)
}

func (h *FacturaHandler) CrearDetalleTalonario(c *gin.Context) {
	var req dto.DetalleTalonarioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	req.CodigoUsuario = usuarioActual(c)
	salida, err := h.facturas.GestionarDetalleTalonario(c.Request.Context(), repository.DetalleTalonarioCrear, req)
	responder(c, salida, err)
}

func (h *FacturaHandler) EditarDetalleTalonario(c *gin.Context) {
	var req dto.DetalleTalonarioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	req.CodigoUsuario = usuarioAutorizado(c)
	salida, err := h.facturas.GestionarDetalleTalonario(c.Request.Context(), repository.DetalleTalonarioEditar, req)
	responder(c, salida, err)
}

func (h *FacturaHandler) EliminarDetalleTalonario(c *gin.Context) {
	var req dto.DetalleTalonarioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	req.CodigoUsuario = usuarioAutorizado(c)
	salida, err := h.facturas.GestionarDetalleTalonario(c.Request.Context(), repository.DetalleTalonarioEliminar, req)
	responder(c, salida, err)
}

func (h *FacturaHandler) ObtenerCajasSucursal(c *gin.Context) {
	var req dto.CajaSucursalRequest
	if !bindQuery(c, &req) {
		return
	}
	req.CodigoUsuario = usuarioActual(c)
	salida, err := h.facturas.GestionarCajaSucursal(c.Request.Context(), repository.CajaSucursalObtener, req)
	responder(c, salida, err)
}

func (h *FacturaHandler) CrearCajaSucursal(c *gin.Context) {
	var req dto.CajaSucursalRequest
	if !bindAndValidate(c, &req) {
		return
	}
	req.CodigoUsuario = usuarioActual(c)
	salida, err := h.facturas.GestionarCajaSucursal(c.Request.Context(), repository.CajaSucursalCrear, req)
	responder(c, salida, err)
}

func (h *FacturaHandler) EditarCajaSucursal(c *gin.Context) {
	var req dto.CajaSucursalRequest
	if !bindAndValidate(c, &req) {
		return
	}
	req.CodigoUsuario = usuarioAutorizado(c)
	salida, err := h.facturas.GestionarCajaSucursal(c.Request.Context(), repository.CajaSucursalEditar, req)
	responder(c, salida, err)
}

func (h *FacturaHandler) EliminarCajaSucursal(c *gin.Context) {
	var req dto.CajaSucursalRequest
	if !bindAndValidate(c, &req) {
		return
	}
	req.CodigoUsuario = usuarioAutorizado(c)
	salida, err := h.facturas.GestionarCajaSucursal(c.Request.Context(), repository.CajaSucursalEliminar, req)
	responder(c, salida, err)
}
