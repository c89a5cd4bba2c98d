package handler

import (
	"github.com/gin-gonic/gin"

	"sfacapi/internal/dto"
	"sfacapi/internal/repository"
	"sfacapi/internal/respuesta"
)

// InventarioHandler covers the product catalog: CRUD, activation, the combo /
// extras / variantes lookups and the packaging records. ObtenerWeb and Total
// are public for the storefront.
type InventarioHandler struct {
	inventario *repository.InventarioRepo
}

func NewInventarioHandler(inventario *repository.InventarioRepo) *InventarioHandler {
	return &InventarioHandler{inventario: inventario}
}

func (h *InventarioHandler) Obtener(c *gin.Context) {
	var req dto.InventarioRequest
	if !bindQuery(c, &req) {
		return
	}
	req.CodigoUsuario = usuarioActual(c)
	salida, err := h.inventario.Gestionar(c.Request.Context(), repository.InventarioObtener, req)
	responder(c, salida, err)
}

// ObtenerWeb lists active products grouped by category for the public menu.
func (h *InventarioHandler) ObtenerWeb(c *gin.Context) {
	var req dto.InventarioRequest
	if !bindQuery(c, &req) {
		return
	}
	salida, err := h.inventario.Gestionar(c.Request.Context(), repository.InventarioObtenerPorCategoria, req)
	responder(c, salida, err)
}

func (h *InventarioHandler) Total(c *gin.Context) {
	total, err := h.inventario.TotalProductos(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	status, env := respuesta.Exitosa("Se obtuvieron todos los productos", total)
	c.JSON(status, env)
}

func (h *InventarioHandler) Crear(c *gin.Context) {
	var req dto.InventarioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	req.CodigoUsuario = usuarioActual(c)
	salida, err := h.inventario.Gestionar(c.Request.Context(), repository.InventarioCrear, req)
	responder(c, salida, err)
}

func (h *InventarioHandler) Editar(c *gin.Context) {
	var req dto.InventarioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	req.CodigoUsuario = usuarioActual(c)
	salida, err := h.inventario.Gestionar(c.Request.Context(), repository.InventarioEditar, req)
	responder(c, salida, err)
}

func (h *InventarioHandler) Eliminar(c *gin.Context) {
	var req dto.InventarioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	req.CodigoUsuario = usuarioActual(c)
	salida, err := h.inventario.Gestionar(c.Request.Context(), repository.InventarioEliminar, req)
	responder(c, salida, err)
}

func (h *InventarioHandler) Activar(c *gin.Context) {
	var req dto.InventarioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	req.CodigoUsuario = usuarioActual(c)
	salida, err := h.inventario.Gestionar(c.Request.Context(), repository.InventarioActivar, req)
	responder(c, salida, err)
}

func (h *InventarioHandler) ProductosCombo(c *gin.Context) {
	var req dto.InventarioRequest
	if !bindQuery(c, &req) {
		return
	}
	req.CodigoUsuario = usuarioActual(c)
	salida, err := h.inventario.Gestionar(c.Request.Context(), repository.InventarioObtenerCombos, req)
	responder(c, salida, err)
}

func (h *InventarioHandler) ExtrasProducto(c *gin.Context) {
	var req dto.InventarioRequest
	if !bindQuery(c, &req) {
		return
	}
	req.CodigoUsuario = usuarioActual(c)
	salida, err := h.inventario.Gestionar(c.Request.Context(), repository.InventarioObtenerExtras, req)
	responder(c, salida, err)
}

func (h *InventarioHandler) VariantesProducto(c *gin.Context) {
	var req dto.InventarioRequest
	if !bindQuery(c, &req) {
		return
	}
	req.CodigoUsuario = usuarioActual(c)
	salida, err := h.inventario.Gestionar(c.Request.Context(), repository.InventarioObtenerVariantes, req)
	responder(c, salida, err)
}

func (h *InventarioHandler) ObtenerEmpaquetados(c *gin.Context) {
	var req dto.EmpaquetadoRequest
	if !bindQuery(c, &req) {
		return
	}
	req.CodigoUsuario = usuarioActual(c)
	salida, err := h.inventario.GestionarEmpaquetado(c.Request.Context(), repository.EmpaquetadoObtener, req)
	responder(c, salida, err)
}

func (h *InventarioHandler) CrearEmpaquetado(c *gin.Context) {
	var req dto.EmpaquetadoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	req.CodigoUsuario = usuarioActual(c)
	salida, err := h.inventario.GestionarEmpaquetado(c.Request.Context(), repository.EmpaquetadoCrear, req)
	responder(c, salida, err)
}

func (h *InventarioHandler) EditarEmpaquetado(c *gin.Context) {
	var req dto.EmpaquetadoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	req.CodigoUsuario = usuarioActual(c)
	salida, err := h.inventario.GestionarEmpaquetado(c.Request.Context(), repository.EmpaquetadoEditar, req)
	responder(c, salida, err)
}

func (h *InventarioHandler) EliminarEmpaquetado(c *gin.Context) {
	var req dto.EmpaquetadoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	req.CodigoUsuario = usuarioActual(c)
	salida, err := h.inventario.GestionarEmpaquetado(c.Request.Context(), repository.EmpaquetadoEliminar, req)
	responder(c, salida, err)
}
