package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"sfacapi/internal/apierror"
	"sfacapi/internal/dto"
	"sfacapi/internal/repository"
	"sfacapi/internal/respuesta"
)

// ReservaHandler covers reservations, dining tables, the floor-plan layout
// and the two public request flows (eventos, menú degustación). The *WEB
// variants have no session and arrive straight from the marketing site.
type ReservaHandler struct {
	reservas *repository.ReservasRepo
}

func NewReservaHandler(reservas *repository.ReservasRepo) *ReservaHandler {
	return &ReservaHandler{reservas: reservas}
}

func (h *ReservaHandler) Obtener(c *gin.Context) {
	var req dto.ReservaRequest
	if !bindQuery(c, &req) {
		return
	}
	req.CodigoUsuario = usuarioActual(c)
	salida, err := h.reservas.Gestionar(c.Request.Context(), repository.ReservaObtener, req)
	responder(c, salida, err)
}

func (h *ReservaHandler) ObtenerWeb(c *gin.Context) {
	var req dto.ReservaRequest
	if !bindQuery(c, &req) {
		return
	}
	salida, err := h.reservas.Gestionar(c.Request.Context(), repository.ReservaObtener, req)
	responder(c, salida, err)
}

func (h *ReservaHandler) Total(c *gin.Context) {
	total, err := h.reservas.TotalReservas(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	status, env := respuesta.Exitosa("Se obtuvieron todos las reservas", total)
	c.JSON(status, env)
}

func (h *ReservaHandler) Crear(c *gin.Context) {
	var req dto.ReservaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	req.CodigoUsuario = usuarioActual(c)
	salida, err := h.reservas.Gestionar(c.Request.Context(), repository.ReservaCrear, req)
	responder(c, salida, err)
}

func (h *ReservaHandler) CrearWeb(c *gin.Context) {
	var req dto.ReservaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	salida, err := h.reservas.Gestionar(c.Request.Context(), repository.ReservaCrear, req)
	responder(c, salida, err)
}

func (h *ReservaHandler) Editar(c *gin.Context) {
	var req dto.ReservaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	req.CodigoUsuario = usuarioActual(c)
	salida, err := h.reservas.Gestionar(c.Request.Context(), repository.ReservaEditar, req)
	responder(c, salida, err)
}

func (h *ReservaHandler) AsignarMesa(c *gin.Context) {
	var req dto.ReservaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	req.CodigoUsuario = usuarioActual(c)
	salida, err := h.reservas.Gestionar(c.Request.Context(), repository.ReservaAsignarMesa, req)
	responder(c, salida, err)
}

func (h *ReservaHandler) ObtenerLayout(c *gin.Context) {
	ubicacionID, err := strconv.Atoi(c.Param("ubicacionId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Parámetros inválidos: ubicacionId"))
		return
	}
	layout, err := h.reservas.ObtenerLayout(c.Request.Context(), ubicacionID)
	if err != nil {
		c.Error(err)
		return
	}
	result := map[string]any{}
	if layout.LayoutJSON.Valid {
		result["layout_json"] = layout.LayoutJSON.String
	}
	if layout.BackgroundImage.Valid {
		result["background_image"] = layout.BackgroundImage.String
	}
	status, env := respuesta.Exitosa("Layout obtenido correctamente", result)
	c.JSON(status, env)
}

func (h *ReservaHandler) GuardarLayout(c *gin.Context) {
	var req dto.GuardarLayoutRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.reservas.GuardarLayout(c.Request.Context(), req.UbicacionID, req.Layout, req.BackgroundImage); err != nil {
		c.Error(err)
		return
	}
	status, env := respuesta.Exitosa("Layout guardado correctamente", nil)
	c.JSON(status, env)
}

func (h *ReservaHandler) ObtenerMesas(c *gin.Context) {
	var req dto.MesaRequest
	if !bindQuery(c, &req) {
		return
	}
	req.CodigoUsuario = usuarioActual(c)
	salida, err := h.reservas.GestionarMesa(c.Request.Context(), repository.MesaObtener, req)
	responder(c, salida, err)
}

func (h *ReservaHandler) TotalMesas(c *gin.Context) {
	total, err := h.reservas.TotalMesas(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	status, env := respuesta.Exitosa("Se obtuvieron todas las Mesas", total)
	c.JSON(status, env)
}

func (h *ReservaHandler) CrearMesa(c *gin.Context) {
	var req dto.MesaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	req.CodigoUsuario = usuarioActual(c)
	salida, err := h.reservas.GestionarMesa(c.Request.Context(), repository.MesaCrear, req)
	responder(c, salida, err)
}

func (h *ReservaHandler) EditarMesa(c *gin.Context) {
	var req dto.MesaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	req.CodigoUsuario = usuarioActual(c)
	salida, err := h.reservas.GestionarMesa(c.Request.Context(), repository.MesaEditar, req)
	responder(c, salida, err)
}

func (h *ReservaHandler) EliminarMesa(c *gin.Context) {
	var req dto.MesaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	req.CodigoUsuario = usuarioActual(c)
	salida, err := h.reservas.GestionarMesa(c.Request.Context(), repository.MesaEliminar, req)
	responder(c, salida, err)
}

func (h *ReservaHandler) ObtenerSolicitudesEventos(c *gin.Context) {
	var req dto.SolicitudEventoRequest
	if !bindQuery(c, &req) {
		return
	}
	req.CodigoUsuario = usuarioActual(c)
	salida, err := h.reservas.GestionarSolicitudEvento(c.Request.Context(), repository.SolicitudObtener, req)
	responder(c, salida, err)
}

func (h *ReservaHandler) TotalEventos(c *gin.Context) {
	total, err := h.reservas.TotalEventos(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	status, env := respuesta.Exitosa("Se obtuvieron todos los eventos", total)
	c.JSON(status, env)
}

func (h *ReservaHandler) CrearSolicitudEvento(c *gin.Context) {
	var req dto.SolicitudEventoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	req.CodigoUsuario = usuarioActual(c)
	salida, err := h.reservas.GestionarSolicitudEvento(c.Request.Context(), repository.SolicitudCrear, req)
	responder(c, salida, err)
}

func (h *ReservaHandler) CrearSolicitudEventoWeb(c *gin.Context) {
	var req dto.SolicitudEventoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	salida, err := h.reservas.GestionarSolicitudEvento(c.Request.Context(), repository.SolicitudCrear, req)
	responder(c, salida, err)
}

func (h *ReservaHandler) EditarSolicitudEvento(c *gin.Context) {
	var req dto.SolicitudEventoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	req.CodigoUsuario = usuarioActual(c)
	salida, err := h.reservas.GestionarSolicitudEvento(c.Request.Context(), repository.SolicitudEditar, req)
	responder(c, salida, err)
}

func (h *ReservaHandler) CancelarSolicitudEvento(c *gin.Context) {
	var req dto.SolicitudEventoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	req.CodigoUsuario = usuarioActual(c)
	salida, err := h.reservas.GestionarSolicitudEvento(c.Request.Context(), repository.SolicitudCancelar, req)
	responder(c, salida, err)
}

func (h *ReservaHandler) ConfirmarSolicitudEvento(c *gin.Context) {
	var req dto.SolicitudEventoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	req.CodigoUsuario = usuarioActual(c)
	salida, err := h.reservas.GestionarSolicitudEvento(c.Request.Context(), repository.SolicitudConfirmar, req)
	responder(c, salida, err)
}

func (h *ReservaHandler) ObtenerSolicitudesMenu(c *gin.Context) {
	var req dto.SolicitudMenuDegustacionRequest
	if !bindQuery(c, &req) {
		return
	}
	req.CodigoUsuario = usuarioActual(c)
	salida, err := h.reservas.GestionarSolicitudMenuDegustacion(c.Request.Context(), repository.SolicitudObtener, req)
	responder(c, salida, err)
}

func (h *ReservaHandler) TotalSolicitudesMenu(c *gin.Context) {
	total, err := h.reservas.TotalMenuDegustaciones(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	status, env := respuesta.Exitosa("Se obtuvieron todas las solicitudes de menú degustación", total)
	c.JSON(status, env)
}

func (h *ReservaHandler) CrearSolicitudMenu(c *gin.Context) {
	var req dto.SolicitudMenuDegustacionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	req.CodigoUsuario = usuarioActual(c)
	salida, err := h.reservas.GestionarSolicitudMenuDegustacion(c.Request.Context(), repository.SolicitudCrear, req)
	responder(c, salida, err)
}

func (h *ReservaHandler) CrearSolicitudMenuWeb(c *gin.Context) {
	var req dto.SolicitudMenuDegustacionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	salida, err := h.reservas.GestionarSolicitudMenuDegustacion(c.Request.Context(), repository.SolicitudCrear, req)
	responder(c, salida, err)
}

func (h *ReservaHandler) EditarSolicitudMenu(c *gin.Context) {
	var req dto.SolicitudMenuDegustacionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	req.CodigoUsuario = usuarioActual(c)
	salida, err := h.reservas.GestionarSolicitudMenuDegustacion(c.Request.Context(), repository.SolicitudEditar, req)
	responder(c, salida, err)
}

func (h *ReservaHandler) CancelarSolicitudMenu(c *gin.Context) {
	var req dto.SolicitudMenuDegustacionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	req.CodigoUsuario = usuarioActual(c)
	salida, err := h.reservas.GestionarSolicitudMenuDegustacion(c.Request.Context(), repository.SolicitudCancelar, req)
	responder(c, salida, err)
}

func (h *ReservaHandler) ConfirmarSolicitudMenu(c *gin.Context) {
	var req dto.SolicitudMenuDegustacionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	req.CodigoUsuario = usuarioActual(c)
	salida, err := h.reservas.GestionarSolicitudMenuDegustacion(c.Request.Context(), repository.SolicitudConfirmar, req)
	responder(c, salida, err)
}
