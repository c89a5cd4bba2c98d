package handler

import (
	"github.com/gin-gonic/gin"

	"sfacapi/internal/dto"
	"sfacapi/internal/repository"
)

// GralHandler covers the shared master data: personas, the generic catalog
// reader and the categoría / ubicación maintenance.
type GralHandler struct {
	personas *repository.PersonasRepo
	catalogo *repository.CatalogoRepo
}

func NewGralHandler(personas *repository.PersonasRepo, catalogo *repository.CatalogoRepo) *GralHandler {
	return &GralHandler{personas: personas, catalogo: catalogo}
}

func (h *GralHandler) ObtenerPersonas(c *gin.Context) {
	var req dto.PersonaRequest
	if !bindQuery(c, &req) {
		return
	}
	req.CodigoUsuario = usuarioActual(c)
	salida, err := h.personas.Gestionar(c.Request.Context(), repository.PersonaObtener, req)
	responder(c, salida, err)
}

func (h *GralHandler) CrearPersona(c *gin.Context) {
	var req dto.PersonaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	req.CodigoUsuario = usuarioActual(c)
	salida, err := h.personas.Gestionar(c.Request.Context(), repository.PersonaCrear, req)
	responder(c, salida, err)
}

func (h *GralHandler) EditarPersona(c *gin.Context) {
	var req dto.PersonaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	req.CodigoUsuario = usuarioActual(c)
	salida, err := h.personas.Gestionar(c.Request.Context(), repository.PersonaEditar, req)
	responder(c, salida, err)
}

func (h *GralHandler) ObtenerCatalogo(c *gin.Context) {
	var req dto.CatalogoRequest
	if !bindQuery(c, &req) {
		return
	}
	req.CodigoUsuario = usuarioActual(c)
	salida, err := h.catalogo.Obtener(c.Request.Context(), req)
	responder(c, salida, err)
}

// ObtenerCatalogoWeb serves the storefront lookups without a session.
func (h *GralHandler) ObtenerCatalogoWeb(c *gin.Context) {
	var req dto.CatalogoRequest
	if !bindQuery(c, &req) {
		return
	}
	salida, err := h.catalogo.Obtener(c.Request.Context(), req)
	responder(c, salida, err)
}

func (h *GralHandler) ObtenerCategorias(c *gin.Context) {
	var req dto.CategoriaRequest
	if !bindQuery(c, &req) {
		return
	}
	req.CodigoUsuario = usuarioActual(c)
	salida, err := h.catalogo.GestionarCategoria(c.Request.Context(), repository.CategoriaObtener, req)
	responder(c, salida, err)
}

func (h *GralHandler) CrearCategoria(c *gin.Context) {
	var req dto.CategoriaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	req.CodigoUsuario = usuarioActual(c)
	salida, err := h.catalogo.GestionarCategoria(c.Request.Context(), repository.CategoriaCrear, req)
	responder(c, salida, err)
}

func (h *GralHandler) EditarCategoria(c *gin.Context) {
	var req dto.CategoriaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	req.CodigoUsuario = usuarioActual(c)
	salida, err := h.catalogo.GestionarCategoria(c.Request.Context(), repository.CategoriaEditar, req)
	responder(c, salida, err)
}

func (h *GralHandler) EliminarCategoria(c *gin.Context) {
	var req dto.CategoriaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	req.CodigoUsuario = usuarioActual(c)
	salida, err := h.catalogo.GestionarCategoria(c.Request.Context(), repository.CategoriaEliminar, req)
	responder(c, salida, err)
}

func (h *GralHandler) ObtenerUbicaciones(c *gin.Context) {
	var req dto.UbicacionRequest
	if !bindQuery(c, &req) {
		return
	}
	req.CodigoUsuario = usuarioActual(c)
	salida, err := h.catalogo.GestionarUbicacion(c.Request.Context(), repository.UbicacionObtener, req)
	responder(c, salida, err)
}

func (h *GralHandler) CrearUbicacion(c *gin.Context) {
	var req dto.UbicacionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	req.CodigoUsuario = usuarioActual(c)
	salida, err := h.catalogo.GestionarUbicacion(c.Request.Context(), repository.UbicacionCrear, req)
	responder(c, salida, err)
}

func (h *GralHandler) EditarUbicacion(c *gin.Context) {
	var req dto.UbicacionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	req.CodigoUsuario = usuarioActual(c)
	salida, err := h.catalogo.GestionarUbicacion(c.Request.Context(), repository.UbicacionEditar, req)
	responder(c, salida, err)
}

func (h *GralHandler) EliminarUbicacion(c *gin.Context) {
	var req dto.UbicacionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	req.CodigoUsuario = usuarioActual(c)
	salida, err := h.catalogo.GestionarUbicacion(c.Request.Context(), repository.UbicacionEliminar, req)
	responder(c, salida, err)
}
