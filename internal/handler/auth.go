package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sfacapi/internal/apierror"
	"sfacapi/internal/dto"
	"sfacapi/internal/repository"
	"sfacapi/internal/service"
)

// AuthHandler exposes the /Authentication group: session endpoints backed by
// AuthService plus the plain user CRUD backed by the usuarios procedure.
type AuthHandler struct {
	svc      *service.AuthService
	usuarios *repository.UsuariosRepo
}

func NewAuthHandler(svc *service.AuthService, usuarios *repository.UsuariosRepo) *AuthHandler {
	return &AuthHandler{svc: svc, usuarios: usuarios}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.UsuarioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	status, body := h.svc.Registrar(c.Request.Context(), req)
	c.JSON(status, body)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"mensaje": "El correo electrónico y contraseña son requeridos."})
		return
	}
	status, body := h.svc.Login(c.Request.Context(), req.CorreoElectronico, req.Contrasena)
	c.JSON(status, body)
}

func (h *AuthHandler) Editar(c *gin.Context) {
	var req dto.UsuarioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	req.CodigoUsuarioConsumo = usuarioActual(c)
	salida, err := h.usuarios.Gestionar(c.Request.Context(), repository.UsuarioEditar, req)
	responder(c, salida, err)
}

func (h *AuthHandler) Eliminar(c *gin.Context) {
	var req dto.UsuarioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	req.CodigoUsuarioConsumo = usuarioActual(c)
	salida, err := h.usuarios.Gestionar(c.Request.Context(), repository.UsuarioEliminar, req)
	responder(c, salida, err)
}

func (h *AuthHandler) Obtener(c *gin.Context) {
	var req dto.UsuarioRequest
	if !bindQuery(c, &req) {
		return
	}
	req.CodigoUsuarioConsumo = usuarioActual(c)
	salida, err := h.usuarios.Gestionar(c.Request.Context(), repository.UsuarioObtener, req)
	responder(c, salida, err)
}

func (h *AuthHandler) ObtenerTodos(c *gin.Context) {
	req := dto.UsuarioRequest{CodigoUsuarioConsumo: usuarioActual(c)}
	salida, err := h.usuarios.Gestionar(c.Request.Context(), repository.UsuarioObtenerTodos, req)
	responder(c, salida, err)
}

func (h *AuthHandler) EnviarCodigo(c *gin.Context) {
	var req dto.EnviarCodigoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.EnviarCodigo(c.Request.Context(), req.Correo); err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error enviando correo."))
		return
	}
	c.JSON(http.StatusOK, apierror.New("Código enviado al correo."))
}

func (h *AuthHandler) CambiarPassword(c *gin.Context) {
	var req dto.CambiarPasswordRequest
	if !bindAndValidate(c, &req) {
		return
	}
	ok, status, body := h.svc.CambiarPassword(c.Request.Context(), req.Correo, req.Codigo, req.NuevaContrasena)
	if !ok {
		c.JSON(http.StatusBadRequest, apierror.New("Código inválido o expirado"))
		return
	}
	c.JSON(status, body)
}

// CambiarPasswordObligatorio skips the verification code: first-login
// password rotations arrive here already authenticated by policy.
func (h *AuthHandler) CambiarPasswordObligatorio(c *gin.Context) {
	var req dto.CambiarPasswordRequest
	if !bindAndValidate(c, &req) {
		return
	}
	status, body := h.svc.CambiarPasswordObligatorio(c.Request.Context(), req.Correo, req.NuevaContrasena)
	c.JSON(status, body)
}
