package repository

import (
	"context"

	"sfacapi/internal/dto"
)

const procGestionarUsuarios = "seg_SpGestionarUsuarios"

// OpUsuario selects the branch of seg_SpGestionarUsuarios.
type OpUsuario int

const (
	UsuarioCrear            OpUsuario = 1
	UsuarioEditar           OpUsuario = 2
	UsuarioEliminar         OpUsuario = 3
	UsuarioObtener          OpUsuario = 4
	UsuarioLogin            OpUsuario = 5
	UsuarioObtenerTodos     OpUsuario = 6
	UsuarioCambioContrasena OpUsuario = 7
)

// UsuariosRepo dispatches the usuario operations of the seg schema.
type UsuariosRepo struct {
	g *Gateway
}

func NewUsuariosRepo(g *Gateway) *UsuariosRepo { return &UsuariosRepo{g: g} }

// Gestionar forwards the password exactly as it arrives in the request; the
// service layer swaps it for the bcrypt hash before calling for Crear and
// CambioContrasena.
func (r *UsuariosRepo) Gestionar(ctx context.Context, op OpUsuario, req dto.UsuarioRequest) (Salida, error) {
	return r.g.Call(ctx, procGestionarUsuarios,
		int(op),
		NullIfEmpty(req.CodigoUsuario),
		NullIfEmpty(req.Nombres),
		NullIfEmpty(req.Apellidos),
		NullIfEmpty(req.Telefono),
		NullIfEmpty(req.Correo),
		NullIfEmpty(req.Contrasena),
		NullIfEmpty(req.FKEstado),
		NullIfEmpty(req.CodigoRol),
		NullIfEmpty(req.CodigoUsuarioConsumo),
	)
}

// ObtenerPorCorreo fetches one user record by email. Both login and token
// resolution go through here.
func (r *UsuariosRepo) ObtenerPorCorreo(ctx context.Context, correo string) (Salida, error) {
	return r.Gestionar(ctx, UsuarioObtener, dto.UsuarioRequest{Correo: correo})
}
