package repository

import (
	"context"

	"sfacapi/internal/dto"
)

const procGestionarPersonas = "gral_SpGestionarPersonas"

// OpPersona selects the branch of gral_SpGestionarPersonas.
type OpPersona int

const (
	PersonaCrear    OpPersona = 1
	PersonaEditar   OpPersona = 2
	PersonaEliminar OpPersona = 3
	PersonaObtener  OpPersona = 4
)

// PersonasRepo dispatches customer/contact operations of the gral schema.
type PersonasRepo struct {
	g *Gateway
}

func NewPersonasRepo(g *Gateway) *PersonasRepo { return &PersonasRepo{g: g} }

func (r *PersonasRepo) Gestionar(ctx context.Context, op OpPersona, req dto.PersonaRequest) (Salida, error) {
	return r.g.Call(ctx, procGestionarPersonas,
		int(op),
		NullIfEmpty(req.CodigoPersona),
		NullIfEmpty(req.CodigoTipoPersona),
		NullIfEmpty(req.IdentidadRtn),
		NullIfEmpty(req.Nombres),
		NullIfEmpty(req.Apellidos),
		NullIfEmpty(req.Correo),
		NullIfEmpty(req.Telefono),
		NullIfEmpty(req.Domicilio),
		NullIfEmpty(req.CodigoEstado),
		NullIfEmpty(req.Busqueda),
		NullIfEmpty(req.Pagina),
		NullIfEmpty(req.TamanoPagina),
		NullIfEmpty(req.CodigoUsuario),
	)
}
