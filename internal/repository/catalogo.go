package repository

import (
	"context"

	"sfacapi/internal/dto"
)

const (
	procObtenerCatalogo      = "cat_SpObtenerCatalogo"
	procGestionarCategorias  = "cat_SpGestionarCategorias"
	procGestionarUbicaciones = "cat_SpGestionarUbicaciones"
)

// OpCategoria selects the branch of cat_SpGestionarCategorias.
type OpCategoria int

const (
	CategoriaCrear    OpCategoria = 1
	CategoriaEditar   OpCategoria = 2
	CategoriaEliminar OpCategoria = 3
	CategoriaObtener  OpCategoria = 4
)

// OpUbicacion selects the branch of cat_SpGestionarUbicaciones.
type OpUbicacion int

const (
	UbicacionCrear    OpUbicacion = 1
	UbicacionEditar   OpUbicacion = 2
	UbicacionEliminar OpUbicacion = 3
	UbicacionObtener  OpUbicacion = 4
)

// CatalogoRepo reads lookup tables and manages categories and locations.
type CatalogoRepo struct {
	g *Gateway
}

func NewCatalogoRepo(g *Gateway) *CatalogoRepo { return &CatalogoRepo{g: g} }

// Obtener reads one whitelisted lookup table; the procedure validates
// NombreTabla against the tables it is willing to expose.
func (r *CatalogoRepo) Obtener(ctx context.Context, req dto.CatalogoRequest) (Salida, error) {
	return r.g.Call(ctx, procObtenerCatalogo,
		NullIfEmpty(req.NombreTabla),
		NullIfEmpty(req.Tipo),
		NullIfEmpty(req.Pagina),
		NullIfEmpty(req.TamanoPagina),
		NullIfEmpty(req.CodigoUsuario),
	)
}

func (r *CatalogoRepo) GestionarCategoria(ctx context.Context, op OpCategoria, req dto.CategoriaRequest) (Salida, error) {
	return r.g.Call(ctx, procGestionarCategorias,
		int(op),
		NullIfEmpty(req.CodigoCategoria),
		NullIfEmpty(req.Nombre),
		NullIfEmpty(req.Color),
		NullIfEmpty(req.CodigoUsuario),
	)
}

func (r *CatalogoRepo) GestionarUbicacion(ctx context.Context, op OpUbicacion, req dto.UbicacionRequest) (Salida, error) {
	return r.g.Call(ctx, procGestionarUbicaciones,
		int(op),
		NullIfEmpty(req.CodigoUbicacion),
		NullIfEmpty(req.Nombre),
		NullIfEmpty(req.CodigoUsuario),
	)
}
