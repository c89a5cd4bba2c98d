package repository

import (
	"context"

	"sfacapi/internal/dto"
)

const procGestionarImpresoras = "sfac_SpGestionarImpresoras"

// OpImpresora selects the branch of sfac_SpGestionarImpresoras.
type OpImpresora int

const (
	ImpresoraCrear    OpImpresora = 1
	ImpresoraEditar   OpImpresora = 2
	ImpresoraEliminar OpImpresora = 3
	ImpresoraObtener  OpImpresora = 4
	// ImpresoraActivar flips the registered printer back to active without
	// touching the rest of the record.
	ImpresoraActivar OpImpresora = 5
)

// ImpresorasRepo dispatches network printer registration operations.
type ImpresorasRepo struct {
	g *Gateway
}

func NewImpresorasRepo(g *Gateway) *ImpresorasRepo { return &ImpresorasRepo{g: g} }

func (r *ImpresorasRepo) Gestionar(ctx context.Context, op OpImpresora, req dto.ImpresoraRequest) (Salida, error) {
	return r.g.Call(ctx, procGestionarImpresoras,
		int(op),
		NullIfEmpty(req.Codigo),
		NullIfEmpty(req.Nombre),
		NullIfEmpty(req.FKCodigoCajaSucursal),
		NullIfEmpty(req.FKCodigoSucursal),
		NullIfEmpty(req.FKCodigoTipoImpresion),
		NullIfEmpty(req.IP),
		NullIfEmpty(req.Estado),
		NullIfEmpty(req.Pagina),
		NullIfEmpty(req.TamanoPagina),
		NullIfEmpty(req.Busqueda),
		NullIfEmpty(req.CodigoUsuario),
	)
}
