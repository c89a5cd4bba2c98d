package repository

import (
	"context"

	"sfacapi/internal/dto"
)

const procGestionarOrdenes = "sfac_SpGestionarOrdenes"

// OpOrden selects the branch of sfac_SpGestionarOrdenes.
type OpOrden int

const (
	OrdenCrear    OpOrden = 1
	OrdenEditar   OpOrden = 2
	OrdenEliminar OpOrden = 3
	OrdenObtener  OpOrden = 4
	// OrdenObtenerDeUsuario lists the open orders taken by one waiter.
	OrdenObtenerDeUsuario OpOrden = 5
	// OrdenCerrar marks the order as served / ready to invoice.
	OrdenCerrar OpOrden = 6
	// OrdenActualizarDetalle flips the preparation state of a single line
	// from the kitchen screen.
	OrdenActualizarDetalle OpOrden = 7
)

// OrdenesRepo dispatches kitchen order operations. servidor is the
// host:port/ base the procedure embeds in product image URLs.
type OrdenesRepo struct {
	g        *Gateway
	servidor string
}

func NewOrdenesRepo(g *Gateway, servidor string) *OrdenesRepo {
	return &OrdenesRepo{g: g, servidor: servidor}
}

func (r *OrdenesRepo) Gestionar(ctx context.Context, op OpOrden, req dto.OrdenRequest) (Salida, error) {
	return r.g.Call(ctx, procGestionarOrdenes,
		int(op),
		NullIfEmpty(req.CodigoOrden),
		NullIfEmpty(req.CodigoUsuario),
		NullIfEmpty(req.CodigoEstado),
		NullIfEmpty(req.Pagina),
		NullIfEmpty(req.TamanoPagina),
		JSONOrNull(req.DetalleOrden),
		r.servidor,
		NullIfEmpty(req.CodigoMesa),
	)
}
