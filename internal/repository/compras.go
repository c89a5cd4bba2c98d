package repository

import (
	"context"

	"sfacapi/internal/dto"
)

const (
	procGestionarFacturasCompras    = "sfac_SpGestionarFacturasCompras"
	procGestionarDetalleFactCompras = "sfac_SpGestionarDetalleFacturasCompras"
	procRecalcularTotalesCompra     = "sfac_SpRecalcularTotalesFacturaCompra"
)

// OpFacturaCompra selects the branch of sfac_SpGestionarFacturasCompras.
type OpFacturaCompra int

const (
	FacturaCompraCrear    OpFacturaCompra = 1
	FacturaCompraEditar   OpFacturaCompra = 2
	FacturaCompraEliminar OpFacturaCompra = 3
	FacturaCompraObtener  OpFacturaCompra = 4
	// FacturaCompraTotal returns the unpaged count for the dashboard.
	FacturaCompraTotal OpFacturaCompra = 5
)

// OpDetalleCompra selects the branch of sfac_SpGestionarDetalleFacturasCompras.
type OpDetalleCompra int

const (
	DetalleCompraCrear    OpDetalleCompra = 1
	DetalleCompraEditar   OpDetalleCompra = 2
	DetalleCompraEliminar OpDetalleCompra = 3
	DetalleCompraObtener  OpDetalleCompra = 4
)

// ComprasRepo dispatches purchase invoice operations.
type ComprasRepo struct {
	g *Gateway
}

func NewComprasRepo(g *Gateway) *ComprasRepo { return &ComprasRepo{g: g} }

func (r *ComprasRepo) Gestionar(ctx context.Context, op OpFacturaCompra, req dto.FacturaCompraRequest) (Salida, error) {
	return r.g.Call(ctx, procGestionarFacturasCompras,
		int(op),
		NullIfEmpty(req.CodigoFactura),
		NullIfEmpty(req.NumeroFactura),
		NullIfEmpty(req.CodigoProveedor),
		NullIfEmpty(req.FechaCreacion),
		NullIfEmpty(req.Observaciones),
		NullIfEmpty(req.CodigoEstado),
		NullIfEmpty(req.CodigoMetodoPago),
		NullIfEmpty(req.Pagina),
		NullIfEmpty(req.TamanoPagina),
		NullIfEmpty(req.CodigoUsuario),
	)
}

func (r *ComprasRepo) GestionarDetalle(ctx context.Context, op OpDetalleCompra, req dto.DetalleFacturaCompraRequest) (Salida, error) {
	return r.g.Call(ctx, procGestionarDetalleFactCompras,
		int(op),
		NullIfEmpty(req.CodigoDetalle),
		NullIfEmpty(req.CodigoFactura),
		NullIfEmpty(req.CodigoInventario),
		NullIfEmpty(req.Cantidad),
		NullIfEmpty(req.PrecioCompra),
		NullIfEmpty(req.CodigoTipoImpuesto),
		NullIfEmpty(req.CodigoUsuario),
	)
}

// RecalcularTotales re-aggregates the invoice header totals from its lines
// after detail edits that bypass the detail procedure.
func (r *ComprasRepo) RecalcularTotales(ctx context.Context, codigoFactura, codigoUsuario *int) (Salida, error) {
	return r.g.Call(ctx, procRecalcularTotalesCompra,
		NullIfEmpty(codigoFactura),
		NullIfEmpty(codigoUsuario),
	)
}
