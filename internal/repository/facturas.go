package repository

import (
	"context"

	"sfacapi/internal/dto"
)

const (
	procGestionarFacturas          = "sfac_SpGestionarFacturas"
	procGestionarDetalleFactura    = "sfac_SpGestionarDetalleFactura"
	procGestionarDetalleFormasPago = "sfac_SpGestionarDetalleFormasPago"
	procObtenerInformacionFactura  = "sfac_SpObtenerInformacionFactura"
	procGestionarDescuentos        = "sfac_SpGestionarDescuentos"
	procGestionarTalonarios        = "sfac_SpGestionarTalonarios"
	procGestionarDetalleTalonario  = "sfac_SpGestionarDetalleTalonario"
	procGestionarCajaSucursal      = "sfac_SpGestionarCajaSucursal"
)

// OpFactura selects the branch of sfac_SpGestionarFacturas.
type OpFactura int

const (
	FacturaCrear    OpFactura = 1
	FacturaEditar   OpFactura = 2
	FacturaEliminar OpFactura = 3
	FacturaObtener  OpFactura = 4
	// FacturaCrearWeb creates the invoice plus its detail and payment lines in
	// one shot from the Aux JSON payload (web checkout).
	FacturaCrearWeb OpFactura = 5
	// FacturaAsignarOrden links an open order to the invoice; Aux carries the
	// order code. Requires privileged re-auth at the HTTP layer.
	FacturaAsignarOrden OpFactura = 6
)

// OpDetalleFactura selects the branch of sfac_SpGestionarDetalleFactura.
type OpDetalleFactura int

const (
	DetalleFacturaCrear    OpDetalleFactura = 1
	DetalleFacturaEditar   OpDetalleFactura = 2
	DetalleFacturaEliminar OpDetalleFactura = 3
	DetalleFacturaObtener  OpDetalleFactura = 4
)

// OpFormaPago selects the branch of sfac_SpGestionarDetalleFormasPago.
type OpFormaPago int

const (
	FormaPagoCrear    OpFormaPago = 1
	FormaPagoEditar   OpFormaPago = 2
	FormaPagoEliminar OpFormaPago = 3
	FormaPagoObtener  OpFormaPago = 4
)

// OpDescuento selects the branch of sfac_SpGestionarDescuentos.
type OpDescuento int

const (
	DescuentoCrear    OpDescuento = 1
	DescuentoEditar   OpDescuento = 2
	DescuentoEliminar OpDescuento = 3
	DescuentoObtener  OpDescuento = 4
)

// OpTalonario selects the branch of sfac_SpGestionarTalonarios. Activar moves
// the next book into service once the current one exhausts its range.
type OpTalonario int

const (
	TalonarioCrear    OpTalonario = 1
	TalonarioEditar   OpTalonario = 2
	TalonarioEliminar OpTalonario = 3
	TalonarioObtener  OpTalonario = 4
	TalonarioActivar  OpTalonario = 5
)

// OpDetalleTalonario selects the branch of sfac_SpGestionarDetalleTalonario.
type OpDetalleTalonario int

const (
	DetalleTalonarioCrear    OpDetalleTalonario = 1
	DetalleTalonarioEditar   OpDetalleTalonario = 2
	DetalleTalonarioEliminar OpDetalleTalonario = 3
	DetalleTalonarioObtener  OpDetalleTalonario = 4
)

// OpCajaSucursal selects the branch of sfac_SpGestionarCajaSucursal.
type OpCajaSucursal int

const (
	CajaSucursalCrear    OpCajaSucursal = 1
	CajaSucursalEditar   OpCajaSucursal = 2
	CajaSucursalEliminar OpCajaSucursal = 3
	CajaSucursalObtener  OpCajaSucursal = 4
)

// FacturasRepo dispatches invoicing operations: the invoice header, its
// detail and payment lines, discounts, talonarios and till assignments.
type FacturasRepo struct {
	g *Gateway
}

func NewFacturasRepo(g *Gateway) *FacturasRepo { return &FacturasRepo{g: g} }

func (r *FacturasRepo) Gestionar(ctx context.Context, op OpFactura, req dto.FacturaRequest) (Salida, error) {
	return r.g.Call(ctx, procGestionarFacturas,
		int(op),
		NullIfEmpty(req.CodigoFactura),
		NullIfEmpty(req.CodigoUsuario),
		NullIfEmpty(req.CodigoEstado),
		NullIfEmpty(req.CodigoPersona),
		NullIfEmpty(req.CodigoMoneda),
		NullIfEmpty(req.NoOrdenCompraExenta),
		NullIfEmpty(req.NoConstanciaRegistroExonerado),
		NullIfEmpty(req.NoRegistroSag),
		NullIfEmpty(req.Observaciones),
		NullIfEmpty(req.CodigoDescuento),
		NullIfEmpty(req.CodigoFormaPago),
		NullIfEmpty(req.Pagina),
		NullIfEmpty(req.TamanoPagina),
		JSONOrNull(req.Aux),
	)
}

func (r *FacturasRepo) GestionarDetalle(ctx context.Context, op OpDetalleFactura, req dto.DetalleFacturaRequest) (Salida, error) {
	return r.g.Call(ctx, procGestionarDetalleFactura,
		int(op),
		NullIfEmpty(req.CodigoDetalle),
		NullIfEmpty(req.CodigoFactura),
		NullIfEmpty(req.CodigoInventario),
		NullIfEmpty(req.Cantidad),
		NullIfEmpty(req.PrecioVenta),
		NullIfEmpty(req.CodigoUsuario),
		JSONOrNull(req.ProductosCombo),
		JSONOrNull(req.Extras),
	)
}

func (r *FacturasRepo) GestionarFormaPago(ctx context.Context, op OpFormaPago, req dto.DetalleFormaPagoRequest) (Salida, error) {
	return r.g.Call(ctx, procGestionarDetalleFormasPago,
		int(op),
		NullIfEmpty(req.CodigoDetalle),
		NullIfEmpty(req.CodigoFactura),
		NullIfEmpty(req.CodigoFormaPago),
		NullIfEmpty(req.MontoRecibido),
		NullIfEmpty(req.Referencia),
		NullIfEmpty(req.CodigoUsuario),
	)
}

func (r *FacturasRepo) GestionarDescuento(ctx context.Context, op OpDescuento, req dto.DescuentoFacturaRequest) (Salida, error) {
	return r.g.Call(ctx, procGestionarDescuentos,
		int(op),
		NullIfEmpty(req.CodigoDescuentoFactura),
		NullIfEmpty(req.CodigoDescuento),
		NullIfEmpty(req.CodigoFactura),
		NullIfEmpty(req.CodigoUsuario),
	)
}

// ObtenerInformacion fetches the fiscal snapshot of an issued invoice
// (CAI, authorized range, totals and amounts in words) for printing.
func (r *FacturasRepo) ObtenerInformacion(ctx context.Context, numeroFactura string) (Salida, error) {
	return r.g.Call(ctx, procObtenerInformacionFactura, NullIfEmpty(numeroFactura))
}

func (r *FacturasRepo) GestionarTalonario(ctx context.Context, op OpTalonario, req dto.TalonarioRequest) (Salida, error) {
	return r.g.Call(ctx, procGestionarTalonarios,
		int(op),
		NullIfEmpty(req.CodigoTalonario),
		NullIfEmpty(req.NumeroDeclaracion),
		NullIfEmpty(req.FechaLimiteEmision),
		NullIfEmpty(req.CAI),
		NullIfEmpty(req.FKEstado),
		NullIfEmpty(req.Busqueda),
		NullIfEmpty(req.Pagina),
		NullIfEmpty(req.TamanoPagina),
		NullIfEmpty(req.CodigoUsuario),
	)
}

func (r *FacturasRepo) GestionarDetalleTalonario(ctx context.Context, op OpDetalleTalonario, req dto.DetalleTalonarioRequest) (Salida, error) {
	return r.g.Call(ctx, procGestionarDetalleTalonario,
		int(op),
		NullIfEmpty(req.CodigoDetalleTalonario),
		NullIfEmpty(req.CodigoTalonario),
		NullIfEmpty(req.CodigoSucursal),
		NullIfEmpty(req.CodigoTipoDocumento),
		NullIfEmpty(req.RangoInicial),
		NullIfEmpty(req.RangoFinal),
		NullIfEmpty(req.FKEstado),
		NullIfEmpty(req.CodigoUsuario),
	)
}

func (r *FacturasRepo) GestionarCajaSucursal(ctx context.Context, op OpCajaSucursal, req dto.CajaSucursalRequest) (Salida, error) {
	return r.g.Call(ctx, procGestionarCajaSucursal,
		int(op),
		NullIfEmpty(req.Codigo),
		NullIfEmpty(req.NumeroCaja),
		NullIfEmpty(req.FKCodigoUsuario),
		NullIfEmpty(req.CodigoDetalleTalonario),
		NullIfEmpty(req.CodigoSucursal),
		NullIfEmpty(req.CodigoUsuario),
	)
}

// TotalFacturas counts every issued invoice without paging.
func (r *FacturasRepo) TotalFacturas(ctx context.Context) (int64, error) {
	var total int64
	err := r.g.DB().WithContext(ctx).Raw("SELECT COUNT(*) FROM sfac_Factura").Scan(&total).Error
	return total, err
}
