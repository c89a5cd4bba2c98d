package repository

import (
	"context"

	"sfacapi/internal/dto"
)

const (
	procGestionarAperturaCierre = "sfac_SpGestionarAperturaCierreCaja"
	procGestionarMovimientos    = "sfac_SpGestionarMovimientosCaja"
	procReporteCierreCaja       = "sfac_SpReporteCierreCaja"
	procReporteCierreMensual    = "sfac_SpReporteCierreMensualCaja"
	procReporteVentasDiarias    = "sfac_SpReporteVentasDiarias"
	procReporteComprasDiarias   = "sfac_SpReporteComprasDiarias"
	procReporteInventario       = "sfac_SpReporteInventario"
)

// OpCaja selects the branch of sfac_SpGestionarAperturaCierreCaja. The
// procedure enforces the session state machine: a till cannot open twice and
// cannot close or invoice without an open session.
type OpCaja int

const (
	CajaAbrir     OpCaja = 1
	CajaCerrar    OpCaja = 2
	CajaEstado    OpCaja = 3
	CajaHistorial OpCaja = 4
	// CajaValidarFacturacion confirms an open session exists before the POS
	// lets the cashier invoice.
	CajaValidarFacturacion OpCaja = 5
	CajaResumenVentas      OpCaja = 6
)

// OpMovimiento selects the branch of sfac_SpGestionarMovimientosCaja.
type OpMovimiento int

const (
	MovimientoCrear    OpMovimiento = 1
	MovimientoObtener  OpMovimiento = 2
	MovimientoEliminar OpMovimiento = 3
)

// CajaRepo dispatches till session operations and the reporting procedures.
type CajaRepo struct {
	g *Gateway
}

func NewCajaRepo(g *Gateway) *CajaRepo { return &CajaRepo{g: g} }

func (r *CajaRepo) Gestionar(ctx context.Context, op OpCaja, req dto.AperturaCierreCajaRequest) (Salida, error) {
	return r.g.Call(ctx, procGestionarAperturaCierre,
		int(op),
		NullIfEmpty(req.CodigoApertura),
		NullIfEmpty(req.CodigoCajaSucursal),
		NullIfEmpty(req.CodigoUsuario),
		NullIfEmpty(req.MontoInicial),
		NullIfEmpty(req.MontoFinalReal),
		NullIfEmpty(req.Observaciones),
		NullIfEmpty(req.Pagina),
		NullIfEmpty(req.TamanoPagina),
	)
}

func (r *CajaRepo) GestionarMovimiento(ctx context.Context, op OpMovimiento, req dto.MovimientoCajaRequest) (Salida, error) {
	return r.g.Call(ctx, procGestionarMovimientos,
		int(op),
		NullIfEmpty(req.CodigoMovimiento),
		NullIfEmpty(req.CodigoAperturaCierre),
		NullIfEmpty(req.TipoMovimiento),
		NullIfEmpty(req.Monto),
		NullIfEmpty(req.Descripcion),
		NullIfEmpty(req.CodigoUsuario),
	)
}

func (r *CajaRepo) ReporteCierre(ctx context.Context, req dto.ReporteCierreCajaRequest) (Salida, error) {
	return r.g.Call(ctx, procReporteCierreCaja,
		NullIfEmpty(req.CodigoApertura),
		NullIfEmpty(req.CodigoUsuario),
	)
}

func (r *CajaRepo) ReporteCierreMensual(ctx context.Context, req dto.ReporteCierreMensualRequest) (Salida, error) {
	return r.g.Call(ctx, procReporteCierreMensual,
		NullIfEmpty(req.Mes),
		NullIfEmpty(req.Anio),
		NullIfEmpty(req.CodigoSucursal),
		NullIfEmpty(req.CodigoCaja),
		NullIfEmpty(req.CodigoUsuario),
	)
}

func (r *CajaRepo) ReporteVentasDiarias(ctx context.Context, req dto.ReporteVentasDiariasRequest) (Salida, error) {
	return r.g.Call(ctx, procReporteVentasDiarias,
		NullIfEmpty(req.FechaInicio),
		NullIfEmpty(req.FechaFin),
		NullIfEmpty(req.CodigoSucursal),
		NullIfEmpty(req.CodigoCaja),
		NullIfEmpty(req.CodigoUsuario),
	)
}

func (r *CajaRepo) ReporteComprasDiarias(ctx context.Context, req dto.ReporteComprasDiariasRequest) (Salida, error) {
	return r.g.Call(ctx, procReporteComprasDiarias,
		NullIfEmpty(req.FechaInicio),
		NullIfEmpty(req.FechaFin),
		NullIfEmpty(req.CodigoProveedor),
		NullIfEmpty(req.CodigoEstado),
		NullIfEmpty(req.CodigoUsuario),
	)
}

func (r *CajaRepo) ReporteInventario(ctx context.Context, req dto.ReporteInventarioRequest) (Salida, error) {
	return r.g.Call(ctx, procReporteInventario,
		NullIfEmpty(req.CodigoCategoria),
		NullIfEmpty(req.Busqueda),
		NullIfEmpty(req.TipoFiltroStock),
		NullIfEmpty(req.CodigoUsuario),
	)
}
