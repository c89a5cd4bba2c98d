package dto

import "github.com/shopspring/decimal"

// AperturaCierreCajaRequest covers every operation of the apertura/cierre
// procedure; the procedure itself decides which fields each operation needs.
type AperturaCierreCajaRequest struct {
	CodigoApertura     *int             `json:"CodigoApertura" form:"CodigoApertura"`
	CodigoCajaSucursal *int             `json:"CodigoCajaSucursal" form:"CodigoCajaSucursal"`
	CodigoUsuario      *int             `json:"CodigoUsuario" form:"CodigoUsuario"`
	MontoInicial       *decimal.Decimal `json:"MontoInicial" form:"MontoInicial"`
	MontoFinalReal     *decimal.Decimal `json:"MontoFinalReal" form:"MontoFinalReal"`
	Observaciones      string           `json:"Observaciones" form:"Observaciones"`
	Pagina             *int             `json:"Pagina" form:"Pagina"`
	TamanoPagina       *int             `json:"TamanoPagina" form:"TamanoPagina"`
}

// MovimientoCajaRequest creates, lists or deletes a cash movement tied to an
// open session. TipoMovimiento is gasto | retiro | deposito.
type MovimientoCajaRequest struct {
	CodigoMovimiento     *int             `json:"CodigoMovimiento" form:"CodigoMovimiento"`
	CodigoAperturaCierre *int             `json:"CodigoAperturaCierre" form:"CodigoAperturaCierre"`
	TipoMovimiento       string           `json:"TipoMovimiento" form:"TipoMovimiento"`
	Monto                *decimal.Decimal `json:"Monto" form:"Monto"`
	Descripcion          string           `json:"Descripcion" form:"Descripcion"`
	CodigoUsuario        *int             `json:"CodigoUsuario" form:"CodigoUsuario"`
}

// ReporteCierreCajaRequest asks for the closing report of one session.
type ReporteCierreCajaRequest struct {
	CodigoApertura *int `json:"CodigoApertura" form:"CodigoApertura"`
	CodigoUsuario  *int `json:"CodigoUsuario" form:"CodigoUsuario"`
}

// ReporteCierreMensualRequest aggregates closings over a month.
type ReporteCierreMensualRequest struct {
	Mes            *int `json:"Mes" form:"Mes"`
	Anio           *int `json:"Anio" form:"Anio"`
	CodigoSucursal *int `json:"CodigoSucursal" form:"CodigoSucursal"`
	CodigoCaja     *int `json:"CodigoCaja" form:"CodigoCaja"`
	CodigoUsuario  *int `json:"CodigoUsuario" form:"CodigoUsuario"`
}

// ReporteVentasDiariasRequest filters the daily sales report.
type ReporteVentasDiariasRequest struct {
	FechaInicio    string `json:"FechaInicio" form:"FechaInicio"`
	FechaFin       string `json:"FechaFin" form:"FechaFin"`
	CodigoSucursal *int   `json:"CodigoSucursal" form:"CodigoSucursal"`
	CodigoCaja     *int   `json:"CodigoCaja" form:"CodigoCaja"`
	CodigoUsuario  *int   `json:"CodigoUsuario" form:"CodigoUsuario"`
}

// ReporteComprasDiariasRequest filters the daily purchases report.
type ReporteComprasDiariasRequest struct {
	FechaInicio     string `json:"FechaInicio" form:"FechaInicio"`
	FechaFin        string `json:"FechaFin" form:"FechaFin"`
	CodigoProveedor *int   `json:"CodigoProveedor" form:"CodigoProveedor"`
	CodigoEstado    *int   `json:"CodigoEstado" form:"CodigoEstado"`
	CodigoUsuario   *int   `json:"CodigoUsuario" form:"CodigoUsuario"`
}

// ReporteInventarioRequest filters the stock report.
type ReporteInventarioRequest struct {
	CodigoCategoria *int   `json:"CodigoCategoria" form:"CodigoCategoria"`
	Busqueda        string `json:"Busqueda" form:"Busqueda"`
	TipoFiltroStock *int   `json:"TipoFiltroStock" form:"TipoFiltroStock"`
	CodigoUsuario   *int   `json:"CodigoUsuario" form:"CodigoUsuario"`
}
