package dto

import "github.com/shopspring/decimal"

// EmpresaImpresion heads every printed receipt.
type EmpresaImpresion struct {
	Nombre string `json:"nombre"`
	Rtn    string `json:"rtn"`
	Correo string `json:"correo"`
}

// SucursalImpresion completes the header with branch data.
type SucursalImpresion struct {
	Direccion string `json:"direccion"`
	Telefono  string `json:"telefono"`
}

// OpcionCombo is a condensed line under a combo item.
type OpcionCombo struct {
	NombreProducto string `json:"NombreProducto"`
	NombreVariante string `json:"nombre_variante"`
	Cantidad       int    `json:"Cantidad"`
}

// ArticuloImpresion is one detail line of the printed invoice.
// OpcionesCombo arrives as an array or as a JSON string depending on origin.
type ArticuloImpresion struct {
	Cantidad               decimal.Decimal `json:"cantidad"`
	Descripcion            string          `json:"descripcion"`
	Importe                decimal.Decimal `json:"importe"`
	NombreEmpaquetado      string          `json:"nombreEmpaquetado"`
	UnidadesPorEmpaquetado *int            `json:"unidadesPorEmpaquetado"`
	OpcionesCombo          any             `json:"opcionesCombo"`
}

// MetodoPagoImpresion is one payment method applied to the invoice.
type MetodoPagoImpresion struct {
	FormaPago     string          `json:"formaPago"`
	MontoRecibido decimal.Decimal `json:"montoRecibido"`
}

// ImpresionFacturaRequest is the body of /generar-factura.
type ImpresionFacturaRequest struct {
	IP                 string                `json:"ip" binding:"required"`
	Empresa            EmpresaImpresion      `json:"empresa"`
	Sucursal           SucursalImpresion     `json:"sucursal"`
	NumeroFactura      string                `json:"numeroFactura"`
	FechaLimiteEmision string                `json:"fechaLimiteEmision"`
	RangoAutorizado    string                `json:"rangoAutorizado"`
	Cai                string                `json:"cai"`
	Fecha              string                `json:"fecha"`
	Hora               string                `json:"hora"`
	Cajero             string                `json:"cajero"`
	Caja               string                `json:"caja"`
	Orden              string                `json:"orden"`
	RtnCliente         string                `json:"rtnCliente"`
	Cliente            string                `json:"cliente"`
	Articulos          []ArticuloImpresion   `json:"articulos"`
	ImporteExonerado   decimal.Decimal       `json:"importeExonerado"`
	Descuentos         decimal.Decimal       `json:"descuentos"`
	TotalEvento        decimal.Decimal       `json:"totalEvento"`
	Gravado15          decimal.Decimal       `json:"gravado15"`
	Gravado18          decimal.Decimal       `json:"gravado18"`
	Impuesto15         decimal.Decimal       `json:"impuesto15"`
	Impuesto18         decimal.Decimal       `json:"impuesto18"`
	GranTotal          decimal.Decimal       `json:"granTotal"`
	Propina            decimal.Decimal       `json:"propina"`
	MetodosPago        []MetodoPagoImpresion `json:"metodosPago"`
	Letras             string                `json:"letras"`
}

// ImpresionAperturaRequest is the body of /generar-apertura-caja.
type ImpresionAperturaRequest struct {
	IP                   string          `json:"ip" binding:"required"`
	NombreCajero         string          `json:"nombreCajero"`
	NumeroCaja           string          `json:"numeroCaja"`
	NombreSucursal       string          `json:"nombreSucursal"`
	FechaHora            string          `json:"fechaHora"`
	RangoTalonario       string          `json:"rangoTalonario"`
	NumeroFacturaInicial string          `json:"numeroFacturaInicial"`
	MontoInicial         decimal.Decimal `json:"montoInicial"`
}

// ResumenCierre groups the computed totals of the shift.
type ResumenCierre struct {
	MontoInicial             decimal.Decimal `json:"montoInicial"`
	TotalVentasEfectivo      decimal.Decimal `json:"totalVentasEfectivo"`
	TotalVentasTarjeta       decimal.Decimal `json:"totalVentasTarjeta"`
	TotalVentasTransferencia decimal.Decimal `json:"totalVentasTransferencia"`
	TotalVentasOtros         decimal.Decimal `json:"totalVentasOtros"`
	TotalIngresos            decimal.Decimal `json:"totalIngresos"`
	TotalGastos              decimal.Decimal `json:"totalGastos"`
	TotalRetiros             decimal.Decimal `json:"totalRetiros"`
	MontoEsperado            decimal.Decimal `json:"montoEsperado"`
}

// ImpresionCierreRequest is the body of /generar-cierre-caja.
type ImpresionCierreRequest struct {
	IP                string          `json:"ip" binding:"required"`
	NombreCajero      string          `json:"nombreCajero"`
	NumeroCaja        string          `json:"numeroCaja"`
	NombreSucursal    string          `json:"nombreSucursal"`
	FechaHora         string          `json:"fechaHora"`
	RangoTalonario    string          `json:"rangoTalonario"`
	PrimeraFactura    string          `json:"primeraFactura"`
	UltimaFactura     string          `json:"ultimaFactura"`
	CantidadFacturas  int             `json:"cantidadFacturas"`
	FacturasRestantes *int            `json:"facturasRestantes"`
	Resumen           ResumenCierre   `json:"resumen"`
	MontoReal         decimal.Decimal `json:"montoReal"`
	Diferencia        decimal.Decimal `json:"diferencia"`
	Observaciones     string          `json:"observaciones"`
}
