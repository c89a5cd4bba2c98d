package dto

import "github.com/shopspring/decimal"

// FacturaRequest drives sfac_SpGestionarFacturas. Aux carries the
// JSON-serialized payload some operations need (e.g. web checkout carts).
type FacturaRequest struct {
	CodigoFactura                 *int   `json:"CodigoFactura" form:"CodigoFactura"`
	CodigoUsuario                 *int   `json:"CodigoUsuario" form:"CodigoUsuario"`
	CodigoEstado                  *int   `json:"CodigoEstado" form:"CodigoEstado"`
	CodigoPersona                 *int   `json:"CodigoPersona" form:"CodigoPersona"`
	CodigoMoneda                  *int   `json:"CodigoMoneda" form:"CodigoMoneda"`
	NoOrdenCompraExenta           string `json:"NoOrdenCompraExenta" form:"NoOrdenCompraExenta"`
	NoConstanciaRegistroExonerado string `json:"NoConstanciaRegistroExonerado" form:"NoConstanciaRegistroExonerado"`
	NoRegistroSag                 string `json:"NoRegistroSag" form:"NoRegistroSag"`
	Observaciones                 string `json:"Observaciones" form:"Observaciones"`
	CodigoDescuento               *int   `json:"CodigoDescuento" form:"CodigoDescuento"`
	CodigoFormaPago               *int   `json:"CodigoFormaPago" form:"CodigoFormaPago"`
	Pagina                        *int   `json:"Pagina" form:"Pagina"`
	TamanoPagina                  *int   `json:"TamanoPagina" form:"TamanoPagina"`
	Aux                           any    `json:"Aux" form:"-"`
}

// DetalleFacturaRequest manages one invoice line, including combo sub-items
// and per-line extras.
type DetalleFacturaRequest struct {
	CodigoDetalle    *int             `json:"CodigoDetalle" form:"CodigoDetalle"`
	CodigoFactura    *int             `json:"CodigoFactura" form:"CodigoFactura"`
	CodigoInventario *int             `json:"CodigoInventario" form:"CodigoInventario"`
	Cantidad         *decimal.Decimal `json:"Cantidad" form:"Cantidad"`
	PrecioVenta      *decimal.Decimal `json:"PrecioVenta" form:"PrecioVenta"`
	CodigoUsuario    *int             `json:"CodigoUsuario" form:"CodigoUsuario"`
	ProductosCombo   any              `json:"ProductosCombo" form:"-"`
	Extras           any              `json:"Extras" form:"-"`
}

// DetalleFormaPagoRequest manages one payment line of an invoice.
type DetalleFormaPagoRequest struct {
	CodigoDetalle   *int             `json:"CodigoDetalle" form:"CodigoDetalle"`
	CodigoFactura   *int             `json:"CodigoFactura" form:"CodigoFactura"`
	CodigoFormaPago *int             `json:"CodigoFormaPago" form:"CodigoFormaPago"`
	MontoRecibido   *decimal.Decimal `json:"MontoRecibido" form:"MontoRecibido"`
	Referencia      string           `json:"Referencia" form:"Referencia"`
	CodigoUsuario   *int             `json:"CodigoUsuario" form:"CodigoUsuario"`
}

// DescuentoFacturaRequest links a discount to an invoice.
type DescuentoFacturaRequest struct {
	CodigoDescuentoFactura *int `json:"CodigoDescuentoFactura" form:"CodigoDescuentoFactura"`
	CodigoDescuento        *int `json:"CodigoDescuento" form:"CodigoDescuento"`
	CodigoFactura          *int `json:"CodigoFactura" form:"CodigoFactura"`
	CodigoUsuario          *int `json:"CodigoUsuario" form:"CodigoUsuario"`
}

// TalonarioRequest manages pre-authorized invoice-number books.
type TalonarioRequest struct {
	CodigoTalonario    *int   `json:"CodigoTalonario" form:"CodigoTalonario"`
	NumeroDeclaracion  string `json:"NumeroDeclaracion" form:"NumeroDeclaracion"`
	FechaLimiteEmision string `json:"FechaLimiteEmision" form:"FechaLimiteEmision"`
	CAI                string `json:"CAI" form:"CAI"`
	FKEstado           *int   `json:"FKEstado" form:"FKEstado"`
	Busqueda           string `json:"Busqueda" form:"Busqueda"`
	Pagina             *int   `json:"Pagina" form:"Pagina"`
	TamanoPagina       *int   `json:"TamanoPagina" form:"TamanoPagina"`
	CodigoUsuario      *int   `json:"CodigoUsuario" form:"CodigoUsuario"`
}

// DetalleTalonarioRequest assigns a number range of a book to a branch and
// document type.
type DetalleTalonarioRequest struct {
	CodigoDetalleTalonario *int   `json:"CodigoDetalleTalonario" form:"CodigoDetalleTalonario"`
	CodigoTalonario        *int   `json:"CodigoTalonario" form:"CodigoTalonario"`
	CodigoSucursal         *int   `json:"CodigoSucursal" form:"CodigoSucursal"`
	CodigoTipoDocumento    *int   `json:"CodigoTipoDocumento" form:"CodigoTipoDocumento"`
	RangoInicial           string `json:"RangoInicial" form:"RangoInicial"`
	RangoFinal             string `json:"RangoFinal" form:"RangoFinal"`
	FKEstado               *int   `json:"FKEstado" form:"FKEstado"`
	CodigoUsuario          *int   `json:"CodigoUsuario" form:"CodigoUsuario"`
}

// CajaSucursalRequest manages physical tills assigned to a branch.
type CajaSucursalRequest struct {
	Codigo                 *int `json:"Codigo" form:"Codigo"`
	NumeroCaja             *int `json:"NumeroCaja" form:"NumeroCaja"`
	FKCodigoUsuario        *int `json:"FKCodigoUsuario" form:"FKCodigoUsuario"`
	CodigoDetalleTalonario *int `json:"CodigoDetalleTalonario" form:"CodigoDetalleTalonario"`
	CodigoSucursal         *int `json:"CodigoSucursal" form:"CodigoSucursal"`
	CodigoUsuario          *int `json:"CodigoUsuario" form:"CodigoUsuario"`
}
