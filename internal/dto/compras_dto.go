package dto

import "github.com/shopspring/decimal"

// FacturaCompraRequest drives sfac_SpGestionarFacturasCompras.
type FacturaCompraRequest struct {
	CodigoFactura    *int   `json:"CodigoFactura" form:"CodigoFactura"`
	NumeroFactura    string `json:"NumeroFactura" form:"NumeroFactura"`
	CodigoProveedor  *int   `json:"CodigoProveedor" form:"CodigoProveedor"`
	FechaCreacion    string `json:"FechaCreacion" form:"FechaCreacion"`
	Observaciones    string `json:"Observaciones" form:"Observaciones"`
	CodigoEstado     *int   `json:"CodigoEstado" form:"CodigoEstado"`
	CodigoMetodoPago *int   `json:"CodigoMetodoPago" form:"CodigoMetodoPago"`
	Pagina           *int   `json:"Pagina" form:"Pagina"`
	TamanoPagina     *int   `json:"TamanoPagina" form:"TamanoPagina"`
	CodigoUsuario    *int   `json:"CodigoUsuario" form:"CodigoUsuario"`
}

// DetalleFacturaCompraRequest manages purchase invoice line items.
type DetalleFacturaCompraRequest struct {
	CodigoDetalle      *int             `json:"CodigoDetalle" form:"CodigoDetalle"`
	CodigoFactura      *int             `json:"CodigoFactura" form:"CodigoFactura"`
	CodigoInventario   *int             `json:"CodigoInventario" form:"CodigoInventario"`
	Cantidad           *decimal.Decimal `json:"Cantidad" form:"Cantidad"`
	PrecioCompra       *decimal.Decimal `json:"PrecioCompra" form:"PrecioCompra"`
	CodigoTipoImpuesto *int             `json:"CodigoTipoImpuesto" form:"CodigoTipoImpuesto"`
	CodigoUsuario      *int             `json:"CodigoUsuario" form:"CodigoUsuario"`
}
