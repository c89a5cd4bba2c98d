package dto

// OrdenRequest drives sfac_SpGestionarOrdenes. DetalleOrden is the
// cart: line items with product code, quantity, combo sub-items and extras,
// forwarded to the procedure as JSON.
type OrdenRequest struct {
	CodigoOrden   *int           `json:"CodigoOrden" form:"CodigoOrden"`
	CodigoUsuario *int           `json:"CodigoUsuario" form:"CodigoUsuario"`
	CodigoEstado  *int           `json:"CodigoEstado" form:"CodigoEstado"`
	Pagina        *int           `json:"Pagina" form:"Pagina"`
	TamanoPagina  *int           `json:"TamanoPagina" form:"TamanoPagina"`
	DetalleOrden  []DetalleOrden `json:"DetalleOrden" form:"-"`
	CodigoMesa    *int           `json:"CodigoMesa" form:"CodigoMesa"`
}

// DetalleOrden is one cart line.
type DetalleOrden struct {
	CodigoInventario *int    `json:"CodigoInventario"`
	Cantidad         float64 `json:"Cantidad"`
	ProductosCombo   any     `json:"ProductosCombo,omitempty"`
	Extras           any     `json:"Extras,omitempty"`
	Observaciones    string  `json:"Observaciones,omitempty"`
}
