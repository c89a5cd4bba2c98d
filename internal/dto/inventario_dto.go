package dto

import "github.com/shopspring/decimal"

// InventarioRequest drives sfac_SpGestionarInventario: product CRUD plus the
// combo / extras / variantes lookups.
type InventarioRequest struct {
	CodigoInventario            *int             `json:"CodigoInventario" form:"CodigoInventario"`
	Nombre                      string           `json:"Nombre" form:"Nombre"`
	FKCodigoTipoInventario      *int             `json:"FKCodigoTipoInventario" form:"FKCodigoTipoInventario"`
	FKCodigoCategoriaInventario *int             `json:"FKCodigoCategoriaInventario" form:"FKCodigoCategoriaInventario"`
	Cantidad                    *decimal.Decimal `json:"Cantidad" form:"Cantidad"`
	FechaExpiracion             string           `json:"FechaExpiracion" form:"FechaExpiracion"`
	FKCodigoUbicacion           *int             `json:"FKCodigoUbicacion" form:"FKCodigoUbicacion"`
	PrecioUnitario              *decimal.Decimal `json:"PrecioUnitario" form:"PrecioUnitario"`
	PrecioVenta                 *decimal.Decimal `json:"PrecioVenta" form:"PrecioVenta"`
	FKCodigoEstado              *int             `json:"FKCodigoEstado" form:"FKCodigoEstado"`
	FKCodigoTipoImpuesto        *int             `json:"FKCodigoTipoImpuesto" form:"FKCodigoTipoImpuesto"`
	Pagina                      *int             `json:"Pagina" form:"Pagina"`
	TamanoPagina                *int             `json:"TamanoPagina" form:"TamanoPagina"`
	Busqueda                    string           `json:"Busqueda" form:"Busqueda"`
	CodigoUsuario               *int             `json:"CodigoUsuario" form:"CodigoUsuario"`
	ProductosCombo              any              `json:"ProductosCombo" form:"-"`
	Extras                      any              `json:"Extras" form:"-"`
	Variantes                   any              `json:"Variantes" form:"-"`
	TieneExtras                 *int             `json:"TieneExtras" form:"TieneExtras"`
	TieneVariantes              *int             `json:"TieneVariantes" form:"TieneVariantes"`
}

// EmpaquetadoRequest manages product packagings (e.g. "Caja de 12").
type EmpaquetadoRequest struct {
	CodigoEmpaquetado  *int             `json:"CodigoEmpaquetado" form:"CodigoEmpaquetado"`
	Nombre             string           `json:"Nombre" form:"Nombre"`
	CodigoInventario   *int             `json:"CodigoInventario" form:"CodigoInventario"`
	UnidadesPorPaquete *int             `json:"UnidadesPorPaquete" form:"UnidadesPorPaquete"`
	PrecioCompra       *decimal.Decimal `json:"PrecioCompra" form:"PrecioCompra"`
	PrecioVenta        *decimal.Decimal `json:"PrecioVenta" form:"PrecioVenta"`
	Busqueda           string           `json:"Busqueda" form:"Busqueda"`
	Pagina             *int             `json:"Pagina" form:"Pagina"`
	TamanoPagina       *int             `json:"TamanoPagina" form:"TamanoPagina"`
	CodigoUsuario      *int             `json:"CodigoUsuario" form:"CodigoUsuario"`
}
