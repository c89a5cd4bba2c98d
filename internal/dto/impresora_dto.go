package dto

// ImpresoraRequest drives sfac_SpGestionarImpresoras.
type ImpresoraRequest struct {
	Codigo                *int   `json:"Codigo" form:"Codigo"`
	Nombre                string `json:"Nombre" form:"Nombre"`
	IP                    string `json:"IP" form:"IP"`
	FKCodigoCajaSucursal  *int   `json:"FKCodigoCajaSucursal" form:"FKCodigoCajaSucursal"`
	FKCodigoSucursal      *int   `json:"FKCodigoSucursal" form:"FKCodigoSucursal"`
	FKCodigoTipoImpresion *int   `json:"FKCodigoTipoImpresion" form:"FKCodigoTipoImpresion"`
	Estado                *int   `json:"Estado" form:"Estado"`
	Pagina                *int   `json:"Pagina" form:"Pagina"`
	TamanoPagina          *int   `json:"TamanoPagina" form:"TamanoPagina"`
	Busqueda              string `json:"Busqueda" form:"Busqueda"`
	CodigoUsuario         *int   `json:"CodigoUsuario" form:"CodigoUsuario"`
}

// PruebaImpresionRequest fires a test page at a printer by address.
type PruebaImpresionRequest struct {
	IP string `json:"ip" binding:"required"`
}
