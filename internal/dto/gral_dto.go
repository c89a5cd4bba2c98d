package dto

// PersonaRequest drives gral_SpGestionarPersonas (customers and contacts).
type PersonaRequest struct {
	CodigoPersona     *int   `json:"CodigoPersona" form:"CodigoPersona"`
	CodigoTipoPersona *int   `json:"CodigoTipoPersona" form:"CodigoTipoPersona"`
	IdentidadRtn      string `json:"IdentidadRtn" form:"IdentidadRtn"`
	Nombres           string `json:"Nombres" form:"Nombres"`
	Apellidos         string `json:"Apellidos" form:"Apellidos"`
	Correo            string `json:"Correo" form:"Correo"`
	Telefono          string `json:"Telefono" form:"Telefono"`
	Domicilio         string `json:"Domicilio" form:"Domicilio"`
	CodigoEstado      *int   `json:"CodigoEstado" form:"CodigoEstado"`
	Busqueda          string `json:"Busqueda" form:"Busqueda"`
	Pagina            *int   `json:"Pagina" form:"Pagina"`
	TamanoPagina      *int   `json:"TamanoPagina" form:"TamanoPagina"`
	CodigoUsuario     *int   `json:"CodigoUsuario" form:"CodigoUsuario"`
}

// CatalogoRequest reads a lookup table through cat_SpObtenerCatalogo.
type CatalogoRequest struct {
	NombreTabla   string `json:"NombreTabla" form:"NombreTabla"`
	Tipo          string `json:"Tipo" form:"Tipo"`
	Pagina        *int   `json:"Pagina" form:"Pagina"`
	TamanoPagina  *int   `json:"TamanoPagina" form:"TamanoPagina"`
	CodigoUsuario *int   `json:"CodigoUsuario" form:"CodigoUsuario"`
}

// CategoriaRequest manages product categories.
type CategoriaRequest struct {
	CodigoCategoria *int   `json:"CodigoCategoria" form:"CodigoCategoria"`
	Nombre          string `json:"Nombre" form:"Nombre"`
	Color           string `json:"Color" form:"Color"`
	CodigoUsuario   *int   `json:"CodigoUsuario" form:"CodigoUsuario"`
}

// UbicacionRequest manages physical locations (dining areas, warehouses).
type UbicacionRequest struct {
	CodigoUbicacion *int   `json:"CodigoUbicacion" form:"CodigoUbicacion"`
	Nombre          string `json:"Nombre" form:"Nombre"`
	CodigoUsuario   *int   `json:"CodigoUsuario" form:"CodigoUsuario"`
}
