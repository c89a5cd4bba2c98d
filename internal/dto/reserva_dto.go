package dto

// ReservaRequest drives resv_SpGestionarReservas. Nombre/Correo/Telefono allow
// registering a reservation for a walk-in without a persona record.
type ReservaRequest struct {
	CodigoReserva  *int   `json:"CodigoReserva" form:"CodigoReserva"`
	CodigoPersona  *int   `json:"CodigoPersona" form:"CodigoPersona"`
	CodigoMesa     *int   `json:"CodigoMesa" form:"CodigoMesa"`
	NumeroPersonas *int   `json:"NumeroPersonas" form:"NumeroPersonas"`
	CodigoEstado   *int   `json:"CodigoEstado" form:"CodigoEstado"`
	FechaReserva   string `json:"FechaReserva" form:"FechaReserva"`
	CodigoUsuario  *int   `json:"CodigoUsuario" form:"CodigoUsuario"`
	Busqueda       string `json:"Busqueda" form:"Busqueda"`
	Pagina         *int   `json:"Pagina" form:"Pagina"`
	TamanoPagina   *int   `json:"TamanoPagina" form:"TamanoPagina"`
	Nombre         string `json:"Nombre" form:"Nombre"`
	Correo         string `json:"Correo" form:"Correo"`
	Telefono       string `json:"Telefono" form:"Telefono"`
	Notas          string `json:"Notas" form:"Notas"`
}

// MesaRequest manages dining tables.
type MesaRequest struct {
	Codigo                *int   `json:"Codigo" form:"Codigo"`
	Nombre                string `json:"Nombre" form:"Nombre"`
	Capacidad             *int   `json:"Capacidad" form:"Capacidad"`
	FKCodigoUbicacionMesa *int   `json:"FKCodigoUbicacionMesa" form:"FKCodigoUbicacionMesa"`
	FKEstado              *int   `json:"FKEstado" form:"FKEstado"`
	CodigoUsuario         *int   `json:"CodigoUsuario" form:"CodigoUsuario"`
	Busqueda              string `json:"Busqueda" form:"Busqueda"`
	Pagina                *int   `json:"Pagina" form:"Pagina"`
	TamanoPagina          *int   `json:"TamanoPagina" form:"TamanoPagina"`
}

// SolicitudEventoRequest captures event requests arriving from the public site.
type SolicitudEventoRequest struct {
	CodigoSolicitud *int   `json:"CodigoSolicitud" form:"CodigoSolicitud"`
	FechaEvento     string `json:"FechaEvento" form:"FechaEvento"`
	TipoEvento      *int   `json:"TipoEvento" form:"TipoEvento"`
	CodigoPersona   *int   `json:"CodigoPersona" form:"CodigoPersona"`
	NumeroInvitados *int   `json:"NumeroInvitados" form:"NumeroInvitados"`
	CodigoEstado    *int   `json:"CodigoEstado" form:"CodigoEstado"`
	CodigoUsuario   *int   `json:"CodigoUsuario" form:"CodigoUsuario"`
	Busqueda        string `json:"Busqueda" form:"Busqueda"`
	Pagina          *int   `json:"Pagina" form:"Pagina"`
	TamanoPagina    *int   `json:"TamanoPagina" form:"TamanoPagina"`
	Nombre          string `json:"Nombre" form:"Nombre"`
	Correo          string `json:"Correo" form:"Correo"`
	Telefono        string `json:"Telefono" form:"Telefono"`
	Notas           string `json:"Notas" form:"Notas"`
}

// SolicitudMenuDegustacionRequest captures tasting-menu requests.
type SolicitudMenuDegustacionRequest struct {
	CodigoSolicitud *int   `json:"CodigoSolicitud" form:"CodigoSolicitud"`
	CodigoPersona   *int   `json:"CodigoPersona" form:"CodigoPersona"`
	NumeroPersonas  *int   `json:"NumeroPersonas" form:"NumeroPersonas"`
	CodigoEstado    *int   `json:"CodigoEstado" form:"CodigoEstado"`
	CodigoUsuario   *int   `json:"CodigoUsuario" form:"CodigoUsuario"`
	Busqueda        string `json:"Busqueda" form:"Busqueda"`
	Pagina          *int   `json:"Pagina" form:"Pagina"`
	TamanoPagina    *int   `json:"TamanoPagina" form:"TamanoPagina"`
	Nombres         string `json:"Nombres" form:"Nombres"`
	Correo          string `json:"Correo" form:"Correo"`
	Telefono        string `json:"Telefono" form:"Telefono"`
	Notas           string `json:"Notas" form:"Notas"`
}

// GuardarLayoutRequest persists the floor-plan editor state for a location.
type GuardarLayoutRequest struct {
	UbicacionID     int    `json:"ubicacionId" binding:"required"`
	Layout          any    `json:"layout"`
	BackgroundImage string `json:"backgroundImage"`
}
