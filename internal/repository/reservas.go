package repository

import (
	"context"
	"database/sql"

	"sfacapi/internal/dto"
)

const (
	procGestionarReservas       = "resv_SpGestionarReservas"
	procGestionarMesas          = "resv_SpGestionarMesas"
	procGestionarSolicEventos   = "resv_SpGestionarSolicitudesEventos"
	procGestionarSolicMenuDegus = "resv_SpGestionarSolicitudesMenuDegustacion"
)

// OpReserva selects the branch of resv_SpGestionarReservas.
type OpReserva int

const (
	ReservaCrear       OpReserva = 1
	ReservaEditar      OpReserva = 2
	ReservaEliminar    OpReserva = 3
	ReservaObtener     OpReserva = 4
	ReservaAsignarMesa OpReserva = 6
)

// OpMesa selects the branch of resv_SpGestionarMesas.
type OpMesa int

const (
	MesaCrear    OpMesa = 1
	MesaEditar   OpMesa = 2
	MesaEliminar OpMesa = 3
	MesaObtener  OpMesa = 4
)

// OpSolicitud selects the branch of the event and tasting-menu request
// procedures; both share the same state transitions.
type OpSolicitud int

const (
	SolicitudCrear     OpSolicitud = 1
	SolicitudEditar    OpSolicitud = 2
	SolicitudEliminar  OpSolicitud = 3
	SolicitudObtener   OpSolicitud = 4
	SolicitudCancelar  OpSolicitud = 5
	SolicitudConfirmar OpSolicitud = 6
)

// MesaLayout is the persisted floor-plan state of one location.
type MesaLayout struct {
	LayoutJSON      sql.NullString `gorm:"column:layout_json"`
	BackgroundImage sql.NullString `gorm:"column:background_image"`
}

// ReservasRepo dispatches reservation, table and request operations, plus the
// floor-plan layout persisted outside the procedures.
type ReservasRepo struct {
	g *Gateway
}

func NewReservasRepo(g *Gateway) *ReservasRepo { return &ReservasRepo{g: g} }

func (r *ReservasRepo) Gestionar(ctx context.Context, op OpReserva, req dto.ReservaRequest) (Salida, error) {
	return r.g.Call(ctx, procGestionarReservas,
		int(op),
		NullIfEmpty(req.CodigoReserva),
		NullIfEmpty(req.CodigoPersona),
		NullIfEmpty(req.CodigoMesa),
		NullIfEmpty(req.NumeroPersonas),
		NullIfEmpty(req.CodigoEstado),
		NullIfEmpty(req.FechaReserva),
		NullIfEmpty(req.CodigoUsuario),
		NullIfEmpty(req.Busqueda),
		NullIfEmpty(req.Pagina),
		NullIfEmpty(req.TamanoPagina),
		NullIfEmpty(req.Nombre),
		NullIfEmpty(req.Correo),
		NullIfEmpty(req.Telefono),
		NullIfEmpty(req.Notas),
	)
}

func (r *ReservasRepo) GestionarMesa(ctx context.Context, op OpMesa, req dto.MesaRequest) (Salida, error) {
	return r.g.Call(ctx, procGestionarMesas,
		int(op),
		NullIfEmpty(req.Codigo),
		NullIfEmpty(req.Nombre),
		NullIfEmpty(req.Capacidad),
		NullIfEmpty(req.FKCodigoUbicacionMesa),
		NullIfEmpty(req.FKEstado),
		NullIfEmpty(req.CodigoUsuario),
		NullIfEmpty(req.Busqueda),
		NullIfEmpty(req.Pagina),
		NullIfEmpty(req.TamanoPagina),
	)
}

func (r *ReservasRepo) GestionarSolicitudEvento(ctx context.Context, op OpSolicitud, req dto.SolicitudEventoRequest) (Salida, error) {
	return r.g.Call(ctx, procGestionarSolicEventos,
		int(op),
		NullIfEmpty(req.CodigoSolicitud),
		NullIfEmpty(req.FechaEvento),
		NullIfEmpty(req.TipoEvento),
		NullIfEmpty(req.CodigoPersona),
		NullIfEmpty(req.NumeroInvitados),
		NullIfEmpty(req.CodigoEstado),
		NullIfEmpty(req.CodigoUsuario),
		NullIfEmpty(req.Busqueda),
		NullIfEmpty(req.Pagina),
		NullIfEmpty(req.TamanoPagina),
		NullIfEmpty(req.Nombre),
		NullIfEmpty(req.Correo),
		NullIfEmpty(req.Telefono),
		NullIfEmpty(req.Notas),
	)
}

func (r *ReservasRepo) GestionarSolicitudMenuDegustacion(ctx context.Context, op OpSolicitud, req dto.SolicitudMenuDegustacionRequest) (Salida, error) {
	return r.g.Call(ctx, procGestionarSolicMenuDegus,
		int(op),
		NullIfEmpty(req.CodigoSolicitud),
		NullIfEmpty(req.CodigoPersona),
		NullIfEmpty(req.NumeroPersonas),
		NullIfEmpty(req.CodigoEstado),
		NullIfEmpty(req.CodigoUsuario),
		NullIfEmpty(req.Busqueda),
		NullIfEmpty(req.Pagina),
		NullIfEmpty(req.TamanoPagina),
		NullIfEmpty(req.Nombres),
		NullIfEmpty(req.Correo),
		NullIfEmpty(req.Telefono),
		NullIfEmpty(req.Notas),
	)
}

// ObtenerLayout reads the saved floor plan for a location; no rows means an
// empty layout, not an error.
func (r *ReservasRepo) ObtenerLayout(ctx context.Context, ubicacionID int) (MesaLayout, error) {
	var layout MesaLayout
	err := r.g.DB().WithContext(ctx).
		Raw("SELECT layout_json, background_image FROM resv_MesasLayout WHERE ubicacion_id = ?", ubicacionID).
		Scan(&layout).Error
	return layout, err
}

// GuardarLayout upserts the floor plan of one location.
func (r *ReservasRepo) GuardarLayout(ctx context.Context, ubicacionID int, layoutJSON any, backgroundImage string) error {
	return r.g.DB().WithContext(ctx).Exec(
		`INSERT INTO resv_MesasLayout (ubicacion_id, layout_json, background_image)
		 VALUES (?, ?, ?)
		 ON DUPLICATE KEY UPDATE layout_json = VALUES(layout_json), background_image = VALUES(background_image)`,
		ubicacionID, JSONOrNull(layoutJSON), NullIfEmpty(backgroundImage),
	).Error
}

// TotalReservas counts reservations without paging, for the dashboard cards.
func (r *ReservasRepo) TotalReservas(ctx context.Context) (int64, error) {
	return r.contar(ctx, "resv_Reservas")
}

func (r *ReservasRepo) TotalMesas(ctx context.Context) (int64, error) {
	return r.contar(ctx, "resv_Mesas")
}

func (r *ReservasRepo) TotalEventos(ctx context.Context) (int64, error) {
	return r.contar(ctx, "resv_SolicitudesEventos")
}

func (r *ReservasRepo) TotalMenuDegustaciones(ctx context.Context) (int64, error) {
	return r.contar(ctx, "resv_SolicitudesMenuDegustacion")
}

func (r *ReservasRepo) contar(ctx context.Context, tabla string) (int64, error) {
	var total int64
	err := r.g.DB().WithContext(ctx).Raw("SELECT COUNT(*) FROM " + tabla).Scan(&total).Error
	return total, err
}
