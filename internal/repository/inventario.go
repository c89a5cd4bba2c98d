package repository

import (
	"context"

	"sfacapi/internal/dto"
)

const (
	procGestionarInventario   = "sfac_SpGestionarInventario"
	procGestionarEmpaquetados = "sfac_SpGestionarEmpaquetados"
)

// OpInventario selects the branch of sfac_SpGestionarInventario. Beyond CRUD
// the procedure answers the combo / extras / variantes lookups and the
// per-category product listing the order screen uses.
type OpInventario int

const (
	InventarioCrear               OpInventario = 1
	InventarioEditar              OpInventario = 2
	InventarioEliminar            OpInventario = 3
	InventarioObtener             OpInventario = 4
	InventarioActivar             OpInventario = 5
	InventarioObtenerCombos       OpInventario = 6
	InventarioObtenerExtras       OpInventario = 7
	InventarioObtenerVariantes    OpInventario = 8
	InventarioObtenerPorCategoria OpInventario = 9
)

// OpEmpaquetado selects the branch of sfac_SpGestionarEmpaquetados.
type OpEmpaquetado int

const (
	EmpaquetadoCrear    OpEmpaquetado = 1
	EmpaquetadoEditar   OpEmpaquetado = 2
	EmpaquetadoEliminar OpEmpaquetado = 3
	EmpaquetadoObtener  OpEmpaquetado = 4
)

// InventarioRepo dispatches product and packaging operations.
type InventarioRepo struct {
	g *Gateway
	// servidor is the host:port/ base the procedure concatenates into the
	// image URLs it builds for product pictures.
	servidor string
}

func NewInventarioRepo(g *Gateway, servidor string) *InventarioRepo {
	return &InventarioRepo{g: g, servidor: servidor}
}

func (r *InventarioRepo) Gestionar(ctx context.Context, op OpInventario, req dto.InventarioRequest) (Salida, error) {
	return r.g.Call(ctx, procGestionarInventario,
		int(op),
		NullIfEmpty(req.CodigoInventario),
		NullIfEmpty(req.Nombre),
		NullIfEmpty(req.FKCodigoTipoInventario),
		NullIfEmpty(req.FKCodigoCategoriaInventario),
		NullIfEmpty(req.Cantidad),
		NullIfEmpty(req.FechaExpiracion),
		NullIfEmpty(req.FKCodigoUbicacion),
		NullIfEmpty(req.PrecioUnitario),
		NullIfEmpty(req.PrecioVenta),
		NullIfEmpty(req.FKCodigoEstado),
		NullIfEmpty(req.FKCodigoTipoImpuesto),
		r.servidor,
		NullIfEmpty(req.Pagina),
		NullIfEmpty(req.TamanoPagina),
		NullIfEmpty(req.Busqueda),
		NullIfEmpty(req.CodigoUsuario),
		JSONOrNull(req.ProductosCombo),
		JSONOrNull(req.Extras),
		JSONOrNull(req.Variantes),
		NullIfEmpty(req.TieneExtras),
		NullIfEmpty(req.TieneVariantes),
	)
}

func (r *InventarioRepo) GestionarEmpaquetado(ctx context.Context, op OpEmpaquetado, req dto.EmpaquetadoRequest) (Salida, error) {
	return r.g.Call(ctx, procGestionarEmpaquetados,
		int(op),
		NullIfEmpty(req.CodigoEmpaquetado),
		NullIfEmpty(req.Nombre),
		NullIfEmpty(req.CodigoInventario),
		NullIfEmpty(req.UnidadesPorPaquete),
		NullIfEmpty(req.PrecioCompra),
		NullIfEmpty(req.PrecioVenta),
		NullIfEmpty(req.Busqueda),
		NullIfEmpty(req.Pagina),
		NullIfEmpty(req.TamanoPagina),
		NullIfEmpty(req.CodigoUsuario),
	)
}

// TotalProductos counts every product without paging.
func (r *InventarioRepo) TotalProductos(ctx context.Context) (int64, error) {
	var total int64
	err := r.g.DB().WithContext(ctx).Raw("SELECT COUNT(*) FROM sfac_Inventario").Scan(&total).Error
	return total, err
}
