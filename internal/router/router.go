package router

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"sfacapi/internal/config"
	"sfacapi/internal/handler"
	"sfacapi/internal/infra"
	"sfacapi/internal/middleware"
	"sfacapi/internal/printer"
	"sfacapi/internal/realtime"
	"sfacapi/internal/repository"
	"sfacapi/internal/service"
	"sfacapi/internal/worker"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis.
// The route tree mirrors the frontend contract: group prefixes are schema
// names and route segments are the procedure operations they dispatch to.
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, hub *realtime.Hub, direccionIP string) (*gin.Engine, error) {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS(cfg.IsProduction()))
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter())

	// ── Infrastructure ───────────────────────────────────────────────────
	gateway := repository.NewGateway(db)
	cipher := infra.NewCipher(cfg.SecretKey)
	codigos := infra.NewCodeStore(rdb)
	almacen, err := infra.NewAlmacen(cfg.UploadsPath)
	if err != nil {
		return nil, err
	}

	// The procedures concatenate this base address into the image URLs they
	// return, so it carries the port and a trailing slash.
	servidor := fmt.Sprintf("%s:%d/", direccionIP, cfg.Port)

	// ── Repositories ─────────────────────────────────────────────────────
	usuariosRepo := repository.NewUsuariosRepo(gateway)
	facturasRepo := repository.NewFacturasRepo(gateway)
	inventarioRepo := repository.NewInventarioRepo(gateway, servidor)
	ordenesRepo := repository.NewOrdenesRepo(gateway, servidor)
	cajaRepo := repository.NewCajaRepo(gateway)
	impresorasRepo := repository.NewImpresorasRepo(gateway)
	personasRepo := repository.NewPersonasRepo(gateway)
	catalogoRepo := repository.NewCatalogoRepo(gateway)
	reservasRepo := repository.NewReservasRepo(gateway)
	comprasRepo := repository.NewComprasRepo(gateway)

	// ── Services ─────────────────────────────────────────────────────────
	dispatcher := worker.NewDispatcher(rdb)
	jwtVigencia, err := time.ParseDuration(cfg.JWTExpiresIn)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_EXPIRES_IN %q: %w", cfg.JWTExpiresIn, err)
	}
	authSvc := service.NewAuthService(usuariosRepo, codigos, dispatcher, cfg.JWTSecret, cfg.SecretKey, cfg.JWTAlgorithm, jwtVigencia)
	ordenSvc := service.NewOrdenService(ordenesRepo, hub)
	impresionSvc := service.NewImpresionService(printer.NewClient(), printer.NewEscaner())

	// ── Handlers ─────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc, usuariosRepo)
	facturaH := handler.NewFacturaHandler(facturasRepo)
	inventarioH := handler.NewInventarioHandler(inventarioRepo)
	ordenH := handler.NewOrdenHandler(ordenSvc, ordenesRepo)
	cajaH := handler.NewCajaHandler(cajaRepo)
	impresionH := handler.NewImpresionHandler(impresionSvc, impresorasRepo)
	gralH := handler.NewGralHandler(personasRepo, catalogoRepo)
	reservaH := handler.NewReservaHandler(reservasRepo)
	comprasH := handler.NewComprasHandler(comprasRepo, almacen)
	uploadH := handler.NewUploadHandler(almacen)

	jwtMW := middleware.JWTAuth(cfg.JWTSecret, cfg.JWTAlgorithm, usuariosRepo)
	privMW := middleware.PrivilegedAuth(cipher, cfg.JWTSecret)

	// ── Routes ───────────────────────────────────────────────────────────

	r.GET("/health", handler.Health)
	r.GET("/ws", hub.Handler)

	auth := r.Group("/Authentication")
	{
		auth.POST("/register", authH.Register)
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.PUT("/edit", jwtMW, authH.Editar)
		auth.DELETE("/delete", jwtMW, authH.Eliminar)
		auth.GET("/get", jwtMW, authH.Obtener)
		auth.GET("/getAll", jwtMW, authH.ObtenerTodos)
		auth.POST("/enviar-codigo", authH.EnviarCodigo)
		auth.POST("/cambiar-password", authH.CambiarPassword)
		auth.POST("/cambiar-password-obligatorio", authH.CambiarPasswordObligatorio)
	}

	sfac := r.Group("/SFAC")
	{
		// Facturación
		sfac.GET("/ObtenerFacturas", jwtMW, facturaH.Obtener)
		sfac.GET("/ObtenerFacturas/totalFacturas", facturaH.Total)
		sfac.POST("/CrearFactura", jwtMW, facturaH.Crear)
		sfac.POST("/CrearFacturaWEB", facturaH.CrearWeb)
		sfac.PUT("/EditarFactura", jwtMW, privMW, facturaH.Editar)
		sfac.PUT("/AsignarOrdenFactura", jwtMW, privMW, facturaH.AsignarOrden)
		sfac.DELETE("/EliminarFactura", jwtMW, facturaH.Eliminar)
		sfac.GET("/ObtenerDetalleFactura", jwtMW, facturaH.ObtenerDetalle)
		sfac.POST("/CrearDetalleFactura", jwtMW, privMW, facturaH.CrearDetalle)
		sfac.POST("/CrearDetalleFacturaWEB", facturaH.CrearDetalleWeb)
		sfac.PUT("/EditarDetalleFactura", jwtMW, privMW, facturaH.EditarDetalle)
		sfac.DELETE("/EliminarDetalleFactura", jwtMW, facturaH.EliminarDetalle)

		// Inventario
		sfac.GET("/ObtenerInventario", jwtMW, inventarioH.Obtener)
		sfac.GET("/ObtenerInventarioWeb", inventarioH.ObtenerWeb)
		sfac.GET("/ObtenerInventario/total-productos", inventarioH.Total)
		sfac.POST("/CrearInventario", jwtMW, inventarioH.Crear)
		sfac.PUT("/EditarInventario", jwtMW, inventarioH.Editar)
		sfac.DELETE("/EliminarInventario", jwtMW, inventarioH.Eliminar)
		sfac.POST("/ActivarInventario", jwtMW, inventarioH.Activar)
		sfac.GET("/ProductosCombo", jwtMW, inventarioH.ProductosCombo)
		sfac.GET("/ExtrasProducto", jwtMW, inventarioH.ExtrasProducto)
		sfac.GET("/VariantesProducto", jwtMW, inventarioH.VariantesProducto)

		// Empaquetados
		sfac.GET("/EmpaquetadosProducto", jwtMW, inventarioH.ObtenerEmpaquetados)
		sfac.POST("/Empaquetado", jwtMW, inventarioH.CrearEmpaquetado)
		sfac.PUT("/Empaquetado", jwtMW, inventarioH.EditarEmpaquetado)
		sfac.DELETE("/Empaquetado", jwtMW, inventarioH.EliminarEmpaquetado)

		// Descuentos
		sfac.GET("/ObtenerDescuentoFactura", jwtMW, facturaH.ObtenerDescuentos)
		sfac.POST("/CrearDescuentoFactura", jwtMW, privMW, facturaH.CrearDescuento)
		sfac.PUT("/EditarDescuentoFactura", jwtMW, privMW, facturaH.EditarDescuento)
		sfac.DELETE("/EliminarDescuentoFactura", jwtMW, facturaH.EliminarDescuento)

		// Formas de pago
		sfac.GET("/ObtenerDetalleFormasPago", jwtMW, facturaH.ObtenerFormasPago)
		sfac.POST("/CrearDetalleFormasPago", jwtMW, privMW, facturaH.CrearFormaPago)
		sfac.PUT("/EditarDetalleFormasPago", jwtMW, privMW, facturaH.EditarFormaPago)
		sfac.DELETE("/EliminarDetalleFormasPago", jwtMW, facturaH.EliminarFormaPago)

		// Talonarios
		sfac.GET("/ObtenerTalonarios", jwtMW, facturaH.ObtenerTalonarios)
		sfac.POST("/CrearTalonario", jwtMW, facturaH.CrearTalonario)
		sfac.PUT("/EditarTalonario", jwtMW, privMW, facturaH.EditarTalonario)
		sfac.DELETE("/EliminarTalonario", jwtMW, privMW, facturaH.EliminarTalonario)
		sfac.GET("/ObtenerDetalleTalonario", jwtMW, facturaH.ObtenerDetalleTalonario)
		sfac.POST("/CrearDetalleTalonario", jwtMW, facturaH.CrearDetalleTalonario)
		sfac.PUT("/EditarDetalleTalonario", jwtMW, privMW, facturaH.EditarDetalleTalonario)
		sfac.DELETE("/EliminarDetalleTalonario", jwtMW, privMW, facturaH.EliminarDetalleTalonario)

		// Cajas por sucursal
		sfac.GET("/ObtenerCajasSucursal", jwtMW, facturaH.ObtenerCajasSucursal)
		sfac.POST("/CrearCajaSucursal", jwtMW, facturaH.CrearCajaSucursal)
		sfac.PUT("/EditarCajaSucursal", jwtMW, privMW, facturaH.EditarCajaSucursal)
		sfac.DELETE("/EliminarCajaSucursal", jwtMW, privMW, facturaH.EliminarCajaSucursal)

		// Órdenes
		sfac.GET("/ObtenerOrdenes", jwtMW, ordenH.Obtener)
		sfac.GET("/ObtenerOrdenUsuario", jwtMW, ordenH.ObtenerDeUsuario)
		sfac.POST("/CrearOrdenes", jwtMW, ordenH.Crear)
		sfac.PUT("/EditarOrdenes", jwtMW, ordenH.Editar)
		sfac.PUT("/ActualizarEstadoOrdenes", jwtMW, ordenH.ActualizarEstado)
		sfac.PUT("/CerrarOrden", jwtMW, ordenH.Cerrar)

		// Sesión de caja
		sfac.POST("/AbrirCaja", jwtMW, cajaH.Abrir)
		sfac.POST("/CerrarCaja", jwtMW, cajaH.Cerrar)
		sfac.GET("/ObtenerEstadoCaja", jwtMW, cajaH.Estado)
		sfac.GET("/ValidarPuedeFacturar", jwtMW, cajaH.ValidarPuedeFacturar)
		sfac.GET("/ObtenerHistorialCaja", jwtMW, cajaH.Historial)
		sfac.GET("/ObtenerResumenVentasCaja", jwtMW, cajaH.ResumenVentas)
		sfac.POST("/CrearMovimientoCaja", jwtMW, cajaH.CrearMovimiento)
		sfac.GET("/ObtenerMovimientosCaja", jwtMW, cajaH.ObtenerMovimientos)
		sfac.DELETE("/EliminarMovimientoCaja", jwtMW, cajaH.EliminarMovimiento)

		// Reportes
		sfac.GET("/ReporteCierreCaja", jwtMW, cajaH.ReporteCierre)
		sfac.GET("/ReporteCierreMensualCaja", jwtMW, cajaH.ReporteCierreMensual)
		sfac.GET("/ReporteVentasDiarias", jwtMW, cajaH.ReporteVentasDiarias)
		sfac.GET("/ReporteComprasDiarias", jwtMW, cajaH.ReporteComprasDiarias)
		sfac.GET("/ReporteInventario", jwtMW, cajaH.ReporteInventario)
	}

	compras := r.Group("/Compras", jwtMW)
	{
		compras.GET("/ObtenerFacturasCompras", comprasH.Obtener)
		compras.GET("/ObtenerFacturaCompraPorCodigo", comprasH.ObtenerPorCodigo)
		compras.GET("/totalFacturasCompras", comprasH.Total)
		compras.GET("/ObtenerTotalFacturasCompras", comprasH.Total)
		compras.POST("/CrearFacturaCompra", comprasH.Crear)
		compras.PUT("/EditarFacturaCompra", comprasH.Editar)
		compras.DELETE("/EliminarFacturaCompra", comprasH.Eliminar)
		compras.GET("/ObtenerDetalleFacturaCompra", comprasH.ObtenerDetalle)
		compras.POST("/CrearDetalleFacturaCompra", comprasH.CrearDetalle)
		compras.PUT("/EditarDetalleFacturaCompra", comprasH.EditarDetalle)
		compras.DELETE("/EliminarDetalleFacturaCompra", comprasH.EliminarDetalle)
		compras.POST("/RecalcularTotalesFactura", comprasH.RecalcularTotales)
		compras.POST("/SubirImagenFactura", comprasH.SubirImagen)
		compras.DELETE("/EliminarImagenFactura", comprasH.EliminarImagen)
	}

	gral := r.Group("/GRAL", jwtMW)
	{
		gral.GET("/ObtenerPersonas", gralH.ObtenerPersonas)
		gral.POST("/CrearPersona", gralH.CrearPersona)
		gral.PUT("/EditarPersona", gralH.EditarPersona)
	}

	cat := r.Group("/CAT")
	{
		cat.GET("/ObtenerCatalogo", jwtMW, gralH.ObtenerCatalogo)
		cat.GET("/ObtenerCatalogoWEB", gralH.ObtenerCatalogoWeb)
		cat.GET("/Categorias", jwtMW, gralH.ObtenerCategorias)
		cat.POST("/Categoria", jwtMW, gralH.CrearCategoria)
		cat.PUT("/Categoria", jwtMW, gralH.EditarCategoria)
		cat.DELETE("/Categoria", jwtMW, gralH.EliminarCategoria)
		cat.GET("/Ubicaciones", jwtMW, gralH.ObtenerUbicaciones)
		cat.POST("/Ubicacion", jwtMW, gralH.CrearUbicacion)
		cat.PUT("/Ubicacion", jwtMW, gralH.EditarUbicacion)
		cat.DELETE("/Ubicacion", jwtMW, gralH.EliminarUbicacion)
	}

	prin := r.Group("/PRIN")
	{
		prin.GET("/BuscarImpresoras", impresionH.Buscar)
		prin.POST("/impresoras/test", impresionH.Prueba)
		prin.GET("/ObtenerImpresoras", jwtMW, impresionH.Obtener)
		prin.POST("/CrearImpresoras", jwtMW, impresionH.Crear)
		prin.PUT("/EditarImpresoras", jwtMW, privMW, impresionH.Editar)
		prin.DELETE("/EliminarImpresoras", jwtMW, privMW, impresionH.Eliminar)
		prin.PATCH("/ActivarImpresoras", jwtMW, privMW, impresionH.Activar)
	}

	resv := r.Group("/RESV")
	{
		resv.GET("/ObtenerReservas", jwtMW, reservaH.Obtener)
		resv.GET("/ObtenerReservas/total-reservas", reservaH.Total)
		resv.GET("/ObtenerReservasWEB", reservaH.ObtenerWeb)
		resv.POST("/CrearReserva", jwtMW, reservaH.Crear)
		resv.POST("/CrearReservaWEB", reservaH.CrearWeb)
		resv.PUT("/EditarReserva", jwtMW, reservaH.Editar)
		resv.POST("/AsignarMesa", jwtMW, reservaH.AsignarMesa)
		resv.GET("/mesas/layout/:ubicacionId", reservaH.ObtenerLayout)
		resv.POST("/mesas/layout", reservaH.GuardarLayout)
		resv.GET("/ObtenerMesas", jwtMW, reservaH.ObtenerMesas)
		resv.GET("/ObtenerMesas/total-mesas", jwtMW, reservaH.TotalMesas)
		resv.POST("/CrearMesa", jwtMW, reservaH.CrearMesa)
		resv.PUT("/EditarMesa", jwtMW, reservaH.EditarMesa)
		resv.DELETE("/EliminarMesa", jwtMW, reservaH.EliminarMesa)
		resv.GET("/ObtenerSolicitudesEventos", jwtMW, reservaH.ObtenerSolicitudesEventos)
		resv.GET("/ObtenerSolicitudesEventos/total-eventos", jwtMW, reservaH.TotalEventos)
		resv.POST("/CrearSolicitudEvento", jwtMW, reservaH.CrearSolicitudEvento)
		resv.POST("/CrearSolicitudEventoWEB", reservaH.CrearSolicitudEventoWeb)
		resv.PUT("/EditarSolicitudEvento", jwtMW, reservaH.EditarSolicitudEvento)
		resv.PUT("/CancelarSolicitudEvento", jwtMW, reservaH.CancelarSolicitudEvento)
		resv.PUT("/ConfirmarSolicitudEvento", jwtMW, reservaH.ConfirmarSolicitudEvento)
		resv.GET("/ObtenerSolicitudesMenuDegustacion", jwtMW, reservaH.ObtenerSolicitudesMenu)
		resv.GET("/ObtenerSolicitudesMenuDegustacion/total-menu-degustacion", jwtMW, reservaH.TotalSolicitudesMenu)
		resv.POST("/CrearSolicitudMenuDegustacion", jwtMW, reservaH.CrearSolicitudMenu)
		resv.POST("/CrearSolicitudMenuDegustacionWEB", reservaH.CrearSolicitudMenuWeb)
		resv.PUT("/EditarSolicitudMenuDegustacion", jwtMW, reservaH.EditarSolicitudMenu)
		resv.PUT("/CancelarSolicitudMenuDegustacion", jwtMW, reservaH.CancelarSolicitudMenu)
		resv.PUT("/ConfirmarSolicitudMenuDegustacion", jwtMW, reservaH.ConfirmarSolicitudMenu)
	}

	// Direct printing, unprefixed: the POS panel calls these routes.
	r.POST("/generar-factura", impresionH.GenerarFactura)
	r.POST("/generar-apertura-caja", impresionH.GenerarApertura)
	r.POST("/generar-cierre-caja", impresionH.GenerarCierre)
	r.GET("/ObtenerInformacionFactura", facturaH.ObtenerInformacion)

	// Uploads
	r.POST("/upload", uploadH.Subir)
	r.GET("/uploads/*filepath", servirUpload(almacen.Base()))

	return r, nil
}

// servirUpload serves stored files and falls back to default.jpg so the POS
// never renders a broken product image.
func servirUpload(base string) gin.HandlerFunc {
	return func(c *gin.Context) {
		pedido := filepath.Join(base, filepath.Clean("/"+c.Param("filepath")))
		if info, err := os.Stat(pedido); err == nil && !info.IsDir() {
			c.File(pedido)
			return
		}
		porDefecto := filepath.Join(base, "default.jpg")
		if _, err := os.Stat(porDefecto); err == nil {
			c.File(porDefecto)
			return
		}
		c.Status(http.StatusNotFound)
	}
}
