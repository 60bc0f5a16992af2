package routes

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ThonyMarckDEV/ecommerce-storefront-gateway/api/controllers"
	"github.com/ThonyMarckDEV/ecommerce-storefront-gateway/api/middleware"
	adminsvc "github.com/ThonyMarckDEV/ecommerce-storefront-gateway/internal/admin"
	authsvc "github.com/ThonyMarckDEV/ecommerce-storefront-gateway/internal/auth"
	cartsvc "github.com/ThonyMarckDEV/ecommerce-storefront-gateway/internal/cart"
	catalogsvc "github.com/ThonyMarckDEV/ecommerce-storefront-gateway/internal/catalog"
	maintenancesvc "github.com/ThonyMarckDEV/ecommerce-storefront-gateway/internal/maintenance"
	orderssvc "github.com/ThonyMarckDEV/ecommerce-storefront-gateway/internal/orders"
	"github.com/ThonyMarckDEV/ecommerce-storefront-gateway/internal/upstream"
	"github.com/ThonyMarckDEV/ecommerce-storefront-gateway/pkg/auth/session"
	"github.com/ThonyMarckDEV/ecommerce-storefront-gateway/pkg/config"
	"github.com/ThonyMarckDEV/ecommerce-storefront-gateway/pkg/enums"
	"github.com/ThonyMarckDEV/ecommerce-storefront-gateway/pkg/logger"
	"github.com/ThonyMarckDEV/ecommerce-storefront-gateway/pkg/metrics"
)

// Deps bundles everything the router wires together.
type Deps struct {
	Config      *config.Config
	Logger      *logger.Logger
	Store       *session.CookieStore
	Upstream    *upstream.Client
	Auth        *authsvc.Service
	Catalog     *catalogsvc.Service
	Cart        *cartsvc.Service
	Orders      *orderssvc.Service
	Admin       *adminsvc.Service
	Maintenance *maintenancesvc.Service
	Verdicts    session.VerdictCache
	Metrics     *metrics.SessionMetrics
	Registry    *prometheus.Registry
}

func NewRouter(deps Deps) http.Handler {
	logg := deps.Logger
	store := deps.Store

	var threshold, heartbeatInterval time.Duration
	var origins []string
	if deps.Config != nil {
		threshold = deps.Config.Session.RefreshThreshold
		heartbeatInterval = deps.Config.Session.HeartbeatInterval
		origins = deps.Config.CORS.AllowedOrigins
	}
	lifecycle := controllers.SessionLifecycleOptions{
		RefreshThreshold:  threshold,
		HeartbeatInterval: heartbeatInterval,
		Verdicts:          deps.Verdicts,
		Metrics:           deps.Metrics,
	}

	publicGuard := middleware.Guard(middleware.GuardConfig{Public: true}, store, logg)
	clienteGuard := middleware.Guard(middleware.GuardConfig{
		AllowedRoles:         []enums.Role{enums.RoleCliente},
		RequireVerifiedEmail: true,
	}, store, logg)
	adminGuard := middleware.Guard(middleware.GuardConfig{
		AllowedRoles: []enums.Role{enums.RoleAdmin},
	}, store, logg)
	superadminGuard := middleware.Guard(middleware.GuardConfig{
		AllowedRoles: []enums.Role{enums.RoleSuperAdmin},
	}, store, logg)

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(origins),
	)

	r.Get("/health/live", controllers.Liveness())
	if deps.Registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
	}

	// The status endpoint stays reachable during the window it reports.
	r.Get("/api/status-mantenimiento", controllers.MaintenanceStatus(deps.Maintenance, logg))

	// Browse surface: open to everyone, shopper identity optional so
	// signed-in searches land in the shopper's history.
	r.Group(func(r chi.Router) {
		r.Use(middleware.Identity(store, logg), middleware.Maintenance(deps.Maintenance, logg))
		r.Get("/api/productos", controllers.Products(deps.Catalog, logg))
		r.Get("/api/listarCategorias", controllers.Categories(deps.Catalog, logg))
		r.Get("/api/productos-destacados", controllers.FeaturedProducts(deps.Catalog, logg))
		r.Get("/api/obtenerPrecioMaximo", controllers.MaxPrice(deps.Catalog, logg))
	})

	// Credential exchange: only anonymous visitors belong here.
	r.Group(func(r chi.Router) {
		r.Use(publicGuard)
		r.Post("/api/login", controllers.Login(deps.Auth, store, logg))
		r.Post("/api/login-google", controllers.LoginGoogle(deps.Auth, store, logg))
		r.Post("/api/registerUser", controllers.Register(deps.Auth, store, logg))
		r.Post("/api/registerUserGoogle", controllers.RegisterGoogle(deps.Auth, store, logg))
	})

	// Session lifecycle: any cookie holder, verified or not.
	r.Post("/api/logout", controllers.Logout(store, logg))
	r.Post("/api/refresh-token", controllers.RefreshSession(deps.Upstream, store, logg, lifecycle))
	r.Post("/api/heartbeat", controllers.SessionHeartbeat(deps.Upstream, store, logg, lifecycle))
	r.Get("/api/session", controllers.SessionInfo(store, logg))

	// Shopper surface.
	r.Group(func(r chi.Router) {
		r.Use(clienteGuard, middleware.Maintenance(deps.Maintenance, logg))
		r.Get("/api/busquedas-recientes", controllers.RecentSearches(deps.Catalog, logg))
		r.Get("/api/carrito", controllers.CartView(deps.Cart, logg))
		r.Get("/api/carrito/cantidad", controllers.CartCount(deps.Cart, logg))
		r.Post("/api/agregarCarrito", controllers.AddToCart(deps.Cart, logg))
		r.Put("/api/carrito_detalle/{id}", controllers.UpdateCartDetail(deps.Cart, logg))
		r.Delete("/api/carrito_detalle/{id}", controllers.RemoveCartDetail(deps.Cart, logg))
		r.Get("/api/pedidos", controllers.Orders(deps.Orders, logg))
		r.Post("/api/pedido", controllers.CreateOrder(deps.Orders, logg))
		r.Delete("/api/cancelarPedido/{id}", controllers.CancelOrder(deps.Orders, logg))
		r.Post("/api/recibirPagoComprobante", controllers.SubmitPaymentReceipt(deps.Orders, logg))
		r.Post("/api/payment/preference", controllers.CreatePaymentPreference(deps.Orders, logg))
	})

	// Catalog management.
	r.Group(func(r chi.Router) {
		r.Use(adminGuard)
		r.Post("/api/agregarCategoria", controllers.AddCategory(deps.Admin, logg))
		r.Put("/api/editarCategoria/{id}", controllers.EditCategory(deps.Admin, logg))
		r.Patch("/api/cambiarEstadoCategoria/{id}", controllers.ToggleCategoryStatus(deps.Admin, logg))
		r.Get("/api/listarTallas", controllers.Sizes(deps.Admin, logg))
		r.Post("/api/agregarTalla", controllers.AddSize(deps.Admin, logg))
		r.Put("/api/editarTalla/{id}", controllers.EditSize(deps.Admin, logg))
		r.Patch("/api/cambiarEstadoTalla/{id}", controllers.ToggleSizeStatus(deps.Admin, logg))
		r.Post("/api/agregarProductos", controllers.AddProduct(deps.Admin, logg))
		r.Post("/api/editarModeloyImagen/{id}", controllers.EditProductModel(deps.Admin, logg))
		r.Patch("/api/cambiarEstadoProducto/{id}", controllers.ToggleProductStatus(deps.Admin, logg))
		r.Get("/api/stock/{modelId}/{sizeId}", controllers.Stock(deps.Admin, logg))
		r.Post("/api/actualizarStock", controllers.UpdateStock(deps.Admin, logg))
	})

	// Account administration.
	r.Group(func(r chi.Router) {
		r.Use(superadminGuard)
		r.Get("/api/listarUsuarios", controllers.Users(deps.Admin, logg))
		r.Patch("/api/cambiarEstadoUsuario/{id}", controllers.ToggleUserStatus(deps.Admin, logg))
	})

	return r
}
