package router

import (
	"context"
	"time"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"

	"ordenespro/internal/config"
	"ordenespro/internal/handler"
	"ordenespro/internal/middleware"
	"ordenespro/internal/repository"
	"ordenespro/internal/service"
	"ordenespro/internal/storage"
	"ordenespro/internal/workflow"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← storage.Engine
func New(ctx context.Context, cfg *config.Config, eng storage.Engine) (*gin.Engine, error) {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	ordenRepo, err := repository.NewOrdenRepository(ctx, eng)
	if err != nil {
		return nil, err
	}
	clienteRepo, err := repository.NewClienteRepository(ctx, eng)
	if err != nil {
		return nil, err
	}
	usuarioRepo, err := repository.NewUsuarioRepository(ctx, eng)
	if err != nil {
		return nil, err
	}
	notificacionRepo, err := repository.NewNotificacionRepository(ctx, eng)
	if err != nil {
		return nil, err
	}
	reporteRepo := repository.NewReporteRepository(eng)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(usuarioRepo, cfg)
	ordenSvc := service.NewOrdenService(ordenRepo)
	clienteSvc := service.NewClienteService(clienteRepo, ordenRepo)
	reporteSvc := service.NewReporteService(reporteRepo, ordenRepo)
	tareaSvc := service.NewTareaService(ordenRepo, notificacionRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	ordenesH := handler.NewOrdenHandler(ordenSvc)
	clientesH := handler.NewClienteHandler(clienteSvc)
	reporteH := handler.NewReporteHandler(reporteSvc)
	tareasH := handler.NewTareaHandler(tareaSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(eng))

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.GET("/usuarios", authH.Usuarios)
	}

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	todos := []workflow.Rol{
		workflow.RolAdministrador, workflow.RolVendedor,
		workflow.RolProduccion, workflow.RolContabilidad,
	}
	v1 := r.Group("/v1", jwtMW)
	{
		ordenes := v1.Group("/ordenes", middleware.RequireRole(todos...))
		{
			ordenes.GET("", ordenesH.Listar)
			ordenes.GET("/resumen", ordenesH.Resumen)
			ordenes.GET("/estadisticas", ordenesH.Estadisticas)
			ordenes.GET("/export/csv", ordenesH.ExportarCSV)
			ordenes.GET("/:id", ordenesH.Obtener)
			ordenes.GET("/:id/pdf", ordenesH.PDF)
			ordenes.POST("/:id/paso", ordenesH.Paso)
			ordenes.POST("/:id/avanzar", ordenesH.Avanzar)
			ordenes.POST("/:id/clonar", ordenesH.Clonar)
			ordenes.POST("/:id/productos/:indice/completar", ordenesH.AlternarProducto)
		}
		// Creation and edits never reach production; voids and deletes
		// are administrator-only. The service enforces the same rules,
		// these groups just fail fast.
		v1.POST("/ordenes", middleware.RequireRole(workflow.RolAdministrador, workflow.RolVendedor), ordenesH.Crear)
		v1.PUT("/ordenes/:id", middleware.RequireRole(workflow.RolAdministrador, workflow.RolVendedor, workflow.RolContabilidad), ordenesH.Actualizar)
		v1.POST("/ordenes/:id/anular", middleware.RequireRole(workflow.RolAdministrador), ordenesH.Anular)
		v1.DELETE("/ordenes/:id", middleware.RequireRole(workflow.RolAdministrador), ordenesH.Eliminar)
		v1.POST("/ordenes/:id/archivar", middleware.RequireRole(workflow.RolAdministrador), ordenesH.Archivar)
		v1.POST("/ordenes/:id/desarchivar", middleware.RequireRole(workflow.RolAdministrador), ordenesH.Desarchivar)

		clientes := v1.Group("/clientes", middleware.RequireRole(workflow.RolAdministrador, workflow.RolVendedor, workflow.RolContabilidad))
		{
			clientes.GET("", clientesH.Listar)
			clientes.GET("/:id", clientesH.Obtener)
			clientes.POST("", clientesH.Crear)
			clientes.PUT("/:id", clientesH.Actualizar)
			clientes.DELETE("/:id", clientesH.Eliminar)
		}

		reporte := v1.Group("/reporte-diario", middleware.RequireRole(workflow.RolAdministrador, workflow.RolContabilidad))
		{
			reporte.GET("/:fecha", reporteH.Obtener)
			reporte.PUT("/:fecha", reporteH.Actualizar)
			reporte.POST("/:fecha/transacciones", reporteH.AgregarTransaccion)
			reporte.PUT("/:fecha/transacciones/:id", reporteH.ActualizarTransaccion)
			reporte.DELETE("/:fecha/transacciones/:id", reporteH.EliminarTransaccion)
			reporte.GET("/:fecha/export/csv", reporteH.ExportarCSV)
			reporte.GET("/:fecha/pdf", reporteH.PDF)
		}

		v1.GET("/tareas", middleware.RequireRole(todos...), tareasH.Pendientes)
		v1.GET("/notificaciones", middleware.RequireRole(todos...), tareasH.Notificaciones)
		v1.POST("/notificaciones/:ordenId/archivar", middleware.RequireRole(todos...), tareasH.Archivar)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r, nil
}
