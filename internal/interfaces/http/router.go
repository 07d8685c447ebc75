package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/panel-acib/internal/application/auth"
	"github.com/jhoicas/panel-acib/internal/application/execution"
	"github.com/jhoicas/panel-acib/internal/application/usecase"
	"github.com/jhoicas/panel-acib/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Sessions     *SessionManager
	Availability availabilityWaiter
	AuthUC       *auth.AuthUseCase
	CatalogUC    *usecase.CatalogUseCase
	DraftUC      *usecase.DraftUseCase
	ExecutionUC  *execution.UseCase
	DashboardUC  *usecase.DashboardUseCase
	MonitorUC    *usecase.MonitorUseCase
	ReportUC     *usecase.ReportUseCase
	UserUC       *usecase.UserUseCase
	ScheduleUC   *usecase.ScheduleUseCase
	// Views en false registra solo la API (tests sin motor de plantillas).
	Views bool
}

var (
	rolesAll      = []entity.Role{entity.RoleAdmin, entity.RoleUser, entity.RoleAuditor}
	rolesMonitor  = []entity.Role{entity.RoleAdmin, entity.RoleAuditor}
	rolesCreation = []entity.Role{entity.RoleAdmin, entity.RoleUser}
	rolesAdmin    = []entity.Role{entity.RoleAdmin}
)

// Router registra las rutas de la API y, si corresponde, las vistas.
func Router(app *fiber.App, deps RouterDeps) {
	authHandler := NewAuthHandler(deps.AuthUC, deps.Sessions, deps.ScheduleUC)
	scheduleHandler := NewScheduleHandler(deps.ScheduleUC)

	api := app.Group("/api")

	// Públicas
	api.Post("/auth/login", authHandler.Login)
	api.Post("/auth/logout", authHandler.Logout)
	api.Get("/disponibilidad", scheduleHandler.Availability)

	// Rutas protegidas (sesión + horario; el admin no depende del horario).
	// Los guards van por ruta o en grupos con prefijo propio: un Group sobre
	// "/" los registraría en todo /api y una ruta inexistente daría 401.
	sessionGuard := RequireSession(deps.Sessions, deps.AuthUC, SurfaceAPI)
	availabilityGuard := RequireAvailability(deps.Availability, SurfaceAPI)
	guarded := func(h ...fiber.Handler) []fiber.Handler {
		return append([]fiber.Handler{sessionGuard, availabilityGuard}, h...)
	}
	api.Get("/auth/me", guarded(authHandler.Me)...)

	anyRole := RequireRole(SurfaceAPI, rolesAll...)
	creationRole := RequireRole(SurfaceAPI, rolesCreation...)
	monitorRole := RequireRole(SurfaceAPI, rolesMonitor...)
	adminRole := RequireRole(SurfaceAPI, rolesAdmin...)

	// Catálogo: lectura para todos, altas para quien crea procesos
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	api.Get("/catalogo", guarded(anyRole, catalogHandler.Catalog)...)
	api.Get("/procesos", guarded(anyRole, catalogHandler.ListProcesses)...)
	api.Get("/procesos/:id", guarded(anyRole, catalogHandler.GetProcess)...)
	api.Post("/entradas", guarded(creationRole, catalogHandler.CreateInput)...)
	api.Post("/indicadores", guarded(creationRole, catalogHandler.CreateIndicator)...)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	api.Get("/dashboard", guarded(anyRole, dashboardHandler.Overview)...)
	api.Get("/dashboard/resumen.pdf", guarded(anyRole, dashboardHandler.SummaryPDF)...)
	api.Get("/resumen-dia", guarded(anyRole, dashboardHandler.Daily)...)

	// Creación de procesos
	draftHandler := NewDraftHandler(deps.DraftUC)
	drafts := api.Group("/borradores", guarded(creationRole)...)
	drafts.Post("/", draftHandler.Create)
	drafts.Get("/:id", draftHandler.Get)
	drafts.Delete("/:id", draftHandler.Discard)
	drafts.Put("/:id/nombre", draftHandler.Rename)
	drafts.Post("/:id/etapas", draftHandler.AddStage)
	drafts.Delete("/:id/etapas/:etapa", draftHandler.RemoveStage)
	drafts.Post("/:id/etapas/:etapa/:coleccion", draftHandler.AddItem)
	drafts.Delete("/:id/etapas/:etapa/:coleccion/:item", draftHandler.RemoveItem)
	drafts.Post("/:id/enviar", draftHandler.Submit)

	// Ejecución de procesos
	executionHandler := NewExecutionHandler(deps.ExecutionUC)
	execs := api.Group("/ejecuciones", guarded(creationRole)...)
	execs.Post("/", executionHandler.Open)
	execs.Get("/:id", executionHandler.Get)
	execs.Delete("/:id", executionHandler.Close)
	execs.Put("/:id/etapas/:etapa/entradas/:indice", executionHandler.SetInput)
	execs.Put("/:id/etapas/:etapa/indicadores/:indice", executionHandler.SetIndicator)
	execs.Post("/:id/etapas/:etapa/preview", executionHandler.Preview)
	execs.Post("/:id/enviar", executionHandler.Submit)

	// Monitoreo y reportes
	monitorHandler := NewMonitorHandler(deps.MonitorUC)
	api.Get("/monitoreo", guarded(monitorRole, monitorHandler.Overview)...)
	api.Get("/monitoreo/busqueda", guarded(monitorRole, monitorHandler.Search)...)
	api.Put("/registros/:id/fecha", guarded(monitorRole, monitorHandler.UpdateCreationDate)...)

	reportHandler := NewReportHandler(deps.ReportUC)
	reports := api.Group("/reportes", guarded(monitorRole)...)
	reports.Post("/", reportHandler.Generate)
	reports.Get("/:id/pdf", reportHandler.PDF)
	reports.Post("/:id/enviar", reportHandler.Send)

	// Administración
	userHandler := NewUserHandler(deps.UserUC)
	users := api.Group("/usuarios", guarded(adminRole)...)
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)
	users.Get("/:email", userHandler.GetByEmail)
	api.Put("/horario", guarded(adminRole, scheduleHandler.Configure)...)

	if deps.Views {
		registerViews(app, deps, authHandler)
	}
}

// registerViews páginas HTML con los mismos guards en modo redirección.
func registerViews(app *fiber.App, deps RouterDeps, authHandler *AuthHandler) {
	views := NewViewHandler(ViewDeps{
		Sessions:  deps.Sessions,
		Dashboard: deps.DashboardUC,
		Monitor:   deps.MonitorUC,
		Catalog:   deps.CatalogUC,
		Users:     deps.UserUC,
		Schedule:  deps.ScheduleUC,
	})

	app.Get("/", views.Landing)
	app.Post("/login", authHandler.LoginForm)
	app.Get("/logout", authHandler.LogoutView)
	app.Get(unavailablePath, views.Unavailable)

	guarded := func(roles []entity.Role, h fiber.Handler) []fiber.Handler {
		return []fiber.Handler{
			RequireSession(deps.Sessions, deps.AuthUC, SurfaceView),
			RequireRole(SurfaceView, roles...),
			RequireAvailability(deps.Availability, SurfaceView),
			h,
		}
	}
	app.Get("/dashboard", guarded(rolesAll, views.Dashboard)...)
	app.Get("/monitoreo", guarded(rolesMonitor, views.Monitor)...)
	app.Get("/creacion", guarded(rolesCreation, views.Creation)...)
	app.Get("/administracion", guarded(rolesAdmin, views.Admin)...)
}
