package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/gofiber/template/html/v2"

	"github.com/jhoicas/panel-acib/internal/application/auth"
	"github.com/jhoicas/panel-acib/internal/application/execution"
	"github.com/jhoicas/panel-acib/internal/application/state"
	"github.com/jhoicas/panel-acib/internal/application/usecase"
	"github.com/jhoicas/panel-acib/internal/domain/entity"
	"github.com/jhoicas/panel-acib/internal/infrastructure/backend"
	"github.com/jhoicas/panel-acib/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/panel-acib/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/panel-acib/internal/interfaces/http"
	"github.com/jhoicas/panel-acib/pkg/config"
	"github.com/jhoicas/panel-acib/pkg/logger"
	"github.com/jhoicas/panel-acib/web"
)

const swaggerFile = "./docs/swagger.json"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
		App:   cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("backend", cfg.Backend.BaseURL).
		Msg("iniciando aplicación")

	zl := log.Zerolog()
	client := backend.New(backend.Options{
		BaseURL:      cfg.Backend.BaseURL,
		Timeout:      cfg.Backend.Timeout,
		MaxBodyBytes: cfg.Backend.MaxBodyBytes,
	}, zl)

	processRepo := backend.NewProcessRepository(client)
	catalogRepo := backend.NewCatalogRepository(client)
	executionRepo := backend.NewExecutionRepository(client)
	statsRepo := backend.NewStatisticsRepository(client)
	logRepo := backend.NewLogRepository(client)
	reportRepo := backend.NewReportRepository(client)
	scheduleRepo := backend.NewScheduleRepository(client)
	userRepo := backend.NewUserRepository(client)
	authRepo := backend.NewAuthRepository(client)

	// Estado compartido en memoria
	availability := state.NewAvailabilityStore(scheduleRepo, zl)
	resolver := state.NewUserResolver(userRepo, memory.NewStore[entity.User](cfg.Cache.UserTTL), cfg.JWT.Secret)

	authUC := auth.NewAuthUseCase(authRepo, resolver, zl)
	catalogUC := usecase.NewCatalogUseCase(processRepo, catalogRepo)
	draftUC := usecase.NewDraftUseCase(processRepo, memory.NewStore[*usecase.Draft](cfg.Cache.DraftTTL), zl)
	executionUC := execution.NewUseCase(
		processRepo, executionRepo,
		memory.NewStore[*execution.Session](cfg.Cache.ExecutionTTL),
		cfg.Execution.CloseDelay, zl,
	)
	dashboardUC := usecase.NewDashboardUseCase(statsRepo, infrapdf.NewSummaryGenerator(cfg.App.PublicURL))
	monitorUC := usecase.NewMonitorUseCase(logRepo)
	reportUC := usecase.NewReportUseCase(
		reportRepo, infrapdf.NewInspector(),
		memory.NewStore[*entity.Report](cfg.Cache.ReportTTL), zl,
	)
	userUC := usecase.NewUserUseCase(userRepo)
	scheduleUC := usecase.NewScheduleUseCase(scheduleRepo, availability, zl)

	engine := html.NewFileSystem(http.FS(web.Templates()), ".html")

	app := fiber.New(fiber.Config{
		AppName:           cfg.App.Name,
		Immutable:         true,
		ReadTimeout:       time.Second * 10,
		WriteTimeout:      cfg.Backend.Timeout + 5*time.Second,
		IdleTimeout:       time.Second * 60,
		Views:             engine,
		ViewsLayout:       "layouts/main",
		PassLocalsToViews: true,
		ErrorHandler:      httpRouter.ErrorHandler,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Component("http")))
	app.Use("/static", filesystem.New(filesystem.Config{Root: http.FS(web.Static())}))

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "Panel ACIB API",
		}))
	} else {
		log.Warn().Str("file", swaggerFile).Msg("swagger deshabilitado")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":         "ok",
			"service":        cfg.App.Name,
			"disponibilidad": availability.Snapshot().Known,
		})
	})

	store := session.New(session.Config{
		Expiration:     cfg.Session.Expiration,
		CookieName:     cfg.Session.CookieName,
		CookiePath:     "/",
		CookieSecure:   cfg.Session.CookieSecure,
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Sessions:     httpRouter.NewSessionManager(store),
		Availability: availability,
		AuthUC:       authUC,
		CatalogUC:    catalogUC,
		DraftUC:      draftUC,
		ExecutionUC:  executionUC,
		DashboardUC:  dashboardUC,
		MonitorUC:    monitorUC,
		ReportUC:     reportUC,
		UserUC:       userUC,
		ScheduleUC:   scheduleUC,
		Views:        true,
	})

	// La disponibilidad se consulta una vez al arrancar; las guardas esperan
	// a esta carga antes de decidir.
	loadCtx, cancelLoad := context.WithTimeout(context.Background(), cfg.Backend.Timeout)
	go func() {
		defer cancelLoad()
		if err := availability.Load(loadCtx); err != nil {
			log.Warn().Err(err).Msg("disponibilidad inicial no disponible")
		}
	}()

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
