package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/panel-acib/internal/application/dto"
	"github.com/jhoicas/panel-acib/internal/application/usecase"
	"github.com/jhoicas/panel-acib/pkg/bearer"
)

// ViewHandler páginas HTML del panel. Cada vista se arma en el servidor con
// los mismos casos de uso que la API; un fallo del backend muestra el mensaje
// genérico dentro de la página.
type ViewHandler struct {
	sessions  *SessionManager
	dashboard *usecase.DashboardUseCase
	monitor   *usecase.MonitorUseCase
	catalog   *usecase.CatalogUseCase
	users     *usecase.UserUseCase
	schedule  *usecase.ScheduleUseCase
}

// ViewDeps dependencias de las vistas.
type ViewDeps struct {
	Sessions  *SessionManager
	Dashboard *usecase.DashboardUseCase
	Monitor   *usecase.MonitorUseCase
	Catalog   *usecase.CatalogUseCase
	Users     *usecase.UserUseCase
	Schedule  *usecase.ScheduleUseCase
}

// NewViewHandler construye el handler.
func NewViewHandler(d ViewDeps) *ViewHandler {
	return &ViewHandler{
		sessions:  d.Sessions,
		dashboard: d.Dashboard,
		monitor:   d.Monitor,
		catalog:   d.Catalog,
		users:     d.Users,
		schedule:  d.Schedule,
	}
}

// Landing portada pública con el formulario de login.
func (h *ViewHandler) Landing(c *fiber.Ctx) error {
	if h.sessions.Token(c) != "" {
		return c.Redirect("/dashboard")
	}
	return c.Render("landing", fiber.Map{
		"Title":          "Panel de procesos",
		"Disponibilidad": h.schedule.Availability(),
	})
}

// Dashboard tablero de estadísticas.
func (h *ViewHandler) Dashboard(c *fiber.Ctx) error {
	data := h.page(c, "Tablero")
	out, err := h.dashboard.Overview(c.UserContext())
	h.fill(c, data, "Tablero", out, err)
	return c.Render("dashboard", data)
}

// Monitor últimas ejecuciones y registros.
func (h *ViewHandler) Monitor(c *fiber.Ctx) error {
	data := h.page(c, "Monitoreo")
	out, err := h.monitor.Overview(c.UserContext(), c.Query("ventana"))
	h.fill(c, data, "Monitor", out, err)
	return c.Render("monitoreo", data)
}

// Creation asistente de creación y ejecución de procesos.
func (h *ViewHandler) Creation(c *fiber.Ctx) error {
	data := h.page(c, "Creación de procesos")
	out, err := h.catalog.Catalog(c.UserContext())
	h.fill(c, data, "Catalogo", out, err)
	return c.Render("creacion", data)
}

// Admin usuarios y horario.
func (h *ViewHandler) Admin(c *fiber.Ctx) error {
	data := h.page(c, "Administración")
	out, err := h.users.List(c.UserContext())
	h.fill(c, data, "Usuarios", out, err)
	return c.Render("administracion", data)
}

// Unavailable página pública fuera de horario con el resumen del día. El
// backend publica /resumen-dia sin autenticación; si hay sesión igual se
// envía el token.
func (h *ViewHandler) Unavailable(c *fiber.Ctx) error {
	data := fiber.Map{
		"Title":          "Servicio no disponible",
		"Disponibilidad": h.schedule.Availability(),
	}
	ctx := c.UserContext()
	if token := h.sessions.Token(c); token != "" {
		ctx = bearer.WithToken(ctx, token)
	}
	if out, err := h.dashboard.Daily(ctx); err == nil {
		data["Resumen"] = out
	} else {
		requestLog(c).Warn().Err(err).Msg("resumen del día no disponible")
	}
	return c.Status(fiber.StatusServiceUnavailable).Render("no-disponible", data)
}

func (h *ViewHandler) page(c *fiber.Ctx, title string) fiber.Map {
	return fiber.Map{
		"Title":          title,
		"Usuario":        usecase.ToUserResponse(GetUser(c)),
		"Disponibilidad": h.schedule.Availability(),
	}
}

// fill agrega out bajo key, o el mensaje genérico si err no es nil.
func (h *ViewHandler) fill(c *fiber.Ctx, data fiber.Map, key string, out any, err error) {
	if err != nil {
		requestLog(c).Warn().Err(err).Str("vista", key).Msg("vista sin datos")
		data["Error"] = dto.MensajeGenerico
		return
	}
	data[key] = out
}
