package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/panel-acib/internal/application/auth"
	"github.com/jhoicas/panel-acib/internal/application/dto"
	"github.com/jhoicas/panel-acib/internal/application/usecase"
)

// AuthHandler maneja login, logout y la sesión actual.
type AuthHandler struct {
	uc       *auth.AuthUseCase
	sessions *SessionManager
	schedule *usecase.ScheduleUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, sessions *SessionManager, schedule *usecase.ScheduleUseCase) *AuthHandler {
	return &AuthHandler{uc: uc, sessions: sessions, schedule: schedule}
}

// Login godoc
// @Summary      Iniciar sesión
// @Description  Reenvía las credenciales al backend y guarda el token en la sesión del servidor.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.SessionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	token, u, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	if err := h.sessions.SetToken(c, token); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.SessionResponse{
		Usuario:        usecase.ToUserResponse(u),
		Disponibilidad: h.schedule.Availability(),
	})
}

// Logout godoc
// @Summary      Cerrar sesión
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.uc.Logout(h.sessions.Token(c))
	h.sessions.Clear(c)
	return c.JSON(dto.MessageResponse{Message: "sesión cerrada"})
}

// Me godoc
// @Summary      Usuario de la sesión
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.SessionResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	return c.JSON(dto.SessionResponse{
		Usuario:        usecase.ToUserResponse(GetUser(c)),
		Disponibilidad: h.schedule.Availability(),
	})
}

// LoginForm formulario de la portada: con éxito redirige al tablero, si no
// vuelve a mostrar la portada con el mensaje genérico.
func (h *AuthHandler) LoginForm(c *fiber.Ctx) error {
	in := dto.LoginRequest{Email: c.FormValue("email"), Password: c.FormValue("password")}
	token, _, err := h.uc.Login(c.UserContext(), in)
	if err == nil {
		err = h.sessions.SetToken(c, token)
	}
	if err != nil {
		status, body := errorResponse(err)
		requestLog(c).Warn().Err(err).Str("code", body.Code).Msg("login desde la portada fallido")
		return c.Status(status).Render("landing", fiber.Map{
			"Title":          "Panel de procesos",
			"Error":          body.Message,
			"Email":          in.Email,
			"Disponibilidad": h.schedule.Availability(),
		})
	}
	return c.Redirect("/dashboard")
}

// LogoutView cierra la sesión y vuelve a la portada.
func (h *AuthHandler) LogoutView(c *fiber.Ctx) error {
	h.uc.Logout(h.sessions.Token(c))
	h.sessions.Clear(c)
	return c.Redirect(landingPath)
}
