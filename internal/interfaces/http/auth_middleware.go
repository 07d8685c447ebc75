package http

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/panel-acib/internal/application/dto"
	"github.com/jhoicas/panel-acib/internal/domain"
	"github.com/jhoicas/panel-acib/internal/domain/entity"
	"github.com/jhoicas/panel-acib/pkg/bearer"
)

// Locals keys para el usuario y el token de la sesión en Fiber.
const (
	LocalUser  = "usuario"
	LocalToken = "token"
)

// Surface distingue las vistas HTML (redirigen) de la API JSON (status).
type Surface int

const (
	SurfaceView Surface = iota
	SurfaceAPI
)

const (
	landingPath     = "/"
	unavailablePath = "/no-disponible"
)

// sessionUsers resuelve el usuario dueño del token. Lo implementa *auth.AuthUseCase.
type sessionUsers interface {
	Me(ctx context.Context, token string) (*entity.User, error)
}

// RequireSession exige un token en la sesión y resuelve su usuario.
// Sin token, o si el backend no reconoce el token, la sesión se limpia y se
// redirige a la portada (vistas) o se responde 401 (API).
//
// Deja en Locals el usuario y el token, y el token en el UserContext para las
// llamadas al backend.
func RequireSession(sessions *SessionManager, users sessionUsers, surface Surface) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := sessions.Token(c)
		if token == "" {
			return deny(c, surface, landingPath, fiber.StatusUnauthorized,
				dto.ErrorResponse{Code: "MISSING_SESSION", Message: "inicie sesión"})
		}

		ctx := bearer.WithToken(c.UserContext(), token)
		u, err := users.Me(ctx, token)
		if err != nil {
			requestLog(c).Warn().Err(err).Msg("token de sesión rechazado")
			if errors.Is(err, domain.ErrUnauthorized) || errors.Is(err, domain.ErrForbidden) {
				sessions.Clear(c)
			}
			if surface == SurfaceAPI {
				return writeError(c, err)
			}
			return c.Redirect(landingPath)
		}

		c.SetUserContext(ctx)
		c.Locals(LocalUser, u)
		c.Locals(LocalToken, token)
		return c.Next()
	}
}

// RequireRole permite el paso solo a los roles indicados. Debe usarse DESPUÉS
// de RequireSession.
func RequireRole(surface Surface, roles ...entity.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		u := GetUser(c)
		if u == nil {
			return deny(c, surface, landingPath, fiber.StatusUnauthorized,
				dto.ErrorResponse{Code: "MISSING_SESSION", Message: "inicie sesión"})
		}
		for _, r := range roles {
			if u.Tipo == r {
				return c.Next()
			}
		}
		return deny(c, surface, landingPath, fiber.StatusForbidden,
			dto.ErrorResponse{Code: "FORBIDDEN", Message: "no tiene permisos para esta sección"})
	}
}

// GetUser usuario de la sesión (después de RequireSession).
func GetUser(c *fiber.Ctx) *entity.User {
	u, _ := c.Locals(LocalUser).(*entity.User)
	return u
}

// GetToken token de la sesión (después de RequireSession).
func GetToken(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalToken).(string)
	return s
}

// owner clave de propiedad de borradores, ejecuciones y reportes.
func owner(c *fiber.Ctx) string {
	if u := GetUser(c); u != nil {
		return u.Email
	}
	return ""
}

func deny(c *fiber.Ctx, surface Surface, to string, status int, body dto.ErrorResponse) error {
	if surface == SurfaceAPI {
		return c.Status(status).JSON(body)
	}
	return c.Redirect(to)
}
