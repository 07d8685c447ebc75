package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/panel-acib/internal/application/dto"
	"github.com/jhoicas/panel-acib/internal/application/state"
)

// availabilityWait tope de espera de la carga inicial de disponibilidad.
const availabilityWait = 10 * time.Second

// availabilityWaiter es el contrato mínimo que necesita el middleware.
// Lo implementa *state.AvailabilityStore.
type availabilityWaiter interface {
	WaitLoaded(ctx context.Context) (state.AvailabilityState, error)
}

// RequireAvailability bloquea las secciones fuera del horario de atención.
// Debe usarse DESPUÉS de RequireSession (necesita LocalUser).
//
// Comportamiento:
//   - Espera la carga inicial de disponibilidad (como máximo availabilityWait).
//   - Disponibilidad desconocida cuenta como no disponible.
//   - El admin siempre pasa para poder reconfigurar el horario.
//   - Vistas: redirige a /no-disponible. API: 503 UNAVAILABLE.
func RequireAvailability(avail availabilityWaiter, surface Surface) fiber.Handler {
	return func(c *fiber.Ctx) error {
		u := GetUser(c)
		if u == nil {
			return deny(c, surface, landingPath, fiber.StatusUnauthorized,
				dto.ErrorResponse{Code: "MISSING_SESSION", Message: "inicie sesión"})
		}

		ctx, cancel := context.WithTimeout(c.UserContext(), availabilityWait)
		defer cancel()
		snap, err := avail.WaitLoaded(ctx)
		if err != nil {
			requestLog(c).Warn().Err(err).Msg("disponibilidad aún no cargada")
		}

		if !snap.Allows(u.Tipo) {
			return deny(c, surface, unavailablePath, fiber.StatusServiceUnavailable,
				dto.ErrorResponse{Code: "UNAVAILABLE", Message: "servicio no disponible en este horario"})
		}
		return c.Next()
	}
}
