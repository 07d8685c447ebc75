package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/panel-acib/internal/application/dto"
	"github.com/jhoicas/panel-acib/internal/application/usecase"
)

// ScheduleHandler horario de atención.
type ScheduleHandler struct {
	uc *usecase.ScheduleUseCase
}

// NewScheduleHandler construye el handler.
func NewScheduleHandler(uc *usecase.ScheduleUseCase) *ScheduleHandler {
	return &ScheduleHandler{uc: uc}
}

// Availability godoc
// @Summary      Disponibilidad actual
// @Tags         horario
// @Produce      json
// @Success      200  {object}  dto.AvailabilityResponse
// @Router       /api/disponibilidad [get]
func (h *ScheduleHandler) Availability(c *fiber.Ctx) error {
	return c.JSON(h.uc.Availability())
}

// Configure godoc
// @Summary      Configurar horario
// @Description  Guarda la ventana, regenera el resumen del día y vuelve a consultar la disponibilidad.
// @Tags         horario
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ScheduleRequest  true  "hora_inicio (0-23), duracion_horas (1-24)"
// @Success      200   {object}  dto.AvailabilityResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/horario [put]
func (h *ScheduleHandler) Configure(c *fiber.Ctx) error {
	var in dto.ScheduleRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Configure(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
