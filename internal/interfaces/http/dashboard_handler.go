package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/panel-acib/internal/application/usecase"
)

// DashboardHandler maneja los endpoints del tablero de estadísticas.
type DashboardHandler struct {
	uc *usecase.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Overview godoc
// @Summary      Tablero de estadísticas
// @Description  Estado por etapa, diagrama de no conformidades, barras de entradas/salidas y procesos por éxito.
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardDTO
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Overview(c *fiber.Ctx) error {
	out, err := h.uc.Overview(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// SummaryPDF godoc
// @Summary      Tablero en PDF
// @Tags         dashboard
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/dashboard/resumen.pdf [get]
func (h *DashboardHandler) SummaryPDF(c *fiber.Ctx) error {
	pdf, err := h.uc.SummaryPDF(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="resumen.pdf"`)
	return c.Send(pdf)
}

// Daily godoc
// @Summary      Resumen del día contra el anterior
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DailySummaryDTO
// @Router       /api/resumen-dia [get]
func (h *DashboardHandler) Daily(c *fiber.Ctx) error {
	out, err := h.uc.Daily(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
