package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/panel-acib/internal/application/dto"
	"github.com/jhoicas/panel-acib/internal/application/usecase"
)

// ReportHandler reportes PDF de monitoreo.
type ReportHandler struct {
	uc *usecase.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Generate godoc
// @Summary      Generar reporte
// @Tags         reportes
// @Accept       json
// @Produce      json
// @Param        body  body  dto.GenerateReportRequest  true  "Datos y elementos seleccionados"
// @Success      201   {object}  dto.ReportResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/reportes [post]
func (h *ReportHandler) Generate(c *fiber.Ctx) error {
	var in dto.GenerateReportRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Generate(c.UserContext(), GetUser(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// PDF godoc
// @Summary      Descargar el reporte generado
// @Tags         reportes
// @Produce      application/pdf
// @Param        id   path  string  true  "ID del reporte"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reportes/{id}/pdf [get]
func (h *ReportHandler) PDF(c *fiber.Ctx) error {
	rep, err := h.uc.PDF(owner(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="reporte.pdf"`)
	return c.Send(rep.PDF)
}

// Send godoc
// @Summary      Enviar el reporte por correo
// @Tags         reportes
// @Produce      json
// @Param        id   path  string  true  "ID del reporte"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reportes/{id}/enviar [post]
func (h *ReportHandler) Send(c *fiber.Ctx) error {
	if err := h.uc.Send(c.UserContext(), owner(c), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "reporte enviado"})
}
