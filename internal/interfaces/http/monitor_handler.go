package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/panel-acib/internal/application/dto"
	"github.com/jhoicas/panel-acib/internal/application/usecase"
	"github.com/jhoicas/panel-acib/internal/domain/entity"
)

// MonitorHandler vista de monitoreo.
type MonitorHandler struct {
	uc *usecase.MonitorUseCase
}

// NewMonitorHandler construye el handler.
func NewMonitorHandler(uc *usecase.MonitorUseCase) *MonitorHandler {
	return &MonitorHandler{uc: uc}
}

// Overview godoc
// @Summary      Últimas ejecuciones, registros y tendencia
// @Tags         monitoreo
// @Produce      json
// @Param        ventana  query  string  false  "week | month | year"  default(week)
// @Success      200      {object}  dto.MonitorDTO
// @Failure      400      {object}  dto.ErrorResponse
// @Router       /api/monitoreo [get]
func (h *MonitorHandler) Overview(c *fiber.Ctx) error {
	out, err := h.uc.Overview(c.UserContext(), c.Query("ventana"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Search godoc
// @Summary      Buscar registros de ejecución
// @Tags         monitoreo
// @Produce      json
// @Param        id_proceso            query  string  false  "ID del proceso"
// @Param        id_proceso_ejecutado  query  string  false  "ID de la ejecución"
// @Param        nombre_proceso        query  string  false  "Nombre del proceso"
// @Success      200  {array}   entity.LogRecord
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/monitoreo/busqueda [get]
func (h *MonitorHandler) Search(c *fiber.Ctx) error {
	out, err := h.uc.Search(c.UserContext(), entity.ExecutedSearch{
		IDProceso:          c.Query("id_proceso"),
		IDProcesoEjecutado: c.Query("id_proceso_ejecutado"),
		NombreProceso:      c.Query("nombre_proceso"),
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// UpdateCreationDate godoc
// @Summary      Corregir la fecha de creación de un registro
// @Tags         monitoreo
// @Accept       json
// @Produce      json
// @Param        id    path  int                    true  "ID del registro"
// @Param        body  body  dto.UpdateDateRequest  true  "fecha (RFC 3339)"
// @Success      200   {object}  dto.MessageResponse
// @Router       /api/registros/{id}/fecha [put]
func (h *MonitorHandler) UpdateCreationDate(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badParam(c, "id")
	}
	var in dto.UpdateDateRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.uc.UpdateCreationDate(c.UserContext(), id, in.Fecha); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "fecha actualizada"})
}
