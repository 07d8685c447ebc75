package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/panel-acib/internal/application/dto"
	"github.com/jhoicas/panel-acib/internal/application/execution"
)

// ExecutionHandler modal de ejecución de procesos. {etapa} e {indice} son
// posiciones que empiezan en 0.
type ExecutionHandler struct {
	uc *execution.UseCase
}

// NewExecutionHandler construye el handler.
func NewExecutionHandler(uc *execution.UseCase) *ExecutionHandler {
	return &ExecutionHandler{uc: uc}
}

// Open godoc
// @Summary      Abrir ejecución de un proceso
// @Tags         ejecucion
// @Accept       json
// @Produce      json
// @Param        body  body  dto.OpenExecutionRequest  true  "proceso_id"
// @Success      201   {object}  execution.View
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/ejecuciones [post]
func (h *ExecutionHandler) Open(c *fiber.Ctx) error {
	var in dto.OpenExecutionRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if in.ProcesoID <= 0 {
		return badParam(c, "proceso_id")
	}
	view, err := h.uc.Open(c.UserContext(), owner(c), in.ProcesoID)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(view)
}

// Get godoc
// @Summary      Estado de la ejecución
// @Tags         ejecucion
// @Produce      json
// @Param        id   path  string  true  "ID de la sesión"
// @Success      200  {object}  execution.View
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ejecuciones/{id} [get]
func (h *ExecutionHandler) Get(c *fiber.Ctx) error {
	return respond(c, func() (any, error) { return h.uc.Get(owner(c), c.Params("id")) })
}

// SetInput godoc
// @Summary      Escribir el valor de una entrada
// @Tags         ejecucion
// @Accept       json
// @Produce      json
// @Param        id      path  string               true  "ID de la sesión"
// @Param        etapa   path  int                  true  "Posición de la etapa"
// @Param        indice  path  int                  true  "Posición de la entrada"
// @Param        body    body  dto.SetInputRequest  true  "value"
// @Success      200     {object}  execution.View
// @Failure      400     {object}  dto.ErrorResponse
// @Router       /api/ejecuciones/{id}/etapas/{etapa}/entradas/{indice} [put]
func (h *ExecutionHandler) SetInput(c *fiber.Ctx) error {
	stage, index, bad := stageIndex(c)
	if bad != "" {
		return badParam(c, bad)
	}
	var in dto.SetInputRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	return respond(c, func() (any, error) {
		return h.uc.SetInput(owner(c), c.Params("id"), stage, index, in.Value)
	})
}

// SetIndicator godoc
// @Summary      Responder un indicador
// @Tags         ejecucion
// @Accept       json
// @Produce      json
// @Param        id      path  string                   true  "ID de la sesión"
// @Param        etapa   path  int                      true  "Posición de la etapa"
// @Param        indice  path  int                      true  "Posición del indicador"
// @Param        body    body  dto.SetIndicatorRequest  true  "value"
// @Success      200     {object}  execution.View
// @Router       /api/ejecuciones/{id}/etapas/{etapa}/indicadores/{indice} [put]
func (h *ExecutionHandler) SetIndicator(c *fiber.Ctx) error {
	stage, index, bad := stageIndex(c)
	if bad != "" {
		return badParam(c, bad)
	}
	var in dto.SetIndicatorRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	return respond(c, func() (any, error) {
		return h.uc.SetIndicator(owner(c), c.Params("id"), stage, index, in.Value)
	})
}

// Preview godoc
// @Summary      Previsualizar una etapa
// @Description  Solo actualiza la etapa pedida; una respuesta superada por otra más reciente se descarta.
// @Tags         ejecucion
// @Produce      json
// @Param        id     path  string  true  "ID de la sesión"
// @Param        etapa  path  int     true  "Posición de la etapa"
// @Success      200    {object}  execution.View
// @Failure      409    {object}  dto.ErrorResponse
// @Router       /api/ejecuciones/{id}/etapas/{etapa}/preview [post]
func (h *ExecutionHandler) Preview(c *fiber.Ctx) error {
	stage, err := c.ParamsInt("etapa")
	if err != nil {
		return badParam(c, "etapa")
	}
	return respond(c, func() (any, error) {
		return h.uc.Preview(c.UserContext(), owner(c), c.Params("id"), stage)
	})
}

// Submit godoc
// @Summary      Ejecutar el proceso
// @Tags         ejecucion
// @Produce      json
// @Param        id   path  string  true  "ID de la sesión"
// @Success      200  {object}  execution.View
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/ejecuciones/{id}/enviar [post]
func (h *ExecutionHandler) Submit(c *fiber.Ctx) error {
	return respond(c, func() (any, error) {
		return h.uc.Submit(c.UserContext(), owner(c), c.Params("id"))
	})
}

// Close godoc
// @Summary      Cerrar el modal de ejecución
// @Tags         ejecucion
// @Produce      json
// @Param        id   path  string  true  "ID de la sesión"
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/ejecuciones/{id} [delete]
func (h *ExecutionHandler) Close(c *fiber.Ctx) error {
	if err := h.uc.Close(owner(c), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "ejecución cerrada"})
}

// stageIndex lee {etapa} e {indice}; bad nombra el parámetro inválido.
func stageIndex(c *fiber.Ctx) (stage, index int, bad string) {
	stage, err := c.ParamsInt("etapa")
	if err != nil {
		return 0, 0, "etapa"
	}
	index, err = c.ParamsInt("indice")
	if err != nil {
		return 0, 0, "indice"
	}
	return stage, index, ""
}
