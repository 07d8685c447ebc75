package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/panel-acib/internal/application/dto"
	"github.com/jhoicas/panel-acib/internal/application/usecase"
)

// CatalogHandler procesos, entradas e indicadores.
type CatalogHandler struct {
	uc *usecase.CatalogUseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *usecase.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// Catalog godoc
// @Summary      Procesos, indicadores y entradas
// @Tags         catalogo
// @Produce      json
// @Success      200  {object}  dto.CatalogResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/catalogo [get]
func (h *CatalogHandler) Catalog(c *fiber.Ctx) error {
	out, err := h.uc.Catalog(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ListProcesses godoc
// @Summary      Listar procesos
// @Tags         catalogo
// @Produce      json
// @Success      200  {array}   entity.Process
// @Router       /api/procesos [get]
func (h *CatalogHandler) ListProcesses(c *fiber.Ctx) error {
	out, err := h.uc.ListProcesses(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetProcess godoc
// @Summary      Obtener proceso con sus etapas
// @Tags         catalogo
// @Produce      json
// @Param        id   path  int  true  "ID del proceso"
// @Success      200  {object}  entity.Process
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/procesos/{id} [get]
func (h *CatalogHandler) GetProcess(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badParam(c, "id")
	}
	out, err := h.uc.GetProcess(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// CreateInput godoc
// @Summary      Crear entrada
// @Tags         catalogo
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateInputRequest  true  "id, nombre, tipo"
// @Success      201   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/entradas [post]
func (h *CatalogHandler) CreateInput(c *fiber.Ctx) error {
	var in dto.CreateInputRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.uc.CreateInput(c.UserContext(), in); err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "entrada creada"})
}

// CreateIndicator godoc
// @Summary      Crear indicador
// @Tags         catalogo
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateIndicatorRequest  true  "id, nombre, tipo, entrada_id"
// @Success      201   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/indicadores [post]
func (h *CatalogHandler) CreateIndicator(c *fiber.Ctx) error {
	var in dto.CreateIndicatorRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.uc.CreateIndicator(c.UserContext(), in); err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "indicador creado"})
}
