package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/panel-acib/internal/application/dto"
	"github.com/jhoicas/panel-acib/internal/application/usecase"
)

// DraftHandler asistente de creación de procesos. Las posiciones de etapa
// ({etapa}) empiezan en 0.
type DraftHandler struct {
	uc *usecase.DraftUseCase
}

// NewDraftHandler construye el handler.
func NewDraftHandler(uc *usecase.DraftUseCase) *DraftHandler {
	return &DraftHandler{uc: uc}
}

// Create godoc
// @Summary      Abrir borrador de proceso
// @Tags         creacion
// @Produce      json
// @Success      201  {object}  dto.DraftResponse
// @Router       /api/borradores [post]
func (h *DraftHandler) Create(c *fiber.Ctx) error {
	return c.Status(fiber.StatusCreated).JSON(h.uc.Create(owner(c)))
}

// Get godoc
// @Summary      Obtener borrador
// @Tags         creacion
// @Produce      json
// @Param        id   path  string  true  "ID del borrador"
// @Success      200  {object}  dto.DraftResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/borradores/{id} [get]
func (h *DraftHandler) Get(c *fiber.Ctx) error {
	return respond(c, func() (any, error) { return h.uc.Get(owner(c), c.Params("id")) })
}

// Rename godoc
// @Summary      Renombrar proceso
// @Tags         creacion
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID del borrador"
// @Param        body  body  dto.RenameDraftRequest  true  "nombre"
// @Success      200   {object}  dto.DraftResponse
// @Router       /api/borradores/{id}/nombre [put]
func (h *DraftHandler) Rename(c *fiber.Ctx) error {
	var in dto.RenameDraftRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	return respond(c, func() (any, error) { return h.uc.Rename(owner(c), c.Params("id"), in.Nombre) })
}

// AddStage godoc
// @Summary      Agregar etapa
// @Tags         creacion
// @Produce      json
// @Param        id   path  string  true  "ID del borrador"
// @Success      200  {object}  dto.DraftResponse
// @Router       /api/borradores/{id}/etapas [post]
func (h *DraftHandler) AddStage(c *fiber.Ctx) error {
	return respond(c, func() (any, error) { return h.uc.AddStage(owner(c), c.Params("id")) })
}

// RemoveStage godoc
// @Summary      Eliminar etapa (sin renumerar)
// @Tags         creacion
// @Produce      json
// @Param        id     path  string  true  "ID del borrador"
// @Param        etapa  path  int     true  "Posición de la etapa"
// @Success      200    {object}  dto.DraftResponse
// @Router       /api/borradores/{id}/etapas/{etapa} [delete]
func (h *DraftHandler) RemoveStage(c *fiber.Ctx) error {
	stage, err := c.ParamsInt("etapa")
	if err != nil {
		return badParam(c, "etapa")
	}
	return respond(c, func() (any, error) { return h.uc.RemoveStage(owner(c), c.Params("id"), stage) })
}

// AddItem godoc
// @Summary      Agregar entrada, indicador o salida a una etapa
// @Tags         creacion
// @Accept       json
// @Produce      json
// @Param        id         path  string                true  "ID del borrador"
// @Param        etapa      path  int                   true  "Posición de la etapa"
// @Param        coleccion  path  string                true  "entradas | indicadores | salidas"
// @Param        body       body  dto.StageItemRequest  true  "id, entrada_id"
// @Success      200        {object}  dto.DraftResponse
// @Failure      409        {object}  dto.ErrorResponse
// @Router       /api/borradores/{id}/etapas/{etapa}/{coleccion} [post]
func (h *DraftHandler) AddItem(c *fiber.Ctx) error {
	stage, err := c.ParamsInt("etapa")
	if err != nil {
		return badParam(c, "etapa")
	}
	var in dto.StageItemRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	return respond(c, func() (any, error) {
		return h.uc.AddItem(owner(c), c.Params("id"), stage, c.Params("coleccion"), in)
	})
}

// RemoveItem godoc
// @Summary      Quitar un elemento de una etapa
// @Tags         creacion
// @Produce      json
// @Param        id         path  string  true  "ID del borrador"
// @Param        etapa      path  int     true  "Posición de la etapa"
// @Param        coleccion  path  string  true  "entradas | indicadores | salidas"
// @Param        item       path  int     true  "ID del elemento"
// @Success      200        {object}  dto.DraftResponse
// @Router       /api/borradores/{id}/etapas/{etapa}/{coleccion}/{item} [delete]
func (h *DraftHandler) RemoveItem(c *fiber.Ctx) error {
	stage, err := c.ParamsInt("etapa")
	if err != nil {
		return badParam(c, "etapa")
	}
	item, err := c.ParamsInt("item")
	if err != nil {
		return badParam(c, "item")
	}
	return respond(c, func() (any, error) {
		return h.uc.RemoveItem(owner(c), c.Params("id"), stage, c.Params("coleccion"), item)
	})
}

// Submit godoc
// @Summary      Crear el proceso en el backend
// @Tags         creacion
// @Produce      json
// @Param        id   path  string  true  "ID del borrador"
// @Success      201  {object}  dto.SubmitDraftResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/borradores/{id}/enviar [post]
func (h *DraftHandler) Submit(c *fiber.Ctx) error {
	out, err := h.uc.Submit(c.UserContext(), owner(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Discard godoc
// @Summary      Descartar borrador
// @Tags         creacion
// @Produce      json
// @Param        id   path  string  true  "ID del borrador"
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/borradores/{id} [delete]
func (h *DraftHandler) Discard(c *fiber.Ctx) error {
	if err := h.uc.Discard(owner(c), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "borrador descartado"})
}

// respond ejecuta fn y responde su resultado como JSON o el error mapeado.
func respond(c *fiber.Ctx, fn func() (any, error)) error {
	out, err := fn()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
