package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/panel-acib/internal/application/dto"
	"github.com/jhoicas/panel-acib/internal/application/usecase"
)

// UserHandler administración de usuarios (solo admin).
type UserHandler struct {
	uc *usecase.UserUseCase
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *usecase.UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// List godoc
// @Summary      Listar usuarios
// @Tags         administracion
// @Produce      json
// @Success      200  {array}  dto.UserResponse
// @Router       /api/usuarios [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	return respond(c, func() (any, error) { return h.uc.List(c.UserContext()) })
}

// Create godoc
// @Summary      Crear usuario
// @Tags         administracion
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateUserRequest  true  "nombre, email, tipo, password"
// @Success      201   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/usuarios [post]
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByEmail godoc
// @Summary      Obtener usuario por email
// @Tags         administracion
// @Produce      json
// @Param        email  path  string  true  "Email"
// @Success      200    {object}  dto.UserResponse
// @Failure      404    {object}  dto.ErrorResponse
// @Router       /api/usuarios/{email} [get]
func (h *UserHandler) GetByEmail(c *fiber.Ctx) error {
	return respond(c, func() (any, error) { return h.uc.GetByEmail(c.UserContext(), c.Params("email")) })
}
