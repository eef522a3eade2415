package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/usecase"
)

// OperatorHandler maneja las peticiones HTTP de operarios.
type OperatorHandler struct {
	uc *usecase.OperatorUseCase
}

// NewOperatorHandler construye el handler.
func NewOperatorHandler(uc *usecase.OperatorUseCase) *OperatorHandler {
	return &OperatorHandler{uc: uc}
}

// Create godoc
// @Summary      Crear operario
// @Tags         operators
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOperatorRequest  true  "name, contact"
// @Success      201   {object}  dto.OperatorResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/operators [post]
func (h *OperatorHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOperatorRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es obligatorio"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar operarios
// @Tags         operators
// @Produce      json
// @Success      200  {object}  dto.OperatorListResponse
// @Router       /api/operators [get]
func (h *OperatorHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
