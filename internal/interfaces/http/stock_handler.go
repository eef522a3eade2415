package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/usecase"
)

// StockHandler maneja las peticiones HTTP de registros de stock y del estado
// de inventario.
type StockHandler struct {
	uc *usecase.StockUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *usecase.StockUseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// Create godoc
// @Summary      Crear registro de stock
// @Tags         stock
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateStockRecordRequest  true  "code, warehouse_name, quantity, unit_price"
// @Success      201   {object}  dto.StockRecordResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/stock [post]
func (h *StockHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateStockRecordRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Code == "" || in.WarehouseName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "code y warehouse_name son obligatorios"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Status godoc
// @Summary      Estado de inventario
// @Description  Cada registro de stock con su bodega, responsable y valor total.
// @Tags         stock
// @Produce      json
// @Success      200  {object}  dto.StockStatusListResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/stock/status [get]
func (h *StockHandler) Status(c *fiber.Ctx) error {
	out, err := h.uc.Status(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
