package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/inventory"
	"github.com/jhoicas/Almacen-api/internal/application/usecase"
)

// InventoryHandler maneja las peticiones HTTP de movimientos de inventario:
// entradas, salidas y los historiales de ambos.
type InventoryHandler struct {
	ledger  *inventory.LedgerUseCase
	stockUC *usecase.StockUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(ledger *inventory.LedgerUseCase, stockUC *usecase.StockUseCase) *InventoryHandler {
	return &InventoryHandler{ledger: ledger, stockUC: stockUC}
}

// ProcessInbound godoc
// @Summary      Registrar entrada de mercancía
// @Description  Inserta el asiento de entrada e incrementa el stock en una
//
//	sola transacción.
//
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProcessInboundRequest  true  "code, stock_code, quantity, goods_name, unit_price, supplier_name"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/inbound [post]
func (h *InventoryHandler) ProcessInbound(c *fiber.Ctx) error {
	var in dto.ProcessInboundRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	result, err := h.ledger.ProcessInbound(c.Context(), inventory.InboundInput{
		Code:         in.Code,
		StockCode:    in.StockCode,
		GoodsCode:    in.GoodsCode,
		Quantity:     in.Quantity,
		GoodsName:    in.GoodsName,
		UnitPrice:    in.UnitPrice,
		SupplierName: in.SupplierName,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MovementResponse{
		Code:        result.Code,
		StockCode:   result.StockCode,
		NewQuantity: result.NewQuantity,
	})
}

// ProcessOutbound godoc
// @Summary      Registrar salida de mercancía
// @Description  Verifica la disponibilidad bajo bloqueo de fila; si no
//
//	alcanza, rechaza con 409 y las cantidades disponible y solicitada.
//
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProcessOutboundRequest  true  "code, stock_code, quantity, goods_name, unit_price"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/outbound [post]
func (h *InventoryHandler) ProcessOutbound(c *fiber.Ctx) error {
	var in dto.ProcessOutboundRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	result, err := h.ledger.ProcessOutbound(c.Context(), inventory.OutboundInput{
		Code:      in.Code,
		StockCode: in.StockCode,
		GoodsCode: in.GoodsCode,
		Quantity:  in.Quantity,
		GoodsName: in.GoodsName,
		UnitPrice: in.UnitPrice,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MovementResponse{
		Code:        result.Code,
		StockCode:   result.StockCode,
		NewQuantity: result.NewQuantity,
	})
}

// ListInbound godoc
// @Summary      Historial de entradas
// @Tags         inventory
// @Produce      json
// @Success      200  {array}   dto.InboundRecordResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/inventory/inbound [get]
func (h *InventoryHandler) ListInbound(c *fiber.Ctx) error {
	out, err := h.stockUC.InboundHistory(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(out), "movements": out})
}

// ListOutbound godoc
// @Summary      Historial de salidas
// @Tags         inventory
// @Produce      json
// @Success      200  {array}   dto.OutboundRecordResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/inventory/outbound [get]
func (h *InventoryHandler) ListOutbound(c *fiber.Ctx) error {
	out, err := h.stockUC.OutboundHistory(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(out), "movements": out})
}
