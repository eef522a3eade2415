package inventory

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	domaininv "github.com/jhoicas/Almacen-api/internal/domain/inventory"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// LedgerUseCase procesa entradas y salidas de inventario de forma
// transaccional, con bloqueo de fila (SELECT FOR UPDATE) y Commit/Rollback.
// Es el único camino que modifica StockRecord.Quantity.
type LedgerUseCase struct {
	txRunner TxRunner
	now      func() time.Time
}

// NewLedgerUseCase construye el caso de uso.
func NewLedgerUseCase(txRunner TxRunner) *LedgerUseCase {
	return &LedgerUseCase{txRunner: txRunner, now: time.Now}
}

// InboundInput entrada para registrar una entrada de mercancía.
type InboundInput struct {
	Code         string
	StockCode    string
	GoodsCode    string
	Quantity     int64
	GoodsName    string
	UnitPrice    decimal.Decimal
	SupplierName string
}

// OutboundInput entrada para registrar una salida de mercancía.
type OutboundInput struct {
	Code      string
	StockCode string
	GoodsCode string
	Quantity  int64
	GoodsName string
	UnitPrice decimal.Decimal
}

// MovementResult resultado de un movimiento confirmado.
type MovementResult struct {
	Code        string
	StockCode   string
	NewQuantity int64
}

// ProcessInbound inserta el asiento de entrada e incrementa la cantidad del
// registro de stock en una sola transacción. Si el registro de stock no
// existe, rechaza con ConstraintError sin insertar nada (referencia colgante,
// mismo resultado observable que la violación de FK).
func (uc *LedgerUseCase) ProcessInbound(ctx context.Context, input InboundInput) (*MovementResult, error) {
	if input.Code == "" || input.StockCode == "" || input.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if input.UnitPrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	now := uc.now()
	var result *MovementResult
	err := uc.txRunner.Run(ctx, func(
		txRepo repository.TransactionRepository,
		stockRepo repository.StockRecordRepository,
	) error {
		// Bloquea la fila de stock para serializar movimientos concurrentes
		// sobre el mismo registro.
		stock, err := stockRepo.GetForUpdate(input.StockCode)
		if err != nil {
			return err
		}
		if stock == nil {
			return &domain.ConstraintError{Table: "inbound_transactions", Err: domain.ErrNotFound}
		}

		mov := &entity.InboundTransaction{
			Code:         input.Code,
			StockCode:    input.StockCode,
			GoodsCode:    input.GoodsCode,
			Quantity:     input.Quantity,
			GoodsName:    input.GoodsName,
			Date:         now,
			UnitPrice:    input.UnitPrice,
			SupplierName: input.SupplierName,
		}
		if err := txRepo.CreateInbound(mov); err != nil {
			return err
		}

		newQty := stock.Quantity + input.Quantity
		if err := stockRepo.UpdateQuantity(input.StockCode, newQty); err != nil {
			return err
		}
		result = &MovementResult{Code: input.Code, StockCode: input.StockCode, NewQuantity: newQty}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// ProcessOutbound verifica la disponibilidad bajo el bloqueo de fila y, solo
// si alcanza, inserta el asiento de salida y decrementa la cantidad en la
// misma transacción. Si no alcanza (registro inexistente cuenta como cero)
// rechaza la operación completa con InsufficientStockError.
func (uc *LedgerUseCase) ProcessOutbound(ctx context.Context, input OutboundInput) (*MovementResult, error) {
	if input.Code == "" || input.StockCode == "" || input.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if input.UnitPrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	now := uc.now()
	var result *MovementResult
	err := uc.txRunner.Run(ctx, func(
		txRepo repository.TransactionRepository,
		stockRepo repository.StockRecordRepository,
	) error {
		stock, err := stockRepo.GetForUpdate(input.StockCode)
		if err != nil {
			return err
		}
		var available int64
		if stock != nil {
			available = stock.Quantity
		}
		if !domaininv.CanIssue(available, input.Quantity) {
			return &domain.InsufficientStockError{
				StockCode: input.StockCode,
				Available: available,
				Requested: input.Quantity,
			}
		}

		mov := &entity.OutboundTransaction{
			Code:      input.Code,
			StockCode: input.StockCode,
			GoodsCode: input.GoodsCode,
			Quantity:  input.Quantity,
			GoodsName: input.GoodsName,
			Date:      now,
			UnitPrice: input.UnitPrice,
		}
		if err := txRepo.CreateOutbound(mov); err != nil {
			return err
		}

		newQty := available - input.Quantity
		if err := stockRepo.UpdateQuantity(input.StockCode, newQty); err != nil {
			return err
		}
		result = &MovementResult{Code: input.Code, StockCode: input.StockCode, NewQuantity: newQty}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
