package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// StockUseCase casos de uso para registros de stock: alta, estado de
// inventario e historial de movimientos. Las mutaciones de cantidad no pasan
// por aquí; eso es exclusivo del motor de movimientos.
type StockUseCase struct {
	repo          repository.StockRecordRepository
	warehouseRepo repository.WarehouseRepository
	reportRepo    repository.ReportRepository
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(
	repo repository.StockRecordRepository,
	warehouseRepo repository.WarehouseRepository,
	reportRepo repository.ReportRepository,
) *StockUseCase {
	return &StockUseCase{repo: repo, warehouseRepo: warehouseRepo, reportRepo: reportRepo}
}

// Create crea un registro de stock. La bodega debe existir y la cantidad
// inicial no puede ser negativa.
func (uc *StockUseCase) Create(in dto.CreateStockRecordRequest) (*dto.StockRecordResponse, error) {
	if in.Quantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	unitPrice := decimal.Zero
	if in.UnitPrice != nil {
		if in.UnitPrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		unitPrice = *in.UnitPrice
	}
	warehouse, err := uc.warehouseRepo.GetByName(in.WarehouseName)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrNotFound
	}
	record := &entity.StockRecord{
		Code:          in.Code,
		WarehouseName: in.WarehouseName,
		Quantity:      in.Quantity,
		UnitPrice:     unitPrice,
	}
	if err := uc.repo.Create(record); err != nil {
		return nil, err
	}
	return &dto.StockRecordResponse{
		Code:          record.Code,
		WarehouseName: record.WarehouseName,
		Quantity:      record.Quantity,
		UnitPrice:     record.UnitPrice,
	}, nil
}

// Status devuelve el estado de inventario (join con bodega), ordenado por
// bodega y código de registro.
func (uc *StockUseCase) Status(ctx context.Context) (*dto.StockStatusListResponse, error) {
	rows, err := uc.reportRepo.StockStatus(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.StockStatusResponse, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.StockStatusResponse{
			Code:          r.Code,
			WarehouseName: r.WarehouseName,
			Quantity:      r.Quantity,
			UnitPrice:     r.UnitPrice,
			Manager:       r.Manager,
			TotalValue:    r.TotalValue,
		})
	}
	return &dto.StockStatusListResponse{Items: items, Total: len(items)}, nil
}

// InboundHistory lista los asientos de entrada, más recientes primero.
func (uc *StockUseCase) InboundHistory(ctx context.Context) ([]dto.InboundRecordResponse, error) {
	rows, err := uc.reportRepo.InboundHistory(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.InboundRecordResponse, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.InboundRecordResponse{
			Code:         r.Code,
			GoodsCode:    r.GoodsCode,
			GoodsName:    r.GoodsName,
			Quantity:     r.Quantity,
			UnitPrice:    r.UnitPrice,
			Date:         r.Date,
			SupplierName: r.SupplierName,
			Amount:       r.Amount,
		})
	}
	return items, nil
}

// OutboundHistory lista los asientos de salida, más recientes primero.
func (uc *StockUseCase) OutboundHistory(ctx context.Context) ([]dto.OutboundRecordResponse, error) {
	rows, err := uc.reportRepo.OutboundHistory(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OutboundRecordResponse, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.OutboundRecordResponse{
			Code:      r.Code,
			GoodsCode: r.GoodsCode,
			GoodsName: r.GoodsName,
			Quantity:  r.Quantity,
			UnitPrice: r.UnitPrice,
			Date:      r.Date,
			Amount:    r.Amount,
		})
	}
	return items, nil
}
