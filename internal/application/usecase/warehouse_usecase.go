package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// WarehouseUseCase casos de uso para bodegas.
type WarehouseUseCase struct {
	repo         repository.WarehouseRepository
	operatorRepo repository.OperatorRepository
	reportRepo   repository.ReportRepository
}

// NewWarehouseUseCase construye el caso de uso.
func NewWarehouseUseCase(
	repo repository.WarehouseRepository,
	operatorRepo repository.OperatorRepository,
	reportRepo repository.ReportRepository,
) *WarehouseUseCase {
	return &WarehouseUseCase{repo: repo, operatorRepo: operatorRepo, reportRepo: reportRepo}
}

// Create crea una nueva bodega. El operario responsable debe existir.
func (uc *WarehouseUseCase) Create(in dto.CreateWarehouseRequest) (*dto.WarehouseResponse, error) {
	operator, err := uc.operatorRepo.GetByName(in.OperatorName)
	if err != nil {
		return nil, err
	}
	if operator == nil {
		return nil, domain.ErrNotFound
	}
	warehouse := &entity.Warehouse{
		Name:         in.Name,
		OperatorName: in.OperatorName,
		Manager:      in.Manager,
		CreatedAt:    time.Now(),
	}
	if err := uc.repo.Create(warehouse); err != nil {
		return nil, err
	}
	return toWarehouseResponse(warehouse), nil
}

// List lista todas las bodegas.
func (uc *WarehouseUseCase) List() (*dto.WarehouseListResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.WarehouseResponse, 0, len(list))
	for _, w := range list {
		items = append(items, *toWarehouseResponse(w))
	}
	return &dto.WarehouseListResponse{Items: items, Total: len(items)}, nil
}

// Summaries devuelve el resumen agregado por bodega (tipos de stock, cantidad
// total y valor total), ordenado por nombre de bodega.
func (uc *WarehouseUseCase) Summaries(ctx context.Context) ([]dto.WarehouseSummaryResponse, error) {
	rows, err := uc.reportRepo.WarehouseSummaries(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.WarehouseSummaryResponse, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.WarehouseSummaryResponse{
			WarehouseName: r.WarehouseName,
			Manager:       r.Manager,
			OperatorName:  r.OperatorName,
			StockKinds:    r.StockKinds,
			TotalQuantity: r.TotalQuantity,
			TotalValue:    r.TotalValue,
		})
	}
	return items, nil
}

func toWarehouseResponse(w *entity.Warehouse) *dto.WarehouseResponse {
	return &dto.WarehouseResponse{
		Name:         w.Name,
		OperatorName: w.OperatorName,
		Manager:      w.Manager,
		CreatedAt:    w.CreatedAt,
	}
}
