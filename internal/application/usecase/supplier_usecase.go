package usecase

import (
	"context"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// SupplierUseCase casos de uso para proveedores y la relación proveedor-bodega.
type SupplierUseCase struct {
	repo          repository.SupplierRepository
	relationRepo  repository.SupplyRelationRepository
	warehouseRepo repository.WarehouseRepository
	reportRepo    repository.ReportRepository
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(
	repo repository.SupplierRepository,
	relationRepo repository.SupplyRelationRepository,
	warehouseRepo repository.WarehouseRepository,
	reportRepo repository.ReportRepository,
) *SupplierUseCase {
	return &SupplierUseCase{
		repo:          repo,
		relationRepo:  relationRepo,
		warehouseRepo: warehouseRepo,
		reportRepo:    reportRepo,
	}
}

// Create crea un nuevo proveedor.
func (uc *SupplierUseCase) Create(in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	supplier := &entity.Supplier{
		Code:         in.Code,
		Name:         in.Name,
		ContactName:  in.ContactName,
		ContactPhone: in.ContactPhone,
	}
	if err := uc.repo.Create(supplier); err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// List lista todos los proveedores.
func (uc *SupplierUseCase) List() (*dto.SupplierListResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.SupplierResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSupplierResponse(s))
	}
	return &dto.SupplierListResponse{Items: items, Total: len(items)}, nil
}

// CreateRelation vincula un proveedor con una bodega. Ambos deben existir.
func (uc *SupplierUseCase) CreateRelation(in dto.CreateSupplyRelationRequest) error {
	supplier, err := uc.repo.GetByCode(in.SupplierCode)
	if err != nil {
		return err
	}
	if supplier == nil {
		return domain.ErrNotFound
	}
	warehouse, err := uc.warehouseRepo.GetByName(in.WarehouseName)
	if err != nil {
		return err
	}
	if warehouse == nil {
		return domain.ErrNotFound
	}
	return uc.relationRepo.Create(&entity.SupplyRelation{
		SupplierCode:  in.SupplierCode,
		WarehouseName: in.WarehouseName,
	})
}

// ListRelations lista las relaciones de suministro con los datos del proveedor,
// ordenadas por código de proveedor y bodega.
func (uc *SupplierUseCase) ListRelations(ctx context.Context) (*dto.SupplyRelationListResponse, error) {
	rows, err := uc.reportRepo.SupplyRelations(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SupplyRelationResponse, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.SupplyRelationResponse{
			SupplierCode:  r.SupplierCode,
			SupplierName:  r.SupplierName,
			WarehouseName: r.WarehouseName,
			ContactName:   r.ContactName,
			ContactPhone:  r.ContactPhone,
		})
	}
	return &dto.SupplyRelationListResponse{Items: items, Total: len(items)}, nil
}

func toSupplierResponse(s *entity.Supplier) *dto.SupplierResponse {
	return &dto.SupplierResponse{
		Code:         s.Code,
		Name:         s.Name,
		ContactName:  s.ContactName,
		ContactPhone: s.ContactPhone,
	}
}
