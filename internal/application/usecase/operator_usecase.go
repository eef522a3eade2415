package usecase

import (
	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// OperatorUseCase casos de uso para operarios.
type OperatorUseCase struct {
	repo repository.OperatorRepository
}

// NewOperatorUseCase construye el caso de uso.
func NewOperatorUseCase(repo repository.OperatorRepository) *OperatorUseCase {
	return &OperatorUseCase{repo: repo}
}

// Create crea un nuevo operario. Nombre duplicado -> ConstraintError del repositorio.
func (uc *OperatorUseCase) Create(in dto.CreateOperatorRequest) (*dto.OperatorResponse, error) {
	operator := &entity.Operator{
		Name:    in.Name,
		Contact: in.Contact,
	}
	if err := uc.repo.Create(operator); err != nil {
		return nil, err
	}
	return &dto.OperatorResponse{Name: operator.Name, Contact: operator.Contact}, nil
}

// List lista todos los operarios.
func (uc *OperatorUseCase) List() (*dto.OperatorListResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.OperatorResponse, 0, len(list))
	for _, o := range list {
		items = append(items, dto.OperatorResponse{Name: o.Name, Contact: o.Contact})
	}
	return &dto.OperatorListResponse{Items: items, Total: len(items)}, nil
}
