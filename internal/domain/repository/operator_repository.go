package repository

import "github.com/jhoicas/Almacen-api/internal/domain/entity"

// OperatorRepository define el puerto de persistencia para Operator (DIP).
type OperatorRepository interface {
	Create(operator *entity.Operator) error
	GetByName(name string) (*entity.Operator, error)
	List() ([]*entity.Operator, error)
}
