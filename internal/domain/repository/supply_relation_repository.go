package repository

import "github.com/jhoicas/Almacen-api/internal/domain/entity"

// SupplyRelationRepository define el puerto de persistencia para la relación
// proveedor-bodega.
type SupplyRelationRepository interface {
	Create(relation *entity.SupplyRelation) error
	List() ([]*entity.SupplyRelation, error)
}
