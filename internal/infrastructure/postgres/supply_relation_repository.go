package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.SupplyRelationRepository = (*SupplyRelationRepo)(nil)

// SupplyRelationRepo implementación del puerto SupplyRelationRepository sobre PostgreSQL.
type SupplyRelationRepo struct {
	pool *pgxpool.Pool
}

// NewSupplyRelationRepository construye el adaptador para relaciones de suministro.
func NewSupplyRelationRepository(pool *pgxpool.Pool) *SupplyRelationRepo {
	return &SupplyRelationRepo{pool: pool}
}

// Create persiste una relación proveedor-bodega.
func (r *SupplyRelationRepo) Create(relation *entity.SupplyRelation) error {
	query := `
		INSERT INTO supply_relations (supplier_code, warehouse_name)
		VALUES ($1, $2)`
	_, err := r.pool.Exec(context.Background(), query,
		relation.SupplierCode, relation.WarehouseName,
	)
	if err != nil {
		return mapWriteError("supply_relations", "insert supply relation", err)
	}
	return nil
}

// List lista las relaciones ordenadas por proveedor y bodega.
func (r *SupplyRelationRepo) List() ([]*entity.SupplyRelation, error) {
	query := `
		SELECT supplier_code, warehouse_name
		FROM supply_relations ORDER BY supplier_code, warehouse_name`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, mapStoreError("list supply relations", err)
	}
	defer rows.Close()
	var list []*entity.SupplyRelation
	for rows.Next() {
		var rel entity.SupplyRelation
		if err := rows.Scan(&rel.SupplierCode, &rel.WarehouseName); err != nil {
			return nil, mapStoreError("scan supply relation", err)
		}
		list = append(list, &rel)
	}
	return list, rows.Err()
}
