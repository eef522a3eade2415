package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.WarehouseRepository = (*WarehouseRepo)(nil)

// WarehouseRepo implementación del puerto WarehouseRepository sobre PostgreSQL.
type WarehouseRepo struct {
	pool *pgxpool.Pool
}

// NewWarehouseRepository construye el adaptador de persistencia para bodegas.
func NewWarehouseRepository(pool *pgxpool.Pool) *WarehouseRepo {
	return &WarehouseRepo{pool: pool}
}

// Create persiste una nueva bodega.
func (r *WarehouseRepo) Create(warehouse *entity.Warehouse) error {
	query := `
		INSERT INTO warehouses (name, operator_name, manager, created_at)
		VALUES ($1, $2, $3, $4)`
	_, err := r.pool.Exec(context.Background(), query,
		warehouse.Name, warehouse.OperatorName, warehouse.Manager, warehouse.CreatedAt,
	)
	if err != nil {
		return mapWriteError("warehouses", "insert warehouse", err)
	}
	return nil
}

// GetByName obtiene una bodega por nombre.
func (r *WarehouseRepo) GetByName(name string) (*entity.Warehouse, error) {
	query := `
		SELECT name, operator_name, manager, created_at
		FROM warehouses WHERE name = $1`
	var w entity.Warehouse
	err := r.pool.QueryRow(context.Background(), query, name).Scan(
		&w.Name, &w.OperatorName, &w.Manager, &w.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, mapStoreError("get warehouse", err)
	}
	return &w, nil
}

// List lista todas las bodegas ordenadas por nombre.
func (r *WarehouseRepo) List() ([]*entity.Warehouse, error) {
	query := `
		SELECT name, operator_name, manager, created_at
		FROM warehouses ORDER BY name`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, mapStoreError("list warehouses", err)
	}
	defer rows.Close()
	var list []*entity.Warehouse
	for rows.Next() {
		var w entity.Warehouse
		if err := rows.Scan(&w.Name, &w.OperatorName, &w.Manager, &w.CreatedAt); err != nil {
			return nil, mapStoreError("scan warehouse", err)
		}
		list = append(list, &w)
	}
	return list, rows.Err()
}
