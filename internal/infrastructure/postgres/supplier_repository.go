package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo implementación del puerto SupplierRepository sobre PostgreSQL.
type SupplierRepo struct {
	pool *pgxpool.Pool
}

// NewSupplierRepository construye el adaptador de persistencia para proveedores.
func NewSupplierRepository(pool *pgxpool.Pool) *SupplierRepo {
	return &SupplierRepo{pool: pool}
}

// Create persiste un nuevo proveedor.
func (r *SupplierRepo) Create(supplier *entity.Supplier) error {
	query := `
		INSERT INTO suppliers (code, name, contact_name, contact_phone)
		VALUES ($1, $2, $3, $4)`
	_, err := r.pool.Exec(context.Background(), query,
		supplier.Code, supplier.Name, supplier.ContactName, supplier.ContactPhone,
	)
	if err != nil {
		return mapWriteError("suppliers", "insert supplier", err)
	}
	return nil
}

// GetByCode obtiene un proveedor por código.
func (r *SupplierRepo) GetByCode(code string) (*entity.Supplier, error) {
	query := `
		SELECT code, name, contact_name, contact_phone
		FROM suppliers WHERE code = $1`
	var s entity.Supplier
	err := r.pool.QueryRow(context.Background(), query, code).Scan(
		&s.Code, &s.Name, &s.ContactName, &s.ContactPhone,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, mapStoreError("get supplier", err)
	}
	return &s, nil
}

// List lista todos los proveedores ordenados por código.
func (r *SupplierRepo) List() ([]*entity.Supplier, error) {
	query := `
		SELECT code, name, contact_name, contact_phone
		FROM suppliers ORDER BY code`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, mapStoreError("list suppliers", err)
	}
	defer rows.Close()
	var list []*entity.Supplier
	for rows.Next() {
		var s entity.Supplier
		if err := rows.Scan(&s.Code, &s.Name, &s.ContactName, &s.ContactPhone); err != nil {
			return nil, mapStoreError("scan supplier", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
