package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.OperatorRepository = (*OperatorRepo)(nil)

// OperatorRepo implementación del puerto OperatorRepository sobre PostgreSQL.
type OperatorRepo struct {
	pool *pgxpool.Pool
}

// NewOperatorRepository construye el adaptador de persistencia para operarios.
func NewOperatorRepository(pool *pgxpool.Pool) *OperatorRepo {
	return &OperatorRepo{pool: pool}
}

// Create persiste un nuevo operario.
func (r *OperatorRepo) Create(operator *entity.Operator) error {
	query := `INSERT INTO operators (name, contact) VALUES ($1, $2)`
	_, err := r.pool.Exec(context.Background(), query, operator.Name, operator.Contact)
	if err != nil {
		return mapWriteError("operators", "insert operator", err)
	}
	return nil
}

// GetByName obtiene un operario por nombre.
func (r *OperatorRepo) GetByName(name string) (*entity.Operator, error) {
	query := `SELECT name, contact FROM operators WHERE name = $1`
	var o entity.Operator
	err := r.pool.QueryRow(context.Background(), query, name).Scan(&o.Name, &o.Contact)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, mapStoreError("get operator", err)
	}
	return &o, nil
}

// List lista todos los operarios ordenados por nombre.
func (r *OperatorRepo) List() ([]*entity.Operator, error) {
	query := `SELECT name, contact FROM operators ORDER BY name`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, mapStoreError("list operators", err)
	}
	defer rows.Close()
	var list []*entity.Operator
	for rows.Next() {
		var o entity.Operator
		if err := rows.Scan(&o.Name, &o.Contact); err != nil {
			return nil, mapStoreError("scan operator", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}
