package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.StockRecordRepository = (*StockRecordRepo)(nil)

// StockRecordRepo implementación de StockRecordRepository sobre PostgreSQL
// (usable con pool o tx).
type StockRecordRepo struct {
	q Querier
}

// NewStockRecordRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRecordRepository(q Querier) *StockRecordRepo {
	return &StockRecordRepo{q: q}
}

// Create persiste un nuevo registro de stock.
func (r *StockRecordRepo) Create(record *entity.StockRecord) error {
	query := `
		INSERT INTO stock_records (code, warehouse_name, quantity, unit_price)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query,
		record.Code, record.WarehouseName, record.Quantity, record.UnitPrice,
	)
	if err != nil {
		return mapWriteError("stock_records", "insert stock record", err)
	}
	return nil
}

// GetByCode obtiene un registro de stock por código. Devuelve nil, nil si no existe.
func (r *StockRecordRepo) GetByCode(code string) (*entity.StockRecord, error) {
	query := `
		SELECT code, warehouse_name, quantity, unit_price
		FROM stock_records WHERE code = $1`
	return r.scanOne(query, code)
}

// GetForUpdate obtiene el registro y bloquea la fila (SELECT FOR UPDATE) para
// serializar el check-then-act del motor de movimientos. nil, nil si no existe.
func (r *StockRecordRepo) GetForUpdate(code string) (*entity.StockRecord, error) {
	query := `
		SELECT code, warehouse_name, quantity, unit_price
		FROM stock_records WHERE code = $1
		FOR UPDATE`
	return r.scanOne(query, code)
}

// UpdateQuantity fija la cantidad de un registro de stock. Solo el motor de
// movimientos llama aquí, dentro de la misma tx que inserta el asiento.
func (r *StockRecordRepo) UpdateQuantity(code string, quantity int64) error {
	query := `UPDATE stock_records SET quantity = $2 WHERE code = $1`
	_, err := r.q.Exec(context.Background(), query, code, quantity)
	if err != nil {
		return mapWriteError("stock_records", "update stock quantity", err)
	}
	return nil
}

func (r *StockRecordRepo) scanOne(query, code string) (*entity.StockRecord, error) {
	var s entity.StockRecord
	err := r.q.QueryRow(context.Background(), query, code).Scan(
		&s.Code, &s.WarehouseName, &s.Quantity, &s.UnitPrice,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, mapStoreError("get stock record", err)
	}
	return &s, nil
}
