package postgres

import (
	"context"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// TransactionRepo implementación del libro de movimientos sobre PostgreSQL
// (usable con pool o tx). Los asientos son inmutables.
type TransactionRepo struct {
	q Querier
}

// NewTransactionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

// CreateInbound persiste un asiento de entrada.
func (r *TransactionRepo) CreateInbound(tx *entity.InboundTransaction) error {
	query := `
		INSERT INTO inbound_transactions (code, stock_code, goods_code, quantity, goods_name, date, unit_price, supplier_name)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		tx.Code, tx.StockCode, tx.GoodsCode, tx.Quantity,
		tx.GoodsName, tx.Date, tx.UnitPrice, tx.SupplierName,
	)
	if err != nil {
		return mapWriteError("inbound_transactions", "insert inbound", err)
	}
	return nil
}

// CreateOutbound persiste un asiento de salida.
func (r *TransactionRepo) CreateOutbound(tx *entity.OutboundTransaction) error {
	query := `
		INSERT INTO outbound_transactions (code, stock_code, goods_code, quantity, goods_name, date, unit_price)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		tx.Code, tx.StockCode, tx.GoodsCode, tx.Quantity,
		tx.GoodsName, tx.Date, tx.UnitPrice,
	)
	if err != nil {
		return mapWriteError("outbound_transactions", "insert outbound", err)
	}
	return nil
}
