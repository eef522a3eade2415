package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de solo lectura para el estado de inventario y el
// reporte. Los resultados salen ordenados por su clave natural para que
// lecturas repetidas sin mutaciones intermedias sean idénticas.
type ReportRepo struct {
	pool *pgxpool.Pool
}

// NewReportRepository construye el adaptador de lecturas agregadas.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

// StockStatus lista cada registro de stock con su bodega, responsable y valor
// total (cantidad × precio unitario).
func (r *ReportRepo) StockStatus(ctx context.Context) ([]repository.StockStatusRow, error) {
	const query = `
	SELECT
	    s.code,
	    s.warehouse_name,
	    s.quantity,
	    s.unit_price,
	    COALESCE(w.manager, '')          AS manager,
	    s.quantity * s.unit_price        AS total_value
	FROM stock_records s
	LEFT JOIN warehouses w ON w.name = s.warehouse_name
	ORDER BY s.warehouse_name, s.code`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, mapStoreError("report.StockStatus", err)
	}
	defer rows.Close()

	var results []repository.StockStatusRow
	for rows.Next() {
		var row repository.StockStatusRow
		if err := rows.Scan(
			&row.Code, &row.WarehouseName, &row.Quantity,
			&row.UnitPrice, &row.Manager, &row.TotalValue,
		); err != nil {
			return nil, mapStoreError("report.StockStatus scan", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// WarehouseSummaries agrega por bodega: tipos de stock, cantidad total y valor
// total. Bodegas sin stock aparecen con ceros (COALESCE sobre el LEFT JOIN).
func (r *ReportRepo) WarehouseSummaries(ctx context.Context) ([]repository.WarehouseSummaryRow, error) {
	const query = `
	SELECT
	    w.name,
	    COALESCE(w.manager, '')                          AS manager,
	    w.operator_name,
	    COUNT(s.code)                                    AS stock_kinds,
	    COALESCE(SUM(s.quantity), 0)                     AS total_quantity,
	    COALESCE(SUM(s.quantity * s.unit_price), 0)      AS total_value
	FROM warehouses w
	LEFT JOIN stock_records s ON s.warehouse_name = w.name
	GROUP BY w.name, w.manager, w.operator_name
	ORDER BY w.name`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, mapStoreError("report.WarehouseSummaries", err)
	}
	defer rows.Close()

	var results []repository.WarehouseSummaryRow
	for rows.Next() {
		var row repository.WarehouseSummaryRow
		if err := rows.Scan(
			&row.WarehouseName, &row.Manager, &row.OperatorName,
			&row.StockKinds, &row.TotalQuantity, &row.TotalValue,
		); err != nil {
			return nil, mapStoreError("report.WarehouseSummaries scan", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// SupplyRelations lista las relaciones proveedor-bodega con los datos de
// contacto del proveedor.
func (r *ReportRepo) SupplyRelations(ctx context.Context) ([]repository.SupplyRelationRow, error) {
	const query = `
	SELECT
	    g.supplier_code,
	    COALESCE(p.name, '')           AS supplier_name,
	    g.warehouse_name,
	    COALESCE(p.contact_name, '')   AS contact_name,
	    COALESCE(p.contact_phone, '')  AS contact_phone
	FROM supply_relations g
	LEFT JOIN suppliers p ON p.code = g.supplier_code
	ORDER BY g.supplier_code, g.warehouse_name`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, mapStoreError("report.SupplyRelations", err)
	}
	defer rows.Close()

	var results []repository.SupplyRelationRow
	for rows.Next() {
		var row repository.SupplyRelationRow
		if err := rows.Scan(
			&row.SupplierCode, &row.SupplierName, &row.WarehouseName,
			&row.ContactName, &row.ContactPhone,
		); err != nil {
			return nil, mapStoreError("report.SupplyRelations scan", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// InboundHistory lista los asientos de entrada con el monto de cada línea,
// más recientes primero.
func (r *ReportRepo) InboundHistory(ctx context.Context) ([]repository.InboundRow, error) {
	const query = `
	SELECT
	    code, goods_code, COALESCE(goods_name, ''), quantity,
	    COALESCE(unit_price, 0), date, COALESCE(supplier_name, ''),
	    quantity * COALESCE(unit_price, 0) AS amount
	FROM inbound_transactions
	ORDER BY date DESC, code`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, mapStoreError("report.InboundHistory", err)
	}
	defer rows.Close()

	var results []repository.InboundRow
	for rows.Next() {
		var row repository.InboundRow
		if err := rows.Scan(
			&row.Code, &row.GoodsCode, &row.GoodsName, &row.Quantity,
			&row.UnitPrice, &row.Date, &row.SupplierName, &row.Amount,
		); err != nil {
			return nil, mapStoreError("report.InboundHistory scan", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// OutboundHistory lista los asientos de salida con el monto de cada línea,
// más recientes primero.
func (r *ReportRepo) OutboundHistory(ctx context.Context) ([]repository.OutboundRow, error) {
	const query = `
	SELECT
	    code, goods_code, COALESCE(goods_name, ''), quantity,
	    COALESCE(unit_price, 0), date,
	    quantity * COALESCE(unit_price, 0) AS amount
	FROM outbound_transactions
	ORDER BY date DESC, code`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, mapStoreError("report.OutboundHistory", err)
	}
	defer rows.Close()

	var results []repository.OutboundRow
	for rows.Next() {
		var row repository.OutboundRow
		if err := rows.Scan(
			&row.Code, &row.GoodsCode, &row.GoodsName, &row.Quantity,
			&row.UnitPrice, &row.Date, &row.Amount,
		); err != nil {
			return nil, mapStoreError("report.OutboundHistory scan", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
