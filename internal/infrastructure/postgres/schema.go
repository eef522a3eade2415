package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Esquema del almacén. Claves naturales, FKs y defaults (cantidad 0, precio
// 0.00) son el contrato en disco; el CHECK de cantidad respalda el invariante
// del motor de movimientos a nivel de base.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS operators (
		name VARCHAR(50) PRIMARY KEY,
		contact VARCHAR(50)
	)`,
	`CREATE TABLE IF NOT EXISTS suppliers (
		code VARCHAR(20) PRIMARY KEY,
		name VARCHAR(100),
		contact_name VARCHAR(50),
		contact_phone VARCHAR(50)
	)`,
	`CREATE TABLE IF NOT EXISTS warehouses (
		name VARCHAR(50) PRIMARY KEY,
		operator_name VARCHAR(50) NOT NULL REFERENCES operators (name),
		manager VARCHAR(50),
		created_at DATE NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS stock_records (
		code VARCHAR(20) PRIMARY KEY,
		warehouse_name VARCHAR(50) NOT NULL REFERENCES warehouses (name),
		quantity BIGINT NOT NULL DEFAULT 0 CHECK (quantity >= 0),
		unit_price NUMERIC(10,2) NOT NULL DEFAULT 0.00
	)`,
	`CREATE TABLE IF NOT EXISTS inbound_transactions (
		code VARCHAR(20) PRIMARY KEY,
		stock_code VARCHAR(20) NOT NULL REFERENCES stock_records (code),
		goods_code VARCHAR(20),
		quantity BIGINT NOT NULL,
		goods_name VARCHAR(100),
		date DATE NOT NULL,
		unit_price NUMERIC(10,2),
		supplier_name VARCHAR(100)
	)`,
	`CREATE TABLE IF NOT EXISTS outbound_transactions (
		code VARCHAR(20) PRIMARY KEY,
		stock_code VARCHAR(20) NOT NULL REFERENCES stock_records (code),
		goods_code VARCHAR(20),
		quantity BIGINT NOT NULL,
		goods_name VARCHAR(100),
		date DATE NOT NULL,
		unit_price NUMERIC(10,2)
	)`,
	`CREATE TABLE IF NOT EXISTS supply_relations (
		supplier_code VARCHAR(20) REFERENCES suppliers (code),
		warehouse_name VARCHAR(50) REFERENCES warehouses (name),
		PRIMARY KEY (supplier_code, warehouse_name)
	)`,
}

// CreateSchema crea las tablas del almacén si no existen.
func CreateSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schemaStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("crear esquema: %w", err)
		}
	}
	return nil
}

// SeedSampleData inserta los datos de demostración. Idempotente: las filas ya
// existentes se dejan como están.
func SeedSampleData(ctx context.Context, pool *pgxpool.Pool) error {
	statements := []struct {
		sql  string
		args [][]any
	}{
		{
			sql: `INSERT INTO operators (name, contact) VALUES ($1, $2) ON CONFLICT (name) DO NOTHING`,
			args: [][]any{
				{"Carlos Pérez", "300-111-0001"},
				{"Lucía Gómez", "300-111-0002"},
				{"Andrés Rojas", "300-111-0003"},
			},
		},
		{
			sql: `INSERT INTO suppliers (code, name, contact_name, contact_phone)
				VALUES ($1, $2, $3, $4) ON CONFLICT (code) DO NOTHING`,
			args: [][]any{
				{"SP001", "Electrónica Bogotá S.A.S.", "Sr. Martínez", "601-1234567"},
				{"SP002", "Manufacturas del Norte", "Sra. Ortiz", "604-7654321"},
				{"SP003", "Comercial del Pacífico", "Sr. Quintero", "602-1122334"},
			},
		},
		{
			sql: `INSERT INTO warehouses (name, operator_name, manager, created_at)
				VALUES ($1, $2, $3, $4) ON CONFLICT (name) DO NOTHING`,
			args: [][]any{
				{"Bodega Central", "Carlos Pérez", "Jefe Ramírez", "2023-01-01"},
				{"Bodega Norte", "Lucía Gómez", "Jefe Díaz", "2023-02-01"},
				{"Bodega Sur", "Andrés Rojas", "Jefe Mora", "2023-03-01"},
			},
		},
		{
			sql: `INSERT INTO stock_records (code, warehouse_name, quantity, unit_price)
				VALUES ($1, $2, $3, $4) ON CONFLICT (code) DO NOTHING`,
			args: [][]any{
				{"INV001", "Bodega Central", int64(100), "50.00"},
				{"INV002", "Bodega Central", int64(200), "30.00"},
				{"INV003", "Bodega Norte", int64(150), "80.00"},
				{"INV004", "Bodega Sur", int64(80), "120.00"},
			},
		},
		{
			sql: `INSERT INTO supply_relations (supplier_code, warehouse_name)
				VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			args: [][]any{
				{"SP001", "Bodega Central"},
				{"SP002", "Bodega Central"},
				{"SP002", "Bodega Norte"},
				{"SP003", "Bodega Sur"},
			},
		},
	}

	for _, stmt := range statements {
		for _, args := range stmt.args {
			if _, err := pool.Exec(ctx, stmt.sql, args...); err != nil {
				return fmt.Errorf("insertar datos de ejemplo: %w", err)
			}
		}
	}
	return nil
}
