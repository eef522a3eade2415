package postgres

import (
	"errors"
	"fmt"
	"net"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/Almacen-api/internal/domain"
)

// Códigos de error de PostgreSQL relevantes para la taxonomía del dominio.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

// mapWriteError traduce errores de escritura al dominio: clave duplicada y
// referencia colgante se reportan como ConstraintError; fallos de conexión
// como StorageUnavailable. Cualquier otro error se envuelve con la operación.
func mapWriteError(table, op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return &domain.ConstraintError{Table: table, Err: domain.ErrDuplicate}
		case pgForeignKeyViolation:
			return &domain.ConstraintError{Table: table, Err: domain.ErrNotFound}
		case pgCheckViolation:
			return fmt.Errorf("%s: %w", op, domain.ErrInvalidInput)
		}
		return fmt.Errorf("%s: %w", op, err)
	}
	return mapStoreError(op, err)
}

// mapStoreError clasifica fallos de conexión/IO como StorageUnavailable.
func mapStoreError(op string, err error) error {
	var connErr *pgconn.ConnectError
	var netErr net.Error
	if errors.As(err, &connErr) || errors.As(err, &netErr) {
		return fmt.Errorf("%s: %w: %v", op, domain.ErrStorageUnavailable, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
