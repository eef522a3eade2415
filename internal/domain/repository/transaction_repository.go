package repository

import "github.com/jhoicas/Almacen-api/internal/domain/entity"

// TransactionRepository define el puerto de persistencia para el libro de
// movimientos (entradas y salidas). Los asientos son inmutables: solo inserción.
type TransactionRepository interface {
	CreateInbound(tx *entity.InboundTransaction) error
	CreateOutbound(tx *entity.OutboundTransaction) error
}
