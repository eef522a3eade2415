package inventory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Almacen-api/internal/application/inventory"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
//
// fakeStore emula la base: registros de stock y el libro de movimientos.
// fakeTxRunner copia el estado antes de ejecutar fn y lo restaura si fn
// devuelve error, igual que el Rollback de una transacción real.
// ──────────────────────────────────────────────────────────────────────────────

type fakeStore struct {
	stocks   map[string]*entity.StockRecord
	inbound  []*entity.InboundTransaction
	outbound []*entity.OutboundTransaction
}

func newFakeStore() *fakeStore {
	return &fakeStore{stocks: make(map[string]*entity.StockRecord)}
}

func (s *fakeStore) addStock(code string, quantity int64, unitPrice string) {
	s.stocks[code] = &entity.StockRecord{
		Code:          code,
		WarehouseName: "Bodega Central",
		Quantity:      quantity,
		UnitPrice:     decimal.RequireFromString(unitPrice),
	}
}

func (s *fakeStore) snapshot() *fakeStore {
	cp := newFakeStore()
	for code, st := range s.stocks {
		c := *st
		cp.stocks[code] = &c
	}
	cp.inbound = append([]*entity.InboundTransaction(nil), s.inbound...)
	cp.outbound = append([]*entity.OutboundTransaction(nil), s.outbound...)
	return cp
}

type fakeStockRepo struct{ store *fakeStore }

func (r *fakeStockRepo) Create(record *entity.StockRecord) error {
	r.store.stocks[record.Code] = record
	return nil
}

func (r *fakeStockRepo) GetByCode(code string) (*entity.StockRecord, error) {
	return r.store.stocks[code], nil
}

func (r *fakeStockRepo) GetForUpdate(code string) (*entity.StockRecord, error) {
	return r.store.stocks[code], nil
}

func (r *fakeStockRepo) UpdateQuantity(code string, quantity int64) error {
	st, ok := r.store.stocks[code]
	if !ok {
		return domain.ErrNotFound
	}
	st.Quantity = quantity
	return nil
}

type fakeTxRepo struct{ store *fakeStore }

func (r *fakeTxRepo) CreateInbound(tx *entity.InboundTransaction) error {
	r.store.inbound = append(r.store.inbound, tx)
	return nil
}

func (r *fakeTxRepo) CreateOutbound(tx *entity.OutboundTransaction) error {
	r.store.outbound = append(r.store.outbound, tx)
	return nil
}

type fakeTxRunner struct{ store *fakeStore }

func (tr *fakeTxRunner) Run(ctx context.Context, fn func(
	txRepo repository.TransactionRepository,
	stockRepo repository.StockRecordRepository,
) error) error {
	backup := tr.store.snapshot()
	err := fn(&fakeTxRepo{store: tr.store}, &fakeStockRepo{store: tr.store})
	if err != nil {
		*tr.store = *backup
		return err
	}
	return nil
}

func newLedger(store *fakeStore) *inventory.LedgerUseCase {
	return inventory.NewLedgerUseCase(&fakeTxRunner{store: store})
}

// ──────────────────────────────────────────────────────────────────────────────
// Entradas
// ──────────────────────────────────────────────────────────────────────────────

func TestProcessInbound_IncrementaStock(t *testing.T) {
	store := newFakeStore()
	store.addStock("INV001", 100, "50.00")
	uc := newLedger(store)

	result, err := uc.ProcessInbound(context.Background(), inventory.InboundInput{
		Code:         "IN001",
		StockCode:    "INV001",
		GoodsCode:    "G001",
		Quantity:     30,
		GoodsName:    "Tornillos",
		UnitPrice:    decimal.RequireFromString("48.00"),
		SupplierName: "Suministros del Norte",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(130), result.NewQuantity)
	assert.Equal(t, "IN001", result.Code)

	// El asiento y el delta de stock se confirman juntos
	require.Len(t, store.inbound, 1)
	assert.Equal(t, "Suministros del Norte", store.inbound[0].SupplierName)
	assert.Equal(t, int64(130), store.stocks["INV001"].Quantity)
}

func TestProcessInbound_StockInexistente(t *testing.T) {
	store := newFakeStore()
	uc := newLedger(store)

	_, err := uc.ProcessInbound(context.Background(), inventory.InboundInput{
		Code:      "IN001",
		StockCode: "NO-EXISTE",
		Quantity:  10,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound, "referencia colgante debe rechazarse como NOT_FOUND")

	var constraint *domain.ConstraintError
	require.ErrorAs(t, err, &constraint)
	assert.Equal(t, "inbound_transactions", constraint.Table)

	assert.Empty(t, store.inbound, "el rechazo no debe dejar asiento")
}

func TestProcessInbound_EntradaInvalida(t *testing.T) {
	uc := newLedger(newFakeStore())
	ctx := context.Background()

	cases := []inventory.InboundInput{
		{Code: "", StockCode: "INV001", Quantity: 10},
		{Code: "IN001", StockCode: "", Quantity: 10},
		{Code: "IN001", StockCode: "INV001", Quantity: 0},
		{Code: "IN001", StockCode: "INV001", Quantity: -5},
		{Code: "IN001", StockCode: "INV001", Quantity: 10, UnitPrice: decimal.RequireFromString("-1")},
	}
	for _, in := range cases {
		_, err := uc.ProcessInbound(ctx, in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Salidas
// ──────────────────────────────────────────────────────────────────────────────

func TestProcessOutbound_DecrementaStock(t *testing.T) {
	store := newFakeStore()
	store.addStock("INV002", 200, "30.00")
	uc := newLedger(store)

	result, err := uc.ProcessOutbound(context.Background(), inventory.OutboundInput{
		Code:      "OUT001",
		StockCode: "INV002",
		Quantity:  50,
		GoodsName: "Cajas",
		UnitPrice: decimal.RequireFromString("30.00"),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(150), result.NewQuantity)

	require.Len(t, store.outbound, 1)
	assert.Equal(t, int64(150), store.stocks["INV002"].Quantity)
}

func TestProcessOutbound_SalidaExacta(t *testing.T) {
	store := newFakeStore()
	store.addStock("INV002", 50, "30.00")
	uc := newLedger(store)

	result, err := uc.ProcessOutbound(context.Background(), inventory.OutboundInput{
		Code:      "OUT001",
		StockCode: "INV002",
		Quantity:  50,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), result.NewQuantity, "vaciar el stock exacto es válido")
}

func TestProcessOutbound_StockInsuficiente(t *testing.T) {
	store := newFakeStore()
	store.addStock("INV003", 20, "80.00")
	uc := newLedger(store)

	_, err := uc.ProcessOutbound(context.Background(), inventory.OutboundInput{
		Code:      "OUT001",
		StockCode: "INV003",
		Quantity:  50,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	// El rechazo lleva las cantidades para el mensaje al cliente
	var insufficient *domain.InsufficientStockError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, "INV003", insufficient.StockCode)
	assert.Equal(t, int64(20), insufficient.Available)
	assert.Equal(t, int64(50), insufficient.Requested)

	// Nada cambió: ni asiento ni cantidad
	assert.Empty(t, store.outbound)
	assert.Equal(t, int64(20), store.stocks["INV003"].Quantity)
}

func TestProcessOutbound_StockInexistenteCuentaComoCero(t *testing.T) {
	store := newFakeStore()
	uc := newLedger(store)

	_, err := uc.ProcessOutbound(context.Background(), inventory.OutboundInput{
		Code:      "OUT001",
		StockCode: "NO-EXISTE",
		Quantity:  1,
	})
	require.Error(t, err)

	var insufficient *domain.InsufficientStockError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, int64(0), insufficient.Available)
	assert.Equal(t, int64(1), insufficient.Requested)
}

func TestProcessOutbound_EntradaInvalida(t *testing.T) {
	uc := newLedger(newFakeStore())

	_, err := uc.ProcessOutbound(context.Background(), inventory.OutboundInput{
		Code:      "OUT001",
		StockCode: "INV001",
		Quantity:  0,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Consistencia libro-stock
// ──────────────────────────────────────────────────────────────────────────────

// TestLedger_LibroYStockCoinciden reproduce una secuencia de movimientos y
// verifica que la cantidad final es la inicial más las entradas confirmadas
// menos las salidas confirmadas; los rechazos no cuentan.
func TestLedger_LibroYStockCoinciden(t *testing.T) {
	store := newFakeStore()
	store.addStock("INV001", 100, "50.00")
	uc := newLedger(store)
	ctx := context.Background()

	_, err := uc.ProcessInbound(ctx, inventory.InboundInput{Code: "IN001", StockCode: "INV001", Quantity: 40})
	require.NoError(t, err)

	_, err = uc.ProcessOutbound(ctx, inventory.OutboundInput{Code: "OUT001", StockCode: "INV001", Quantity: 60})
	require.NoError(t, err)

	// Rechazada: pide más de lo disponible (80)
	_, err = uc.ProcessOutbound(ctx, inventory.OutboundInput{Code: "OUT002", StockCode: "INV001", Quantity: 500})
	require.True(t, errors.Is(err, domain.ErrInsufficientStock))

	_, err = uc.ProcessOutbound(ctx, inventory.OutboundInput{Code: "OUT003", StockCode: "INV001", Quantity: 30})
	require.NoError(t, err)

	var in, out int64
	for _, m := range store.inbound {
		in += m.Quantity
	}
	for _, m := range store.outbound {
		out += m.Quantity
	}
	assert.Equal(t, int64(100)+in-out, store.stocks["INV001"].Quantity)
	assert.Equal(t, int64(50), store.stocks["INV001"].Quantity)
	assert.Len(t, store.outbound, 2, "la salida rechazada no deja asiento")
}
