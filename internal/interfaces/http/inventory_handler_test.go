package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/inventory"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
	apphttp "github.com/jhoicas/Almacen-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes y helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	stocks   map[string]*entity.StockRecord
	inbound  []*entity.InboundTransaction
	outbound []*entity.OutboundTransaction
}

type memStockRepo struct{ store *memStore }

func (r *memStockRepo) Create(record *entity.StockRecord) error {
	r.store.stocks[record.Code] = record
	return nil
}
func (r *memStockRepo) GetByCode(code string) (*entity.StockRecord, error) {
	return r.store.stocks[code], nil
}
func (r *memStockRepo) GetForUpdate(code string) (*entity.StockRecord, error) {
	return r.store.stocks[code], nil
}
func (r *memStockRepo) UpdateQuantity(code string, quantity int64) error {
	st, ok := r.store.stocks[code]
	if !ok {
		return domain.ErrNotFound
	}
	st.Quantity = quantity
	return nil
}

type memTxRepo struct{ store *memStore }

func (r *memTxRepo) CreateInbound(tx *entity.InboundTransaction) error {
	r.store.inbound = append(r.store.inbound, tx)
	return nil
}
func (r *memTxRepo) CreateOutbound(tx *entity.OutboundTransaction) error {
	r.store.outbound = append(r.store.outbound, tx)
	return nil
}

// memTxRunner no emula rollback: el caso de uso valida antes de escribir y
// estos tests solo observan respuestas HTTP.
type memTxRunner struct{ store *memStore }

func (tr *memTxRunner) Run(_ context.Context, fn func(
	txRepo repository.TransactionRepository,
	stockRepo repository.StockRecordRepository,
) error) error {
	return fn(&memTxRepo{store: tr.store}, &memStockRepo{store: tr.store})
}

// buildTestApp construye una app Fiber con las rutas de movimientos sobre un
// almacén en memoria precargado con INV001 (100 unidades).
func buildTestApp(t *testing.T) (*fiber.App, *memStore) {
	t.Helper()
	store := &memStore{stocks: map[string]*entity.StockRecord{
		"INV001": {
			Code:          "INV001",
			WarehouseName: "Bodega Central",
			Quantity:      100,
			UnitPrice:     decimal.RequireFromString("50.00"),
		},
	}}
	ledger := inventory.NewLedgerUseCase(&memTxRunner{store: store})
	handler := apphttp.NewInventoryHandler(ledger, nil)

	app := fiber.New()
	app.Post("/api/inventory/inbound", handler.ProcessInbound)
	app.Post("/api/inventory/outbound", handler.ProcessOutbound)
	return app, store
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out T
	require.NoError(t, json.Unmarshal(raw, &out), "cuerpo: %s", raw)
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestProcessInbound_Created(t *testing.T) {
	app, store := buildTestApp(t)

	resp := postJSON(t, app, "/api/inventory/inbound", fiber.Map{
		"code":          "IN001",
		"stock_code":    "INV001",
		"quantity":      30,
		"goods_name":    "Tornillos",
		"supplier_name": "Suministros del Norte",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	out := decodeBody[dto.MovementResponse](t, resp)
	assert.Equal(t, "IN001", out.Code)
	assert.Equal(t, int64(130), out.NewQuantity)
	assert.Equal(t, int64(130), store.stocks["INV001"].Quantity)
}

func TestProcessInbound_StockInexistente(t *testing.T) {
	app, _ := buildTestApp(t)

	resp := postJSON(t, app, "/api/inventory/inbound", fiber.Map{
		"code":       "IN001",
		"stock_code": "NO-EXISTE",
		"quantity":   30,
	})
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	out := decodeBody[dto.ErrorResponse](t, resp)
	assert.Equal(t, "NOT_FOUND", out.Code)
}

func TestProcessInbound_CantidadInvalida(t *testing.T) {
	app, _ := buildTestApp(t)

	resp := postJSON(t, app, "/api/inventory/inbound", fiber.Map{
		"code":       "IN001",
		"stock_code": "INV001",
		"quantity":   0,
	})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	out := decodeBody[dto.ErrorResponse](t, resp)
	assert.Equal(t, "VALIDATION", out.Code)
}

func TestProcessOutbound_Created(t *testing.T) {
	app, store := buildTestApp(t)

	resp := postJSON(t, app, "/api/inventory/outbound", fiber.Map{
		"code":       "OUT001",
		"stock_code": "INV001",
		"quantity":   40,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	out := decodeBody[dto.MovementResponse](t, resp)
	assert.Equal(t, int64(60), out.NewQuantity)
	assert.Equal(t, int64(60), store.stocks["INV001"].Quantity)
}

// TestProcessOutbound_StockInsuficiente verifica que el rechazo por stock
// insuficiente responde 409 con las cantidades disponible y solicitada.
func TestProcessOutbound_StockInsuficiente(t *testing.T) {
	app, store := buildTestApp(t)

	resp := postJSON(t, app, "/api/inventory/outbound", fiber.Map{
		"code":       "OUT001",
		"stock_code": "INV001",
		"quantity":   500,
	})
	require.Equal(t, fiber.StatusConflict, resp.StatusCode)

	out := decodeBody[dto.ErrorResponse](t, resp)
	assert.Equal(t, "INSUFFICIENT_STOCK", out.Code)
	require.NotNil(t, out.Available)
	require.NotNil(t, out.Requested)
	assert.Equal(t, int64(100), *out.Available)
	assert.Equal(t, int64(500), *out.Requested)

	// Nada cambió
	assert.Equal(t, int64(100), store.stocks["INV001"].Quantity)
	assert.Empty(t, store.outbound)
}

func TestProcessOutbound_CuerpoInvalido(t *testing.T) {
	app, _ := buildTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/api/inventory/outbound", bytes.NewReader([]byte("{no es json")))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
