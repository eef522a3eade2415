package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Almacen-api/internal/domain/inventory"
)

func TestTotalValue(t *testing.T) {
	cases := []struct {
		name      string
		quantity  int64
		unitPrice string
		want      string
	}{
		{"cantidad por precio entero", 100, "50", "5000"},
		{"precio con decimales", 150, "80.50", "12075"},
		{"cantidad cero", 0, "120", "0"},
		{"precio cero", 80, "0", "0"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			price := decimal.RequireFromString(tc.unitPrice)
			got := inventory.TotalValue(tc.quantity, price)
			assert.True(t, got.Equal(decimal.RequireFromString(tc.want)),
				"TotalValue(%d, %s) = %s, esperado %s", tc.quantity, tc.unitPrice, got, tc.want)
		})
	}
}

func TestCanIssue(t *testing.T) {
	cases := []struct {
		name      string
		available int64
		requested int64
		want      bool
	}{
		{"alcanza con sobra", 100, 30, true},
		{"alcanza exacto", 50, 50, true},
		{"no alcanza", 20, 50, false},
		{"sin stock", 0, 1, false},
		{"cantidad cero no es salida", 100, 0, false},
		{"cantidad negativa no es salida", 100, -5, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, inventory.CanIssue(tc.available, tc.requested))
		})
	}
}
