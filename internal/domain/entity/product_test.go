package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// La regla de derivación: 0 -> out_of_stock; 1..10 -> low_stock; >10 -> in_stock.
// El límite exacto en 10 pertenece a low_stock, nunca a in_stock.
func TestDeriveStatus_Regla(t *testing.T) {
	cases := []struct {
		name     string
		quantity int
		want     ProductStatus
	}{
		{"cantidad cero es agotado", 0, StatusOutOfStock},
		{"cantidad uno es stock bajo", 1, StatusLowStock},
		{"cantidad cinco es stock bajo", 5, StatusLowStock},
		{"límite exacto diez es stock bajo", 10, StatusLowStock},
		{"once ya es disponible", 11, StatusInStock},
		{"cantidad grande es disponible", 500, StatusInStock},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DeriveStatus(tc.quantity))
		})
	}
}

// StatusPending existe en la enumeración pero la regla jamás lo produce.
func TestDeriveStatus_NuncaPending(t *testing.T) {
	for q := 0; q <= 50; q++ {
		assert.NotEqual(t, StatusPending, DeriveStatus(q), "cantidad %d", q)
	}
}
