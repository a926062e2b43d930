package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"compras-backend/src/models"
	"compras-backend/src/repositories"
)

func totals(ordered, received string) repositories.ReceiptTotals {
	return repositories.ReceiptTotals{
		TotalOrdered:  decimal.RequireFromString(ordered),
		TotalReceived: decimal.RequireFromString(received),
	}
}

func TestDeriveReceiptStatus(t *testing.T) {
	cases := []struct {
		name    string
		current models.OrderStatus
		totals  repositories.ReceiptTotals
		want    models.OrderStatus
	}{
		{"nothing received keeps current", models.StatusPendiente, totals("10", "0"), models.StatusPendiente},
		{"partial receipt", models.StatusPendiente, totals("10", "4"), models.StatusParcial},
		{"partial receipt from aprobada", models.StatusAprobada, totals("10", "3"), models.StatusParcial},
		{"fractional partial", models.StatusEnProceso, totals("10", "9.99"), models.StatusParcial},
		{"exact receipt completes", models.StatusParcial, totals("10", "10"), models.StatusCompletada},
		{"over-receipt completes", models.StatusPendiente, totals("10", "12"), models.StatusCompletada},
		{"completada is terminal on corrections", models.StatusCompletada, totals("10", "5"), models.StatusCompletada},
		{"completada stays on zero", models.StatusCompletada, totals("10", "0"), models.StatusCompletada},
		{"parcial stays on zero", models.StatusParcial, totals("10", "0"), models.StatusParcial},
		{"cancelada keeps current on zero", models.StatusCancelada, totals("10", "0"), models.StatusCancelada},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := deriveReceiptStatus(tc.current, tc.totals)
			assert.Equal(t, tc.want, got)
		})
	}
}
