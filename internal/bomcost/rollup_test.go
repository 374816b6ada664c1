package bomcost

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"kitchen-golang/internal/storage"
)

func TestRollup_ExcludesFinishedGood(t *testing.T) {
	lines := []*storage.BomLine{
		{MaterialID: "FG-1", Quantity: 5, FinishedGood: true},
		{MaterialID: "RM-1", Quantity: 2, Price: 10},
	}

	totals := Rollup(lines, nil)

	assert.Equal(t, 2.0, totals.TotalWeight)
	assert.Equal(t, 20.0, totals.TotalCost)
}

func TestRollup_PriceFallbackToInline(t *testing.T) {
	lines := []*storage.BomLine{
		{MaterialID: "RM-1", Quantity: 1, Price: 15},
	}
	prices := map[string]*storage.MaterialPrice{
		"RM-1": {MaterialID: "RM-1", PricePerUnit: 0},
	}

	totals := Rollup(lines, prices)

	assert.Equal(t, 15.0, totals.TotalCost)
}

func TestRollup_PriceFallbackToStdPrice(t *testing.T) {
	lines := []*storage.BomLine{
		{MaterialID: "RM-1", Quantity: 3, Price: 0, StdPrice: 4},
	}

	totals := Rollup(lines, nil)

	assert.Equal(t, 12.0, totals.TotalCost)
	assert.Equal(t, 3.0, totals.TotalWeight)
}

func TestRollup_IndexedPriceWins(t *testing.T) {
	lines := []*storage.BomLine{
		{MaterialID: "RM-1", Quantity: 2, Unit: "kg", Price: 99},
	}
	prices := map[string]*storage.MaterialPrice{
		"RM-1": {MaterialID: "RM-1", PricePerUnit: 7, DisplayUnit: "kg"},
	}

	totals := Rollup(lines, prices)

	assert.Equal(t, 14.0, totals.TotalCost)
}

func TestRollup_UnitConversion(t *testing.T) {
	// Price quoted per pack, BOM consumes grams: 0.02 per gram * 1000.
	lines := []*storage.BomLine{
		{MaterialID: "RM-1", Quantity: 500, Unit: "g"},
	}
	prices := map[string]*storage.MaterialPrice{
		"RM-1": {
			MaterialID:        "RM-1",
			PricePerUnit:      20,
			DisplayUnit:       "pack",
			PricePerBaseUnit:  0.02,
			DisplayToBaseRate: 1,
		},
	}

	totals := Rollup(lines, prices)

	assert.InDelta(t, 10.0, totals.TotalCost, 1e-9)
}

func TestPricePerUnit_UndefinedAtZeroWeight(t *testing.T) {
	_, ok := Totals{}.PricePerUnit()
	assert.False(t, ok)

	v, ok := Totals{TotalWeight: 4, TotalCost: 10}.PricePerUnit()
	assert.True(t, ok)
	assert.Equal(t, 2.5, v)
}
