package bomcost

import (
	"strings"

	"kitchen-golang/internal/storage"
)

// Totals is the material rollup of one job's BOM.
type Totals struct {
	TotalWeight float64 `json:"total_weight"`
	TotalCost   float64 `json:"total_material_cost"`
}

// Rollup sums weight and cost over the BOM, skipping finished-good lines so
// the output of the job never counts as one of its inputs. A nil or empty
// BOM yields zero totals, which is a legitimate state for a new job.
func Rollup(lines []*storage.BomLine, prices map[string]*storage.MaterialPrice) Totals {
	var totals Totals

	for _, line := range lines {
		if line == nil || line.FinishedGood {
			continue
		}

		price := resolvePrice(line, prices)
		totals.TotalCost += line.Quantity * price
		totals.TotalWeight += line.Quantity
	}

	return totals
}

// PricePerUnit is cost over weight. The bool is false at zero weight: a
// weightless job has no meaningful unit price, which is not the same as a
// price of zero.
func (t Totals) PricePerUnit() (float64, bool) {
	if t.TotalWeight <= 0 {
		return 0, false
	}
	return t.TotalCost / t.TotalWeight, true
}

// resolvePrice applies the fallback order: latest indexed price, then the
// line's own price, then its standard price, then zero.
func resolvePrice(line *storage.BomLine, prices map[string]*storage.MaterialPrice) float64 {
	if p, ok := prices[line.MaterialID]; ok && p != nil {
		if unit := unitPrice(p, line.Unit); unit > 0 {
			return unit
		}
	}

	if line.Price > 0 {
		return line.Price
	}

	if line.StdPrice > 0 {
		return line.StdPrice
	}

	return 0
}

// unitPrice converts a price quoted in the material's display unit into the
// BOM line's unit when they differ.
func unitPrice(p *storage.MaterialPrice, lineUnit string) float64 {
	if lineUnit != "" && p.DisplayUnit != "" && !strings.EqualFold(lineUnit, p.DisplayUnit) {
		return p.PricePerBaseUnit * p.DisplayToBaseRate
	}
	return p.PricePerUnit
}
