package storage

// BomLine is one material line of a job's bill of materials. The output
// line of the BOM is flagged FinishedGood and must not count as an input.
type BomLine struct {
	JobCode      string  `json:"job_code"`
	MaterialID   string  `json:"material_id"`
	Quantity     float64 `json:"quantity"`
	Unit         string  `json:"unit"`
	FinishedGood bool    `json:"is_finished_good"`
	Price        float64 `json:"price"`
	StdPrice     float64 `json:"std_price"`
}

// MaterialPrice is the latest known price row for one material.
type MaterialPrice struct {
	MaterialID        string  `json:"material_id"`
	PricePerUnit      float64 `json:"price_per_unit"`
	DisplayUnit       string  `json:"display_unit"`
	PricePerBaseUnit  float64 `json:"price_per_base_unit"`
	DisplayToBaseRate float64 `json:"display_to_base_rate"`
}
