package storage

// Coefficient types editable from the admin panel.
const (
	CoefDailyWage   = "daily_wage"
	CoefOverheadPct = "overhead_pct"
	CoefUtilityPct  = "utility_pct"
)

type LaborCoefficient struct {
	ID       int     `json:"id"`
	Type     string  `json:"type"`
	Value    float64 `json:"value"`
	IsActive bool    `json:"is_active"`
}
