package laborcost

// WorkdayMinutes is the standard workday the daily wage buys. Fixed policy
// of the production office, not a per-job setting.
const WorkdayMinutes = 480

// Defaults applied when no coefficient rows are configured.
const (
	DefaultOverheadPct = 10
	DefaultUtilityPct  = 5
)

// Manhour is the base labor cost of a time span worked by workerCount
// operators paid dailyWage per workday.
func Manhour(minutes, dailyWage float64, workerCount int) float64 {
	return dailyWage * float64(workerCount) / WorkdayMinutes * minutes
}

// PerUnit spreads a manhour cost over the output quantity. Undefined when
// nothing was produced.
func PerUnit(manhour, outputQty float64) (float64, bool) {
	if outputQty <= 0 {
		return 0, false
	}
	return manhour / outputQty, true
}

// WithOverhead layers the overhead percentage onto a base cost.
func WithOverhead(base, overheadPct float64) float64 {
	return base * (1 + overheadPct/100)
}

// WithUtility layers overhead and utility onto the same base. The two
// percentages are additive, not compounded.
func WithUtility(base, overheadPct, utilityPct float64) float64 {
	return base * (1 + overheadPct/100 + utilityPct/100)
}
