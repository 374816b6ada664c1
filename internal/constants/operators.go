package constants

var (
	// Placeholder prefixes the production office puts in the operator column
	// for rows that are not real staff. Matched against the first token of
	// the normalized name, so "RD", "R&D Team" and "rd-1" all land here.
	NonProductionPrefixes = map[string]bool{
		"RD": true,
	}
)
