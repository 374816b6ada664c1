package roster

import (
	"strings"
	"unicode"

	"kitchen-golang/internal/constants"
	"kitchen-golang/internal/storage"
)

// ExtractNames resolves the operator list of a job to a deduplicated name
// slice in first-appearance order. Encoding precedence: the pre-joined
// display string, then the structured records, then the fallback field.
func ExtractNames(job *storage.Job) []string {
	if joined := strings.TrimSpace(job.OperatorsJoined); joined != "" {
		return dedup(strings.Split(joined, ","))
	}

	if len(job.OperatorRecords) > 0 {
		names := make([]string, 0, len(job.OperatorRecords))
		for _, rec := range job.OperatorRecords {
			names = append(names, resolveRecord(rec))
		}
		return dedup(names)
	}

	if fallback := strings.TrimSpace(job.OperatorsFallback); fallback != "" {
		return dedup(strings.Split(fallback, ","))
	}

	return nil
}

// resolveRecord picks the first non-empty name field of a structured entry.
// The order mirrors which upstream forms are most trustworthy.
func resolveRecord(rec storage.OperatorRecord) string {
	for _, candidate := range []string{
		rec.Name,
		rec.FullName,
		rec.Fullname,
		rec.DisplayName,
		rec.ThName,
		rec.ThaiName,
		rec.Code,
	} {
		if strings.TrimSpace(candidate) != "" {
			return strings.TrimSpace(candidate)
		}
	}
	return ""
}

func dedup(raw []string) []string {
	var names []string
	seen := make(map[string]bool)

	for _, name := range raw {
		name = strings.TrimSpace(name)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}

	return names
}

// IsExcluded reports whether a name is an R&D placeholder rather than a
// production operator. "&" is dropped before tokenizing so "R&D" collapses
// to "RD"; other punctuation splits tokens so "rd-1" matches too.
func IsExcluded(name string) bool {
	up := strings.ToUpper(strings.TrimSpace(name))
	up = strings.ReplaceAll(up, "&", "")

	var b strings.Builder
	for _, r := range up {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}

	fields := strings.Fields(b.String())
	if len(fields) == 0 {
		return false
	}

	return constants.NonProductionPrefixes[fields[0]]
}

// ProductionNames is ExtractNames minus the excluded placeholders.
func ProductionNames(job *storage.Job) []string {
	var names []string
	for _, name := range ExtractNames(job) {
		if !IsExcluded(name) {
			names = append(names, name)
		}
	}
	return names
}

// EffectiveHeadcount never drops below one: a job with no resolvable
// operators still consumed one unit of labor.
func EffectiveHeadcount(job *storage.Job) int {
	if n := len(ProductionNames(job)); n > 1 {
		return n
	}
	return 1
}
