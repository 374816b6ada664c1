package jobmatch

import (
	"strings"
	"unicode"

	"kitchen-golang/internal/storage"
)

// Target is the single job a strict-mode query resolves to. An empty Code
// means the query carried no usable numeric code and matching falls back
// to the normalized name.
type Target struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Normalize strips whitespace, hyphens, dots and underscores and lowercases
// the rest, so "WP 235-001" and "wp235001" compare equal.
func Normalize(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsSpace(r) || r == '-' || r == '.' || r == '_' {
			continue
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// ExtractCode returns the first run of at least three digits, or "".
func ExtractCode(s string) string {
	start := -1
	for i, r := range s {
		if r >= '0' && r <= '9' {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 && i-start >= 3 {
			return s[start:i]
		}
		start = -1
	}
	if start >= 0 && len(s)-start >= 3 {
		return s[start:]
	}
	return ""
}

// ResolveTarget collapses a free-text query to exactly one target. An exact
// candidate from the index wins; otherwise the extracted digits (code) and
// the rest of the query (name) form a synthetic target. Never ambiguous:
// the first exact candidate in index order is taken.
func ResolveTarget(query string, index []storage.JobRef) Target {
	norm := Normalize(query)
	code := ExtractCode(norm)

	for _, ref := range index {
		if code != "" && Normalize(ref.JobCode) == code {
			return Target{Code: ref.JobCode, Name: ref.JobName}
		}
		if Normalize(ref.JobName) == norm && norm != "" {
			return Target{Code: ref.JobCode, Name: ref.JobName}
		}
	}

	if code != "" {
		return Target{Code: code, Name: strings.Replace(norm, code, "", 1)}
	}

	return Target{Name: norm}
}

// FilterByTarget keeps only rows matching the target. A non-empty code
// always wins over the name: rows are kept when their own extracted job
// code equals it, whatever their name says.
func FilterByTarget(rows []*storage.Job, target Target) []*storage.Job {
	var kept []*storage.Job

	if target.Code != "" {
		code := Normalize(target.Code)
		for _, row := range rows {
			if ExtractCode(Normalize(row.JobCode)) == code {
				kept = append(kept, row)
			}
		}
		return kept
	}

	name := Normalize(target.Name)
	for _, row := range rows {
		if Normalize(row.JobName) == name {
			kept = append(kept, row)
		}
	}
	return kept
}
