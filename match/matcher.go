// ABOUTME: Client-name resolution against the roster
// ABOUTME: Exact-first then bidirectional-substring matching with disambiguation
package match

import (
	"sort"
	"strings"

	"github.com/amauta/contactos/models"
	"github.com/amauta/contactos/parse"
)

// Outcome of a roster resolution.
type Outcome int

const (
	Unique Outcome = iota
	Ambiguous
	NotFound
)

// Result carries the resolved record for Unique outcomes, or the sorted
// candidate names for Ambiguous ones.
type Result struct {
	Outcome    Outcome
	Record     models.ClientRecord
	Candidates []string
}

// Resolve matches inputName against the roster. When scopeOwner is non-empty
// only that advisor's clients are considered.
//
// Exact matches (normalized equality) are computed first, then partial
// matches by bidirectional substring containment, which covers both "Pérez"
// against "Juan Pérez García" and typed prefixes. Edit distance is
// deliberately not used here; write-path resolution has to stay predictable
// and auditable. A single exact match only wins outright when no partial
// candidate exists alongside it: picking one silently would risk writing to
// the wrong client's record.
func Resolve(inputName string, roster []models.ClientRecord, scopeOwner string) Result {
	q := parse.Normalize(inputName)
	if q == "" {
		return Result{Outcome: NotFound}
	}

	var exact, partial []models.ClientRecord
	for _, rec := range roster {
		if scopeOwner != "" && rec.Owner != scopeOwner {
			continue
		}
		n := parse.Normalize(rec.Name)
		if n == "" {
			continue
		}
		switch {
		case n == q:
			exact = append(exact, rec)
		case strings.Contains(n, q) || strings.Contains(q, n):
			partial = append(partial, rec)
		}
	}

	switch {
	case len(exact) == 1 && len(partial) == 0:
		return Result{Outcome: Unique, Record: exact[0]}
	case len(exact) == 0 && len(partial) == 1:
		return Result{Outcome: Unique, Record: partial[0]}
	case len(exact)+len(partial) == 0:
		return Result{Outcome: NotFound}
	}

	return Result{Outcome: Ambiguous, Candidates: candidateNames(append(exact, partial...))}
}

func candidateNames(recs []models.ClientRecord) []string {
	seen := make(map[string]bool, len(recs))
	names := make([]string, 0, len(recs))
	for _, rec := range recs {
		n := parse.Normalize(rec.Name)
		if !seen[n] {
			seen[n] = true
			names = append(names, n)
		}
	}
	sort.Strings(names)
	return names
}
