// ABOUTME: Autocomplete ranking of roster names against a typed query
// ABOUTME: Tiered exact/prefix/substring scores with a Jaccard+edit-ratio blend
package match

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/amauta/contactos/parse"
)

// Rank orders candidate names by similarity to the query and truncates to
// topN. An empty query acts as "no filter" and returns the input unchanged.
// Display-only: the write path resolves clients through Resolve, never this.
func Rank(query string, names []string, topN int) []string {
	if strings.TrimSpace(query) == "" {
		return names
	}
	q := parse.Normalize(query)

	type scored struct {
		name  string
		score float64
	}
	ranked := make([]scored, 0, len(names))
	for _, name := range names {
		ranked = append(ranked, scored{name: name, score: score(q, name)})
	}

	// Ties prefer shorter names, the more specific intent.
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return len(ranked[i].name) < len(ranked[j].name)
	})

	// Exact matches are guaranteed the front, whatever the blend said.
	out := make([]string, 0, len(ranked))
	for _, s := range ranked {
		if parse.Normalize(s.name) == q {
			out = append(out, s.name)
		}
	}
	for _, s := range ranked {
		if parse.Normalize(s.name) != q {
			out = append(out, s.name)
		}
	}

	if topN > 0 && len(out) > topN {
		out = out[:topN]
	}
	return out
}

func score(q, name string) float64 {
	n := parse.Normalize(name)
	switch {
	case n == q:
		return 1.0
	case strings.HasPrefix(n, q):
		return 0.95
	case strings.Contains(n, q):
		return 0.90
	}
	return 0.5*tokenJaccard(q, n) + 0.5*similarityRatio(q, n)
}

func tokenJaccard(a, b string) float64 {
	at := strings.Fields(a)
	bt := strings.Fields(b)
	if len(at) == 0 && len(bt) == 0 {
		return 0
	}

	set := make(map[string]bool, len(at))
	for _, t := range at {
		set[t] = true
	}
	union := make(map[string]bool, len(at)+len(bt))
	for _, t := range at {
		union[t] = true
	}
	inter := 0
	for _, t := range bt {
		if set[t] {
			inter++
			delete(set, t) // count shared tokens once
		}
		union[t] = true
	}
	return float64(inter) / float64(len(union))
}

// similarityRatio maps edit distance onto [0,1].
func similarityRatio(a, b string) float64 {
	if a == "" && b == "" {
		return 1
	}
	longest := len([]rune(a))
	if l := len([]rune(b)); l > longest {
		longest = l
	}
	dist := levenshtein.ComputeDistance(a, b)
	return 1 - float64(dist)/float64(longest)
}
