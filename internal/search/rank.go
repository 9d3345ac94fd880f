package search

import (
	"sort"

	"github.com/hbollon/go-edlib"
)

// rank orders hits by Jaro-Winkler similarity between the folded term
// and the stored name. FTS gives recall; this gives a sensible order
// when many names share the prefix. Ties keep the FTS order.
func rank(hits []Hit, term string) {
	folded := Fold(term)
	for i := range hits {
		hits[i].Score = float64(edlib.JaroWinklerSimilarity(folded, hits[i].Name))
	}
	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Score > hits[j].Score
	})
}
