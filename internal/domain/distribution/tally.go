package distribution

import (
	"cmp"
	"math"
	"slices"

	"github.com/okian/panelboard/internal/domain/types"
)

type bucket struct {
	name  string
	count int
}

// tally counts answers per bucket. Buckets are kept in first-seen order so
// a stable sort breaks count ties by first appearance in the input.
type tally struct {
	index   map[string]int
	buckets []bucket
	valid   int
}

func newTally() *tally {
	return &tally{index: make(map[string]int)}
}

func (t *tally) add(name string) {
	t.valid++
	if i, ok := t.index[name]; ok {
		t.buckets[i].count++
		return
	}
	t.index[name] = len(t.buckets)
	t.buckets = append(t.buckets, bucket{name: name, count: 1})
}

// ranked returns buckets by count descending, capped at limit when limit > 0.
func (t *tally) ranked(limit int) []bucket {
	out := slices.Clone(t.buckets)
	slices.SortStableFunc(out, func(a, b bucket) int {
		return cmp.Compare(b.count, a.count)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// entries renders ordered buckets, coloring each by its position.
func (t *tally) entries(ordered []bucket, color func(name string, rank int) string) []types.DistributionEntry {
	out := make([]types.DistributionEntry, 0, len(ordered))
	for rank, b := range ordered {
		out = append(out, types.DistributionEntry{
			Name:  b.name,
			Count: b.count,
			Rate:  rate(b.count, t.valid),
			Color: color(b.name, rank),
		})
	}
	return out
}

// rate is count/valid as a percentage rounded to one decimal place.
func rate(count, valid int) float64 {
	if valid == 0 {
		return 0
	}
	return math.Round(float64(count)/float64(valid)*1000) / 10
}
