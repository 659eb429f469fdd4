package distribution

import (
	"strings"

	"github.com/okian/panelboard/internal/domain/model"
	"github.com/okian/panelboard/internal/domain/types"
)

// Region counts panels per region, top 10 by count. The record's region
// field wins; a blank one falls back to the location answer. Names are
// only trimmed, never case-folded.
func Region(records []model.PanelRecord) []types.DistributionEntry {
	t := regionTally(records)
	return t.entries(t.ranked(regionLimit), regionColor)
}

func regionTally(records []model.PanelRecord) *tally {
	t := newTally()
	for i := range records {
		if r, ok := ResolveRegion(records[i]); ok {
			t.add(r)
		}
	}
	return t
}

// ResolveRegion returns the best available region for rec.
func ResolveRegion(rec model.PanelRecord) (string, bool) {
	if r := strings.TrimSpace(rec.Region); r != "" {
		return r, true
	}
	return rec.Metadata.TrimmedText(labelLocation)
}
