package distribution

import (
	"github.com/okian/panelboard/internal/domain/model"
	"github.com/okian/panelboard/internal/domain/types"
)

// Occupation counts occupations, top 10 by count.
func Occupation(records []model.PanelRecord) []types.DistributionEntry {
	t := occupationTally(records)
	return t.entries(t.ranked(occupationLimit), occupationColor)
}

func occupationTally(records []model.PanelRecord) *tally {
	t := newTally()
	for i := range records {
		if job, ok := answer(records[i].Metadata, labelOccupation); ok {
			t.add(job)
		}
	}
	return t
}
