package distribution

import (
	"github.com/okian/panelboard/internal/domain/model"
	"github.com/okian/panelboard/internal/domain/types"
)

// Phone counts phone brands, top 5 by count. Brands other than the two
// known makers are colored gray regardless of rank.
func Phone(records []model.PanelRecord) []types.DistributionEntry {
	t := phoneTally(records)
	return t.entries(t.ranked(phoneLimit), phoneColor)
}

func phoneTally(records []model.PanelRecord) *tally {
	t := newTally()
	for i := range records {
		if brand, ok := answer(records[i].Metadata, labelPhoneBrand); ok {
			t.add(brand)
		}
	}
	return t
}
