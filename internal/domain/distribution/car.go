package distribution

import (
	"strings"

	"github.com/okian/panelboard/internal/domain/model"
	"github.com/okian/panelboard/internal/domain/types"
)

// ownershipTokens are exact (case-insensitive) answers meaning "owns a car".
var ownershipTokens = map[string]struct{}{
	"보유":    {},
	"owned": {},
	"yes":   {},
	"y":     {},
	"true":  {},
}

// Car counts car brands among panels that own a car, top 10 by count.
// Panels that do not own a car, or own one but did not name the brand, are
// left out of the denominator.
func Car(records []model.PanelRecord) []types.DistributionEntry {
	t := carTally(records)
	return t.entries(t.ranked(carLimit), carColor)
}

func carTally(records []model.PanelRecord) *tally {
	t := newTally()
	for i := range records {
		md := records[i].Metadata
		if !ownsCar(md) {
			continue
		}
		if brand, ok := carBrand(md); ok {
			t.add(brand)
		}
	}
	return t
}

func ownsCar(md model.Metadata) bool {
	v, ok := md.TrimmedText(labelCarOwnership)
	if !ok {
		return false
	}
	if strings.Contains(v, affirmativeOwnership) {
		return true
	}
	_, ok = ownershipTokens[strings.ToLower(v)]
	return ok
}

// carBrand reads the brand under either label spelling, spaced form first.
func carBrand(md model.Metadata) (string, bool) {
	for _, label := range []string{labelCarBrand, labelCarBrandCompact} {
		if _, present := md.TrimmedText(label); present {
			return answer(md, label)
		}
	}
	return "", false
}
