// Package distribution turns panel records into ranked, colored distribution
// tables for the dashboard charts.
//
// Every function here is a pure, single-pass computation over its input:
// records are never mutated, nothing is cached, and malformed or missing
// answers are skipped rather than reported. Each dimension computes its own
// denominator from the records that answered it, so rates are relative to
// valid answers and not to the full input length.
package distribution

import (
	"strings"

	"github.com/okian/panelboard/internal/domain/model"
	"github.com/okian/panelboard/internal/domain/types"
)

// Dimension names one distribution table.
type Dimension string

// Supported dimensions.
const (
	DimensionRegion     Dimension = "region"
	DimensionCar        Dimension = "car"
	DimensionPhone      Dimension = "phone"
	DimensionOccupation Dimension = "occupation"
	DimensionIncome     Dimension = "income"
)

// Dimensions returns every dimension in dashboard order.
func Dimensions() []Dimension {
	return []Dimension{
		DimensionRegion,
		DimensionCar,
		DimensionPhone,
		DimensionOccupation,
		DimensionIncome,
	}
}

// ParseDimension resolves a dimension name, ignoring case and surrounding space.
func ParseDimension(s string) (Dimension, error) {
	d := Dimension(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Dimensions() {
		if d == known {
			return d, nil
		}
	}
	return "", ErrUnknownDimension
}

// Build computes the table for dim along with the total and valid record
// counts a chart needs to label it.
func Build(dim Dimension, records []model.PanelRecord) (types.Distribution, error) {
	var t *tally
	switch dim {
	case DimensionRegion:
		t = regionTally(records)
	case DimensionCar:
		t = carTally(records)
	case DimensionPhone:
		t = phoneTally(records)
	case DimensionOccupation:
		t = occupationTally(records)
	case DimensionIncome:
		t = incomeTally(records)
	default:
		return types.Distribution{}, ErrUnknownDimension
	}
	return types.Distribution{
		Dimension: string(dim),
		Total:     len(records),
		Valid:     t.valid,
		Entries:   entriesFor(dim, t),
	}, nil
}

func entriesFor(dim Dimension, t *tally) []types.DistributionEntry {
	switch dim {
	case DimensionRegion:
		return t.entries(t.ranked(regionLimit), regionColor)
	case DimensionCar:
		return t.entries(t.ranked(carLimit), carColor)
	case DimensionPhone:
		return t.entries(t.ranked(phoneLimit), phoneColor)
	case DimensionOccupation:
		return t.entries(t.ranked(occupationLimit), occupationColor)
	case DimensionIncome:
		return t.entries(incomeOrder(t), incomeColor)
	}
	return []types.DistributionEntry{}
}

// answer returns the trimmed answer stored under label, treating the
// "no answer" sentinel like a missing value.
func answer(md model.Metadata, label string) (string, bool) {
	v, ok := md.TrimmedText(label)
	if !ok || v == sentinelNoAnswer {
		return "", false
	}
	return v, true
}
