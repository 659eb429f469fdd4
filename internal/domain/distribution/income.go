package distribution

import (
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/okian/panelboard/internal/domain/model"
	"github.com/okian/panelboard/internal/domain/types"
)

// Income band edges, in units of 10,000 KRW per month.
const (
	incomeBandWidth = 100
	incomeBandFloor = 100
	incomeBandCeil  = 1000
)

var (
	incomeRangePattern  = regexp.MustCompile(`(\d+)\s*[~～]\s*(\d+)`)
	incomeNumberPattern = regexp.MustCompile(`\d+`)
)

// incomeBands are the canonical labels, lowest income first.
var incomeBands = func() []string {
	bands := []string{fmt.Sprintf("%d만원 미만", incomeBandFloor)}
	for lo := incomeBandFloor; lo < incomeBandCeil; lo += incomeBandWidth {
		bands = append(bands, fmt.Sprintf("%d~%d만원", lo, lo+incomeBandWidth-1))
	}
	return append(bands, fmt.Sprintf("%d만원 이상", incomeBandCeil))
}()

var incomeBandIndex = func() map[string]int {
	idx := make(map[string]int, len(incomeBands))
	for i, b := range incomeBands {
		idx[b] = i
	}
	return idx
}()

// CanonicalIncomeBands returns the 11 canonical band labels in order.
func CanonicalIncomeBands() []string {
	return slices.Clone(incomeBands)
}

// Income counts panels per income bucket. Canonical bands come first in
// band order; any other label (custom ranges, unparseable answers) follows
// by count. Unparseable answers keep their own bucket instead of being
// dropped. There is no cap.
func Income(records []model.PanelRecord) []types.DistributionEntry {
	t := incomeTally(records)
	return t.entries(incomeOrder(t), incomeColor)
}

func incomeTally(records []model.PanelRecord) *tally {
	t := newTally()
	for i := range records {
		if text, ok := incomeText(records[i]); ok {
			t.add(IncomeBucket(text))
		}
	}
	return t
}

// incomeText resolves personal income, then household income, then the
// top-level income field.
func incomeText(rec model.PanelRecord) (string, bool) {
	if v, ok := rec.Metadata.TrimmedText(labelPersonalIncome); ok {
		return v, true
	}
	if v, ok := rec.Metadata.TrimmedText(labelHouseholdIncome); ok {
		return v, true
	}
	v := strings.TrimSpace(rec.Income)
	return v, v != ""
}

// IncomeBucket maps a free-text income answer to its bucket label.
//
//	"월 200~299만원" -> "200~299만원"
//	"50만원 미만"     -> "50만원 미만"
//	"1,500만원 이상"  -> "1500만원 이상"
//	"350만원"        -> "300~399만원"
//	"모름"           -> "모름"
func IncomeBucket(text string) string {
	text = strings.TrimSpace(text)
	plain := strings.ReplaceAll(text, ",", "")

	if strings.ContainsAny(plain, "~～") {
		if m := incomeRangePattern.FindStringSubmatch(plain); m != nil {
			lo, errLo := strconv.Atoi(m[1])
			hi, errHi := strconv.Atoi(m[2])
			if errLo == nil && errHi == nil {
				return fmt.Sprintf("%d~%d만원", lo, hi)
			}
		}
	}

	n, ok := firstInt(plain)
	if !ok {
		return text
	}
	switch {
	case strings.Contains(plain, "미만"):
		return fmt.Sprintf("%d만원 미만", n)
	case strings.Contains(plain, "이상"):
		return fmt.Sprintf("%d만원 이상", n)
	}
	return incomeBands[bandFor(n)]
}

func firstInt(s string) (int, bool) {
	m := incomeNumberPattern.FindString(s)
	if m == "" {
		return 0, false
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return 0, false
	}
	return n, true
}

func bandFor(n int) int {
	switch {
	case n < incomeBandFloor:
		return 0
	case n >= incomeBandCeil:
		return len(incomeBands) - 1
	}
	return n / incomeBandWidth
}

// incomeOrder puts canonical bands first by band index, then everything
// else by count descending.
func incomeOrder(t *tally) []bucket {
	out := slices.Clone(t.buckets)
	slices.SortStableFunc(out, func(a, b bucket) int {
		ai, aCanon := incomeBandIndex[a.name]
		bi, bCanon := incomeBandIndex[b.name]
		switch {
		case aCanon && bCanon:
			return ai - bi
		case aCanon:
			return -1
		case bCanon:
			return 1
		}
		return b.count - a.count
	})
	return out
}
