// Package panelgen produces realistic synthetic panel records and submits
// them to a running panelboard service.
package panelgen

import (
	"fmt"
	"math/rand"
	"strconv"

	"github.com/google/uuid"

	"github.com/okian/panelboard/internal/domain/model"
)

// Survey field labels the generator answers.
const (
	fieldLocation        = "location"
	fieldCarOwnership    = "차량 보유 여부"
	fieldCarBrand        = "차량 브랜드"
	fieldCarBrandCompact = "차량브랜드"
	fieldPhoneBrand      = "휴대폰 브랜드"
	fieldOccupation      = "직업"
	fieldPersonalIncome  = "개인 월소득"
	fieldHouseholdIncome = "가구 월소득"

	noAnswer = "무응답"
)

type weighted struct {
	value  string
	weight int
}

var (
	regions = []weighted{
		{"서울", 19}, {"경기", 26}, {"인천", 6}, {"부산", 7}, {"대구", 5},
		{"대전", 3}, {"광주", 3}, {"울산", 2}, {"세종", 1}, {"강원", 3},
		{"충북", 3}, {"충남", 4}, {"전북", 3}, {"전남", 3}, {"경북", 5},
		{"경남", 6}, {"제주", 1},
	}
	ownershipAnswers = []weighted{
		{"있음", 50}, {"보유", 8}, {"Yes", 3}, {"없음", 30}, {"미보유", 4}, {noAnswer, 5},
	}
	carBrands = []weighted{
		{"현대", 30}, {"기아", 25}, {"제네시스", 8}, {"BMW", 7}, {"벤츠", 7},
		{"테슬라", 4}, {"쉐보레", 3}, {"르노코리아", 3}, {"KG모빌리티", 2}, {"아우디", 2},
		{"Toyota", 2}, {"볼보", 2}, {"Lexus", 1}, {"포르쉐", 1}, {"미니", 1}, {noAnswer, 2},
	}
	phoneBrands = []weighted{
		{"Samsung", 45}, {"삼성", 10}, {"Apple", 30}, {"아이폰", 5}, {"LG", 5},
		{"Xiaomi", 2}, {"Google", 1}, {noAnswer, 2},
	}
	occupations = []weighted{
		{"회사원", 35}, {"전문직", 8}, {"자영업", 10}, {"공무원", 6}, {"학생", 12},
		{"주부", 10}, {"프리랜서", 5}, {"서비스직", 6}, {"무직", 4}, {"기타", 2},
		{"군인", 1}, {noAnswer, 1},
	}
	genders  = []weighted{{"여성", 50}, {"남성", 50}}
	surnames = []string{"김", "이", "박", "최", "정", "강", "조", "윤", "장", "임"}
	given    = []string{"민준", "서연", "도윤", "지우", "하준", "서윤", "시우", "하은", "지호", "수아"}
)

// Generator builds panel records from a seeded source, so one seed always
// yields the same panel.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator returns a generator seeded with seed.
func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))} //nolint:gosec // synthetic data, not security sensitive
}

// Generate returns n records.
func (g *Generator) Generate(n int) []model.PanelRecord {
	out := make([]model.PanelRecord, 0, max(n, 0))
	for i := 0; i < n; i++ {
		out = append(out, g.Record())
	}
	return out
}

// Record returns one record. Roughly a fifth of them carry their region
// only in metadata and some skip questions, like real survey exports.
func (g *Generator) Record() model.PanelRecord {
	id, err := uuid.NewRandomFromReader(g.rng)
	if err != nil {
		// rand.Rand.Read never fails.
		panic(fmt.Sprintf("panelgen: uuid: %v", err))
	}

	rec := model.PanelRecord{
		ID:       id.String(),
		Name:     g.pickString(surnames) + g.pickString(given),
		Age:      20 + g.rng.Intn(50),
		Gender:   g.pick(genders),
		Metadata: model.Metadata{},
	}

	region := g.pick(regions)
	if g.chance(20) {
		rec.Metadata[fieldLocation] = region
	} else {
		rec.Region = region
	}

	if g.chance(90) {
		owns := g.pick(ownershipAnswers)
		rec.Metadata[fieldCarOwnership] = owns
		if owns == "있음" || owns == "보유" || owns == "Yes" {
			label := fieldCarBrand
			if g.chance(25) {
				label = fieldCarBrandCompact
			}
			rec.Metadata[label] = g.pick(carBrands)
		}
	}
	if g.chance(92) {
		rec.Metadata[fieldPhoneBrand] = g.pick(phoneBrands)
	}
	if g.chance(88) {
		rec.Metadata[fieldOccupation] = g.pick(occupations)
	}
	g.income(&rec)
	return rec
}

// income answers in one of the free-text shapes seen in survey exports.
func (g *Generator) income(rec *model.PanelRecord) {
	if !g.chance(85) {
		return
	}
	manwon := 50 + g.rng.Intn(1150)
	var text string
	switch g.rng.Intn(7) {
	case 0:
		if lo := manwon / 100 * 100; lo >= 100 {
			text = fmt.Sprintf("%d~%d만원", lo, lo+99)
		} else {
			text = "100만원 미만"
		}
	case 1:
		text = fmt.Sprintf("월 %d만원", manwon)
	case 2:
		text = strconv.Itoa(manwon)
	case 3:
		text = "100만원 미만"
	case 4:
		text = "1,000만원 이상"
	case 5:
		text = noAnswer
	default:
		text = fmt.Sprintf("%s만원", formatThousands(manwon))
	}

	switch g.rng.Intn(3) {
	case 0:
		rec.Metadata[fieldPersonalIncome] = text
	case 1:
		rec.Metadata[fieldHouseholdIncome] = text
	default:
		rec.Income = text
	}
}

func (g *Generator) chance(percent int) bool {
	return g.rng.Intn(100) < percent
}

func (g *Generator) pickString(values []string) string {
	return values[g.rng.Intn(len(values))]
}

func (g *Generator) pick(values []weighted) string {
	total := 0
	for _, v := range values {
		total += v.weight
	}
	n := g.rng.Intn(total)
	for _, v := range values {
		if n < v.weight {
			return v.value
		}
		n -= v.weight
	}
	return values[len(values)-1].value
}

func formatThousands(n int) string {
	s := strconv.Itoa(n)
	if len(s) <= 3 {
		return s
	}
	return s[:len(s)-3] + "," + s[len(s)-3:]
}
