package distribution

import "strings"

const neutralGray = "#9CA3AF"

// defaultPalette colors region buckets and unknown car brands by rank.
var defaultPalette = []string{
	"#1E3A8A",
	"#1E40AF",
	"#1D4ED8",
	"#2563EB",
	"#3B82F6",
	"#60A5FA",
	"#93C5FD",
	"#BFDBFE",
	"#DBEAFE",
	"#EFF6FF",
}

// occupationPalette colors occupations outside the known categories by rank.
var occupationPalette = []string{
	"#4C1D95",
	"#5B21B6",
	"#6D28D9",
	"#7C3AED",
	"#8B5CF6",
	"#A78BFA",
	"#C4B5FD",
	"#DDD6FE",
	"#EDE9FE",
	"#F5F3FF",
}

// incomePalette runs light to dark, one step per canonical income band.
var incomePalette = []string{
	"#ECFDF5",
	"#D1FAE5",
	"#A7F3D0",
	"#6EE7B7",
	"#34D399",
	"#10B981",
	"#059669",
	"#047857",
	"#065F46",
	"#064E3B",
	"#022C22",
}

// carBrandColors is keyed by lower-cased brand name. Korean and English
// spellings of one maker share a color.
var carBrandColors = map[string]string{
	"현대":            "#002C5F",
	"현대자동차":         "#002C5F",
	"hyundai":       "#002C5F",
	"기아":            "#05141F",
	"kia":           "#05141F",
	"제네시스":          "#A36B4F",
	"genesis":       "#A36B4F",
	"bmw":           "#0066B1",
	"비엠더블유":         "#0066B1",
	"벤츠":            "#00ADEF",
	"메르세데스-벤츠":      "#00ADEF",
	"mercedes-benz": "#00ADEF",
	"benz":          "#00ADEF",
	"아우디":           "#BB0A30",
	"audi":          "#BB0A30",
	"폭스바겐":          "#001E50",
	"volkswagen":    "#001E50",
	"테슬라":           "#CC0000",
	"tesla":         "#CC0000",
	"토요타":           "#EB0A1E",
	"도요타":           "#EB0A1E",
	"toyota":        "#EB0A1E",
	"렉서스":           "#1A1A1A",
	"lexus":         "#1A1A1A",
	"볼보":            "#003057",
	"volvo":         "#003057",
	"쉐보레":           "#CD9834",
	"chevrolet":     "#CD9834",
	"르노":            "#FFCC33",
	"르노코리아":         "#FFCC33",
	"renault":       "#FFCC33",
	"kg모빌리티":        "#E60012",
	"쌍용":            "#E60012",
	"ssangyong":     "#E60012",
	"포르쉐":           "#B12B28",
	"porsche":       "#B12B28",
	"미니":            "#333333",
	"mini":          "#333333",
}

// phoneBrandColors is keyed by lower-cased brand alias.
var phoneBrandColors = map[string]string{
	"삼성":      "#1428A0",
	"삼성전자":    "#1428A0",
	"samsung": "#1428A0",
	"갤럭시":     "#1428A0",
	"galaxy":  "#1428A0",
	"애플":      "#A2AAAD",
	"apple":   "#A2AAAD",
	"아이폰":     "#A2AAAD",
	"iphone":  "#A2AAAD",
}

var occupationColors = map[string]string{
	"회사원":  "#3B82F6",
	"전문직":  "#8B5CF6",
	"자영업":  "#F59E0B",
	"공무원":  "#10B981",
	"학생":   "#EC4899",
	"주부":   "#F97316",
	"프리랜서": "#06B6D4",
	"서비스직": "#84CC16",
	"무직":   "#6B7280",
	"기타":   "#A855F7",
}

// rankColor picks palette[rank], or gray once the palette runs out.
func rankColor(palette []string, rank int) string {
	if rank >= 0 && rank < len(palette) {
		return palette[rank]
	}
	return neutralGray
}

func regionColor(_ string, rank int) string {
	return rankColor(defaultPalette, rank)
}

func carColor(name string, rank int) string {
	if c, ok := carBrandColors[strings.ToLower(name)]; ok {
		return c
	}
	return rankColor(defaultPalette, rank)
}

func phoneColor(name string, _ int) string {
	if c, ok := phoneBrandColors[strings.ToLower(name)]; ok {
		return c
	}
	return neutralGray
}

func occupationColor(name string, rank int) string {
	if c, ok := occupationColors[name]; ok {
		return c
	}
	return rankColor(occupationPalette, rank)
}

// incomeColor never falls back to gray: positions past the last band reuse
// the darkest step.
func incomeColor(_ string, rank int) string {
	return incomePalette[min(rank, len(incomePalette)-1)]
}
