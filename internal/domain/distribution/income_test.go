package distribution_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/okian/panelboard/internal/domain/distribution"
	"github.com/okian/panelboard/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func personalIncome(id, text string) model.PanelRecord {
	return withMeta(id, model.Metadata{"개인 월소득": text})
}

func TestIncomeBucket(t *testing.T) {
	Convey("Given free-text income answers", t, func() {
		cases := []struct {
			text string
			want string
		}{
			{"99만원", "100만원 미만"},
			{"0", "100만원 미만"},
			{"100만원", "100~199만원"},
			{"199", "100~199만원"},
			{"350만원", "300~399만원"},
			{"999만원", "900~999만원"},
			{"1000만원", "1000만원 이상"},
			{"1500만원", "1000만원 이상"},
			{"1,500만원", "1000만원 이상"},
			{"월 200~299만원", "200~299만원"},
			{"200 ~ 299", "200~299만원"},
			{"250～280만원", "250~280만원"},
			{"200만원~299만원", "200~299만원"},
			{"100만원 미만", "100만원 미만"},
			{"50만원 미만", "50만원 미만"},
			{"1000만원 이상", "1000만원 이상"},
			{"월 700만원 이상", "700만원 이상"},
			{"~300", "300~399만원"},
			{"  모름  ", "모름"},
			{"무응답", "무응답"},
			{"99999999999999999999999", "99999999999999999999999"},
		}

		for _, tc := range cases {
			text, want := tc.text, tc.want
			Convey(fmt.Sprintf("Then %q is bucketed as %q", text, want), func() {
				So(distribution.IncomeBucket(text), ShouldEqual, want)
			})
		}
	})

	Convey("Given the canonical bands", t, func() {
		bands := distribution.CanonicalIncomeBands()

		Convey("Then there are eleven, lowest first", func() {
			So(bands, ShouldHaveLength, 11)
			So(bands[0], ShouldEqual, "100만원 미만")
			So(bands[1], ShouldEqual, "100~199만원")
			So(bands[9], ShouldEqual, "900~999만원")
			So(bands[10], ShouldEqual, "1000만원 이상")
		})

		Convey("And callers cannot alter them", func() {
			bands[0] = "changed"
			So(distribution.CanonicalIncomeBands()[0], ShouldEqual, "100만원 미만")
		})
	})
}

func TestIncome(t *testing.T) {
	Convey("Given income answers under different labels", t, func() {
		records := []model.PanelRecord{
			withMeta("1", model.Metadata{"개인 월소득": "350만원", "가구 월소득": "800만원"}),
			{ID: "2", Income: "120만원", Metadata: model.Metadata{"가구 월소득": "월 800~899만원"}},
			{ID: "3", Income: "120만원"},
			{ID: "4", Income: "   ", Metadata: model.Metadata{"개인 월소득": ""}},
			{ID: "5"},
		}

		Convey("Then personal income wins, then household, then the top-level field", func() {
			entries := distribution.Income(records)
			So(names(entries), ShouldResemble, []string{"100~199만원", "300~399만원", "800~899만원"})
		})

		Convey("And blank answers are left out of the denominator", func() {
			d, err := distribution.Build(distribution.DimensionIncome, records)
			So(err, ShouldBeNil)
			So(d.Valid, ShouldEqual, 3)
			So(d.Entries[0].Rate, ShouldEqual, 33.3)
		})
	})

	Convey("Given canonical, custom and unparseable buckets", t, func() {
		records := []model.PanelRecord{
			personalIncome("1", "모름"),
			personalIncome("2", "월 300~399만원"),
			personalIncome("3", "250~280만원"),
			personalIncome("4", "250~280만원"),
			personalIncome("5", "월 200~299만원"),
			personalIncome("6", "1500만원"),
			personalIncome("7", "50만원"),
			personalIncome("8", "모름"),
			personalIncome("9", "모름"),
			personalIncome("10", "비공개"),
		}

		Convey("When computing the income distribution", func() {
			entries := distribution.Income(records)

			Convey("Then canonical bands come first in band order", func() {
				So(names(entries)[:4], ShouldResemble, []string{"100만원 미만", "200~299만원", "300~399만원", "1000만원 이상"})
			})

			Convey("And other buckets follow by count", func() {
				So(names(entries)[4:], ShouldResemble, []string{"모름", "250~280만원", "비공개"})
				So(entries[4].Count, ShouldEqual, 3)
			})

			Convey("And unparseable text keeps its own bucket", func() {
				So(sumCounts(entries), ShouldEqual, len(records))
				So(entries[4].Rate, ShouldEqual, 30.0)
			})

			Convey("And colors follow the gradient by position", func() {
				So(entries[0].Color, ShouldEqual, "#ECFDF5")
				So(entries[3].Color, ShouldEqual, "#6EE7B7")
			})
		})
	})

	Convey("Given more distinct buckets than gradient steps", t, func() {
		var records []model.PanelRecord
		for i := 0; i < 14; i++ {
			records = append(records, personalIncome(fmt.Sprint(i), "응답"+strings.Repeat("가", i+1)))
		}

		Convey("Then nothing is capped and late buckets reuse the darkest step", func() {
			entries := distribution.Income(records)
			So(entries, ShouldHaveLength, 14)
			So(entries[0].Name, ShouldEqual, "응답가")
			So(entries[0].Color, ShouldEqual, "#ECFDF5")
			So(entries[9].Color, ShouldEqual, "#064E3B")
			So(entries[10].Color, ShouldEqual, "#022C22")
			So(entries[13].Color, ShouldEqual, "#022C22")
		})
	})
}
