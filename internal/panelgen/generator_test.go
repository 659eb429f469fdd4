package panelgen

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/okian/panelboard/internal/domain/distribution"
)

func TestGenerator(t *testing.T) {
	Convey("Given two generators with the same seed", t, func() {
		a := NewGenerator(42).Generate(50)
		b := NewGenerator(42).Generate(50)

		Convey("They produce identical panels", func() {
			So(a, ShouldResemble, b)
		})

		Convey("A different seed produces different panels", func() {
			c := NewGenerator(7).Generate(50)
			So(c[0].ID, ShouldNotEqual, a[0].ID)
		})

		Convey("IDs are unique and every record has demographics", func() {
			seen := make(map[string]bool, len(a))
			for _, rec := range a {
				So(seen[rec.ID], ShouldBeFalse)
				seen[rec.ID] = true
				So(rec.Age, ShouldBeBetweenOrEqual, 20, 69)
				So(rec.Gender, ShouldBeIn, "여성", "남성")
				So(rec.Name, ShouldNotBeEmpty)
			}
		})
	})

	Convey("Given a large generated panel", t, func() {
		recs := NewGenerator(1).Generate(2000)

		Convey("Every dimension has answers to aggregate", func() {
			for _, dim := range distribution.Dimensions() {
				d, err := distribution.Build(dim, recs)
				So(err, ShouldBeNil)
				So(d.Valid, ShouldBeGreaterThan, 0)
				So(len(d.Entries), ShouldBeGreaterThan, 0)
			}
		})

		Convey("Some regions only appear under the location field", func() {
			fromMetadata := 0
			for _, rec := range recs {
				if rec.Region == "" {
					_, ok := rec.Metadata.TrimmedText(fieldLocation)
					So(ok, ShouldBeTrue)
					fromMetadata++
				}
			}
			So(fromMetadata, ShouldBeGreaterThan, 0)
		})

		Convey("Income answers land in canonical bands", func() {
			d, err := distribution.Build(distribution.DimensionIncome, recs)
			So(err, ShouldBeNil)
			bands := distribution.CanonicalIncomeBands()
			So(d.Entries[0].Name, ShouldEqual, bands[0])
		})
	})

	Convey("Generating zero or fewer records yields an empty slice", t, func() {
		So(NewGenerator(1).Generate(0), ShouldBeEmpty)
		So(NewGenerator(1).Generate(-3), ShouldBeEmpty)
	})
}

func TestFormatThousands(t *testing.T) {
	Convey("Given amounts in 만원", t, func() {
		So(formatThousands(950), ShouldEqual, "950")
		So(formatThousands(1000), ShouldEqual, "1,000")
		So(formatThousands(1199), ShouldEqual, "1,199")
	})
}
