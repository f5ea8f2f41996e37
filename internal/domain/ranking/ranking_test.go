package ranking_test

import (
	"testing"

	"github.com/ryanmarc/olympic-dashboard/internal/domain/model"
	"github.com/ryanmarc/olympic-dashboard/internal/domain/ranking"
	. "github.com/smartystreets/goconvey/convey"
)

func st(code string, g, s, b int) model.CountryStanding {
	return model.NewStanding(model.CountryRegistryEntry{Name: code, Code: code, Page: code}, g, s, b)
}

func codes(in []model.CountryStanding) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = s.Code
	}
	return out
}

func TestOrder(t *testing.T) {
	Convey("Given unordered standings", t, func() {
		in := []model.CountryStanding{
			st("AAA", 1, 5, 5),
			st("BBB", 3, 0, 0),
			st("CCC", 1, 5, 6),
			st("DDD", 1, 6, 0),
		}

		Convey("When ordering", func() {
			out := ranking.Order(in)

			Convey("Then gold beats silver beats bronze", func() {
				So(codes(out), ShouldResemble, []string{"BBB", "DDD", "CCC", "AAA"})
				So(out[0].Rank, ShouldEqual, 1)
				So(out[3].Rank, ShouldEqual, 4)
			})

			Convey("Then adjacent rows are non-increasing", func() {
				for i := 1; i < len(out); i++ {
					So(ranking.Less(out[i], out[i-1]), ShouldBeFalse)
				}
			})

			Convey("Then the input is untouched", func() {
				So(in[0].Code, ShouldEqual, "AAA")
				So(in[0].Rank, ShouldEqual, 0)
			})
		})
	})

	Convey("Given tied standings", t, func() {
		in := []model.CountryStanding{st("XXX", 2, 1, 0), st("YYY", 2, 1, 0), st("ZZZ", 0, 0, 4), st("WWW", 2, 1, 1)}

		Convey("When ordering", func() {
			out := ranking.Order(in)

			Convey("Then ties keep input order and share a rank", func() {
				So(codes(out), ShouldResemble, []string{"WWW", "XXX", "YYY", "ZZZ"})
				So(out[1].Rank, ShouldEqual, 2)
				So(out[2].Rank, ShouldEqual, 2)
				So(out[3].Rank, ShouldEqual, 4)
				So(ranking.Tied(out[1], out[2]), ShouldBeTrue)
			})
		})
	})

	Convey("Given no standings", t, func() {
		So(len(ranking.Order(nil)), ShouldEqual, 0)
	})
}
