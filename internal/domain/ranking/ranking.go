// Package ranking orders medal standings the way medal tables do: gold first,
// then silver, then bronze.
package ranking

import (
	"sort"

	"github.com/ryanmarc/olympic-dashboard/internal/domain/model"
)

// Less reports whether a ranks ahead of b.
func Less(a, b model.CountryStanding) bool {
	for _, m := range model.MedalTypes {
		if a.Count(m) != b.Count(m) {
			return a.Count(m) > b.Count(m)
		}
	}
	return false
}

// Tied reports whether a and b hold identical gold, silver and bronze counts.
func Tied(a, b model.CountryStanding) bool {
	return !Less(a, b) && !Less(b, a)
}

// Order returns a ranked copy of standings. Ties keep their input order and
// share a rank; the next distinct row takes its position number (1, 1, 3).
func Order(standings []model.CountryStanding) []model.CountryStanding {
	out := make([]model.CountryStanding, len(standings))
	copy(out, standings)
	sort.SliceStable(out, func(i, j int) bool { return Less(out[i], out[j]) })
	assignRanksWithTies(out)
	return out
}

func assignRanksWithTies(standings []model.CountryStanding) {
	for i := range standings {
		if i > 0 && Tied(standings[i], standings[i-1]) {
			standings[i].Rank = standings[i-1].Rank
			continue
		}
		standings[i].Rank = i + 1
	}
}
