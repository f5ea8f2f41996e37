package scrape

import (
	"fmt"

	"github.com/ryanmarc/olympic-dashboard/internal/domain/model"
)

// Verify checks a built report for internal consistency and returns one
// message per problem found.
func Verify(report *model.Report) []string {
	if report == nil {
		return []string{"report is nil"}
	}

	var issues []string
	sum := 0
	known := make(map[string]bool, len(report.Countries))
	for i, c := range report.Countries {
		sum += c.Total
		known[c.Code] = true
		if c.Total != c.Gold+c.Silver+c.Bronze {
			issues = append(issues, fmt.Sprintf("%s: total %d does not match %d+%d+%d",
				c.Code, c.Total, c.Gold, c.Silver, c.Bronze))
		}
		if i > 0 && c.Rank < report.Countries[i-1].Rank {
			issues = append(issues, fmt.Sprintf("%s: rank %d after rank %d",
				c.Code, c.Rank, report.Countries[i-1].Rank))
		}
	}
	if sum != report.TotalMedals {
		issues = append(issues, fmt.Sprintf("total medals %d does not match country sum %d",
			report.TotalMedals, sum))
	}

	perCountry := make(map[string]int)
	for _, r := range report.Athletes {
		if !known[r.CountryCode] {
			issues = append(issues, fmt.Sprintf("record %s: unknown country %q", r.ID, r.CountryCode))
			continue
		}
		perCountry[r.CountryCode]++
	}
	for _, c := range report.Countries {
		if n := perCountry[c.Code]; n > c.Total {
			issues = append(issues, fmt.Sprintf("%s: %d records for %d medals", c.Code, n, c.Total))
		}
	}

	if n := len(report.DailyProgression); n > 0 {
		if last := report.DailyProgression[n-1].CumulativeTotal; last > report.TotalMedals {
			issues = append(issues, fmt.Sprintf("timeline ends at %d, above total %d", last, report.TotalMedals))
		}
	}
	return issues
}
