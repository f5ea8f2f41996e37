// Package progression synthesizes a per-day medal timeline. The timeline is
// not evidence of when medals were won; it spreads the known total evenly
// over the days elapsed since the opening date.
package progression

import (
	"math"
	"time"

	"github.com/ryanmarc/olympic-dashboard/internal/domain/model"
)

// Default timeline constants.
const (
	DefaultMaxDays = 19
	dateLayout     = "2006-01-02"
	day            = 24 * time.Hour
)

// DayNumber is the 1-based competition day of now, counting partial days as
// whole ones. Before start it is zero or negative.
func DayNumber(start, now time.Time) int {
	elapsed := now.Sub(start)
	return int(math.Ceil(float64(elapsed)/float64(day))) + 1
}

// Synthesize spreads total across the elapsed days and returns at most
// maxDays entries along with the current day number. Every day before the
// final one receives ceil(total/day) medals, capped by what is left; the
// final day receives the remainder, so cumulative totals never exceed total.
func Synthesize(start, now time.Time, total, maxDays int) ([]model.DailyProgressionEntry, int) {
	dayNum := DayNumber(start, now)
	if maxDays <= 0 {
		maxDays = DefaultMaxDays
	}

	perDay := ceilDiv(total, max(dayNum, 1))
	last := min(dayNum, maxDays)
	entries := make([]model.DailyProgressionEntry, 0, max(last, 0))

	cumulative := 0
	for i := 1; i <= last; i++ {
		awarded := min(perDay, total-cumulative)
		if i == dayNum {
			awarded = total - cumulative
		}
		cumulative += awarded
		entries = append(entries, model.DailyProgressionEntry{
			Date:            start.AddDate(0, 0, i-1).Format(dateLayout),
			Day:             i,
			MedalsAwarded:   awarded,
			CumulativeTotal: cumulative,
		})
	}
	return entries, dayNum
}

// ParseStart parses a YYYY-MM-DD opening date as UTC midnight.
func ParseStart(s string) (time.Time, error) {
	return time.ParseInLocation(dateLayout, s, time.UTC)
}

func ceilDiv(a, b int) int {
	if a <= 0 {
		return 0
	}
	return (a + b - 1) / b
}
