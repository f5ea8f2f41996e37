package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/ryanmarc/olympic-dashboard/internal/domain/dedupe"
	"github.com/ryanmarc/olympic-dashboard/internal/domain/model"
)

const (
	standingsTables   = "table.wikitable, table.sortable"
	minStandingsCells = 4
)

// Standings extracts the medal table from a standings page. It returns the
// rows of the first medal table that yields at least one resolvable country,
// deduplicated by code in document order. An empty result means no such
// table exists on the page.
func Standings(doc *goquery.Document, reg Resolver) []model.CountryStanding {
	var out []model.CountryStanding
	doc.Find(standingsTables).EachWithBreak(func(_ int, table *goquery.Selection) bool {
		if !isMedalTable(table) {
			return true
		}
		rows := tableStandings(table, reg)
		if len(rows) == 0 {
			return true
		}
		out = dedupe.FirstByKey(rows, func(s model.CountryStanding) string { return s.Code })
		return false
	})
	return out
}

// isMedalTable classifies a table by its first row.
func isMedalTable(table *goquery.Selection) bool {
	header := table.Find("tr").First()
	if header.Length() == 0 {
		return false
	}
	text := strings.ToLower(visibleText(header))
	return (strings.Contains(text, "gold") || strings.Contains(text, "nation")) &&
		(strings.Contains(text, "total") || strings.Contains(text, "bronze"))
}

func tableStandings(table *goquery.Selection, reg Resolver) []model.CountryStanding {
	var out []model.CountryStanding
	table.Find("tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("th, td")
		if cells.Length() < minStandingsCells {
			return
		}
		name, at := countryCell(cells)
		if name == "" {
			return
		}
		gold, silver, bronze := medalCounts(cells, at)
		if gold+silver+bronze <= 0 {
			return
		}
		entry, ok := reg.Resolve(name)
		if !ok {
			return
		}
		out = append(out, model.NewStanding(entry, gold, silver, bronze))
	})
	return out
}

// countryCell finds the first cell holding a country link and returns the
// link text with the cell index. Empty and purely numeric cells are skipped.
func countryCell(cells *goquery.Selection) (string, int) {
	name, at := "", -1
	cells.EachWithBreak(func(i int, cell *goquery.Selection) bool {
		text := strings.TrimSpace(visibleText(cell))
		if text == "" || isNumeric(text) {
			return true
		}
		cell.Find(`a[href*="/wiki/"]`).EachWithBreak(func(_ int, a *goquery.Selection) bool {
			linkText := strings.TrimSpace(visibleText(a))
			if len([]rune(linkText)) > 2 && !isNumeric(linkText) && !strings.Contains(a.AttrOr("href", ""), "File:") {
				name = linkText
				return false
			}
			return true
		})
		if name != "" {
			at = i
			return false
		}
		return true
	})
	return name, at
}

// medalCounts reads gold, silver and bronze from the trailing cells. The last
// four cells are gold, silver, bronze and total, unless the country cell is
// itself fourth from the end, in which case the table has no total column.
// The literal total is never trusted.
func medalCounts(cells *goquery.Selection, countryAt int) (int, int, int) {
	n := cells.Length()
	first := n - 4
	if countryAt == first {
		first = n - 3
	}
	count := func(i int) int {
		return leadingInt(visibleText(cells.Eq(i)))
	}
	return count(first), count(first + 1), count(first + 2)
}
