package extract

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/ryanmarc/olympic-dashboard/internal/domain/model"
)

const minFallbackCells = 3

// ParticipationPattern matches links to a country's page for edition, for
// example /wiki/Norway_at_the_2026_Winter_Olympics, capturing the country.
func ParticipationPattern(edition string) *regexp.Regexp {
	return regexp.MustCompile(`/wiki/(.+?)_at_the_` + regexp.QuoteMeta(edition))
}

// FromEventList rebuilds standings from a list of medal winners by counting
// participation-page links per country. Medal colour comes from the link's
// cell style first, then from the row text. Countries left with no medals are
// dropped.
func FromEventList(doc *goquery.Document, reg Resolver, edition string) map[string]model.CountryStanding {
	pattern := ParticipationPattern(edition)
	tallies := map[string]*model.CountryStanding{}

	doc.Find("table.wikitable tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < minFallbackCells {
			return
		}
		rowText := strings.ToLower(visibleText(row))
		cells.Each(func(_ int, cell *goquery.Selection) {
			style := lowerAttr(cell, "style")
			cell.Find(`a[href*="/wiki/"]`).Each(func(_ int, a *goquery.Selection) {
				entry, ok := participant(a.AttrOr("href", ""), pattern, reg)
				if !ok {
					return
				}
				t, seen := tallies[entry.Code]
				if !seen {
					s := model.NewStanding(entry, 0, 0, 0)
					t = &s
					tallies[entry.Code] = t
				}
				medal, found := keywordMedal(style)
				if !found {
					medal, found = keywordMedal(rowText)
				}
				if found {
					addMedal(t, medal)
				}
			})
		})
	})

	out := make(map[string]model.CountryStanding, len(tallies))
	for code, t := range tallies {
		s := *t
		s.Total = s.Gold + s.Silver + s.Bronze
		if s.Total == 0 {
			continue
		}
		out[code] = s
	}
	return out
}

func participant(href string, pattern *regexp.Regexp, reg Resolver) (model.CountryRegistryEntry, bool) {
	m := pattern.FindStringSubmatch(href)
	if m == nil {
		return model.CountryRegistryEntry{}, false
	}
	token := m[1]
	if unescaped, err := url.PathUnescape(token); err == nil {
		token = unescaped
	}
	return reg.Resolve(strings.ReplaceAll(token, "_", " "))
}

// keywordMedal returns the first medal colour named in text.
func keywordMedal(text string) (model.MedalType, bool) {
	for _, m := range model.MedalTypes {
		if strings.Contains(text, string(m)) {
			return m, true
		}
	}
	return "", false
}

func addMedal(s *model.CountryStanding, m model.MedalType) {
	switch m {
	case model.Gold:
		s.Gold++
	case model.Silver:
		s.Silver++
	case model.Bronze:
		s.Bronze++
	}
}
