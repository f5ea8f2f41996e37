package extract

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"

	"github.com/ryanmarc/olympic-dashboard/internal/domain/dedupe"
	"github.com/ryanmarc/olympic-dashboard/internal/domain/model"
)

// inheritedSportCell is the virtual position of a sport carried in from a
// row span; the spanned column sits before the row's first cell.
const inheritedSportCell = -1

// rowMedal is what one table row yields while it is being scanned.
type rowMedal struct {
	sport     string
	sportCell int
	event     string
	athletes  []string
	medal     model.MedalType
}

// CountryMedals extracts medal events from a country's participation page.
// Rows without both a sport and a medal colour are skipped, and events are
// deduplicated by sport, event and medal.
func CountryMedals(doc *goquery.Document, standing model.CountryStanding, h Heuristics) []model.MedalEvent {
	var events []model.MedalEvent
	doc.Find("table.wikitable").Each(func(_ int, table *goquery.Selection) {
		var carry sportCarry
		table.Find("tr").Each(func(i int, row *goquery.Selection) {
			if i == 0 {
				return
			}
			r, ok := scanRow(row, &carry, h)
			if !ok {
				return
			}
			events = append(events, model.MedalEvent{
				Sport:       h.Canonical(r.sport),
				Event:       r.event,
				Athletes:    r.athletes,
				Medal:       r.medal,
				CountryCode: standing.Code,
				CountryFlag: standing.Flag,
			})
		})
	})
	return dedupe.FirstByKey(events, model.MedalEvent.Key)
}

func scanRow(row *goquery.Selection, carry *sportCarry, h Heuristics) (rowMedal, bool) {
	cells := row.Find("td")
	if cells.Length() == 0 {
		return rowMedal{}, false
	}

	r := rowMedal{sportCell: inheritedSportCell - 1}
	if sport, ok := carry.take(); ok {
		r.sport = sport
		r.sportCell = inheritedSportCell
	}

	seen := map[string]bool{}
	cells.Each(func(i int, cell *goquery.Selection) {
		text := cellText(cell)

		if sport, ok := h.MatchSport(text); ok && r.sport == "" {
			r.sport = sport
			r.sportCell = i
			carry.begin(sport, rowSpan(cell))
		} else if r.event == "" && h.eventLength(text) && !isMedalWord(text) {
			if h.EventPattern.MatchString(text) || (r.sport != "" && i == r.sportCell+1) {
				r.event = text
			}
		}

		cell.Find("a").Each(func(_ int, a *goquery.Selection) {
			name := strings.TrimSpace(visibleText(a))
			if !h.athleteHref(a.AttrOr("href", "")) || !startsUpper(name) || !h.athleteLength(name) {
				return
			}
			if seen[name] || h.mentionsSport(name) {
				return
			}
			seen[name] = true
			r.athletes = append(r.athletes, name)
		})

		if r.medal == "" {
			r.medal = cellMedal(cell, text, h)
		}
	})

	if r.medal == "" {
		r.medal = imageMedal(row)
	}
	if r.sport == "" || r.medal == "" {
		return rowMedal{}, false
	}
	if r.event == "" {
		r.event = h.UnknownEvent
	}
	return r, true
}

// cellMedal reads a medal colour from a cell's style, bgcolor or class
// attributes, or from text that is exactly a colour name.
func cellMedal(cell *goquery.Selection, text string, h Heuristics) model.MedalType {
	style := lowerAttr(cell, "style")
	bg := lowerAttr(cell, "bgcolor")
	class := lowerAttr(cell, "class")
	lower := strings.ToLower(text)
	for _, m := range model.MedalTypes {
		kw := string(m)
		if strings.Contains(style, kw) || strings.Contains(bg, kw) || strings.Contains(class, kw) || lower == kw {
			return m
		}
		if m == model.Bronze {
			for _, marker := range h.BronzeStyleMarkers {
				if strings.Contains(style, marker) {
					return m
				}
			}
		}
	}
	return ""
}

// imageMedal looks for a medal icon anywhere in the row, gold first.
func imageMedal(row *goquery.Selection) model.MedalType {
	imgs := row.Find("img")
	for _, m := range model.MedalTypes {
		kw := string(m)
		found := false
		imgs.EachWithBreak(func(_ int, img *goquery.Selection) bool {
			found = strings.Contains(lowerAttr(img, "alt"), kw) || strings.Contains(lowerAttr(img, "src"), kw)
			return !found
		})
		if found {
			return m
		}
	}
	return ""
}

// isMedalWord reports whether text is just a medal colour, as in a medal
// column, which never names an event.
func isMedalWord(text string) bool {
	for _, m := range model.MedalTypes {
		if strings.EqualFold(text, string(m)) {
			return true
		}
	}
	return false
}

func startsUpper(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return r != utf8.RuneError && unicode.IsUpper(r)
}
