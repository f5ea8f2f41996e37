// Package extract turns fetched encyclopedia pages into medal standings and
// per-country medal events. Every extractor is heuristic: pages are only
// loosely structured, so the closed word lists that drive recognition live in
// Heuristics where they can be tested and extended on their own.
package extract

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/ryanmarc/olympic-dashboard/internal/domain/model"
)

// Resolver maps a raw country name to a registry entry.
type Resolver interface {
	Resolve(raw string) (model.CountryRegistryEntry, bool)
}

// Heuristics holds the recognition tables used by the country extractor.
type Heuristics struct {
	// SportNames are matched in order against cell text, by equality or
	// prefix, ignoring case. Longer names must precede their prefixes.
	SportNames []string
	// SportAliases collapses spelling variants onto a canonical name.
	SportAliases map[string]string
	// EventPattern recognises event-like cell text.
	EventPattern *regexp.Regexp
	// AthleteHrefExclusions are href fragments of links that never name an
	// athlete.
	AthleteHrefExclusions []string
	// BronzeStyleMarkers are extra style fragments that mean bronze.
	BronzeStyleMarkers []string
	// MaxEventLength bounds event text length, exclusive.
	MaxEventLength int
	// MinAthleteLength and MaxAthleteLength bound athlete link text, exclusive.
	MinAthleteLength int
	MaxAthleteLength int
	// UnknownEvent replaces a missing event name.
	UnknownEvent string
}

// DefaultHeuristics returns the tables tuned for winter games pages.
func DefaultHeuristics() Heuristics {
	return Heuristics{
		SportNames: []string{
			"Alpine skiing", "Biathlon", "Bobsled", "Bobsleigh", "Cross-country skiing",
			"Curling", "Figure skating", "Freestyle skiing", "Ice hockey",
			"Luge", "Nordic combined", "Short track speed skating", "Short track", "Skeleton",
			"Ski jumping", "Snowboarding", "Snowboard", "Speed skating",
		},
		SportAliases: map[string]string{
			"Bobsleigh":    "Bobsled",
			"Snowboarding": "Snowboard",
		},
		EventPattern: regexp.MustCompile(`(?i)men['’]?s|women['’]?s|mixed|team|individual|sprint|relay|slalom|downhill|super-g|giant|halfpipe|slopestyle|cross|pursuit|mass start|combined|moguls|aerials|big air|parallel|singles|doubles|pairs|ice dance|monobob|\d+\s*(m|km|g)`),
		AthleteHrefExclusions: []string{
			"File:", "_Olympics", "_at_", "_skiing", "_skating",
			"_curling", "_biathlon", "Figure_skating", "Ice_hockey",
		},
		BronzeStyleMarkers: []string{"#c96"},
		MaxEventLength:     100,
		MinAthleteLength:   3,
		MaxAthleteLength:   50,
		UnknownEvent:       "Unknown Event",
	}
}

// MatchSport returns the first sport name that text equals or starts with.
func (h Heuristics) MatchSport(text string) (string, bool) {
	lower := strings.ToLower(text)
	for _, s := range h.SportNames {
		if strings.HasPrefix(lower, strings.ToLower(s)) {
			return s, true
		}
	}
	return "", false
}

// Canonical maps a matched sport name onto its canonical spelling.
func (h Heuristics) Canonical(sport string) string {
	if c, ok := h.SportAliases[sport]; ok {
		return c
	}
	return sport
}

// CanonicalSports lists the sport names an emitted event may carry.
func (h Heuristics) CanonicalSports() []string {
	out := make([]string, 0, len(h.SportNames))
	for _, s := range h.SportNames {
		if _, alias := h.SportAliases[s]; alias {
			continue
		}
		out = append(out, s)
	}
	return out
}

// mentionsSport reports whether text contains any sport name.
func (h Heuristics) mentionsSport(text string) bool {
	lower := strings.ToLower(text)
	for _, s := range h.SportNames {
		if strings.Contains(lower, strings.ToLower(s)) {
			return true
		}
	}
	return false
}

func (h Heuristics) eventLength(text string) bool {
	n := utf8.RuneCountInString(text)
	return n > 0 && n < h.MaxEventLength
}

func (h Heuristics) athleteHref(href string) bool {
	if !strings.Contains(href, "/wiki/") {
		return false
	}
	for _, x := range h.AthleteHrefExclusions {
		if strings.Contains(href, x) {
			return false
		}
	}
	return true
}

func (h Heuristics) athleteLength(text string) bool {
	n := utf8.RuneCountInString(text)
	return n > h.MinAthleteLength && n < h.MaxAthleteLength
}
