// Package model contains domain models passed between layers.
package model

import (
	"strings"
	"unicode"
)

// MedalType is one of the three medal colours.
type MedalType string

// Medal colours, in precedence order.
const (
	Gold   MedalType = "gold"
	Silver MedalType = "silver"
	Bronze MedalType = "bronze"
)

// MedalTypes lists the colours in the order they are checked and ranked.
var MedalTypes = []MedalType{Gold, Silver, Bronze} //nolint:gochecknoglobals // fixed enumeration

// NoAthlete is shown when a medal row names nobody we could recognise.
const NoAthlete = "TBD"

// CountryRegistryEntry is one canonical country known to the registry.
type CountryRegistryEntry struct {
	Name string // canonical display name
	Code string // three-letter committee code
	Flag string // display mark
	Page string // page identifier for the country's participation page
}

// CountryStanding is one row of the medal table.
type CountryStanding struct {
	Rank   int    `json:"rank"`
	Name   string `json:"name"`
	Code   string `json:"code"`
	Flag   string `json:"flag"`
	Page   string `json:"wikiName"`
	Gold   int    `json:"gold"`
	Silver int    `json:"silver"`
	Bronze int    `json:"bronze"`
	Total  int    `json:"total"`
}

// NewStanding builds a standing for entry with total derived from the counts.
func NewStanding(entry CountryRegistryEntry, gold, silver, bronze int) CountryStanding {
	return CountryStanding{
		Name:   entry.Name,
		Code:   entry.Code,
		Flag:   entry.Flag,
		Page:   entry.Page,
		Gold:   gold,
		Silver: silver,
		Bronze: bronze,
		Total:  gold + silver + bronze,
	}
}

// Count returns the tally for one medal colour.
func (s CountryStanding) Count(m MedalType) int {
	switch m {
	case Gold:
		return s.Gold
	case Silver:
		return s.Silver
	case Bronze:
		return s.Bronze
	}
	return 0
}

// MedalEvent is one medal won by a country in one event.
type MedalEvent struct {
	Sport       string
	Event       string
	Athletes    []string
	Medal       MedalType
	CountryCode string
	CountryFlag string
}

// Athlete renders the athlete group for display.
func (e MedalEvent) Athlete() string {
	if len(e.Athletes) == 0 {
		return NoAthlete
	}
	return strings.Join(e.Athletes, ", ")
}

// Key identifies a medal event within one country page.
func (e MedalEvent) Key() string {
	return e.Sport + "\x00" + e.Event + "\x00" + string(e.Medal)
}

// RecordID derives the stable record key from sport, event and medal.
func (e MedalEvent) RecordID() string {
	id := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return '-'
		}
		return r
	}, e.Sport+"-"+e.Event+"-"+string(e.Medal))
	return strings.ToLower(id)
}
