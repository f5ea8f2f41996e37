package model

import (
	"strings"
	"time"
)

// Report metadata values.
const (
	DataSourceLive        = "Wikipedia"
	DataSourceUnavailable = "Unavailable"
	StatusUnavailable     = "Data unavailable"
	UnavailableMessage    = "Could not fetch data from Wikipedia"
)

// MedalRecord is a MedalEvent placed in a report.
type MedalRecord struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Athletes    []string  `json:"athletes"`
	Country     string    `json:"country"`
	CountryCode string    `json:"countryCode"`
	Flag        string    `json:"flag"`
	Sport       string    `json:"sport"`
	Event       string    `json:"event"`
	Medal       MedalType `json:"medal"`
	Date        string    `json:"date"`
}

// SportEvent is one distinct (event, medal) pair inside a sport.
type SportEvent struct {
	Name    string    `json:"name"`
	Medal   MedalType `json:"medal"`
	Athlete string    `json:"athlete"`
	Country string    `json:"country"`
	Flag    string    `json:"flag"`
}

// SportAggregate tallies medals per sport.
type SportAggregate struct {
	Name   string       `json:"name"`
	Gold   int          `json:"gold"`
	Silver int          `json:"silver"`
	Bronze int          `json:"bronze"`
	Total  int          `json:"total"`
	Events []SportEvent `json:"events"`
}

// Add counts one medal of colour m.
func (a *SportAggregate) Add(m MedalType) {
	switch m {
	case Gold:
		a.Gold++
	case Silver:
		a.Silver++
	case Bronze:
		a.Bronze++
	default:
		return
	}
	a.Total++
}

// DailyProgressionEntry is one day of the synthetic timeline.
type DailyProgressionEntry struct {
	Date            string `json:"date"`
	Day             int    `json:"day"`
	MedalsAwarded   int    `json:"medalsAwarded"`
	CumulativeTotal int    `json:"cumulativeTotal"`
}

// Report is the aggregate payload served to dashboards.
type Report struct {
	LastUpdated      time.Time               `json:"lastUpdated"`
	BuildID          string                  `json:"buildId,omitempty"`
	IsLive           bool                    `json:"isLive"`
	DataSource       string                  `json:"dataSource"`
	GameStatus       string                  `json:"gameStatus"`
	GameDay          int                     `json:"gameDay"`
	Error            string                  `json:"error,omitempty"`
	TotalMedals      int                     `json:"totalMedals"`
	Countries        []CountryStanding       `json:"countries"`
	Athletes         []MedalRecord           `json:"athletes"`
	Sports           []SportAggregate        `json:"sports"`
	DailyProgression []DailyProgressionEntry `json:"dailyProgression"`
	TopPerformers    []MedalRecord           `json:"topPerformers"`
	RecentMedals     []MedalRecord           `json:"recentMedals"`
}

// UnavailableReport is served when no standings could be extracted.
func UnavailableReport(now time.Time) Report {
	return Report{
		LastUpdated:      now,
		IsLive:           false,
		DataSource:       DataSourceUnavailable,
		GameStatus:       StatusUnavailable,
		Error:            UnavailableMessage,
		Countries:        []CountryStanding{},
		Athletes:         []MedalRecord{},
		Sports:           []SportAggregate{},
		DailyProgression: []DailyProgressionEntry{},
		TopPerformers:    []MedalRecord{},
		RecentMedals:     []MedalRecord{},
	}
}

// CountryDetail is one country's standing together with its records.
// SportOrder lists the keys of MedalsBySport in order of first appearance.
type CountryDetail struct {
	CountryStanding
	Athletes      []MedalRecord            `json:"athletes"`
	SportOrder    []string                 `json:"sportOrder"`
	MedalsBySport map[string][]MedalRecord `json:"medalsBySport"`
	MedalsByDay   []DailyProgressionEntry  `json:"medalsByDay"`
}

// ResolveCountry finds a standing by code or canonical name, ignoring case,
// and gathers its records.
func ResolveCountry(report *Report, codeOrName string) (CountryDetail, bool) {
	if report == nil {
		return CountryDetail{}, false
	}
	key := strings.TrimSpace(codeOrName)
	if key == "" {
		return CountryDetail{}, false
	}

	var standing *CountryStanding
	for i := range report.Countries {
		c := &report.Countries[i]
		if strings.EqualFold(c.Code, key) || strings.EqualFold(c.Name, key) {
			standing = c
			break
		}
	}
	if standing == nil {
		return CountryDetail{}, false
	}

	detail := CountryDetail{
		CountryStanding: *standing,
		Athletes:        []MedalRecord{},
		SportOrder:      []string{},
		MedalsBySport:   map[string][]MedalRecord{},
		MedalsByDay:     report.DailyProgression,
	}
	for _, rec := range report.Athletes {
		if rec.CountryCode != standing.Code && rec.Country != standing.Name {
			continue
		}
		detail.Athletes = append(detail.Athletes, rec)
		if _, ok := detail.MedalsBySport[rec.Sport]; !ok {
			detail.SportOrder = append(detail.SportOrder, rec.Sport)
		}
		detail.MedalsBySport[rec.Sport] = append(detail.MedalsBySport[rec.Sport], rec)
	}
	return detail, true
}
