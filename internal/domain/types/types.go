// Package types contains common types used across the application.
package types

import "fmt"

// Phase names a stage of a report build.
type Phase string

// Build phases, in order.
const (
	PhaseStandings Phase = "standings"
	PhaseCountries Phase = "countries"
)

// Progress is an advisory notification emitted while a report is built.
type Progress struct {
	Phase   Phase  `json:"phase"`
	Message string `json:"message"`
	Current int    `json:"current,omitempty"`
	Total   int    `json:"total,omitempty"`
}

// StandingsProgress announces the start of the standings phase.
func StandingsProgress() Progress {
	return Progress{Phase: PhaseStandings, Message: "Fetching medal standings..."}
}

// CountryProgress announces the fetch of country i (1-based) of total.
func CountryProgress(name string, i, total int) Progress {
	return Progress{
		Phase:   PhaseCountries,
		Message: fmt.Sprintf("Fetching %s...", name),
		Current: i,
		Total:   total,
	}
}

// ProgressFunc receives progress notifications. It must not block.
type ProgressFunc func(Progress)

// BuildStatus reports whether a build is running and how far it got.
type BuildStatus struct {
	Building bool      `json:"building"`
	Progress *Progress `json:"progress,omitempty"`
}
