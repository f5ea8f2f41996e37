package service

import (
	"sort"

	"github.com/ryanmarc/olympic-dashboard/internal/domain/dedupe"
	"github.com/ryanmarc/olympic-dashboard/internal/domain/model"
)

// accumulator folds per-country medal events into report sections.
type accumulator struct {
	date    string
	records []model.MedalRecord
	sports  map[string]*model.SportAggregate
	order   []string
	events  *dedupe.Set
}

func newAccumulator(date string) *accumulator {
	return &accumulator{
		date:    date,
		records: []model.MedalRecord{},
		sports:  map[string]*model.SportAggregate{},
		events:  dedupe.NewSet(),
	}
}

func (a *accumulator) add(country model.CountryStanding, events []model.MedalEvent) {
	for _, ev := range events {
		athletes := ev.Athletes
		if athletes == nil {
			athletes = []string{}
		}
		a.records = append(a.records, model.MedalRecord{
			ID:          ev.RecordID(),
			Name:        ev.Athlete(),
			Athletes:    athletes,
			Country:     country.Name,
			CountryCode: ev.CountryCode,
			Flag:        ev.CountryFlag,
			Sport:       ev.Sport,
			Event:       ev.Event,
			Medal:       ev.Medal,
			Date:        a.date,
		})

		agg, ok := a.sports[ev.Sport]
		if !ok {
			agg = &model.SportAggregate{Name: ev.Sport, Events: []model.SportEvent{}}
			a.sports[ev.Sport] = agg
			a.order = append(a.order, ev.Sport)
		}
		agg.Add(ev.Medal)

		if a.events.SeenAndRecord(ev.Key()) {
			continue
		}
		agg.Events = append(agg.Events, model.SportEvent{
			Name:    ev.Event,
			Medal:   ev.Medal,
			Athlete: ev.Athlete(),
			Country: country.Name,
			Flag:    ev.CountryFlag,
		})
	}
}

// sportsByTotal lists sports by medal total, keeping first-seen order on ties.
func (a *accumulator) sportsByTotal() []model.SportAggregate {
	out := make([]model.SportAggregate, 0, len(a.order))
	for _, name := range a.order {
		out = append(out, *a.sports[name])
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Total > out[j].Total })
	return out
}

// firstGold returns up to n gold records in accumulation order.
func firstGold(records []model.MedalRecord, n int) []model.MedalRecord {
	out := []model.MedalRecord{}
	for _, r := range records {
		if len(out) == n {
			break
		}
		if r.Medal == model.Gold {
			out = append(out, r)
		}
	}
	return out
}

// firstN returns up to n records in accumulation order.
func firstN(records []model.MedalRecord, n int) []model.MedalRecord {
	out := make([]model.MedalRecord, min(n, len(records)))
	copy(out, records)
	return out
}
