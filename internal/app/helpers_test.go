package service_test

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/ryanmarc/olympic-dashboard/internal/adapters/mq/worker"
	"github.com/ryanmarc/olympic-dashboard/internal/adapters/wiki"
	"github.com/ryanmarc/olympic-dashboard/pkg/logger"
)

func init() {
	if err := logger.Init(); err != nil {
		panic(err)
	}
}

const standingsPage = `
<table class="wikitable sortable">
<tr><th>Rank</th><th>Nation</th><th>Gold</th><th>Silver</th><th>Bronze</th><th>Total</th></tr>
<tr><td>1</td><th><a href="/wiki/Germany_at_the_2026_Winter_Olympics">Germany</a></th><td>1</td><td>1</td><td>0</td><td>2</td></tr>
<tr><td>2</td><th><a href="/wiki/Norway_at_the_2026_Winter_Olympics">Norway</a></th><td>2</td><td>0</td><td>0</td><td>2</td></tr>
<tr><td>3</td><th><a href="/wiki/Italy_at_the_2026_Winter_Olympics">Italy</a></th><td>1</td><td>1</td><td>0</td><td>2</td></tr>
</table>`

const norwayPage = `
<table class="wikitable">
<tr><th>Sport</th><th>Event</th><th>Athlete</th><th>Medal</th></tr>
<tr>
 <td rowspan="2"><a href="/wiki/Biathlon_at_the_2026_Winter_Olympics">Biathlon</a></td>
 <td>Women's sprint</td>
 <td><a href="/wiki/Jane_Doe">Jane Doe</a></td>
 <td style="background:gold">1</td>
</tr>
<tr>
 <td>Women's pursuit</td>
 <td><a href="/wiki/Jane_Doe">Jane Doe</a></td>
 <td style="background-color:#C96">3</td>
</tr>
</table>`

const germanyPage = `
<table class="wikitable">
<tr><th>Sport</th><th>Event</th><th>Athlete</th><th>Medal</th></tr>
<tr><td>Luge</td><td>Men's singles</td><td><a href="/wiki/Max_Muster">Max Muster</a></td><td style="background:gold">1</td></tr>
</table>`

const noTablesPage = `<p>The medal table will be published when the games begin.</p>`

const winnersPage = `
<table class="wikitable">
<tr><th>Event</th><th>Gold</th><th>Silver</th><th>Bronze</th></tr>
<tr>
 <td>Men's downhill</td>
 <td style="background:gold"><a href="/wiki/Austria_at_the_2026_Winter_Olympics">Austria</a></td>
 <td style="background:silver"><a href="/wiki/Switzerland_at_the_2026_Winter_Olympics">Switzerland</a></td>
 <td style="background:bronze"><a href="/wiki/Switzerland_at_the_2026_Winter_Olympics">Switzerland</a></td>
</tr>
</table>`

// journal records fetches and sleeps in the order they happen.
type journal struct {
	mu    sync.Mutex
	steps []string
}

func (j *journal) add(step string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.steps = append(j.steps, step)
}

func (j *journal) Steps() []string {
	j.mu.Lock()
	defer j.mu.Unlock()
	out := make([]string, len(j.steps))
	copy(out, j.steps)
	return out
}

func (j *journal) Sleep(ctx context.Context, _ time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	j.add("sleep")
	return nil
}

// fakeFetcher serves canned pages; unknown pages fail like a missing article.
type fakeFetcher struct {
	pages   map[string]string
	journal *journal
	onFetch func(page string)
}

func (f *fakeFetcher) Fetch(_ context.Context, page string) (*goquery.Document, error) {
	f.journal.add("fetch:" + page)
	if f.onFetch != nil {
		f.onFetch(page)
	}
	body, ok := f.pages[page]
	if !ok {
		return nil, &wiki.FetchError{Page: page, Err: wiki.ErrAPI}
	}
	return goquery.NewDocumentFromReader(strings.NewReader("<html><body>" + body + "</body></html>"))
}

func newFake(pages map[string]string) (*fakeFetcher, *journal) {
	j := &journal{}
	return &fakeFetcher{pages: pages, journal: j}, j
}

func fixedClock() time.Time {
	return time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)
}

func pacedBy(j *journal) *worker.Sequencer {
	return worker.NewSequencer(worker.WithSleeper(j), worker.WithDelay(time.Second))
}
