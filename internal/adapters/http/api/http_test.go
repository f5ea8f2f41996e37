package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ryanmarc/olympic-dashboard/internal/adapters/http/api"
	service "github.com/ryanmarc/olympic-dashboard/internal/app"
	"github.com/ryanmarc/olympic-dashboard/internal/domain/model"
	"github.com/ryanmarc/olympic-dashboard/internal/domain/types"
	"github.com/ryanmarc/olympic-dashboard/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	_ = logger.Init()
}

type mockDeps struct {
	report    *model.Report
	reportErr error
	countries map[string]model.CountryDetail
	lastKey   string
	status    types.BuildStatus
}

func (m *mockDeps) Report(context.Context) (*model.Report, error) {
	if m.reportErr != nil {
		return nil, m.reportErr
	}
	return m.report, nil
}

func (m *mockDeps) Country(_ context.Context, key string) (model.CountryDetail, error) {
	m.lastKey = key
	if m.reportErr != nil {
		return model.CountryDetail{}, m.reportErr
	}
	d, ok := m.countries[strings.ToUpper(key)]
	if !ok {
		return model.CountryDetail{}, fmt.Errorf("lookup %q: %w", key, service.ErrCountryNotFound)
	}
	return d, nil
}

func (m *mockDeps) Status(context.Context) types.BuildStatus { return m.status }

type mockStats struct{}

func (mockStats) GetStats() map[string]any { return map[string]any{"started": true} }

func newMux(deps *mockDeps) *http.ServeMux {
	mux := http.NewServeMux()
	api.NewServer(deps, mockStats{}).Register(context.Background(), mux)
	return mux
}

func do(mux *http.ServeMux, method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, http.NoBody)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	return w
}

func sampleDeps() *mockDeps {
	nor := model.CountryStanding{Rank: 1, Name: "Norway", Code: "NOR", Page: "Norway", Gold: 2, Total: 2}
	return &mockDeps{
		report: &model.Report{
			IsLive:      true,
			DataSource:  model.DataSourceLive,
			TotalMedals: 2,
			Countries:   []model.CountryStanding{nor},
		},
		countries: map[string]model.CountryDetail{
			"NOR": {CountryStanding: nor, Athletes: []model.MedalRecord{}},
			"UNITED STATES": {
				CountryStanding: model.CountryStanding{Name: "United States", Code: "USA"},
			},
		},
	}
}

func TestMedalsEndpoints(t *testing.T) {
	Convey("Given an API server over a built report", t, func() {
		deps := sampleDeps()
		mux := newMux(deps)

		Convey("When GET /api/medals", func() {
			w := do(mux, http.MethodGet, "/api/medals")

			Convey("Then the report is returned", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(w.Header().Get("Content-Type"), ShouldEqual, "application/json; charset=utf-8")
				So(w.Header().Get("Access-Control-Allow-Origin"), ShouldEqual, "*")

				var body map[string]any
				So(json.Unmarshal(w.Body.Bytes(), &body), ShouldBeNil)
				So(body["isLive"], ShouldEqual, true)
				So(body["dataSource"], ShouldEqual, "Wikipedia")
				So(body["totalMedals"], ShouldEqual, 2)
				countries := body["countries"].([]any)
				So(countries[0].(map[string]any)["wikiName"], ShouldEqual, "Norway")
			})
		})

		Convey("When POST /api/medals", func() {
			w := do(mux, http.MethodPost, "/api/medals")
			So(w.Code, ShouldEqual, http.StatusNotFound)
		})

		Convey("When a browser sends a preflight request", func() {
			w := do(mux, http.MethodOptions, "/api/medals")
			So(w.Code, ShouldEqual, http.StatusNoContent)
			So(w.Header().Get("Access-Control-Allow-Methods"), ShouldContainSubstring, "GET")
		})

		Convey("When GET /api/medals/{code}", func() {
			w := do(mux, http.MethodGet, "/api/medals/nor")

			Convey("Then the country detail is returned", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				var body map[string]any
				So(json.Unmarshal(w.Body.Bytes(), &body), ShouldBeNil)
				So(body["code"], ShouldEqual, "NOR")
				So(body["rank"], ShouldEqual, 1)
				So(deps.lastKey, ShouldEqual, "nor")
			})
		})

		Convey("When the country is given by an escaped name", func() {
			w := do(mux, http.MethodGet, "/api/medals/United%20States")
			So(w.Code, ShouldEqual, http.StatusOK)
			So(deps.lastKey, ShouldEqual, "United States")
		})

		Convey("When the country is unknown", func() {
			w := do(mux, http.MethodGet, "/api/medals/XYZ")

			Convey("Then 404 is returned", func() {
				So(w.Code, ShouldEqual, http.StatusNotFound)
				var body map[string]string
				So(json.Unmarshal(w.Body.Bytes(), &body), ShouldBeNil)
				So(body["code"], ShouldEqual, "not_found")
			})
		})

		Convey("When the country path is malformed", func() {
			So(do(mux, http.MethodGet, "/api/medals/").Code, ShouldEqual, http.StatusBadRequest)
			So(do(mux, http.MethodGet, "/api/medals/NOR/extra").Code, ShouldEqual, http.StatusBadRequest)
		})
	})

	Convey("Given an API server whose report cannot be built", t, func() {
		deps := sampleDeps()
		deps.reportErr = fmt.Errorf("build: %w", service.ErrReportUnavailable)
		mux := newMux(deps)

		Convey("When GET /api/medals", func() {
			w := do(mux, http.MethodGet, "/api/medals")

			Convey("Then 503 carries an empty report marked unavailable", func() {
				So(w.Code, ShouldEqual, http.StatusServiceUnavailable)
				var body map[string]any
				So(json.Unmarshal(w.Body.Bytes(), &body), ShouldBeNil)
				So(body["isLive"], ShouldEqual, false)
				So(body["dataSource"], ShouldEqual, "Unavailable")
				So(body["gameStatus"], ShouldEqual, "Data unavailable")
				So(body["error"], ShouldEqual, "Could not fetch data from Wikipedia")
				So(body["countries"], ShouldResemble, []any{})
			})
		})

		Convey("When GET /api/medals/{code}", func() {
			w := do(mux, http.MethodGet, "/api/medals/NOR")
			So(w.Code, ShouldEqual, http.StatusServiceUnavailable)
		})

		Convey("When an unexpected error occurs", func() {
			deps.reportErr = errors.New("disk on fire")
			w := do(mux, http.MethodGet, "/api/medals/NOR")
			So(w.Code, ShouldEqual, http.StatusInternalServerError)
		})
	})
}

func TestOperationalEndpoints(t *testing.T) {
	Convey("Given an API server", t, func() {
		deps := sampleDeps()
		mux := newMux(deps)

		Convey("Then /api/progress reports an idle service", func() {
			w := do(mux, http.MethodGet, "/api/progress")
			So(w.Code, ShouldEqual, http.StatusOK)
			So(strings.TrimSpace(w.Body.String()), ShouldEqual, `{"building":false}`)
		})

		Convey("Then /api/progress reports a running build", func() {
			p := types.CountryProgress("Norway", 2, 7)
			deps.status = types.BuildStatus{Building: true, Progress: &p}
			w := do(mux, http.MethodGet, "/api/progress")

			var body types.BuildStatus
			So(json.Unmarshal(w.Body.Bytes(), &body), ShouldBeNil)
			So(body.Building, ShouldBeTrue)
			So(body.Progress.Message, ShouldEqual, "Fetching Norway...")
			So(body.Progress.Current, ShouldEqual, 2)
		})

		Convey("Then /healthz answers ok", func() {
			w := do(mux, http.MethodGet, "/healthz")
			So(w.Code, ShouldEqual, http.StatusOK)
			So(w.Body.String(), ShouldContainSubstring, `"status":"ok"`)
		})

		Convey("Then /stats returns the provider's map", func() {
			w := do(mux, http.MethodGet, "/stats")
			So(w.Code, ShouldEqual, http.StatusOK)
			So(w.Body.String(), ShouldContainSubstring, `"started":true`)
		})

		Convey("Then /stats without a provider is unavailable", func() {
			bare := http.NewServeMux()
			api.NewServer(deps, nil).Register(context.Background(), bare)
			w := do(bare, http.MethodGet, "/stats")
			So(w.Code, ShouldEqual, http.StatusServiceUnavailable)
			So(w.Body.String(), ShouldContainSubstring, `"code":"unavailable"`)
		})

		Convey("Then /metrics exposes recorded requests", func() {
			_ = do(mux, http.MethodGet, "/api/medals")
			w := do(mux, http.MethodGet, "/metrics")
			So(w.Code, ShouldEqual, http.StatusOK)
			So(w.Body.String(), ShouldContainSubstring, "medals_")
			So(w.Body.String(), ShouldContainSubstring, `endpoint="medals"`)
		})
	})
}
