package extract_test

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/ryanmarc/olympic-dashboard/internal/domain/model"
	"github.com/ryanmarc/olympic-dashboard/internal/domain/registry"
)

func mustDoc(body string) *goquery.Document {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader("<html><body>" + body + "</body></html>"))
	if err != nil {
		panic(err)
	}
	return doc
}

func defaultRegistry() *registry.Registry {
	return registry.Default()
}

func norway() model.CountryStanding {
	e, _ := registry.Default().Resolve("Norway")
	return model.NewStanding(e, 1, 1, 1)
}
