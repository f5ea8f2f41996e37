// Package wiki fetches rendered encyclopedia pages through the MediaWiki
// parse API and hands them out as navigable documents.
package wiki

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"golang.org/x/net/html"

	"github.com/ryanmarc/olympic-dashboard/pkg/logger"
)

// Fetcher loads one page as a document tree.
type Fetcher interface {
	Fetch(ctx context.Context, page string) (*goquery.Document, error)
}

// Client is a Fetcher backed by the MediaWiki action API. It never retries.
type Client struct {
	http      *resty.Client
	apiURL    string
	userAgent string
	timeout   time.Duration
	log       logger.Logger
}

type parseResponse struct {
	Parse *struct {
		Title string `json:"title"`
		Text  struct {
			HTML string `json:"*"`
		} `json:"text"`
	} `json:"parse"`
	Error *struct {
		Code string `json:"code"`
		Info string `json:"info"`
	} `json:"error"`
}

// NewClient builds a Client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		apiURL:    DefaultAPIURL,
		userAgent: DefaultUserAgent,
		timeout:   DefaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.log == nil {
		c.log = logger.Get().Named("wiki")
	}

	c.http = resty.New().
		SetTimeout(c.timeout).
		SetRetryCount(0).
		SetHeader("User-Agent", c.userAgent).
		SetHeader("Accept", "application/json")
	return c
}

// Fetch retrieves the rendered HTML of page and parses it.
func (c *Client) Fetch(ctx context.Context, page string) (*goquery.Document, error) {
	page = strings.TrimSpace(page)
	if page == "" {
		return nil, &FetchError{Err: ErrEmptyTitle}
	}

	start := time.Now()
	res, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"action":    "parse",
			"page":      page,
			"prop":      "text",
			"format":    "json",
			"redirects": "1",
			"origin":    "*",
		}).
		Get(c.apiURL)
	if err != nil {
		return nil, &FetchError{Page: page, Err: err}
	}
	if res.StatusCode() != http.StatusOK {
		return nil, &FetchError{Page: page, Status: res.StatusCode(), Err: ErrStatus}
	}

	var payload parseResponse
	if err := json.Unmarshal(res.Body(), &payload); err != nil {
		return nil, &FetchError{Page: page, Status: res.StatusCode(), Err: ErrDecode}
	}
	if payload.Error != nil {
		c.log.Debug(ctx, "api error", logger.String("page", page), logger.String("code", payload.Error.Code))
		return nil, &FetchError{Page: page, Status: res.StatusCode(), Err: fmt.Errorf("%w: %s", ErrAPI, payload.Error.Info)}
	}
	if payload.Parse == nil || strings.TrimSpace(payload.Parse.Text.HTML) == "" {
		return nil, &FetchError{Page: page, Status: res.StatusCode(), Err: ErrEmptyPage}
	}

	root, err := html.Parse(strings.NewReader(payload.Parse.Text.HTML))
	if err != nil {
		return nil, &FetchError{Page: page, Status: res.StatusCode(), Err: ErrDecode}
	}

	c.log.Debug(ctx, "page fetched",
		logger.String("page", page),
		logger.Int("bytes", len(payload.Parse.Text.HTML)),
		logger.Duration("took", time.Since(start)),
	)
	return goquery.NewDocumentFromNode(root), nil
}
