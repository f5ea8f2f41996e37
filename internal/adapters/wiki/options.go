// Package wiki fetches rendered encyclopedia pages through the MediaWiki
// parse API and hands them out as navigable documents.
package wiki

import (
	"time"

	"github.com/ryanmarc/olympic-dashboard/pkg/logger"
)

// Default client configuration constants.
const (
	DefaultAPIURL    = "https://en.wikipedia.org/w/api.php"
	DefaultUserAgent = "OlympicsMedalDashboard/1.0 (Educational Project; respects robots.txt)"
	DefaultTimeout   = 20 * time.Second
)

// Option applies a configuration option to the Client.
type Option func(*Client)

// WithAPIURL points the client at another api.php endpoint.
func WithAPIURL(u string) Option {
	return func(c *Client) {
		if u != "" {
			c.apiURL = u
		}
	}
}

// WithUserAgent sets the identifying User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// WithTimeout bounds each request.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l logger.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.log = l
		}
	}
}
