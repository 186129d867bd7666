package gw2client

import (
	"context"
	"net/http"

	"github.com/fivetwenty-io/gw2api/internal/client"
	gw2http "github.com/fivetwenty-io/gw2api/internal/http"
	"github.com/fivetwenty-io/gw2api/pkg/gw2"
)

// Client is a Guild Wars 2 API client. It is safe for concurrent use as long
// as its Config is not mutated concurrently.
type Client struct {
	dispatcher *client.Dispatcher
}

var _ gw2.Requester = (*Client)(nil)

// Option configures a Client.
type Option func(*options)

type options struct {
	httpClient *http.Client
}

// WithHTTPClient sets the *http.Client used for requests.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(o *options) {
		o.httpClient = httpClient
	}
}

// New creates a client reading its settings from config. A nil config uses
// gw2.NewConfig().
func New(config *gw2.Config, opts ...Option) *Client {
	if config == nil {
		config = gw2.NewConfig()
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	var httpOpts []gw2http.Option
	if o.httpClient != nil {
		httpOpts = append(httpOpts, gw2http.WithHTTPClient(o.httpClient))
	}

	return &Client{dispatcher: client.New(config, httpOpts...)}
}

// NewWithAPIKey creates a client with the default settings and apiKey.
func NewWithAPIKey(apiKey string) *Client {
	return New(gw2.NewConfig().SetAPIKey(apiKey))
}

// NewWithLanguage creates an anonymous client with the default settings and
// language.
func NewWithLanguage(language gw2.Language) *Client {
	return New(gw2.NewConfig().SetLanguage(language))
}

// Config returns the client's Config.
func (c *Client) Config() *gw2.Config {
	return c.dispatcher.Config()
}

// Request implements gw2.Requester.
func (c *Client) Request(ctx context.Context, spec gw2.RequestSpec, target any) error {
	return c.dispatcher.Request(ctx, spec, target) //nolint:wrapcheck // already a *gw2.Error
}
