package client

import (
	"context"
	"strings"

	"github.com/fivetwenty-io/gw2api/internal/constants"
	"github.com/fivetwenty-io/gw2api/internal/http"
	"github.com/fivetwenty-io/gw2api/pkg/gw2"
)

// Dispatcher turns a gw2.RequestSpec into one HTTP GET and classifies the
// answer. Base URL, API key, language and timeout are read from the Config
// on every call; logger, debug flag and user agent are fixed at creation.
type Dispatcher struct {
	httpClient *http.Client
	config     *gw2.Config
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *gw2.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger() != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger()))
	}

	if config.Debug() {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent() != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent()))
	}

	return httpOpts
}

// New creates a Dispatcher bound to config. Extra options are applied after
// the ones derived from config.
func New(config *gw2.Config, opts ...http.Option) *Dispatcher {
	httpOpts := append(createHTTPClientOptions(config), opts...)

	return &Dispatcher{
		httpClient: http.NewClient(httpOpts...),
		config:     config,
	}
}

// Config returns the Config the Dispatcher reads from.
func (d *Dispatcher) Config() *gw2.Config {
	return d.config
}

// Request implements gw2.Requester. An authenticated request without an API key
// fails before any network activity.
func (d *Dispatcher) Request(ctx context.Context, spec gw2.RequestSpec, target any) error {
	headers := make(map[string]string)

	if spec.IsLocalized() {
		headers[constants.HeaderAcceptLanguage] = d.config.Language().Code()
	}

	if spec.RequiresAuth() {
		apiKey, ok := d.config.APIKey()
		if !ok {
			return &gw2.Error{Kind: gw2.ErrorKindKeyNotSet}
		}

		headers[constants.HeaderAuthorization] = constants.BearerPrefix + apiKey
	}

	if timeout := d.config.Timeout(); timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	resp, err := d.httpClient.Get(ctx, ComposeURL(d.config.BaseURL(), spec), headers)
	if err != nil {
		return &gw2.Error{Kind: gw2.ErrorKindTransport, Err: err}
	}

	return gw2.Classify(resp.StatusCode, resp.Body, target)
}

// ComposeURL joins the base URL, the request path and its query. A missing
// scheme defaults to https and slashes at the seam are collapsed.
func ComposeURL(baseURL string, spec gw2.RequestSpec) string {
	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if !strings.HasPrefix(base, "http://") && !strings.HasPrefix(base, "https://") {
		base = "https://" + base
	}

	url := base + "/" + strings.TrimLeft(spec.Path(), "/")

	if query := spec.Query(); query != "" {
		url += "?" + query
	}

	return url
}
