package gw2

import (
	"net/url"
	"slices"
	"strings"

	"github.com/fivetwenty-io/gw2api/internal/constants"
)

// QueryParam is one query parameter. Its values are rendered comma-joined in
// the order given, duplicates included.
type QueryParam struct {
	Key    string
	Values []string
}

// RequestSpec describes a single GET call. It is a value: the builder methods
// return modified copies, so a RequestSpec handed to a Requester can never change
// underneath it. Build a new one for every call.
type RequestSpec struct {
	path          string
	query         []QueryParam
	authenticated bool
	localized     bool
}

// NewRequest creates a RequestSpec for path with auth and localization off.
func NewRequest(path string) RequestSpec {
	return RequestSpec{path: path}
}

// Authenticated sets whether the call must carry the API key.
func (r RequestSpec) Authenticated(value bool) RequestSpec {
	r.authenticated = value

	return r
}

// Localized sets whether the call must carry the language header.
func (r RequestSpec) Localized(value bool) RequestSpec {
	r.localized = value

	return r
}

// WithQuery appends a query parameter.
func (r RequestSpec) WithQuery(key string, values ...string) RequestSpec {
	query := make([]QueryParam, len(r.query), len(r.query)+1)
	copy(query, r.query)
	r.query = append(query, QueryParam{Key: key, Values: slices.Clone(values)})

	return r
}

// Path returns the resource path.
func (r RequestSpec) Path() string {
	return r.path
}

// RequiresAuth reports whether the API key must be sent.
func (r RequestSpec) RequiresAuth() bool {
	return r.authenticated
}

// IsLocalized reports whether the language header must be sent.
func (r RequestSpec) IsLocalized() bool {
	return r.localized
}

// QueryParams returns a copy of the query parameters in order.
func (r RequestSpec) QueryParams() []QueryParam {
	params := make([]QueryParam, len(r.query))
	for i, param := range r.query {
		params[i] = QueryParam{Key: param.Key, Values: slices.Clone(param.Values)}
	}

	return params
}

// Query renders the query string without the leading '?'. Keys and values
// are escaped individually and values are joined with a literal comma, so an
// id list renders as ids=1,2,3.
func (r RequestSpec) Query() string {
	parts := make([]string, 0, len(r.query))

	for _, param := range r.query {
		values := make([]string, len(param.Values))
		for i, value := range param.Values {
			values[i] = url.QueryEscape(value)
		}

		parts = append(parts, url.QueryEscape(param.Key)+"="+strings.Join(values, constants.IDSeparator))
	}

	return strings.Join(parts, "&")
}
