package gw2

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/fivetwenty-io/gw2api/internal/constants"
)

// Requester dispatches one request and decodes a successful body into
// target, which must be a pointer.
type Requester interface {
	Request(ctx context.Context, spec RequestSpec, target any) error
}

// Endpoint is a typed handle on a validated descriptor. T is the shape of a
// successful response body, usually a struct for KindNoID endpoints and a
// slice for the others.
type Endpoint[T any] struct {
	desc Descriptor
}

// NewEndpoint validates desc and returns a typed handle on it.
func NewEndpoint[T any](desc Descriptor) (Endpoint[T], error) {
	err := desc.Validate()
	if err != nil {
		return Endpoint[T]{}, err
	}

	return Endpoint[T]{desc: desc.Clone()}, nil
}

// MustEndpoint is like NewEndpoint but panics on an invalid descriptor.
func MustEndpoint[T any](desc Descriptor) Endpoint[T] {
	endpoint, err := NewEndpoint[T](desc)
	if err != nil {
		panic(err)
	}

	return endpoint
}

// Descriptor returns a copy of the endpoint's descriptor.
func (e Endpoint[T]) Descriptor() Descriptor {
	return e.desc.Clone()
}

// Get fetches the endpoint's base path with no query. On list endpoints the
// API answers with the index of available ids; see ListIDs.
func (e Endpoint[T]) Get(ctx context.Context, r Requester) (T, error) {
	return fetch[T](ctx, r, e.desc, e.baseRequest())
}

// GetByIDs fetches the entries with the given ids, in the order given.
// Duplicates are sent as-is. Unknown ids are simply absent from the result.
func (e Endpoint[T]) GetByIDs(ctx context.Context, r Requester, ids ...string) (T, error) {
	var zero T

	err := e.requireKind("GetByIDs", KindIDList)
	if err != nil {
		return zero, err
	}

	if len(ids) == 0 {
		return zero, e.wrap(invalidRequest("empty id list"))
	}

	err = checkIDs(ids)
	if err != nil {
		return zero, e.wrap(err)
	}

	return fetch[T](ctx, r, e.desc, e.baseRequest().WithQuery(e.desc.Params[0], ids...))
}

// GetAll fetches every entry using ids=all.
func (e Endpoint[T]) GetAll(ctx context.Context, r Requester) (T, error) {
	if e.desc.Kind == KindNoID {
		var zero T

		return zero, e.wrap(invalidRequest("GetAll is not supported by %s endpoints", e.desc.Kind))
	}

	spec := e.baseRequest().WithQuery(constants.QueryParamIDs, constants.QueryValueAll)

	return fetch[T](ctx, r, e.desc, spec)
}

// GetByIDPairs fetches entries selected by two id lists, one per declared
// parameter.
func (e Endpoint[T]) GetByIDPairs(ctx context.Context, r Requester, ids, otherIDs []string) (T, error) {
	var zero T

	err := e.requireKind("GetByIDPairs", KindIDPair)
	if err != nil {
		return zero, err
	}

	if len(ids) == 0 || len(otherIDs) == 0 {
		return zero, e.wrap(invalidRequest("both id lists are required"))
	}

	for _, list := range [][]string{ids, otherIDs} {
		err = checkIDs(list)
		if err != nil {
			return zero, e.wrap(err)
		}
	}

	spec := e.baseRequest().
		WithQuery(e.desc.Params[0], ids...).
		WithQuery(e.desc.Params[1], otherIDs...)

	return fetch[T](ctx, r, e.desc, spec)
}

// GetByParams fetches entries selected by named parameters. Every key must
// be one of the endpoint's declared parameters; keys are sent sorted.
func (e Endpoint[T]) GetByParams(ctx context.Context, r Requester, params map[string]string) (T, error) {
	var zero T

	err := e.requireKind("GetByParams", KindMultiParam)
	if err != nil {
		return zero, err
	}

	if len(params) == 0 {
		return zero, e.wrap(invalidRequest("no parameters given"))
	}

	spec := e.baseRequest()

	for _, key := range slices.Sorted(maps.Keys(params)) {
		if !slices.Contains(e.desc.Params, key) {
			return zero, e.wrap(invalidRequest("unknown parameter %q, expected one of %v", key, e.desc.Params))
		}

		spec = spec.WithQuery(key, params[key])
	}

	return fetch[T](ctx, r, e.desc, spec)
}

// ListIDs fetches the id index of a list endpoint, i.e. its base path, and
// decodes it as a list of I.
func ListIDs[I any, T any](ctx context.Context, r Requester, e Endpoint[T]) ([]I, error) {
	if e.desc.Kind == KindNoID {
		return nil, e.wrap(invalidRequest("ListIDs is not supported by %s endpoints", e.desc.Kind))
	}

	return fetch[[]I](ctx, r, e.desc, e.baseRequest())
}

func (e Endpoint[T]) baseRequest() RequestSpec {
	return NewRequest(e.desc.Path).Authenticated(e.desc.Auth).Localized(e.desc.Localized)
}

func (e Endpoint[T]) requireKind(operation string, kind Kind) error {
	if e.desc.Kind == kind {
		return nil
	}

	return e.wrap(invalidRequest("%s requires a %s endpoint, got %s", operation, kind, e.desc.Kind))
}

// checkIDs rejects blank ids, which would render as a stray separator.
func checkIDs(ids []string) error {
	for i, id := range ids {
		if strings.TrimSpace(id) == "" {
			return invalidRequest("empty id at position %d", i)
		}
	}

	return nil
}

func (e Endpoint[T]) wrap(err error) error {
	return fmt.Errorf("getting %s: %w", e.desc.Name, err)
}

func fetch[T any](ctx context.Context, r Requester, desc Descriptor, spec RequestSpec) (T, error) {
	var result T

	err := r.Request(ctx, spec, &result)
	if err != nil {
		var zero T

		return zero, fmt.Errorf("getting %s: %w", desc.Name, err)
	}

	return result, nil
}
