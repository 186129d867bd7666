package gw2

import (
	"fmt"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/fivetwenty-io/gw2api/internal/constants"
)

// Kind is the capability class of an endpoint. It decides which Endpoint
// operations are available and how many id parameters the endpoint declares.
type Kind int

const (
	// KindNoID endpoints only support Get.
	KindNoID Kind = iota
	// KindIDList endpoints take a single comma-joined id list.
	KindIDList
	// KindIDPair endpoints take exactly two id lists.
	KindIDPair
	// KindMultiParam endpoints take more than two named parameters.
	KindMultiParam
)

var kindNames = map[Kind]string{
	KindNoID:       "no-id",
	KindIDList:     "id-list",
	KindIDPair:     "id-pair",
	KindMultiParam: "multi-param",
}

// String returns the catalogue spelling of the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return fmt.Sprintf("kind(%d)", int(k))
}

// ParseKind parses the catalogue spelling of a kind.
func ParseKind(name string) (Kind, error) {
	for kind, kindName := range kindNames {
		if kindName == name {
			return kind, nil
		}
	}

	return KindNoID, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if _, ok := kindNames[k]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(k))
	}

	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	kind, err := ParseKind(string(text))
	if err != nil {
		return err
	}

	*k = kind

	return nil
}

// accepts reports whether n id parameters satisfy the kind's arity.
func (k Kind) accepts(n int) bool {
	switch k {
	case KindNoID:
		return n == 0
	case KindIDList:
		return n == 1
	case KindIDPair:
		return n == 2 //nolint:mnd // a pair
	case KindMultiParam:
		return n > 2 //nolint:mnd // more than a pair
	default:
		return false
	}
}

// Descriptor is the static description of one API endpoint.
type Descriptor struct {
	Name      string   `json:"name"             validate:"required"              yaml:"name"`
	Path      string   `json:"path"             validate:"required,startswith=/" yaml:"path"`
	Kind      Kind     `json:"kind"             yaml:"kind"`
	Params    []string `json:"params,omitempty" validate:"dive,required"         yaml:"params,omitempty"`
	Auth      bool     `json:"auth"             yaml:"auth"`
	Localized bool     `json:"localized"        yaml:"localized"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the descriptor's fields and that its parameter count
// matches its kind.
func (d Descriptor) Validate() error {
	err := validate.Struct(d)
	if err != nil {
		return fmt.Errorf("%w %q: %w", ErrInvalidDescriptor, d.Name, err)
	}

	if _, ok := kindNames[d.Kind]; !ok {
		return fmt.Errorf("%w %q: %w: %d", ErrInvalidDescriptor, d.Name, ErrUnknownKind, int(d.Kind))
	}

	if !d.Kind.accepts(len(d.Params)) {
		return fmt.Errorf("%w %q: %w: %s with %d parameters",
			ErrInvalidDescriptor, d.Name, ErrParamCountMismatch, d.Kind, len(d.Params))
	}

	seen := make(map[string]struct{}, len(d.Params))
	for _, param := range d.Params {
		if _, dup := seen[param]; dup {
			return fmt.Errorf("%w %q: %w: %s", ErrInvalidDescriptor, d.Name, ErrDuplicateParam, param)
		}

		seen[param] = struct{}{}
	}

	return nil
}

// Clone returns a copy that shares no memory with d.
func (d Descriptor) Clone() Descriptor {
	d.Params = slices.Clone(d.Params)

	return d
}

// ParseTemplate splits an endpoint template such as
// "/v1/map_floor?continent_id={}&floor={}" into its path and the ordered
// parameter names. Parameters may be separated by '&' or '?'.
func ParseTemplate(template string) (string, []string, error) {
	path, query, hasQuery := strings.Cut(template, "?")
	if !strings.HasPrefix(path, "/") {
		return "", nil, fmt.Errorf("%w: %q: path must start with '/'", ErrMalformedTemplate, template)
	}

	if !hasQuery {
		return path, nil, nil
	}

	fields := strings.FieldsFunc(query, func(r rune) bool { return r == '&' || r == '?' })
	if len(fields) == 0 {
		return "", nil, fmt.Errorf("%w: %q: empty query", ErrMalformedTemplate, template)
	}

	params := make([]string, 0, len(fields))

	for _, field := range fields {
		name, placeholder, ok := strings.Cut(field, "=")
		if !ok || name == "" || placeholder != constants.TemplatePlaceholder {
			return "", nil, fmt.Errorf("%w: %q: expected name=%s, got %q",
				ErrMalformedTemplate, template, constants.TemplatePlaceholder, field)
		}

		params = append(params, name)
	}

	return path, params, nil
}

// Template renders the descriptor back into template form.
func (d Descriptor) Template() string {
	if len(d.Params) == 0 {
		return d.Path
	}

	parts := make([]string, len(d.Params))
	for i, param := range d.Params {
		parts[i] = param + "=" + constants.TemplatePlaceholder
	}

	return d.Path + "?" + strings.Join(parts, "&")
}
