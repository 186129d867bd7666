package gw2

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gorilla/schema"

	"github.com/fivetwenty-io/gw2api/internal/constants"
)

var paramEncoder = schema.NewEncoder()

// EncodeParams turns a struct tagged with `schema:"name"` into the parameter
// map accepted by GetByParams. Slice fields are comma-joined and fields
// tagged omitempty are skipped when empty.
//
//	type EventQuery struct {
//		WorldID int    `schema:"world_id,omitempty"`
//		MapID   int    `schema:"map_id,omitempty"`
//		EventID string `schema:"event_id,omitempty"`
//	}
func EncodeParams(v any) (map[string]string, error) {
	values := make(map[string][]string)

	err := paramEncoder.Encode(v, values)
	if err != nil {
		return nil, fmt.Errorf("encoding parameters: %w", err)
	}

	params := make(map[string]string, len(values))

	for key, vals := range values {
		if len(vals) == 0 {
			continue
		}

		params[key] = strings.Join(vals, constants.IDSeparator)
	}

	return params, nil
}

// Integer is the set of id types FormatIDs accepts.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// FormatIDs renders numeric ids for GetByIDs and GetByIDPairs.
func FormatIDs[I Integer](ids ...I) []string {
	var zero I

	unsigned := zero-1 > zero

	formatted := make([]string, len(ids))
	for i, id := range ids {
		if unsigned {
			formatted[i] = strconv.FormatUint(uint64(id), 10)
		} else {
			formatted[i] = strconv.FormatInt(int64(id), 10)
		}
	}

	return formatted
}
