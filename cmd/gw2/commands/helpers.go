package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/gw2api/internal/constants"
	"github.com/fivetwenty-io/gw2api/pkg/gw2"
	v1 "github.com/fivetwenty-io/gw2api/pkg/gw2/v1"
	v2 "github.com/fivetwenty-io/gw2api/pkg/gw2/v2"
)

const defaultJSONIndent = "  "

// tableFiller fills a table for the table output format.
type tableFiller func(table *tablewriter.Table) error

// writeOutput prints v in format. An unknown format is an error; an empty
// one means table.
func writeOutput(out io.Writer, format string, v any, fill tableFiller) error {
	switch format {
	case constants.FormatJSON:
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", defaultJSONIndent)

		return encoder.Encode(v)
	case constants.FormatYAML:
		encoder := yaml.NewEncoder(out)
		defer func() { _ = encoder.Close() }()

		return encoder.Encode(v)
	case constants.FormatTable, "":
		table := tablewriter.NewWriter(out)

		err := fill(table)
		if err != nil {
			return err
		}

		if err := table.Render(); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		return nil
	default:
		return fmt.Errorf("%w: %q", constants.ErrInvalidOutput, format)
	}
}

// writeRawOutput prints an undecoded API payload. JSON is re-indented as is;
// yaml and table go through a generic decode.
func writeRawOutput(out io.Writer, format string, payload json.RawMessage) error {
	var decoded any

	err := json.Unmarshal(payload, &decoded)
	if err != nil {
		return fmt.Errorf("decoding payload: %w", err)
	}

	if format == constants.FormatJSON {
		return writeOutput(out, format, payload, nil)
	}

	return writeOutput(out, format, decoded, func(table *tablewriter.Table) error {
		fillValueTable(table, decoded)

		return nil
	})
}

// fillValueTable renders objects as key/value rows, arrays as index/value
// rows and scalars as a single row.
func fillValueTable(table *tablewriter.Table, value any) {
	switch typed := value.(type) {
	case map[string]any:
		keys := make([]string, 0, len(typed))
		for key := range typed {
			keys = append(keys, key)
		}

		sort.Strings(keys)

		table.Header("Key", "Value")

		for _, key := range keys {
			_ = table.Append(key, formatValue(typed[key]))
		}
	case []any:
		table.Header("#", "Value")

		for i, item := range typed {
			_ = table.Append(strconv.Itoa(i), formatValue(item))
		}
	default:
		table.Header("Value")
		_ = table.Append(formatValue(typed))
	}
}

func formatValue(value any) string {
	switch typed := value.(type) {
	case nil:
		return constants.NotAvailable
	case string:
		return typed
	case bool:
		return strconv.FormatBool(typed)
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64)
	default:
		data, err := json.Marshal(typed)
		if err != nil {
			return fmt.Sprint(typed)
		}

		return string(data)
	}
}

func valueOrNA(value string) string {
	if value == "" {
		return constants.NotAvailable
	}

	return value
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}

	return "no"
}

// catalogues lists every registry the CLI can address, newest API first.
func catalogues() []*gw2.Registry {
	return []*gw2.Registry{v2.Catalog(), v1.Catalog()}
}

func lookupEndpoint(name string) (gw2.Descriptor, error) {
	for _, registry := range catalogues() {
		if desc, ok := registry.Lookup(name); ok {
			return desc, nil
		}
	}

	return gw2.Descriptor{}, fmt.Errorf("%w: %q", constants.ErrUnknownEndpoint, name)
}

func allDescriptors() []gw2.Descriptor {
	var descriptors []gw2.Descriptor
	for _, registry := range catalogues() {
		descriptors = append(descriptors, registry.Descriptors()...)
	}

	return descriptors
}
