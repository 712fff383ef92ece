// Package render turns slices of result items into output text in one of
// the supported CLI formats.
package render

import (
	"encoding/json"
	"fmt"
	"strings"
)

type Format string

const (
	FormatJSON   Format = "json"
	FormatText   Format = "text"
	FormatPretty Format = "pretty"
)

var ValidFormats = []Format{FormatJSON, FormatText, FormatPretty}

func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json":
		return FormatJSON, nil
	case "text":
		return FormatText, nil
	case "pretty":
		return FormatPretty, nil
	default:
		return "", fmt.Errorf("invalid format: %s (valid: json, text, pretty)", s)
	}
}

// A Renderer turns Items into output text. Line renders a single item for
// text output; Table renders the whole slice for pretty output. JSON output
// marshals Items directly.
type Renderer[T any] struct {
	Items []T
	Line  func(T) string
	Table func([]T) string
}

func (r Renderer[T]) Render(format Format) (string, error) {
	switch format {
	case FormatJSON:
		out, err := json.MarshalIndent(r.Items, "", "  ")
		if err != nil {
			return "", err
		}
		return string(out), nil
	case FormatText:
		if r.Line == nil {
			return "", fmt.Errorf("text format not defined for this type")
		}
		lines := make([]string, 0, len(r.Items))
		for _, item := range r.Items {
			lines = append(lines, r.Line(item))
		}
		return strings.Join(lines, "\n"), nil
	case FormatPretty:
		if r.Table == nil {
			return "", fmt.Errorf("pretty format not defined for this type")
		}
		return r.Table(r.Items), nil
	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}
