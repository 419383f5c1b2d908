package output

import (
	"fmt"
	"io"
)

// Formatter renders a calculation result.
type Formatter interface {
	Format(v any) error
}

// New returns the formatter named format ("table", "json" or "yaml").
func New(format string, w io.Writer) (Formatter, error) {
	switch format {
	case "", "table":
		return NewTableFormatter(w), nil
	case "json":
		return NewJSONFormatter(w, true), nil
	case "yaml":
		return NewYAMLFormatter(w), nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}
