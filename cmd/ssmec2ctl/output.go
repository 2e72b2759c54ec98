package main

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

const (
	formatYAML   = "yaml"
	formatJSON   = "json"
	formatSchema = "schema"
)

func render(w io.Writer, format string, value any) error {
	switch format {
	case formatJSON, formatSchema:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(value)
	case formatYAML, "":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(value); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q, use %s or %s", format, formatYAML, formatJSON)
	}
}
