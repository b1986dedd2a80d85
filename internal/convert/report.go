// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"
	"io"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/meshconv/pkg/types"
)

// yamlReport adds the rendered megabyte figure to the serialized result.
type yamlReport struct {
	types.Result `yaml:",inline"`
	SizeMB       string `yaml:"size_mb"`
}

// WriteReport prints a summary of r in the requested format. The text format
// prints nothing, since Convert already wrote the status lines.
func WriteReport(w io.Writer, r types.Result, format types.ReportFormat) error {
	switch format {
	case types.ReportText, "":
		return nil
	case types.ReportYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(yamlReport{Result: r, SizeMB: fmt.Sprintf("%.2f", r.SizeMB())}); err != nil {
			return fmt.Errorf("encoding report: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown report format %q: want text or yaml", format)
	}
}
