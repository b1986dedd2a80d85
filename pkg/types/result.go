// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// BytesPerMB is the divisor used for megabyte reporting.
const BytesPerMB = 1024 * 1024

// ConversionStatus indicates how a conversion ended.
type ConversionStatus string

const (
	ConversionNone          ConversionStatus = "none"
	ConversionDone          ConversionStatus = "converted"
	ConversionOutputMissing ConversionStatus = "output_missing"
	ConversionFailed        ConversionStatus = "failed"
)

// Result describes one conversion request and its outcome.
type Result struct {
	// Source is the surface-mesh file that was imported.
	Source string `json:"source" yaml:"source"`

	// Destination is the container file that was written.
	Destination string `json:"destination" yaml:"destination"`

	// Status is the conversion outcome.
	Status ConversionStatus `json:"status" yaml:"status"`

	// Meshes is the number of mesh objects in the scene after import.
	Meshes int `json:"meshes" yaml:"meshes"`

	// Triangles is the total triangle count after import.
	Triangles int `json:"triangles" yaml:"triangles"`

	// OutputFound reports whether the destination existed after export.
	OutputFound bool `json:"output_found" yaml:"output_found"`

	// SizeBytes is the destination size; zero when OutputFound is false.
	SizeBytes int64 `json:"size_bytes" yaml:"size_bytes"`
}

// SizeMB returns SizeBytes in megabytes (bytes / 1,048,576).
func (r Result) SizeMB() float64 {
	return float64(r.SizeBytes) / BytesPerMB
}
