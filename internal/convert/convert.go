// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert implements the mesh conversion pipeline: clear the scene,
// import the source file, export the scene to the destination, then report
// the size of what was written.
package convert

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/pdiddy/meshconv/internal/logging"
	"github.com/pdiddy/meshconv/internal/metrics"
	"github.com/pdiddy/meshconv/internal/scene"
	"github.com/pdiddy/meshconv/pkg/types"
)

// Importer loads geometry from a file into a scene.
type Importer interface {
	// Import parses the file at path and adds its meshes to s.
	Import(path string, s *scene.Scene) error
}

// Exporter serializes a scene to a file.
type Exporter interface {
	// Export writes the contents of s to path.
	Export(s *scene.Scene, path string) error
}

// Converter runs conversions against a single scene that it owns. It is not
// safe for concurrent use.
type Converter struct {
	importer Importer
	exporter Exporter
	scene    *scene.Scene
	out      io.Writer
	logger   *slog.Logger
	metrics  *metrics.Recorder
}

// Option customizes a Converter.
type Option func(*Converter)

// WithLogger sets the diagnostic logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(c *Converter) { c.logger = l }
}

// WithMetrics records each conversion on r.
func WithMetrics(r *metrics.Recorder) Option {
	return func(c *Converter) { c.metrics = r }
}

// NewConverter wires an importer and exporter around a fresh scene. Status
// lines are printed to out.
func NewConverter(imp Importer, exp Exporter, out io.Writer, opts ...Option) *Converter {
	c := &Converter{
		importer: imp,
		exporter: exp,
		scene:    scene.New(),
		out:      out,
		logger:   logging.Discard(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Scene returns the scene the converter works on.
func (c *Converter) Scene() *scene.Scene {
	return c.scene
}

// Convert imports source and exports it to destination. Import and export
// failures are returned as *ImportError and *ExportError; no export is
// attempted after a failed import. A destination that is absent after a
// successful export is reported on out and in the Result, not as an error.
func (c *Converter) Convert(source, destination string) (types.Result, error) {
	start := time.Now()
	log := c.logger.With("conversion_id", uuid.NewString())
	res := types.Result{
		Source:      source,
		Destination: destination,
		Status:      types.ConversionNone,
	}

	c.scene.Clear()
	log.Debug("scene cleared")

	if err := c.importer.Import(source, c.scene); err != nil {
		res.Status = types.ConversionFailed
		c.metrics.ObserveConversion(metrics.OutcomeImportFailed, time.Since(start))
		log.Error("import failed", "source", source, "err", err)
		return res, &ImportError{Path: source, Err: err}
	}
	res.Meshes = c.scene.Len()
	res.Triangles = c.scene.TriangleCount()
	c.metrics.SetTriangles(res.Triangles)
	log.Debug("imported", "source", source, "meshes", res.Meshes, "triangles", res.Triangles)

	if err := c.exporter.Export(c.scene, destination); err != nil {
		res.Status = types.ConversionFailed
		c.metrics.ObserveConversion(metrics.OutcomeExportFailed, time.Since(start))
		log.Error("export failed", "destination", destination, "err", err)
		return res, &ExportError{Path: destination, Err: err}
	}
	log.Debug("exported", "destination", destination)

	fmt.Fprintf(c.out, "Successfully converted %s to %s\n", source, destination)

	info, err := os.Stat(destination)
	if err != nil {
		fmt.Fprintln(c.out, "Output file not found!")
		res.Status = types.ConversionOutputMissing
		c.metrics.ObserveConversion(metrics.OutcomeOutputMissing, time.Since(start))
		log.Warn("output not found", "destination", destination, "err", err)
		return res, nil
	}

	res.Status = types.ConversionDone
	res.OutputFound = true
	res.SizeBytes = info.Size()
	fmt.Fprintf(c.out, "GLB file size: %s\n", FormatSize(res.SizeBytes))

	c.metrics.SetOutputBytes(res.SizeBytes)
	c.metrics.ObserveConversion(metrics.OutcomeConverted, time.Since(start))
	log.Info("converted", "source", source, "destination", destination,
		"bytes", res.SizeBytes, "elapsed", time.Since(start))
	return res, nil
}

// FormatSize renders a byte count as megabytes with two decimals, e.g.
// 2097152 -> "2.00 MB".
func FormatSize(bytes int64) string {
	return fmt.Sprintf("%.2f MB", float64(bytes)/types.BytesPerMB)
}
