// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package gltfio exports a scene as a single-file glTF 2.0 binary (GLB).
// Only meshes, nodes and the default scene are populated; materials,
// textures, cameras and animations are left empty.
package gltfio

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/pdiddy/meshconv/internal/scene"
)

// Generator is written to asset.generator when none is configured.
const Generator = "meshconv"

// ErrEmptyScene is returned when there is nothing to export.
var ErrEmptyScene = errors.New("scene has no meshes")

// Exporter writes GLB files.
type Exporter struct {
	generator string
}

// NewExporter returns an exporter stamping generator into the asset block.
// An empty generator uses Generator.
func NewExporter(generator string) *Exporter {
	if generator == "" {
		generator = Generator
	}
	return &Exporter{generator: generator}
}

// Export encodes s and writes it to path. The file is replaced only after
// encoding succeeds, so a failed export leaves any previous file untouched.
// The parent directory must already exist.
func (e *Exporter) Export(s *scene.Scene, path string) error {
	doc, err := BuildDocument(s, e.generator)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	enc := gltf.NewEncoder(&buf)
	enc.AsBinary = true
	if err := enc.Encode(doc); err != nil {
		return errors.Wrap(err, "encoding GLB")
	}
	return writeFile(path, buf.Bytes())
}

// writeFile writes data to a temp file next to path and renames it over path.
func writeFile(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return errors.Wrap(err, "creating output")
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errors.Wrap(err, "writing output")
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return errors.Wrap(err, "closing output")
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return errors.Wrap(err, "setting output permissions")
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return errors.Wrap(err, "replacing output")
	}
	return nil
}

// BuildDocument lays out one glTF mesh and one root node per scene mesh.
func BuildDocument(s *scene.Scene, generator string) (*gltf.Document, error) {
	if s == nil || s.Len() == 0 {
		return nil, ErrEmptyScene
	}

	doc := gltf.NewDocument()
	doc.Asset.Generator = generator
	if len(doc.Scenes) == 0 {
		doc.Scenes = append(doc.Scenes, &gltf.Scene{Name: "Root Scene"})
		doc.Scene = gltf.Index(0)
	}

	for _, m := range s.Meshes() {
		if m.TriangleCount() == 0 {
			return nil, errors.Errorf("mesh %q has no triangles", m.Name)
		}
		if len(m.Normals) != len(m.Positions) {
			return nil, errors.Errorf("mesh %q has %d normals for %d positions", m.Name, len(m.Normals), len(m.Positions))
		}

		pos := modeler.WritePosition(doc, m.Positions)
		nrm := modeler.WriteNormal(doc, m.Normals)
		idx := modeler.WriteIndices(doc, m.Indices)

		doc.Meshes = append(doc.Meshes, &gltf.Mesh{
			Name: m.Name,
			Primitives: []*gltf.Primitive{{
				Indices: gltf.Index(idx),
				Attributes: gltf.PrimitiveAttributes{
					gltf.POSITION: pos,
					gltf.NORMAL:   nrm,
				},
			}},
		})
		doc.Nodes = append(doc.Nodes, &gltf.Node{
			Name: m.Name,
			Mesh: gltf.Index(len(doc.Meshes) - 1),
		})
		doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, len(doc.Nodes)-1)
	}

	return doc, nil
}
