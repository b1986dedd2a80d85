// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package stlio imports STL surface meshes (ASCII or binary) into a scene.
package stlio

import (
	"math"
	"path/filepath"
	"strings"

	"github.com/hschendel/stl"
	"github.com/pkg/errors"

	"github.com/pdiddy/meshconv/internal/scene"
)

// Extension is the file extension the importer accepts.
const Extension = ".stl"

var (
	// ErrUnsupportedFormat is returned for sources that are not STL files.
	ErrUnsupportedFormat = errors.New("unsupported source format")
	// ErrEmptyMesh is returned when an STL file parses but holds no triangles.
	ErrEmptyMesh = errors.New("source contains no triangles")
)

// Importer reads STL files. It is stateless; the zero value is ready to use.
type Importer struct{}

// NewImporter returns an STL importer.
func NewImporter() *Importer {
	return &Importer{}
}

// Supported reports whether path carries the STL extension.
func Supported(path string) bool {
	return strings.EqualFold(filepath.Ext(path), Extension)
}

// Import parses the STL file at path and adds one mesh to s. Non-STL paths
// fail with ErrUnsupportedFormat without being opened. Returned errors do not
// repeat path; callers attach it.
func (i *Importer) Import(path string, s *scene.Scene) error {
	if !Supported(path) {
		return errors.Wrapf(ErrUnsupportedFormat, "want %s", Extension)
	}

	solid, err := stl.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "reading STL")
	}

	fallback := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	m, err := BuildMesh(solid, fallback)
	if err != nil {
		return errors.Wrap(err, "building mesh")
	}

	s.Add(m)
	return nil
}

// vertexKey identifies a welded vertex. Vertices are shared between triangles
// only when both position and face normal match, so flat shading survives.
type vertexKey struct {
	pos    [3]float32
	normal [3]float32
}

// BuildMesh converts a parsed solid into an indexed mesh. ASCII solids are
// named by their solid line; binary headers are free-form text, so binary
// solids and unnamed ASCII solids use fallback.
func BuildMesh(solid *stl.Solid, fallback string) (*scene.Mesh, error) {
	if solid == nil || len(solid.Triangles) == 0 {
		return nil, ErrEmptyMesh
	}

	name := ""
	if solid.IsAscii {
		name = strings.TrimSpace(solid.Name)
	}
	if name == "" {
		name = fallback
	}

	m := &scene.Mesh{
		Name:    name,
		Indices: make([]uint32, 0, len(solid.Triangles)*3),
	}
	seen := make(map[vertexKey]uint32, len(solid.Triangles))

	for _, tri := range solid.Triangles {
		var verts [3][3]float32
		for j, v := range tri.Vertices {
			verts[j] = [3]float32{v[0], v[1], v[2]}
		}
		n := faceNormal(verts, [3]float32{tri.Normal[0], tri.Normal[1], tri.Normal[2]})

		for _, p := range verts {
			k := vertexKey{pos: p, normal: n}
			idx, ok := seen[k]
			if !ok {
				idx = uint32(len(m.Positions))
				seen[k] = idx
				m.Positions = append(m.Positions, p)
				m.Normals = append(m.Normals, n)
			}
			m.Indices = append(m.Indices, idx)
		}
	}

	return m, nil
}

// faceNormal returns the unit normal of the triangle by the right-hand rule.
// Degenerate triangles fall back to the stored normal, then to +Z.
func faceNormal(v [3][3]float32, stored [3]float32) [3]float32 {
	var e1, e2 [3]float64
	for i := 0; i < 3; i++ {
		e1[i] = float64(v[1][i]) - float64(v[0][i])
		e2[i] = float64(v[2][i]) - float64(v[0][i])
	}
	c := [3]float64{
		e1[1]*e2[2] - e1[2]*e2[1],
		e1[2]*e2[0] - e1[0]*e2[2],
		e1[0]*e2[1] - e1[1]*e2[0],
	}
	if n, ok := normalize(c); ok {
		return n
	}
	if n, ok := normalize([3]float64{float64(stored[0]), float64(stored[1]), float64(stored[2])}); ok {
		return n
	}
	return [3]float32{0, 0, 1}
}

func normalize(v [3]float64) ([3]float32, bool) {
	l := math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
	if l == 0 || math.IsNaN(l) || math.IsInf(l, 0) {
		return [3]float32{}, false
	}
	return [3]float32{float32(v[0] / l), float32(v[1] / l), float32(v[2] / l)}, true
}
