// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package scene holds the transient in-memory scene that a conversion fills
// from the source file and drains into the destination file.
package scene

// Mesh is a triangulated surface owned by a Scene. Positions and Normals are
// parallel per-vertex arrays; Indices holds three entries per triangle.
type Mesh struct {
	Name      string
	Positions [][3]float32
	Normals   [][3]float32
	Indices   []uint32
}

// TriangleCount returns the number of triangles described by Indices.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Scene is a flat container of meshes. The zero value is an empty scene.
type Scene struct {
	meshes []*Mesh
}

// New returns an empty scene.
func New() *Scene {
	return &Scene{}
}

// Clear removes every mesh from the scene.
func (s *Scene) Clear() {
	for i := range s.meshes {
		s.meshes[i] = nil
	}
	s.meshes = s.meshes[:0]
}

// Add appends m to the scene. Nil meshes are ignored.
func (s *Scene) Add(m *Mesh) {
	if m == nil {
		return
	}
	s.meshes = append(s.meshes, m)
}

// Meshes returns the meshes in insertion order. The slice is shared with the
// scene and is invalidated by the next Clear.
func (s *Scene) Meshes() []*Mesh {
	return s.meshes
}

// Len returns the number of meshes in the scene.
func (s *Scene) Len() int {
	return len(s.meshes)
}

// TriangleCount returns the total number of triangles across all meshes.
func (s *Scene) TriangleCount() int {
	n := 0
	for _, m := range s.meshes {
		n += m.TriangleCount()
	}
	return n
}
