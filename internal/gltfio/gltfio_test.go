// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package gltfio

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/qmuntal/gltf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/meshconv/internal/scene"
)

func quadScene() *scene.Scene {
	s := scene.New()
	s.Add(&scene.Mesh{
		Name:      "quad",
		Positions: [][3]float32{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}},
		Normals:   [][3]float32{{0, 0, 1}, {0, 0, 1}, {0, 0, 1}, {0, 0, 1}},
		Indices:   []uint32{0, 1, 2, 0, 2, 3},
	})
	return s
}

func TestExport_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quad.glb")
	require.NoError(t, NewExporter("").Export(quadScene(), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Greater(t, len(data), 12)
	assert.Equal(t, "glTF", string(data[:4]), "binary container magic")

	doc, err := gltf.Open(path)
	require.NoError(t, err)

	assert.Equal(t, Generator, doc.Asset.Generator)
	require.Len(t, doc.Meshes, 1)
	require.Len(t, doc.Nodes, 1)
	assert.Equal(t, "quad", doc.Meshes[0].Name)
	assert.Empty(t, doc.Materials)
	assert.Empty(t, doc.Textures)
	assert.Equal(t, []int{0}, doc.Scenes[0].Nodes)

	prim := doc.Meshes[0].Primitives[0]
	pos := doc.Accessors[prim.Attributes[gltf.POSITION]]
	assert.Equal(t, 4, pos.Count)
	require.NotNil(t, prim.Indices)
	assert.Equal(t, 6, doc.Accessors[*prim.Indices].Count)
}

func TestExport_Deterministic(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.glb")
	b := filepath.Join(dir, "b.glb")
	exp := NewExporter("test-suite")

	require.NoError(t, exp.Export(quadScene(), a))
	require.NoError(t, exp.Export(quadScene(), b))

	da, err := os.ReadFile(a)
	require.NoError(t, err)
	db, err := os.ReadFile(b)
	require.NoError(t, err)
	assert.Equal(t, da, db)
}

func TestExport_Errors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name   string
		scene  *scene.Scene
		path   string
		target error
	}{
		{
			name:   "empty scene",
			scene:  scene.New(),
			path:   filepath.Join(dir, "empty.glb"),
			target: ErrEmptyScene,
		},
		{
			name:  "missing parent directory",
			scene: quadScene(),
			path:  filepath.Join(dir, "no-such-dir", "out.glb"),
		},
		{
			name: "mesh without triangles",
			scene: func() *scene.Scene {
				s := scene.New()
				s.Add(&scene.Mesh{Name: "hollow"})
				return s
			}(),
			path: filepath.Join(dir, "hollow.glb"),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewExporter("").Export(tt.scene, tt.path)
			require.Error(t, err)
			if tt.target != nil {
				assert.ErrorIs(t, err, tt.target)
			}
			_, statErr := os.Stat(tt.path)
			assert.True(t, os.IsNotExist(statErr), "no file should be written")
		})
	}
}

func TestBuildDocument_MultipleMeshes(t *testing.T) {
	s := quadScene()
	s.Add(quadScene().Meshes()[0])

	doc, err := BuildDocument(s, "x")
	require.NoError(t, err)
	assert.Len(t, doc.Meshes, 2)
	assert.Len(t, doc.Nodes, 2)
	assert.Equal(t, []int{0, 1}, doc.Scenes[0].Nodes)
	require.NotNil(t, doc.Nodes[1].Mesh)
	assert.Equal(t, 1, *doc.Nodes[1].Mesh)
}

func nanScene() *scene.Scene {
	s := quadScene()
	s.Meshes()[0].Positions[2][0] = float32(math.NaN())
	return s
}

func TestExport_EncodeFailureLeavesNoFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.glb")

	err := NewExporter("").Export(nanScene(), path)
	require.Error(t, err)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "a failed encode must not create the destination")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "temporary files must be cleaned up")
}

func TestExport_EncodeFailureKeepsPreviousOutput(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "model.glb")
	require.NoError(t, NewExporter("").Export(quadScene(), path))
	before, err := os.ReadFile(path)
	require.NoError(t, err)

	require.Error(t, NewExporter("").Export(nanScene(), path))

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestExport_Permissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quad.glb")
	require.NoError(t, NewExporter("").Export(quadScene(), path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())
}
