// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/qmuntal/gltf"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args, resetting convert flags to their
// defaults first so runs do not leak into each other.
func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	convertCmd.Flags().VisitAll(func(f *pflag.Flag) {
		require.NoError(t, f.Value.Set(f.DefValue))
		f.Changed = false
	})

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err = rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func TestConvertCommand(t *testing.T) {
	dir := t.TempDir()
	dst := filepath.Join(dir, "cube.glb")
	promFile := filepath.Join(dir, "run.prom")

	stdout, _, err := execute(t, "convert", "--report", "yaml", "--metrics-file", promFile,
		"--", "testdata/cube.stl", dst)
	require.NoError(t, err)

	assert.Contains(t, stdout, "Successfully converted testdata/cube.stl to "+dst)
	assert.Contains(t, stdout, "GLB file size: ")
	assert.Contains(t, stdout, "status: converted")

	info, err := os.Stat(dst)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))

	data, err := os.ReadFile(promFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `meshconv_conversions_total{outcome="converted"} 1`)
}

func TestConvertCommand_Errors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		args []string
	}{
		{name: "one argument", args: []string{"convert", "--", "testdata/cube.stl"}},
		{name: "unsupported source", args: []string{"convert", "--", "testdata/cube.obj", filepath.Join(dir, "a.glb")}},
		{name: "bad report format", args: []string{"convert", "--report", "xml", "--", "testdata/cube.stl", filepath.Join(dir, "b.glb")}},
		{name: "bad log level", args: []string{"convert", "--log-level", "chatty", "--", "testdata/cube.stl", filepath.Join(dir, "c.glb")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.NotContains(t, stdout, "Successfully converted")
		})
	}
}

func TestVersionCommand(t *testing.T) {
	stdout, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "meshconv dev\n", stdout)
}

func TestConvertCommand_Generator(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "cube.glb")
	_, _, err := execute(t, "convert", "--generator", "acme-pipeline", "--", "testdata/cube.stl", dst)
	require.NoError(t, err)

	doc, err := gltf.Open(dst)
	require.NoError(t, err)
	assert.Equal(t, "acme-pipeline", doc.Asset.Generator)
}

func TestConfigFlagUsage(t *testing.T) {
	usage := rootCmd.PersistentFlags().Lookup("config").Usage
	assert.Contains(t, usage, "./meshconv.yaml")
	assert.Contains(t, usage, "~/.config/meshconv/meshconv.yaml")
}
