package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func writeMap(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.map")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestVersionFlag(t *testing.T) {
	out, err := execute(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "courier version "+Version)
}

func TestRunDefaultSampleMap(t *testing.T) {
	out, err := execute(t, "run", "--algorithm", "astar")
	require.NoError(t, err)
	assert.Contains(t, out, "Initial grid: small")
	assert.Contains(t, out, "ASTAR results")
	assert.Contains(t, out, "success:        ok")
}

func TestRunMapFile(t *testing.T) {
	path := writeMap(t, "S,1,1\n1,X,1\n1,1,G\n")
	out, err := execute(t, "run", "--map", path, "--algorithm", "ucs")
	require.NoError(t, err)
	assert.Contains(t, out, "Initial grid: "+path)
	assert.Contains(t, out, "total cost:     5")
}

func TestRunRejectedMapFallsBackToDefault(t *testing.T) {
	path := writeMap(t, "X,G\n")
	out, err := execute(t, "run", "--map", path, "--algorithm", "bfs")
	require.NoError(t, err)
	assert.Contains(t, out, "Initial grid: default")
	assert.Contains(t, out, "total cost:     9")
}

func TestRunFailureExitsWithError(t *testing.T) {
	path := writeMap(t, "S,X\nX,G\n")
	out, err := execute(t, "run", "--map", path, "--algorithm", "astar")
	require.ErrorIs(t, err, ErrDeliveryFailed)
	assert.Contains(t, out, "failed (no_initial_path)")
}

func TestRunRejectsBadSize(t *testing.T) {
	_, err := execute(t, "run", "--size", "3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "WIDTH,HEIGHT")
}

func TestRunUnknownAlgorithm(t *testing.T) {
	_, err := execute(t, "run", "--algorithm", "dfs")
	require.Error(t, err)
}

func TestCompareAllAlgorithms(t *testing.T) {
	out, err := execute(t, "compare", "--seed", "4")
	require.NoError(t, err)

	var tableRows []string
	inTable := false
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "ALGORITHM") {
			inTable = true
			continue
		}
		if inTable && strings.TrimSpace(line) != "" {
			tableRows = append(tableRows, strings.Fields(line)[0])
		}
	}
	assert.Equal(t, []string{"bfs", "ucs", "astar", "hillclimb"}, tableRows)
}

func TestDemo(t *testing.T) {
	out, err := execute(t, "demo")
	require.NoError(t, err)
	assert.Contains(t, out, "Dynamic replanning demo")
	assert.Contains(t, out, "Final path")
	assert.Contains(t, out, "ASTAR results")
}

func TestGenMaps(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "maps")
	out, err := execute(t, "genmaps", "--dir", dir)
	require.NoError(t, err)
	for _, name := range []string{"small", "medium", "large", "dynamic"} {
		assert.FileExists(t, filepath.Join(dir, name+".map"))
		assert.Contains(t, out, name+".map")
	}
}
