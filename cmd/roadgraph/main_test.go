package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs(args)
	assert.NoError(t, rootCmd.Execute())
	return buf.String()
}

func TestTraverseFromGivenNode(t *testing.T) {
	out := execute(t, "traverse", "--file", "../../testdata/sample.json", "--start", "200")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, 3, len(lines))
	assert.Contains(t, lines[0], "1600 Ev6 hp1 m100-200")
	assert.Contains(t, lines[1], "<------")
}

func TestRoute(t *testing.T) {
	out := execute(t, "route", "--file", "../../testdata/sample.json", "--from", "100", "--to", "300")
	assert.Contains(t, out, "Path: 100 -> 200 -> 300")
}

func TestDumpWithConfiguration(t *testing.T) {
	out := execute(t, "dump", "--config", "../../testdata/roadgraph.hcl", "--file", "../../testdata/sample.json")
	assert.Contains(t, out, "Link 1600 Fv704 hp2 m0-100:")
	assert.Contains(t, out, "Startnode: 400")
}
