package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execCommand(t *testing.T, args ...string) string {
	t.Helper()
	root := newRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	require.NoError(t, err)
	return buf.String()
}

func TestProveCommandSuccess(t *testing.T) {
	out := execCommand(t, "prove", "one")
	assert.Contains(t, out, "Success")
}

func TestProveCommandFailure(t *testing.T) {
	out := execCommand(t, "prove", "zero")
	assert.Contains(t, out, "Failure(RanOutOfPaths)")
}

func TestProveCommandQuietSuppressesTree(t *testing.T) {
	out := execCommand(t, "prove", "--quiet", "one")
	assert.Contains(t, out, "Success")
	assert.NotContains(t, out, "⊢")
}

func TestCatalogCommandListsEntries(t *testing.T) {
	out := execCommand(t, "catalog")
	assert.Contains(t, out, "zero")
	assert.Contains(t, out, "one")
}

func TestDemoCommandReportsSummary(t *testing.T) {
	out := execCommand(t, "demo", "--workers", "2")
	assert.Contains(t, out, "entries")
	assert.Contains(t, out, "mismatches")
}
