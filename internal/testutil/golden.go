// Package testutil carries shared test fixtures and the golden-file
// helper used by disassembly and CLI snapshot tests.
package testutil

import (
	"testing"

	"github.com/sebdah/goldie/v2"
)

// AssertGolden compares got against the golden file
// testdata/golden/<name>.golden relative to the calling test package.
//
// To regenerate golden files, run the package tests with -update.
func AssertGolden(t *testing.T, name string, got []byte) {
	t.Helper()
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, got)
}
