package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSuiteValid(t *testing.T) {
	require.NoError(t, DefaultSuite().Validate())
}

func TestLoadSuite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "suite.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
sizes: [8, 16]
dtypes: [f32]
iterations: 5
ops: [dot]
`), 0o644))

	s, err := LoadSuite(path)
	require.NoError(t, err)

	assert.Equal(t, []int{8, 16}, s.Sizes)
	assert.Equal(t, []string{"f32"}, s.Dtypes)
	assert.Equal(t, 5, s.Iterations)
	assert.Equal(t, []string{"dot"}, s.Ops)

	// Fields the file leaves out keep their defaults.
	assert.Equal(t, DefaultSuite().MatrixSizes, s.MatrixSizes)
	assert.Equal(t, DefaultSuite().Seed, s.Seed)
}

func TestLoadSuiteMissingFile(t *testing.T) {
	_, err := LoadSuite(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadSuiteBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "suite.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sizes: ["), 0o644))

	_, err := LoadSuite(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Suite)
	}{
		{"NoSizes", func(s *Suite) { s.Sizes = nil; s.MatrixSizes = nil }},
		{"NegativeSize", func(s *Suite) { s.Sizes = []int{-4} }},
		{"ZeroMatrixSize", func(s *Suite) { s.MatrixSizes = []int{0} }},
		{"ZeroIterations", func(s *Suite) { s.Iterations = 0 }},
		{"UnknownDtype", func(s *Suite) { s.Dtypes = []string{"f16"} }},
		{"UnknownOp", func(s *Suite) { s.Ops = []string{"eigen"} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSuite()
			tt.mutate(&s)
			assert.Error(t, s.Validate())
		})
	}
}
