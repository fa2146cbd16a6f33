package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/dotctl/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	for _, shell := range shells {
		t.Run(shell, func(t *testing.T) {
			var out bytes.Buffer
			require.NoError(t, generate(shell, &out))
			assert.Contains(t, out.String(), "dotctl")
		})
	}
}

func TestGenerate_UnknownShell(t *testing.T) {
	var out bytes.Buffer
	err := generate("tcsh", &out)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	assert.Empty(t, out.String())
}

func TestWriteAll(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "completions")

	written, err := writeAll(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "dotctl"),
		filepath.Join(dir, "_dotctl"),
		filepath.Join(dir, "dotctl.fish"),
		filepath.Join(dir, "dotctl.ps1"),
	}, written)

	for _, path := range written {
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.NotZero(t, info.Size(), path)
	}
}
