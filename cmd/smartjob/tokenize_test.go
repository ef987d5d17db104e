package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/smartjob/internal/types"
)

func TestTokenizeCommand(t *testing.T) {
	stdout, _, err := runCLI(t, "tokenize", "--input", "React, react; Machine  Learning")
	require.NoError(t, err)

	out := decodeJSON[types.TokenizeResponse](t, stdout)
	assert.Equal(t, []string{"React", "Machine Learning"}, out.Skills)
}

func TestTokenizeCommand_Out(t *testing.T) {
	outFile := filepath.Join(t.TempDir(), "nested", "skills.json")

	stdout, _, err := runCLI(t, "tokenize", "-i", "go sql", "-o", outFile)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Successfully wrote")

	data, err := os.ReadFile(outFile)
	require.NoError(t, err)
	out := decodeJSON[types.TokenizeResponse](t, string(data))
	assert.Equal(t, []string{"go", "sql"}, out.Skills)
}

func TestTokenizeCommand_RequiresInput(t *testing.T) {
	_, _, err := runCLI(t, "tokenize")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required")
}
