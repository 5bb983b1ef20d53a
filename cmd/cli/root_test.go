package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stdout)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), err
}

func TestFormulaCommand(t *testing.T) {
	output, err := execute(t, "(a or b or c) and (not a or b or not c)\n", "formula")

	require.NoError(t, err)
	assert.Equal(t, "3 2\n\na\nb\nc\n\na b c\n!a b !c\n", output)
}

func TestReduceCommand(t *testing.T) {
	t.Run("Standard input", func(t *testing.T) {
		output, err := execute(t, "2 2\n\nx\ny\n\nx y\ny x", "reduce", "--kind", "HamCycle-HamCircuit")

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(output, "6 6\n"))
	})

	t.Run("Several files", func(t *testing.T) {
		//** Arrange
		directory := t.TempDir()
		first, second := filepath.Join(directory, "first.txt"), filepath.Join(directory, "second.txt")
		require.NoError(t, os.WriteFile(first, []byte("1 1\n\na\n\na"), 0666))
		require.NoError(t, os.WriteFile(second, []byte("2 1\n\na\nb\n\na !b"), 0666))
		out := filepath.Join(directory, "out")

		//** Act
		_, err := execute(t, "", "reduce", "--kind", "3SAT-SSP", "--out", out, first, second)

		//** Assert
		require.NoError(t, err)
		content, err := os.ReadFile(filepath.Join(out, "first.txt"))
		require.NoError(t, err)
		assert.Equal(t, "4 2\n\n13\n\n11\n10\n01\n01\n", string(content))
		_, err = os.Stat(filepath.Join(out, "second.txt"))
		assert.NoError(t, err)
	})

	t.Run("Unsupported kind", func(t *testing.T) {
		_, err := execute(t, "1 1\n\na\n\na", "reduce", "--kind", "3SAT-Clique")
		assert.ErrorContains(t, err, "not implemented")
	})
}

func TestChainCommand(t *testing.T) {
	output, err := execute(t, "1 1\n\na\n\na", "chain", "--kinds", "3SAT-HamCycle,HamCycle-HamCircuit")

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(output, "27 35\n"), output)
}

func TestDimacsCommand(t *testing.T) {
	output, err := execute(t, "2 1\n\na\nb\n\na !b", "dimacs")
	require.NoError(t, err)
	assert.Equal(t, "p cnf 2 1\n1 -2 0\n", output)

	output, err = execute(t, output, "dimacs", "--reverse")
	require.NoError(t, err)
	assert.Equal(t, "2 1\n\nx1\nx2\n\nx1 !x2\n", output)
}

func TestGraphCommand(t *testing.T) {
	output, err := execute(t, "b a\nc\n", "graph")

	require.NoError(t, err)
	assert.Equal(t, "3 1\n\na\nb\nc\n\nb a\n", output)
}

func TestKindsCommand(t *testing.T) {
	output, err := execute(t, "", "kinds")

	require.NoError(t, err)
	assert.Contains(t, output, "3SAT-3DM")
	assert.Contains(t, output, "HamCircuit-TSP")
}
