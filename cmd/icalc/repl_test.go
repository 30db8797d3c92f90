package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunREPLEvaluatesAndReportsErrors(t *testing.T) {
	in := strings.NewReader("(λx.x 42)\n(1 +\n:quit\n")
	var out strings.Builder

	require.NoError(t, runREPL(in, &out))

	got := out.String()
	require.Contains(t, got, "42", "expected successful evaluation result in output")
	require.Contains(t, got, "parse error", "expected a reported parse error in output")
}

func TestRunREPLDebugToggle(t *testing.T) {
	in := strings.NewReader(":debug\n(λx.x 1)\n:quit\n")
	var out strings.Builder

	require.NoError(t, runREPL(in, &out))

	got := out.String()
	require.Contains(t, got, "debug trace: true", "expected debug toggle acknowledgement")
	require.Contains(t, got, "reduction step", "expected a step trace line")
}

func TestEvaluate(t *testing.T) {
	result, steps, err := evaluate("(λx.x 42)", nil)
	require.NoError(t, err)
	require.Equal(t, "42", result)
	require.NotZero(t, steps)
}
