package scafgo

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_UsageRendersStyledHeaders(t *testing.T) {
	rootCmd := NewRootCmd()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"--help"})

	require.NoError(t, rootCmd.Execute())

	// Section headers go through the boldUpper template func; without a
	// terminal that means plain uppercase
	help := out.String()
	assert.Contains(t, help, "USAGE:")
	assert.Contains(t, help, "AVAILABLE COMMANDS:")
	assert.Contains(t, help, "FLAGS:")
	assert.Contains(t, help, "run")
	assert.Contains(t, help, "list")
}

func TestRootCmd_SubcommandUsageUsesTemplate(t *testing.T) {
	rootCmd := NewRootCmd()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"run", "--help"})

	require.NoError(t, rootCmd.Execute())

	help := out.String()
	assert.Contains(t, help, "USAGE:")
	assert.Contains(t, help, "EXAMPLES:")
	assert.Contains(t, help, "GLOBAL FLAGS:")
	assert.Contains(t, help, "--skip-shim")
}

func TestFormatHelpers_PlainWhenNotATerminal(t *testing.T) {
	// Test processes run without a tty on stdout, so no ANSI styling leaks
	assert.Equal(t, "USAGE:", formatUpper("Usage:"))
	assert.Equal(t, "scafgo", formatBold("scafgo"))
	assert.Equal(t, "FLAGS:", formatBoldUpper("Flags:"))
}
