package cmd

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runVersionCommand(t *testing.T, args ...string) string {
	cmd := &cobra.Command{Use: "version", Run: runVersion}
	cmd.Flags().BoolP("short", "s", false, "")

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
	return out.String()
}

func TestVersionShort(t *testing.T) {
	output := runVersionCommand(t, "--short")
	assert.Equal(t, "v"+Version+"\n", output)
}

func TestVersionFull(t *testing.T) {
	output := runVersionCommand(t)
	assert.Contains(t, output, "Label Reader API")
	assert.Contains(t, output, "Version:      v"+Version)
	assert.Contains(t, output, "Go Version:")
}
