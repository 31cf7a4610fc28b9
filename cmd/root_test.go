package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"zlayer/internal/config"
)

// executeCommand runs the root command with args against a throwaway config
// file and returns the combined output.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(config.DefaultConfigTemplate()), 0o600))
	cfgFile = cfgPath

	// Flag values persist across executions in the same process; reset the
	// ones tests toggle.
	jsonOutput = false
	watchMode = false

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	// A nil slice would make cobra fall back to os.Args.
	if args == nil {
		args = []string{}
	}
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return buf.String(), err
}

func TestRoot_ResolveFixedLayer(t *testing.T) {
	out, err := executeCommand(t, "modal")

	require.NoError(t, err)
	require.Equal(t, "1000\n", out)
}

func TestRoot_ResolveWithOffset(t *testing.T) {
	out, err := executeCommand(t, "modal", "10")

	require.NoError(t, err)
	require.Equal(t, "1010\n", out)
}

func TestRoot_ResolveWithNegativeOffset(t *testing.T) {
	out, err := executeCommand(t, "modal", "-10")

	require.NoError(t, err)
	require.Equal(t, "990\n", out)
}

func TestRoot_ResolveCustomLayerIsStable(t *testing.T) {
	first, err := executeCommand(t, "brand-new-layer")
	require.NoError(t, err)
	require.Equal(t, "10099\n", first)

	second, err := executeCommand(t, "brand-new-layer")
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestRoot_InvalidOffset(t *testing.T) {
	_, err := executeCommand(t, "modal", "ten")

	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid offset")
}

func TestRoot_NoArgsPrintsUsageWithLiveExample(t *testing.T) {
	out, err := executeCommand(t)

	require.NoError(t, err)
	require.Contains(t, out, "Usage:")
	// The help embeds the actually resolved value for modal.
	require.Contains(t, out, "zlayer modal")
	require.Contains(t, out, "1000")
}

func TestLayers_ListsFixedTable(t *testing.T) {
	out, err := executeCommand(t, "layers")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 8)
	require.Contains(t, lines[0], "underworld")
	require.Contains(t, lines[7], "god-mode")
	for _, line := range lines {
		require.Contains(t, line, "→")
	}
}

func TestLayers_JSON(t *testing.T) {
	out, err := executeCommand(t, "layers", "--json")
	require.NoError(t, err)

	var decoded []struct {
		Name  string `json:"name"`
		Value int    `json:"value"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	require.Len(t, decoded, 8)
	require.Equal(t, "underworld", decoded[0].Name)
	require.Equal(t, -1, decoded[0].Value)
	require.Equal(t, "god-mode", decoded[7].Name)
	require.Equal(t, 9999, decoded[7].Value)
}

func TestDiagnose_CleanStylesheet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "styles.css")
	require.NoError(t, os.WriteFile(path, []byte(".a { z-index: 50; }"), 0o600))

	out, err := executeCommand(t, "diagnose", path)

	require.NoError(t, err)
	require.Contains(t, out, "no suspicious z-index values found")
}

func TestDiagnose_ReportsFindings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "styles.css")
	css := ".a { z-index: 1500; }\n.b { z-index: 100000; }\n"
	require.NoError(t, os.WriteFile(path, []byte(css), 0o600))

	out, err := executeCommand(t, "diagnose", path)

	require.NoError(t, err)
	require.Contains(t, out, "warning: z-index 1500")
	require.Contains(t, out, "severe: z-index 100000")
}

func TestDiagnose_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "styles.css")
	require.NoError(t, os.WriteFile(path, []byte("z-index: 1500;"), 0o600))

	out, err := executeCommand(t, "diagnose", path, "--json")
	require.NoError(t, err)

	var decoded []struct {
		Severity string `json:"severity"`
		Value    int    `json:"value"`
		Line     int    `json:"line"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	require.Len(t, decoded, 1)
	require.Equal(t, "warning", decoded[0].Severity)
	require.Equal(t, 1500, decoded[0].Value)
}

// An unreadable file is a message, not a failure: exit stays zero.
func TestDiagnose_MissingFileDoesNotFail(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist.css")

	out, err := executeCommand(t, "diagnose", path)

	require.NoError(t, err)
	require.Contains(t, out, "cannot read")
	require.Contains(t, out, path)
}

func TestDiagnose_MissingArgument(t *testing.T) {
	_, err := executeCommand(t, "diagnose")

	require.Error(t, err)
}
