package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/doctags/internal/cli"
	"github.com/yaklabco/doctags/pkg/anchor"
)

const testSourceWithAnchors = `class Worker {
    // TODO: add retry logic
    void Run() {
        var s = "// TODO: not a real anchor";
    }
    // HACK(bob): temporary
}
`

func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := cli.NewRootCommand(cli.BuildInfo{Version: "test"})

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String() + stderr.String(), err
}

func TestIntegration_AnchorsPretty(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	srcFile := filepath.Join(tmpDir, "worker.cs")
	require.NoError(t, os.WriteFile(srcFile, []byte(testSourceWithAnchors), 0o644))

	output, err := executeCommand(t, "anchors", "--color", "never", srcFile)
	require.NoError(t, err)

	assert.Contains(t, output, "worker.cs")
	assert.Contains(t, output, "TODO")
	assert.Contains(t, output, "add retry logic")
	assert.Contains(t, output, "HACK")
	assert.Contains(t, output, "(bob)")
	assert.Contains(t, output, "2 anchors")
	assert.NotContains(t, output, "not a real anchor")
}

func TestIntegration_AnchorsJSON(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	srcFile := filepath.Join(tmpDir, "worker.cs")
	require.NoError(t, os.WriteFile(srcFile, []byte(testSourceWithAnchors), 0o644))

	output, err := executeCommand(t, "anchors", "--json", "--project", "demo", srcFile)
	require.NoError(t, err)

	var items []anchor.Item
	require.NoError(t, json.Unmarshal([]byte(output), &items))
	require.Len(t, items, 2)

	assert.Equal(t, "TODO", items[0].Tag)
	assert.Equal(t, 2, items[0].Line)
	assert.Equal(t, "demo", items[0].Project)
	assert.Equal(t, "HACK", items[1].Tag)
	assert.Equal(t, "(bob)", items[1].Metadata)
}

func TestIntegration_AnchorsFailOnFound(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	srcFile := filepath.Join(tmpDir, "worker.cs")
	require.NoError(t, os.WriteFile(srcFile, []byte(testSourceWithAnchors), 0o644))

	_, err := executeCommand(t, "anchors", "--fail-on-found", "--color", "never", srcFile)
	require.ErrorIs(t, err, cli.ErrAnchorsFound)
}

func TestIntegration_AnchorsEmptyDir(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()

	output, err := executeCommand(t, "anchors", "--color", "never", tmpDir)
	require.NoError(t, err)
	assert.Contains(t, output, "no anchors")
}

func TestIntegration_FmtCheckAndWrite(t *testing.T) {
	t.Parallel()

	content := `/// <summary>
/// Short.
/// </summary>
class C {}
`
	tmpDir := t.TempDir()
	srcFile := filepath.Join(tmpDir, "c.cs")
	require.NoError(t, os.WriteFile(srcFile, []byte(content), 0o644))

	// Check mode reports the file and exits non-zero without touching it.
	output, err := executeCommand(t, "fmt", srcFile)
	require.ErrorIs(t, err, cli.ErrUnformatted)
	assert.Contains(t, output, srcFile)

	unchanged, readErr := os.ReadFile(srcFile)
	require.NoError(t, readErr)
	assert.Equal(t, content, string(unchanged))

	// Write mode collapses the summary in place.
	_, err = executeCommand(t, "fmt", "--write", srcFile)
	require.NoError(t, err)

	rewritten, readErr := os.ReadFile(srcFile)
	require.NoError(t, readErr)
	assert.Contains(t, string(rewritten), "/// <summary>Short.</summary>")
	assert.Contains(t, string(rewritten), "class C {}")

	// A second pass finds nothing to do.
	_, err = executeCommand(t, "fmt", srcFile)
	require.NoError(t, err)
}

func TestIntegration_FmtAlreadyFormatted(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	srcFile := filepath.Join(tmpDir, "c.cs")
	require.NoError(t, os.WriteFile(srcFile,
		[]byte("/// <summary>Short.</summary>\nclass C {}\n"), 0o644))

	_, err := executeCommand(t, "fmt", srcFile)
	require.NoError(t, err)
}

func TestIntegration_RenderBlock(t *testing.T) {
	t.Parallel()

	content := `/// <summary>Adds two numbers.</summary>
/// <param name="a">Left operand.</param>
/// <returns>The sum.</returns>
int Add(int a, int b) => a + b;
`
	tmpDir := t.TempDir()
	srcFile := filepath.Join(tmpDir, "calc.cs")
	require.NoError(t, os.WriteFile(srcFile, []byte(content), 0o644))

	output, err := executeCommand(t, "render", "--color", "never", srcFile)
	require.NoError(t, err)

	assert.Contains(t, output, "Adds two numbers.")
	assert.Contains(t, output, "Parameters:")
	assert.Contains(t, output, "Left operand.")
	assert.Contains(t, output, "Returns:")
	assert.Contains(t, output, "The sum.")
}

func TestIntegration_RenderSummaryMode(t *testing.T) {
	t.Parallel()

	content := `/// <summary>Adds <c>two</c> numbers.</summary>
int Add(int a, int b) => a + b;
`
	tmpDir := t.TempDir()
	srcFile := filepath.Join(tmpDir, "calc.cs")
	require.NoError(t, os.WriteFile(srcFile, []byte(content), 0o644))

	output, err := executeCommand(t, "render", "--color", "never", "--summary", srcFile)
	require.NoError(t, err)

	assert.Contains(t, output, "calc.cs:1")
	assert.Contains(t, output, "Adds two numbers.")
}

func TestIntegration_RenderNoDocComments(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	srcFile := filepath.Join(tmpDir, "plain.cs")
	require.NoError(t, os.WriteFile(srcFile, []byte("class C {}\n"), 0o644))

	_, err := executeCommand(t, "render", srcFile)
	require.Error(t, err)
}

func TestIntegration_ConfigCustomTags(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	cfgFile := filepath.Join(tmpDir, "doctags.yaml")
	require.NoError(t, os.WriteFile(cfgFile,
		[]byte("custom_anchor_tags:\n  - MYTAG\n"), 0o644))

	srcFile := filepath.Join(tmpDir, "a.cs")
	require.NoError(t, os.WriteFile(srcFile,
		[]byte("// MYTAG: custom vocabulary\n"), 0o644))

	output, err := executeCommand(t, "anchors", "--config", cfgFile, "--color", "never", srcFile)
	require.NoError(t, err)
	assert.Contains(t, output, "MYTAG")
	assert.Contains(t, output, "custom vocabulary")
}
