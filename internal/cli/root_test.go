package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/leapstack-labs/baldguard/internal/cli/commands"
	"github.com/leapstack-labs/baldguard/internal/cli/config"
	"github.com/leapstack-labs/baldguard/internal/cli/output"
	"github.com/leapstack-labs/baldguard/internal/cli/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Cleanup(config.ResetConfig)

	cmd := NewRootCmd()
	out, errOut := new(bytes.Buffer), new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func TestRootCommand_Help(t *testing.T) {
	t.Chdir(t.TempDir())
	out, _, err := run(t, "--help")
	require.NoError(t, err)

	for _, sub := range []string{"parse", "assign", "ident", "tokens", "fmt", "check", "repl", "version", "completion"} {
		assert.Contains(t, out, sub)
	}
}

func TestRootCommand_Version(t *testing.T) {
	t.Chdir(t.TempDir())
	out, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "baldguard v"+Version)
}

func TestRootCommand_OutputFlag(t *testing.T) {
	t.Chdir(t.TempDir())

	out, _, err := run(t, "-o", "yaml", "parse", "a")
	require.NoError(t, err)
	assert.Equal(t, "Identifier: a\n", out)

	out, _, err = run(t, "--output", "text", "--color", "never", "parse", "a")
	require.NoError(t, err)
	assert.Contains(t, out, "Identifier a")
	testutil.AssertNoANSI(t, out)
}

func TestRootCommand_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "baldguard.yaml"), []byte("max_depth: 1\n"), 0o600))

	_, errOut, err := run(t, "parse", "((a))")
	require.ErrorIs(t, err, commands.ErrReported)
	assert.Contains(t, errOut, "nested too deeply (limit 1)")

	// flag beats file
	_, _, err = run(t, "--max-depth", "5", "parse", "((a))")
	assert.NoError(t, err)
}

func TestRootCommand_InvalidConfig(t *testing.T) {
	t.Chdir(t.TempDir())
	_, _, err := run(t, "-o", "xml", "parse", "a")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid output format")
}

func TestRootCommand_Check(t *testing.T) {
	dir, paths := testutil.SetupRulesDir(t, map[string]string{
		"a.rules":        "a and b\n",
		"nested/b.rules": "# comment\nscore * 2 = limit\n",
	})
	t.Chdir(dir)

	out, _, err := run(t, "-o", "json", "check", paths[0], paths[1])
	require.NoError(t, err)
	assert.Contains(t, out, `"expressions": 2`)
	assert.Contains(t, out, `"errors": 0`)
}

func TestRootCommand_LoggerInContext(t *testing.T) {
	t.Chdir(t.TempDir())
	_, errOut, err := run(t, "-v", "-o", "json", "parse", "a")
	require.NoError(t, err)
	assert.Contains(t, errOut, "parsed expression")
}

func TestCompletionCommand(t *testing.T) {
	t.Chdir(t.TempDir())
	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		t.Run(shell, func(t *testing.T) {
			out, _, err := run(t, "completion", shell)
			require.NoError(t, err)
			assert.Contains(t, out, "baldguard")
		})
	}

	_, _, err := run(t, "completion", "tcsh")
	assert.Error(t, err)
}

func TestGetConfig(t *testing.T) {
	assert.Equal(t, config.Default(), GetConfig(context.Background()))

	cfg := &config.Config{OutputFormat: string(output.ModeYAML)}
	ctx := context.WithValue(context.Background(), configKey{}, cfg)
	assert.Same(t, cfg, GetConfig(ctx))
}
