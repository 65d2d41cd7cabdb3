package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/ooo/internal/clipboard"
)

type recordingCopier struct {
	err    error
	copied []string
}

func (r *recordingCopier) Copy(text string) error {
	r.copied = append(r.copied, text)
	return r.err
}

// executeCommand runs the root command with an isolated config directory.
func executeCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetIn(&bytes.Buffer{})
	if args == nil {
		args = []string{}
	}
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func stubCopier(t *testing.T, copier clipboard.Copier) {
	t.Helper()

	original := newCopier
	t.Cleanup(func() { newCopier = original })
	newCopier = func(*cobra.Command) clipboard.Copier { return copier }
}

func writeConfig(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}
