// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package command

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frontendcfg/frontendcfg/internal/config"
	"github.com/frontendcfg/frontendcfg/internal/meta"
)

// runEnv holds the runner files for a single test invocation.
type runEnv struct {
	dir        string
	configFile string
	outputFile string
	summary    string
	stdout     bytes.Buffer
}

// newRunEnv points every environment variable the app reads at a temp dir so
// the host environment cannot leak into a test.
func newRunEnv(t *testing.T) *runEnv {
	t.Helper()

	dir := t.TempDir()
	env := &runEnv{
		dir:        dir,
		configFile: filepath.Join(dir, "repository-config.yml"),
		outputFile: filepath.Join(dir, "github_output"),
		summary:    filepath.Join(dir, "step_summary"),
	}

	t.Setenv("REPOSITORY_CONFIG", "")
	t.Setenv("CONFIG_FILE", env.configFile)
	t.Setenv("GITHUB_OUTPUT", env.outputFile)
	t.Setenv("GITHUB_STEP_SUMMARY", env.summary)

	return env
}

func (e *runEnv) writeConfig(t *testing.T, text string) {
	t.Helper()
	require.NoError(t, os.WriteFile(e.configFile, []byte(text), 0o600))
}

func (e *runEnv) run(t *testing.T, args ...string) error {
	t.Helper()
	app := NewApp(meta.Meta{Stdout: &e.stdout})
	return app.Run(context.Background(), append([]string{"frontendcfg"}, args...))
}

func (e *runEnv) read(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(b)
}

const defaultOutputs = "dir=web\nnode-version=22\nhas-frontend=false\n"

func TestExtract_NoConfig(t *testing.T) {
	env := newRunEnv(t)

	require.NoError(t, env.run(t))

	want := "⚠️ No repository configuration found; using defaults (dir: web, node-version: 22)\n"
	assert.Equal(t, defaultOutputs, env.read(t, env.outputFile))
	assert.Equal(t, want, env.read(t, env.summary))
	assert.Equal(t, want, env.stdout.String())
}

func TestExtract_BlankConfigFile(t *testing.T) {
	env := newRunEnv(t)
	env.writeConfig(t, "\n  \n")

	require.NoError(t, env.run(t))

	assert.Equal(t, defaultOutputs, env.read(t, env.outputFile))
	assert.Contains(t, env.stdout.String(), "No repository configuration found")
}

func TestExtract_FromFile(t *testing.T) {
	env := newRunEnv(t)
	env.writeConfig(t, "working_directories:\n  frontend: client\nversions:\n  node: [\"20\", \"18\"]\n")

	require.NoError(t, env.run(t))

	want := "✅ Frontend configuration extracted from `" + env.configFile + "`\n" +
		"- Working directory: `client`\n" +
		"- Node.js version: `20`\n" +
		"- Has frontend: `true`\n"
	assert.Equal(t, "dir=client\nnode-version=20\nhas-frontend=true\n", env.read(t, env.outputFile))
	assert.Equal(t, want, env.read(t, env.summary))
	assert.Equal(t, want, env.stdout.String())
}

func TestExtract_InlineWinsOverFile(t *testing.T) {
	env := newRunEnv(t)
	env.writeConfig(t, "working_directories:\n  frontend: from-file\n")
	t.Setenv("REPOSITORY_CONFIG", "working_directories:\n  node: app\n")

	require.NoError(t, env.run(t))

	assert.Equal(t, "dir=app\nnode-version=22\nhas-frontend=true\n", env.read(t, env.outputFile))
	assert.True(t, strings.HasPrefix(env.stdout.String(),
		"✅ Frontend configuration extracted from `repository-config` input\n"))
}

func TestExtract_FlagsOverrideEnv(t *testing.T) {
	env := newRunEnv(t)
	otherOutput := filepath.Join(env.dir, "other_output")

	err := env.run(t,
		"--config", "versions: {node: 20}",
		"--github-output", otherOutput,
	)
	require.NoError(t, err)

	assert.Equal(t, "dir=web\nnode-version=20\nhas-frontend=true\n", env.read(t, otherOutput))
	assert.NoFileExists(t, env.outputFile)
}

func TestExtract_ParseFailure(t *testing.T) {
	env := newRunEnv(t)
	env.writeConfig(t, "working_directories: {frontend: client\n")

	err := env.run(t)
	require.Error(t, err)

	var reported *ReportedError
	assert.True(t, errors.As(err, &reported), "want *ReportedError, got %T", err)
	var pe *config.ParseError
	assert.True(t, errors.As(err, &pe), "want wrapped *config.ParseError")

	assert.True(t, strings.HasPrefix(env.stdout.String(), "::error::Failed to parse YAML: "), env.stdout.String())
	assert.True(t, strings.HasPrefix(env.read(t, env.summary), "❌ Failed to parse YAML: "))
	assert.Contains(t, err.Error(), "failed to parse YAML: ", "the error value itself stays lowercase")
	assert.Equal(t, defaultOutputs, env.read(t, env.outputFile))
}

func TestExtract_ConfigFileIsDirectory(t *testing.T) {
	env := newRunEnv(t)
	t.Setenv("CONFIG_FILE", env.dir)

	err := env.run(t)
	require.Error(t, err)

	var reported *ReportedError
	assert.True(t, errors.As(err, &reported))
	assert.Contains(t, env.stdout.String(), "::error::Config file path is a directory")
	assert.Equal(t, defaultOutputs, env.read(t, env.outputFile))
}

func TestExtract_RepeatedKeysAndYAML11Scalars(t *testing.T) {
	env := newRunEnv(t)
	env.writeConfig(t, "working_directories:\n  frontend: off\n  node: a\n  node: app\n"+
		"versions:\n  node: 2024-01-01\n")

	require.NoError(t, env.run(t))

	assert.Equal(t, "dir=app\nnode-version=2024-01-01\nhas-frontend=true\n", env.read(t, env.outputFile))
	assert.Contains(t, env.stdout.String(), "- Working directory: `app`")
}

func TestExtract_NoRunnerFiles(t *testing.T) {
	env := newRunEnv(t)
	t.Setenv("GITHUB_OUTPUT", "")
	t.Setenv("GITHUB_STEP_SUMMARY", "")
	env.writeConfig(t, "versions:\n  node: 20\n")

	require.NoError(t, env.run(t))

	assert.NoFileExists(t, env.outputFile)
	assert.NoFileExists(t, env.summary)
	assert.Contains(t, env.stdout.String(), "- Node.js version: `20`")
}

func TestExtract_OutputWriteFailure(t *testing.T) {
	env := newRunEnv(t)
	// A directory cannot be appended to.
	t.Setenv("GITHUB_OUTPUT", env.dir)
	env.writeConfig(t, "versions:\n  node: 20\n")

	err := env.run(t)
	require.Error(t, err)

	var reported *ReportedError
	assert.False(t, errors.As(err, &reported), "write failures are not pre-reported")
	assert.Contains(t, err.Error(), "failed to write step outputs")
}

func TestExtract_Idempotent(t *testing.T) {
	env := newRunEnv(t)
	env.writeConfig(t, "working_directories:\n  frontend: client\n")

	require.NoError(t, env.run(t))
	require.NoError(t, env.run(t))

	once := "dir=client\nnode-version=22\nhas-frontend=true\n"
	assert.Equal(t, once+once, env.read(t, env.outputFile))
}
