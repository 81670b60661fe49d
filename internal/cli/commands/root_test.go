package commands

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hernantz/jay/internal/core/jump"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type env struct {
	cwd        string
	dataDir    string
	configPath string
}

// newEnv isolates the data directory, config file and working directory
func newEnv(t *testing.T) *env {
	t.Helper()
	e := &env{
		cwd:        t.TempDir(),
		dataDir:    t.TempDir(),
		configPath: filepath.Join(t.TempDir(), "config.yaml"),
	}
	t.Setenv("JAY_DATA_DIR", e.dataDir)
	// Equivalent of t.Chdir (Go 1.24+) for older toolchains.
	oldwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(e.cwd))
	t.Setenv("PWD", e.cwd)
	t.Cleanup(func() { _ = os.Chdir(oldwd) })
	return e
}

func (e *env) mkdirs(t *testing.T, rels ...string) {
	t.Helper()
	for _, rel := range rels {
		require.NoError(t, os.MkdirAll(filepath.Join(e.cwd, rel), 0o755))
	}
}

func (e *env) execute(args ...string) (string, string, error) {
	cmd := NewRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	if len(args) > 0 && args[0] == "__complete" {
		cmd.SetArgs(append([]string{args[0], "--config", e.configPath}, args[1:]...))
	} else {
		cmd.SetArgs(append([]string{"--config", e.configPath}, args...))
	}
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func (e *env) readData(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(e.dataDir, name))
	require.NoError(t, err)
	return string(data)
}

func TestRoot_Jump(t *testing.T) {
	e := newEnv(t)
	e.mkdirs(t, "proj/src", "proj/docs")
	target := filepath.Join(e.cwd, "proj", "src")

	stdout, stderr, err := e.execute("proj", "src")
	require.NoError(t, err)
	assert.Equal(t, target+"\n", stdout)
	assert.Empty(t, stderr)

	assert.True(t, strings.HasPrefix(e.readData(t, "index"), target+","))
	assert.Equal(t, e.cwd, e.readData(t, "recent"))

	t.Run("indexed directory by a single word", func(t *testing.T) {
		stdout, _, err := e.execute("src")
		require.NoError(t, err)
		assert.Equal(t, target+"\n", stdout)
	})

	t.Run("dash returns to where the last jump started", func(t *testing.T) {
		stdout, _, err := e.execute("-")
		require.NoError(t, err)
		assert.Equal(t, e.cwd+"\n", stdout)
	})
}

func TestRoot_NoInput(t *testing.T) {
	e := newEnv(t)
	home := t.TempDir()
	t.Setenv("HOME", home)

	stdout, _, err := e.execute()
	require.NoError(t, err)
	assert.Equal(t, home+"\n", stdout)
}

func TestRoot_NotFound(t *testing.T) {
	e := newEnv(t)

	stdout, stderr, err := e.execute("nothing-like-this")
	assert.ErrorIs(t, err, jump.ErrNotFound)
	assert.Empty(t, stdout)
	assert.Empty(t, stderr)
}

func TestRoot_StaleDirectory(t *testing.T) {
	e := newEnv(t)
	gone := filepath.Join(t.TempDir(), "gone")
	require.NoError(t, os.WriteFile(filepath.Join(e.dataDir, "index"), []byte(gone+",1\n"), 0o644))

	stdout, _, err := e.execute("gone")
	var stale *jump.StaleDirectoryError
	require.True(t, errors.As(err, &stale), "got %v", err)
	assert.Equal(t, fmt.Sprintf("jay: directory %s not found.\n", gone), stdout)
	assert.Empty(t, e.readData(t, "index"))
}

func TestRoot_List(t *testing.T) {
	e := newEnv(t)
	e.mkdirs(t, "proj")
	_, _, err := e.execute("proj")
	require.NoError(t, err)

	t.Run("pretty", func(t *testing.T) {
		stdout, _, err := e.execute("--list")
		require.NoError(t, err)
		assert.Contains(t, stdout, filepath.Join(e.cwd, "proj"))
	})

	t.Run("json", func(t *testing.T) {
		stdout, _, err := e.execute("--list", "--format", "json")
		require.NoError(t, err)

		var entries []struct {
			Path string `json:"path"`
		}
		require.NoError(t, json.Unmarshal([]byte(stdout), &entries))
		require.Len(t, entries, 1)
		assert.Equal(t, filepath.Join(e.cwd, "proj"), entries[0].Path)
	})

	t.Run("unknown format", func(t *testing.T) {
		_, _, err := e.execute("--list", "--format", "xml")
		assert.Error(t, err)
	})
}

func TestRoot_Prune(t *testing.T) {
	e := newEnv(t)
	e.mkdirs(t, "kept")
	kept := filepath.Join(e.cwd, "kept")
	gone := filepath.Join(e.cwd, "gone")
	seeded := fmt.Sprintf("%s,2\n%s,1\n", gone, kept)
	require.NoError(t, os.WriteFile(filepath.Join(e.dataDir, "index"), []byte(seeded), 0o644))

	stdout, _, err := e.execute("--prune")
	require.NoError(t, err)
	assert.Contains(t, stdout, gone)
	assert.Equal(t, kept+",1\n", e.readData(t, "index"))
}

func TestRoot_SetupBash(t *testing.T) {
	e := newEnv(t)

	stdout, _, err := e.execute("--setup-bash")
	require.NoError(t, err)

	path := filepath.Join(e.dataDir, "jay.bash")
	assert.Equal(t, path+"\n", stdout)
	assert.Contains(t, e.readData(t, "jay.bash"), "j() {")
}

func TestRoot_InvalidInvocations(t *testing.T) {
	e := newEnv(t)

	tests := []struct {
		name string
		args []string
	}{
		{"modes are exclusive", []string{"--list", "--prune"}},
		{"modes take no input", []string{"--list", "proj"}},
		{"unknown log level", []string{"--log-level", "loud", "proj"}},
		{"unknown log format", []string{"--log-format", "xml", "proj"}},
		{"unknown flag", []string{"--nope"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := e.execute(tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestRoot_ConfigFile(t *testing.T) {
	e := newEnv(t)
	require.NoError(t, os.WriteFile(e.configPath, []byte("index_max_size: 0\n"), 0o644))

	_, _, err := e.execute("proj")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestRoot_DebugLogging(t *testing.T) {
	e := newEnv(t)
	e.mkdirs(t, "proj")

	_, stderr, err := e.execute("--log-level", "debug", "--log-format", "json", "proj")
	require.NoError(t, err)
	assert.Contains(t, stderr, `"app":"jay"`)
	assert.Contains(t, stderr, `"level":"DEBUG"`)
}

func TestRoot_Completion(t *testing.T) {
	e := newEnv(t)
	e.mkdirs(t, "proj/src", "proj/docs", "other")

	t.Run("first word", func(t *testing.T) {
		stdout, _, err := e.execute("__complete", "pr")
		require.NoError(t, err)
		assert.Equal(t, []string{"proj", ":4"}, strings.Fields(stdout))
	})

	t.Run("after a walk", func(t *testing.T) {
		stdout, _, err := e.execute("__complete", "proj", "")
		require.NoError(t, err)
		assert.Equal(t, []string{"docs", "src", ":4"}, strings.Fields(stdout))
	})
}

func TestRoot_Version(t *testing.T) {
	e := newEnv(t)

	stdout, _, err := e.execute("--version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "jay version dev")
}

func TestReportError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		silent bool
	}{
		{"not found", jump.ErrNotFound, true},
		{"stale", &jump.StaleDirectoryError{Path: "/gone"}, true},
		{"wrapped not found", fmt.Errorf("resolve: %w", jump.ErrNotFound), true},
		{"other", errors.New("disk full"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			reportError(&buf, tt.err)
			if tt.silent {
				assert.Empty(t, buf.String())
			} else {
				assert.Contains(t, buf.String(), tt.err.Error())
			}
		})
	}
}
