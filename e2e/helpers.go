//go:build e2e

package e2e

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// cli runs the built appwritectl binary from a scratch directory. The binary
// comes from APPWRITECTL_BINARY or ../bin/appwritectl.
type cli struct {
	t   *testing.T
	bin string
	dir string
	env []string
}

func newCLI(t *testing.T) *cli {
	t.Helper()
	bin := os.Getenv("APPWRITECTL_BINARY")
	if bin == "" {
		bin = filepath.Join("..", "bin", "appwritectl")
	}
	// exec.Command resolves relative paths against Cmd.Dir.
	abs, err := filepath.Abs(bin)
	require.NoError(t, err, "resolve appwritectl binary")
	return &cli{t: t, bin: abs, dir: t.TempDir()}
}

// withEnv adds KEY=VALUE entries that override the inherited environment.
func (c *cli) withEnv(kv ...string) *cli {
	c.env = append(c.env, kv...)
	return c
}

// writeFile creates name in the working directory.
func (c *cli) writeFile(name, content string) *cli {
	c.t.Helper()
	require.NoError(c.t, os.WriteFile(filepath.Join(c.dir, name), []byte(content), 0o644))
	return c
}

type result struct {
	stdout string
	stderr string
	code   int
}

func (c *cli) run(args ...string) result {
	c.t.Helper()

	cmd := exec.Command(c.bin, args...)
	cmd.Dir = c.dir
	cmd.Env = append(os.Environ(), c.env...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout, cmd.Stderr = &stdout, &stderr

	err := cmd.Run()
	res := result{stdout: stdout.String(), stderr: stderr.String()}
	var exitErr *exec.ExitError
	switch {
	case errors.As(err, &exitErr):
		res.code = exitErr.ExitCode()
	case err != nil:
		c.t.Fatalf("appwritectl %s did not start: %v", strings.Join(args, " "), err)
	}

	c.t.Logf("appwritectl %s -> exit %d\nstdout:\n%s\nstderr:\n%s",
		strings.Join(args, " "), res.code, res.stdout, res.stderr)
	return res
}

func (r result) succeeded(t *testing.T) result {
	t.Helper()
	require.Zero(t, r.code, "stderr: %s", r.stderr)
	return r
}

func (r result) failed(t *testing.T) result {
	t.Helper()
	require.NotZero(t, r.code, "stdout: %s", r.stdout)
	return r
}

func (r result) mentions(t *testing.T, substr string) result {
	t.Helper()
	require.Contains(t, r.stdout+r.stderr, substr)
	return r
}

func (r result) decode(t *testing.T, v any) {
	t.Helper()
	r.succeeded(t)
	require.NoError(t, json.Unmarshal([]byte(r.stdout), v), "stdout: %s", r.stdout)
}

// liveProject returns the env for tests against a real project, skipping the
// test when none is configured.
func liveProject(t *testing.T) []string {
	t.Helper()
	endpoint, project := os.Getenv(endpointEnv), os.Getenv(projectEnv)
	if endpoint == "" || project == "" {
		t.Skipf("set %s and %s to run against a live project", endpointEnv, projectEnv)
	}
	return []string{
		"VITE_APPWRITE_ENDPOINT=" + endpoint,
		"VITE_APPWRITE_PROJECT_ID=" + project,
	}
}
