package e2e

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"
)

// findRepoRoot walks up from the current working directory to locate go.mod
func findRepoRoot(t *testing.T) string {
	t.Helper()
	dir, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatalf("could not locate go.mod from %s", dir)
		}
		dir = parent
	}
}

// buildWithLdflags builds a separate binary with build metadata injected.
func buildWithLdflags(t *testing.T, vars map[string]string) string {
	t.Helper()
	repoRoot := findRepoRoot(t)

	binaryName := "insert-filename"
	if runtime.GOOS == "windows" {
		binaryName += ".exe"
	}
	binaryPath := filepath.Join(t.TempDir(), binaryName)

	var flags []string
	for name, value := range vars {
		flags = append(flags, fmt.Sprintf("-X github.com/getlawrence/insert-filename/cmd.%s=%s", name, value))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()
	cmd := exec.CommandContext(ctx, "go", "build", "-o", binaryPath, "-ldflags", strings.Join(flags, " "), ".")
	cmd.Dir = repoRoot
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("build failed: %v\n%s", err, string(out))
	}
	return binaryPath
}

func TestVersionReportsBuildMetadata(t *testing.T) {
	t.Parallel()

	bin := buildWithLdflags(t, map[string]string{
		"Version":   "e2e-smoke",
		"GitCommit": "abc1234",
		"BuildDate": "2026-01-02",
	})

	res := runCLI(t, bin, t.TempDir(), "", "--version")
	if res.exitCode != 0 {
		t.Fatalf("--version exited %d: %s", res.exitCode, res.stderr)
	}
	for _, want := range []string{"e2e-smoke", "abc1234"} {
		if !strings.Contains(res.stdout, want) {
			t.Errorf("--version output missing %q: %q", want, res.stdout)
		}
	}

	res = runCLI(t, bin, t.TempDir(), "", "version", "--output", "json")
	if res.exitCode != 0 {
		t.Fatalf("version exited %d: %s", res.exitCode, res.stderr)
	}
	var info struct {
		Version   string `json:"version"`
		GitCommit string `json:"gitCommit"`
		BuildDate string `json:"buildDate"`
	}
	if err := json.Unmarshal([]byte(res.stdout), &info); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, res.stdout)
	}
	if info.Version != "e2e-smoke" || info.GitCommit != "abc1234" || info.BuildDate != "2026-01-02" {
		t.Errorf("version info = %+v", info)
	}

	res = runCLI(t, bin, t.TempDir(), "", "version")
	if !strings.HasPrefix(res.stdout, "insert-filename e2e-smoke\n") {
		t.Errorf("version text = %q", res.stdout)
	}
}
