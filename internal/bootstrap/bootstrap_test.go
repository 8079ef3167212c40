package bootstrap

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/interceptsdr/setup/internal/advise"
	"github.com/interceptsdr/setup/internal/config"
	"github.com/interceptsdr/setup/internal/logger"
	"github.com/interceptsdr/setup/internal/platform"
	"github.com/interceptsdr/setup/internal/pyruntime"
	"github.com/interceptsdr/setup/internal/tools"
)

// mockCommander implements commander.Commander for testing
type mockCommander struct {
	lookPathFunc func(string) (string, error)
	runFunc      func(context.Context, string, []string, string) (string, error)
}

func (m *mockCommander) LookPath(name string) (string, error) {
	if m.lookPathFunc != nil {
		return m.lookPathFunc(name)
	}
	return "", os.ErrNotExist
}

func (m *mockCommander) Run(ctx context.Context, name string, args []string, dir string) (string, error) {
	if m.runFunc != nil {
		return m.runFunc(ctx, name, args, dir)
	}
	return "", nil
}

func lookPathSet(names ...string) func(string) (string, error) {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return func(name string) (string, error) {
		if set[name] {
			return "/usr/bin/" + name, nil
		}
		return "", os.ErrNotExist
	}
}

func debianDetector(t *testing.T) *platform.Detector {
	t.Helper()
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "etc"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "etc", "debian_version"), []byte("12.5\n"), 0644); err != nil {
		t.Fatal(err)
	}
	return &platform.Detector{GOOS: "linux", Root: root}
}

// Everything present, direct install succeeds: exit clean with the
// success line and no environment on disk.
func TestRunAllToolsPresentDirectInstall(t *testing.T) {
	workDir := t.TempDir()

	names := []string{"python3"}
	for _, tool := range tools.Table() {
		names = append(names, tool.Command)
	}
	cmdr := &mockCommander{
		lookPathFunc: lookPathSet(names...),
		runFunc: func(ctx context.Context, name string, args []string, dir string) (string, error) {
			if len(args) == 1 && args[0] == "--version" {
				return "Python 3.11.4", nil
			}
			return "", nil
		},
	}

	t.Setenv("VIRTUAL_ENV", "")
	runner := NewRunner(config.DefaultConfig(), logger.Discard{}, workDir)
	runner.Commander = cmdr
	runner.Detector = debianDetector(t)

	s, err := runner.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Install.Outcome != pyruntime.OutcomeInstalledDirectly {
		t.Errorf("Outcome = %v, want InstalledDirectly", s.Install.Outcome)
	}
	if len(s.Missing) != 0 {
		t.Errorf("no tools should be missing, got %v", s.Missing)
	}
	if len(s.Advice) != 1 || s.Advice[0] != advise.SuccessLine {
		t.Errorf("Advice = %v, want only the success line", s.Advice)
	}
	if s.VenvOnDisk {
		t.Error("no environment should exist after a direct install")
	}
}

// Externally-managed system Python on Debian with three tools missing:
// the run completes with a virtual environment and apt remediation.
func TestRunExternallyManagedFallbackOnDebian(t *testing.T) {
	workDir := t.TempDir()

	present := []string{"python3"}
	missing := map[string]bool{"multimon-ng": true, "airodump-ng": true, "hcitool": true}
	for _, tool := range tools.Table() {
		if !missing[tool.Command] {
			present = append(present, tool.Command)
		}
	}

	cmdr := &mockCommander{
		lookPathFunc: lookPathSet(present...),
		runFunc: func(ctx context.Context, name string, args []string, dir string) (string, error) {
			switch {
			case len(args) == 1 && args[0] == "--version":
				return "Python 3.11.4", nil
			case name == "python3" && len(args) > 1 && args[1] == "pip":
				return "error: externally-managed-environment", errors.New("exit status 1")
			case len(args) > 1 && args[1] == "venv":
				os.MkdirAll(filepath.Join(workDir, "venv", "bin"), 0755)
				os.WriteFile(filepath.Join(workDir, "venv", "bin", "activate"), []byte("# activate\n"), 0644)
				os.WriteFile(filepath.Join(workDir, "venv", "bin", "python"), []byte(""), 0755)
				return "", nil
			}
			return "", nil
		},
	}

	t.Setenv("VIRTUAL_ENV", "")
	runner := NewRunner(config.DefaultConfig(), logger.Discard{}, workDir)
	runner.Commander = cmdr
	runner.Detector = debianDetector(t)

	s, err := runner.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Platform != platform.Debian {
		t.Errorf("Platform = %v, want Debian", s.Platform)
	}
	if s.Install.Outcome != pyruntime.OutcomeInstalledInEnv {
		t.Errorf("Outcome = %v, want InstalledInEnv", s.Install.Outcome)
	}
	if !s.Install.ActivationRequired {
		t.Error("ActivationRequired should be set on the fallback path")
	}
	if len(s.Missing) != 3 {
		t.Errorf("Missing = %v, want 3 entries", s.Missing)
	}
	if !s.VenvOnDisk {
		t.Error("environment should exist on disk at the end of the run")
	}
	joined := strings.Join(s.Advice, "\n")
	for _, want := range []string{"sudo apt update", "multimon-ng", "aircrack-ng", "bluez"} {
		if !strings.Contains(joined, want) {
			t.Errorf("advice should contain %q:\n%s", want, joined)
		}
	}
}

// The runtime gate fails before any install attempt.
func TestRunOldPythonIsFatal(t *testing.T) {
	workDir := t.TempDir()
	var installs int
	cmdr := &mockCommander{
		lookPathFunc: lookPathSet("python3"),
		runFunc: func(ctx context.Context, name string, args []string, dir string) (string, error) {
			if len(args) == 1 && args[0] == "--version" {
				return "Python 3.8.10", nil
			}
			installs++
			return "", nil
		},
	}

	runner := NewRunner(config.DefaultConfig(), logger.Discard{}, workDir)
	runner.Commander = cmdr
	runner.Detector = debianDetector(t)

	if _, err := runner.Run(context.Background()); err == nil {
		t.Fatal("old Python should be fatal")
	}
	if installs != 0 {
		t.Errorf("no install should be attempted after a failed gate, got %d", installs)
	}
}

// SkipInstall still gates the runtime and still reports the venv state
// from disk.
func TestRunSkipInstall(t *testing.T) {
	workDir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(workDir, "venv", "bin"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(workDir, "venv", "bin", "activate"), []byte("# activate\n"), 0644); err != nil {
		t.Fatal(err)
	}

	var pipCalls int
	cmdr := &mockCommander{
		lookPathFunc: lookPathSet("python3"),
		runFunc: func(ctx context.Context, name string, args []string, dir string) (string, error) {
			if len(args) == 1 && args[0] == "--version" {
				return "Python 3.12.1", nil
			}
			if len(args) > 1 && args[1] == "pip" {
				pipCalls++
			}
			return "", nil
		},
	}

	runner := NewRunner(config.DefaultConfig(), logger.Discard{}, workDir)
	runner.Commander = cmdr
	runner.Detector = debianDetector(t)
	runner.SkipInstall = true

	s, err := runner.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pipCalls != 0 {
		t.Errorf("SkipInstall must not install, got %d pip calls", pipCalls)
	}
	if s.Installed {
		t.Error("Installed should be false with SkipInstall")
	}
	if !s.VenvOnDisk {
		t.Error("existing environment should still be reported from disk")
	}
}
