package pyruntime

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/interceptsdr/setup/internal/commander"
	"github.com/interceptsdr/setup/internal/logger"
)

// Outcome classifies how the dependency install resolved.
type Outcome int

const (
	OutcomeFailed Outcome = iota
	OutcomeInstalledDirectly
	OutcomeInstalledInEnv
	OutcomeAlreadyInEnv
)

func (o Outcome) String() string {
	switch o {
	case OutcomeInstalledDirectly:
		return "installed system-wide"
	case OutcomeInstalledInEnv:
		return "installed in virtual environment"
	case OutcomeAlreadyInEnv:
		return "installed in active virtual environment"
	default:
		return "failed"
	}
}

// Result is the outcome of one EnsureDependencies run.
type Result struct {
	Outcome Outcome
	// ActivationRequired means the user must activate the virtual
	// environment before starting the application.
	ActivationRequired bool
	Reason             string
}

// Installer installs the Python dependency manifest, falling back to a
// virtual environment when the system interpreter is externally managed.
type Installer struct {
	VenvDir  string
	Manifest string
	// LookupEnv is os.LookupEnv unless overridden in tests.
	LookupEnv func(string) (string, bool)

	cmdr    commander.Commander
	log     logger.Logger
	workDir string
}

// NewInstaller creates an installer rooted at workDir.
func NewInstaller(cmdr commander.Commander, log logger.Logger, workDir string) *Installer {
	return &Installer{
		VenvDir:   "venv",
		Manifest:  "requirements.txt",
		LookupEnv: os.LookupEnv,
		cmdr:      cmdr,
		log:       log,
		workDir:   workDir,
	}
}

func (i *Installer) venvPath() string   { return filepath.Join(i.workDir, i.VenvDir) }
func (i *Installer) venvPython() string { return filepath.Join(i.venvPath(), "bin", "python") }

// VenvValid reports whether a structurally valid virtual environment
// exists on disk (its activation entry point is present).
func (i *Installer) VenvValid() bool {
	_, err := os.Stat(filepath.Join(i.venvPath(), "bin", "activate"))
	return err == nil
}

// EnsureDependencies installs the manifest. The returned error is fatal
// (virtual environment creation failed); every other failure is reported
// through the Result and the run continues.
func (i *Installer) EnsureDependencies(ctx context.Context, py Runtime) (Result, error) {
	// Already inside a virtual environment: install straight into it.
	if v, ok := i.LookupEnv("VIRTUAL_ENV"); ok && v != "" {
		i.log.Log("Active virtual environment detected, installing into it")
		if out, err := i.pipInstall(ctx, py.Command); err != nil {
			return Result{Outcome: OutcomeFailed, Reason: installReason(out, err)}, nil
		}
		return Result{Outcome: OutcomeAlreadyInEnv}, nil
	}

	// A valid environment from a previous run: reuse it, never recreate.
	if i.VenvValid() {
		i.log.Logf("Reusing virtual environment at %s\n", i.venvPath())
		if out, err := i.pipInstall(ctx, i.venvPython()); err != nil {
			return Result{Outcome: OutcomeFailed, Reason: installReason(out, err)}, nil
		}
		return Result{Outcome: OutcomeInstalledInEnv, ActivationRequired: true}, nil
	}

	// Try the system interpreter first. Failure here is expected on
	// externally-managed installations and triggers the venv fallback.
	i.log.Log("Installing Python dependencies")
	if _, err := i.pipInstall(ctx, py.Command); err == nil {
		return Result{Outcome: OutcomeInstalledDirectly}, nil
	}
	i.log.Log("System Python is externally managed, creating a virtual environment")

	// A directory without its activation entry point is a stale,
	// half-created environment; replace it.
	if _, err := os.Stat(i.venvPath()); err == nil {
		if err := os.RemoveAll(i.venvPath()); err != nil {
			return Result{Outcome: OutcomeFailed}, fmt.Errorf("failed to remove stale virtual environment %s: %w", i.venvPath(), err)
		}
	}

	out, err := i.cmdr.Run(ctx, py.Command, []string{"-m", "venv", i.VenvDir}, i.workDir)
	if err != nil {
		return Result{Outcome: OutcomeFailed}, fmt.Errorf("failed to create virtual environment (install the python3-venv package and retry): %s", installReason(out, err))
	}

	if out, err := i.pipInstall(ctx, i.venvPython()); err != nil {
		return Result{Outcome: OutcomeFailed, Reason: installReason(out, err)}, nil
	}
	return Result{Outcome: OutcomeInstalledInEnv, ActivationRequired: true}, nil
}

func (i *Installer) pipInstall(ctx context.Context, python string) (string, error) {
	return i.cmdr.Run(ctx, python, []string{"-m", "pip", "install", "-r", i.Manifest}, i.workDir)
}

func installReason(out string, err error) string {
	out = strings.TrimSpace(out)
	if out == "" {
		return err.Error()
	}
	return out
}
