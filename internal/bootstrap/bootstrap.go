package bootstrap

import (
	"context"

	"github.com/interceptsdr/setup/internal/advise"
	"github.com/interceptsdr/setup/internal/applocate"
	"github.com/interceptsdr/setup/internal/commander"
	"github.com/interceptsdr/setup/internal/config"
	"github.com/interceptsdr/setup/internal/logger"
	"github.com/interceptsdr/setup/internal/platform"
	"github.com/interceptsdr/setup/internal/pyruntime"
	"github.com/interceptsdr/setup/internal/tools"
)

// Runner sequences the bootstrap stages. All collaborators are injected
// so the full run is testable against a mock commander.
type Runner struct {
	Commander commander.Commander
	Detector  *platform.Detector
	Logger    logger.Logger
	Config    *config.Config
	WorkDir   string

	// SkipInstall runs detection and inventory only. The runtime gate
	// still applies.
	SkipInstall bool
}

// Summary is the result of one bootstrap run, consumed by the renderer.
type Summary struct {
	Platform   platform.Class
	Runtime    pyruntime.Runtime
	Install    pyruntime.Result
	Installed  bool
	Checks     []tools.Check
	Missing    []string
	Advice     []string
	EntryPoint applocate.Report
	// VenvOnDisk is evaluated against the filesystem at the end of the
	// run, not from the install outcome, so the start instructions stay
	// correct even when the install stage was skipped.
	VenvOnDisk bool
	Port       int
	VenvDir    string
}

// NewRunner creates a runner over the real host.
func NewRunner(cfg *config.Config, log logger.Logger, workDir string) *Runner {
	return &Runner{
		Commander: commander.NewReal(),
		Detector:  platform.NewDetector(),
		Logger:    log,
		Config:    cfg,
		WorkDir:   workDir,
	}
}

// Run executes the bootstrap sequence: platform detection, runtime gate
// and dependency install, tool inventory, remediation advice. Missing
// tools are advisory; the returned error covers only the fatal
// conditions (runtime missing or too old, environment creation failure).
func (r *Runner) Run(ctx context.Context) (*Summary, error) {
	s := &Summary{Port: r.Config.Port, VenvDir: r.Config.VenvDir}

	s.Platform = r.Detector.Detect()
	r.Logger.Logf("Detected platform: %s (%s)\n", s.Platform, s.Platform.PackageManager())

	py, err := pyruntime.Locate(ctx, r.Commander)
	if err != nil {
		return nil, err
	}
	s.Runtime = py
	r.Logger.Logf("Found Python %s\n", py.Version)

	installer := r.installer()
	if !r.SkipInstall {
		res, err := installer.EnsureDependencies(ctx, py)
		if err != nil {
			return nil, err
		}
		s.Install = res
		s.Installed = true
	}

	s.Checks = tools.Inventory(r.Commander, tools.Table())
	s.Missing = tools.Missing(s.Checks)
	s.Advice = adviseLines(s.Platform, s.Missing, r.Commander)

	s.EntryPoint = applocate.Inspect(r.WorkDir, r.Config.EntryPoint)
	s.VenvOnDisk = installer.VenvValid()

	return s, nil
}

func adviseLines(class platform.Class, missing []string, c commander.Commander) []string {
	probe := func(name string) bool { return commander.Probe(c, name) }
	return advise.Advise(class, missing, probe)
}

func (r *Runner) installer() *pyruntime.Installer {
	inst := pyruntime.NewInstaller(r.Commander, r.Logger, r.WorkDir)
	inst.VenvDir = r.Config.VenvDir
	inst.Manifest = r.Config.Manifest
	return inst
}
