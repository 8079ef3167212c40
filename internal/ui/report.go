package ui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/interceptsdr/setup/internal/bootstrap"
	"github.com/interceptsdr/setup/internal/pyruntime"
	"github.com/interceptsdr/setup/internal/tools"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("45"))
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	missStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// RenderSummary returns the formatted, styled bootstrap report.
func RenderSummary(s *bootstrap.Summary) string {
	if s == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("📡 INTERCEPT environment setup"))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("=", 30))
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "Platform: %s (package manager: %s)\n", s.Platform, s.Platform.PackageManager())
	fmt.Fprintf(&b, "Python:   %s\n\n", s.Runtime.Version)

	if s.Installed {
		b.WriteString(sectionStyle.Render("Python dependencies"))
		b.WriteString("\n")
		switch s.Install.Outcome {
		case pyruntime.OutcomeFailed:
			b.WriteString(warnStyle.Render("⚠ dependency install failed: " + s.Install.Reason))
			b.WriteString("\n")
		default:
			b.WriteString(okStyle.Render("✓ Dependencies " + s.Install.Outcome.String()))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(sectionStyle.Render("Tool inventory"))
	b.WriteString("\n")
	b.WriteString(renderChecklist(s.Checks))
	b.WriteString("\n")

	b.WriteString(sectionStyle.Render("Remediation"))
	b.WriteString("\n")
	for _, line := range s.Advice {
		if strings.HasPrefix(line, "#") {
			b.WriteString(dimStyle.Render(line))
		} else {
			b.WriteString(line)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if s.Platform.IsLinux() {
		b.WriteString(renderLinuxNotes())
	}
	b.WriteString(renderEntryPointWarnings(s))
	b.WriteString(renderStartInstructions(s))

	return b.String()
}

// renderChecklist groups checks by category, preserving table order
// within each group.
func renderChecklist(checks []tools.Check) string {
	var b strings.Builder
	var last tools.Category = -1
	for _, c := range checks {
		if c.Category != last {
			b.WriteString(dimStyle.Render("  " + c.Category.String()))
			b.WriteString("\n")
			last = c.Category
		}
		if c.Present {
			fmt.Fprintf(&b, "    %s %-14s %s\n", okStyle.Render("✓"), c.Command, dimStyle.Render(c.Description))
		} else {
			fmt.Fprintf(&b, "    %s %-14s %s\n", missStyle.Render("✗"), c.Command, dimStyle.Render(c.Description))
		}
	}
	return b.String()
}

func renderLinuxNotes() string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render("Post-install notes"))
	b.WriteString("\n")
	b.WriteString("Grant non-root access to RTL-SDR devices:\n")
	b.WriteString(`  echo 'SUBSYSTEM=="usb", ATTRS{idVendor}=="0bda", ATTRS{idProduct}=="2838", MODE="0666"' | sudo tee /etc/udev/rules.d/20-rtlsdr.rules` + "\n")
	b.WriteString("  sudo udevadm control --reload-rules\n")
	b.WriteString("  sudo usermod -aG plugdev $USER\n\n")
	return b.String()
}

func renderEntryPointWarnings(s *bootstrap.Summary) string {
	var b strings.Builder
	if !s.EntryPoint.Exists {
		b.WriteString(warnStyle.Render(fmt.Sprintf("⚠ %s not found; run this from the application directory", s.EntryPoint.Path)))
		b.WriteString("\n\n")
	} else if !s.EntryPoint.Python() {
		b.WriteString(warnStyle.Render(fmt.Sprintf("⚠ %s does not look like Python source (detected %s)", s.EntryPoint.Path, s.EntryPoint.Language)))
		b.WriteString("\n\n")
	}
	return b.String()
}

// renderStartInstructions is conditioned on the on-disk environment
// state, not the in-memory outcome.
func renderStartInstructions(s *bootstrap.Summary) string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render("To start INTERCEPT"))
	b.WriteString("\n")
	if s.VenvOnDisk {
		fmt.Fprintf(&b, "  source %s/bin/activate\n", s.VenvDir)
	}
	fmt.Fprintf(&b, "  sudo %s %s\n", pythonCommand(s), filepath.Base(s.EntryPoint.Path))
	fmt.Fprintf(&b, "Then open http://localhost:%d\n", s.Port)
	return b.String()
}

func pythonCommand(s *bootstrap.Summary) string {
	if s.VenvOnDisk {
		return s.VenvDir + "/bin/python"
	}
	if s.Runtime.Command != "" {
		return s.Runtime.Command
	}
	return "python3"
}
