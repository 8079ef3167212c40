package advise

import (
	"github.com/interceptsdr/setup/internal/platform"
)

// SuccessLine is printed when no tools are missing.
const SuccessLine = "All tools are installed!"

// remedy is one hand-authored install instruction. Covers lists the tool
// commands the instruction provides; a remedy is emitted only when at
// least one covered tool is missing.
type remedy struct {
	header string
	line   string
	covers []string
}

// preambles run before any install command on the platform.
var preambles = map[platform.Class][]string{
	platform.Debian: {"sudo apt update"},
}

// remedies is static data keyed by platform class. It reflects the
// classification onto fixed instruction templates and never queries
// actual package availability.
var remedies = map[platform.Class][]remedy{
	platform.MacOS: {
		{
			header: "# Core SDR tools",
			line:   "brew install librtlsdr dump1090-mutability multimon-ng sox",
			covers: []string{"rtl_fm", "rtl_test", "dump1090", "multimon-ng", "sox"},
		},
		{
			header: "# LimeSDR support",
			line:   "brew install limesuite",
			covers: []string{"LimeUtil"},
		},
		{
			header: "# HackRF support",
			line:   "brew install hackrf",
			covers: []string{"hackrf_info"},
		},
		{
			header: "# WiFi tools",
			line:   "brew install aircrack-ng",
			covers: []string{"airodump-ng"},
		},
	},
	platform.Debian: {
		{
			header: "# Core SDR tools",
			line:   "sudo apt install -y rtl-sdr dump1090-mutability multimon-ng sox",
			covers: []string{"rtl_fm", "rtl_test", "dump1090", "multimon-ng", "sox"},
		},
		{
			header: "# LimeSDR support",
			line:   "sudo apt install -y limesuite",
			covers: []string{"LimeUtil"},
		},
		{
			header: "# HackRF support",
			line:   "sudo apt install -y hackrf",
			covers: []string{"hackrf_info"},
		},
		{
			header: "# WiFi tools",
			line:   "sudo apt install -y aircrack-ng iw",
			covers: []string{"airodump-ng", "iw"},
		},
		{
			header: "# Bluetooth tools",
			line:   "sudo apt install -y bluez",
			covers: []string{"hcitool", "bluetoothctl", "btmon"},
		},
	},
	platform.Arch: {
		{
			header: "# Core SDR tools",
			line:   "sudo pacman -S --needed rtl-sdr sox",
			covers: []string{"rtl_fm", "rtl_test", "sox"},
		},
		{
			header: "# Core SDR tools (AUR)",
			line:   "yay -S dump1090 multimon-ng",
			covers: []string{"dump1090", "multimon-ng"},
		},
		{
			header: "# Hardware support",
			line:   "sudo pacman -S --needed limesuite hackrf",
			covers: []string{"LimeUtil", "hackrf_info"},
		},
	},
	platform.RedHat: {
		{
			header: "# Core SDR tools",
			line:   "sudo dnf install -y rtl-sdr sox",
			covers: []string{"rtl_fm", "rtl_test", "sox"},
		},
		{
			header: "# Note",
			line:   "dump1090 and multimon-ng must be built from source on Fedora/RHEL",
			covers: []string{"dump1090", "multimon-ng"},
		},
	},
}

// homebrewBootstrap is prepended on macOS when brew itself is absent.
var homebrewBootstrap = []string{
	"# Install Homebrew first",
	`/bin/bash -c "$(curl -fsSL https://raw.githubusercontent.com/Homebrew/install/HEAD/install.sh)"`,
}

// Advise emits platform-appropriate install instructions for the missing
// tools. probe reports executable presence and is consulted only for the
// package manager itself. An empty missing set yields the success line;
// an unrecognized platform yields a plain list of missing commands.
func Advise(class platform.Class, missing []string, probe func(string) bool) []string {
	if len(missing) == 0 {
		return []string{SuccessLine}
	}

	block, ok := remedies[class]
	if !ok {
		lines := []string{"Install the following tools manually:"}
		for _, name := range missing {
			lines = append(lines, "  - "+name)
		}
		return lines
	}

	missingSet := make(map[string]bool, len(missing))
	for _, name := range missing {
		missingSet[name] = true
	}

	var lines []string
	if class == platform.MacOS && probe != nil && !probe("brew") {
		lines = append(lines, homebrewBootstrap...)
	}
	lines = append(lines, preambles[class]...)
	for _, r := range block {
		for _, cmd := range r.covers {
			if missingSet[cmd] {
				lines = append(lines, r.header, r.line)
				break
			}
		}
	}
	return lines
}

// Covered reports whether the platform's instruction table covers the
// given tool command at all.
func Covered(class platform.Class, command string) bool {
	for _, r := range remedies[class] {
		for _, c := range r.covers {
			if c == command {
				return true
			}
		}
	}
	return false
}
