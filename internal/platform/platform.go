package platform

import (
	"os"
	"path/filepath"
	"runtime"
)

// Class identifies the host platform family for remediation purposes.
type Class int

const (
	Unknown Class = iota
	MacOS
	Debian
	RedHat
	Arch
)

// String returns a human-readable platform name
func (c Class) String() string {
	switch c {
	case MacOS:
		return "macOS"
	case Debian:
		return "Debian/Ubuntu"
	case RedHat:
		return "Fedora/RHEL"
	case Arch:
		return "Arch Linux"
	default:
		return "unknown"
	}
}

// PackageManager returns the package manager identifier for the class
func (c Class) PackageManager() string {
	switch c {
	case MacOS:
		return "brew"
	case Debian:
		return "apt"
	case RedHat:
		return "dnf"
	case Arch:
		return "pacman"
	default:
		return "unknown"
	}
}

// IsLinux reports whether the class is a recognized Linux family.
func (c Class) IsLinux() bool {
	return c == Debian || c == RedHat || c == Arch
}

// Detector classifies the host into a platform class. GOOS and Root
// default to the running system and exist so tests can fake a host.
type Detector struct {
	GOOS string
	Root string
}

// NewDetector creates a detector for the running host
func NewDetector() *Detector {
	return &Detector{GOOS: runtime.GOOS, Root: "/"}
}

// Detect classifies the host. First match wins; the marker files can
// co-occur on hybrid systems so the order is part of the contract.
// Unknown is a valid terminal classification, not an error.
func (d *Detector) Detect() Class {
	if d.GOOS == "darwin" {
		return MacOS
	}
	markers := []struct {
		path  string
		class Class
	}{
		{"etc/debian_version", Debian},
		{"etc/redhat-release", RedHat},
		{"etc/arch-release", Arch},
	}
	for _, m := range markers {
		if _, err := os.Stat(filepath.Join(d.Root, m.path)); err == nil {
			return m.class
		}
	}
	return Unknown
}
