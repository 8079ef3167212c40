package pyruntime

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/interceptsdr/setup/internal/commander"
)

// Minimum supported interpreter version.
const (
	MinMajor = 3
	MinMinor = 9
)

// Version is the (major, minor) pair of a detected interpreter.
type Version struct {
	Major int
	Minor int
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// Supported reports whether the version satisfies the minimum threshold.
func (v Version) Supported() bool {
	if v.Major > MinMajor {
		return true
	}
	return v.Major == MinMajor && v.Minor >= MinMinor
}

// Runtime is a usable Python interpreter found on the search path.
type Runtime struct {
	Command string
	Version Version
}

// Locate finds a Python interpreter and gates its version. Both failure
// modes are fatal to the bootstrap: no interpreter at all, or one below
// the minimum version.
func Locate(ctx context.Context, c commander.Commander) (Runtime, error) {
	for _, name := range []string{"python3", "python"} {
		if !commander.Probe(c, name) {
			continue
		}
		out, err := c.Run(ctx, name, []string{"--version"}, "")
		if err != nil {
			continue
		}
		v, err := parseVersion(out)
		if err != nil {
			continue
		}
		if !v.Supported() {
			return Runtime{}, fmt.Errorf("python %s found, but %d.%d or newer is required: upgrade your Python installation", v, MinMajor, MinMinor)
		}
		return Runtime{Command: name, Version: v}, nil
	}
	return Runtime{}, fmt.Errorf("no usable Python interpreter found on PATH: install python3 %d.%d or newer", MinMajor, MinMinor)
}

// parseVersion extracts (major, minor) from "--version" output such as
// "Python 3.11.2".
func parseVersion(out string) (Version, error) {
	fields := strings.Fields(strings.TrimSpace(out))
	if len(fields) < 2 || fields[0] != "Python" {
		return Version{}, fmt.Errorf("unrecognized version output: %q", strings.TrimSpace(out))
	}
	parts := strings.Split(fields[1], ".")
	if len(parts) < 2 {
		return Version{}, fmt.Errorf("unrecognized version number: %q", fields[1])
	}
	major, err := strconv.Atoi(parts[0])
	if err != nil {
		return Version{}, fmt.Errorf("unrecognized major version: %q", parts[0])
	}
	minor, err := strconv.Atoi(parts[1])
	if err != nil {
		return Version{}, fmt.Errorf("unrecognized minor version: %q", parts[1])
	}
	return Version{Major: major, Minor: minor}, nil
}
