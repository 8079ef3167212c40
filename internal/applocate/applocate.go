package applocate

import (
	"os"
	"path/filepath"

	"github.com/go-enry/go-enry/v2"
)

// Report describes the application entry point in the working directory.
type Report struct {
	Path     string
	Exists   bool
	Language string
}

// Python reports whether the entry point classified as Python source.
func (r Report) Python() bool {
	return r.Language == "Python"
}

// Inspect checks that the application entry point exists and classifies
// its content. Findings are advisory; the bootstrap never fails on them.
func Inspect(dir, entry string) Report {
	path := filepath.Join(dir, entry)
	report := Report{Path: path}

	content, err := os.ReadFile(path)
	if err != nil {
		return report
	}
	report.Exists = true
	report.Language = enry.GetLanguage(filepath.Base(path), content)
	return report
}
