package commander

import "context"

// Commander abstracts external command execution so components can be
// tested without touching the host system.
type Commander interface {
	// LookPath checks if a command exists on the search path
	LookPath(name string) (string, error)
	// Run executes a command and returns its combined output
	Run(ctx context.Context, name string, args []string, dir string) (string, error)
}

// Probe reports whether an executable named name is resolvable on the
// current search path. Absence is a normal false result, not an error.
func Probe(c Commander, name string) bool {
	_, err := c.LookPath(name)
	return err == nil
}
