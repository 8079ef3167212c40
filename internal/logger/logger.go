package logger

// Logger is the minimal logging surface components depend on. The
// spinner-aware implementation lives in the ui package.
type Logger interface {
	Logf(format string, args ...interface{})
	Log(msg string)
}

// Discard drops all log output. Used in tests.
type Discard struct{}

func (Discard) Logf(format string, args ...interface{}) {}
func (Discard) Log(msg string)                          {}
