package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// UILogger writes log lines to Out until a spinner attaches; while one
// is attached, lines replace the spinner text instead of printing, so
// verbose logging and the interactive display never interleave.
type UILogger struct {
	Out io.Writer

	mu   sync.Mutex
	send func(string)
}

// NewUILogger creates a logger that falls back to stdout.
func NewUILogger() *UILogger {
	return &UILogger{Out: os.Stdout}
}

func (l *UILogger) attach(send func(string)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.send = send
}

func (l *UILogger) detach() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.send = nil
}

func (l *UILogger) Logf(format string, args ...interface{}) {
	l.emit(fmt.Sprintf(format, args...))
}

func (l *UILogger) Log(msg string) {
	l.emit(msg + "\n")
}

func (l *UILogger) emit(text string) {
	l.mu.Lock()
	send := l.send
	l.mu.Unlock()
	if send != nil {
		send(strings.ReplaceAll(strings.TrimSuffix(text, "\n"), "\n", " "))
		return
	}
	fmt.Fprint(l.Out, text)
}
