package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// DefaultPath is the log file path, relative to the working directory (project root when run via go run ./cmd/rooms).
const DefaultPath = "logs/rooms.txt"

// Logger stores stamped lines in memory (for the console overlay) and appends them to a file on disk.
// Lines may also be mirrored to an extra writer such as stderr.
type Logger struct {
	mu     sync.Mutex
	path   string
	mirror io.Writer
	lines  []string
	once   map[string]struct{}
	now    func() time.Time
}

// New returns a Logger writing to path and ensures its directory exists. Empty path keeps lines in memory only.
func New(path string) *Logger {
	if path != "" {
		_ = os.MkdirAll(filepath.Dir(path), 0755)
	}
	return &Logger{
		path:  path,
		lines: make([]string, 0),
		once:  make(map[string]struct{}),
		now:   time.Now,
	}
}

// SetMirror makes every logged line also go to w (nil disables mirroring).
func (l *Logger) SetMirror(w io.Writer) {
	l.mu.Lock()
	l.mirror = w
	l.mu.Unlock()
}

// Log appends a line prefixed with [timestamp] to memory, the log file and the mirror.
func (l *Logger) Log(line string) {
	stamped := "[" + l.now().Format("2006-01-02 15:04:05") + "] " + line

	l.mu.Lock()
	l.lines = append(l.lines, stamped)
	mirror := l.mirror
	l.mu.Unlock()

	if mirror != nil {
		_, _ = io.WriteString(mirror, stamped+"\n")
	}
	if l.path == "" {
		return
	}
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	_, _ = f.WriteString(stamped + "\n")
	_ = f.Close()
}

// Logf formats and logs a line.
func (l *Logger) Logf(format string, args ...any) {
	l.Log(fmt.Sprintf(format, args...))
}

// Once logs line the first time key is seen and reports whether it logged.
// Used for diagnostics that would otherwise repeat every frame.
func (l *Logger) Once(key, line string) bool {
	l.mu.Lock()
	if _, seen := l.once[key]; seen {
		l.mu.Unlock()
		return false
	}
	l.once[key] = struct{}{}
	l.mu.Unlock()
	l.Log(line)
	return true
}

// Lines returns a copy of all stored lines.
func (l *Logger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}
