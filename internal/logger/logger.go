package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// Logger writes component-scoped lines. Debug and Info only appear when
// verbose is enabled; Warn and Error always do.
type Logger struct {
	component string
	verbose   func() bool
	mu        *sync.Mutex
	writer    io.Writer
}

// Field is a key/value pair appended to a line.
type Field struct {
	Key   string
	Value interface{}
}

func New(component string, verbose bool) *Logger {
	return NewWithWriter(component, os.Stderr, func() bool { return verbose })
}

func NewWithWriter(component string, w io.Writer, verbose func() bool) *Logger {
	if w == nil {
		w = io.Discard
	}
	return &Logger{
		component: component,
		verbose:   verbose,
		mu:        &sync.Mutex{},
		writer:    w,
	}
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	return NewWithWriter("", io.Discard, nil)
}

// WithComponent shares the writer and verbosity under a new component name.
func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{
		component: component,
		verbose:   l.verbose,
		mu:        l.mu,
		writer:    l.writer,
	}
}

func (l *Logger) isVerbose() bool {
	return l.verbose != nil && l.verbose()
}

func (l *Logger) Debug(msg string, fields ...Field) {
	if l.isVerbose() {
		l.log("DEBUG", msg, fields)
	}
}

func (l *Logger) Info(msg string, fields ...Field) {
	if l.isVerbose() {
		l.log("INFO", msg, fields)
	}
}

func (l *Logger) Warn(msg string, fields ...Field) {
	l.log("WARN", msg, fields)
}

func (l *Logger) Error(msg string, fields ...Field) {
	l.log("ERROR", msg, fields)
}

func (l *Logger) log(level, msg string, fields []Field) {
	component := l.component
	if component == "" {
		component = "main"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s [%s] %s", time.Now().Format("15:04:05.000"), level, component, msg)
	if len(fields) > 0 {
		parts := make([]string, 0, len(fields))
		for _, f := range fields {
			parts = append(parts, fmt.Sprintf("%s=%v", f.Key, f.Value))
		}
		b.WriteString(" [" + strings.Join(parts, " ") + "]")
	}
	b.WriteByte('\n')

	l.mu.Lock()
	defer l.mu.Unlock()
	// nothing useful to do if the log sink itself fails
	_, _ = io.WriteString(l.writer, b.String())
}

func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

func Duration(d time.Duration) Field {
	return Field{Key: "duration", Value: d}
}

func Error(err error) Field {
	return Field{Key: "error", Value: err}
}
