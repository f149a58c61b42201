// Package logger provides the leveled logger used by the command-line tools.
package logger

import (
	"io"
	"log"
)

// Logger is the logging interface the tools depend on.
type Logger interface {
	Infof(format string, v ...interface{})
	Errorf(format string, v ...interface{})
	Debugf(format string, v ...interface{})
}

type stdLogger struct {
	l     *log.Logger
	debug bool
}

// New returns a Logger writing to w with the given program name as prefix.
// Debugf output is dropped unless debug is set.
func New(w io.Writer, prog string, debug bool) Logger {
	return &stdLogger{l: log.New(w, prog+": ", 0), debug: debug}
}

func (l *stdLogger) Infof(format string, v ...interface{})  { l.l.Printf("[INFO] "+format, v...) }
func (l *stdLogger) Errorf(format string, v ...interface{}) { l.l.Printf("[ERROR] "+format, v...) }

func (l *stdLogger) Debugf(format string, v ...interface{}) {
	if l.debug {
		l.l.Printf("[DEBUG] "+format, v...)
	}
}
