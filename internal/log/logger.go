// Package log routes the renderer's diagnostics through go-logging. Every
// package asks for a logger named after itself, and the CLI picks one
// verbosity for all of them.
package log

import (
	"io"
	"os"

	"github.com/op/go-logging"
)

// Level is a verbosity threshold, ordered from most to least chatty.
type Level logging.Level

const (
	Debug Level = iota
	Info
	Notice
	Warning
	Error
)

var lineFormat = logging.MustStringFormatter(
	`%{color}%{time:15:04:05.000} %{level:.4s} %{module:-9s}%{color:reset} %{message}`,
)

// backend is shared by every named logger; SetSink replaces it.
var backend logging.LeveledBackend

// Logger is the subset of *logging.Logger the renderer packages use.
type Logger interface {
	Debug(v ...interface{})
	Debugf(format string, v ...interface{})
	Info(v ...interface{})
	Infof(format string, v ...interface{})
	Notice(v ...interface{})
	Noticef(format string, v ...interface{})
	Warning(v ...interface{})
	Warningf(format string, v ...interface{})
	Error(v ...interface{})
	Errorf(format string, v ...interface{})
}

// New returns the logger for a package such as "scene" or "renderer".
func New(module string) Logger {
	return logging.MustGetLogger(module)
}

// SetSink sends all log output to w without changing the verbosity.
func SetSink(w io.Writer) {
	threshold := logging.NOTICE
	if backend != nil {
		threshold = backend.GetLevel("")
	}

	formatted := logging.NewBackendFormatter(logging.NewLogBackend(w, "", 0), lineFormat)
	backend = logging.AddModuleLevel(formatted)
	backend.SetLevel(threshold, "")
	logging.SetBackend(backend)
}

// SetLevel applies one verbosity to every module.
func SetLevel(level Level) {
	backend.SetLevel(level.goLogging(), "")
}

// IsEnabled reports whether a message at level would be written.
func IsEnabled(level Level) bool {
	return backend.IsEnabledFor(level.goLogging(), "")
}

func (l Level) goLogging() logging.Level {
	switch l {
	case Debug:
		return logging.DEBUG
	case Info:
		return logging.INFO
	case Warning:
		return logging.WARNING
	case Error:
		return logging.ERROR
	default:
		return logging.NOTICE
	}
}

func init() {
	SetSink(os.Stderr)
}
