package logging

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
)

var (
	once      sync.Once
	singleton *log.Logger
)

func get() *log.Logger {
	once.Do(func() {
		singleton = log.NewWithOptions(os.Stderr, log.Options{
			ReportCaller:    true,
			ReportTimestamp: true,
			TimeFormat:      time.TimeOnly,
			Prefix:          "spritebox",
			CallerOffset:    1,
		})
		singleton.SetLevel(log.InfoLevel)
	})
	return singleton
}

// Logger exposes the shared logger for callers that need structured fields.
func Logger() *log.Logger {
	return get()
}

// With returns a child logger carrying the given key/value pairs.
func With(keyvals ...interface{}) *log.Logger {
	return get().With(keyvals...)
}

// SetLevel accepts debug, info, warn or error.
func SetLevel(name string) error {
	lvl, err := log.ParseLevel(name)
	if err != nil {
		return errors.Wrapf(err, "log level %q", name)
	}
	get().SetLevel(lvl)
	return nil
}

func SetOutput(w io.Writer) {
	get().SetOutput(w)
}

func Debug(msg string, args ...interface{}) {
	get().Debugf(msg, args...)
}

func Info(msg string, args ...interface{}) {
	get().Infof(msg, args...)
}

func Warn(msg string, args ...interface{}) {
	get().Warnf(msg, args...)
}

func Error(msg string, args ...interface{}) {
	get().Errorf(msg, args...)
}
