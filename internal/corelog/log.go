// Package corelog provides the one-line diagnostic logger used as a core
// collaborator: silent by default, emitting at most two user-visible
// lines (a format-render failure at error level, a localized-bundle load
// fallback at info level).
package corelog

import (
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	once sync.Once
	log  *logrus.Logger
)

// Logger returns the package-level logger, initializing it on first use.
// It is silent (level PanicLevel, i.e. nothing below a panic is emitted)
// unless CORESTR_LOG_LEVEL names a valid logrus level.
func Logger() *logrus.Logger {
	once.Do(func() {
		log = logrus.New()
		log.SetLevel(logrus.PanicLevel)
		if levelName := os.Getenv("CORESTR_LOG_LEVEL"); levelName != "" {
			if lvl, err := logrus.ParseLevel(levelName); err == nil {
				log.SetLevel(lvl)
			}
		}
	})
	return log
}

// FormatFailure logs the user-visible format-render failure line.
func FormatFailure(err error) {
	Logger().Errorf("ERROR: Failed to format string: %v", err)
}

// LocalizedLoadFallback logs the user-visible localized-bundle fallback line.
func LocalizedLoadFallback(path string, err error) {
	Logger().Infof("localized bundle %q unavailable, falling back to non-mapped I/O: %v", path, err)
}
