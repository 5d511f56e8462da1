package stackarray

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var nopLogger = zap.NewNop()

// logger is read by fail from whatever goroutine violates a precondition.
var logger atomic.Pointer[zap.Logger]

// Logger returns the package's logger. It is a no-op logger until SetLogger
// installs another one.
func Logger() *zap.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	return nopLogger
}

// SetLogger replaces the package's logger; nil restores the no-op logger.
// Only precondition violations are logged, right before the corresponding
// panic. Safe to call concurrently with array operations.
func SetLogger(l *zap.Logger) {
	logger.Store(l)
}
