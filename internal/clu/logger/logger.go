package logger

import (
	"go.uber.org/zap"
)

// Logger receives diagnostic output from the library packages. The zero
// setup is silent so embedding the store in other programs stays quiet.
type Logger interface {
	Log(format string, args ...any)
}

// Noop discards everything.
type Noop struct{}

func (Noop) Log(string, ...any) {}

// Default is the logger used by the package-level Log.
var Default Logger = Noop{}

// Set replaces the default logger.
func Set(l Logger) {
	Default = l
}

// Log logs through the default logger.
func Log(format string, args ...any) {
	Default.Log(format, args...)
}

// Zap adapts a zap sugared logger to the Logger interface.
type Zap struct {
	s *zap.SugaredLogger
}

// NewZap wraps the given sugared logger.
func NewZap(s *zap.SugaredLogger) *Zap {
	return &Zap{s: s}
}

func (z *Zap) Log(format string, args ...any) {
	z.s.Infof(format, args...)
}
