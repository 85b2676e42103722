package tree

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Logger receives traversal traces at debug level. It is quiet by default.
var Logger = newDefaultLogger()

func newDefaultLogger() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.InfoLevel)
	return l
}

// SetLogger replaces the package logger. A nil logger discards everything.
func SetLogger(l *logrus.Logger) {
	if l == nil {
		l = logrus.New()
		l.SetOutput(io.Discard)
	}
	Logger = l
}
