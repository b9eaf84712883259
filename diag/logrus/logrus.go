// Package logrus adapts *logrus.Entry to diag.Logger.
package logrus

import (
	"github.com/sirupsen/logrus"
	"github.com/unkn0wn-root/packmsg/diag"
)

type Logger struct{ E *logrus.Entry }

func (l Logger) Debug(msg string, f diag.Fields) {
	l.E.WithFields(logrus.Fields(f)).Debug(msg)
}
func (l Logger) Info(msg string, f diag.Fields) { l.E.WithFields(logrus.Fields(f)).Info(msg) }
func (l Logger) Warn(msg string, f diag.Fields) { l.E.WithFields(logrus.Fields(f)).Warn(msg) }
func (l Logger) Error(msg string, f diag.Fields) {
	l.E.WithFields(logrus.Fields(f)).Error(msg)
}
