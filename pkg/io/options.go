package io

import (
	"github.com/charmbracelet/log"

	"github.com/matzehuels/reclass/pkg/buildinfo"
	errs "github.com/matzehuels/reclass/pkg/errors"
)

// Logger receives the diagnostics produced while writing.
// *log.Logger from github.com/charmbracelet/log satisfies it.
type Logger interface {
	Log(level log.Level, msg any, keyvals ...any)
}

// Options configure a write.
type Options struct {
	// Logger receives skip diagnostics. Required.
	Logger Logger

	// Converters is consulted for every node before the built-in type
	// table. Optional.
	Converters ConverterRegistry

	// Platform is written to the root element. Defaults to the platform
	// tag of the running binary.
	Platform string
}

func (o Options) withDefaults() (Options, error) {
	if o.Logger == nil || isNilLogger(o.Logger) {
		return o, errs.New(errs.ErrCodeInvalidInput, "logger must not be nil")
	}
	if o.Platform == "" {
		o.Platform = buildinfo.Platform()
	}
	return o, nil
}

func isNilLogger(l Logger) bool {
	cl, ok := l.(*log.Logger)
	return ok && cl == nil
}
