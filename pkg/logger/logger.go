// Package logger builds the zap loggers used across the simulator.
package logger

import "go.uber.org/zap"

// New returns a JSON production logger tagged with the service name.
// Verbose switches to the human-readable development config.
func New(service string, verbose bool) (*zap.Logger, error) {
	var (
		l   *zap.Logger
		err error
	)
	if verbose {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		return nil, err
	}

	return l.With(zap.String("service", service)), nil
}
