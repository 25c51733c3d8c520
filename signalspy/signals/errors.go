package signals

import "errors"

var (
	ErrNotSignal      = errors.New("signals: value is not a signal")
	ErrSignalNotFound = errors.New("signals: signal not found")
)
