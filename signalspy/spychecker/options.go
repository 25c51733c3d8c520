package spychecker

import "github.com/sirupsen/logrus"

const defaultLabelSuffix = "Spy"

type config struct {
	logger      logrus.FieldLogger
	labelSuffix string
}

type Option func(*config)

// WithLogger sets the logger that receives mismatch diagnostics.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithLabelSuffix sets the suffix MakeChecker appends to signal names.
func WithLabelSuffix(suffix string) Option {
	return func(c *config) {
		c.labelSuffix = suffix
	}
}

func newConfig(opts []Option) config {
	c := config{
		logger:      logrus.StandardLogger(),
		labelSuffix: defaultLabelSuffix,
	}
	for _, opt := range opts {
		opt(&c)
	}
	if c.logger == nil {
		c.logger = logrus.StandardLogger()
	}
	return c
}
