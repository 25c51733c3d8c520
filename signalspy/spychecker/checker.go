package spychecker

import (
	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tHelper interface {
	Helper()
}

type tCleanup interface {
	Cleanup(func())
}

// checker keeps spies in registration order, each with an expectation of type V.
type checker[V any] struct {
	t        require.TestingT
	config   config
	spies    []*Spy
	values   map[*Spy]V
	accepted func(V) []int
}

func newChecker[V any](t require.TestingT, opts []Option, accepted func(V) []int) checker[V] {
	return checker[V]{
		t:        t,
		config:   newConfig(opts),
		values:   make(map[*Spy]V),
		accepted: accepted,
	}
}

func (c *checker[V]) set(spy *Spy, value V) {
	if _, ok := c.values[spy]; !ok {
		c.spies = append(c.spies, spy)
	}
	c.values[spy] = value
}

func (c *checker[V]) get(spy *Spy) (V, bool) {
	value, ok := c.values[spy]
	return value, ok
}

func (c *checker[V]) has(spy *Spy) bool {
	_, ok := c.values[spy]
	return ok
}

func (c *checker[V]) hasLabel(label string) bool {
	for _, spy := range c.spies {
		if spy.Label() == label {
			return true
		}
	}
	return false
}

func (c *checker[V]) mismatch(spy *Spy) *Mismatch {
	accepted := c.accepted(c.values[spy])
	actual := spy.Count()
	for _, expected := range accepted {
		if actual == expected {
			return nil
		}
	}
	return &Mismatch{Spy: spy.String(), Actual: actual, Expected: accepted}
}

// check reports every mismatch on the reporter. With fatal set the first
// mismatch calls FailNow and ends the loop.
func (c *checker[V]) check(fatal bool) bool {
	if h, ok := c.t.(tHelper); ok {
		h.Helper()
	}
	ok := true
	for _, spy := range c.spies {
		m := c.mismatch(spy)
		if m == nil {
			continue
		}
		ok = false
		c.config.logger.WithFields(logrus.Fields{
			"spy":      m.Spy,
			"actual":   m.Actual,
			"expected": m.ExpectedString(),
		}).Info("spy checker will fail, place a breakpoint here to debug")
		assert.Fail(c.t, m.Error(), "Key: %s", m.Spy)
		if fatal {
			c.t.FailNow()
			return false
		}
	}
	return ok
}

func (c *checker[V]) verify() error {
	var result *multierror.Error
	for _, spy := range c.spies {
		if m := c.mismatch(spy); m != nil {
			result = multierror.Append(result, m)
		}
	}
	return result.ErrorOrNil()
}

func (c *checker[V]) find(match func(*Spy) bool, query string) *Spy {
	if h, ok := c.t.(tHelper); ok {
		h.Helper()
	}
	for _, spy := range c.spies {
		if match(spy) {
			return spy
		}
	}
	require.Fail(c.t, "spy not found", "no spy registered for %s", query)
	return nil
}

func (c *checker[V]) closeOnCleanup() {
	if cl, ok := c.t.(tCleanup); ok {
		cl.Cleanup(c.close)
	}
}

func (c *checker[V]) close() {
	for _, spy := range c.spies {
		spy.Close()
	}
}

func (c *checker[V]) snapshot() []*Spy {
	return append([]*Spy(nil), c.spies...)
}
