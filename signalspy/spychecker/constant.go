package spychecker

import (
	"github.com/stretchr/testify/require"

	"github.com/krew-solutions/signalspy-go/signalspy/signals"
)

// Constant maps each spy to exactly one expected count.
type Constant struct {
	checker[int]
}

func NewConstant(t require.TestingT, opts ...Option) *Constant {
	return &Constant{checker: newChecker(t, opts, func(count int) []int {
		return []int{count}
	})}
}

// MakeChecker spies on every signal declared by object (see signals.Methods)
// and expects each to stay silent. Spies are labelled with the signal name
// followed by the label suffix; a label already taken is skipped.
// When t supports Cleanup the spies are closed at the end of the test.
func MakeChecker(t require.TestingT, object any, opts ...Option) *Constant {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	c := NewConstant(t, opts...)
	c.closeOnCleanup()
	for _, method := range signals.Methods(object) {
		label := method.Name + c.config.labelSuffix
		if c.hasLabel(label) {
			continue
		}
		spy, err := NewSpyFromMethod(method)
		if err != nil {
			require.NoError(t, err)
			return c
		}
		spy.SetLabel(label)
		c.set(spy, 0)
	}
	return c
}

// Expect sets the expected count of spy.
func (c *Constant) Expect(spy *Spy, count int) *Constant {
	c.set(spy, count)
	return c
}

func (c *Constant) Expected(spy *Spy) (int, bool) {
	return c.get(spy)
}

func (c *Constant) Len() int {
	return len(c.spies)
}

func (c *Constant) Spies() []*Spy {
	return c.snapshot()
}

func (c *Constant) Labels() []string {
	labels := make([]string, len(c.spies))
	for i, spy := range c.spies {
		labels[i] = spy.Label()
	}
	return labels
}

// Merge adds the entries of other whose spy and label are not present yet.
func (c *Constant) Merge(other *Constant) *Constant {
	for _, spy := range other.spies {
		if c.has(spy) || (spy.Label() != "" && c.hasLabel(spy.Label())) {
			continue
		}
		c.set(spy, other.values[spy])
	}
	return c
}

// CheckSpies reports every spy whose count differs from the expected one and carries on.
func (c *Constant) CheckSpies() bool {
	if h, ok := c.t.(tHelper); ok {
		h.Helper()
	}
	return c.check(false)
}

// RequireSpies stops the test at the first spy whose count differs from the expected one.
func (c *Constant) RequireSpies() bool {
	if h, ok := c.t.(tHelper); ok {
		h.Helper()
	}
	return c.check(true)
}

func (c *Constant) Verify() error {
	return c.verify()
}

// ClearSpyCounts clears every spy and resets its expected count to 0.
func (c *Constant) ClearSpyCounts() {
	for _, spy := range c.spies {
		spy.Clear()
		c.values[spy] = 0
	}
}

func (c *Constant) FindSpy(signal any) *Spy {
	if h, ok := c.t.(tHelper); ok {
		h.Helper()
	}
	return c.find(func(spy *Spy) bool {
		return spy.observes(signal)
	}, describeSignal(signal))
}

func (c *Constant) FindSpyByName(name string) *Spy {
	if h, ok := c.t.(tHelper); ok {
		h.Helper()
	}
	return c.find(func(spy *Spy) bool {
		return spy.Name() == name
	}, name)
}

func (c *Constant) Close() {
	c.close()
}
