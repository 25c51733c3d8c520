package spychecker

import "github.com/stretchr/testify/require"

// Optional maps each spy to the counts it may have; any one of them is a match.
// An empty list never matches.
type Optional struct {
	checker[[]int]
}

// NewOptional returns an empty checker reporting to t.
func NewOptional(t require.TestingT, opts ...Option) *Optional {
	return &Optional{checker: newChecker(t, opts, func(counts []int) []int {
		return counts
	})}
}

// Expect sets the accepted counts of spy, replacing earlier ones.
func (o *Optional) Expect(spy *Spy, counts ...int) *Optional {
	o.set(spy, append([]int{}, counts...))
	return o
}

func (o *Optional) Expected(spy *Spy) ([]int, bool) {
	counts, ok := o.get(spy)
	if !ok {
		return nil, false
	}
	return append([]int{}, counts...), true
}

func (o *Optional) Len() int {
	return len(o.spies)
}

// Spies returns the registered spies in registration order.
func (o *Optional) Spies() []*Spy {
	return o.snapshot()
}

// CheckSpies reports every spy whose count is not accepted and carries on.
func (o *Optional) CheckSpies() bool {
	if h, ok := o.t.(tHelper); ok {
		h.Helper()
	}
	return o.check(false)
}

// RequireSpies stops the test at the first spy whose count is not accepted.
func (o *Optional) RequireSpies() bool {
	if h, ok := o.t.(tHelper); ok {
		h.Helper()
	}
	return o.check(true)
}

// Verify returns the mismatches as a *multierror.Error, or nil.
func (o *Optional) Verify() error {
	return o.verify()
}

// ClearSpyCounts clears every spy and also empties its accepted counts,
// so expectations must be registered again afterwards.
func (o *Optional) ClearSpyCounts() {
	for _, spy := range o.spies {
		spy.Clear()
		o.values[spy] = []int{}
	}
}

// FindSpy returns the spy observing signal. A miss fails the test.
func (o *Optional) FindSpy(signal any) *Spy {
	if h, ok := o.t.(tHelper); ok {
		h.Helper()
	}
	return o.find(func(spy *Spy) bool {
		return spy.observes(signal)
	}, describeSignal(signal))
}

// FindSpyByName returns the spy observing the signal called name. A miss fails the test.
func (o *Optional) FindSpyByName(name string) *Spy {
	if h, ok := o.t.(tHelper); ok {
		h.Helper()
	}
	return o.find(func(spy *Spy) bool {
		return spy.Name() == name
	}, name)
}

func (o *Optional) Close() {
	o.close()
}
