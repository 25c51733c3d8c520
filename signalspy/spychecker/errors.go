package spychecker

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrCountMismatch = errors.New("spychecker: signal count mismatch")

// Mismatch describes a spy whose count is not among the expected ones.
type Mismatch struct {
	Spy      string
	Actual   int
	Expected []int
}

func (m *Mismatch) Error() string {
	return fmt.Sprintf("spy %s: count %d, expected %s", m.Spy, m.Actual, m.ExpectedString())
}

func (m *Mismatch) Unwrap() error {
	return ErrCountMismatch
}

// ExpectedString joins the accepted counts with " or ".
func (m *Mismatch) ExpectedString() string {
	if len(m.Expected) == 0 {
		return "(none)"
	}
	parts := make([]string, len(m.Expected))
	for i, n := range m.Expected {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, " or ")
}
