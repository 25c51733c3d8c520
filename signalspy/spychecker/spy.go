package spychecker

import (
	"fmt"
	"reflect"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/krew-solutions/signalspy-go/signalspy/disposable"
	"github.com/krew-solutions/signalspy-go/signalspy/signals"
)

// Spy records the emissions of one signal.
//
// A Spy is not safe for concurrent use; emit and inspect from the test's goroutine.
type Spy struct {
	label  string
	name   string
	signal any
	events []any
	detach disposable.Disposable
}

// NewSpy starts recording signal.
func NewSpy[E any](signal signals.Signal[E]) *Spy {
	s := &Spy{signal: signal}
	s.detach = signal.Attach(func(event E) {
		s.record(event)
	}, uuid.NewString())
	return s
}

// NewSpyByName starts recording the signal of object called name.
func NewSpyByName(object any, name string) (*Spy, error) {
	method, err := signals.Lookup(object, name)
	if err != nil {
		return nil, err
	}
	return NewSpyFromMethod(method)
}

// NewSpyFromMethod starts recording a signal found by signals.Methods.
func NewSpyFromMethod(method signals.Method) (*Spy, error) {
	s := &Spy{name: method.Name, signal: method.Signal()}
	d, err := signals.AttachAny(s.signal, s.record, uuid.NewString())
	if err != nil {
		return nil, errors.Wrapf(err, "unable to spy on %q", method.Name)
	}
	s.detach = d
	return s, nil
}

func (s *Spy) record(event any) {
	s.events = append(s.events, event)
}

// Count returns the number of emissions since creation or the last Clear.
func (s *Spy) Count() int {
	return len(s.events)
}

func (s *Spy) Events() []any {
	return append([]any(nil), s.events...)
}

// Last returns the payload of the most recent emission.
func (s *Spy) Last() (any, bool) {
	if len(s.events) == 0 {
		return nil, false
	}
	return s.events[len(s.events)-1], true
}

func (s *Spy) Clear() {
	s.events = nil
}

func (s *Spy) Label() string {
	return s.label
}

func (s *Spy) SetLabel(label string) {
	s.label = label
}

// Name is the signal name when the spy was built by name or from a Method.
func (s *Spy) Name() string {
	return s.name
}

// Signal returns the observed signal.
func (s *Spy) Signal() any {
	return s.signal
}

// Close stops recording. The recorded events are kept.
func (s *Spy) Close() {
	if s.detach != nil {
		s.detach.Dispose()
	}
}

func (s *Spy) String() string {
	switch {
	case s.label != "":
		return s.label
	case s.name != "":
		return s.name
	}
	return "<unlabelled>"
}

func (s *Spy) observes(signal any) bool {
	if signal == nil || s.signal == nil {
		return false
	}
	if !reflect.TypeOf(signal).Comparable() {
		return false
	}
	return s.signal == signal
}

func describeSignal(signal any) string {
	v := reflect.ValueOf(signal)
	if v.Kind() == reflect.Pointer {
		return fmt.Sprintf("%T %p", signal, signal)
	}
	return fmt.Sprintf("%T %v", signal, signal)
}
