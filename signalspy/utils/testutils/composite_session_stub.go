package testutils

import (
	"github.com/krew-solutions/signalspy-go/signalspy/signals"
)

// CompositeSessionStub spans several sessions. Its accessors build a new
// composite signal on every call, so the returned values are never equal
// from one call to the next.
type CompositeSessionStub struct {
	delegates []*SessionStub
}

func NewCompositeSessionStub(delegates ...*SessionStub) *CompositeSessionStub {
	return &CompositeSessionStub{delegates: delegates}
}

func (s *CompositeSessionStub) Delegate(index int) *SessionStub {
	return s.delegates[index]
}

// Atomic opens a scope on every delegate, outermost first.
func (s *CompositeSessionStub) Atomic(callback func(*CompositeSessionStub) error) error {
	return s.atomicRecursive(callback, 0)
}

func (s *CompositeSessionStub) atomicRecursive(callback func(*CompositeSessionStub) error, index int) error {
	if index >= len(s.delegates) {
		return callback(s)
	}
	return s.delegates[index].Atomic(func(*SessionStub) error {
		return s.atomicRecursive(callback, index+1)
	})
}

func (s *CompositeSessionStub) OnStarted() signals.Signal[SessionScopeStartedEvent] {
	delegates := make([]signals.Signal[SessionScopeStartedEvent], len(s.delegates))
	for i, d := range s.delegates {
		delegates[i] = d.OnStarted()
	}
	return signals.NewCompositeSignal(delegates...)
}

func (s *CompositeSessionStub) OnEnded() signals.Signal[SessionScopeEndedEvent] {
	delegates := make([]signals.Signal[SessionScopeEndedEvent], len(s.delegates))
	for i, d := range s.delegates {
		delegates[i] = d.OnEnded()
	}
	return signals.NewCompositeSignal(delegates...)
}
