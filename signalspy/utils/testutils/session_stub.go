package testutils

import (
	"time"

	"github.com/krew-solutions/signalspy-go/signalspy/signals"
)

func NewSessionStub() *SessionStub {
	return &SessionStub{
		onStarted:      signals.NewSignal[SessionScopeStartedEvent](),
		onEnded:        signals.NewSignal[SessionScopeEndedEvent](),
		onQueryStarted: signals.NewSignal[QueryStartedEvent](),
		onQueryEnded:   signals.NewSignal[QueryEndedEvent](),
		Closed:         signals.NewSignal[error](),
	}
}

// SessionStub is a signal-emitting object: it announces the scopes opened
// by Atomic and every query run through Exec.
type SessionStub struct {
	ActualQuery    string
	ActualParams   []any
	Closed         *signals.SignalImp[error]
	onStarted      signals.Signal[SessionScopeStartedEvent]
	onEnded        signals.Signal[SessionScopeEndedEvent]
	onQueryStarted signals.Signal[QueryStartedEvent]
	onQueryEnded   signals.Signal[QueryEndedEvent]
}

func (s *SessionStub) Atomic(callback func(*SessionStub) error) error {
	s.onStarted.Notify(SessionScopeStartedEvent{Session: s})
	defer s.onEnded.Notify(SessionScopeEndedEvent{Session: s})
	return callback(s)
}

func (s *SessionStub) Exec(query string, args ...any) {
	start := time.Now()
	s.onQueryStarted.Notify(QueryStartedEvent{Query: query, Params: args, Session: s})
	s.ActualQuery = query
	s.ActualParams = args
	s.onQueryEnded.Notify(QueryEndedEvent{
		Query:        query,
		Params:       args,
		Session:      s,
		ResponseTime: time.Since(start),
	})
}

func (s *SessionStub) Close(err error) {
	s.Closed.Notify(err)
}

func (s *SessionStub) OnStarted() signals.Signal[SessionScopeStartedEvent] {
	return s.onStarted
}

func (s *SessionStub) OnEnded() signals.Signal[SessionScopeEndedEvent] {
	return s.onEnded
}

func (s *SessionStub) OnQueryStarted() signals.Signal[QueryStartedEvent] {
	return s.onQueryStarted
}

func (s *SessionStub) OnQueryEnded() signals.Signal[QueryEndedEvent] {
	return s.onQueryEnded
}
