package testutils

import "time"

type SessionScopeStartedEvent struct {
	Session *SessionStub
}

type SessionScopeEndedEvent struct {
	Session *SessionStub
}

type QueryStartedEvent struct {
	Query   string
	Params  []any
	Session *SessionStub
}

type QueryEndedEvent struct {
	Query        string
	Params       []any
	Session      *SessionStub
	ResponseTime time.Duration
}
