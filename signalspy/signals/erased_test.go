package signals

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsSignal(t *testing.T) {
	var nilSignal *SignalImp[sampleEvent]
	var iface Signal[sampleEvent] = NewSignal[sampleEvent]()

	assert.True(t, IsSignal(NewSignal[sampleEvent]()))
	assert.True(t, IsSignal(NewCompositeSignal[int]()))
	assert.True(t, IsSignal(iface))
	assert.False(t, IsSignal(nilSignal))
	assert.False(t, IsSignal(nil))
	assert.False(t, IsSignal(42))
	assert.False(t, IsSignal(&struct{}{}))
}

func TestAttachAny_ReceivesEvents(t *testing.T) {
	s := NewSignal[sampleEvent]()
	var received []any
	d, err := AttachAny(s, func(e any) { received = append(received, e) }, "obs")
	require.NoError(t, err)

	s.Notify(sampleEvent{1})
	s.Notify(sampleEvent{2})
	assert.Equal(t, []any{sampleEvent{1}, sampleEvent{2}}, received)

	d.Dispose()
	s.Notify(sampleEvent{3})
	assert.Len(t, received, 2)
}

func TestAttachAny_WithoutIDObserversAreSeparate(t *testing.T) {
	s := NewSignal[int]()
	calls := 0
	_, err := AttachAny(s, func(any) { calls++ })
	require.NoError(t, err)
	_, err = AttachAny(s, func(any) { calls++ })
	require.NoError(t, err)

	s.Notify(1)
	assert.Equal(t, 2, calls)
}

func TestAttachAny_InterfaceEvent(t *testing.T) {
	s := NewSignal[error]()
	var received []any
	_, err := AttachAny(s, func(e any) { received = append(received, e) }, "obs")
	require.NoError(t, err)

	s.Notify(nil)
	assert.Equal(t, []any{nil}, received)
}

func TestAttachAny_CompositeSignal(t *testing.T) {
	s1 := NewSignal[int]()
	s2 := NewSignal[int]()
	calls := 0
	d, err := AttachAny(NewCompositeSignal[int](s1, s2), func(any) { calls++ }, "obs")
	require.NoError(t, err)

	s1.Notify(1)
	s2.Notify(1)
	d.Dispose()
	s1.Notify(1)
	assert.Equal(t, 2, calls)
}

func TestAttachAny_RejectsNonSignal(t *testing.T) {
	_, err := AttachAny("not a signal", func(any) {})
	assert.True(t, errors.Is(err, ErrNotSignal))

	var nilSignal *SignalImp[int]
	_, err = AttachAny(nilSignal, func(any) {})
	assert.True(t, errors.Is(err, ErrNotSignal))
}
