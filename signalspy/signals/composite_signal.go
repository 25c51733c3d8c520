package signals

import (
	"github.com/krew-solutions/signalspy-go/signalspy/disposable"
)

// CompositeSignalImp presents several signals of the same event type as one.
// It holds no observers itself: every call is forwarded to each delegate in
// order, so an accessor may build a fresh composite per call and observers
// attached through one composite are seen by all others over the same
// delegates.
type CompositeSignalImp[E any] struct {
	delegates []Signal[E]
}

func NewCompositeSignal[E any](delegates ...Signal[E]) *CompositeSignalImp[E] {
	return &CompositeSignalImp[E]{delegates: delegates}
}

// Attach attaches observer to every delegate. Without observerID each
// delegate derives the same id from the observer, so Detach(observer)
// reaches all of them.
func (s *CompositeSignalImp[E]) Attach(observer Observer[E], observerID ...any) disposable.Disposable {
	attached := make([]disposable.Disposable, len(s.delegates))
	for i, delegate := range s.delegates {
		attached[i] = delegate.Attach(observer, observerID...)
	}
	return disposable.NewCompositeDisposable(attached...)
}

func (s *CompositeSignalImp[E]) Detach(observer Observer[E], observerID ...any) {
	for _, delegate := range s.delegates {
		delegate.Detach(observer, observerID...)
	}
}

// Notify emits event on each delegate, so an observer attached through the
// composite receives it once per delegate.
func (s *CompositeSignalImp[E]) Notify(event E) {
	for _, delegate := range s.delegates {
		delegate.Notify(event)
	}
}

// Len sums the observers of the delegates that report a count.
func (s *CompositeSignalImp[E]) Len() int {
	total := 0
	for _, delegate := range s.delegates {
		if c, ok := delegate.(Counted); ok {
			total += c.Len()
		}
	}
	return total
}

// Delegates returns the wrapped signals.
func (s *CompositeSignalImp[E]) Delegates() []Signal[E] {
	return append([]Signal[E](nil), s.delegates...)
}
