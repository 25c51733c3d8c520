package signals

import (
	"github.com/krew-solutions/signalspy-go/signalspy/disposable"
)

// Observer receives the events of one signal.
type Observer[E any] func(E)

// Signal is an event emission point of an object. Observers are identified
// by observerID when given, by their function pointer otherwise.
type Signal[E any] interface {
	Attach(observer Observer[E], observerID ...any) disposable.Disposable
	Detach(observer Observer[E], observerID ...any)
	Notify(event E)
}

// Counted is implemented by signals that know how many observers they hold.
type Counted interface {
	Len() int
}

var (
	_ Signal[any] = (*SignalImp[any])(nil)
	_ Signal[any] = (*CompositeSignalImp[any])(nil)
	_ Counted     = (*SignalImp[any])(nil)
	_ Counted     = (*CompositeSignalImp[any])(nil)
)
