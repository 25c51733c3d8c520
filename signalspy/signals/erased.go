package signals

import (
	"reflect"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/krew-solutions/signalspy-go/signalspy/disposable"
)

var (
	disposableType = reflect.TypeFor[disposable.Disposable]()
	anySliceType   = reflect.TypeFor[[]any]()
)

// IsSignal reports whether v has the method set of a Signal[E] for some E.
func IsSignal(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.IsValid() && !isNil(rv) && isSignalType(rv.Type())
}

// AttachAny attaches observer to a Signal[E] whose E is not known statically.
// Every event is passed to observer as any.
//
// Observers created here share one code pointer, so the function pointer
// cannot serve as their id; when observerID is omitted a random one is used.
// The returned Disposable is the only way to detach such an observer.
func AttachAny(signal any, observer func(any), observerID ...any) (disposable.Disposable, error) {
	v := reflect.ValueOf(signal)
	if !v.IsValid() || isNil(v) || !isSignalType(v.Type()) {
		return nil, errors.Wrapf(ErrNotSignal, "%T", signal)
	}
	if len(observerID) == 0 {
		observerID = []any{uuid.NewString()}
	}

	attach := v.MethodByName("Attach")
	fn := reflect.MakeFunc(attach.Type().In(0), func(args []reflect.Value) []reflect.Value {
		observer(args[0].Interface())
		return nil
	})
	args := []reflect.Value{fn}
	for i := range observerID {
		args = append(args, reflect.ValueOf(&observerID[i]).Elem())
	}

	out := attach.Call(args)
	if d, ok := out[0].Interface().(disposable.Disposable); ok && d != nil {
		return d, nil
	}
	detach := v.MethodByName("Detach")
	return disposable.NewDisposable(func() {
		detach.Call(args)
	}), nil
}

type signature struct {
	in       []reflect.Type
	out      []reflect.Type
	variadic bool
}

// methodSignature returns the signature of the named method without the receiver.
func methodSignature(t reflect.Type, name string) (signature, bool) {
	m, ok := t.MethodByName(name)
	if !ok {
		return signature{}, false
	}
	first := 1
	if t.Kind() == reflect.Interface {
		first = 0
	}
	sig := signature{variadic: m.Type.IsVariadic()}
	for i := first; i < m.Type.NumIn(); i++ {
		sig.in = append(sig.in, m.Type.In(i))
	}
	for i := 0; i < m.Type.NumOut(); i++ {
		sig.out = append(sig.out, m.Type.Out(i))
	}
	return sig, true
}

func isSignalType(t reflect.Type) bool {
	notify, ok := methodSignature(t, "Notify")
	if !ok || len(notify.in) != 1 || len(notify.out) != 0 || notify.variadic {
		return false
	}
	event := notify.in[0]

	attach, ok := methodSignature(t, "Attach")
	if !ok || !isObserverSignature(attach, event) || len(attach.out) != 1 {
		return false
	}
	if !attach.out[0].Implements(disposableType) {
		return false
	}

	detach, ok := methodSignature(t, "Detach")
	return ok && isObserverSignature(detach, event) && len(detach.out) == 0
}

// isObserverSignature matches (func(event), ...any).
func isObserverSignature(sig signature, event reflect.Type) bool {
	if !sig.variadic || len(sig.in) != 2 || sig.in[1] != anySliceType {
		return false
	}
	observer := sig.in[0]
	return observer.Kind() == reflect.Func &&
		observer.NumIn() == 1 &&
		observer.In(0) == event &&
		observer.NumOut() == 0
}

// isNil also looks through interfaces, so a Signal[E] holding a nil
// *SignalImp[E] counts as nil.
func isNil(v reflect.Value) bool {
	for v.Kind() == reflect.Interface && !v.IsNil() {
		v = v.Elem()
	}
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Func, reflect.Slice, reflect.Chan:
		return v.IsNil()
	}
	return false
}
