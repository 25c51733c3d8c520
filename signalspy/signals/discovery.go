package signals

import (
	"reflect"

	"github.com/pkg/errors"
)

type Kind int

const (
	MethodSignal Kind = iota // exposed by an accessor method, e.g. OnStarted()
	FieldSignal              // exposed by an exported struct field
)

func (k Kind) String() string {
	switch k {
	case MethodSignal:
		return "method"
	case FieldSignal:
		return "field"
	}
	return "unknown"
}

// Method describes one signal declared by an object.
type Method struct {
	Name  string
	Index int
	Kind  Kind

	signal reflect.Value
}

// Signal returns the signal value. Two Methods resolved to the same signal
// return equal values.
func (m Method) Signal() any {
	if !m.signal.IsValid() {
		return nil
	}
	return m.signal.Interface()
}

// Methods enumerates the signals declared by object.
//
// Accessor methods come first, in method-set order: exported methods
// without arguments returning a single signal value. Exported struct fields
// of a signal type follow, in declaration order. Accessors are called once
// each; nil results and nil fields are skipped.
func Methods(object any) []Method {
	v := reflect.ValueOf(object)
	if !v.IsValid() || isNil(v) {
		return nil
	}

	var result []Method
	t := v.Type()
	for i := 0; i < t.NumMethod(); i++ {
		m := t.Method(i)
		if !m.IsExported() {
			continue
		}
		mv := v.Method(i)
		mt := mv.Type()
		if mt.NumIn() != 0 || mt.NumOut() != 1 || !isSignalType(mt.Out(0)) {
			continue
		}
		sig := mv.Call(nil)[0]
		if isNil(sig) {
			continue
		}
		result = append(result, Method{Name: m.Name, Index: i, Kind: MethodSignal, signal: sig})
	}

	s := v
	for s.Kind() == reflect.Pointer {
		if s.IsNil() {
			return result
		}
		s = s.Elem()
	}
	if s.Kind() != reflect.Struct {
		return result
	}
	st := s.Type()
	for i := 0; i < st.NumField(); i++ {
		f := st.Field(i)
		if !f.IsExported() || !isSignalType(f.Type) {
			continue
		}
		fv := s.Field(i)
		if isNil(fv) {
			continue
		}
		result = append(result, Method{Name: f.Name, Index: i, Kind: FieldSignal, signal: fv})
	}
	return result
}

// Lookup returns the signal of object called name.
func Lookup(object any, name string) (Method, error) {
	for _, m := range Methods(object) {
		if m.Name == name {
			return m, nil
		}
	}
	return Method{}, errors.Wrapf(ErrSignalNotFound, "%s on %T", name, object)
}
