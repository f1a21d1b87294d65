package functools

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrNotCallable is returned by Inspect for values that are not functions.
var ErrNotCallable = errors.New("value is not callable")

// Signature describes the parameter and result types of a function value
type Signature struct {
	In       []reflect.Type
	Out      []reflect.Type
	Variadic bool
}

// String renders the signature the way Go declares it, without names
func (s Signature) String() string {
	t := reflect.FuncOf(s.In, s.Out, s.Variadic)
	return t.String()
}

// Callable reports whether v can be called
func Callable(v any) bool {
	if v == nil {
		return false
	}
	return reflect.TypeOf(v).Kind() == reflect.Func
}

// Inspect returns the signature of fn
func Inspect(fn any) (Signature, error) {
	if !Callable(fn) {
		return Signature{}, fmt.Errorf("%w: %T", ErrNotCallable, fn)
	}

	t := reflect.TypeOf(fn)
	sig := Signature{
		In:       make([]reflect.Type, t.NumIn()),
		Out:      make([]reflect.Type, t.NumOut()),
		Variadic: t.IsVariadic(),
	}
	for i := range sig.In {
		sig.In[i] = t.In(i)
	}
	for i := range sig.Out {
		sig.Out[i] = t.Out(i)
	}

	return sig, nil
}
