package operator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

var (
	ErrIndexOutOfRange = errors.New("item index out of range")
	ErrNoAttribute     = errors.New("no such attribute")
	ErrNoMethod        = errors.New("no such method")
	ErrBadArguments    = errors.New("bad method arguments")
)

// ItemGetter returns a function picking the given positions out of a slice.
// Negative positions count from the end.
func ItemGetter[T any](indices ...int) func([]T) ([]T, error) {
	return func(items []T) ([]T, error) {
		picked := make([]T, 0, len(indices))
		for _, i := range indices {
			j := i
			if j < 0 {
				j += len(items)
			}
			if j < 0 || j >= len(items) {
				return nil, fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfRange, i, len(items))
			}
			picked = append(picked, items[j])
		}
		return picked, nil
	}
}

// AttrGetter returns a function reading struct fields by dotted path, e.g.
// "coord.lat". Field names match case-insensitively.
func AttrGetter(paths ...string) func(any) ([]any, error) {
	return func(obj any) ([]any, error) {
		values := make([]any, 0, len(paths))
		for _, path := range paths {
			v, err := lookupPath(reflect.ValueOf(obj), path)
			if err != nil {
				return nil, err
			}
			values = append(values, v.Interface())
		}
		return values, nil
	}
}

func lookupPath(v reflect.Value, path string) (reflect.Value, error) {
	for _, name := range strings.Split(path, ".") {
		for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
			if v.IsNil() {
				return reflect.Value{}, fmt.Errorf("%w: %s (nil)", ErrNoAttribute, path)
			}
			v = v.Elem()
		}
		if v.Kind() != reflect.Struct {
			return reflect.Value{}, fmt.Errorf("%w: %s on %s", ErrNoAttribute, name, v.Kind())
		}

		field, ok := v.Type().FieldByNameFunc(func(f string) bool {
			return strings.EqualFold(f, name)
		})
		if !ok || !field.IsExported() {
			return reflect.Value{}, fmt.Errorf("%w: %s on %s", ErrNoAttribute, name, v.Type())
		}
		v = v.FieldByIndex(field.Index)
	}
	return v, nil
}

// MethodCaller returns a function that calls the named method with args on
// its receiver. A trailing non-nil error result is returned as the error;
// otherwise the first result is returned.
func MethodCaller(name string, args ...any) func(any) (any, error) {
	return func(recv any) (any, error) {
		method := reflect.ValueOf(recv).MethodByName(name)
		if !method.IsValid() {
			return nil, fmt.Errorf("%w: %T.%s", ErrNoMethod, recv, name)
		}

		in, err := methodArgs(method.Type(), args)
		if err != nil {
			return nil, fmt.Errorf("%T.%s: %w", recv, name, err)
		}

		out := method.Call(in)
		if len(out) == 0 {
			return nil, nil
		}
		if last := out[len(out)-1]; last.Type() == errorType {
			if !last.IsNil() {
				return nil, last.Interface().(error)
			}
			if len(out) == 1 {
				return nil, nil
			}
		}
		return out[0].Interface(), nil
	}
}

var errorType = reflect.TypeOf((*error)(nil)).Elem()

func methodArgs(t reflect.Type, args []any) ([]reflect.Value, error) {
	fixed := t.NumIn()
	if t.IsVariadic() {
		fixed--
		if len(args) < fixed {
			return nil, fmt.Errorf("%w: want at least %d, got %d", ErrBadArguments, fixed, len(args))
		}
	} else if len(args) != fixed {
		return nil, fmt.Errorf("%w: want %d, got %d", ErrBadArguments, fixed, len(args))
	}

	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		var want reflect.Type
		if i < fixed {
			want = t.In(i)
		} else {
			want = t.In(fixed).Elem()
		}

		if arg == nil {
			in[i] = reflect.Zero(want)
			continue
		}
		v := reflect.ValueOf(arg)
		switch {
		case v.Type().AssignableTo(want):
		case v.Type().ConvertibleTo(want) && isNumeric(v.Kind()) && isNumeric(want.Kind()):
			v = v.Convert(want)
		default:
			return nil, fmt.Errorf("%w: argument %d is %s, want %s", ErrBadArguments, i, v.Type(), want)
		}
		in[i] = v
	}
	return in, nil
}

func isNumeric(k reflect.Kind) bool {
	return k >= reflect.Int && k <= reflect.Float64
}
