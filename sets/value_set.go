package sets

import (
	"reflect"
	"slices"
	"strconv"
	"strings"
)

// ValueSet is a membership table that never treats values of different kinds as equal,
// even when their textual forms coincide (the int 1 and the string "1" are distinct).
//
// Values are bucketed by their dynamic type and recorded under a key built by walking the
// value, so non-comparable values such as slices and maps can be members too. Composite
// values match when every element matches under the same rules; pointers, channels and
// funcs match by identity at any depth.
// A ValueSet is owned by a single traversal and is not safe for concurrent use.
type ValueSet[T any] struct {
	buckets map[reflect.Type]map[string]struct{}
	size    int
}

// New creates an empty ValueSet.
func New[T any]() *ValueSet[T] {
	return &ValueSet[T]{buckets: make(map[reflect.Type]map[string]struct{})}
}

// Of creates a ValueSet holding values.
func Of[T any](values ...T) *ValueSet[T] {
	s := New[T]()
	for _, v := range values {
		s.Add(v)
	}
	return s
}

// Add records v and reports whether it was not already present.
func (s *ValueSet[T]) Add(v T) bool {
	kind, text := keyOf(v)
	bucket, ok := s.buckets[kind]
	if !ok {
		bucket = make(map[string]struct{})
		s.buckets[kind] = bucket
	}
	if _, found := bucket[text]; found {
		return false
	}
	bucket[text] = struct{}{}
	s.size++
	return true
}

// Contains reports whether v is a member. Only v's own kind bucket is consulted.
func (s *ValueSet[T]) Contains(v T) bool {
	kind, text := keyOf(v)
	bucket, ok := s.buckets[kind]
	if !ok {
		return false
	}
	_, found := bucket[text]
	return found
}

// Len returns the number of members.
func (s *ValueSet[T]) Len() int {
	return s.size
}

func keyOf(v any) (reflect.Type, string) {
	// reflect.TypeOf(nil) is a nil Type, which is a valid bucket of its own.
	return reflect.TypeOf(v), textOf(v)
}

func textOf(v any) string {
	w := keyWriter{}
	w.value(reflect.ValueOf(v))
	return w.String()
}

type visit struct {
	ptr uintptr
	len int
	typ reflect.Type
}

// keyWriter renders a value so that two values of the same type produce the same text
// exactly when they are equal. Interface-typed positions carry the dynamic type of what
// they hold, since the enclosing type no longer pins it down.
type keyWriter struct {
	strings.Builder
	active map[visit]bool
}

func (w *keyWriter) value(rv reflect.Value) {
	if !rv.IsValid() {
		w.WriteString("nil")
		return
	}
	switch rv.Kind() {
	case reflect.Bool:
		w.WriteString(strconv.FormatBool(rv.Bool()))
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		w.WriteString(strconv.FormatInt(rv.Int(), 10))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		w.WriteString(strconv.FormatUint(rv.Uint(), 10))
	case reflect.Float32, reflect.Float64:
		w.WriteString(formatFloat(rv.Float()))
	case reflect.Complex64, reflect.Complex128:
		c := rv.Complex()
		w.WriteString("(" + formatFloat(real(c)) + "," + formatFloat(imag(c)) + ")")
	case reflect.String:
		w.WriteString(strconv.Quote(rv.String()))
	case reflect.Interface:
		if rv.IsNil() {
			w.WriteString("nil")
			return
		}
		elem := rv.Elem()
		w.WriteString(typeTag(elem.Type()))
		w.WriteByte('(')
		w.value(elem)
		w.WriteByte(')')
	case reflect.Pointer, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		if rv.IsNil() {
			w.WriteString("nil")
			return
		}
		// identity, not contents
		w.WriteString("@" + strconv.FormatUint(uint64(rv.Pointer()), 16))
	case reflect.Slice:
		if w.enter(rv, rv.Len()) {
			w.elements(rv)
			w.leave(rv, rv.Len())
		}
	case reflect.Array:
		w.elements(rv)
	case reflect.Map:
		if w.enter(rv, 0) {
			w.entries(rv)
			w.leave(rv, 0)
		}
	case reflect.Struct:
		w.WriteByte('{')
		for i := range rv.NumField() {
			if i > 0 {
				w.WriteByte(',')
			}
			w.value(rv.Field(i))
		}
		w.WriteByte('}')
	default:
		w.WriteString(rv.Type().String())
	}
}

func (w *keyWriter) elements(rv reflect.Value) {
	w.WriteByte('[')
	for i := range rv.Len() {
		if i > 0 {
			w.WriteByte(',')
		}
		w.value(rv.Index(i))
	}
	w.WriteByte(']')
}

// entries writes map entries ordered by the text of their keys.
func (w *keyWriter) entries(rv reflect.Value) {
	pairs := make([][2]string, 0, rv.Len())
	for it := rv.MapRange(); it.Next(); {
		pairs = append(pairs, [2]string{w.sub(it.Key()), w.sub(it.Value())})
	}
	slices.SortFunc(pairs, func(a, b [2]string) int {
		return strings.Compare(a[0], b[0])
	})

	w.WriteString("map[")
	for i, p := range pairs {
		if i > 0 {
			w.WriteByte(',')
		}
		w.WriteString(p[0])
		w.WriteByte(':')
		w.WriteString(p[1])
	}
	w.WriteByte(']')
}

// sub renders rv on its own, sharing the cycle guard with w.
func (w *keyWriter) sub(rv reflect.Value) string {
	inner := keyWriter{active: w.active}
	inner.value(rv)
	w.active = inner.active
	return inner.String()
}

// enter guards against slices and maps that contain themselves. A value already being
// written is recorded by identity instead of being walked again.
func (w *keyWriter) enter(rv reflect.Value, n int) bool {
	if rv.IsNil() {
		w.WriteString("nil")
		return false
	}
	v := visit{ptr: rv.Pointer(), len: n, typ: rv.Type()}
	if w.active[v] {
		w.WriteString("cycle@" + strconv.FormatUint(uint64(v.ptr), 16))
		return false
	}
	if w.active == nil {
		w.active = make(map[visit]bool)
	}
	w.active[v] = true
	return true
}

func (w *keyWriter) leave(rv reflect.Value, n int) {
	delete(w.active, visit{ptr: rv.Pointer(), len: n, typ: rv.Type()})
}

// formatFloat folds negative zero into zero, matching ==.
func formatFloat(f float64) string {
	if f == 0 {
		f = 0
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func typeTag(t reflect.Type) string {
	if t.PkgPath() != "" {
		return t.PkgPath() + "." + t.Name()
	}
	return t.String()
}
