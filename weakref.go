package keep

import (
	"reflect"
	"unsafe"
	"weak"
)

// weakRef holds a value without owning it: reading it back succeeds only
// while something else keeps the value alive. Only pointer values have
// the reference identity this requires; a value with copy semantics has
// no other owner by definition, so makeWeakRef rejects it and a read
// reports absent immediately.
//
// The dynamic pointee type is kept alongside a type-erased weak.Pointer
// so the original pointer, with its original dynamic type, can be
// reconstructed while the target is still live.
type weakRef struct {
	typ reflect.Type
	ptr weak.Pointer[byte]
}

// makeWeakRef creates a non-owning reference to value. It reports false
// when value is not a non-nil pointer and cannot be weakly referenced.
func makeWeakRef(value any) (weakRef, bool) {
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return weakRef{}, false
	}

	return weakRef{
		typ: rv.Type().Elem(),
		ptr: weak.Make((*byte)(rv.UnsafePointer())),
	}, true
}

// value returns the referenced instance while its target is still alive.
func (r weakRef) value() (any, bool) {
	if r.typ == nil {
		return nil, false
	}

	b := r.ptr.Value()
	if b == nil {
		return nil, false
	}

	return reflect.NewAt(r.typ, unsafe.Pointer(b)).Interface(), true
}
