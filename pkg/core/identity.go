package core

import "reflect"

// Identical reports whether two values are the same by identity. Pointers,
// maps, slices, channels, and functions compare by their referenced
// identity; comparable values compare with ==; everything else is never
// identical. This is the engine's sole equality check for state updates and
// effect dependencies; it is deliberately not a deep or shallow comparison.
func Identical(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	va := reflect.ValueOf(a)
	vb := reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}
	switch va.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return va.Pointer() == vb.Pointer()
	}
	if !va.Type().Comparable() {
		return false
	}
	return a == b
}

// sameProps reports whether two prop maps have the same keys with
// identity-equal values.
func sameProps(a, b Props) bool {
	if len(a) != len(b) {
		return false
	}
	for k, av := range a {
		bv, ok := b[k]
		if !ok || !Identical(av, bv) {
			return false
		}
	}
	return true
}

// sameDeps reports whether two dependency lists are element-wise identical.
// A nil list never matches: effects with no dependency list re-run on every
// render.
func sameDeps(prev, next []any) bool {
	if prev == nil || next == nil {
		return false
	}
	if len(prev) != len(next) {
		return false
	}
	for i := range prev {
		if !Identical(prev[i], next[i]) {
			return false
		}
	}
	return true
}

// componentPointer returns a comparable identity for a component function.
func componentPointer(c Component) uintptr {
	if c == nil {
		return 0
	}
	return reflect.ValueOf(c).Pointer()
}
