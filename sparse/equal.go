// SPDX-License-Identifier: MIT

package sparse

import "reflect"

// Equaler lets a value type decide its own equality. When V implements
// Equaler[V], Store uses it both for the default-erase check and for Equal.
// Plain comparable values are compared with ==; everything else falls back
// to reflect.DeepEqual.
type Equaler[V any] interface {
	Equal(other V) bool
}

// equalFor picks the comparison for V once, at construction.
// Implementation:
//   - Stage 1: interface types and Equaler implementations dispatch per call.
//   - Stage 2: strictly comparable types use ==, skipping reflection on the
//     write path.
//   - Stage 3: anything else uses reflect.DeepEqual.
//
// Pointers are not on the == path: DeepEqual compares their pointees, and
// switching to identity would change which writes erase.
func equalFor[V any]() func(a, b V) bool {
	t := reflect.TypeFor[V]()
	if t.Kind() == reflect.Interface {
		return equal[V]
	}
	var zero V
	if _, ok := any(zero).(Equaler[V]); ok {
		return equal[V]
	}
	if strictlyComparable(t) {
		return func(a, b V) bool { return any(a) == any(b) }
	}

	return func(a, b V) bool { return reflect.DeepEqual(a, b) }
}

// strictlyComparable reports whether == on t never panics and agrees with
// reflect.DeepEqual: scalars, strings, channels and arrays or structs built
// only from those.
func strictlyComparable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128,
		reflect.String, reflect.Chan, reflect.UnsafePointer:
		return true
	case reflect.Array:
		return strictlyComparable(t.Elem())
	case reflect.Struct:
		for i := range t.NumField() {
			if !strictlyComparable(t.Field(i).Type) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// equal compares two values of type V, dispatching on the dynamic value.
func equal[V any](v1, v2 V) bool {
	// you can't assert directly on a type parameter
	if e, ok := any(v1).(Equaler[V]); ok {
		return e.Equal(v2)
	}

	return reflect.DeepEqual(v1, v2)
}

// Equal reports whether s and o have the same dimensionality, equal
// defaults and the same stored cells with equal values.
// Complexity: O(s·N) time, O(s) extra space.
func (s *Store[V]) Equal(o *Store[V]) bool {
	if s == nil || o == nil {
		return s == o
	}
	if s == o {
		return true
	}
	if s.dims != o.dims || s.tree.Len() != o.tree.Len() || !s.eq(s.def, o.def) {
		return false
	}

	others := make([]entry[V], 0, o.tree.Len())
	o.tree.Ascend(func(e entry[V]) bool {
		others = append(others, e)
		return true
	})

	i, same := 0, true
	s.tree.Ascend(func(e entry[V]) bool {
		oe := others[i]
		i++
		same = equalKey(e, oe) && s.eq(e.val, oe.val)
		return same
	})

	return same
}

// equalKey compares only the coordinates of two entries.
func equalKey[V any](a, b entry[V]) bool {
	return !lessEntry(a, b) && !lessEntry(b, a)
}
