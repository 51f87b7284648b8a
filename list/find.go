package list

import "reflect"

// Find returns the first node, from head to tail, whose element is equal to key
// under compare(key, element). It returns nil if nothing matches, if the list has
// no compare capability or if key is nil or a nil pointer, map, slice, func or chan.
func (l *List[T]) Find(key T) *Node[T] {
	if l == nil || l.compare == nil || isNil(key) {
		return nil
	}

	for n := l.head; n != nil; n = n.next {
		if l.compare(key, n.value) == 0 {
			return n
		}
	}

	return nil
}

func isNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() { //nolint:exhaustive
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan,
		reflect.UnsafePointer:
		return rv.IsNil()
	}

	return false
}
