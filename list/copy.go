package list

import "github.com/percona/percona-dllist/errors"

// Copy returns a new list holding the elements of l in the same order. The result
// has the capabilities of l, overridden by opts.
//
// Elements are duplicated with the copy capability of the result. Without one the
// elements are shared between both lists, which is only allowed when neither l nor
// the result has a destroy capability: otherwise tearing down one list would release
// elements the other still holds, and Copy fails with ErrUndefinedCapability. Use
// Share to request a shallow duplicate explicitly.
//
// On failure the partial result is torn down and a nil list is returned.
func (l *List[T]) Copy(opts ...Option[T]) (*List[T], error) {
	if l == nil {
		return nil, errors.Wrap(ErrInvalidArgument, "copy: nil list")
	}

	dup := &List[T]{
		compare: l.compare,
		destroy: l.destroy,
		copy:    l.copy,
		maxSize: l.maxSize,
	}
	for _, opt := range opts {
		opt(dup)
	}

	if dup.copy == nil && (dup.destroy != nil || l.destroy != nil) {
		return nil, errors.Wrap(ErrUndefinedCapability, "copy: elements would be shared")
	}

	for n := l.head; n != nil; n = n.next {
		v := n.value
		if dup.copy != nil {
			v = dup.copy(v)
		}

		if _, err := dup.Append(v); err != nil {
			if dup.copy != nil && dup.destroy != nil {
				dup.destroy(v)
			}

			failed := dup.size + 1
			dup.Teardown()

			return nil, errors.Wrapf(err, "copy: element %d of %d", failed, l.size)
		}
	}

	return dup, nil
}

// Share returns a new list referencing the same elements as l. The result keeps the
// compare and copy capabilities of l but never destroys: the elements stay owned by l.
func (l *List[T]) Share() *List[T] {
	if l == nil {
		return nil
	}

	dup := &List[T]{
		compare: l.compare,
		copy:    l.copy,
	}
	for n := l.head; n != nil; n = n.next {
		dup.pushBack(n.value)
	}

	return dup
}

// AppendList appends the elements of src to l, head to tail. Elements are
// duplicated with the copy capability of l, since l owns what it holds afterwards.
// Without a copy capability elements are shared, which fails with
// ErrUndefinedCapability if either l or src has a destroy capability.
//
// AppendList is atomic: on failure every node it added is removed again and l is
// left as it was. Appending a list to itself appends one pass of its elements.
func (l *List[T]) AppendList(src *List[T]) error {
	if l == nil || src == nil {
		return errors.Wrap(ErrInvalidArgument, "append list: nil list")
	}

	if l.copy == nil && (l.destroy != nil || src.destroy != nil) {
		return errors.Wrap(ErrUndefinedCapability, "append list: elements would be shared")
	}

	mark := l.tail
	n := src.head

	for i, count := 0, src.size; i < count; i++ {
		v := n.value
		n = n.next

		if l.copy != nil {
			v = l.copy(v)
		}

		if _, err := l.Append(v); err != nil {
			if l.copy != nil && l.destroy != nil {
				l.destroy(v)
			}

			l.truncateAfter(mark)

			return errors.Wrapf(err, "append list: element %d of %d", i+1, count)
		}
	}

	return nil
}

// MoveList moves every node of src to the end of l without duplicating elements.
// Ownership of the elements moves to l and src is left empty: from then on they are
// destroyed by l. Moving out of a list with a destroy capability into one without
// it fails with ErrUndefinedCapability, since nothing would release the elements.
func (l *List[T]) MoveList(src *List[T]) error {
	if l == nil || src == nil {
		return errors.Wrap(ErrInvalidArgument, "move list: nil list")
	}

	if l == src {
		return errors.Wrap(ErrInvalidArgument, "move list: same list")
	}

	if src.destroy != nil && l.destroy == nil {
		return errors.Wrap(ErrUndefinedCapability, "move list: elements would never be destroyed")
	}

	if src.size == 0 {
		return nil
	}

	if l.maxSize != 0 && l.size+src.size > l.maxSize {
		return errors.Wrap(ErrAllocation, "move list")
	}

	for n := src.head; n != nil; n = n.next {
		n.list = l
	}

	if l.tail == nil {
		l.head = src.head
	} else {
		l.tail.next = src.head
		src.head.prev = l.tail
	}

	l.tail = src.tail
	l.size += src.size

	src.head = nil
	src.tail = nil
	src.size = 0

	return nil
}

// truncateAfter drops every node after mark, or all nodes if mark is nil. Deep copies
// are destroyed, shared elements are not.
func (l *List[T]) truncateAfter(mark *Node[T]) {
	for l.tail != mark {
		if l.copy != nil {
			_ = l.Remove(l.tail)
		} else {
			_, _ = l.Take(l.tail)
		}
	}
}

// pushBack appends without the size limit.
func (l *List[T]) pushBack(v T) {
	n := &Node[T]{list: l, value: v, prev: l.tail}

	if l.tail == nil {
		l.head = n
	} else {
		l.tail.next = n
	}

	l.tail = n
	l.size++
}
