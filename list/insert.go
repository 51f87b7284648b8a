package list

import "github.com/percona/percona-dllist/errors"

// InsertBefore inserts v immediately before ref and returns the new node.
//
// ref is required when the list is non-empty and must belong to the list. On an
// empty list ref is ignored and the new node becomes the only node.
func (l *List[T]) InsertBefore(ref *Node[T], v T) (*Node[T], error) {
	if l == nil {
		return nil, errors.Wrap(ErrInvalidArgument, "insert before: nil list")
	}

	if l.size != 0 && !l.owns(ref) {
		return nil, errors.Wrap(ErrInvalidArgument, "insert before: reference node")
	}

	n, err := l.newNode(v)
	if err != nil {
		return nil, errors.Wrap(err, "insert before")
	}

	if l.size == 0 {
		l.head = n
		l.tail = n
	} else {
		n.next = ref
		n.prev = ref.prev

		if ref.prev == nil {
			l.head = n
		} else {
			ref.prev.next = n
		}

		ref.prev = n
	}

	l.size++

	return n, nil
}

// InsertAfter inserts v immediately after ref and returns the new node.
//
// ref is required when the list is non-empty and must belong to the list. On an
// empty list ref is ignored and the new node becomes the only node.
func (l *List[T]) InsertAfter(ref *Node[T], v T) (*Node[T], error) {
	if l == nil {
		return nil, errors.Wrap(ErrInvalidArgument, "insert after: nil list")
	}

	if l.size != 0 && !l.owns(ref) {
		return nil, errors.Wrap(ErrInvalidArgument, "insert after: reference node")
	}

	n, err := l.newNode(v)
	if err != nil {
		return nil, errors.Wrap(err, "insert after")
	}

	if l.size == 0 {
		l.head = n
		l.tail = n
	} else {
		n.next = ref.next
		n.prev = ref

		if ref.next == nil {
			l.tail = n
		} else {
			ref.next.prev = n
		}

		ref.next = n
	}

	l.size++

	return n, nil
}

// Append adds v to the end of the list.
func (l *List[T]) Append(v T) (*Node[T], error) {
	if l == nil {
		return nil, errors.Wrap(ErrInvalidArgument, "append: nil list")
	}

	return l.InsertAfter(l.tail, v)
}

// Prepend adds v to the front of the list.
func (l *List[T]) Prepend(v T) (*Node[T], error) {
	if l == nil {
		return nil, errors.Wrap(ErrInvalidArgument, "prepend: nil list")
	}

	return l.InsertBefore(l.head, v)
}

// InsertOrdered inserts v before the first element that compares greater than v,
// or at the tail if there is none. Elements equal to v stay ahead of it.
func (l *List[T]) InsertOrdered(v T) (*Node[T], error) {
	if l == nil {
		return nil, errors.Wrap(ErrInvalidArgument, "insert ordered: nil list")
	}

	if l.compare == nil {
		return nil, errors.Wrap(ErrUndefinedCapability, "insert ordered: compare")
	}

	for n := l.head; n != nil; n = n.next {
		if l.compare(v, n.value) < 0 {
			return l.InsertBefore(n, v)
		}
	}

	return l.InsertAfter(l.tail, v)
}

func (l *List[T]) newNode(v T) (*Node[T], error) {
	if l.maxSize != 0 && l.size >= l.maxSize {
		return nil, ErrAllocation
	}

	return &Node[T]{list: l, value: v}, nil
}
