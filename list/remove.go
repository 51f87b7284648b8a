package list

import "github.com/percona/percona-dllist/errors"

// Remove unlinks n from the list and passes its element to destroy, if defined.
func (l *List[T]) Remove(n *Node[T]) error {
	if err := l.checkRemove(n); err != nil {
		return errors.Wrap(err, "remove")
	}

	v := l.unlink(n)
	if l.destroy != nil {
		l.destroy(v)
	}

	return nil
}

// Take unlinks n from the list and returns its element. Ownership of the element
// moves to the caller and destroy is not called.
func (l *List[T]) Take(n *Node[T]) (T, error) { //nolint:ireturn
	if err := l.checkRemove(n); err != nil {
		var zero T
		return zero, errors.Wrap(err, "take")
	}

	return l.unlink(n), nil
}

func (l *List[T]) checkRemove(n *Node[T]) error {
	switch {
	case l == nil:
		return errors.Wrap(ErrInvalidArgument, "nil list")
	case l.size == 0:
		return errors.Wrap(ErrInvalidArgument, "empty list")
	case n == nil:
		return errors.Wrap(ErrInvalidArgument, "nil node")
	case n.list != l:
		return errors.Wrap(ErrInvalidArgument, "node does not belong to the list")
	}

	return nil
}

func (l *List[T]) unlink(n *Node[T]) T { //nolint:ireturn
	if n.prev == nil {
		l.head = n.next
	} else {
		n.prev.next = n.next
	}

	if n.next == nil {
		l.tail = n.prev
	} else {
		n.next.prev = n.prev
	}

	l.size--

	v := n.value
	n.cleanup()

	var zero T
	n.value = zero

	return v
}
