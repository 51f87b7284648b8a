package list

// Node is an element in the doubly linked list.
type Node[T any] struct {
	prev *Node[T]
	next *Node[T]
	list *List[T]

	value T
}

// Value returns the element stored in the node.
func (n *Node[T]) Value() T { //nolint:ireturn
	if n == nil {
		var zero T
		return zero
	}

	return n.value
}

// Next returns the following node, or nil at the tail or for a detached node.
func (n *Node[T]) Next() *Node[T] {
	if n == nil || n.list == nil {
		return nil
	}

	return n.next
}

// Prev returns the preceding node, or nil at the head or for a detached node.
func (n *Node[T]) Prev() *Node[T] {
	if n == nil || n.list == nil {
		return nil
	}

	return n.prev
}

// cleanup detaches the node so stale handles cannot reach list internals.
func (n *Node[T]) cleanup() {
	n.prev = nil
	n.next = nil
	n.list = nil
}
