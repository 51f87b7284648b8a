/*
Package list provides a generic doubly linked list.

The list is parameterized by three optional capabilities supplied by the caller:

  - compare: a three-way comparison used by InsertOrdered, Find and Sort.

  - destroy: releases an element that is dropped by the list (Remove, Teardown).

  - copy: produces an independent duplicate of an element (Copy, AppendList).

A List is not safe for concurrent use. Callers sharing a list between goroutines
must serialize every call themselves.
*/
package list

import "iter"

// CompareFunc returns a negative number when a sorts before b, zero when they are
// equal and a positive number otherwise.
type CompareFunc[T any] func(a, b T) int

// DestroyFunc releases an element the list no longer references.
type DestroyFunc[T any] func(v T)

// CopyFunc returns an independent deep copy of v.
type CopyFunc[T any] func(v T) T

// List is a doubly linked list.
//
// The zero value is an empty list without capabilities. A nil *List behaves as an
// absent list: accessors return zero values and mutators fail with ErrInvalidArgument.
type List[T any] struct {
	head *Node[T]
	tail *Node[T]
	size int

	compare CompareFunc[T]
	destroy DestroyFunc[T]
	copy    CopyFunc[T]

	maxSize int // 0 means unlimited
}

// Option configures a list.
type Option[T any] func(l *List[T])

// WithCompare sets the compare capability.
func WithCompare[T any](fn CompareFunc[T]) Option[T] {
	return func(l *List[T]) {
		l.compare = fn
	}
}

// WithDestroy sets the destroy capability.
func WithDestroy[T any](fn DestroyFunc[T]) Option[T] {
	return func(l *List[T]) {
		l.destroy = fn
	}
}

// WithCopy sets the copy capability.
func WithCopy[T any](fn CopyFunc[T]) Option[T] {
	return func(l *List[T]) {
		l.copy = fn
	}
}

// WithMaxSize limits the number of nodes the list may hold. Insertions beyond the
// limit fail with ErrAllocation. Zero or a negative value removes the limit.
func WithMaxSize[T any](n int) Option[T] {
	return func(l *List[T]) {
		l.maxSize = max(n, 0)
	}
}

// New creates an empty list.
func New[T any](opts ...Option[T]) *List[T] {
	return new(List[T]).Init(opts...)
}

// Init resets the list to the empty state and applies opts.
//
// Nodes still attached to the list are detached without calling destroy. Use
// Teardown first to release them.
func (l *List[T]) Init(opts ...Option[T]) *List[T] {
	if l == nil {
		return nil
	}

	for n := l.head; n != nil; {
		next := n.next
		n.cleanup()
		n = next
	}

	*l = List[T]{}
	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Teardown removes every node starting from the tail, calling destroy on each
// element. It is safe to call on a nil or empty list and to call it repeatedly.
func (l *List[T]) Teardown() {
	if l == nil {
		return
	}

	for l.size > 0 {
		_ = l.Remove(l.tail)
	}

	l.head = nil
	l.tail = nil
	l.size = 0
}

// Len returns the number of nodes.
func (l *List[T]) Len() int {
	if l == nil {
		return 0
	}

	return l.size
}

// IsEmpty checks if the list is empty.
func (l *List[T]) IsEmpty() bool {
	return l.Len() == 0
}

// First returns the head node or nil.
func (l *List[T]) First() *Node[T] {
	if l == nil {
		return nil
	}

	return l.head
}

// Last returns the tail node or nil.
func (l *List[T]) Last() *Node[T] {
	if l == nil {
		return nil
	}

	return l.tail
}

// All returns an iterator for all elements in the list.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if l == nil {
			return
		}

		for n := l.head; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Backward returns an iterator for all elements in the list in reverse order.
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		if l == nil {
			return
		}

		for n := l.tail; n != nil; n = n.prev {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Nodes returns an iterator over the nodes from head to tail. The yielded node may
// be removed during iteration.
func (l *List[T]) Nodes() iter.Seq[*Node[T]] {
	return func(yield func(*Node[T]) bool) {
		if l == nil {
			return
		}

		for n := l.head; n != nil; {
			next := n.next
			if !yield(n) {
				return
			}
			n = next
		}
	}
}

// owns reports whether n is currently linked into l.
func (l *List[T]) owns(n *Node[T]) bool {
	return n != nil && n.list == l
}
