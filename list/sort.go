package list

// Sort sorts the list with a stable bottom-up merge sort. It relinks nodes in
// place: node handles stay valid and no node is allocated. Sort is a no-op when
// the list has no compare capability or fewer than two nodes.
func (l *List[T]) Sort() {
	if l == nil || l.compare == nil || l.size <= 1 {
		return
	}

	for runLen := 1; ; runLen <<= 1 {
		merges := 0
		left := l.head

		var tail *Node[T]
		l.head = nil

		for left != nil {
			merges++

			right := left
			leftLen := 0
			for right != nil && leftLen < runLen {
				leftLen++
				right = right.next
			}

			rightLen := runLen
			for leftLen > 0 || (right != nil && rightLen > 0) {
				var next *Node[T]

				switch {
				case leftLen == 0:
					next, right = right, right.next
					rightLen--
				case right == nil || rightLen == 0:
					next, left = left, left.next
					leftLen--
				case l.compare(left.value, right.value) <= 0:
					// equal elements keep the left run first
					next, left = left, left.next
					leftLen--
				default:
					next, right = right, right.next
					rightLen--
				}

				if tail == nil {
					l.head = next
				} else {
					tail.next = next
				}

				next.prev = tail
				tail = next
			}

			left = right
		}

		tail.next = nil

		if merges <= 1 {
			l.tail = tail
			return
		}
	}
}
