package list //nolint:testpackage

import (
	"cmp"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type box struct {
	v int
}

func boxes(opts ...Option[*box]) (*List[*box], []*box) {
	l := New(opts...)
	var elems []*box

	for i := 1; i <= 3; i++ {
		b := &box{v: i}
		elems = append(elems, b)
		if _, err := l.Append(b); err != nil {
			panic(err)
		}
	}

	return l, elems
}

func boxValues(l *List[*box]) []int {
	var res []int
	for b := range l.All() {
		res = append(res, b.v)
	}

	return res
}

func cloneBox(b *box) *box {
	return &box{v: b.v}
}

func TestCopy(t *testing.T) {
	t.Parallel()

	t.Run("shares without copy capability", func(t *testing.T) {
		t.Parallel()

		src, elems := boxes()

		dup, err := src.Copy()
		require.NoError(t, err)
		requireLinked(t, dup)
		assert.Equal(t, 3, dup.Len())

		i := 0
		for b := range dup.All() {
			assert.Same(t, elems[i], b)
			i++
		}

		require.NoError(t, dup.Remove(dup.First().Next()))
		requireLinked(t, dup)
		requireLinked(t, src)
		assert.Equal(t, []int{1, 2, 3}, boxValues(src))
	})

	t.Run("deep copy", func(t *testing.T) {
		t.Parallel()

		src, elems := boxes(WithCopy(cloneBox))

		dup, err := src.Copy()
		require.NoError(t, err)
		requireLinked(t, dup)
		assert.Equal(t, []int{1, 2, 3}, boxValues(dup))

		i := 0
		for b := range dup.All() {
			assert.NotSame(t, elems[i], b)
			i++
		}

		elems[0].v = 100
		assert.Equal(t, 1, dup.First().Value().v)
	})

	t.Run("keeps capabilities", func(t *testing.T) {
		t.Parallel()

		src := ints(3, 1, 2)
		dup, err := src.Copy()
		require.NoError(t, err)

		dup.Sort()
		assert.Equal(t, []int{1, 2, 3}, slices.Collect(dup.All()))
		assert.Equal(t, []int{3, 1, 2}, slices.Collect(src.All()))
	})

	t.Run("refuses to alias destroyed elements", func(t *testing.T) {
		t.Parallel()

		src, _ := boxes(WithDestroy(func(*box) {}))

		dup, err := src.Copy()
		require.ErrorIs(t, err, ErrUndefinedCapability)
		assert.Nil(t, dup)

		dup, err = src.Copy(WithDestroy[*box](nil))
		require.ErrorIs(t, err, ErrUndefinedCapability)
		assert.Nil(t, dup)
	})

	t.Run("empty source", func(t *testing.T) {
		t.Parallel()

		dup, err := ints().Copy()
		require.NoError(t, err)
		require.NotNil(t, dup)
		assert.Equal(t, 0, dup.Len())
	})

	t.Run("failure tears down", func(t *testing.T) {
		t.Parallel()

		var destroyed []int
		src, _ := boxes(
			WithCopy(cloneBox),
			WithDestroy(func(b *box) { destroyed = append(destroyed, b.v) }))

		dup, err := src.Copy(WithMaxSize[*box](2))
		require.ErrorIs(t, err, ErrAllocation)
		assert.Nil(t, dup)

		assert.ElementsMatch(t, []int{1, 2, 3}, destroyed)
		requireLinked(t, src)
		assert.Equal(t, []int{1, 2, 3}, boxValues(src))
	})

	t.Run("nil list", func(t *testing.T) {
		t.Parallel()

		var l *List[int]
		_, err := l.Copy()
		require.ErrorIs(t, err, ErrInvalidArgument)
		assert.Nil(t, l.Share())
	})
}

func TestShare(t *testing.T) {
	t.Parallel()

	destroyed := 0
	src, elems := boxes(
		WithDestroy(func(*box) { destroyed++ }),
		WithCompare(func(a, b *box) int { return cmp.Compare(a.v, b.v) }))

	shared := src.Share()
	requireLinked(t, shared)
	assert.Same(t, elems[2], shared.Last().Value())

	shared.Teardown()
	assert.Equal(t, 0, destroyed)

	_, err := shared.InsertOrdered(&box{v: 0})
	require.NoError(t, err)

	src.Teardown()
	assert.Equal(t, 3, destroyed)
}

func TestAppendList(t *testing.T) {
	t.Parallel()

	t.Run("order and independence", func(t *testing.T) {
		t.Parallel()

		dst := ints(3, 4)
		src := ints(1, 2)

		require.NoError(t, dst.AppendList(src))
		requireLinked(t, dst)
		assert.Equal(t, []int{3, 4, 1, 2}, slices.Collect(dst.All()))

		require.NoError(t, src.Remove(src.First()))
		_, err := src.Append(9)
		require.NoError(t, err)

		requireLinked(t, dst)
		assert.Equal(t, []int{3, 4, 1, 2}, slices.Collect(dst.All()))
	})

	t.Run("uses destination copy", func(t *testing.T) {
		t.Parallel()

		copied := 0
		dst := New(WithCopy(func(b *box) *box {
			copied++
			return cloneBox(b)
		}))
		src, elems := boxes()

		require.NoError(t, dst.AppendList(src))
		assert.Equal(t, 3, copied)
		assert.NotSame(t, elems[0], dst.First().Value())
	})

	t.Run("self", func(t *testing.T) {
		t.Parallel()

		l := ints(1, 2)
		require.NoError(t, l.AppendList(l))
		requireLinked(t, l)
		assert.Equal(t, []int{1, 2, 1, 2}, slices.Collect(l.All()))
	})

	t.Run("rolls back deep copies", func(t *testing.T) {
		t.Parallel()

		var destroyed []int
		dst := New(
			WithCopy(cloneBox),
			WithDestroy(func(b *box) { destroyed = append(destroyed, b.v) }),
			WithMaxSize[*box](4))
		_, err := dst.Append(&box{v: 10})
		require.NoError(t, err)
		_, err = dst.Append(&box{v: 20})
		require.NoError(t, err)

		src, _ := boxes()

		err = dst.AppendList(src)
		require.ErrorIs(t, err, ErrAllocation)

		requireLinked(t, dst)
		assert.Equal(t, []int{10, 20}, boxValues(dst))
		assert.ElementsMatch(t, []int{1, 2, 3}, destroyed)
		assert.Equal(t, []int{1, 2, 3}, boxValues(src))
	})

	t.Run("rolls back shared", func(t *testing.T) {
		t.Parallel()

		dst := New(WithMaxSize[int](3))
		_, err := dst.Append(0)
		require.NoError(t, err)

		err = dst.AppendList(ints(1, 2, 3))
		require.ErrorIs(t, err, ErrAllocation)

		requireLinked(t, dst)
		assert.Equal(t, []int{0}, slices.Collect(dst.All()))
	})

	t.Run("refuses to alias destroyed elements", func(t *testing.T) {
		t.Parallel()

		dst := New(WithDestroy(func(int) {}))
		err := dst.AppendList(ints(1))
		require.ErrorIs(t, err, ErrUndefinedCapability)
		assert.Equal(t, 0, dst.Len())
	})

	t.Run("refuses to alias a destroying source", func(t *testing.T) {
		t.Parallel()

		var destroyed []int
		src, _ := boxes(WithDestroy(func(b *box) { destroyed = append(destroyed, b.v) }))
		dst := New[*box]()

		err := dst.AppendList(src)
		require.ErrorIs(t, err, ErrUndefinedCapability)
		assert.Equal(t, 0, dst.Len())
		requireLinked(t, src)

		src.Teardown()
		assert.Equal(t, []int{3, 2, 1}, destroyed)
		assert.Nil(t, dst.First())
	})

	t.Run("copies from a destroying source", func(t *testing.T) {
		t.Parallel()

		src, elems := boxes(WithDestroy(func(*box) {}))
		dst := New(WithCopy(cloneBox))

		require.NoError(t, dst.AppendList(src))
		assert.Equal(t, []int{1, 2, 3}, boxValues(dst))
		assert.NotSame(t, elems[0], dst.First().Value())
	})

	t.Run("nil", func(t *testing.T) {
		t.Parallel()

		require.ErrorIs(t, ints().AppendList(nil), ErrInvalidArgument)

		var l *List[int]
		require.ErrorIs(t, l.AppendList(ints()), ErrInvalidArgument)
	})
}

func TestMoveList(t *testing.T) {
	t.Parallel()

	t.Run("splice", func(t *testing.T) {
		t.Parallel()

		dst := ints(1, 2)
		src := ints(3, 4)
		moved := src.First()

		require.NoError(t, dst.MoveList(src))
		requireLinked(t, dst)
		requireLinked(t, src)
		assert.Equal(t, []int{1, 2, 3, 4}, slices.Collect(dst.All()))
		assert.Equal(t, 0, src.Len())

		require.NoError(t, dst.Remove(moved))
		requireLinked(t, dst)
	})

	t.Run("into empty", func(t *testing.T) {
		t.Parallel()

		dst := ints()
		require.NoError(t, dst.MoveList(ints(5, 6)))
		requireLinked(t, dst)
		assert.Equal(t, []int{5, 6}, slices.Collect(dst.All()))
	})

	t.Run("limit", func(t *testing.T) {
		t.Parallel()

		dst := New(WithMaxSize[int](2))
		_, _ = dst.Append(1)
		src := ints(2, 3)

		require.ErrorIs(t, dst.MoveList(src), ErrAllocation)
		requireLinked(t, dst)
		requireLinked(t, src)
		assert.Equal(t, 2, src.Len())
	})

	t.Run("hands over destroy", func(t *testing.T) {
		t.Parallel()

		var destroyed []int
		free := func(b *box) { destroyed = append(destroyed, b.v) }

		src, _ := boxes(WithDestroy(free))
		dst := New(WithDestroy(free))

		require.NoError(t, dst.MoveList(src))
		src.Teardown()
		assert.Empty(t, destroyed)

		dst.Teardown()
		assert.Equal(t, []int{3, 2, 1}, destroyed)
	})

	t.Run("refuses to drop destroy", func(t *testing.T) {
		t.Parallel()

		src, _ := boxes(WithDestroy(func(*box) {}))
		dst := New[*box]()

		require.ErrorIs(t, dst.MoveList(src), ErrUndefinedCapability)
		requireLinked(t, src)
		assert.Equal(t, []int{1, 2, 3}, boxValues(src))
		assert.Equal(t, 0, dst.Len())
	})

	t.Run("invalid", func(t *testing.T) {
		t.Parallel()

		l := ints(1)
		require.ErrorIs(t, l.MoveList(l), ErrInvalidArgument)
		require.ErrorIs(t, l.MoveList(nil), ErrInvalidArgument)
	})
}
