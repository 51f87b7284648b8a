package errors_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/percona/percona-dllist/errors"
)

const errSentinel = errors.Sentinel("sentinel")

func TestWrap(t *testing.T) {
	t.Parallel()

	errBase := errors.New("base")

	t.Run("nil", func(t *testing.T) {
		t.Parallel()

		require.NoError(t, errors.Wrap(nil, "op"))
		require.NoError(t, errors.Wrapf(nil, "op %d", 1))
	})

	t.Run("message", func(t *testing.T) {
		t.Parallel()

		err := errors.Wrapf(errors.Wrap(errBase, "inner"), "outer %d", 2)
		assert.Equal(t, "outer 2: inner: base", err.Error())
		assert.ErrorIs(t, err, errBase)
	})

	t.Run("unwrap", func(t *testing.T) {
		t.Parallel()

		err := errors.Wrap(errBase, "op")
		assert.Equal(t, errBase, errors.Unwrap(err))
		assert.Nil(t, errors.Unwrap(errBase))
	})
}

func TestSentinel(t *testing.T) {
	t.Parallel()

	err := errors.Wrap(errors.Wrap(errSentinel, "inner"), "outer")
	assert.Equal(t, "outer: inner: sentinel", err.Error())
	assert.True(t, errors.Is(err, errSentinel))
	assert.False(t, errors.Is(err, errors.Sentinel("other")))
}
