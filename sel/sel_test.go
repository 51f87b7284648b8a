package sel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/percona/percona-dllist/sel"
)

func TestParsePath(t *testing.T) {
	t.Parallel()

	path, err := sel.ParsePath("a.b.0")
	require.NoError(t, err)
	assert.Equal(t, sel.Path{"a", "b", "0"}, path)
	assert.Equal(t, "a.b.0", path.String())

	for _, s := range []string{"", ".", "a.", ".a", "a..b"} {
		_, err := sel.ParsePath(s)
		require.ErrorIs(t, err, sel.ErrInvalidPath, "path %q", s)
	}
}

func TestLookup(t *testing.T) {
	t.Parallel()

	doc := bson.D{
		{"name", "x"},
		{"nested", bson.D{{"n", int32(7)}}},
		{"m", bson.M{"k": "v"}},
		{"arr", bson.A{"zero", bson.D{{"deep", true}}}},
		{"null", nil},
	}

	cases := map[string]struct {
		value any
		found bool
	}{
		"name":        {"x", true},
		"nested.n":    {int32(7), true},
		"m.k":         {"v", true},
		"arr.0":       {"zero", true},
		"arr.1.deep":  {true, true},
		"null":        {nil, true},
		"arr.2":       {nil, false},
		"arr.x":       {nil, false},
		"name.x":      {nil, false},
		"missing":     {nil, false},
		"nested.n.no": {nil, false},
	}

	for s, want := range cases {
		path, err := sel.ParsePath(s)
		require.NoError(t, err)

		got, ok := sel.Lookup(doc, path)
		assert.Equal(t, want.found, ok, s)
		assert.Equal(t, want.value, got, s)
	}

	_, ok := sel.Lookup(doc, nil)
	assert.False(t, ok)
}
