package sel

import (
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/percona/percona-dllist/errors"
)

// ErrInvalidPath is returned for an empty path or a path with an empty segment.
const ErrInvalidPath = errors.Sentinel("invalid field path")

// Path is a dotted field path. Numeric segments index arrays.
type Path []string

// ParsePath splits s on dots.
func ParsePath(s string) (Path, error) {
	if s == "" {
		return nil, errors.Wrap(ErrInvalidPath, "empty")
	}

	path := Path(strings.Split(s, "."))
	for i, seg := range path {
		if seg == "" {
			return nil, errors.Wrapf(ErrInvalidPath, "%q: empty segment %d", s, i)
		}
	}

	return path, nil
}

func (p Path) String() string {
	return strings.Join(p, ".")
}

// Lookup returns the value at path inside doc. Documents may be bson.D, bson.M or
// map[string]any; arrays may be bson.A or []any.
func Lookup(doc any, path Path) (any, bool) {
	if len(path) == 0 {
		return nil, false
	}

	curr := doc
	for _, seg := range path {
		next, ok := step(curr, seg)
		if !ok {
			return nil, false
		}

		curr = next
	}

	return curr, true
}

func step(v any, seg string) (any, bool) {
	switch v := v.(type) {
	case bson.D:
		for _, e := range v {
			if e.Key == seg {
				return e.Value, true
			}
		}
	case bson.M:
		val, ok := v[seg]
		return val, ok
	case map[string]any:
		val, ok := v[seg]
		return val, ok
	case bson.A:
		return index([]any(v), seg)
	case []any:
		return index(v, seg)
	}

	return nil, false
}

func index(arr []any, seg string) (any, bool) {
	i, err := strconv.Atoi(seg)
	if err != nil || i < 0 || i >= len(arr) {
		return nil, false
	}

	return arr[i], true
}
