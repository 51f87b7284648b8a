/*
Package doc adapts BSON documents to the list package.

Documents are ordered by the value found at a field path. Values of different BSON
types are ordered by type first:

	missing < null < numbers < strings < booleans < dates < everything else

Numbers of any width compare numerically. Values of other types compare by their
canonical Extended JSON text.
*/
package doc

import (
	"bytes"
	"cmp"
	"math"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/percona/percona-dllist/list"
	"github.com/percona/percona-dllist/sel"
)

const (
	rankMissing = iota
	rankNull
	rankNumber
	rankString
	rankBool
	rankDate
	rankOther
)

// Compare returns a compare capability ordering documents by the value at path.
func Compare(path sel.Path) list.CompareFunc[bson.D] {
	return func(a, b bson.D) int {
		va, okA := sel.Lookup(a, path)
		vb, okB := sel.Lookup(b, path)

		return compareValues(va, okA, vb, okB)
	}
}

// CompareValues orders two standalone values the way Compare orders fields.
func CompareValues(a, b any) int {
	return compareValues(a, true, b, true)
}

func compareValues(a any, okA bool, b any, okB bool) int {
	ra, rb := rank(a, okA), rank(b, okB)
	if ra != rb {
		return cmp.Compare(ra, rb)
	}

	switch ra {
	case rankMissing, rankNull:
		return 0
	case rankNumber:
		return compareNumbers(a, b)
	case rankString:
		return cmp.Compare(a.(string), b.(string)) //nolint:forcetypeassert
	case rankBool:
		return compareBools(a.(bool), b.(bool)) //nolint:forcetypeassert
	case rankDate:
		return cmp.Compare(a.(bson.DateTime), b.(bson.DateTime)) //nolint:forcetypeassert
	}

	return bytes.Compare(extJSON(a), extJSON(b))
}

func rank(v any, ok bool) int {
	if !ok {
		return rankMissing
	}

	switch v.(type) {
	case nil, bson.Null:
		return rankNull
	case int, int32, int64, float64:
		return rankNumber
	case string:
		return rankString
	case bool:
		return rankBool
	case bson.DateTime:
		return rankDate
	}

	return rankOther
}

func compareNumbers(a, b any) int {
	ia, intA := asInt(a)
	ib, intB := asInt(b)

	switch {
	case intA && intB:
		return cmp.Compare(ia, ib)
	case intA:
		return compareIntFloat(ia, asFloat(b))
	case intB:
		return -compareIntFloat(ib, asFloat(a))
	}

	return cmp.Compare(asFloat(a), asFloat(b))
}

// compareIntFloat compares without converting i to float64, which would round
// integers above 2^53. NaN orders before every integer.
func compareIntFloat(i int64, f float64) int {
	switch {
	case math.IsNaN(f):
		return 1
	case f < math.MinInt64:
		return 1
	case f >= math.MaxInt64:
		return -1
	}

	whole := math.Trunc(f)
	if c := cmp.Compare(i, int64(whole)); c != 0 {
		return c
	}

	return cmp.Compare(0, f-whole)
}

func asInt(v any) (int64, bool) {
	switch v := v.(type) {
	case int:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	}

	return 0, false
}

func asFloat(v any) float64 {
	f, ok := v.(float64)
	if !ok {
		return math.NaN()
	}

	return f
}

func compareBools(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	default:
		return 1
	}
}

func extJSON(v any) []byte {
	data, err := bson.MarshalExtJSON(bson.D{{Key: "v", Value: v}}, true, false)
	if err != nil {
		return nil
	}

	return data
}

// Clone returns a deep copy of d. Nested documents, arrays and binary payloads are
// duplicated; scalar values are immutable and copied by value.
func Clone(d bson.D) bson.D {
	if d == nil {
		return nil
	}

	return cloneValue(d).(bson.D) //nolint:forcetypeassert
}

func cloneValue(v any) any {
	switch v := v.(type) {
	case bson.D:
		res := make(bson.D, len(v))
		for i, e := range v {
			res[i] = bson.E{Key: e.Key, Value: cloneValue(e.Value)}
		}

		return res
	case bson.M:
		res := make(bson.M, len(v))
		for k, val := range v {
			res[k] = cloneValue(val)
		}

		return res
	case bson.A:
		res := make(bson.A, len(v))
		for i, val := range v {
			res[i] = cloneValue(val)
		}

		return res
	case []byte:
		return bytes.Clone(v)
	case bson.Binary:
		return bson.Binary{Subtype: v.Subtype, Data: bytes.Clone(v.Data)}
	}

	return v
}
