// Package sorter sorts text lines or Extended JSON documents with a stable list sort.
package sorter

import (
	"context"
	"io"
	"iter"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/percona/percona-dllist/doc"
	"github.com/percona/percona-dllist/errors"
	"github.com/percona/percona-dllist/list"
	"github.com/percona/percona-dllist/log"
	"github.com/percona/percona-dllist/metrics"
	"github.com/percona/percona-dllist/sel"
)

// cancelCheckInterval is how many elements are loaded between context checks.
const cancelCheckInterval = 1024

// Options controls a sort run.
type Options struct {
	// Key is a dotted field path. When set, input lines are Extended JSON documents
	// ordered by the value at Key. Otherwise lines are ordered as text.
	Key string
	// Numeric orders text lines by their numeric value.
	Numeric bool
	// Ordered builds the list with ordered insertion instead of append and sort.
	Ordered bool
	// Reverse writes the result tail to head.
	Reverse bool
	// Unique drops elements equal to their predecessor.
	Unique bool
	// MaxSize limits the number of elements held. Zero means unlimited.
	MaxSize int
}

// Stats describes a finished run.
type Stats struct {
	Read    int
	Dropped int
	Written int

	SortDuration time.Duration
}

// Run reads elements from in, sorts them and writes them to out.
func Run(ctx context.Context, in io.Reader, out io.Writer, opts Options) (Stats, error) {
	ctx = log.WithAttrs(ctx, log.Scope("sorter"), log.Key(opts.Key))

	if opts.Key != "" {
		path, err := sel.ParsePath(opts.Key)
		if err != nil {
			return Stats{}, errors.Wrap(err, "key")
		}

		write := func(d bson.D) error { return doc.WriteLine(out, d) }

		return run(ctx, doc.ReadAll(in), write, doc.Compare(path), opts)
	}

	compare := compareText
	if opts.Numeric {
		compare = compareNumeric
	}

	write := func(ln line) error {
		_, err := io.WriteString(out, ln.text+"\n")
		return err //nolint:wrapcheck
	}

	return run(ctx, readLines(in, opts.Numeric), write, compare, opts)
}

func run[T any](
	ctx context.Context,
	elems iter.Seq2[T, error],
	write func(T) error,
	compare list.CompareFunc[T],
	opts Options,
) (Stats, error) {
	var stats Stats

	l := list.New(list.WithCompare(compare), list.WithMaxSize[T](opts.MaxSize))
	defer l.Teardown()

	op := "append"
	if opts.Ordered {
		op = "insert_ordered"
	}

	for v, err := range elems {
		if err != nil {
			return stats, errors.Wrap(err, "read")
		}

		if stats.Read%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return stats, errors.Wrap(err, "load")
			}
		}

		if opts.Ordered {
			_, err = l.InsertOrdered(v)
		} else {
			_, err = l.Append(v)
		}

		if err != nil {
			metrics.AddOperationError(op, err)

			if errors.Is(err, list.ErrAllocation) {
				return stats, errors.Wrapf(err, "input exceeds the limit of %d elements", opts.MaxSize)
			}

			return stats, errors.Wrapf(err, "load element %d", stats.Read+1)
		}

		stats.Read++
	}

	metrics.AddOperations(op, stats.Read)
	metrics.AddElementsLoaded(stats.Read)
	metrics.SetListSize(l.Len())

	lg := log.Ctx(log.WithAttrs(ctx, log.Operation(op), log.Size(stats.Read)))
	lg.Debug("loaded")

	if !opts.Ordered {
		startedAt := time.Now()
		l.Sort()
		stats.SortDuration = time.Since(startedAt)

		metrics.AddOperations("sort", 1)
		metrics.SetSortDuration(stats.SortDuration)
		lg.Debugf("sorted in %s", stats.SortDuration)
	}

	if opts.Unique {
		stats.Dropped = dropDuplicates(l, compare)
		metrics.AddOperations("remove", stats.Dropped)
	}

	seq := l.All()
	if opts.Reverse {
		seq = l.Backward()
	}

	for v := range seq {
		if err := write(v); err != nil {
			return stats, errors.Wrap(err, "write")
		}

		stats.Written++
	}

	metrics.AddElementsWritten(stats.Written)
	lg.Infof("read %d, dropped %d, written %d", stats.Read, stats.Dropped, stats.Written)

	return stats, nil
}

// dropDuplicates removes every node equal to its predecessor in a sorted list.
func dropDuplicates[T any](l *list.List[T], compare list.CompareFunc[T]) int {
	dropped := 0

	var prev *list.Node[T]
	for n := range l.Nodes() {
		if prev != nil && compare(prev.Value(), n.Value()) == 0 {
			_ = l.Remove(n)
			dropped++

			continue
		}

		prev = n
	}

	return dropped
}
