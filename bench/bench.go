// Package bench measures list workloads over pseudo-random integers.
//
// Workloads run concurrently, each on lists it owns; no list is shared between
// goroutines.
package bench

import (
	"cmp"
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/sync/errgroup"

	"github.com/percona/percona-dllist/config"
	"github.com/percona/percona-dllist/errors"
	"github.com/percona/percona-dllist/list"
	"github.com/percona/percona-dllist/log"
	"github.com/percona/percona-dllist/metrics"
)

// maxOrderedSize caps the quadratic ordered insertion workload.
const maxOrderedSize = 20_000

// ErrUnknownWorkload is returned for a workload name that does not exist.
const ErrUnknownWorkload = errors.Sentinel("unknown workload")

// Options controls a benchmark run.
type Options struct {
	// Size is the number of elements per workload.
	Size int
	// Seed seeds the input generator.
	Seed uint64
	// Workloads selects workloads by name. Empty means all.
	Workloads []string
}

// Result is the outcome of one workload.
type Result struct {
	Name     string
	Size     int
	Duration time.Duration
	// Sorted reports whether the resulting list was in non-decreasing order.
	Sorted bool
}

type workload struct {
	name string
	run  func(vals []int) (*list.List[int], error)
}

//nolint:gochecknoglobals
var workloads = []workload{
	{"append-sort", appendSort},
	{"insert-ordered", insertOrdered},
	{"copy", copySorted},
	{"append-list", appendList},
	{"move-list", moveList},
}

// Workloads returns the names of all workloads.
func Workloads() []string {
	names := make([]string, len(workloads))
	for i, w := range workloads {
		names[i] = w.name
	}

	return names
}

// Run executes the selected workloads concurrently.
func Run(ctx context.Context, opts Options) ([]Result, error) {
	if opts.Size <= 0 {
		opts.Size = config.DefaultBenchSize
	}

	selected, err := selectWorkloads(opts.Workloads)
	if err != nil {
		return nil, err
	}

	vals := generate(opts.Size, opts.Seed)
	results := make([]Result, len(selected))

	grp, grpCtx := errgroup.WithContext(ctx)
	for i, w := range selected {
		grp.Go(func() error {
			if err := grpCtx.Err(); err != nil {
				return errors.Wrap(err, w.name)
			}

			wctx := log.WithAttrs(grpCtx, log.Scope("bench"), log.Operation(w.name))

			startedAt := time.Now()
			l, err := w.run(vals)
			elapsed := time.Since(startedAt)
			if err != nil {
				metrics.AddOperationError(w.name, err)
				return errors.Wrap(err, w.name)
			}
			defer l.Teardown()

			results[i] = Result{
				Name:     w.name,
				Size:     l.Len(),
				Duration: elapsed,
				Sorted:   isSorted(l),
			}

			metrics.AddOperations(w.name, 1)
			metrics.AddElementsLoaded(l.Len())
			log.Ctx(wctx).Debugf("done in %s", elapsed)

			return nil
		})
	}

	if err := grp.Wait(); err != nil {
		return nil, err //nolint:wrapcheck
	}

	return results, nil
}

// Report writes a table of results to w.
func Report(w io.Writer, results []Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "WORKLOAD\tELEMENTS\tDURATION\tRATE\tSORTED")

	for _, r := range results {
		rate := 0.0
		if r.Duration > 0 {
			rate = float64(r.Size) / r.Duration.Seconds()
		}

		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%t\n",
			r.Name,
			humanize.Comma(int64(r.Size)),
			r.Duration.Round(time.Microsecond),
			humanize.SIWithDigits(rate, 1, "el/s"),
			r.Sorted)
	}

	return errors.Wrap(tw.Flush(), "flush")
}

func selectWorkloads(names []string) ([]workload, error) {
	if len(names) == 0 {
		return workloads, nil
	}

	var res []workload

	for _, name := range names {
		found := false
		for _, w := range workloads {
			if w.name == name {
				res = append(res, w)
				found = true

				break
			}
		}

		if !found {
			return nil, errors.Wrap(ErrUnknownWorkload, name)
		}
	}

	return res, nil
}

func generate(n int, seed uint64) []int {
	rnd := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)) //nolint:gosec

	vals := make([]int, n)
	for i := range vals {
		vals[i] = rnd.IntN(n)
	}

	return vals
}

func newList() *list.List[int] {
	return list.New(
		list.WithCompare(cmp.Compare[int]),
		list.WithCopy(func(v int) int { return v }))
}

func fill(l *list.List[int], vals []int) error {
	for _, v := range vals {
		if _, err := l.Append(v); err != nil {
			return err //nolint:wrapcheck
		}
	}

	return nil
}

func appendSort(vals []int) (*list.List[int], error) {
	l := newList()
	if err := fill(l, vals); err != nil {
		return nil, err
	}

	l.Sort()

	return l, nil
}

func insertOrdered(vals []int) (*list.List[int], error) {
	l := newList()
	for _, v := range vals[:min(len(vals), maxOrderedSize)] {
		if _, err := l.InsertOrdered(v); err != nil {
			return nil, err //nolint:wrapcheck
		}
	}

	return l, nil
}

func copySorted(vals []int) (*list.List[int], error) {
	src, err := appendSort(vals)
	if err != nil {
		return nil, err
	}
	defer src.Teardown()

	return src.Copy() //nolint:wrapcheck
}

func appendList(vals []int) (*list.List[int], error) {
	half := len(vals) / 2

	dst := newList()
	if err := fill(dst, vals[:half]); err != nil {
		return nil, err
	}

	src := newList()
	defer src.Teardown()

	if err := fill(src, vals[half:]); err != nil {
		return nil, err
	}

	if err := dst.AppendList(src); err != nil {
		return nil, err //nolint:wrapcheck
	}

	dst.Sort()

	return dst, nil
}

func moveList(vals []int) (*list.List[int], error) {
	half := len(vals) / 2

	dst := newList()
	if err := fill(dst, vals[:half]); err != nil {
		return nil, err
	}

	src := newList()
	if err := fill(src, vals[half:]); err != nil {
		return nil, err
	}

	if err := dst.MoveList(src); err != nil {
		return nil, err //nolint:wrapcheck
	}

	dst.Sort()

	return dst, nil
}

func isSorted(l *list.List[int]) bool {
	first := true
	prev := 0

	for v := range l.All() {
		if !first && v < prev {
			return false
		}

		first = false
		prev = v
	}

	return true
}
