package doc

import (
	"bufio"
	"bytes"
	"io"
	"iter"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/percona/percona-dllist/config"
	"github.com/percona/percona-dllist/errors"
)

// ReadAll returns an iterator over the Extended JSON documents in r, one per line.
// Blank lines are skipped. Iteration stops after the first error.
func ReadAll(r io.Reader) iter.Seq2[bson.D, error] {
	return func(yield func(bson.D, error) bool) {
		sc := bufio.NewScanner(r)
		sc.Buffer(make([]byte, 0, 64*config.KiB), config.MaxLineSize)

		line := 0
		for sc.Scan() {
			line++

			data := bytes.TrimSpace(sc.Bytes())
			if len(data) == 0 {
				continue
			}

			var d bson.D
			if err := bson.UnmarshalExtJSON(data, false, &d); err != nil {
				yield(nil, errors.Wrapf(err, "line %d", line))
				return
			}

			if !yield(d, nil) {
				return
			}
		}

		if err := sc.Err(); err != nil {
			yield(nil, errors.Wrapf(err, "read after line %d", line))
		}
	}
}

// WriteLine writes d as a single line of relaxed Extended JSON.
func WriteLine(w io.Writer, d bson.D) error {
	data, err := bson.MarshalExtJSON(d, false, false)
	if err != nil {
		return errors.Wrap(err, "marshal")
	}

	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return errors.Wrap(err, "write")
	}

	return nil
}
