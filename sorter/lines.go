package sorter

import (
	"bufio"
	"cmp"
	"io"
	"iter"
	"strconv"
	"strings"

	"github.com/percona/percona-dllist/config"
	"github.com/percona/percona-dllist/errors"
)

type line struct {
	text  string
	num   float64
	isNum bool
}

// readLines yields the lines of r without their terminators.
func readLines(r io.Reader, numeric bool) iter.Seq2[line, error] {
	return func(yield func(line, error) bool) {
		sc := bufio.NewScanner(r)
		sc.Buffer(make([]byte, 0, 64*config.KiB), config.MaxLineSize)

		for sc.Scan() {
			ln := line{text: sc.Text()}
			if numeric {
				f, err := strconv.ParseFloat(strings.TrimSpace(ln.text), 64)
				ln.num, ln.isNum = f, err == nil
			}

			if !yield(ln, nil) {
				return
			}
		}

		if err := sc.Err(); err != nil {
			yield(line{}, errors.Wrap(err, "scan"))
		}
	}
}

func compareText(a, b line) int {
	return strings.Compare(a.text, b.text)
}

// compareNumeric puts lines that are not numbers first, ordered as text.
func compareNumeric(a, b line) int {
	switch {
	case a.isNum && b.isNum:
		return cmp.Compare(a.num, b.num)
	case a.isNum:
		return 1
	case b.isNum:
		return -1
	default:
		return compareText(a, b)
	}
}
