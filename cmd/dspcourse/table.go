package main

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"text/tabwriter"
)

// table writes aligned columns with a header and a dashed separator row.
// The first write error is kept and reported by flush.
type table struct {
	tw  *tabwriter.Writer
	err error
}

func newTable(w io.Writer, header ...string) *table {
	t := &table{tw: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}

	dashes := make([]string, len(header))
	for i, h := range header {
		dashes[i] = strings.Repeat("-", len(h))
	}

	t.row(header...)
	t.row(dashes...)

	return t
}

func (t *table) row(cells ...string) {
	if t.err != nil {
		return
	}

	_, t.err = fmt.Fprintln(t.tw, strings.Join(cells, "\t"))
}

func (t *table) flush() error {
	if t.err != nil {
		return fmt.Errorf("write table: %w", t.err)
	}

	if err := t.tw.Flush(); err != nil {
		return fmt.Errorf("flush table: %w", err)
	}

	return nil
}

// num formats v with prec digits after the point. Values that round to
// zero print without a sign.
func num(v float64, prec int) string {
	if math.Abs(v) < 0.5*math.Pow10(-prec) {
		v = 0
	}

	return strconv.FormatFloat(v, 'f', prec, 64)
}
