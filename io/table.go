package io

import (
	"bufio"
	"fmt"
	"os"

	"github.com/phil-mansfield/table"
)

// ReadSamples reads the sample abscissas and ordinates from the given columns
// of a text table.
func ReadSamples(file string, xCol, yCol int) (xs, ys []float64, err error) {
	cols, err := table.ReadTable(file, []int{xCol, yCol}, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("reading samples from %s: %w", file, err)
	}
	return cols[0], cols[1], nil
}

// ReadColumn reads a single column of a text table.
func ReadColumn(file string, col int) ([]float64, error) {
	cols, err := table.ReadTable(file, []int{col}, nil)
	if err != nil {
		return nil, fmt.Errorf("reading column %d of %s: %w", col, file, err)
	}
	return cols[0], nil
}

// ReadQueries returns the query points named by con: the QueryColumn of
// QueryFile followed by any inline Query values.
func ReadQueries(con *InterpolateConfig) ([]float64, error) {
	qs := []float64{}
	if con.QueryFile != "" {
		col, err := ReadColumn(con.QueryFile, con.QueryColumn)
		if err != nil {
			return nil, err
		}
		qs = append(qs, col...)
	}
	return append(qs, con.Query...), nil
}

// WriteResults writes queries and their interpolated values as two
// whitespace-separated columns to fname. If fname is empty, the results are
// written to stdout.
func WriteResults(fname string, queries, vals []float64) error {
	if len(queries) != len(vals) {
		return fmt.Errorf(
			"%d queries but %d values given to WriteResults()",
			len(queries), len(vals),
		)
	}

	f := os.Stdout
	if fname != "" {
		var err error
		f, err = os.Create(fname)
		if err != nil {
			return err
		}
		defer f.Close()
	}

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "# %22s %24s\n", "x", "y")
	for i := range queries {
		fmt.Fprintf(w, "%24.16g %24.16g\n", queries[i], vals[i])
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if fname != "" {
		return f.Sync()
	}
	return nil
}
