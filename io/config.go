package io

import (
	"fmt"

	"gopkg.in/gcfg.v1"

	"github.com/phil-mansfield/steffen"
)

const (
	ExampleInterpolateFile = `[Interpolate]

#######################
# Required Parameters #
#######################

# Text table containing the sample points. Columns are separated by
# whitespace. The x column must be strictly increasing.
SampleFile = path/to/samples.txt

# Text table containing the query points. You do not need to specify this if
# you give the queries inline with Query.
QueryFile = path/to/queries.txt

#######################
# Optional Parameters #
#######################

# Zero-indexed columns of SampleFile holding the x and y values and of
# QueryFile holding the query values.
XColumn = 0
YColumn = 1
QueryColumn = 0

# Inline query points. Query may be repeated. These are evaluated after the
# points in QueryFile.
# Query = 1.5
# Query = 2.25

# File which results will be written to as two columns, query and value. If
# not set, results are written to stdout.
# Output = path/to/output.txt

# Interpolation method. One of [ steffen | cubic | linear ]. Only steffen is
# guaranteed not to overshoot between monotonic points.
Method = steffen

# What to do with queries outside the range of the sample x values. One of
# [ strict | clamp | extrapolate ]. strict stops with an error.
Policy = strict

# Number of goroutines used to evaluate queries.
Threads = 1

# If set, a matplotlib figure of the samples and the interpolant sampled at
# PlotPoints points is written to this file. Requires python and matplotlib.
# PlotFile = path/to/plot.png
PlotPoints = 200
`
)

// InterpolateConfig holds the parameters of [Interpolate] mode.
type InterpolateConfig struct {
	// Required
	SampleFile string

	// Optional
	QueryFile                     string
	XColumn, YColumn, QueryColumn int
	Query                         []float64
	Output                        string
	Method, Policy                string
	Threads                       int
	PlotFile                      string
	PlotPoints                    int
}

type InterpolateWrapper struct {
	Interpolate InterpolateConfig
}

// DefaultInterpolateWrapper returns a wrapper with every optional value set to
// its default.
func DefaultInterpolateWrapper() *InterpolateWrapper {
	con := InterpolateConfig{}
	con.YColumn = 1
	con.Method = "steffen"
	con.Policy = "strict"
	con.Threads = 1
	con.PlotPoints = 200
	return &InterpolateWrapper{con}
}

// ReadInterpolateConfig reads and validates an [Interpolate] config file.
func ReadInterpolateConfig(fname string) (*InterpolateConfig, error) {
	wrap := DefaultInterpolateWrapper()
	if err := gcfg.ReadFileInto(wrap, fname); err != nil {
		return nil, err
	}

	con := &wrap.Interpolate
	if err := con.CheckInit(); err != nil {
		return nil, err
	}
	return con, nil
}

func (con *InterpolateConfig) ValidSampleFile() bool { return con.SampleFile != "" }
func (con *InterpolateConfig) ValidQueries() bool {
	return con.QueryFile != "" || len(con.Query) > 0
}
func (con *InterpolateConfig) ValidColumns() bool {
	return con.XColumn >= 0 && con.YColumn >= 0 && con.QueryColumn >= 0 &&
		con.XColumn != con.YColumn
}
func (con *InterpolateConfig) ValidThreads() bool    { return con.Threads > 0 }
func (con *InterpolateConfig) ValidPlotPoints() bool { return con.PlotPoints >= 2 }

// CheckInit returns an error describing the first invalid value in con.
func (con *InterpolateConfig) CheckInit() error {
	if !con.ValidSampleFile() {
		return fmt.Errorf("Invalid/non-existent 'SampleFile' value.")
	} else if !con.ValidQueries() {
		return fmt.Errorf("Must set either 'QueryFile' or at least one 'Query'.")
	} else if !con.ValidColumns() {
		return fmt.Errorf(
			"Invalid columns: XColumn = %d, YColumn = %d, QueryColumn = %d.",
			con.XColumn, con.YColumn, con.QueryColumn,
		)
	} else if !con.ValidThreads() {
		return fmt.Errorf("'Threads' must be positive, but is %d.", con.Threads)
	} else if !con.ValidPlotPoints() {
		return fmt.Errorf(
			"'PlotPoints' must be at least 2, but is %d.", con.PlotPoints,
		)
	}

	if _, err := con.Options(); err != nil {
		return err
	}
	return nil
}

// Options converts the Method and Policy values into evaluation options.
func (con *InterpolateConfig) Options() ([]steffen.Option, error) {
	method, err := steffen.ParseMethod(con.Method)
	if err != nil {
		return nil, fmt.Errorf("Invalid 'Method' value: %w", err)
	}
	policy, err := steffen.ParsePolicy(con.Policy)
	if err != nil {
		return nil, fmt.Errorf("Invalid 'Policy' value: %w", err)
	}
	return []steffen.Option{
		steffen.WithMethod(method), steffen.WithPolicy(policy),
	}, nil
}
