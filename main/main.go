package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/phil-mansfield/steffen"
	"github.com/phil-mansfield/steffen/io"
)

func main() {
	var (
		interpolateStr, exampleConfig string
	)
	vars := map[string]*string{
		"Interpolate":   &interpolateStr,
		"ExampleConfig": &exampleConfig,
	}

	flag.StringVar(
		&interpolateStr, "Interpolate", "",
		"Configuration file for [Interpolate] mode.",
	)
	flag.StringVar(
		&exampleConfig,
		"ExampleConfig", "", "Prints an example configuration file of the "+
			"specified type to stdout. The only accepted argument is "+
			"'Interpolate'.",
	)

	flag.Parse()

	e, err := io.ReadEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}

	logger, err := initLogger(e.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	modeName, err := getModeName(vars)
	if err != nil {
		logger.Fatal("invalid flags", zap.Error(err))
	}

	switch modeName {
	case "Interpolate":
		con, err := io.ReadInterpolateConfig(interpolateStr)
		if err != nil {
			logger.Fatal("failed to read config",
				zap.String("config", interpolateStr),
				zap.Error(err),
			)
		}
		e.Apply(con)

		if err := interpolateMain(con, logger); err != nil {
			logger.Fatal("interpolation failed", zap.Error(err))
		}
	case "ExampleConfig":
		switch exampleConfig {
		case "Interpolate":
			fmt.Println(io.ExampleInterpolateFile)
		default:
			logger.Fatal(
				"Unrecognized 'ExampleConfig' argument. The only recognized "+
					"argument is 'Interpolate'.",
				zap.String("argument", exampleConfig),
			)
		}
	default:
		panic("Impossible")
	}
}

// interpolateMain fits the samples named by con, evaluates the queries and
// writes the results.
func interpolateMain(con *io.InterpolateConfig, logger *zap.Logger) error {
	xs, ys, err := io.ReadSamples(con.SampleFile, con.XColumn, con.YColumn)
	if err != nil {
		return err
	}
	qs, err := io.ReadQueries(con)
	if err != nil {
		return err
	}
	opts, err := con.Options()
	if err != nil {
		return err
	}

	it, err := steffen.Fit(xs, ys, opts...)
	if err != nil {
		return err
	}
	lo, hi := it.Domain()
	logger.Info("fit interpolant",
		zap.Stringer("method", it.Method()),
		zap.Stringer("policy", it.Policy()),
		zap.Int("samples", len(xs)),
		zap.Float64("lo", lo),
		zap.Float64("hi", hi),
	)

	vals := make([]float64, len(qs))
	start := time.Now()
	if err := it.EvalAllParallel(qs, vals, con.Threads); err != nil {
		return err
	}
	logger.Info("evaluated queries",
		zap.Int("queries", len(qs)),
		zap.Int("threads", con.Threads),
		zap.Duration("elapsed", time.Since(start)),
	)

	if err := io.WriteResults(con.Output, qs, vals); err != nil {
		return err
	}

	if con.PlotFile != "" {
		err := io.PlotInterpolant(con.PlotFile, xs, ys, it, con.PlotPoints)
		if err != nil {
			return err
		}
		logger.Info("wrote plot", zap.String("file", con.PlotFile))
	}

	return nil
}

// initLogger builds a JSON logger writing to stderr, leaving stdout free for
// results.
func initLogger(level string) (*zap.Logger, error) {
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      false,
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}

	return config.Build()
}

func getModeName(vars map[string]*string) (string, error) {
	setNames := []string{}

	for name, varPtr := range vars {
		if *varPtr != "" {
			setNames = append(setNames, name)
		}
	}

	if len(setNames) == 0 {
		return "", fmt.Errorf("No flags have been set.")
	}

	if len(setNames) > 1 {
		return "", fmt.Errorf(
			"The following flags were set: %s, but steffen "+
				"only accepts one flag at a time.",
			strings.Join(setNames, ", "),
		)
	}

	return setNames[0], nil
}
