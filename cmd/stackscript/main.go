// Command stackscript replays a YAML script of operations against a
// fixed-capacity stackarray and logs every step.
//
// Usage:
//
//	stackscript [--script FILE] [--keep-going] [--log-level LEVEL]
//
// Without --script a built-in demo script runs.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/pavanmanishd/stackarray"
)

const demoScript = `
ops:
  - {op: append, values: [1, 2, 3]}
  - {op: insert, index: 1, values: [9]}
  - {op: replace, lo: 1, hi: 3, values: [7, 8]}
  - {op: get, index: 2}
  - {op: remove, index: 0}
  - {op: append, values: [4, 5, 6, 7, 8]}
  - {op: delete, lo: 2, hi: 6}
  - {op: set, index: 0, value: 0}
`

func main() {
	var (
		scriptPath = pflag.StringP("script", "s", "", "YAML operation script (default: built-in demo)")
		keepGoing  = pflag.BoolP("keep-going", "k", false, "continue after a failed operation")
		logLevel   = pflag.String("log-level", "info", "log level: debug, info, warn, error")
	)
	pflag.Parse()

	level, err := zapcore.ParseLevel(*logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "stackscript: %v\n", err)
		os.Exit(2)
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	logger, err := cfg.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "stackscript: %v\n", err)
		os.Exit(2)
	}
	defer func() { _ = logger.Sync() }()
	stackarray.SetLogger(logger)

	if err := run(os.Stdout, logger, *scriptPath, *keepGoing); err != nil {
		logger.Error("script failed", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}

// run loads the script at path (or the demo script), replays it, and writes
// the final contents and metrics to out.
func run(out io.Writer, logger *zap.Logger, path string, keepGoing bool) error {
	var src io.Reader = strings.NewReader(demoScript)
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return errors.Wrap(err, "open script")
		}
		defer f.Close()
		src = f
	}

	script, err := ParseScript(src)
	if err != nil {
		return err
	}
	logger.Info("running script", zap.String("path", path), zap.Int("ops", len(script.Ops)))

	r := NewRunner(logger, keepGoing)
	runErr := r.Run(script)

	arr := r.Array()
	m := arr.Metrics()
	fmt.Fprintf(out, "contents: %v\n", arr)
	fmt.Fprintf(out, "len=%d cap=%d utilization=%.1f%% failures=%d\n",
		m.Len, m.Capacity, m.Utilization*100, r.Failures())
	return runErr
}
