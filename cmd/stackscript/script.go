package main

import (
	"io"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/pavanmanishd/stackarray"
)

// scriptArray is the container scripts operate on: 8 int64 slots.
type scriptArray = stackarray.Array[int64, [64]byte]

// Op is a single scripted operation. Which fields are used depends on Op.
type Op struct {
	Op     string  `yaml:"op"`
	Index  int     `yaml:"index,omitempty"`
	Lo     int     `yaml:"lo,omitempty"`
	Hi     int     `yaml:"hi,omitempty"`
	N      int     `yaml:"n,omitempty"`
	Value  int64   `yaml:"value,omitempty"`
	Values []int64 `yaml:"values,omitempty"`
}

// Script is an ordered list of operations.
type Script struct {
	Ops []Op `yaml:"ops"`
}

var knownOps = map[string]bool{
	"append":  true,
	"insert":  true,
	"replace": true,
	"set":     true,
	"get":     true,
	"remove":  true,
	"delete":  true,
	"clear":   true,
	"reserve": true,
}

// ParseScript decodes a YAML script and rejects unknown keys and operations.
// An empty document is an empty script.
func ParseScript(r io.Reader) (*Script, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Script
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Wrap(err, "parse script")
	}
	for i, op := range s.Ops {
		if !knownOps[op.Op] {
			return nil, errors.Newf("op %d: unknown operation %q", i, op.Op)
		}
	}
	return &s, nil
}

// Runner replays scripts against a single array.
type Runner struct {
	log       *zap.Logger
	keepGoing bool
	arr       scriptArray
	failures  int
}

// NewRunner returns a Runner starting from an empty array.
func NewRunner(log *zap.Logger, keepGoing bool) *Runner {
	return &Runner{log: log, keepGoing: keepGoing}
}

// Array returns the array the runner operates on.
func (r *Runner) Array() *scriptArray {
	return &r.arr
}

// Failures returns the number of operations that failed so far.
func (r *Runner) Failures() int {
	return r.failures
}

// Run executes every operation of s in order. Unless the runner keeps going,
// it stops at the first failed operation and returns its error.
func (r *Runner) Run(s *Script) error {
	for i, op := range s.Ops {
		result, err := r.apply(op)
		if err != nil {
			r.failures++
			r.log.Warn("operation failed",
				zap.Int("step", i),
				zap.String("op", op.Op),
				zap.Error(err))
			if !r.keepGoing {
				return errors.Wrapf(err, "op %d (%s)", i, op.Op)
			}
			continue
		}

		fields := []zap.Field{
			zap.Int("step", i),
			zap.String("op", op.Op),
			zap.Int("len", r.arr.Len()),
			zap.String("contents", r.arr.String()),
		}
		if result != nil {
			fields = append(fields, zap.Int64("result", *result))
		}
		r.log.Info("operation applied", fields...)
	}
	return nil
}

// apply runs op through the checked variants. get and remove return the
// element they read.
func (r *Runner) apply(op Op) (*int64, error) {
	switch op.Op {
	case "append":
		return nil, r.arr.TryAppend(op.Values...)
	case "insert":
		return nil, r.arr.TryInsert(op.Index, op.Values...)
	case "replace":
		return nil, r.arr.TryReplace(op.Lo, op.Hi, op.Values...)
	case "set":
		return nil, r.arr.TrySet(op.Index, op.Value)
	case "get":
		v, err := r.arr.TryGet(op.Index)
		if err != nil {
			return nil, err
		}
		return &v, nil
	case "remove":
		v, err := r.arr.TryRemove(op.Index)
		if err != nil {
			return nil, err
		}
		return &v, nil
	case "delete":
		return nil, r.arr.TryDelete(op.Lo, op.Hi)
	case "clear":
		r.arr.Clear()
		return nil, nil
	case "reserve":
		return nil, r.arr.TryReserve(op.N)
	default:
		return nil, errors.Newf("unknown operation %q", op.Op)
	}
}
