// Copyright (c) 2024 The robdd Authors
//
// MIT License

package robdd

import (
	"errors"
	"fmt"
)

// ErrTableFull is returned by the unique table when no slot in the probe
// sequence for a new triple is free. The engine never resizes to recover
// from this; callers must size the Manager's memory budget generously
// enough up front, or construct a fresh Manager.
var ErrTableFull = errors.New("robdd: unique table full")

// ErrVariableNotInSet is returned by the strict CountSat when a node's
// decision variable does not appear in the caller-supplied variable set.
var ErrVariableNotInSet = errors.New("robdd: variable not in set")

// ErrSaturated is returned by Manager.Stats when asked to report on a
// Manager that was never constructed with WithCounters(true); it never
// affects Ite's correctness, since a missed cache lookup always falls
// back to recomputing regardless of whether counters are kept.
var ErrSaturated = errors.New("robdd: manager counters not enabled")

func wrapf(err error, format string, args ...interface{}) error {
	return fmt.Errorf(format+": %w", append(args, err)...)
}
