package volrecon

import "fmt"

// Kind classifies a volrecon error into the taxonomy callers switch on.
type Kind string

const (
	// KindConfig covers invalid output extent, mismatched scalar kinds,
	// missing required fields, importance-mask extent mismatch, and
	// unknown preset names.
	KindConfig Kind = "config"

	// KindInvariant covers mutation of a computed transform edge, cycle
	// creation, and duplicate original edges.
	KindInvariant Kind = "invariant"

	// KindResource covers buffer allocation failure.
	KindResource Kind = "resource"

	// KindGraph covers PathNotFound and InvalidName in the transform
	// repository.
	KindGraph Kind = "graph"
)

// Error is the concrete error type returned across the volrecon API
// boundary. Op names the failing operation (e.g. "recon.Reset",
// "xfrm.SetTransform") so a log line built from it is reproducible
// without extra context.
type Error struct {
	Op   string
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }

// newError builds an *Error, wrapping a sentinel or causal error.
func newError(op string, kind Kind, err error) *Error {
	return &Error{Op: op, Kind: kind, Err: err}
}

// NewConfigError wraps err as a KindConfig *Error. Used by recon and
// xfrm to report invalid extents, mismatched scalar kinds, missing
// importance masks, and unknown preset names.
func NewConfigError(op string, err error) *Error { return newError(op, KindConfig, err) }

// NewInvariantError wraps err as a KindInvariant *Error. Used by xfrm
// to reject mutation of a computed edge or creation of a cycle.
func NewInvariantError(op string, err error) *Error { return newError(op, KindInvariant, err) }

// NewResourceError wraps err as a KindResource *Error. Used by recon
// when volume or accumulation allocation fails, and to surface a
// worker failure from InsertSlice's errgroup.
func NewResourceError(op string, err error) *Error { return newError(op, KindResource, err) }

// NewGraphError wraps err as a KindGraph *Error. Used by xfrm to
// report PathNotFound and invalid frame names.
func NewGraphError(op string, err error) *Error { return newError(op, KindGraph, err) }
