package xfrm

import (
	"math"
	"time"

	"github.com/igsio/volrecon/geom"
)

// UnsetComputationError is the sentinel ComputationError value meaning
// "no computation error has been recorded".
var UnsetComputationError = math.NaN()

// Edge is one directed transform in the repository's graph. An
// original edge carries a user-supplied matrix and may be mutated by
// the Set* status/persistent/error/date operations; a computed edge
// (the automatic inverse of an original) is derived and read-only.
// Multi-hop GetTransform results are not stored as edges.
type Edge struct {
	Matrix           geom.Mat4
	Status           Status
	Persistent       bool
	ComputationError float64
	Date             string
	IsComputed       bool
}

func newOriginalEdge(m geom.Mat4, status Status) *Edge {
	return &Edge{
		Matrix:           m,
		Status:           status,
		ComputationError: UnsetComputationError,
		Date:             time.Now().UTC().Format(time.RFC3339),
	}
}

func newComputedInverseEdge(original *Edge) *Edge {
	inv, ok := original.Matrix.Invert()
	if !ok {
		inv = geom.Identity4()
	}
	return &Edge{
		Matrix:           inv,
		Status:           original.Status,
		Persistent:       original.Persistent,
		ComputationError: original.ComputationError,
		Date:             original.Date,
		IsComputed:       true,
	}
}
