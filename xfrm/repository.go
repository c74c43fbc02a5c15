// Package xfrm implements the transform repository of spec.md §4.7: a
// directed graph of named coordinate frames that caches user-supplied
// ("original") transforms, derives their inverses and multi-hop
// chains, and persists the graph to/from XML.
package xfrm

import (
	"sync"

	"github.com/igsio/volrecon"
	"github.com/igsio/volrecon/geom"
	"github.com/igsio/volrecon/internal/cache"
)

// resolvedChainCacheSize bounds the number of memoized multi-hop
// GetTransform results kept between graph mutations.
const resolvedChainCacheSize = 256

// resolvedChain is one cached GetTransform result.
type resolvedChain struct {
	matrix geom.Mat4
	status Status
}

// Repository is a directed graph From -> {To -> Edge}. All mutations
// and reads are protected by a single lock, mirroring the teacher's
// single-mutex-per-resource discipline: public methods never call each
// other while holding the lock, only the unexported *Locked helpers do.
//
// Multi-hop GetTransform results are memoized in resolved, since
// resolving a path re-walks the graph on every call; any mutation
// invalidates the whole memo rather than tracking which chains it
// affects, trading a few avoidable recomputations for simplicity.
type Repository struct {
	mu       sync.Mutex
	edges    map[string]map[string]*Edge
	resolved *cache.Cache[string, resolvedChain]
}

// New returns an empty Repository.
func New() *Repository {
	return &Repository{
		edges:    make(map[string]map[string]*Edge),
		resolved: cache.New[string, resolvedChain](resolvedChainCacheSize),
	}
}

// SetTransform registers an original edge name.From -> name.To and its
// computed inverse. Rejects from==to, rejects overwriting an edge that
// would turn an existing original's reverse into a computed inverse of
// itself, and rejects creating a cycle.
func (r *Repository) SetTransform(name Name, matrix geom.Mat4, status Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !name.IsValid() {
		return volrecon.NewGraphError("xfrm.SetTransform", errInvalidName(name))
	}
	if name.From == name.To {
		return volrecon.NewInvariantError("xfrm.SetTransform", errSameFrame)
	}
	if reverse := r.edgeLocked(name.To, name.From); reverse != nil && !reverse.IsComputed {
		return volrecon.NewInvariantError("xfrm.SetTransform", errReverseOriginalExists(name))
	}
	if _, ok := r.findPathLocked(name.From, name.To, map[string]bool{name.From: true}); ok {
		if r.edgeLocked(name.From, name.To) == nil {
			return volrecon.NewInvariantError("xfrm.SetTransform", errWouldCreateCycle(name))
		}
	}

	// The reverse-original-exists check above guarantees that if the
	// forward edge already exists, it is itself original (never the
	// computed inverse of a reverse original) - so updating it in place
	// never clobbers a different edge's data.
	if existing := r.edgeLocked(name.From, name.To); existing != nil {
		existing.Matrix = matrix
		existing.Status = status
		if inv := r.edgeLocked(name.To, name.From); inv != nil {
			invMatrix, ok := matrix.Invert()
			if !ok {
				invMatrix = geom.Identity4()
			}
			inv.Matrix = invMatrix
			inv.Status = status
		}
	} else {
		original := newOriginalEdge(matrix, status)
		inverse := newComputedInverseEdge(original)
		r.setEdgeLocked(name.From, name.To, original)
		r.setEdgeLocked(name.To, name.From, inverse)
	}
	r.resolved.Clear()
	volrecon.Logger().Info("xfrm.SetTransform", "name", name.String(), "status", status.String())
	return nil
}

// GetTransform returns the matrix and composed status for name. If
// From==To it returns identity and Ok. Otherwise it resolves a path via
// FindPath and concatenates matrices left to right, composing status by
// element-wise maximum severity.
func (r *Repository) GetTransform(name Name) (geom.Mat4, Status, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !name.IsValid() {
		return geom.Mat4{}, Unknown, volrecon.NewGraphError("xfrm.GetTransform", errInvalidName(name))
	}
	if name.From == name.To {
		return geom.Identity4(), Ok, nil
	}

	key := name.String()
	if cached, ok := r.resolved.Get(key); ok {
		return cached.matrix, cached.status, nil
	}

	path, ok := r.findPathLocked(name.From, name.To, map[string]bool{name.From: true})
	if !ok {
		return geom.Mat4{}, PathNotFound, volrecon.NewGraphError("xfrm.GetTransform", errPathNotFound(name))
	}

	// Matrices compose in traversal order applied to a point, so each
	// new edge premultiplies the accumulated result (Multiply(m, other)
	// applies other first): result after n edges is e_n * ... * e_1.
	result := geom.Identity4()
	status := Ok
	cur := name.From
	for _, next := range path {
		e := r.edgeLocked(cur, next)
		result = e.Matrix.Multiply(result)
		status = maxSeverity(status, e.Status)
		cur = next
	}
	r.resolved.Set(key, resolvedChain{matrix: result, status: status})
	return result, status, nil
}

// SetTransformStatus, SetTransformPersistent, SetTransformError, and
// SetTransformDate mutate fields of the *original* edge name.From ->
// name.To. Calling any of them on a computed edge (i.e. where only the
// reverse is original) is an InvariantError.

func (r *Repository) SetTransformStatus(name Name, status Status) error {
	return r.mutateOriginal(name, "xfrm.SetTransformStatus", func(e *Edge) {
		e.Status = status
		inv := r.edgeLocked(name.To, name.From)
		if inv != nil {
			inv.Status = status
		}
	})
}

func (r *Repository) SetTransformPersistent(name Name, persistent bool) error {
	return r.mutateOriginal(name, "xfrm.SetTransformPersistent", func(e *Edge) {
		e.Persistent = persistent
		if inv := r.edgeLocked(name.To, name.From); inv != nil {
			inv.Persistent = persistent
		}
	})
}

func (r *Repository) SetTransformError(name Name, computationError float64) error {
	return r.mutateOriginal(name, "xfrm.SetTransformError", func(e *Edge) {
		e.ComputationError = computationError
		if inv := r.edgeLocked(name.To, name.From); inv != nil {
			inv.ComputationError = computationError
		}
	})
}

func (r *Repository) SetTransformDate(name Name, date string) error {
	return r.mutateOriginal(name, "xfrm.SetTransformDate", func(e *Edge) {
		e.Date = date
		if inv := r.edgeLocked(name.To, name.From); inv != nil {
			inv.Date = date
		}
	})
}

func (r *Repository) mutateOriginal(name Name, op string, mutate func(*Edge)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !name.IsValid() {
		return volrecon.NewGraphError(op, errInvalidName(name))
	}
	e := r.edgeLocked(name.From, name.To)
	if e == nil {
		return volrecon.NewGraphError(op, errPathNotFound(name))
	}
	if e.IsComputed {
		return volrecon.NewInvariantError(op, errMutateComputed(name))
	}
	mutate(e)
	r.resolved.Clear()
	return nil
}

// DeleteTransform removes both directions of an original edge. Fails
// if name.From -> name.To is not an original edge.
func (r *Repository) DeleteTransform(name Name) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e := r.edgeLocked(name.From, name.To)
	if e == nil || e.IsComputed {
		return volrecon.NewInvariantError("xfrm.DeleteTransform", errNotOriginal(name))
	}
	delete(r.edges[name.From], name.To)
	if len(r.edges[name.From]) == 0 {
		delete(r.edges, name.From)
	}
	delete(r.edges[name.To], name.From)
	if len(r.edges[name.To]) == 0 {
		delete(r.edges, name.To)
	}
	r.resolved.Clear()
	return nil
}

// Clear wipes the entire graph.
func (r *Repository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.edges = make(map[string]map[string]*Edge)
	r.resolved.Clear()
}

// FindPath returns a sequence of frame names from.. .to (inclusive of
// to, exclusive of from) describing a directed walk of existing edges,
// or ok=false if none exists. visited guards against revisiting the
// origin-of-recursion coordinate (spec.md §4.7's "BFS-depth-first
// without revisiting the origin" rule); callers normally pass
// {from: true}.
func (r *Repository) FindPath(from, to string, visited map[string]bool) ([]string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.findPathLocked(from, to, visited)
}

func (r *Repository) findPathLocked(from, to string, visited map[string]bool) ([]string, bool) {
	if from == to {
		return nil, true
	}
	neighbors := r.edges[from]
	for next := range neighbors {
		if visited[next] {
			continue
		}
		nextVisited := make(map[string]bool, len(visited)+1)
		for k := range visited {
			nextVisited[k] = true
		}
		nextVisited[next] = true
		if rest, ok := r.findPathLocked(next, to, nextVisited); ok {
			return append([]string{next}, rest...), true
		}
	}
	return nil, false
}

func (r *Repository) edgeLocked(from, to string) *Edge {
	toMap, ok := r.edges[from]
	if !ok {
		return nil
	}
	return toMap[to]
}

func (r *Repository) setEdgeLocked(from, to string, e *Edge) {
	if r.edges[from] == nil {
		r.edges[from] = make(map[string]*Edge)
	}
	r.edges[from][to] = e
}
