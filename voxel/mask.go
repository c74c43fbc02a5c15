package voxel

import "github.com/igsio/volrecon/geom"

// ImportanceMask is a 2D buffer of per-input-pixel weights in [0,255],
// consulted only when compounding mode is ImportanceMask. It must share
// the input slice's extent and be 1-component, kind Uint8.
type ImportanceMask struct {
	buf *Buffer
}

// NewImportanceMask allocates a zeroed ImportanceMask for extent.
func NewImportanceMask(extent geom.Extent) (*ImportanceMask, error) {
	buf, err := NewBuffer(extent, 1, KindUint8)
	if err != nil {
		return nil, err
	}
	return &ImportanceMask{buf: buf}, nil
}

// WrapImportanceMask wraps a caller-owned buffer of uint8 weights
// without copying.
func WrapImportanceMask(extent geom.Extent, data []byte) (*ImportanceMask, error) {
	buf, err := WrapBuffer(extent, 1, KindUint8, data)
	if err != nil {
		return nil, err
	}
	return &ImportanceMask{buf: buf}, nil
}

// Extent returns the mask's pixel extent.
func (m *ImportanceMask) Extent() geom.Extent { return m.buf.Extent() }

// At returns the weight at (x,y) in [0,255].
func (m *ImportanceMask) At(x, y int) uint8 {
	return uint8(m.buf.At(x, y, 0, 0))
}

// MatchesSliceExtent reports whether m covers the same pixel extent as
// slice, the configuration invariant required before ImportanceMask
// compounding may run.
func (m *ImportanceMask) MatchesSliceExtent(slice *Slice) bool {
	return m.Extent() == slice.Extent()
}
