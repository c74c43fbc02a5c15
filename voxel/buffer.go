package voxel

import (
	"encoding/binary"
	"errors"
	"math"

	"github.com/igsio/volrecon/geom"
)

var (
	// ErrInvalidExtent is returned when an extent is empty or malformed.
	ErrInvalidExtent = errors.New("voxel: invalid extent")
	// ErrInvalidComponents is returned when component count is not 1 or 3.
	ErrInvalidComponents = errors.New("voxel: component count must be 1 or 3")
	// ErrInvalidKind is returned when a scalar kind is not recognized.
	ErrInvalidKind = errors.New("voxel: invalid scalar kind")
	// ErrDataTooSmall is returned when a caller-supplied buffer is smaller
	// than extent*components*bytesPerElement requires.
	ErrDataTooSmall = errors.New("voxel: data buffer too small")
)

// Buffer is a contiguous row-major (x fastest, then y, then z) strided
// store of scalars of a single Kind, with 1 or 3 components per voxel.
// Slice, Volume and ImportanceMask all embed a Buffer; it is the
// "strided image view" external data-container contract of spec.md §9,
// narrowed to what the splat and walk packages need.
type Buffer struct {
	extent     geom.Extent
	components int
	kind       Kind
	data       []byte
}

// NewBuffer allocates a zeroed Buffer for extent with the given
// component count and kind.
func NewBuffer(extent geom.Extent, components int, kind Kind) (*Buffer, error) {
	if extent.IsEmpty() {
		return nil, ErrInvalidExtent
	}
	if components != 1 && components != 3 {
		return nil, ErrInvalidComponents
	}
	if !kind.IsValid() {
		return nil, ErrInvalidKind
	}
	n := extent.SizeX() * extent.SizeY() * extent.SizeZ() * components * kind.BytesPerElement()
	return &Buffer{extent: extent, components: components, kind: kind, data: make([]byte, n)}, nil
}

// WrapBuffer wraps a caller-owned byte slice without copying. data must
// be at least as large as the extent/components/kind require.
func WrapBuffer(extent geom.Extent, components int, kind Kind, data []byte) (*Buffer, error) {
	if extent.IsEmpty() {
		return nil, ErrInvalidExtent
	}
	if components != 1 && components != 3 {
		return nil, ErrInvalidComponents
	}
	if !kind.IsValid() {
		return nil, ErrInvalidKind
	}
	need := extent.SizeX() * extent.SizeY() * extent.SizeZ() * components * kind.BytesPerElement()
	if len(data) < need {
		return nil, ErrDataTooSmall
	}
	return &Buffer{extent: extent, components: components, kind: kind, data: data}, nil
}

// Extent returns b's voxel extent.
func (b *Buffer) Extent() geom.Extent { return b.extent }

// Components returns the number of scalar components per voxel (1 or 3).
func (b *Buffer) Components() int { return b.components }

// Kind returns b's scalar kind.
func (b *Buffer) Kind() Kind { return b.kind }

// Data returns the raw backing bytes, in row-major x-fastest order.
func (b *Buffer) Data() []byte { return b.data }

// index returns the byte offset of component c of voxel (x,y,z).
func (b *Buffer) index(x, y, z, c int) int {
	ex := b.extent
	lx := x - ex.X0
	ly := y - ex.Y0
	lz := z - ex.Z0
	voxel := (lz*ex.SizeY()+ly)*ex.SizeX() + lx
	return (voxel*b.components + c) * b.kind.BytesPerElement()
}

// At returns component c of voxel (x,y,z) as a float64, regardless of
// the underlying storage kind.
func (b *Buffer) At(x, y, z, c int) float64 {
	off := b.index(x, y, z, c)
	switch b.kind {
	case KindInt8:
		return float64(int8(b.data[off]))
	case KindUint8:
		return float64(b.data[off])
	case KindInt16:
		return float64(int16(binary.LittleEndian.Uint16(b.data[off:])))
	case KindUint16:
		return float64(binary.LittleEndian.Uint16(b.data[off:]))
	case KindInt32:
		return float64(int32(binary.LittleEndian.Uint32(b.data[off:])))
	case KindUint32:
		return float64(binary.LittleEndian.Uint32(b.data[off:]))
	case KindFloat32:
		return float64(math.Float32frombits(binary.LittleEndian.Uint32(b.data[off:])))
	case KindFloat64:
		return math.Float64frombits(binary.LittleEndian.Uint64(b.data[off:]))
	default:
		return 0
	}
}

// Set writes component c of voxel (x,y,z). Integer kinds round to
// nearest and saturate to the kind's representable range; float kinds
// store v unrounded, per spec.md §4.3.
func (b *Buffer) Set(x, y, z, c int, v float64) {
	off := b.index(x, y, z, c)
	if !b.kind.IsFloat() {
		v = math.Round(b.kind.Clamp(v))
	} else {
		v = b.kind.Clamp(v)
	}
	switch b.kind {
	case KindInt8:
		b.data[off] = byte(int8(v))
	case KindUint8:
		b.data[off] = byte(uint8(v))
	case KindInt16:
		binary.LittleEndian.PutUint16(b.data[off:], uint16(int16(v)))
	case KindUint16:
		binary.LittleEndian.PutUint16(b.data[off:], uint16(v))
	case KindInt32:
		binary.LittleEndian.PutUint32(b.data[off:], uint32(int32(v)))
	case KindUint32:
		binary.LittleEndian.PutUint32(b.data[off:], uint32(v))
	case KindFloat32:
		binary.LittleEndian.PutUint32(b.data[off:], math.Float32bits(float32(v)))
	case KindFloat64:
		binary.LittleEndian.PutUint64(b.data[off:], math.Float64bits(v))
	}
}

// Zero clears the entire buffer to zero bytes.
func (b *Buffer) Zero() {
	clear(b.data)
}
