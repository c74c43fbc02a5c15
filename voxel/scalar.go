// Package voxel implements the slice, volume and accumulation-buffer
// data model: scalar kinds, component counts, and the contiguous
// row-major strided buffers the splat and walk packages read and write.
package voxel

import "math"

// Kind identifies the element storage type shared by an input slice and
// the output volume. Mixing kinds between slice and volume is a
// configuration error.
type Kind uint8

const (
	KindInt8 Kind = iota
	KindUint8
	KindInt16
	KindUint16
	KindInt32
	KindUint32
	KindFloat32
	KindFloat64

	kindCount
)

// kindInfo describes the storage properties of one Kind.
type kindInfo struct {
	bytesPerElement int
	isFloat         bool
	isSigned        bool
	min, max        float64
}

var kindInfoTable = [kindCount]kindInfo{
	KindInt8:    {1, false, true, math.MinInt8, math.MaxInt8},
	KindUint8:   {1, false, false, 0, math.MaxUint8},
	KindInt16:   {2, false, true, math.MinInt16, math.MaxInt16},
	KindUint16:  {2, false, false, 0, math.MaxUint16},
	KindInt32:   {4, false, true, math.MinInt32, math.MaxInt32},
	KindUint32:  {4, false, false, 0, math.MaxUint32},
	KindFloat32: {4, true, true, -math.MaxFloat32, math.MaxFloat32},
	KindFloat64: {8, true, true, -math.MaxFloat64, math.MaxFloat64},
}

// BytesPerElement returns the storage width in bytes of one scalar of
// this kind.
func (k Kind) BytesPerElement() int {
	if k >= kindCount {
		return 0
	}
	return kindInfoTable[k].bytesPerElement
}

// IsFloat reports whether k is a floating-point kind. Float kinds skip
// round-to-nearest on the final voxel write, per spec.
func (k Kind) IsFloat() bool {
	if k >= kindCount {
		return false
	}
	return kindInfoTable[k].isFloat
}

// IsValid reports whether k is a recognized scalar kind.
func (k Kind) IsValid() bool {
	return k < kindCount
}

// Clamp saturates v to the representable range of k. It only bounds
// the range; Buffer.Set rounds integer kinds to nearest after clamping.
func (k Kind) Clamp(v float64) float64 {
	if k >= kindCount {
		return v
	}
	info := kindInfoTable[k]
	if v < info.min {
		return info.min
	}
	if v > info.max {
		return info.max
	}
	return v
}

// String returns a human-readable name for k.
func (k Kind) String() string {
	switch k {
	case KindInt8:
		return "Int8"
	case KindUint8:
		return "Uint8"
	case KindInt16:
		return "Int16"
	case KindUint16:
		return "Uint16"
	case KindInt32:
		return "Int32"
	case KindUint32:
		return "Uint32"
	case KindFloat32:
		return "Float32"
	case KindFloat64:
		return "Float64"
	default:
		return "Unknown"
	}
}
