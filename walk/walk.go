// Package walk implements the optimized and reference scanline walkers
// of spec.md §4.4/§4.5: for each input slice, compute the input-to-
// output transform's per-scanline intersection with the output volume
// and clip mask, then drive the splat package over every pixel inside.
package walk

import (
	"math"

	"github.com/igsio/volrecon/clip"
	"github.com/igsio/volrecon/geom"
	"github.com/igsio/volrecon/splat"
	"github.com/igsio/volrecon/voxel"
)

// Walker walks one input slice under transform M = S_out^-1 * R * S_in
// (already composed by the caller), splatting every non-clipped,
// non-rejected pixel into vol/acc via kernel and compounder.
type Walker interface {
	Walk(p Params) (overflowed bool)
}

// Params bundles one InsertSlice call's inputs for a Walker.
type Params struct {
	Slice           *voxel.Slice
	Volume          *voxel.Volume
	Accumulation    *voxel.Accumulation
	Transform       geom.Mat4 // pixel-index (slice) -> voxel-index (volume)
	Kernel          splat.Kernel
	Compounder      splat.Compounder
	Clip            *clip.Mask
	ImportanceMask  *voxel.ImportanceMask
	RejectThreshold float64 // sentinel math.Inf(-1) disables pixel rejection
	// XRange, YRange, ZRange restrict the walk to a worker's disjoint
	// sub-extent of the slice; callers processing the whole slice pass
	// the slice's own extent.
	XRange, YRange, ZRange [2]int
}

// intersectionLowHigh solves the integer x-range for which
// origin + x*step lies within [boundLo, boundHi]. ok is false if step
// is zero and origin already falls outside the bound (no x is in
// bounds).
func intersectionLowHigh(origin, step, boundLo, boundHi float64) (lo, hi int, ok bool) {
	if step == 0 {
		if origin < boundLo || origin > boundHi {
			return 0, 0, false
		}
		return math.MinInt32, math.MaxInt32, true
	}
	t0 := (boundLo - origin) / step
	t1 := (boundHi - origin) / step
	if t1 < t0 {
		t0, t1 = t1, t0
	}
	return int(math.Ceil(t0)), int(math.Floor(t1)), true
}

// scanlineXRange intersects the face-crossing ranges of all three
// output axes with the slice's own x-range, per spec.md §4.4 steps 1-2:
// it projects the output box back onto the scanline one axis at a time
// and keeps the overlap of all three ranges; ok is false when that
// overlap is empty.
func scanlineXRange(p0 geom.Vec3, xhat geom.Vec3, vol geom.Extent, xlo, xhi int) (lo, hi int, ok bool) {
	lo, hi = xlo, xhi
	axes := []struct{ origin, step, boundLo, boundHi float64 }{
		{p0.X, xhat.X, float64(vol.X0), float64(vol.X1)},
		{p0.Y, xhat.Y, float64(vol.Y0), float64(vol.Y1)},
		{p0.Z, xhat.Z, float64(vol.Z0), float64(vol.Z1)},
	}
	for _, a := range axes {
		alo, ahi, aok := intersectionLowHigh(a.origin, a.step, a.boundLo, a.boundHi)
		if !aok {
			return 0, 0, false
		}
		if alo > lo {
			lo = alo
		}
		if ahi < hi {
			hi = ahi
		}
	}
	return lo, hi, lo <= hi
}

// pixelWeight applies pixel rejection and, for ImportanceMask
// compounding, the per-pixel mask weight, returning the multiplier to
// feed to the kernel and whether the pixel should be processed at all.
func pixelWeight(p Params, x, y int, values []float64) (w float64, ok bool) {
	if p.RejectThreshold != math.Inf(-1) {
		var sum float64
		for _, v := range values {
			sum += v
		}
		if sum < p.RejectThreshold*float64(len(values)) {
			return 0, false
		}
	}
	w = 1
	if _, isMask := p.Compounder.(splat.ImportanceMask); isMask && p.ImportanceMask != nil {
		mv := p.ImportanceMask.At(x, y)
		if mv == 0 {
			return 0, false
		}
		w = float64(mv) / 255.0
	}
	return w, true
}
