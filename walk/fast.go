package walk

import (
	"github.com/igsio/volrecon/clip"
	"github.com/igsio/volrecon/geom"
)

// FastWalker is the optimized scanline walker of spec.md §4.4. Its
// per-pixel step is integer add-and-shift on geom.Fixed coordinates;
// the walker converts to float64 only once per touched pixel, at the
// splat call.
type FastWalker struct{}

func (FastWalker) Walk(p Params) bool {
	volExt := p.Volume.Extent()
	overflowed := false

	xhat := p.Transform.Column(0)
	yhat := p.Transform.Column(1)
	zhat := p.Transform.Column(2)

	xhatFx := geom.FromFloat64(xhat.X)
	xhatFy := geom.FromFloat64(xhat.Y)
	xhatFz := geom.FromFloat64(xhat.Z)

	components := p.Slice.Components()
	values := make([]float64, components)

	for z := p.ZRange[0]; z <= p.ZRange[1]; z++ {
		for y := p.YRange[0]; y <= p.YRange[1]; y++ {
			base := geom.Vec3{
				X: zhat.X*float64(z) + yhat.X*float64(y) + p.Transform.M[0][3],
				Y: zhat.Y*float64(z) + yhat.Y*float64(y) + p.Transform.M[1][3],
				Z: zhat.Z*float64(z) + yhat.Z*float64(y) + p.Transform.M[2][3],
			}

			lo, hi, ok := scanlineXRange(base, xhat, volExt, p.XRange[0], p.XRange[1])
			if !ok {
				continue
			}

			var sl clip.ScanlineResult
			hasClip := p.Clip != nil
			if hasClip {
				sl = p.Clip.Interval(y)
				lo, hi, ok = intersectClip(lo, hi, sl)
				if !ok {
					continue
				}
			}

			// Fixed-point inner loop: P advances by x̂ each step.
			pFixedX := geom.FromFloat64(base.X + float64(lo)*xhat.X)
			pFixedY := geom.FromFloat64(base.Y + float64(lo)*xhat.Y)
			pFixedZ := geom.FromFloat64(base.Z + float64(lo)*xhat.Z)

			for x := lo; x <= hi; x++ {
				if hasClip && sl.Kind == clip.Split && x >= sl.XLo && x <= sl.XHi {
					pFixedX = pFixedX.Add(xhatFx)
					pFixedY = pFixedY.Add(xhatFy)
					pFixedZ = pFixedZ.Add(xhatFz)
					continue
				}

				for c := range values {
					values[c] = p.Slice.At(x, y, c)
				}
				if w, ok := pixelWeight(p, x, y, values); ok {
					pos := geom.Vec3{X: pFixedX.ToFloat64(), Y: pFixedY.ToFloat64(), Z: pFixedZ.ToFloat64()}
					if p.Kernel.Splat(p.Volume, p.Accumulation, p.Compounder, pos, values, w) > 0 {
						overflowed = true
					}
				}

				pFixedX = pFixedX.Add(xhatFx)
				pFixedY = pFixedY.Add(xhatFy)
				pFixedZ = pFixedZ.Add(xhatFz)
			}
		}
	}
	return overflowed
}

// intersectClip narrows [lo,hi] to a clip.ScanlineResult. Split
// intervals are handled pixel-by-pixel by the caller (the hole sits
// inside [lo,hi], not at its ends), so intersectClip only applies the
// Single/Skip cases and the outer bound of a Split.
func intersectClip(lo, hi int, sl clip.ScanlineResult) (int, int, bool) {
	switch sl.Kind {
	case clip.Skip:
		return 0, 0, false
	case clip.Single:
		if sl.XStart > lo {
			lo = sl.XStart
		}
		if sl.XEnd < hi {
			hi = sl.XEnd
		}
	case clip.Split:
		if sl.XStart > lo {
			lo = sl.XStart
		}
		if sl.XEnd < hi {
			hi = sl.XEnd
		}
	}
	return lo, hi, lo <= hi
}
