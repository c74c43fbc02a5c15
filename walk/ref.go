package walk

import (
	"github.com/igsio/volrecon/clip"
	"github.com/igsio/volrecon/geom"
)

// RefWalker is the unoptimized scanline walker of spec.md §4.5: for
// every pixel of the input extent it bounds-checks against the clip
// mask, transforms via plain float64 matrix apply, and calls the
// kernel. Slower but trivially correct; used as the correctness oracle
// for FastWalker.
type RefWalker struct{}

func (RefWalker) Walk(p Params) bool {
	overflowed := false
	components := p.Slice.Components()
	values := make([]float64, components)

	for z := p.ZRange[0]; z <= p.ZRange[1]; z++ {
		for y := p.YRange[0]; y <= p.YRange[1]; y++ {
			var sl clip.ScanlineResult
			hasClip := p.Clip != nil
			if hasClip {
				sl = p.Clip.Interval(y)
				if sl.Kind == clip.Skip {
					continue
				}
			}

			for x := p.XRange[0]; x <= p.XRange[1]; x++ {
				if hasClip {
					switch sl.Kind {
					case clip.Single:
						if x < sl.XStart || x > sl.XEnd {
							continue
						}
					case clip.Split:
						if x < sl.XStart || x > sl.XEnd || (x >= sl.XLo && x <= sl.XHi) {
							continue
						}
					}
				}

				for c := range values {
					values[c] = p.Slice.At(x, y, c)
				}
				w, ok := pixelWeight(p, x, y, values)
				if !ok {
					continue
				}

				pos := geom.Apply4x4(p.Transform, geom.Vec3{X: float64(x), Y: float64(y), Z: float64(z)})
				if p.Kernel.Splat(p.Volume, p.Accumulation, p.Compounder, pos, values, w) > 0 {
					overflowed = true
				}
			}
		}
	}
	return overflowed
}
