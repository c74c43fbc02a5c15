package splat

import (
	"github.com/igsio/volrecon/geom"
	"github.com/igsio/volrecon/voxel"
)

// Kernel splats one input pixel's components into vol/acc at output
// coordinate pos, under compounder. values holds one scalar per
// component (1 or 3 entries). pixelWeight is the importance-mask
// weighting already decided by the caller, as a multiplier in (0,1]; it
// is 1 unless ImportanceMask compounding narrows it (pixels rejected by
// the threshold are never passed to Splat). Splat reports whether any touched voxel
// saturated its accumulation cell.
type Kernel interface {
	// Splat returns the number of touched voxels whose accumulation
	// cell saturated during this call (0 if none).
	Splat(vol *voxel.Volume, acc *voxel.Accumulation, compounder Compounder, pos geom.Vec3, values []float64, pixelWeight float64) (overflowCount int)
}

// touch applies one corner/voxel contribution of weight w (in (0,1])
// to every component of voxel (x,y,z), per the shared-accumulation
// Combine contract: the accumulation cell is read once, fed to every
// component's Combine call so they agree on oldA/newA, then written
// once.
func touch(vol *voxel.Volume, acc *voxel.Accumulation, compounder Compounder, x, y, z int, values []float64, w float64) (overflowed bool) {
	if w < compounder.MinWeight() {
		return false
	}
	wUnits := w * accUnit
	oldA := float64(acc.At(x, y, z))

	var newA float64
	anyTouch := false
	for c, v := range values {
		oldV := vol.At(x, y, z, c)
		nv, na, didTouch := compounder.Combine(oldV, oldA, v, wUnits)
		if didTouch {
			vol.Set(x, y, z, c, nv)
			newA = na
			anyTouch = true
		}
	}
	if !anyTouch {
		return false
	}
	return acc.Set(x, y, z, newA)
}

// NearestKernel implements spec.md §4.3's nearest-neighbor kernel:
// round to the closest voxel and touch it once at full weight.
type NearestKernel struct{}

func (NearestKernel) Splat(vol *voxel.Volume, acc *voxel.Accumulation, compounder Compounder, pos geom.Vec3, values []float64, pixelWeight float64) int {
	i := geom.RoundHalfAwayFromZero(pos.X)
	j := geom.RoundHalfAwayFromZero(pos.Y)
	k := geom.RoundHalfAwayFromZero(pos.Z)
	if !vol.Extent().Contains(i, j, k) {
		return 0
	}
	if touch(vol, acc, compounder, i, j, k, values, pixelWeight) {
		return 1
	}
	return 0
}

// TrilinearKernel implements spec.md §4.3's trilinear kernel: splat
// across the 8 surrounding corners weighted by distance, skipping the
// whole update if any corner of nonzero weight falls outside the output
// extent. On an axis where the position has no fractional part the
// floored+1 corners carry zero weight and are not bounds-checked, so a
// single-plane volume still takes trilinear splats within that plane.
type TrilinearKernel struct{}

func (TrilinearKernel) Splat(vol *voxel.Volume, acc *voxel.Accumulation, compounder Compounder, pos geom.Vec3, values []float64, pixelWeight float64) int {
	fi, fx := geom.FromFloat64(pos.X).FloorRemainder()
	fj, fy := geom.FromFloat64(pos.Y).FloorRemainder()
	fk, fz := geom.FromFloat64(pos.Z).FloorRemainder()

	hi, hj, hk := fi, fj, fk
	if fx != 0 {
		hi++
	}
	if fy != 0 {
		hj++
	}
	if fz != 0 {
		hk++
	}
	ext := vol.Extent()
	if !ext.Contains(fi, fj, fk) || !ext.Contains(hi, hj, hk) {
		return 0
	}

	wx := fx.ToFloat64()
	wy := fy.ToFloat64()
	wz := fz.ToFloat64()

	overflowCount := 0
	for dz := 0; dz < 2; dz++ {
		for dy := 0; dy < 2; dy++ {
			for dx := 0; dx < 2; dx++ {
				cwx := wx
				if dx == 0 {
					cwx = 1 - wx
				}
				cwy := wy
				if dy == 0 {
					cwy = 1 - wy
				}
				cwz := wz
				if dz == 0 {
					cwz = 1 - wz
				}
				w := cwx * cwy * cwz * pixelWeight
				if w <= 0 || w < compounder.MinWeight() {
					continue
				}
				if touch(vol, acc, compounder, fi+dx, fj+dy, fk+dz, values, w) {
					overflowCount++
				}
			}
		}
	}
	return overflowCount
}
