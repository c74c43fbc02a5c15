// Package splat implements the interpolation kernels and compounding
// rules of spec.md §4.3: nearest-neighbor and trilinear splatting of
// one input pixel's contribution into the output volume, combined with
// whatever is already there under a chosen Compounder.
package splat

// weightThreshold is the per-corner weight floor below which Latest and
// Maximum compounding skip a touch entirely, per spec.md §4.3, to avoid
// spreading a bright pixel across eight near-zero contributions.
const weightThreshold = 1.0 / 8.0

// accUnit converts a weight in (0,1] to accumulation-buffer units
// (1 unit = 1/256), per spec.md §3.
const accUnit = 256.0

// Compounder combines one weighted contribution (value v, weight w in
// (0,1]) with the voxel's current value and accumulated weight. All
// accumulation arguments and results are in raw accumulation-buffer
// units (already multiplied by accUnit), so Compounder never has to
// know about the 1/256 scaling.
type Compounder interface {
	// MinWeight returns the per-corner weight floor below which a
	// contribution is skipped entirely. Latest and Maximum return
	// weightThreshold; Mean and ImportanceMask return 0.
	MinWeight() float64

	// Combine computes the updated component value and accumulation
	// units given the old component value oldV, the old accumulation
	// units oldA, the incoming value v, and weight units wUnits
	// (w*accUnit). It reports whether the voxel should actually be
	// written (touch=false means this contribution is a no-op).
	Combine(oldV, oldA, v, wUnits float64) (newV, newA float64, touch bool)
}

// Latest compounding: the most recent sufficiently-weighted write wins.
type Latest struct{}

func (Latest) MinWeight() float64 { return weightThreshold }

func (Latest) Combine(oldV, oldA, v, wUnits float64) (newV, newA float64, touch bool) {
	return v, wUnits, true
}

// Maximum compounding: per component, keep the larger value among
// sufficiently-weighted contributions.
type Maximum struct{}

func (Maximum) MinWeight() float64 { return weightThreshold }

func (Maximum) Combine(oldV, oldA, v, wUnits float64) (newV, newA float64, touch bool) {
	if v <= oldV {
		return oldV, oldA, false
	}
	return v, wUnits, true
}

// Mean compounding: a running weighted average. Combine returns the
// unclamped accumulation sum; touch writes it through Accumulation.Set,
// which clamps it at 65535 units and reports the saturation.
type Mean struct{}

func (Mean) MinWeight() float64 { return 0 }

func (Mean) Combine(oldV, oldA, v, wUnits float64) (newV, newA float64, touch bool) {
	if wUnits <= 0 {
		return oldV, oldA, false
	}
	sum := oldA + wUnits
	if oldA+wUnits == 0 {
		return oldV, oldA, false
	}
	newV = (v*wUnits + oldV*oldA) / (oldA + wUnits)
	return newV, sum, true
}

// ImportanceMask compounding: like Mean, but the caller is expected to
// have already folded the per-pixel mask weight (0..255, normalized to
// [0,1]) into wUnits before calling Combine. A mask weight of zero
// therefore arrives here as wUnits<=0 and is a no-op, matching Mean's
// own zero-weight behavior.
type ImportanceMask struct {
	Mean
}
