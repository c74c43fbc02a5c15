package recon

import (
	"github.com/igsio/volrecon/clip"
	"github.com/igsio/volrecon/geom"
	"github.com/igsio/volrecon/voxel"
)

// Option configures an Orchestrator during creation.
//
// Example:
//
//	o := recon.New(
//		recon.WithExtent(geom.Extent{X1: 255, Y1: 255, Z1: 255}),
//		recon.WithSpacing(0.5, 0.5, 0.5),
//		recon.WithInterpolation(recon.Trilinear),
//		recon.WithCompounding(recon.Mean),
//	)
type Option func(*Orchestrator)

// WithExtent sets the output volume's voxel-index extent.
func WithExtent(extent geom.Extent) Option {
	return func(o *Orchestrator) {
		o.extent = extent
	}
}

// WithOrigin sets the output volume's physical origin.
func WithOrigin(x, y, z float64) Option {
	return func(o *Orchestrator) {
		o.originX, o.originY, o.originZ = x, y, z
	}
}

// WithSpacing sets the output volume's voxel spacing.
func WithSpacing(x, y, z float64) Option {
	return func(o *Orchestrator) {
		o.spacingX, o.spacingY, o.spacingZ = x, y, z
	}
}

// WithKind sets the output volume's scalar kind.
func WithKind(k voxel.Kind) Option {
	return func(o *Orchestrator) {
		o.kind = k
	}
}

// WithComponents sets the number of scalar components per voxel (1 for
// grayscale, 3 for RGB).
func WithComponents(n int) Option {
	return func(o *Orchestrator) {
		o.components = n
	}
}

// WithInterpolation selects the splat kernel.
func WithInterpolation(i Interpolation) Option {
	return func(o *Orchestrator) {
		o.interpolation = i
	}
}

// WithCompounding selects the voxel-combining rule.
func WithCompounding(c Compounding) Option {
	return func(o *Orchestrator) {
		o.compounding = c
	}
}

// WithOptimization selects the scanline walker.
func WithOptimization(opt Optimization) Option {
	return func(o *Orchestrator) {
		o.optimization = opt
	}
}

// WithRectClip sets the rectangular clip applied to every inserted
// slice. A zero Rect disables rectangle clipping.
func WithRectClip(r clip.Rect) Option {
	return func(o *Orchestrator) {
		o.rectClip = r
	}
}

// WithFan sets the fan (sector/annulus) clip applied to every inserted
// slice. A zero Fan disables fan clipping.
func WithFan(f clip.Fan) Option {
	return func(o *Orchestrator) {
		o.fan = f
	}
}

// WithRejectThreshold sets the per-component pixel threshold: a pixel
// is skipped when the sum of its components is below threshold times
// the component count. The default, math.Inf(-1), disables rejection.
func WithRejectThreshold(threshold float64) Option {
	return func(o *Orchestrator) {
		o.rejectThreshold = threshold
	}
}

// WithThreadCount bounds the worker goroutines InsertSlice launches per
// call. 0 (the default) uses runtime.NumCPU().
func WithThreadCount(n int) Option {
	return func(o *Orchestrator) {
		o.threadCount = n
	}
}

// WithImportanceMask attaches the per-pixel weight mask required by
// ImportanceMaskCompounding.
func WithImportanceMask(m *voxel.ImportanceMask) Option {
	return func(o *Orchestrator) {
		o.importanceMask = m
	}
}

// WithAccumulationOverflowWarning enables a warn-level log line from
// InsertSlice whenever any worker reports a saturated accumulation
// cell.
func WithAccumulationOverflowWarning(warn bool) Option {
	return func(o *Orchestrator) {
		o.warnOnAccOverflow = warn
	}
}
