// Package recon implements the slice-paste orchestrator of spec.md
// §4.6: the public entry point that allocates the output volume and
// accumulation buffer, holds every paste parameter, and partitions each
// InsertSlice call's work across worker goroutines.
package recon

import (
	"context"
	"math"
	"runtime"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/igsio/volrecon"
	"github.com/igsio/volrecon/clip"
	"github.com/igsio/volrecon/geom"
	"github.com/igsio/volrecon/splat"
	"github.com/igsio/volrecon/voxel"
	"github.com/igsio/volrecon/walk"
)

// Interpolation selects the kernel InsertSlice uses, per spec.md §4.3.
type Interpolation int

const (
	Nearest Interpolation = iota
	Trilinear
)

// Compounding selects the rule InsertSlice uses to combine a new
// contribution with what is already at a voxel, per spec.md §4.3.
type Compounding int

const (
	Latest Compounding = iota
	Maximum
	Mean
	ImportanceMaskCompounding
)

// Optimization selects the walker InsertSlice drives, per spec.md §4.6.
type Optimization int

const (
	// Full uses the fixed-point FastWalker.
	Full Optimization = iota
	// Partial also uses FastWalker; reserved for a future coarser
	// fast/slow split (e.g. GPU offload), currently identical to Full.
	Partial
	// None uses RefWalker, the unoptimized per-pixel oracle.
	None
)

// Orchestrator is one long-lived reconstruction session: one output
// volume, one accumulation buffer, and the paste parameters that apply
// to every InsertSlice call until changed.
//
// Thread-safety: concurrent InsertSlice calls are not supported; only
// the intra-call worker fan-out is parallel. Setters must not be called
// concurrently with InsertSlice.
type Orchestrator struct {
	mu sync.Mutex

	extent                       geom.Extent
	originX, originY, originZ    float64
	spacingX, spacingY, spacingZ float64
	kind                         voxel.Kind
	components                   int

	interpolation Interpolation
	compounding   Compounding
	optimization  Optimization

	rectClip clip.Rect
	fan      clip.Fan

	rejectThreshold float64
	threadCount     int

	volume         *voxel.Volume
	accumulation   *voxel.Accumulation
	importanceMask *voxel.ImportanceMask

	warnOnAccOverflow bool

	codecPreset CodecPreset

	pool *bufferPool
}

// buffersPerBucket bounds how many Volume/Accumulation pairs of a given
// shape a single Orchestrator retains across Reset calls.
const buffersPerBucket = 2

// New builds an Orchestrator from options. The output extent defaults
// to empty (no work) until WithExtent is supplied and Reset is called.
func New(opts ...Option) *Orchestrator {
	o := &Orchestrator{
		extent:          geom.EmptyExtent(),
		spacingX:        1,
		spacingY:        1,
		spacingZ:        1,
		kind:            voxel.KindUint8,
		components:      1,
		rejectThreshold: math.Inf(-1),
		threadCount:     0,
		pool:            newBufferPool(buffersPerBucket),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Reset reallocates and zeros the volume and accumulation buffer at the
// current output extent/spacing/origin/kind, per spec.md §4.6.
func (o *Orchestrator) Reset() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.extent.IsEmpty() {
		return volrecon.NewConfigError("recon.Reset", errInvalidExtent)
	}
	vol, acc, err := o.pool.get(o.extent, o.originX, o.originY, o.originZ, o.spacingX, o.spacingY, o.spacingZ, o.components, o.kind)
	if err != nil {
		return volrecon.NewResourceError("recon.Reset", err)
	}
	if o.volume != nil {
		o.pool.put(o.volume, o.accumulation)
	}
	o.volume = vol
	o.accumulation = acc
	volrecon.Logger().Info("recon.Reset", "extent", o.extent)
	return nil
}

// Volume borrows the output volume read-only. Callers must not retain
// the reference across the next Reset.
func (o *Orchestrator) Volume() *voxel.Volume {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.volume
}

// Accumulation borrows the accumulation buffer read-only.
func (o *Orchestrator) Accumulation() *voxel.Accumulation {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.accumulation
}

// workerCount returns how many workers InsertSlice should launch for a
// slice spanning extentRange values along the split axis.
func workerCount(threadCount, extentRange int) int {
	n := threadCount
	if n <= 0 {
		n = runtime.NumCPU()
	}
	if n > extentRange {
		n = extentRange
	}
	if n < 1 {
		n = 1
	}
	return n
}

// partition splits [lo,hi] (inclusive) into n contiguous, roughly equal
// sub-ranges.
func partition(lo, hi, n int) [][2]int {
	total := hi - lo + 1
	base := total / n
	rem := total % n
	out := make([][2]int, 0, n)
	cur := lo
	for i := 0; i < n; i++ {
		size := base
		if i < rem {
			size++
		}
		if size == 0 {
			continue
		}
		out = append(out, [2]int{cur, cur + size - 1})
		cur += size
	}
	return out
}

// InsertSlice splats slice into the volume under imageToReference, per
// spec.md §4.6: it composes the closed-form input-to-output transform,
// splits the slice's widest axis (z first, then y, then x) across
// worker goroutines, and returns once every worker has joined.
func (o *Orchestrator) InsertSlice(slice *voxel.Slice, imageToReference geom.Mat4) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.volume == nil || o.extent.IsEmpty() {
		return volrecon.NewConfigError("recon.InsertSlice", errEmptyExtent)
	}
	if slice.Kind() != o.kind {
		return volrecon.NewConfigError("recon.InsertSlice", errKindMismatch)
	}
	if o.compounding == ImportanceMaskCompounding {
		if o.importanceMask == nil || !o.importanceMask.MatchesSliceExtent(slice) {
			return volrecon.NewConfigError("recon.InsertSlice", errMaskMismatch)
		}
	}

	transform := o.composeTransform(slice, imageToReference)

	var mask *clip.Mask
	if !o.rectClip.IsZero() || !o.fan.IsZero() {
		ox, oy, _ := slice.Origin()
		sx, sy, _ := slice.Spacing()
		mask = clip.Build(clip.Spec{
			SliceExtent: slice.Extent(),
			OriginX:     ox,
			OriginY:     oy,
			SpacingX:    sx,
			SpacingY:    sy,
			Rect:        o.rectClip,
			Fan:         o.fan,
		})
	}

	kernel := o.kernel()
	compounder := o.compounder()
	walker := o.walker()

	sliceExt := slice.Extent()
	axis := sliceExt.WidestAxis()
	var lo, hi int
	switch axis {
	case 0:
		lo, hi = sliceExt.X0, sliceExt.X1
	case 1:
		lo, hi = sliceExt.Y0, sliceExt.Y1
	default:
		lo, hi = sliceExt.Z0, sliceExt.Z1
	}

	n := workerCount(o.threadCount, hi-lo+1)
	ranges := partition(lo, hi, n)

	var overflowCount int64
	g, ctx := errgroup.WithContext(context.Background())
	for _, r := range ranges {
		r := r
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			params := walk.Params{
				Slice:           slice,
				Volume:          o.volume,
				Accumulation:    o.accumulation,
				Transform:       transform,
				Kernel:          kernel,
				Compounder:      compounder,
				Clip:            mask,
				ImportanceMask:  o.importanceMask,
				RejectThreshold: o.rejectThreshold,
				XRange:          [2]int{sliceExt.X0, sliceExt.X1},
				YRange:          [2]int{sliceExt.Y0, sliceExt.Y1},
				ZRange:          [2]int{sliceExt.Z0, sliceExt.Z1},
			}
			switch axis {
			case 0:
				params.XRange = r
			case 1:
				params.YRange = r
			default:
				params.ZRange = r
			}
			if walker.Walk(params) {
				atomic.AddInt64(&overflowCount, 1)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return volrecon.NewResourceError("recon.InsertSlice", err)
	}

	if o.warnOnAccOverflow && overflowCount > 0 {
		volrecon.Logger().Warn("recon.InsertSlice accumulation overflow", "workers", overflowCount)
	}
	return nil
}

// composeTransform builds M = S_out^-1 * R_refFromImage * S_in, per
// spec.md §4.4.
func (o *Orchestrator) composeTransform(slice *voxel.Slice, imageToReference geom.Mat4) geom.Mat4 {
	sOut := o.volume.InverseScaleMatrix()
	sIn := slice.ScaleMatrix()
	return sOut.Multiply(imageToReference).Multiply(sIn)
}

func (o *Orchestrator) kernel() splat.Kernel {
	if o.interpolation == Trilinear {
		return splat.TrilinearKernel{}
	}
	return splat.NearestKernel{}
}

func (o *Orchestrator) compounder() splat.Compounder {
	switch o.compounding {
	case Maximum:
		return splat.Maximum{}
	case Mean:
		return splat.Mean{}
	case ImportanceMaskCompounding:
		return splat.ImportanceMask{}
	default:
		return splat.Latest{}
	}
}

func (o *Orchestrator) walker() walk.Walker {
	if o.optimization == None {
		return walk.RefWalker{}
	}
	return walk.FastWalker{}
}
