package splat

import (
	"testing"

	"github.com/igsio/volrecon/geom"
	"github.com/igsio/volrecon/voxel"
)

func newTestVolume(t *testing.T) (*voxel.Volume, *voxel.Accumulation) {
	t.Helper()
	ext := geom.Extent{X0: 0, X1: 9, Y0: 0, Y1: 9, Z0: 0, Z1: 9}
	vol, err := voxel.NewVolume(ext, 0, 0, 0, 1, 1, 1, 1, voxel.KindUint8)
	if err != nil {
		t.Fatalf("NewVolume() error = %v", err)
	}
	acc, err := voxel.NewAccumulation(ext)
	if err != nil {
		t.Fatalf("NewAccumulation() error = %v", err)
	}
	return vol, acc
}

func TestNearestKernelLatest(t *testing.T) {
	vol, acc := newTestVolume(t)
	k := NearestKernel{}
	k.Splat(vol, acc, Latest{}, geom.Vec3{X: 3, Y: 4, Z: 5}, []float64{200}, 1)
	if got := vol.At(3, 4, 5, 0); got != 200 {
		t.Errorf("At(3,4,5) = %v, want 200", got)
	}
	if got := acc.At(3, 4, 5); got != 256 {
		t.Errorf("acc.At(3,4,5) = %v, want 256", got)
	}
}

func TestNearestKernelOutsideExtentNoOp(t *testing.T) {
	vol, acc := newTestVolume(t)
	k := NearestKernel{}
	k.Splat(vol, acc, Latest{}, geom.Vec3{X: 100, Y: 4, Z: 5}, []float64{200}, 1)
	if got := acc.At(0, 4, 5); got != 0 {
		t.Errorf("out-of-extent splat touched acc.At(0,4,5) = %v, want 0", got)
	}
}

func TestTrilinearKernelExactCorner(t *testing.T) {
	vol, acc := newTestVolume(t)
	k := TrilinearKernel{}
	k.Splat(vol, acc, Latest{}, geom.Vec3{X: 3, Y: 4, Z: 5}, []float64{200}, 1)
	if got := vol.At(3, 4, 5, 0); got != 200 {
		t.Errorf("At(3,4,5) = %v, want 200 (weight 1.0 at exact corner)", got)
	}
	if got := acc.At(3, 4, 6); got != 0 {
		t.Errorf("acc.At(3,4,6) = %v, want 0 (zero-weight corner untouched)", got)
	}
}

func TestTrilinearSkipsOutsideExtent(t *testing.T) {
	vol, acc := newTestVolume(t)
	k := TrilinearKernel{}
	k.Splat(vol, acc, Latest{}, geom.Vec3{X: 9.5, Y: 4, Z: 5}, []float64{200}, 1)
	if got := acc.At(9, 4, 5); got != 0 {
		t.Errorf("trilinear splat straddling the edge should be skipped entirely, got acc=%v", got)
	}
}

func TestMeanCompoundingConverges(t *testing.T) {
	vol, acc := newTestVolume(t)
	k := NearestKernel{}
	for range 4 {
		k.Splat(vol, acc, Mean{}, geom.Vec3{X: 1, Y: 1, Z: 1}, []float64{200}, 1)
	}
	if got := vol.At(1, 1, 1, 0); got < 199 || got > 201 {
		t.Errorf("Mean after 4 identical pastes = %v, want ~200", got)
	}
	if got := acc.At(1, 1, 1); got != 1024 {
		t.Errorf("acc after 4 identical pastes = %v, want 1024", got)
	}
}

func TestMaximumCompounding(t *testing.T) {
	vol, acc := newTestVolume(t)
	k := NearestKernel{}
	k.Splat(vol, acc, Maximum{}, geom.Vec3{X: 1, Y: 1, Z: 1}, []float64{100}, 1)
	k.Splat(vol, acc, Maximum{}, geom.Vec3{X: 1, Y: 1, Z: 1}, []float64{50}, 1)
	if got := vol.At(1, 1, 1, 0); got != 100 {
		t.Errorf("Maximum after lower-value paste = %v, want 100 (unchanged)", got)
	}
	k.Splat(vol, acc, Maximum{}, geom.Vec3{X: 1, Y: 1, Z: 1}, []float64{150}, 1)
	if got := vol.At(1, 1, 1, 0); got != 150 {
		t.Errorf("Maximum after higher-value paste = %v, want 150", got)
	}
}

func TestAccumulationOverflowReported(t *testing.T) {
	vol, acc := newTestVolume(t)
	k := NearestKernel{}
	for range 300 {
		if k.Splat(vol, acc, Mean{}, geom.Vec3{X: 2, Y: 2, Z: 2}, []float64{128}, 1) > 0 {
			return
		}
	}
	t.Error("expected Splat to eventually report an accumulation overflow")
}
