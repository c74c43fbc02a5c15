package walk

import (
	"math"
	"testing"

	"github.com/igsio/volrecon/clip"
	"github.com/igsio/volrecon/geom"
	"github.com/igsio/volrecon/splat"
	"github.com/igsio/volrecon/voxel"
)

func buildTestSlice(t *testing.T, w, h int, value float64) *voxel.Slice {
	t.Helper()
	data := make([]byte, w*h)
	for i := range data {
		data[i] = byte(value)
	}
	s, err := voxel.NewSlice(w, h, 0, 0, 0, 1, 1, 1, 1, voxel.KindUint8, data)
	if err != nil {
		t.Fatalf("NewSlice() error = %v", err)
	}
	return s
}

func buildTestVolume(t *testing.T, ext geom.Extent) (*voxel.Volume, *voxel.Accumulation) {
	t.Helper()
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

func paramsForIdentity(slice *voxel.Slice, vol *voxel.Volume, acc *voxel.Accumulation) Params {
	ext := slice.Extent()
	return Params{
		Slice:           slice,
		Volume:          vol,
		Accumulation:    acc,
		Transform:       geom.Identity4(),
		Kernel:          splat.NearestKernel{},
		Compounder:      splat.Latest{},
		RejectThreshold: math.Inf(-1),
		XRange:          [2]int{ext.X0, ext.X1},
		YRange:          [2]int{ext.Y0, ext.Y1},
		ZRange:          [2]int{ext.Z0, ext.Z1},
	}
}

// TestFastAndRefWalkersAgree is the S1-shaped oracle check: identity
// transform, nearest-neighbor, Latest compounding, both walkers must
// produce the same plane.
func TestFastAndRefWalkersAgree(t *testing.T) {
	slice := buildTestSlice(t, 10, 10, 200)
	volExt := geom.Extent{X0: 0, X1: 9, Y0: 0, Y1: 9, Z0: 0, Z1: 9}

	fastVol, fastAcc := buildTestVolume(t, volExt)
	FastWalker{}.Walk(paramsForIdentity(slice, fastVol, fastAcc))

	refVol, refAcc := buildTestVolume(t, volExt)
	RefWalker{}.Walk(paramsForIdentity(slice, refVol, refAcc))

	for x := 0; x < 10; x++ {
		for y := 0; y < 10; y++ {
			fv := fastVol.At(x, y, 0, 0)
			rv := refVol.At(x, y, 0, 0)
			if math.Abs(fv-rv) > 1 {
				t.Fatalf("volume mismatch at (%d,%d): fast=%v ref=%v", x, y, fv, rv)
			}
			fa := fastAcc.At(x, y, 0)
			ra := refAcc.At(x, y, 0)
			if fa > ra+1 || ra > fa+1 {
				t.Fatalf("accumulation mismatch at (%d,%d): fast=%v ref=%v", x, y, fa, ra)
			}
		}
	}
}

func TestS1IdentityNearestLatest(t *testing.T) {
	slice := buildTestSlice(t, 10, 10, 200)
	volExt := geom.Extent{X0: 0, X1: 9, Y0: 0, Y1: 9, Z0: 0, Z1: 9}
	vol, acc := buildTestVolume(t, volExt)

	FastWalker{}.Walk(paramsForIdentity(slice, vol, acc))

	for x := 0; x < 10; x++ {
		for y := 0; y < 10; y++ {
			if got := vol.At(x, y, 0, 0); got != 200 {
				t.Fatalf("plane z=0 at (%d,%d) = %v, want 200", x, y, got)
			}
			if got := acc.At(x, y, 0); got != 256 {
				t.Fatalf("acc plane z=0 at (%d,%d) = %v, want 256", x, y, got)
			}
			if got := vol.At(x, y, 1, 0); got != 0 {
				t.Fatalf("plane z=1 at (%d,%d) = %v, want 0", x, y, got)
			}
		}
	}
}

func TestFanClipSkipsOutsideSector(t *testing.T) {
	slice := buildTestSlice(t, 64, 64, 200)
	volExt := geom.Extent{X0: 0, X1: 63, Y0: 0, Y1: 63, Z0: 0, Z1: 0}
	vol, acc := buildTestVolume(t, volExt)

	mask := clip.Build(clip.Spec{
		SliceExtent: slice.Extent(),
		SpacingX:    1, SpacingY: 1,
		Fan: clip.Fan{OriginX: 32, OriginY: 0, AngleLeftDeg: -30, AngleRightDeg: 30, RadiusStop: 60},
	})

	params := paramsForIdentity(slice, vol, acc)
	params.Clip = mask
	FastWalker{}.Walk(params)

	if got := acc.At(0, 63, 0); got != 0 {
		t.Errorf("acc at corner outside fan sector = %v, want 0", got)
	}
}
