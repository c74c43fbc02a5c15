package recon

import (
	"sync"

	"github.com/igsio/volrecon/geom"
	"github.com/igsio/volrecon/voxel"
)

// bufferPool retains Volume/Accumulation pairs by (extent, components,
// kind) so repeated Reset calls that cycle between a small set of
// output resolutions - a common pattern when a user experiments with
// reconstruction resolution - reuse backing storage instead of
// reallocating and leaving the old buffers for the GC.
type bufferPool struct {
	mu           sync.Mutex
	buckets      map[bufferKey][]*bufferPair
	maxPerBucket int
}

type bufferKey struct {
	extent     geom.Extent
	components int
	kind       voxel.Kind
}

type bufferPair struct {
	volume       *voxel.Volume
	accumulation *voxel.Accumulation
}

// newBufferPool creates a pool retaining at most maxPerBucket pairs per
// (extent, components, kind) bucket.
func newBufferPool(maxPerBucket int) *bufferPool {
	return &bufferPool{
		buckets:      make(map[bufferKey][]*bufferPair),
		maxPerBucket: maxPerBucket,
	}
}

// get returns a zeroed Volume/Accumulation pair for the given
// parameters, reusing a pooled pair when one of matching shape is
// available and allocating a fresh pair otherwise.
func (p *bufferPool) get(extent geom.Extent, originX, originY, originZ, spacingX, spacingY, spacingZ float64, components int, kind voxel.Kind) (*voxel.Volume, *voxel.Accumulation, error) {
	key := bufferKey{extent: extent, components: components, kind: kind}

	p.mu.Lock()
	bucket := p.buckets[key]
	var pair *bufferPair
	if len(bucket) > 0 {
		pair = bucket[len(bucket)-1]
		p.buckets[key] = bucket[:len(bucket)-1]
	}
	p.mu.Unlock()

	if pair != nil {
		pair.volume.Rebind(originX, originY, originZ, spacingX, spacingY, spacingZ)
		pair.accumulation.Zero()
		return pair.volume, pair.accumulation, nil
	}

	vol, err := voxel.NewVolume(extent, originX, originY, originZ, spacingX, spacingY, spacingZ, components, kind)
	if err != nil {
		return nil, nil, err
	}
	acc, err := voxel.NewAccumulation(extent)
	if err != nil {
		return nil, nil, err
	}
	return vol, acc, nil
}

// put returns a pair to the pool for later reuse, keyed by its current
// shape. Pairs beyond maxPerBucket are dropped for the GC to reclaim.
func (p *bufferPool) put(vol *voxel.Volume, acc *voxel.Accumulation) {
	if vol == nil || acc == nil {
		return
	}
	key := bufferKey{extent: vol.Extent(), components: vol.Components(), kind: vol.Kind()}

	p.mu.Lock()
	defer p.mu.Unlock()
	bucket := p.buckets[key]
	if p.maxPerBucket > 0 && len(bucket) >= p.maxPerBucket {
		return
	}
	p.buckets[key] = append(bucket, &bufferPair{volume: vol, accumulation: acc})
}
