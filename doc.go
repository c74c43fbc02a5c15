// Package volrecon implements freehand 3D ultrasound volume reconstruction:
// pasting a time-ordered stream of 2D slices, each with a slice-to-reference
// transform, into a shared voxel grid.
//
// # Overview
//
// A caller configures a [recon.Orchestrator] with an output volume extent,
// spacing and origin, then repeatedly calls InsertSlice with a decoded 2D
// slice and its 4x4 image-to-reference transform. Each call splats the
// slice's pixels into the volume under a chosen interpolation kernel
// ([splat.Kernel]) and compounding rule ([splat.Compounder]), tracking
// deposited weight in a parallel accumulation buffer.
//
// # Packages
//
//   - geom: fixed-point and floating-point geometry primitives
//   - voxel: the slice/volume/accumulation-buffer data model
//   - clip: rectangular and curvilinear (fan) scanline masking
//   - splat: interpolation kernels and compounding rules
//   - walk: optimized and reference scanline walkers
//   - recon: the slice-paste orchestrator (the public entry point)
//   - xfrm: the named coordinate-frame transform repository
//   - sliceio: decoded-frame adapters for loading slices in tests and tools
//
// # Logging
//
// volrecon produces no log output unless [SetLogger] is called. All
// sub-packages share one logger, set and read through [SetLogger] and
// [Logger].
package volrecon
