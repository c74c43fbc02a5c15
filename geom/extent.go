package geom

// Extent is an inclusive integer axis-aligned bounds {x0,x1,y0,y1,z0,z1}.
// The well-formed invariant is x0<=x1 && y0<=y1 && z0<=z1; an empty
// extent is represented by setting x1 < x0, signaling "no work" without
// allocating a sentinel.
type Extent struct {
	X0, X1 int
	Y0, Y1 int
	Z0, Z1 int
}

// EmptyExtent returns the canonical empty extent.
func EmptyExtent() Extent {
	return Extent{X0: 0, X1: -1}
}

// IsEmpty reports whether e has no voxels.
func (e Extent) IsEmpty() bool {
	return e.X1 < e.X0 || e.Y1 < e.Y0 || e.Z1 < e.Z0
}

// SizeX, SizeY, SizeZ return the voxel count along each axis. They
// return 0 for an empty extent.
func (e Extent) SizeX() int {
	if e.IsEmpty() {
		return 0
	}
	return e.X1 - e.X0 + 1
}

func (e Extent) SizeY() int {
	if e.IsEmpty() {
		return 0
	}
	return e.Y1 - e.Y0 + 1
}

func (e Extent) SizeZ() int {
	if e.IsEmpty() {
		return 0
	}
	return e.Z1 - e.Z0 + 1
}

// Contains reports whether (x,y,z) falls within e.
func (e Extent) Contains(x, y, z int) bool {
	return x >= e.X0 && x <= e.X1 &&
		y >= e.Y0 && y <= e.Y1 &&
		z >= e.Z0 && z <= e.Z1
}

// Intersect returns the overlap of e and other. If the two extents do
// not overlap on any axis, the result is empty.
func (e Extent) Intersect(other Extent) Extent {
	out := Extent{
		X0: max(e.X0, other.X0), X1: min(e.X1, other.X1),
		Y0: max(e.Y0, other.Y0), Y1: min(e.Y1, other.Y1),
		Z0: max(e.Z0, other.Z0), Z1: min(e.Z1, other.Z1),
	}
	if out.IsEmpty() {
		return EmptyExtent()
	}
	return out
}

// WidestAxis returns 0, 1 or 2 for the axis (X, Y, Z respectively) with
// the largest voxel count — the orchestrator splits slice extents along
// this axis first, per spec.md's z-then-y-then-x preference when sizes
// tie.
func (e Extent) WidestAxis() int {
	sx, sy, sz := e.SizeX(), e.SizeY(), e.SizeZ()
	axis, best := 2, sz
	if sy > best {
		axis, best = 1, sy
	}
	if sx > best {
		axis = 0
	}
	return axis
}
