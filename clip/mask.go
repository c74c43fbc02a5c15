package clip

import (
	"math"

	"github.com/igsio/volrecon/geom"
)

// Mask is the built, scanline-queryable result of a Spec: a rectangle
// extent plus, for every row, the x-interval(s) remaining after
// rectangle and fan clipping.
type Mask struct {
	extent geom.Extent

	hasFan       bool
	fanOriginX   float64
	fanOriginY   float64
	tanLeft      float64 // already scaled by spacingY/spacingX
	tanRight     float64
	spacingX     float64
	spacingY     float64
	radiusStart2 float64
	radiusStop2  float64
}

// Build converts Spec into a Mask, per spec.md §4.2.
func Build(spec Spec) *Mask {
	m := &Mask{extent: rectPixelExtent(spec)}

	if spec.Fan.IsZero() {
		return m
	}

	angleLeft, angleRight := spec.Fan.AngleLeftDeg, spec.Fan.AngleRightDeg
	if angleLeft > angleRight {
		angleLeft, angleRight = angleRight, angleLeft
	}

	ratio := spec.SpacingY / spec.SpacingX
	m.hasFan = true
	m.fanOriginX = spec.Fan.OriginX
	m.fanOriginY = spec.Fan.OriginY
	m.tanLeft = math.Tan(angleLeft*math.Pi/180) * ratio
	m.tanRight = math.Tan(angleRight*math.Pi/180) * ratio
	m.spacingX = spec.SpacingX
	m.spacingY = spec.SpacingY
	m.radiusStart2 = spec.Fan.RadiusStart * spec.Fan.RadiusStart
	m.radiusStop2 = spec.Fan.RadiusStop * spec.Fan.RadiusStop
	return m
}

// rectPixelExtent converts the mm rectangle clip (or, absent one, the
// full slice extent) to an integer pixel extent: ceil on mins, floor on
// maxes, swapped if inverted, clamped to the slice extent.
func rectPixelExtent(spec Spec) geom.Extent {
	if spec.Rect.IsZero() {
		return spec.SliceExtent
	}

	x0mm, x1mm := spec.Rect.X, spec.Rect.Right()
	y0mm, y1mm := spec.Rect.Y, spec.Rect.Bottom()
	if x1mm < x0mm {
		x0mm, x1mm = x1mm, x0mm
	}
	if y1mm < y0mm {
		y0mm, y1mm = y1mm, y0mm
	}

	toPixX := func(mm float64) float64 { return (mm - spec.OriginX) / spec.SpacingX }
	toPixY := func(mm float64) float64 { return (mm - spec.OriginY) / spec.SpacingY }

	px0, px1 := toPixX(x0mm), toPixX(x1mm)
	if px1 < px0 {
		px0, px1 = px1, px0
	}
	py0, py1 := toPixY(y0mm), toPixY(y1mm)
	if py1 < py0 {
		py0, py1 = py1, py0
	}

	rect := geom.Extent{
		X0: int(math.Ceil(px0)), X1: int(math.Floor(px1)),
		Y0: int(math.Ceil(py0)), Y1: int(math.Floor(py1)),
		Z0: spec.SliceExtent.Z0, Z1: spec.SliceExtent.Z1,
	}
	return rect.Intersect(spec.SliceExtent)
}

// Extent returns the rectangle-clip extent (the bounding box across all
// scanlines).
func (m *Mask) Extent() geom.Extent { return m.extent }

// Interval returns the clip result for scanline y.
func (m *Mask) Interval(y int) ScanlineResult {
	if m.extent.IsEmpty() || y < m.extent.Y0 || y > m.extent.Y1 {
		return ScanlineResult{Kind: Skip}
	}
	xStart, xEnd := m.extent.X0, m.extent.X1

	if !m.hasFan {
		return ScanlineResult{Kind: Single, XStart: xStart, XEnd: xEnd}
	}

	dy := float64(y) - m.fanOriginY

	// Fan triangle: allowed x range at this scanline, relative to the
	// fan origin, is [dy*tanLeft, dy*tanRight] — but a negative dy
	// flips the order, so sort after computing.
	triLo, triHi := dy*m.tanLeft, dy*m.tanRight
	if triHi < triLo {
		triLo, triHi = triHi, triLo
	}
	triLoPix := int(math.Ceil(m.fanOriginX + triLo))
	triHiPix := int(math.Floor(m.fanOriginX + triHi))
	if triLoPix > xStart {
		xStart = triLoPix
	}
	if triHiPix < xEnd {
		xEnd = triHiPix
	}
	if xStart > xEnd {
		return ScanlineResult{Kind: Skip}
	}

	// Outer disk: x^2*sx^2 + dy^2*sy^2 <= radiusStop^2.
	dySq := dy * dy * m.spacingY * m.spacingY
	stopTerm := m.radiusStop2 - dySq
	if stopTerm < 0 {
		return ScanlineResult{Kind: Skip}
	}
	xMaxStop := math.Sqrt(stopTerm) / m.spacingX
	diskLoPix := int(math.Ceil(m.fanOriginX - xMaxStop))
	diskHiPix := int(math.Floor(m.fanOriginX + xMaxStop))
	if diskLoPix > xStart {
		xStart = diskLoPix
	}
	if diskHiPix < xEnd {
		xEnd = diskHiPix
	}
	if xStart > xEnd {
		return ScanlineResult{Kind: Skip}
	}

	if m.radiusStart2 <= 0 {
		return ScanlineResult{Kind: Single, XStart: xStart, XEnd: xEnd}
	}

	// Inner annular hole: x^2*sx^2 + dy^2*sy^2 < radiusStart^2.
	startTerm := m.radiusStart2 - dySq
	if startTerm <= 0 {
		return ScanlineResult{Kind: Single, XStart: xStart, XEnd: xEnd}
	}
	xMaxStart := math.Sqrt(startTerm) / m.spacingX
	holeLo := int(math.Ceil(m.fanOriginX - xMaxStart))
	holeHi := int(math.Floor(m.fanOriginX + xMaxStart))
	if holeLo < xStart {
		holeLo = xStart
	}
	if holeHi > xEnd {
		holeHi = xEnd
	}
	if holeLo > holeHi {
		return ScanlineResult{Kind: Single, XStart: xStart, XEnd: xEnd}
	}
	if holeLo <= xStart && holeHi >= xEnd {
		return ScanlineResult{Kind: Skip}
	}
	return ScanlineResult{Kind: Split, XStart: xStart, XEnd: xEnd, XLo: holeLo, XHi: holeHi}
}
