package geom

// Mat4 is a 4x4 row-major homogeneous transformation matrix: the
// slice-to-reference transform of spec.md §4.1, and the composed
// reference-to-volume-index transform the orchestrator derives from
// it plus the output volume's origin and spacing.
type Mat4 struct {
	M [4][4]float64
}

// Identity4 returns the 4x4 identity matrix.
func Identity4() Mat4 {
	var m Mat4
	for i := range 4 {
		m.M[i][i] = 1
	}
	return m
}

// Translate4 returns a translation matrix that shifts points by (tx, ty, tz).
func Translate4(tx, ty, tz float64) Mat4 {
	m := Identity4()
	m.M[0][3] = tx
	m.M[1][3] = ty
	m.M[2][3] = tz
	return m
}

// Scale4 returns a scaling matrix that scales by (sx, sy, sz) around the origin.
func Scale4(sx, sy, sz float64) Mat4 {
	m := Identity4()
	m.M[0][0] = sx
	m.M[1][1] = sy
	m.M[2][2] = sz
	return m
}

// Multiply returns the result of multiplying m by other: applies other
// first, then m. Equivalent to matrix multiplication m*other.
func (m Mat4) Multiply(other Mat4) Mat4 {
	var out Mat4
	for i := range 4 {
		for j := range 4 {
			var sum float64
			for k := range 4 {
				sum += m.M[i][k] * other.M[k][j]
			}
			out.M[i][j] = sum
		}
	}
	return out
}

// Apply4x4 applies m to p, computing q_i = sum_j M[i,j]*p_j then
// dividing x, y, z by w per spec.md §4.1.
func Apply4x4(m Mat4, p Vec3) Vec3 {
	in := Vec4From3(p)
	var out Vec4
	out.X = m.M[0][0]*in.X + m.M[0][1]*in.Y + m.M[0][2]*in.Z + m.M[0][3]*in.W
	out.Y = m.M[1][0]*in.X + m.M[1][1]*in.Y + m.M[1][2]*in.Z + m.M[1][3]*in.W
	out.Z = m.M[2][0]*in.X + m.M[2][1]*in.Y + m.M[2][2]*in.Z + m.M[2][3]*in.W
	out.W = m.M[3][0]*in.X + m.M[3][1]*in.Y + m.M[3][2]*in.Z + m.M[3][3]*in.W
	return out.Vec3()
}

// Column returns column j of m as a Vec3 of its first three rows,
// discarding the homogeneous row — used by the walker to derive the
// per-axis step vectors x̂, ŷ, ẑ from the composed transform.
func (m Mat4) Column(j int) Vec3 {
	return Vec3{m.M[0][j], m.M[1][j], m.M[2][j]}
}

// Invert returns the inverse of m and true, or a zero Mat4 and false if
// m is singular. Used to invert the slice-to-reference transform when
// a caller needs the reference-to-slice direction.
func (m Mat4) Invert() (Mat4, bool) {
	a := m.M
	var inv [4][4]float64
	var cof [4][4]float64

	minor := func(r, c int) float64 {
		var rows, cols [3]int
		ri, ci := 0, 0
		for i := 0; i < 4; i++ {
			if i != r {
				rows[ri] = i
				ri++
			}
			if i != c {
				cols[ci] = i
				ci++
			}
		}
		return a[rows[0]][cols[0]]*(a[rows[1]][cols[1]]*a[rows[2]][cols[2]]-a[rows[1]][cols[2]]*a[rows[2]][cols[1]]) -
			a[rows[0]][cols[1]]*(a[rows[1]][cols[0]]*a[rows[2]][cols[2]]-a[rows[1]][cols[2]]*a[rows[2]][cols[0]]) +
			a[rows[0]][cols[2]]*(a[rows[1]][cols[0]]*a[rows[2]][cols[1]]-a[rows[1]][cols[1]]*a[rows[2]][cols[0]])
	}

	for r := range 4 {
		for c := range 4 {
			sign := 1.0
			if (r+c)%2 == 1 {
				sign = -1.0
			}
			cof[r][c] = sign * minor(r, c)
		}
	}

	det := a[0][0]*cof[0][0] + a[0][1]*cof[0][1] + a[0][2]*cof[0][2] + a[0][3]*cof[0][3]
	if det == 0 {
		return Mat4{}, false
	}
	invDet := 1 / det

	for r := range 4 {
		for c := range 4 {
			inv[c][r] = cof[r][c] * invDet
		}
	}
	return Mat4{M: inv}, true
}
