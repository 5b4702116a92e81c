package pga

// Norms, validity, normalization and the approximate-equality contract.
// IsZero asks whether an entity is the additive identity within machine
// epsilon; IsValid asks whether its weight is non-negligible, which is
// what decides geometric properness. Unitize divides every coordinate by
// the weight norm and is undefined on a zero-weight entity: guard with
// IsValid first.

func (d Direction) NormSq() float32 { return d.X*d.X + d.Y*d.Y + d.Z*d.Z }
func (d Direction) Norm() float32   { return sqrt(d.NormSq()) }
func (d Direction) IsZero() bool    { return d.NormSq() <= eps32 }
func (d Direction) IsValid() bool   { return d.Norm() > eps32 }

// Unitized returns d scaled to unit length, or the zero direction if d
// has negligible norm.
func (d Direction) Unitized() Direction {
	n := d.Norm()
	if n <= eps32 {
		return Direction{}
	}
	return Direction{d.X / n, d.Y / n, d.Z / n}
}

// Unitize rescales d in place to unit length.
func (d *Direction) Unitize() *Direction {
	*d = d.Unitized()
	return d
}

func (o Origin) NormSq() float32 { return o.W * o.W }
func (o Origin) Norm() float32   { return sqrt(o.NormSq()) }
func (o Origin) IsZero() bool    { return o.NormSq() <= eps32 }
func (o Origin) IsValid() bool   { return o.Norm() > eps32 }

func (h Horizon) NormSq() float32 { return h.W * h.W }
func (h Horizon) Norm() float32   { return sqrt(h.NormSq()) }
func (h Horizon) IsZero() bool    { return h.NormSq() <= eps32 }
func (h Horizon) IsValid() bool   { return h.Norm() > eps32 }

func (p Point) NormSq() float32 { return p.X*p.X + p.Y*p.Y + p.Z*p.Z + p.W*p.W }
func (p Point) Norm() float32   { return sqrt(p.NormSq()) }
func (p Point) IsZero() bool    { return p.NormSq() <= eps32 }

// IsValid reports whether p is a proper finite point rather than an ideal
// one.
func (p Point) IsValid() bool { return p.Weight().Norm() > eps32 }

// Unitized returns p rescaled so its weight has unit magnitude.
func (p Point) Unitized() Point {
	inv := 1 / p.Weight().Norm()
	return Point{p.X * inv, p.Y * inv, p.Z * inv, p.W * inv}
}

// Unitize rescales p in place so its weight has unit magnitude.
func (p *Point) Unitize() *Point {
	*p = p.Unitized()
	return p
}

func (d LineDirection) NormSq() float32 { return d.X*d.X + d.Y*d.Y + d.Z*d.Z }
func (d LineDirection) Norm() float32   { return sqrt(d.NormSq()) }
func (d LineDirection) IsZero() bool    { return d.NormSq() <= eps32 }
func (d LineDirection) IsValid() bool   { return d.Norm() > eps32 }

func (m LineMoment) NormSq() float32 { return m.X*m.X + m.Y*m.Y + m.Z*m.Z }
func (m LineMoment) Norm() float32   { return sqrt(m.NormSq()) }
func (m LineMoment) IsZero() bool    { return m.NormSq() <= eps32 }
func (m LineMoment) IsValid() bool   { return m.Norm() > eps32 }

func (l Line) NormSq() float32 {
	return l.VX*l.VX + l.VY*l.VY + l.VZ*l.VZ + l.MX*l.MX + l.MY*l.MY + l.MZ*l.MZ
}
func (l Line) Norm() float32 { return sqrt(l.NormSq()) }
func (l Line) IsZero() bool  { return l.NormSq() <= eps32 }

// IsValid reports whether l is a proper line rather than an ideal one.
func (l Line) IsValid() bool { return l.Weight().Norm() > eps32 }

// Unitized returns l rescaled so its direction has unit length.
func (l Line) Unitized() Line {
	inv := 1 / l.Weight().Norm()
	return Line{l.VX * inv, l.VY * inv, l.VZ * inv, l.MX * inv, l.MY * inv, l.MZ * inv}
}

// Unitize rescales l in place so its direction has unit length.
func (l *Line) Unitize() *Line {
	*l = l.Unitized()
	return l
}

func (d PlaneDirection) NormSq() float32 { return d.X*d.X + d.Y*d.Y + d.Z*d.Z }
func (d PlaneDirection) Norm() float32   { return sqrt(d.NormSq()) }
func (d PlaneDirection) IsZero() bool    { return d.NormSq() <= eps32 }
func (d PlaneDirection) IsValid() bool   { return d.Norm() > eps32 }

func (p Plane) NormSq() float32 { return p.X*p.X + p.Y*p.Y + p.Z*p.Z + p.W*p.W }
func (p Plane) Norm() float32   { return sqrt(p.NormSq()) }
func (p Plane) IsZero() bool    { return p.NormSq() <= eps32 }

// IsValid reports whether p has a non-negligible normal.
func (p Plane) IsValid() bool { return p.Weight().Norm() > eps32 }

// Unitized returns p rescaled so its normal has unit length.
func (p Plane) Unitized() Plane {
	inv := 1 / p.Weight().Norm()
	return Plane{p.X * inv, p.Y * inv, p.Z * inv, p.W * inv}
}

// Unitize rescales p in place so its normal has unit length.
func (p *Plane) Unitize() *Plane {
	*p = p.Unitized()
	return p
}

// Approximate equality, componentwise absolute difference within epsilon.
// Exact comparison is never meaningful here: every operator is a sum of
// floating-point products.

func (d Direction) ApproxEq(o Direction) bool { return d.ApproxEqEps(o, DefaultEpsilon) }
func (d Direction) ApproxEqEps(o Direction, epsilon float32) bool {
	return eq(d.X, o.X, epsilon) && eq(d.Y, o.Y, epsilon) && eq(d.Z, o.Z, epsilon)
}

func (a Origin) ApproxEq(b Origin) bool { return a.ApproxEqEps(b, DefaultEpsilon) }
func (a Origin) ApproxEqEps(b Origin, epsilon float32) bool {
	return eq(a.W, b.W, epsilon)
}

func (a Horizon) ApproxEq(b Horizon) bool { return a.ApproxEqEps(b, DefaultEpsilon) }
func (a Horizon) ApproxEqEps(b Horizon, epsilon float32) bool {
	return eq(a.W, b.W, epsilon)
}

func (p Point) ApproxEq(q Point) bool { return p.ApproxEqEps(q, DefaultEpsilon) }
func (p Point) ApproxEqEps(q Point, epsilon float32) bool {
	return eq(p.X, q.X, epsilon) && eq(p.Y, q.Y, epsilon) &&
		eq(p.Z, q.Z, epsilon) && eq(p.W, q.W, epsilon)
}

func (d LineDirection) ApproxEq(o LineDirection) bool { return d.ApproxEqEps(o, DefaultEpsilon) }
func (d LineDirection) ApproxEqEps(o LineDirection, epsilon float32) bool {
	return eq(d.X, o.X, epsilon) && eq(d.Y, o.Y, epsilon) && eq(d.Z, o.Z, epsilon)
}

func (m LineMoment) ApproxEq(o LineMoment) bool { return m.ApproxEqEps(o, DefaultEpsilon) }
func (m LineMoment) ApproxEqEps(o LineMoment, epsilon float32) bool {
	return eq(m.X, o.X, epsilon) && eq(m.Y, o.Y, epsilon) && eq(m.Z, o.Z, epsilon)
}

func (l Line) ApproxEq(o Line) bool { return l.ApproxEqEps(o, DefaultEpsilon) }
func (l Line) ApproxEqEps(o Line, epsilon float32) bool {
	return eq(l.VX, o.VX, epsilon) && eq(l.VY, o.VY, epsilon) &&
		eq(l.VZ, o.VZ, epsilon) && eq(l.MX, o.MX, epsilon) &&
		eq(l.MY, o.MY, epsilon) && eq(l.MZ, o.MZ, epsilon)
}

func (d PlaneDirection) ApproxEq(o PlaneDirection) bool { return d.ApproxEqEps(o, DefaultEpsilon) }
func (d PlaneDirection) ApproxEqEps(o PlaneDirection, epsilon float32) bool {
	return eq(d.X, o.X, epsilon) && eq(d.Y, o.Y, epsilon) && eq(d.Z, o.Z, epsilon)
}

func (p Plane) ApproxEq(q Plane) bool { return p.ApproxEqEps(q, DefaultEpsilon) }
func (p Plane) ApproxEqEps(q Plane, epsilon float32) bool {
	return eq(p.X, q.X, epsilon) && eq(p.Y, q.Y, epsilon) &&
		eq(p.Z, q.Z, epsilon) && eq(p.W, q.W, epsilon)
}
