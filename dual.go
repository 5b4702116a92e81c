package pga

// Duality maps an entity to its orthogonal complement. The pairing and the
// signs are fixed once and relied on by every composed operator:
//
//	Direction     -> PlaneDirection  identity
//	PlaneDirection-> Direction       negated
//	LineDirection -> LineMoment      negated
//	LineMoment    -> LineDirection   negated
//	Origin        -> Horizon         identity
//	Horizon       -> Origin          negated
//
// Applying Dual twice negates Direction, PlaneDirection, Origin and
// Horizon and restores LineDirection and LineMoment unchanged.

// Dual returns the orthogonal complement of d.
func (d Direction) Dual() PlaneDirection { return PlaneDirection{d.X, d.Y, d.Z} }

// Dual returns the orthogonal complement of d.
func (d PlaneDirection) Dual() Direction { return Direction{-d.X, -d.Y, -d.Z} }

// Dual returns the orthogonal complement of d.
func (d LineDirection) Dual() LineMoment { return LineMoment{-d.X, -d.Y, -d.Z} }

// Dual returns the orthogonal complement of m.
func (m LineMoment) Dual() LineDirection { return LineDirection{-m.X, -m.Y, -m.Z} }

// Dual returns the orthogonal complement of o.
func (o Origin) Dual() Horizon { return Horizon{o.W} }

// Dual returns the orthogonal complement of h.
func (h Horizon) Dual() Origin { return Origin{-h.W} }
