package pga

import "math/bits"

// Basis vectors of the algebra given as a bitmap of independent vectors.
// The metric is degenerate: e1, e2 and e3 square to +1 while e4 squares
// to 0. Some texts write the degenerate vector e0 when naming the weight
// of a point; here it is e4 throughout.
const (
	E1 uint8 = 1 << iota
	E2
	E3
	E4
)

// Blades carrying the coordinates stored by the entity types. Vectors
// e1..e4 span points and directions, bivectors span lines, trivectors
// span planes. Order within a name fixes the sign convention; account
// for sign changes when reading coordinates off a differently ordered
// source.
const (
	E41 = E4 | E1
	E42 = E4 | E2
	E43 = E4 | E3
	E23 = E2 | E3
	E31 = E3 | E1
	E12 = E1 | E2

	E423 = E4 | E2 | E3
	E431 = E4 | E3 | E1
	E412 = E4 | E1 | E2
	E321 = E3 | E2 | E1
)

// GradeOf returns the number of independent basis vectors of blade b.
func GradeOf(b uint8) int { return bits.OnesCount8(b) }

// AntiGradeOf returns the grade of the complement of blade b.
func AntiGradeOf(b uint8) int { return 4 - GradeOf(b) }

// Degenerate reports whether blade b contains the degenerate direction
// and therefore squares to zero.
func Degenerate(b uint8) bool { return b&E4 != 0 }
