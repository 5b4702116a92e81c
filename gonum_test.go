package pga

import (
	"math"
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/mat"
)

// The meet of three planes agrees with solving the stacked plane
// equations n·x = -d as a dense linear system.
func TestTripleMeetMatchesLinearSolve(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	checked := 0
	for i := 0; i < 200 && checked < 50; i++ {
		var planes [3]Plane
		A := mat.NewDense(3, 3, nil)
		b := mat.NewVecDense(3, nil)
		for j := range planes {
			nx := r.Float32()*4 - 2
			ny := r.Float32()*4 - 2
			nz := r.Float32()*4 - 2
			d := r.Float32()*4 - 2
			planes[j] = Plane{nx, ny, nz, d}
			A.SetRow(j, []float64{float64(nx), float64(ny), float64(nz)})
			b.SetVec(j, -float64(d))
		}
		if math.Abs(mat.Det(A)) < 0.5 {
			continue
		}
		var x mat.VecDense
		if err := x.SolveVec(A, b); err != nil {
			continue
		}

		p := MeetPlanes(planes[0], planes[1], planes[2])
		if !p.IsValid() {
			t.Fatalf("planes %+v: meet is ideal: %+v", planes, p)
		}
		v := p.Vec3()
		for k := 0; k < 3; k++ {
			want := x.AtVec(k)
			if diff := math.Abs(float64(v[k]) - want); diff > 1e-3*(1+math.Abs(want)) {
				t.Errorf("planes %+v component %d: meet %v, solve %v", planes, k, v[k], want)
			}
		}
		checked++
	}
	if checked < 20 {
		t.Fatalf("only %d well-conditioned systems checked", checked)
	}
}
