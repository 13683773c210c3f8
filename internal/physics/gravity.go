package physics

import "math"

const (
	// G is the gravitational constant (m^3 kg^-1 s^-2).
	G = 6.67430e-11

	// Softening is added to each pair distance after the square root. It
	// bounds the direction normalization for nearly coincident bodies
	// without measurably perturbing well-separated pairs.
	Softening = 1e-10
)

// Accelerations overwrites every body's acceleration with the net
// Newtonian attraction from every other body. Each unordered pair is
// visited once in index order (i < j) and contributes equal and opposite
// accelerations, so accumulation order is deterministic for a fixed body
// ordering. Positions and history are left untouched. Zero or one bodies
// is a no-op.
func Accelerations(bodies []*Body) {
	for _, b := range bodies {
		b.Acc = Vec2{}
	}
	for i := 0; i < len(bodies); i++ {
		for j := i + 1; j < len(bodies); j++ {
			accumulatePair(bodies[i], bodies[j])
		}
	}
}

func accumulatePair(bi, bj *Body) {
	d := bj.Pos.Sub(bi.Pos)
	r2 := d.NormSq()
	r := math.Sqrt(r2) + Softening

	f := G * bi.Mass * bj.Mass / r2
	fv := d.Scale(f / r)

	bi.Acc = bi.Acc.Add(fv.Scale(1 / bi.Mass))
	bj.Acc = bj.Acc.Sub(fv.Scale(1 / bj.Mass))
}
