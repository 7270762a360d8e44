package gait

import (
	"math"

	"github.com/adammck/pathtool/legs"
	"github.com/adammck/pathtool/math3d"
)

// The reference waveforms below give the displacement of a single leg from its
// home position, with the stride along Y (forward is positive) and the lift
// along Z. Every stage lasts n ticks; t counts from zero within a stage.
//
// The other legs are phase-shifted copies of a reference leg, made by rotating
// the whole cycle by a whole number of stages.

// swing is the lift stage shared by every gait: the foot travels from -stride
// to +stride along a half sine of height lift.
func swing(t, n int, stride, lift float64) math3d.Vector3 {
	a := math.Pi * float64(t) / float64(n)
	return math3d.Vector3{Y: -stride * math.Cos(a), Z: lift * math.Sin(a)}
}

// Two stages: lift, then a cosine stance back to the start. Diagonal pairs
// move together.
//
// |-lift-|stance|  FR, BL
// |stance|-lift-|  FL, BR
func trotLegs(n int, p Params) [legs.NumQuadLegs][]math3d.Vector3 {
	ref := make([]math3d.Vector3, n*2)

	for t := 0; t < n; t++ {
		ref[t] = swing(t, n, p.AmplitudeX, math.Abs(p.AmplitudeZ))
		ref[n+t] = math3d.Vector3{Y: p.AmplitudeX * math.Cos(math.Pi*float64(t)/float64(n))}
	}

	other := rotate(ref, n)

	return [legs.NumQuadLegs][]math3d.Vector3{
		legs.FrontRight: ref,
		legs.BackRight:  other,
		legs.BackLeft:   ref,
		legs.FrontLeft:  other,
	}
}

// Four stages: one lift, then a linear stance over the other three. Only one
// leg is in the air at a time, so the stride is stretched by half to cover the
// same ground.
func singleLiftRef(n int, p Params) []math3d.Vector3 {
	ref := make([]math3d.Vector3, n*4)
	stride := p.AmplitudeX * 1.5

	for t := 0; t < n; t++ {
		ref[t] = swing(t, n, stride, math.Abs(p.AmplitudeZ))
	}

	for s := 1; s < 4; s++ {
		for t := 0; t < n; t++ {
			f := float64((s-1)*n+t) / float64(3*n)
			ref[s*n+t] = math3d.Vector3{Y: stride - (stride * 2 * f)}
		}
	}

	return ref
}

// Lift order FL, BR, FR, BL.
func walkLegs(n int, p Params) [legs.NumQuadLegs][]math3d.Vector3 {
	ref := singleLiftRef(n, p)

	return [legs.NumQuadLegs][]math3d.Vector3{
		legs.FrontRight: rotate(ref, n*2),
		legs.BackRight:  rotate(ref, n*1),
		legs.BackLeft:   rotate(ref, n*3),
		legs.FrontLeft:  ref,
	}
}

// Lift order FL, FR, BR, BL.
func gallopLegs(n int, p Params) [legs.NumQuadLegs][]math3d.Vector3 {
	ref := singleLiftRef(n, p)

	return [legs.NumQuadLegs][]math3d.Vector3{
		legs.FrontRight: rotate(ref, n*1),
		legs.BackRight:  rotate(ref, n*2),
		legs.BackLeft:   rotate(ref, n*3),
		legs.FrontLeft:  ref,
	}
}

// Six stages, with two reference legs (FR and BL). The body shifts between
// lifts, so each leg holds still for part of the cycle. Strides are doubled and
// lifts raised by half, since three legs are always planted.
//
// stage: |  0  |  1  |  2  |  3  |  4  |  5  |
// FR:    | lift|  ->0| hold| hold| 0-> | hold|
// BL:    | hold| 0-> | lift| hold|  ->0| hold|
func creepLegs(n int, p Params) [legs.NumQuadLegs][]math3d.Vector3 {
	fr := make([]math3d.Vector3, n*6)
	bl := make([]math3d.Vector3, n*6)

	stride := p.AmplitudeX * 2
	lift := math.Abs(p.AmplitudeZ) * 1.5

	for t := 0; t < n; t++ {
		q := math.Pi / 2 * float64(t) / float64(n)

		fr[0*n+t] = swing(t, n, stride, lift)
		fr[1*n+t] = math3d.Vector3{Y: stride * math.Cos(q)}
		fr[4*n+t] = math3d.Vector3{Y: -stride * math.Sin(q)}
		fr[5*n+t] = math3d.Vector3{Y: -stride}

		bl[1*n+t] = math3d.Vector3{Y: -stride * math.Sin(q)}
		bl[2*n+t] = swing(t, n, stride, lift)
		bl[3*n+t] = math3d.Vector3{Y: stride}
		bl[4*n+t] = math3d.Vector3{Y: stride * math.Cos(q)}
	}

	half := n * 3

	return [legs.NumQuadLegs][]math3d.Vector3{
		legs.FrontRight: fr,
		legs.BackRight:  rotate(bl, half),
		legs.BackLeft:   bl,
		legs.FrontLeft:  rotate(fr, half),
	}
}

// rotate returns a copy of the path rotated right by k ticks, so that
// out[i] = in[(i-k) mod N].
func rotate(path []math3d.Vector3, k int) []math3d.Vector3 {
	n := len(path)
	out := make([]math3d.Vector3, n)
	for i := range path {
		out[i] = path[((i-k)%n+n)%n]
	}

	return out
}
