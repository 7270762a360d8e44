package paths

import (
	"math"

	"github.com/adammck/pathtool"
	"github.com/adammck/pathtool/legs"
	"github.com/adammck/pathtool/math3d"
	"github.com/adammck/pathtool/posture"
)

func init() {
	Register("walk", walk)
	Register("turn", turn)
	Register("rotate", rotate)
	Register("twist", twist)
}

// Semicircle returns one step cycle of a single foot, as displacements from
// home. The foot pushes back from +radius to -radius along Y on the ground,
// then swings forward along a semicircle above it. The cycle is rotated by a
// quarter, so it starts at the top of the swing, directly above home, and is
// back at home (mid-stance) half way through.
func Semicircle(radius float64, steps int) ([]math3d.Vector3, error) {
	if steps <= 0 || steps%4 != 0 {
		return nil, pathtool.InvalidArgument("steps must be a positive multiple of four, got %d", steps)
	}

	half := steps / 2
	path := make([]math3d.Vector3, 0, steps)

	for i := 0; i < half; i++ {
		path = append(path, math3d.Vector3{Y: radius - 2*radius*float64(i)/float64(half)})
	}

	for i := 0; i < half; i++ {
		a := math.Pi - math.Pi*float64(i)/float64(half)
		path = append(path, math3d.Vector3{Y: radius * math.Cos(a), Z: radius * math.Sin(a)})
	}

	return rotatePath(path, steps/4), nil
}

// tripod builds a shift path from a single foot cycle. Alternate legs run half
// a cycle apart, and each leg's cycle is rotated by the angle given for it.
func tripod(s Spec, angle func(legs.HexLeg) float64) (pathtool.HexPath, error) {
	steps := s.steps()
	path, err := Semicircle(s.radius(), steps)
	if err != nil {
		return pathtool.HexPath{}, err
	}

	half := steps / 2
	mirrored := rotatePath(path, half)

	p := pathtool.HexPath{
		Mode:         pathtool.ShiftMode,
		Shift:        make([]pathtool.HexFrame, steps),
		StepDuration: s.duration(),
		Entries:      []int{0, half},
	}

	for _, l := range legs.HexLegs {
		src := path
		if l%2 == 1 {
			src = mirrored
		}

		for i, v := range src {
			p.Shift[i][l] = v.RotateZ(angle(l))
		}
	}

	return p, nil
}

// walk moves the whole body in the direction of the heading: 0 is forwards,
// 90 is left.
func walk(s Spec) (pathtool.HexPath, error) {
	return tripod(s, func(legs.HexLeg) float64 {
		return s.Heading
	})
}

// turn moves every foot across its own leg heading, which spins the body on
// the spot. Counter-clockwise unless clockwise is set.
func turn(s Spec) (pathtool.HexPath, error) {
	return tripod(s, func(l legs.HexLeg) float64 {
		if s.Clockwise {
			return l.Heading() + 180
		}

		return l.Heading()
	})
}

// rotate rocks the body about one axis, with the feet planted.
func rotate(s Spec) (pathtool.HexPath, error) {
	a, err := posture.ParseAxis(s.Axis)
	if err != nil {
		return pathtool.HexPath{}, err
	}

	ms, err := posture.RotationMatrices(a, s.angle(), s.steps())
	if err != nil {
		return pathtool.HexPath{}, err
	}

	return matrixPath(ms, s), nil
}

// twist swings the body from side to side about Z, with the feet planted.
func twist(s Spec) (pathtool.HexPath, error) {
	ms, err := posture.TwistMatrices(s.angle(), s.steps())
	if err != nil {
		return pathtool.HexPath{}, err
	}

	return matrixPath(ms, s), nil
}

// matrixPath wraps body transforms as a path. Rotations and twists both pass
// through home at the start and half way.
func matrixPath(ms []math3d.Matrix44, s Spec) pathtool.HexPath {
	return pathtool.HexPath{
		Mode:         pathtool.MatrixMode,
		Matrices:     ms,
		StepDuration: s.duration(),
		Entries:      []int{0, len(ms) / 2},
	}
}

// rotatePath returns a copy of the path rotated right by k frames.
func rotatePath(path []math3d.Vector3, k int) []math3d.Vector3 {
	n := len(path)
	out := make([]math3d.Vector3, n)
	for i := range path {
		out[i] = path[((i-k)%n+n)%n]
	}

	return out
}
