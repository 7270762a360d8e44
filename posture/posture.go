package posture

import (
	"fmt"
	"math"

	"github.com/adammck/pathtool"
	"github.com/adammck/pathtool/math3d"
)

// Axis is a body axis to rotate about.
type Axis string

const (
	AxisX Axis = "x"
	AxisY Axis = "y"
	AxisZ Axis = "z"
)

var Axes = []Axis{AxisX, AxisY, AxisZ}

const (

	// How far (in degrees) the body tips back as it twists to either side.
	twistRaiseDeg = 3.0

	// The sideways roll of a twist, relative to its yaw.
	twistRollRatio = 12.0 / 20.0
)

func ParseAxis(s string) (Axis, error) {
	for _, a := range Axes {
		if string(a) == s {
			return a, nil
		}
	}

	return "", pathtool.InvalidArgument("unknown axis %q", s)
}

func rotation(a Axis, deg float64) math3d.Matrix44 {
	switch a {
	case AxisX:
		return math3d.MakeRotationX(deg)
	case AxisY:
		return math3d.MakeRotationY(deg)
	}

	return math3d.MakeRotationZ(deg)
}

// RotationMatrices returns one cycle of a body rocking about the given axis
// through the origin: 0, up to +max, back through 0 to -max, and back again.
// The first frame is the identity, so the movement can start from standby.
func RotationMatrices(a Axis, maxDeg float64, steps int) ([]math3d.Matrix44, error) {
	if _, err := ParseAxis(string(a)); err != nil {
		return nil, err
	}

	if steps <= 0 {
		return nil, pathtool.InvalidArgument("steps must be positive, got %d", steps)
	}

	out := make([]math3d.Matrix44, steps)
	for i := range out {
		deg := maxDeg * math.Sin(2*math.Pi*float64(i)/float64(steps))
		out[i] = rotation(a, deg)
	}

	return out, nil
}

// TwistMatrices returns one cycle of a body twisting about Z to either side,
// rolling about X as it goes, and tipping back in proportion to the twist. It
// moves in four linear quarters, and the first frame is the identity.
func TwistMatrices(maxDeg float64, steps int) ([]math3d.Matrix44, error) {
	if steps <= 0 || steps%4 != 0 {
		return nil, pathtool.InvalidArgument("twist steps must be a positive multiple of four, got %d", steps)
	}

	q := steps / 4
	stepZ := maxDeg / float64(q)
	stepX := maxDeg * twistRollRatio / float64(q)

	twist := func(z, x float64) math3d.Matrix44 {
		ramp := 0.0
		if math.Abs(maxDeg) > 1e-6 {
			ramp = math.Abs(z) / math.Abs(maxDeg)
		}

		return math3d.MakeRotationX(twistRaiseDeg * ramp).
			Multiply(math3d.MakeRotationZ(z)).
			Multiply(math3d.MakeRotationX(x))
	}

	out := make([]math3d.Matrix44, 0, steps)
	for i := 0; i < q; i++ {
		out = append(out, twist(float64(i)*stepZ, float64(i)*stepX))
	}

	for i := 0; i < q; i++ {
		out = append(out, twist(float64(q-i)*stepZ, float64(q-i)*stepX))
	}

	for i := 0; i < q; i++ {
		out = append(out, twist(-float64(i)*stepZ, float64(i)*stepX))
	}

	for i := 0; i < q; i++ {
		out = append(out, twist(float64(-q+i)*stepZ, float64(q-i)*stepX))
	}

	return out, nil
}

// Apply returns the displacements from home caused by moving the body by each
// matrix in turn.
func Apply(home pathtool.QuadFrame, ms []math3d.Matrix44, durationMs int, entries []int) pathtool.Trajectory {
	t := pathtool.Trajectory{
		Frames:       make([]pathtool.QuadFrame, len(ms)),
		StepDuration: durationMs,
		Entries:      entries,
	}

	for i, m := range ms {
		for l, h := range home {
			t.Frames[i][l] = h.Transform(m).Subtract(h)
		}
	}

	return t
}

// Params configure the quadruped posture tables.
type Params struct {
	MaxDeg      float64
	TwistMaxDeg float64
	Steps       int
	DurationMs  int
}

// Tables returns the quadruped posture tables: a rocking rotation about each
// axis, and a twist. They're the same for every gait.
func Tables(home pathtool.QuadFrame, p Params) ([]pathtool.MovementTable, error) {
	out := []pathtool.MovementTable{}

	for _, a := range Axes {
		ms, err := RotationMatrices(a, p.MaxDeg, p.Steps)
		if err != nil {
			return nil, fmt.Errorf("%w (while building rotate%s)", err, a)
		}

		out = append(out, pathtool.MovementTable{
			Name:       fmt.Sprintf("quad_rotate%s", a),
			Trajectory: Apply(home, ms, p.DurationMs, []int{0}),
		})
	}

	ms, err := TwistMatrices(p.TwistMaxDeg, p.Steps)
	if err != nil {
		return nil, fmt.Errorf("%w (while building twist)", err)
	}

	out = append(out, pathtool.MovementTable{
		Name:       "quad_twist",
		Trajectory: Apply(home, ms, p.DurationMs, []int{0, p.Steps / 2}),
	})

	return out, nil
}
