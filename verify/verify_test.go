package verify

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/adammck/pathtool"
	"github.com/adammck/pathtool/config"
	"github.com/adammck/pathtool/fake/ik"
	"github.com/adammck/pathtool/legs"
	"github.com/adammck/pathtool/math3d"
	"github.com/adammck/pathtool/paths"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var limits = [legs.NumJoints]legs.Range{
	legs.Coxa:  legs.MakeRange(-45, 45),
	legs.Femur: legs.MakeRange(-45, 75),
	legs.Tibia: legs.MakeRange(-60, 60),
}

func geometry() *legs.HexGeometry {
	return legs.NewHexGeometry(config.DefaultConstants(), 15, limits)
}

func verifier() *Verifier {
	g := geometry()
	return New(g, legs.Kinematics{Links: g.Links})
}

// still returns a shift path which holds every foot at home.
func still(name string, n int) pathtool.HexPath {
	return pathtool.HexPath{
		Name:         name,
		Mode:         pathtool.ShiftMode,
		Shift:        make([]pathtool.HexFrame, n),
		StepDuration: 20,
		Entries:      []int{0},
	}
}

func TestHomeVerifies(t *testing.T) {
	r := verifier().Path(still("still", 4))
	assert.True(t, r.OK())
	assert.Empty(t, r.Failures)
	assert.Equal(t, "still", r.Path)
	assert.Equal(t, 4, r.Frames)
}

func TestUnreachableFails(t *testing.T) {
	p := still("reach", 3)
	p.Shift[1][legs.HexMidRight] = math3d.Vector3{X: 200}

	r := verifier().Path(p)
	require.False(t, r.OK())

	for _, f := range r.Failures {
		assert.Equal(t, 1, f.Frame)
		assert.Equal(t, legs.HexMidRight, f.Leg)
	}

	// Out of reach, so neither the femur nor tibia can be solved.
	joints := []legs.Joint{}
	for _, f := range r.Failures {
		joints = append(joints, f.Joint)
		assert.True(t, math.IsNaN(f.Angle))
	}
	assert.Equal(t, []legs.Joint{legs.Femur, legs.Tibia}, joints)
}

func TestTargets(t *testing.T) {
	v := verifier()
	g := v.Geometry

	m := pathtool.HexPath{
		Name:         "up",
		Mode:         pathtool.MatrixMode,
		Matrices:     []math3d.Matrix44{math3d.MakeTranslation(math3d.Vector3{Z: 10})},
		StepDuration: 20,
	}

	targets := v.Targets(m)
	require.Len(t, targets, 1)
	for _, l := range legs.HexLegs {
		exp := g.HomePosition(l).Add(math3d.Vector3{Z: 10})
		assert.InDelta(t, 0, targets[0][l].Distance(exp), 1e-9)
	}

	s := still("s", 1)
	s.Shift[0][legs.HexBackLeft] = math3d.Vector3{X: -5}
	targets = v.Targets(s)
	assert.InDelta(t, 0, targets[0][legs.HexBackLeft].Distance(g.HomePosition(legs.HexBackLeft).Add(math3d.Vector3{X: -5})), 1e-9)
}

func TestSolverSeesLocalTargets(t *testing.T) {
	g := geometry()
	s := ik.New(legs.Angles{0, 30, -15})

	r := New(g, s).Path(still("still", 1))
	assert.True(t, r.OK())
	require.Len(t, s.Targets, legs.NumHexLegs)

	// Every home is straight out along the leg, so the same in every leg's frame.
	for _, p := range s.Targets {
		assert.InDelta(t, 0, p.Y, 1e-9)
		assert.InDelta(t, s.Targets[0].X, p.X, 1e-9)
		assert.InDelta(t, s.Targets[0].Z, p.Z, 1e-9)
	}
}

func TestAllChecksEveryPath(t *testing.T) {
	g := geometry()
	v := New(g, ik.New(legs.Angles{0, 90, 0}))

	results, err := v.All([]pathtool.HexPath{still("a", 2), still("b", 3)})
	assert.ErrorIs(t, err, ErrVerification)
	require.Len(t, results, 2)

	assert.Len(t, results[0].Failures, 2*legs.NumHexLegs)
	assert.Len(t, results[1].Failures, 3*legs.NumHexLegs)
	assert.Equal(t, legs.Femur, results[0].Failures[0].Joint)
	assert.Equal(t, limits[legs.Femur], results[0].Failures[0].Limit)
}

func TestDefaultPathsVerify(t *testing.T) {
	ps, err := paths.Generate(filepath.Join("..", "path"), config.DefaultConstants())
	require.NoError(t, err)

	results, err := verifier().All(ps)
	require.NoError(t, err)

	for _, r := range results {
		assert.True(t, r.OK(), "%s: %v", r.Path, r.Failures)
		assert.Less(t, r.MaxError, 1e-6, r.Path)
	}
}

// skewed solves like the firmware, but turns every coxa one degree too far.
type skewed struct {
	legs.Kinematics
}

func (s skewed) IK(p math3d.Vector3) legs.Angles {
	a := s.Kinematics.IK(p)
	a[legs.Coxa] += 1
	return a
}

func TestMaxError(t *testing.T) {
	g := geometry()

	r := New(g, skewed{legs.Kinematics{Links: g.Links}}).Path(still("still", 2))
	assert.True(t, r.OK())

	// The foot swings about 88mm from the coxa, so one degree is about 1.5mm.
	assert.Greater(t, r.MaxError, 1.0)
	assert.Less(t, r.MaxError, 2.0)

	// Without forward kinematics, there's nothing to measure.
	r = New(g, ik.New(legs.Angles{0, 30, -15})).Path(still("still", 2))
	assert.Zero(t, r.MaxError)
}

func TestFailureString(t *testing.T) {
	f := Failure{Frame: 3, Leg: legs.HexBackLeft, Joint: legs.Tibia, Angle: 61.5, Limit: limits[legs.Tibia]}
	assert.Equal(t, "frame 3 leg BL tibia=61.50 not in [-60.00°, +60.00°]", f.String())
}
