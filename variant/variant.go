package variant

import (
	"fmt"

	"github.com/adammck/pathtool"
	"github.com/adammck/pathtool/entry"
	"github.com/adammck/pathtool/gait"
	"github.com/adammck/pathtool/legs"
	"github.com/adammck/pathtool/math3d"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithFields(logrus.Fields{"pkg": "variant"})

// Name identifies a directional variant of a gait.
type Name string

const (
	Forward     Name = "forward"
	ForwardFast Name = "forwardfast"
	Backward    Name = "backward"
	ShiftLeft   Name = "shiftleft"
	ShiftRight  Name = "shiftright"
	TurnLeft    Name = "turnleft"
	TurnRight   Name = "turnright"
)

// Names lists every variant, in the order they're emitted.
var Names = []Name{Forward, ForwardFast, Backward, ShiftLeft, ShiftRight, TurnLeft, TurnRight}

// Pairs are the variants the firmware switches between mid-cycle, so must
// share an entry pose. The first of each pair keeps its entry.
var Pairs = [][2]Name{
	{Forward, Backward},
	{TurnLeft, TurnRight},
	{ShiftLeft, ShiftRight},
}

// Singles are the variants without a partner.
var Singles = []Name{ForwardFast}

// The forward stride of every synthesized gait points along +Y.
const baseForwardDeg = 90.0

// Permutations are the leg reassignments which turn the lift order of a wave
// gait around along with its direction of travel.
type Permutations struct {
	FrontBack pathtool.Permutation
	RotateCW  pathtool.Permutation
	RotateCCW pathtool.Permutation
}

var DefaultPermutations = Permutations{
	FrontBack: pathtool.Permutation{legs.BackRight, legs.FrontRight, legs.FrontLeft, legs.BackLeft},
	RotateCW:  pathtool.Permutation{legs.BackRight, legs.BackLeft, legs.FrontLeft, legs.FrontRight},
	RotateCCW: pathtool.Permutation{legs.FrontLeft, legs.FrontRight, legs.BackRight, legs.BackLeft},
}

func (p Permutations) Validate() error {
	for name, perm := range map[string]pathtool.Permutation{"front/back": p.FrontBack, "cw": p.RotateCW, "ccw": p.RotateCCW} {
		if err := perm.Validate(); err != nil {
			return fmt.Errorf("%w (while checking %s permutation)", err, name)
		}
	}

	return nil
}

// Deriver produces every variant of a gait from its canonical forward
// trajectory.
type Deriver struct {
	Geometry     *legs.QuadGeometry
	Params       gait.Params
	Speed        gait.Speed
	FastStride   float64
	FastLift     float64
	Permutations Permutations
}

// Set holds the variants of one gait, as displacements from home.
type Set struct {
	Mode     gait.Mode
	variants map[Name]pathtool.Trajectory
}

func newSet(m gait.Mode) *Set {
	return &Set{Mode: m, variants: map[Name]pathtool.Trajectory{}}
}

// Get returns the named variant. Panics if it doesn't exist, since every set
// returned by Derive contains every variant.
func (s *Set) Get(n Name) pathtool.Trajectory {
	t, ok := s.variants[n]
	if !ok {
		panic(fmt.Sprintf("no %s variant of %s", n, s.Mode))
	}

	return t
}

func (s *Set) put(n Name, t pathtool.Trajectory) {
	s.variants[n] = t
}

// TableName returns the name the firmware knows a variant by.
func TableName(m gait.Mode, n Name) string {
	return fmt.Sprintf("quad_%s_%s", m, n)
}

// Tables returns every variant as a movement table, in emission order.
func (s *Set) Tables() []pathtool.MovementTable {
	out := make([]pathtool.MovementTable, 0, len(Names))
	for _, n := range Names {
		out = append(out, pathtool.MovementTable{
			Name:       TableName(s.Mode, n),
			Trajectory: s.Get(n),
		})
	}

	return out
}

// Normalize returns a copy of the set with a single entry per variant, with
// the entries of each pair landing on the same pose. The names of pairs which
// share no pose are returned.
func (s *Set) Normalize() (*Set, []string) {
	out := newSet(s.Mode)
	unmatched := []string{}

	for _, p := range Pairs {
		a, b, ok := entry.NormalizePair(s.Get(p[0]), s.Get(p[1]))
		if !ok {
			unmatched = append(unmatched, fmt.Sprintf("%s/%s", TableName(s.Mode, p[0]), TableName(s.Mode, p[1])))
		}

		out.put(p[0], a)
		out.put(p[1], b)
	}

	for _, n := range Singles {
		out.put(n, entry.NormalizeSingle(s.Get(n)))
	}

	return out, unmatched
}

// phaseSensitive returns true if the lift order of the gait must follow its
// direction of travel, so a geometric transform alone can't reverse it.
func phaseSensitive(m gait.Mode) bool {
	return m == gait.Walk || m == gait.Creep
}

func (d Deriver) home() pathtool.QuadFrame {
	return pathtool.QuadFrame(d.Geometry.Homes())
}

// synthesize returns the forward trajectory of the gait with the given params,
// relative to home, with entries selected.
func (d Deriver) synthesize(m gait.Mode, p gait.Params) (pathtool.Trajectory, error) {
	home := d.home()
	t, err := gait.GenPath(home, m, gait.Forward, d.Speed, p)
	if err != nil {
		return t, err
	}

	t = t.Relative(home)
	t.Entries = entry.Select(t, m.Stages())
	return t, nil
}

// permute reassigns the legs of t and reselects its entries.
func permute(t pathtool.Trajectory, p pathtool.Permutation, m gait.Mode) (pathtool.Trajectory, error) {
	out, err := t.Permute(p)
	if err != nil {
		return out, err
	}

	out.Entries = entry.Select(out, m.Stages())
	return out, nil
}

func rotateAll(deg float64) func(legs.QuadLeg, math3d.Vector3) math3d.Vector3 {
	return func(_ legs.QuadLeg, v math3d.Vector3) math3d.Vector3 {
		return v.RotateZ(deg)
	}
}

// Derive returns every variant of the gait. Entries are as selected for each
// variant; call Normalize on the result before emitting it.
func (d Deriver) Derive(m gait.Mode) (*Set, error) {
	if err := d.Permutations.Validate(); err != nil {
		return nil, err
	}

	fwd, err := d.synthesize(m, d.Params)
	if err != nil {
		return nil, fmt.Errorf("%w (while synthesizing %s)", err, m)
	}

	fast, err := d.synthesize(m, d.Params.Scaled(d.FastStride, d.FastLift))
	if err != nil {
		return nil, fmt.Errorf("%w (while synthesizing fast %s)", err, m)
	}

	s := newSet(m)
	s.put(Forward, fwd)
	s.put(ForwardFast, fast)

	// Backward mirrors the stride. Wave gaits also need the lift order run
	// back to front, and gallop needs it so that it shares a pose with forward.
	bwd := fwd.Map(func(_ legs.QuadLeg, v math3d.Vector3) math3d.Vector3 {
		return math3d.Vector3{X: v.X, Y: -v.Y, Z: v.Z}
	})

	if phaseSensitive(m) || m == gait.Gallop {
		if bwd, err = permute(bwd, d.Permutations.FrontBack, m); err != nil {
			return nil, err
		}
	}
	s.put(Backward, bwd)

	// Shifting turns the stride sideways: +Y to -X is left.
	sl := fwd.Map(rotateAll(90))
	sr := fwd.Map(rotateAll(-90))

	if phaseSensitive(m) {
		if sl, err = permute(sl, d.Permutations.RotateCCW, m); err != nil {
			return nil, err
		}

		if sr, err = permute(sr, d.Permutations.RotateCW, m); err != nil {
			return nil, err
		}
	}

	// The gallop's lift order is lopsided, so rotating it never yields a pose
	// shared with shiftleft. Running shiftleft backwards does.
	if m == gait.Gallop {
		sr = sl.Reversed()
	}

	s.put(ShiftLeft, sl)
	s.put(ShiftRight, sr)

	// Turning moves each foot along the tangent of the circle through its home
	// position, so each leg is rotated by its own angle.
	tl := fwd.Map(func(l legs.QuadLeg, v math3d.Vector3) math3d.Vector3 {
		left := d.Geometry.RadialDeg(l) + 90
		return v.RotateZ(left - baseForwardDeg)
	})

	// Turning right starts from backward, so wave gaits inherit its lift order.
	tr := bwd.Map(func(l legs.QuadLeg, v math3d.Vector3) math3d.Vector3 {
		right := d.Geometry.RadialDeg(l) - 90
		return v.RotateZ(right - (baseForwardDeg + 180))
	})
	tr.Entries = fwd.Entries

	if phaseSensitive(m) {
		tr.Entries = entry.Select(tr, m.Stages())
	}

	if m == gait.Gallop {
		tr = tl.Reversed()
	}

	s.put(TurnLeft, tl)
	s.put(TurnRight, tr)

	log.WithFields(logrus.Fields{"mode": m, "frames": fwd.Len()}).Debug("derived variants")
	return s, nil
}
