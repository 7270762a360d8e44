package variant

import (
	"math"
	"testing"

	"github.com/adammck/pathtool"
	"github.com/adammck/pathtool/config"
	"github.com/adammck/pathtool/entry"
	"github.com/adammck/pathtool/gait"
	"github.com/adammck/pathtool/legs"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDeriver() Deriver {
	return Deriver{
		Geometry:     legs.NewQuadGeometry(config.DefaultConstants(), 15),
		Params:       gait.Params{AmplitudeX: 25, AmplitudeZ: 35, FrameTimeMs: 20},
		Speed:        gait.Normal,
		FastStride:   1.6,
		FastLift:     0.6,
		Permutations: DefaultPermutations,
	}
}

func derive(t *testing.T, m gait.Mode) *Set {
	s, err := testDeriver().Derive(m)
	require.NoError(t, err)
	return s
}

var approx = cmpopts.EquateApprox(0, 1e-9)

func TestEveryVariant(t *testing.T) {
	for _, m := range gait.Modes {
		s := derive(t, m)
		fwd := s.Get(Forward)

		tables := s.Tables()
		require.Len(t, tables, len(Names))

		for i, tbl := range tables {
			assert.Equal(t, TableName(m, Names[i]), tbl.Name)
			assert.NoError(t, tbl.Validate(), tbl.Name)
			assert.Equal(t, fwd.Len(), tbl.Len(), tbl.Name)
			assert.Equal(t, fwd.StepDuration, tbl.StepDuration, tbl.Name)
		}
	}
}

func TestTableName(t *testing.T) {
	assert.Equal(t, "quad_trot_forward", TableName(gait.Trot, Forward))
	assert.Equal(t, "quad_creep_turnright", TableName(gait.Creep, TurnRight))
}

func TestBackwardMirrors(t *testing.T) {
	for _, m := range []gait.Mode{gait.Trot} {
		s := derive(t, m)
		fwd := s.Get(Forward)
		bwd := s.Get(Backward)

		for i := range fwd.Frames {
			for _, l := range legs.QuadLegs {
				assert.Equal(t, -fwd.Frames[i][l].Y, bwd.Frames[i][l].Y)
				assert.Equal(t, fwd.Frames[i][l].X, bwd.Frames[i][l].X)
				assert.Equal(t, fwd.Frames[i][l].Z, bwd.Frames[i][l].Z)
			}
		}
	}
}

func TestBackwardPermutes(t *testing.T) {
	p := DefaultPermutations.FrontBack

	for _, m := range []gait.Mode{gait.Walk, gait.Creep, gait.Gallop} {
		s := derive(t, m)
		fwd := s.Get(Forward)
		bwd := s.Get(Backward)

		for i := range fwd.Frames {
			for old, l := range p {
				v := fwd.Frames[i][old]
				assert.Equal(t, -v.Y, bwd.Frames[i][l].Y, "%s frame %d", m, i)
				assert.Equal(t, v.Z, bwd.Frames[i][l].Z, "%s frame %d", m, i)
			}
		}
	}
}

func TestRotationsKeepStride(t *testing.T) {
	s := derive(t, gait.Trot)
	fwd := s.Get(Forward)

	for _, n := range []Name{ShiftLeft, ShiftRight, TurnLeft, TurnRight} {
		v := s.Get(n)
		for i := range fwd.Frames {
			for _, l := range legs.QuadLegs {
				assert.InDelta(t, fwd.Frames[i][l].HypotXY(), v.Frames[i][l].HypotXY(), 1e-9, "%s frame %d %s", n, i, l)
				assert.Equal(t, fwd.Frames[i][l].Z, v.Frames[i][l].Z)
			}
		}
	}
}

func TestShiftDirections(t *testing.T) {
	s := derive(t, gait.Trot)
	fwd := s.Get(Forward)
	sl := s.Get(ShiftLeft)
	sr := s.Get(ShiftRight)

	// Rotating left turns a stride along +Y into one along -X.
	for i := range fwd.Frames {
		y := fwd.Frames[i][legs.FrontRight].Y
		assert.InDelta(t, -y, sl.Frames[i][legs.FrontRight].X, 1e-9)
		assert.InDelta(t, y, sr.Frames[i][legs.FrontRight].X, 1e-9)
	}
}

func TestGallopReversal(t *testing.T) {
	s := derive(t, gait.Gallop)

	sl := s.Get(ShiftLeft)
	if diff := cmp.Diff(sl.Reversed().Frames, s.Get(ShiftRight).Frames, approx); diff != "" {
		t.Errorf("shiftright is not shiftleft reversed (-want +got):\n%s", diff)
	}

	tl := s.Get(TurnLeft)
	if diff := cmp.Diff(tl.Reversed().Frames, s.Get(TurnRight).Frames, approx); diff != "" {
		t.Errorf("turnright is not turnleft reversed (-want +got):\n%s", diff)
	}

	assert.Equal(t, sl.Entries, s.Get(ShiftRight).Entries)
}

func TestFast(t *testing.T) {
	s := derive(t, gait.Trot)
	fast := s.Get(ForwardFast)

	maxY, maxZ := 0.0, 0.0
	for _, f := range fast.Frames {
		maxY = math.Max(maxY, math.Abs(f[legs.FrontRight].Y))
		maxZ = math.Max(maxZ, f[legs.FrontRight].Z)
	}

	assert.InDelta(t, 40, maxY, 1e-9)
	assert.True(t, maxZ <= 21)
	assert.True(t, maxZ > 19)
}

func TestNormalizedPairsSharePose(t *testing.T) {
	for _, m := range gait.Modes {
		s, unmatched := derive(t, m).Normalize()
		assert.Empty(t, unmatched, "%s", m)

		for _, p := range Pairs {
			a := s.Get(p[0])
			b := s.Get(p[1])
			require.Len(t, a.Entries, 1)
			require.Len(t, b.Entries, 1)

			fa := a.Frames[a.Entries[0]]
			fb := b.Frames[b.Entries[0]]
			assert.True(t, fa.SamePose(fb, entry.PosePlaces), "%s %s/%s", m, p[0], p[1])
		}
	}
}

func TestWalkForwardBackwardSharePose(t *testing.T) {
	s, _ := derive(t, gait.Walk).Normalize()
	a := s.Get(Forward)
	b := s.Get(Backward)
	assert.True(t, a.Frames[a.Entries[0]].SamePose(b.Frames[b.Entries[0]], entry.PosePlaces))
}

func TestNormalizeSingles(t *testing.T) {
	for _, m := range gait.Modes {
		s, _ := derive(t, m).Normalize()
		for _, tbl := range s.Tables() {
			assert.Len(t, tbl.Entries, 1, tbl.Name)
			assert.NoError(t, tbl.Validate(), tbl.Name)
		}
	}
}

func TestBadPermutation(t *testing.T) {
	d := testDeriver()
	d.Permutations.RotateCW = pathtool.Permutation{legs.FrontRight, legs.FrontRight, legs.BackLeft, legs.FrontLeft}

	_, err := d.Derive(gait.Walk)
	assert.ErrorIs(t, err, pathtool.ErrInvalidArgument)
}

func TestUnsupportedMode(t *testing.T) {
	_, err := testDeriver().Derive(gait.Mode(12))
	assert.ErrorIs(t, err, pathtool.ErrInvalidArgument)
}
