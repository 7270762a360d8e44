package entry

import (
	"testing"

	"github.com/adammck/pathtool"
	"github.com/adammck/pathtool/gait"
	"github.com/adammck/pathtool/legs"
	"github.com/adammck/pathtool/math3d"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var home = pathtool.QuadFrame{
	legs.FrontRight: {X: 100, Y: 120, Z: -65},
	legs.BackRight:  {X: 100, Y: -120, Z: -65},
	legs.BackLeft:   {X: -100, Y: -120, Z: -65},
	legs.FrontLeft:  {X: -100, Y: 120, Z: -65},
}

func trot(t *testing.T) pathtool.Trajectory {
	p := gait.Params{AmplitudeX: 25, AmplitudeZ: 35, FrameTimeMs: 20}
	tr, err := gait.GenPath(home, gait.Trot, gait.Forward, gait.Normal, p)
	require.NoError(t, err)
	return tr.Relative(home)
}

func flat(n int) pathtool.Trajectory {
	tr := pathtool.Trajectory{StepDuration: 20}
	for i := 0; i < n; i++ {
		var f pathtool.QuadFrame
		f[legs.FrontRight] = math3d.Vector3{Y: float64(i)}
		tr.Frames = append(tr.Frames, f)
	}

	return tr
}

func TestTrotEntries(t *testing.T) {
	tr := trot(t)

	// The peak lift is shared by ticks 2 and 3, which are equally far from
	// the middle of the stride, so the earlier wins.
	assert.Equal(t, []int{2, 7}, Select(tr, 2))
}

func TestStartPrefersCentered(t *testing.T) {
	tr := flat(4)
	tr.Frames[1][legs.FrontRight] = math3d.Vector3{Y: 5, Z: 10}
	tr.Frames[2][legs.FrontRight] = math3d.Vector3{Y: -1, Z: 10}
	tr.Frames[3][legs.FrontRight] = math3d.Vector3{Y: 0, Z: 9}

	assert.Equal(t, 2, Start(tr, 2))
}

func TestStartFallback(t *testing.T) {
	assert.Equal(t, 1, Start(flat(12), 6))
	assert.Equal(t, 3, Start(flat(12), 2))
	assert.Equal(t, []int{1, 7}, Select(flat(12), 6))
	assert.Equal(t, []int{0}, Select(flat(1), 2))
}

func TestNormalizePair(t *testing.T) {
	fwd := trot(t)
	fwd.Entries = Select(fwd, 2)

	bwd := fwd.Map(func(l legs.QuadLeg, v math3d.Vector3) math3d.Vector3 {
		return math3d.Vector3{X: v.X, Y: -v.Y, Z: v.Z}
	})

	a, b, ok := NormalizePair(fwd, bwd)
	require.True(t, ok)
	require.Len(t, a.Entries, 1)
	require.Len(t, b.Entries, 1)

	assert.Equal(t, 7, a.Entries[0])
	assert.True(t, a.Frames[a.Entries[0]].SamePose(b.Frames[b.Entries[0]], PosePlaces))

	// The inputs are left alone.
	assert.Equal(t, []int{2, 7}, fwd.Entries)
}

func TestNormalizePairFallback(t *testing.T) {
	a := flat(4)
	a.Entries = []int{0, 2}

	b := flat(4).Map(func(l legs.QuadLeg, v math3d.Vector3) math3d.Vector3 {
		return v.Add(math3d.Vector3{X: 1})
	})
	b.Entries = []int{1, 3}

	na, nb, ok := NormalizePair(a, b)
	assert.False(t, ok)
	assert.Equal(t, []int{2}, na.Entries)
	assert.Equal(t, []int{3}, nb.Entries)
}

func TestMatchPose(t *testing.T) {
	a := flat(4)
	b := a.Reversed()

	assert.Equal(t, 0, MatchPose(a, 0, b))
	assert.Equal(t, 3, MatchPose(a, 1, b))

	c := a.Map(func(l legs.QuadLeg, v math3d.Vector3) math3d.Vector3 {
		return v.Add(math3d.Vector3{Z: 0.00001})
	})
	assert.Equal(t, 2, MatchPose(a, 2, c))
}

func TestNormalizeSingle(t *testing.T) {
	tr := flat(4)
	tr.Entries = []int{1, 3}
	assert.Equal(t, []int{3}, NormalizeSingle(tr).Entries)

	tr.Entries = []int{1}
	assert.Equal(t, []int{1}, NormalizeSingle(tr).Entries)
}
