package entry

import (
	"math"

	"github.com/adammck/pathtool"
	"github.com/adammck/pathtool/legs"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithFields(logrus.Fields{"pkg": "entry"})

const (

	// The leg whose lift decides where a trajectory can be entered.
	Reference = legs.FrontRight

	// Lifts and lateral offsets closer than this are considered equal.
	tolerance = 1e-6

	// Poses are compared after rounding every component to this many places.
	PosePlaces = 4
)

// Start returns the frame at which the reference leg is highest, preferring
// the frame closest to the middle of its stride when several are equally high.
// If the leg never lifts, a point halfway through the first stage's lift is
// guessed from the stage count instead.
func Start(t pathtool.Trajectory, stages int) int {
	n := t.Len()
	if n == 0 {
		return 0
	}

	path := t.LegPath(Reference)

	maxZ := math.Inf(-1)
	for _, v := range path {
		maxZ = math.Max(maxZ, v.Z)
	}

	if maxZ <= tolerance {
		if stages < 1 {
			stages = 1
		}

		s := n / (2 * stages)
		if s >= n {
			s = 0
		}

		log.WithFields(logrus.Fields{"frames": n, "start": s}).Debug("reference leg never lifts")
		return s
	}

	best := -1
	for i, v := range path {
		if math.Abs(v.Z-maxZ) > tolerance {
			continue
		}

		if best < 0 || math.Abs(v.Y) < math.Abs(path[best].Y)-tolerance {
			best = i
		}
	}

	return best
}

// Select returns the entries of a trajectory: the start frame, and the frame
// half a cycle later.
func Select(t pathtool.Trajectory, stages int) []int {
	s := Start(t, stages)
	n := t.Len()
	if n < 2 {
		return []int{s}
	}

	return []int{s, (s + n/2) % n}
}

// MatchPose returns the index of the first frame of dst with the same pose as
// frame idx of src, or -1 if there's no such frame.
func MatchPose(src pathtool.Trajectory, idx int, dst pathtool.Trajectory) int {
	want := src.Frames[idx].Round(PosePlaces)

	// A linear scan is fine; tables are tens of frames long.
	for j, f := range dst.Frames {
		if f.Round(PosePlaces) == want {
			return j
		}
	}

	return -1
}

// canonical returns the second entry of a trajectory, or the first if there's
// only one.
func canonical(t pathtool.Trajectory) int {
	switch len(t.Entries) {
	case 0:
		return 0
	case 1:
		return t.Entries[0]
	}

	return t.Entries[1]
}

// NormalizePair reduces the entries of two trajectories which must be
// interchangeable to a single entry each, such that both entries are the same
// pose. The canonical entry of a is kept and searched for in b. If b never
// passes through that pose, b keeps its own canonical entry and matched is
// false.
func NormalizePair(a, b pathtool.Trajectory) (pathtool.Trajectory, pathtool.Trajectory, bool) {
	ai := canonical(a)
	bi := MatchPose(a, ai, b)
	matched := bi >= 0

	if !matched {
		bi = canonical(b)
	}

	a = a.Clone()
	b = b.Clone()
	a.Entries = []int{ai}
	b.Entries = []int{bi}

	return a, b, matched
}

// NormalizeSingle reduces the entries of an unpaired trajectory to its
// canonical entry.
func NormalizeSingle(t pathtool.Trajectory) pathtool.Trajectory {
	t = t.Clone()
	t.Entries = []int{canonical(t)}
	return t
}
