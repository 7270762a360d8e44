package pathtool

import (
	"fmt"

	"github.com/adammck/pathtool/legs"
	"github.com/adammck/pathtool/math3d"
)

// Trajectory is a cyclic sequence of frames, played back one frame every
// StepDuration milliseconds. Entries are the frames at which the firmware may
// switch into or out of the trajectory.
type Trajectory struct {
	Frames       []QuadFrame
	StepDuration int
	Entries      []int
}

// MovementTable is a trajectory of displacements from home, bound to the name
// the firmware will look it up by.
type MovementTable struct {
	Name string
	Trajectory
}

// Len returns the number of frames in a full cycle.
func (t Trajectory) Len() int {
	return len(t.Frames)
}

// Validate checks that the trajectory can be played back.
func (t Trajectory) Validate() error {
	if len(t.Frames) == 0 {
		return InvalidArgument("trajectory has no frames")
	}

	if t.StepDuration <= 0 {
		return InvalidArgument("step duration must be positive, got %d", t.StepDuration)
	}

	for _, e := range t.Entries {
		if e < 0 || e >= len(t.Frames) {
			return InvalidArgument("entry %d out of range [0, %d)", e, len(t.Frames))
		}
	}

	return nil
}

// Clone returns a deep copy of the trajectory.
func (t Trajectory) Clone() Trajectory {
	out := Trajectory{
		Frames:       make([]QuadFrame, len(t.Frames)),
		StepDuration: t.StepDuration,
		Entries:      make([]int, len(t.Entries)),
	}

	copy(out.Frames, t.Frames)
	copy(out.Entries, t.Entries)
	return out
}

// Map returns a copy of the trajectory with fn applied to every vector of
// every frame. Entries are kept.
func (t Trajectory) Map(fn func(l legs.QuadLeg, v math3d.Vector3) math3d.Vector3) Trajectory {
	out := t.Clone()
	for i, f := range t.Frames {
		for _, l := range legs.QuadLegs {
			out.Frames[i][l] = fn(l, f[l])
		}
	}

	return out
}

// Reversed returns the trajectory played backwards, keeping frame zero in
// place: out[i] = in[(N-i) % N]. Entries are kept.
func (t Trajectory) Reversed() Trajectory {
	out := t.Clone()
	n := len(t.Frames)
	for i := range t.Frames {
		out.Frames[i] = t.Frames[(n-i)%n]
	}

	return out
}

// Relative returns the trajectory expressed as displacements from home.
func (t Trajectory) Relative(home QuadFrame) Trajectory {
	out := t.Clone()
	for i, f := range t.Frames {
		out.Frames[i] = f.Subtract(home)
	}

	return out
}

// Absolute is the inverse of Relative.
func (t Trajectory) Absolute(home QuadFrame) Trajectory {
	out := t.Clone()
	for i, f := range t.Frames {
		out.Frames[i] = f.Add(home)
	}

	return out
}

// LegPath returns the sequence of vectors of a single leg.
func (t Trajectory) LegPath(l legs.QuadLeg) []math3d.Vector3 {
	out := make([]math3d.Vector3, len(t.Frames))
	for i, f := range t.Frames {
		out[i] = f[l]
	}

	return out
}

// Permutation reassigns whole leg paths: the path of leg i moves to leg p[i].
type Permutation [legs.NumQuadLegs]legs.QuadLeg

// IdentityPermutation leaves every leg where it is.
var IdentityPermutation = Permutation{legs.FrontRight, legs.BackRight, legs.BackLeft, legs.FrontLeft}

// Validate checks that the permutation is a bijection.
func (p Permutation) Validate() error {
	var seen [legs.NumQuadLegs]bool
	for old, l := range p {
		if l < 0 || int(l) >= legs.NumQuadLegs {
			return InvalidArgument("permutation maps %s to unknown leg %d", legs.QuadLeg(old), int(l))
		}

		if seen[l] {
			return InvalidArgument("permutation maps more than one leg to %s", l)
		}

		seen[l] = true
	}

	return nil
}

// Permute returns a copy of the trajectory with the leg paths reassigned by p.
// Entries are kept; they usually need recomputing by the caller.
func (t Trajectory) Permute(p Permutation) (Trajectory, error) {
	if err := p.Validate(); err != nil {
		return Trajectory{}, fmt.Errorf("%w (while permuting legs)", err)
	}

	out := t.Clone()
	for i, f := range t.Frames {
		for old, l := range p {
			out.Frames[i][l] = f[old]
		}
	}

	return out, nil
}

// ParsePermutation builds a permutation from leg names, indexed by the old leg:
// ["BR", "FR", "FL", "BL"] moves the FR path to BR, and so on.
func ParsePermutation(names []string) (Permutation, error) {
	var p Permutation
	if len(names) != legs.NumQuadLegs {
		return p, InvalidArgument("permutation needs %d legs, got %d", legs.NumQuadLegs, len(names))
	}

	for i, name := range names {
		l, err := legs.ParseQuadLeg(name)
		if err != nil {
			return p, InvalidArgument("%s (while parsing permutation)", err)
		}

		p[i] = l
	}

	return p, p.Validate()
}

// Names returns the leg names of the permutation, indexed by the old leg.
func (p Permutation) Names() []string {
	out := make([]string, len(p))
	for i, l := range p {
		out[i] = l.String()
	}

	return out
}
