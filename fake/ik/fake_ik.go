package ik

import (
	"github.com/adammck/pathtool/legs"
	"github.com/adammck/pathtool/math3d"
)

// FakeSolver returns the same angles for every target, and remembers the
// targets it was asked about.
type FakeSolver struct {
	angles  legs.Angles
	Targets []math3d.Vector3
}

func New(angles legs.Angles) *FakeSolver {
	return &FakeSolver{angles: angles}
}

func (s *FakeSolver) IK(p math3d.Vector3) legs.Angles {
	s.Targets = append(s.Targets, p)
	return s.angles
}
