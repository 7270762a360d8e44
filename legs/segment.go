package legs

import (
	"fmt"

	"github.com/adammck/pathtool/math3d"
)

type Segment struct {
	Name   string
	parent *Segment
	Child  *Segment
	Angles math3d.EulerAngles
	vec    math3d.Vector3
}

func MakeSegment(name string, parent *Segment, angles math3d.EulerAngles, vec math3d.Vector3) *Segment {
	s := &Segment{
		Name:   name,
		parent: parent,
		Angles: angles,
		vec:    vec,
	}

	if parent != nil {
		parent.Child = s
	}

	return s
}

func MakeRootSegment(vec math3d.Vector3) *Segment {
	return MakeSegment("root", nil, math3d.EulerAngles{}, vec)
}

func (s Segment) String() string {
	var childStr string

	if s.Child != nil {
		childStr = s.Child.String()
	} else {
		childStr = "nil"
	}

	return fmt.Sprintf("&Seg{%s: %s %s}", s.Name, s.Angles, childStr)
}

// Start returns the coordinates of the start of this segment, in the leg's
// coordinate space.
func (s *Segment) Start() math3d.Vector3 {
	return s.Project(math3d.ZeroVector3)
}

// End returns the coordinates of the end of this segment, in the leg's
// coordinate space.
func (s *Segment) End() math3d.Vector3 {
	return s.Project(s.vec)
}

// WorldMatrix returns a matrix which can be applied to a vector in this
// segment's coordinate space to convert it to the leg space.
func (s *Segment) WorldMatrix() math3d.Matrix44 {

	// A child segment starts at the end of its parent, and rotates from there.
	if s.parent != nil {
		m := math3d.MakeMatrix44(s.parent.vec, s.Angles)
		return s.parent.WorldMatrix().Multiply(*m)
	}

	// No parent means that this is a root segment, so the origin is zero, and
	// transformations only need an angle.
	return *math3d.MakeMatrix44(math3d.ZeroVector3, s.Angles)
}

// Project transforms a vector in this segment's coordinate space into the leg
// space.
func (s *Segment) Project(v math3d.Vector3) math3d.Vector3 {
	return v.Transform(s.WorldMatrix())
}
