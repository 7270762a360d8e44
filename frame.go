package pathtool

import (
	"errors"
	"fmt"
	"strings"

	"github.com/adammck/pathtool/legs"
	"github.com/adammck/pathtool/math3d"
)

// ErrInvalidArgument is wrapped by every error caused by a malformed request
// (an unknown gait, a broken permutation, a bad generator parameter), as
// opposed to a failure of the input data.
var ErrInvalidArgument = errors.New("invalid argument")

// InvalidArgument returns an error wrapping ErrInvalidArgument.
func InvalidArgument(format string, a ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, a...))
}

// QuadFrame holds one vector per quadruped leg. Depending on context it's
// either a set of foot positions or a set of displacements from home.
type QuadFrame [legs.NumQuadLegs]math3d.Vector3

func (f QuadFrame) String() string {
	s := make([]string, len(f))
	for i, v := range f {
		s[i] = fmt.Sprintf("%s:%s", legs.QuadLeg(i), v)
	}

	return "&QuadFrame{" + strings.Join(s, " ") + "}"
}

// Add returns the legwise sum of two frames.
func (f QuadFrame) Add(g QuadFrame) QuadFrame {
	var out QuadFrame
	for i := range f {
		out[i] = f[i].Add(g[i])
	}

	return out
}

// Subtract returns the legwise difference of two frames.
func (f QuadFrame) Subtract(g QuadFrame) QuadFrame {
	var out QuadFrame
	for i := range f {
		out[i] = f[i].Subtract(g[i])
	}

	return out
}

// Round returns a copy of the frame with every component rounded to the given
// number of decimal places.
func (f QuadFrame) Round(places int) QuadFrame {
	var out QuadFrame
	for i := range f {
		out[i] = f[i].Round(places)
	}

	return out
}

// SamePose returns true if both frames are identical once rounded to the given
// number of decimal places.
func (f QuadFrame) SamePose(g QuadFrame, places int) bool {
	return f.Round(places) == g.Round(places)
}

// HexFrame holds one vector per hexapod leg.
type HexFrame [legs.NumHexLegs]math3d.Vector3
