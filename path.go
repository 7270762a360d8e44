package pathtool

import (
	"github.com/adammck/pathtool/math3d"
)

// PathMode says how the frames of a hexapod path are expressed.
type PathMode string

const (

	// Each frame is a displacement of every foot from its home position.
	ShiftMode PathMode = "shift"

	// Each frame is a single body transform applied to every home position.
	MatrixMode PathMode = "matrix"
)

// HexPath is a scripted hexapod movement table.
type HexPath struct {
	Name         string
	Mode         PathMode
	Shift        []HexFrame
	Matrices     []math3d.Matrix44
	StepDuration int
	Entries      []int
}

// Len returns the number of frames in the path, whichever the mode.
func (p HexPath) Len() int {
	if p.Mode == MatrixMode {
		return len(p.Matrices)
	}

	return len(p.Shift)
}

func (p HexPath) Validate() error {
	switch p.Mode {
	case ShiftMode, MatrixMode:
	default:
		return InvalidArgument("path %s: unsupported mode %q", p.Name, p.Mode)
	}

	n := p.Len()
	if n == 0 {
		return InvalidArgument("path %s has no frames", p.Name)
	}

	if p.StepDuration <= 0 {
		return InvalidArgument("path %s: step duration must be positive, got %d", p.Name, p.StepDuration)
	}

	for _, e := range p.Entries {
		if e < 0 || e >= n {
			return InvalidArgument("path %s: entry %d out of range [0, %d)", p.Name, e, n)
		}
	}

	return nil
}
