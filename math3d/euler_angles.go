package math3d

import (
	"fmt"

	"github.com/adammck/pathtool/utils"
)

// EulerAngles are stored in radians. The robot frame is X right, Y forward,
// Z up.
type EulerAngles struct {
	Roll  float64 // x
	Pitch float64 // y
	Yaw   float64 // z
}

type rotation int

const (
	RotationRoll  rotation = iota
	RotationPitch rotation = iota
	RotationYaw   rotation = iota
)

var (
	IdentityOrientation = EulerAngles{}
)

// MakeSingularEulerAngle returns Euler angles rotating by angle degrees about
// a single axis.
func MakeSingularEulerAngle(rot rotation, angle float64) *EulerAngles {
	ea := &EulerAngles{}

	switch rot {
	case RotationRoll:
		ea.Roll = utils.Rad(angle)

	case RotationPitch:
		ea.Pitch = utils.Rad(angle)

	case RotationYaw:
		ea.Yaw = utils.Rad(angle)

	default:
		panic("invalid rotation")
	}

	return ea
}

func (ea EulerAngles) String() string {
	return fmt.Sprintf("&Euler{r=%+.2f° p=%+.2f° y=%+.2f°}", utils.Deg(ea.Roll), utils.Deg(ea.Pitch), utils.Deg(ea.Yaw))
}
