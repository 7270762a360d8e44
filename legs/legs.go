package legs

import (
	"fmt"
	"strings"
)

// QuadLeg identifies a quadruped leg. The order matches the firmware's legs_[]
// array and the Q1..Q4 home identifiers.
type QuadLeg int

const (
	FrontRight QuadLeg = iota
	BackRight
	BackLeft
	FrontLeft
)

const NumQuadLegs = 4

var QuadLegs = [NumQuadLegs]QuadLeg{FrontRight, BackRight, BackLeft, FrontLeft}

func (l QuadLeg) String() string {
	switch l {
	case FrontRight:
		return "FR"
	case BackRight:
		return "BR"
	case BackLeft:
		return "BL"
	case FrontLeft:
		return "FL"
	}

	return fmt.Sprintf("QuadLeg(%d)", int(l))
}

// HexLeg identifies a hexapod leg, clockwise from the front right as seen from
// above. The order matches the firmware's P1..P6 home identifiers.
type HexLeg int

const (
	HexFrontRight HexLeg = iota
	HexMidRight
	HexBackRight
	HexBackLeft
	HexMidLeft
	HexFrontLeft
)

const NumHexLegs = 6

var HexLegs = [NumHexLegs]HexLeg{HexFrontRight, HexMidRight, HexBackRight, HexBackLeft, HexMidLeft, HexFrontLeft}

var hexNames = [NumHexLegs]string{"FR", "MR", "BR", "BL", "ML", "FL"}

// The direction (in degrees, counter-clockwise from +X) each hexapod leg points
// away from the body.
var hexHeadings = [NumHexLegs]float64{45, 0, 315, 225, 180, 135}

func (l HexLeg) String() string {
	if l >= 0 && int(l) < NumHexLegs {
		return hexNames[l]
	}

	return fmt.Sprintf("HexLeg(%d)", int(l))
}

// Heading returns the direction the leg points away from the body.
func (l HexLeg) Heading() float64 {
	return hexHeadings[l]
}

// Joint identifies one of the three joints of a leg, from the body outwards.
type Joint int

const (
	Coxa Joint = iota
	Femur
	Tibia
)

const NumJoints = 3

var Joints = [NumJoints]Joint{Coxa, Femur, Tibia}

func (j Joint) String() string {
	switch j {
	case Coxa:
		return "coxa"
	case Femur:
		return "femur"
	case Tibia:
		return "tibia"
	}

	return fmt.Sprintf("Joint(%d)", int(j))
}

// ParseQuadLeg returns the leg with the given short name, like "FR". Case is
// ignored.
func ParseQuadLeg(s string) (QuadLeg, error) {
	for _, l := range QuadLegs {
		if strings.EqualFold(l.String(), s) {
			return l, nil
		}
	}

	return 0, fmt.Errorf("unknown quadruped leg %q", s)
}
