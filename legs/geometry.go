package legs

import (
	"math"

	"github.com/adammck/pathtool/config"
	"github.com/adammck/pathtool/math3d"
	"github.com/adammck/pathtool/utils"
)

const (

	// The femur rests 30 degrees above the horizontal when the robot is
	// standing.
	standbyFemurDeg = 30.0
)

// Links are the lengths of the segments of one leg, from the mount outwards.
type Links struct {
	RootToJoint1   float64
	Joint1ToJoint2 float64
	Joint2ToJoint3 float64
	Joint3ToTip    float64
}

func LinksFromConstants(c *config.Constants) Links {
	return Links{
		RootToJoint1:   c.LegRootToJoint1,
		Joint1ToJoint2: c.LegJoint1ToJoint2,
		Joint2ToJoint3: c.LegJoint2ToJoint3,
		Joint3ToTip:    c.LegJoint3ToTip,
	}
}

// Reach returns the horizontal distance from the mount to the tip of a
// standing leg whose last link leans outwards by tipDeg.
func (l Links) Reach(tipDeg float64) float64 {
	return l.RootToJoint1 +
		l.Joint1ToJoint2 +
		l.Joint2ToJoint3*math.Cos(utils.Rad(standbyFemurDeg)) +
		l.Joint3ToTip*math.Sin(utils.Rad(tipDeg))
}

// StandbyHeight returns how far below the mount the tip of a standing leg is.
func (l Links) StandbyHeight(tipDeg float64) float64 {
	return l.Joint3ToTip*math.Cos(utils.Rad(tipDeg)) -
		l.Joint2ToJoint3*math.Sin(utils.Rad(standbyFemurDeg))
}

// QuadGeometry supplies the standing (home) foot positions of a quadruped, in
// the body frame: X right, Y forward, Z up.
type QuadGeometry struct {
	homes [NumQuadLegs]math3d.Vector3
}

// NewQuadGeometry derives the home positions from the firmware constants. The
// legs splay out from their mounts by the stance angle.
func NewQuadGeometry(c *config.Constants, tipDeg float64) *QuadGeometry {
	links := LinksFromConstants(c)
	reach := links.Reach(tipDeg)
	z := -links.StandbyHeight(tipDeg)

	x := c.QuadLegMountOtherX + reach*c.QuadStanceCos
	y := c.QuadLegMountOtherY + reach*c.QuadStanceSin

	return &QuadGeometry{
		homes: [NumQuadLegs]math3d.Vector3{
			FrontRight: {X: x, Y: y, Z: z},
			BackRight:  {X: x, Y: -y, Z: z},
			BackLeft:   {X: -x, Y: -y, Z: z},
			FrontLeft:  {X: -x, Y: y, Z: z},
		},
	}
}

func (g *QuadGeometry) HomePosition(l QuadLeg) math3d.Vector3 {
	return g.homes[l]
}

// Homes returns every home position, indexed by QuadLeg.
func (g *QuadGeometry) Homes() [NumQuadLegs]math3d.Vector3 {
	return g.homes
}

// RadialDeg returns the direction of the leg's home position from the body
// center, in degrees within [0, 360).
func (g *QuadGeometry) RadialDeg(l QuadLeg) float64 {
	h := g.homes[l]
	return utils.NormalizeDeg(utils.Deg(math.Atan2(h.Y, h.X)))
}

// HexGeometry supplies the home positions, mounts and joint limits of a
// hexapod. Home positions match the firmware's standby locations.
type HexGeometry struct {
	Links  Links
	homes  [NumHexLegs]math3d.Vector3
	mounts [NumHexLegs]math3d.Vector3
	limits [NumJoints]Range
}

func NewHexGeometry(c *config.Constants, tipDeg float64, limits [NumJoints]Range) *HexGeometry {
	links := LinksFromConstants(c)
	reach := links.Reach(tipDeg)
	z := -links.StandbyHeight(tipDeg)

	diag := utils.Rad(45)
	sideX := c.LegMountLeftRightX + reach
	otherX := c.LegMountOtherX + reach*math.Cos(diag)
	otherY := c.LegMountOtherY + reach*math.Sin(diag)

	g := &HexGeometry{
		Links:  links,
		limits: limits,
		homes: [NumHexLegs]math3d.Vector3{
			HexFrontRight: {X: otherX, Y: otherY, Z: z},
			HexMidRight:   {X: sideX, Y: 0, Z: z},
			HexBackRight:  {X: otherX, Y: -otherY, Z: z},
			HexBackLeft:   {X: -otherX, Y: -otherY, Z: z},
			HexMidLeft:    {X: -sideX, Y: 0, Z: z},
			HexFrontLeft:  {X: -otherX, Y: otherY, Z: z},
		},
		mounts: [NumHexLegs]math3d.Vector3{
			HexFrontRight: {X: c.LegMountOtherX, Y: c.LegMountOtherY},
			HexMidRight:   {X: c.LegMountLeftRightX},
			HexBackRight:  {X: c.LegMountOtherX, Y: -c.LegMountOtherY},
			HexBackLeft:   {X: -c.LegMountOtherX, Y: -c.LegMountOtherY},
			HexMidLeft:    {X: -c.LegMountLeftRightX},
			HexFrontLeft:  {X: -c.LegMountOtherX, Y: c.LegMountOtherY},
		},
	}

	return g
}

func (g *HexGeometry) HomePosition(l HexLeg) math3d.Vector3 {
	return g.homes[l]
}

// Mount returns the position of the leg's root joint on the body.
func (g *HexGeometry) Mount(l HexLeg) math3d.Vector3 {
	return g.mounts[l]
}

func (g *HexGeometry) AngleLimits(j Joint) Range {
	return g.limits[j]
}

// Local converts a foot position in the body frame into the leg's own frame,
// where the leg points along +X from its mount.
func (g *HexGeometry) Local(l HexLeg, body math3d.Vector3) math3d.Vector3 {
	return body.Subtract(g.mounts[l]).RotateZ(-l.Heading())
}
