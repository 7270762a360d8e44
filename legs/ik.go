package legs

import (
	"math"

	"github.com/adammck/pathtool/math3d"
	"github.com/adammck/pathtool/utils"
)

// Angles are the joint angles of one leg in degrees, indexed by Joint.
type Angles [NumJoints]float64

// Kinematics solves joint angles for a leg with the given links. This is the
// closed-form solution the firmware runs, so the verifier sees exactly the
// angles the servos would be sent.
type Kinematics struct {
	Links Links
}

// IK returns the joint angles which put the tip of the leg at p, given in the
// leg's own frame (the mount at the origin, pointing along +X). Unreachable
// targets produce NaN angles rather than an error; range checking is up to
// the caller.
func (k Kinematics) IK(p math3d.Vector3) Angles {
	l := k.Links
	var out Angles

	// The coxa can be solved by looking at the target from above.
	x := p.X - l.RootToJoint1
	out[Coxa] = utils.Deg(math.Atan2(p.Y, x))

	// The femur and tibia both move in the vertical plane through the target,
	// so the rest is 2d trig in that plane.
	x = math.Hypot(x, p.Y) - l.Joint1ToJoint2
	ar := utils.Deg(math.Atan2(p.Z, x))
	lr := math.Hypot(x, p.Z)

	a1 := sss(l.Joint3ToTip, l.Joint2ToJoint3, lr)
	a2 := sss(l.Joint2ToJoint3, l.Joint3ToTip, lr)

	out[Femur] = ar + a1
	out[Tibia] = 90 - (a1 + a2)

	return out
}

// FK returns the position of the tip of the leg (in the leg's own frame) for
// the given joint angles.
func (k Kinematics) FK(a Angles) math3d.Vector3 {
	return k.Chain(a).End()
}

// Chain returns the tip segment of the leg posed at the given angles.
func (k Kinematics) Chain(a Angles) *Segment {
	l := k.Links

	// Pitch is negated because a positive femur angle raises the leg, which is
	// a negative rotation about Y in a Z-up frame.
	root := MakeRootSegment(math3d.Vector3{X: l.RootToJoint1})
	coxa := MakeSegment("coxa", root, *math3d.MakeSingularEulerAngle(math3d.RotationYaw, a[Coxa]), math3d.Vector3{X: l.Joint1ToJoint2})
	femur := MakeSegment("femur", coxa, *math3d.MakeSingularEulerAngle(math3d.RotationPitch, -a[Femur]), math3d.Vector3{X: l.Joint2ToJoint3})
	tibia := MakeSegment("tibia", femur, *math3d.MakeSingularEulerAngle(math3d.RotationPitch, 90-a[Tibia]), math3d.Vector3{X: l.Joint3ToTip})

	return tibia
}

// sss returns the angle (in degrees) opposite side a of the triangle with the
// given side lengths, via the law of cosines. Returns NaN if no such triangle
// exists.
func sss(a float64, b float64, c float64) float64 {
	return utils.Deg(math.Acos(((b * b) + (c * c) - (a * a)) / (2 * b * c)))
}
