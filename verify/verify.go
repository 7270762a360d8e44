package verify

import (
	"errors"
	"fmt"
	"math"

	"github.com/adammck/pathtool"
	"github.com/adammck/pathtool/legs"
	"github.com/adammck/pathtool/math3d"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithFields(logrus.Fields{"pkg": "verify"})

// ErrVerification is returned when any path puts a joint out of range.
var ErrVerification = errors.New("kinematic verification failed")

// Solver turns a foot target, in the leg's own frame, into joint angles.
// legs.Kinematics is the real one.
type Solver interface {
	IK(p math3d.Vector3) legs.Angles
}

// Forward is implemented by solvers which can also pose the leg, so the
// verifier can measure how far the solved angles land from each target.
type Forward interface {
	FK(a legs.Angles) math3d.Vector3
}

// Failure is a single joint out of range.
type Failure struct {
	Frame int
	Leg   legs.HexLeg
	Joint legs.Joint
	Angle float64
	Limit legs.Range
}

func (f Failure) String() string {
	return fmt.Sprintf("frame %d leg %s %s=%.2f not in %s", f.Frame, f.Leg, f.Joint, f.Angle, f.Limit)
}

// Result is the outcome of verifying one path. MaxError is the furthest (in
// mm) that any in-range solution puts a foot from its target, and stays zero
// when the solver has no forward kinematics.
type Result struct {
	Path     string
	Frames   int
	MaxError float64
	Failures []Failure
}

func (r Result) OK() bool {
	return len(r.Failures) == 0
}

type Verifier struct {
	Geometry *legs.HexGeometry
	Solver   Solver
}

func New(g *legs.HexGeometry, s Solver) *Verifier {
	return &Verifier{
		Geometry: g,
		Solver:   s,
	}
}

// Targets returns the foot position of every leg in every frame of the path,
// in the body frame.
func (v *Verifier) Targets(p pathtool.HexPath) []pathtool.HexFrame {
	out := make([]pathtool.HexFrame, p.Len())

	for i := range out {
		for _, l := range legs.HexLegs {
			home := v.Geometry.HomePosition(l)

			if p.Mode == pathtool.MatrixMode {
				out[i][l] = home.Transform(p.Matrices[i])
			} else {
				out[i][l] = home.Add(p.Shift[i][l])
			}
		}
	}

	return out
}

// Path checks every joint of every leg in every frame of the path, and
// returns all of the failures rather than stopping at the first.
func (v *Verifier) Path(p pathtool.HexPath) Result {
	r := Result{Path: p.Name, Frames: p.Len()}
	fk, _ := v.Solver.(Forward)

	for i, frame := range v.Targets(p) {
		for _, l := range legs.HexLegs {
			target := v.Geometry.Local(l, frame[l])
			angles := v.Solver.IK(target)
			ok := true

			for _, j := range legs.Joints {
				lim := v.Geometry.AngleLimits(j)
				if lim.Contains(angles[j]) {
					continue
				}

				ok = false
				f := Failure{Frame: i, Leg: l, Joint: j, Angle: angles[j], Limit: lim}
				log.WithFields(logrus.Fields{"path": p.Name}).Error(f.String())
				r.Failures = append(r.Failures, f)
			}

			if ok && fk != nil {
				r.MaxError = math.Max(r.MaxError, fk.FK(angles).Distance(target))
			}
		}
	}

	if r.MaxError > 0 {
		log.WithFields(logrus.Fields{"path": p.Name, "max_error": r.MaxError}).Debug("solved path")
	}

	return r
}

// All verifies every path. If any fail, the error wraps ErrVerification, and
// the results of every path are still returned.
func (v *Verifier) All(paths []pathtool.HexPath) ([]Result, error) {
	out := make([]Result, 0, len(paths))
	failed := 0

	for _, p := range paths {
		r := v.Path(p)
		out = append(out, r)

		if r.OK() {
			log.WithFields(logrus.Fields{"path": p.Name, "frames": r.Frames}).Info("path ok")
		} else {
			failed++
		}
	}

	if failed > 0 {
		return out, fmt.Errorf("%w: %d of %d paths", ErrVerification, failed, len(paths))
	}

	return out, nil
}
