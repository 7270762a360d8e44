package gait

import (
	"fmt"

	"github.com/adammck/pathtool"
	"github.com/adammck/pathtool/legs"
	"github.com/adammck/pathtool/math3d"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithFields(logrus.Fields{"pkg": "gait"})

type Mode int

const (
	Trot Mode = iota
	Walk
	Gallop
	Creep
)

var Modes = []Mode{Trot, Walk, Gallop, Creep}

func (m Mode) String() string {
	switch m {
	case Trot:
		return "trot"
	case Walk:
		return "walk"
	case Gallop:
		return "gallop"
	case Creep:
		return "creep"
	}

	return fmt.Sprintf("Mode(%d)", int(m))
}

// Stages returns the number of distinct waveform phases in one cycle, or zero
// for an unknown mode.
func (m Mode) Stages() int {
	switch m {
	case Trot:
		return 2
	case Walk, Gallop:
		return 4
	case Creep:
		return 6
	}

	return 0
}

func ParseMode(s string) (Mode, error) {
	for _, m := range Modes {
		if m.String() == s {
			return m, nil
		}
	}

	return 0, pathtool.InvalidArgument("unknown gait mode %q", s)
}

type MoveStatus int

const (
	Standby MoveStatus = iota
	Forward
)

type Speed int

const (
	Normal Speed = iota
	Slow
)

// Params are the amplitudes (in mm) and tick rate of a synthesized gait. The
// fast variant of a gait is synthesized with scaled params, never by changing
// them in place.
type Params struct {
	AmplitudeX  float64
	AmplitudeZ  float64
	FrameTimeMs int
}

// Scaled returns a copy of the params with the stride and lift amplitudes
// multiplied by the given factors.
func (p Params) Scaled(stride, lift float64) Params {
	p.AmplitudeX *= stride
	p.AmplitudeZ *= lift
	return p
}

// CycleDuration returns the length of one full gait cycle, in milliseconds.
func CycleDuration(m Mode, s Speed) (int, error) {
	normal, slow := 0, 0

	switch m {
	case Trot:
		normal, slow = 200, 400
	case Walk, Gallop:
		normal, slow = 320, 1280
	case Creep:
		normal, slow = 720, 1440
	default:
		return 0, pathtool.InvalidArgument("unsupported gait mode %s", m)
	}

	switch s {
	case Normal:
		return normal, nil
	case Slow:
		return slow, nil
	}

	return 0, pathtool.InvalidArgument("unsupported gait speed %d", int(s))
}

// StageTicks returns the number of frames in each stage of the gait.
func StageTicks(m Mode, s Speed, p Params) (int, error) {
	if p.FrameTimeMs <= 0 {
		return 0, pathtool.InvalidArgument("frame time must be positive, got %d", p.FrameTimeMs)
	}

	dur, err := CycleDuration(m, s)
	if err != nil {
		return 0, err
	}

	n := dur / p.FrameTimeMs / m.Stages()
	if n < 1 {
		return 0, pathtool.InvalidArgument("%s cycle of %dms is too short for %dms frames", m, dur, p.FrameTimeMs)
	}

	return n, nil
}

// Gait holds the displacement of every leg from its home position at every
// tick of one cycle.
type Gait struct {
	Mode   Mode
	legs   [legs.NumQuadLegs][]math3d.Vector3
	length int
	ticks  int
}

// Length returns the number of ticks necessary to complete a full cycle of the
// gait, such that the feet are back in their original position relative to the
// origin.
func (g *Gait) Length() int {
	return g.length
}

// StageTicks returns the number of ticks in each stage.
func (g *Gait) StageTicks() int {
	return g.ticks
}

// Frame returns the displacement of the given leg at tick n. This is just to
// spare the caller from checking the bounds of the slices.
func (g *Gait) Frame(leg legs.QuadLeg, n int) math3d.Vector3 {
	return g.legs[leg][n]
}

// Synthesize computes the canonical forward gait for the given mode.
func Synthesize(m Mode, s Speed, p Params) (*Gait, error) {
	n, err := StageTicks(m, s, p)
	if err != nil {
		return nil, err
	}

	g := &Gait{
		Mode:   m,
		length: n * m.Stages(),
		ticks:  n,
	}

	switch m {
	case Trot:
		g.legs = trotLegs(n, p)
	case Walk:
		g.legs = walkLegs(n, p)
	case Gallop:
		g.legs = gallopLegs(n, p)
	case Creep:
		g.legs = creepLegs(n, p)
	}

	log.WithFields(logrus.Fields{"mode": m, "ticks": n, "length": g.length}).Debug("synthesized gait")
	return g, nil
}

// GenPath returns the foot positions (home plus displacement) of the gait. In
// standby the single frame is the home pose. The trajectory has no entries;
// choosing them is up to the caller.
func GenPath(home pathtool.QuadFrame, m Mode, status MoveStatus, s Speed, p Params) (pathtool.Trajectory, error) {
	switch status {
	case Standby:
		if _, err := CycleDuration(m, s); err != nil {
			return pathtool.Trajectory{}, err
		}

		return pathtool.Trajectory{
			Frames:       []pathtool.QuadFrame{home},
			StepDuration: p.FrameTimeMs,
		}, nil

	case Forward:
		g, err := Synthesize(m, s, p)
		if err != nil {
			return pathtool.Trajectory{}, err
		}

		t := pathtool.Trajectory{
			Frames:       make([]pathtool.QuadFrame, g.Length()),
			StepDuration: p.FrameTimeMs,
		}

		for i := range t.Frames {
			for _, l := range legs.QuadLegs {
				t.Frames[i][l] = home[l].Add(g.Frame(l, i))
			}
		}

		return t, nil
	}

	return pathtool.Trajectory{}, pathtool.InvalidArgument("unsupported move status %d", int(status))
}
