package config

import (
	"fmt"
	"io"
	"math"
	"os"
	"regexp"
	"strconv"

	"github.com/adammck/pathtool/utils"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithFields(logrus.Fields{"pkg": "config"})

// Constants are the robot geometry values shared with the firmware. Lengths
// are in millimetres.
type Constants struct {
	LegMountLeftRightX float64
	LegMountOtherX     float64
	LegMountOtherY     float64

	LegRootToJoint1   float64
	LegJoint1ToJoint2 float64
	LegJoint2ToJoint3 float64
	LegJoint3ToTip    float64

	QuadLegMountOtherX float64
	QuadLegMountOtherY float64
	QuadStanceAngleDeg float64
	QuadStanceCos      float64
	QuadStanceSin      float64
	MovementIntervalMs float64
}

// constantRe matches lines like `const float kLegJoint3ToTip = 89.07;`.
var constantRe = regexp.MustCompile(`const\s+(?:float|int)\s+(\w+)\s*=\s*(-?[0-9]+(?:\.[0-9]+)?)\s*;`)

// fields maps the firmware identifier of each constant to its field.
func (c *Constants) fields() map[string]*float64 {
	return map[string]*float64{
		"kLegMountLeftRightX": &c.LegMountLeftRightX,
		"kLegMountOtherX":     &c.LegMountOtherX,
		"kLegMountOtherY":     &c.LegMountOtherY,
		"kLegRootToJoint1":    &c.LegRootToJoint1,
		"kLegJoint1ToJoint2":  &c.LegJoint1ToJoint2,
		"kLegJoint2ToJoint3":  &c.LegJoint2ToJoint3,
		"kLegJoint3ToTip":     &c.LegJoint3ToTip,
		"kQuadLegMountOtherX": &c.QuadLegMountOtherX,
		"kQuadLegMountOtherY": &c.QuadLegMountOtherY,
		"kQuadStanceAngleDeg": &c.QuadStanceAngleDeg,
		"kQuadStanceCos":      &c.QuadStanceCos,
		"kQuadStanceSin":      &c.QuadStanceSin,
		"movementInterval":    &c.MovementIntervalMs,
	}
}

// DefaultConstants returns the values shipped with the current firmware. They
// are used whenever the firmware header can't be read.
func DefaultConstants() *Constants {
	return &Constants{
		LegMountLeftRightX: 29.87,
		LegMountOtherX:     22.41,
		LegMountOtherY:     55.41,
		LegRootToJoint1:    20.75,
		LegJoint1ToJoint2:  28.0,
		LegJoint2ToJoint3:  42.6,
		LegJoint3ToTip:     89.07,
		QuadLegMountOtherX: 25.0,
		QuadLegMountOtherY: 45.0,
		QuadStanceAngleDeg: 45.0,
		QuadStanceCos:      0.7071,
		QuadStanceSin:      0.7071,
		MovementIntervalMs: 20,
	}
}

// Names returns the firmware identifiers of every known constant, mapped to
// their current values.
func (c *Constants) Names() map[string]float64 {
	out := map[string]float64{}
	for name, ptr := range c.fields() {
		out[name] = *ptr
	}

	return out
}

// ParseConstants reads constant definitions from a firmware header. Known
// names which aren't defined keep their default value, and are returned so the
// caller can decide whether to complain.
func ParseConstants(r io.Reader) (*Constants, []string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, err
	}

	found := map[string]float64{}
	for _, m := range constantRe.FindAllStringSubmatch(string(b), -1) {
		v, err := strconv.ParseFloat(m[2], 64)
		if err != nil {
			return nil, nil, fmt.Errorf("%s (while parsing constant %s)", err, m[1])
		}

		found[m[1]] = v
	}

	c := DefaultConstants()
	missing := []string{}
	for name, ptr := range c.fields() {
		v, ok := found[name]
		if !ok {
			missing = append(missing, name)
			continue
		}

		*ptr = v
	}

	c.reconcileStance(found)
	return c, missing, nil
}

// reconcileStance keeps the stance angle and its cos/sin in agreement. The
// firmware places the quad feet with kQuadStanceCos and kQuadStanceSin, so
// those win whenever either is defined.
func (c *Constants) reconcileStance(found map[string]float64) {
	_, hasCos := found["kQuadStanceCos"]
	_, hasSin := found["kQuadStanceSin"]
	_, hasDeg := found["kQuadStanceAngleDeg"]

	switch {
	case hasCos || hasSin:
		c.QuadStanceAngleDeg = utils.Deg(math.Atan2(c.QuadStanceSin, c.QuadStanceCos))

	case hasDeg:
		rad := utils.Rad(c.QuadStanceAngleDeg)
		c.QuadStanceCos = math.Cos(rad)
		c.QuadStanceSin = math.Sin(rad)
	}
}

// LoadConstants reads the firmware header at path. This never fails: if the
// file can't be read, a warning is logged and the defaults are returned.
func LoadConstants(path string) *Constants {
	f, err := os.Open(path)
	if err != nil {
		log.WithField("path", path).Warnf("can't read firmware config, using default values: %s", err)
		return DefaultConstants()
	}
	defer f.Close()

	c, missing, err := ParseConstants(f)
	if err != nil {
		log.WithField("path", path).Warnf("can't parse firmware config, using default values: %s", err)
		return DefaultConstants()
	}

	for _, name := range missing {
		log.WithFields(logrus.Fields{"path": path, "name": name}).Debug("constant not defined, using default")
	}

	return c
}
