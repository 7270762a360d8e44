package compiler

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/adammck/pathtool"
	"github.com/adammck/pathtool/codegen"
	"github.com/adammck/pathtool/config"
	"github.com/adammck/pathtool/gait"
	"github.com/adammck/pathtool/legs"
	"github.com/adammck/pathtool/paths"
	"github.com/adammck/pathtool/posture"
	"github.com/adammck/pathtool/report"
	"github.com/adammck/pathtool/utils"
	"github.com/adammck/pathtool/variant"
	"github.com/adammck/pathtool/verify"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithFields(logrus.Fields{"pkg": "compiler"})

var (
	ErrUnsupportedRobot = errors.New("unsupported robot")

	// ErrVerification is returned when a scripted path breaks a joint limit.
	ErrVerification = verify.ErrVerification
)

// Robot is the kind of robot to compile tables for.
type Robot string

const (
	Hexapod Robot = "hexapod"
	Quad    Robot = "quad"
)

func ParseRobot(s string) (Robot, error) {
	switch Robot(s) {
	case Hexapod, Quad:
		return Robot(s), nil
	}

	return "", fmt.Errorf("%w: %q (want hexapod or quad)", ErrUnsupportedRobot, s)
}

// DefaultOutPath returns where the artifact goes when no path is given.
func DefaultOutPath(r Robot, dir string) string {
	if r == Quad {
		return filepath.Join(dir, "movement_table_quad.h")
	}

	return filepath.Join(dir, "movement_table.h")
}

// Options are the per-run inputs which come from the command line.
type Options struct {
	Robot      Robot
	PathDir    string
	OutPath    string
	ReportPath string
}

type Compiler struct {
	Settings  config.Settings
	Constants *config.Constants
}

// New returns a compiler for the given settings, reading the firmware
// constants they point at.
func New(s config.Settings) *Compiler {
	return &Compiler{
		Settings:  s,
		Constants: config.LoadConstants(s.FirmwareConfig),
	}
}

func (c *Compiler) permutations() (variant.Permutations, error) {
	var out variant.Permutations
	var err error

	s := c.Settings.Permutations
	targets := []struct {
		name  string
		names []string
		perm  *pathtool.Permutation
	}{
		{"front_back", s.FrontBack, &out.FrontBack},
		{"rotate_cw", s.RotateCW, &out.RotateCW},
		{"rotate_ccw", s.RotateCCW, &out.RotateCCW},
	}

	for _, t := range targets {
		*t.perm, err = pathtool.ParsePermutation(t.names)
		if err != nil {
			return out, fmt.Errorf("%w (while reading permutations.%s)", err, t.name)
		}
	}

	return out, nil
}

// QuadTables returns every quadruped table: all the variants of every gait,
// with their entries normalized, then the posture tables.
func (c *Compiler) QuadTables() ([]pathtool.MovementTable, error) {
	perms, err := c.permutations()
	if err != nil {
		return nil, err
	}

	return c.quadTables(perms)
}

func (c *Compiler) quadTables(perms variant.Permutations) ([]pathtool.MovementTable, error) {
	s := c.Settings

	d := variant.Deriver{
		Geometry:     legs.NewQuadGeometry(c.Constants, s.TipAngleDeg),
		Params:       gait.Params{AmplitudeX: s.AmplitudeX, AmplitudeZ: s.AmplitudeZ, FrameTimeMs: s.FrameTimeMs},
		Speed:        gait.Normal,
		FastStride:   s.FastStrideScale,
		FastLift:     s.FastLiftScale,
		Permutations: perms,
	}

	out := []pathtool.MovementTable{}

	for _, m := range gait.Modes {
		set, err := d.Derive(m)
		if err != nil {
			return nil, err
		}

		set, unmatched := set.Normalize()
		for _, u := range unmatched {
			log.WithFields(logrus.Fields{"gait": m, "pair": u}).Warn("pair shares no pose, kept own entries")
		}

		out = append(out, set.Tables()...)
	}

	home := pathtool.QuadFrame(d.Geometry.Homes())
	pt, err := posture.Tables(home, posture.Params{
		MaxDeg:      s.PostureMaxDeg,
		TwistMaxDeg: s.TwistMaxDeg,
		Steps:       s.PostureSteps,
		DurationMs:  s.PostureDurationMs,
	})
	if err != nil {
		return nil, err
	}

	return append(out, pt...), nil
}

// HexGeometry returns the hexapod geometry, with the joint limits from the
// settings.
func (c *Compiler) HexGeometry() *legs.HexGeometry {
	lim := c.Settings.Limits
	limits := [legs.NumJoints]legs.Range{
		legs.Coxa:  legs.MakeRange(lim.Coxa[0], lim.Coxa[1]),
		legs.Femur: legs.MakeRange(lim.Femur[0], lim.Femur[1]),
		legs.Tibia: legs.MakeRange(lim.Tibia[0], lim.Tibia[1]),
	}

	return legs.NewHexGeometry(c.Constants, c.Settings.TipAngleDeg, limits)
}

// HexPaths builds every scripted path in dir, and verifies them against the
// joint limits. The results are returned even when verification fails.
func (c *Compiler) HexPaths(dir string) ([]pathtool.HexPath, []verify.Result, error) {
	ps, err := paths.Generate(dir, c.Constants)
	if err != nil {
		return nil, nil, err
	}

	g := c.HexGeometry()
	results, err := verify.New(g, legs.Kinematics{Links: g.Links}).All(ps)
	return ps, results, err
}

// outPath returns where to write the artifact. The default directory is
// created if missing, but a directory which was asked for must exist.
func (c *Compiler) outPath(o Options) (string, error) {
	if o.OutPath == "" {
		fn := DefaultOutPath(o.Robot, c.Settings.OutputDir)
		if err := os.MkdirAll(filepath.Dir(fn), 0755); err != nil {
			return "", fmt.Errorf("%w (while creating output directory)", err)
		}

		return fn, nil
	}

	dir, err := filepath.Abs(filepath.Dir(o.OutPath))
	if err != nil {
		return "", err
	}

	st, err := os.Stat(dir)
	if err != nil {
		return "", fmt.Errorf("%w (while checking output directory %s)", err, dir)
	}

	if !st.IsDir() {
		return "", fmt.Errorf("output directory %s is not a directory", dir)
	}

	return o.OutPath, nil
}

// Run compiles the tables for one robot and writes the artifact. Nothing is
// written if any step fails, except the report, which is written even when
// verification fails so the failures can be read.
func (c *Compiler) Run(o Options) error {
	if _, err := ParseRobot(string(o.Robot)); err != nil {
		return err
	}

	out, err := c.outPath(o)
	if err != nil {
		return err
	}

	var artifact string
	var rep *report.Report
	var runErr error

	switch o.Robot {
	case Quad:
		perms, err := c.permutations()
		if err != nil {
			return err
		}

		ts, err := c.quadTables(perms)
		if err != nil {
			return err
		}

		artifact = codegen.RenderQuad(ts)
		rep = report.FromQuad(ts, perms)

	case Hexapod:
		ps, results, err := c.HexPaths(o.PathDir)
		if results == nil && err != nil {
			return err
		}

		runErr = err
		artifact = codegen.RenderHexapod(ps)
		rep = report.FromHexapod(ps, results)
	}

	if o.ReportPath != "" {
		rep.Output = out
		if err := rep.Write(o.ReportPath); err != nil {
			return err
		}

		log.WithField("path", o.ReportPath).Info("wrote report")
	}

	if runErr != nil {
		return runErr
	}

	err = utils.WriteAtomic(out, func(w io.Writer) error {
		return codegen.Write(w, artifact)
	})
	if err != nil {
		return err
	}

	log.WithFields(logrus.Fields{"robot": o.Robot, "path": out, "tables": len(rep.Tables)}).Info("wrote movement tables")
	return nil
}
