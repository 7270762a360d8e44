package report

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/adammck/pathtool"
	"github.com/adammck/pathtool/utils"
	"github.com/adammck/pathtool/variant"
	"github.com/adammck/pathtool/verify"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Report summarizes one compiler run: what was emitted, and (for hexapods) how
// each path fared against the joint limits.
type Report struct {
	Robot        string       `yaml:"robot" toml:"robot"`
	Output       string       `yaml:"output,omitempty" toml:"output,omitempty"`
	Tables       []Table      `yaml:"tables" toml:"tables"`
	Verification []PathResult `yaml:"verification,omitempty" toml:"verification,omitempty"`

	// Permutations are the wave gait leg reassignments the quad tables were
	// derived with, keyed like the settings.
	Permutations map[string][]string `yaml:"permutations,omitempty" toml:"permutations,omitempty"`
}

type Table struct {
	Name         string `yaml:"name" toml:"name"`
	Length       int    `yaml:"length" toml:"length"`
	StepDuration int    `yaml:"step_duration" toml:"step_duration"`
	Entries      []int  `yaml:"entries" toml:"entries"`
}

type PathResult struct {
	Path     string    `yaml:"path" toml:"path"`
	OK       bool      `yaml:"ok" toml:"ok"`
	MaxError float64   `yaml:"max_error" toml:"max_error"`
	Failures []Failure `yaml:"failures,omitempty" toml:"failures,omitempty"`
}

type Failure struct {
	Frame int     `yaml:"frame" toml:"frame"`
	Leg   string  `yaml:"leg" toml:"leg"`
	Joint string  `yaml:"joint" toml:"joint"`
	Angle float64 `yaml:"angle" toml:"angle"`
}

func FromQuad(ts []pathtool.MovementTable, perms variant.Permutations) *Report {
	r := &Report{Robot: "quad", Tables: make([]Table, len(ts))}
	for i, t := range ts {
		r.Tables[i] = Table{Name: t.Name, Length: t.Len(), StepDuration: t.StepDuration, Entries: t.Entries}
	}

	r.Permutations = map[string][]string{
		"front_back": perms.FrontBack.Names(),
		"rotate_cw":  perms.RotateCW.Names(),
		"rotate_ccw": perms.RotateCCW.Names(),
	}

	return r
}

func FromHexapod(ps []pathtool.HexPath, results []verify.Result) *Report {
	r := &Report{Robot: "hexapod", Tables: make([]Table, len(ps))}
	for i, p := range ps {
		r.Tables[i] = Table{Name: p.Name, Length: p.Len(), StepDuration: p.StepDuration, Entries: p.Entries}
	}

	for _, res := range results {
		pr := PathResult{Path: res.Path, OK: res.OK(), MaxError: res.MaxError}
		for _, f := range res.Failures {
			pr.Failures = append(pr.Failures, Failure{
				Frame: f.Frame,
				Leg:   f.Leg.String(),
				Joint: f.Joint.String(),
				Angle: f.Angle,
			})
		}

		r.Verification = append(r.Verification, pr)
	}

	return r
}

// Marshal encodes the report in the format named by the extension of path:
// .yaml, .yml or .toml.
func (r *Report) Marshal(path string) ([]byte, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Marshal(r)

	case ".toml":
		return toml.Marshal(r)
	}

	return nil, pathtool.InvalidArgument("unsupported report format %q (want .yaml, .yml or .toml)", filepath.Ext(path))
}

// Write encodes the report and writes it to path.
func (r *Report) Write(path string) error {
	data, err := r.Marshal(path)
	if err != nil {
		return fmt.Errorf("%w (while encoding report)", err)
	}

	return utils.WriteFileAtomic(path, data)
}
