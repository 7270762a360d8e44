package report

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/adammck/pathtool"
	"github.com/adammck/pathtool/legs"
	"github.com/adammck/pathtool/variant"
	"github.com/adammck/pathtool/verify"
	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func hexReport() *Report {
	ps := []pathtool.HexPath{
		{Name: "forward", Mode: pathtool.ShiftMode, Shift: make([]pathtool.HexFrame, 20), StepDuration: 20, Entries: []int{0, 10}},
		{Name: "reach", Mode: pathtool.ShiftMode, Shift: make([]pathtool.HexFrame, 2), StepDuration: 20, Entries: []int{0}},
	}

	results := []verify.Result{
		{Path: "forward", Frames: 20, MaxError: 1e-9},
		{Path: "reach", Frames: 2, Failures: []verify.Failure{
			{Frame: 1, Leg: legs.HexMidRight, Joint: legs.Femur, Angle: math.NaN()},
			{Frame: 1, Leg: legs.HexMidRight, Joint: legs.Tibia, Angle: 72.5},
		}},
	}

	return FromHexapod(ps, results)
}

func TestFromHexapod(t *testing.T) {
	r := hexReport()
	assert.Equal(t, "hexapod", r.Robot)
	require.Len(t, r.Tables, 2)
	assert.Equal(t, Table{Name: "forward", Length: 20, StepDuration: 20, Entries: []int{0, 10}}, r.Tables[0])

	require.Len(t, r.Verification, 2)
	assert.True(t, r.Verification[0].OK)
	assert.Equal(t, 1e-9, r.Verification[0].MaxError)
	assert.False(t, r.Verification[1].OK)
	assert.Equal(t, "MR", r.Verification[1].Failures[1].Leg)
	assert.Equal(t, "tibia", r.Verification[1].Failures[1].Joint)
}

func TestFromQuad(t *testing.T) {
	tr := pathtool.Trajectory{Frames: make([]pathtool.QuadFrame, 10), StepDuration: 20, Entries: []int{7}}
	r := FromQuad([]pathtool.MovementTable{{Name: "quad_trot_forward", Trajectory: tr}}, variant.DefaultPermutations)

	assert.Equal(t, "quad", r.Robot)
	assert.Equal(t, []Table{{Name: "quad_trot_forward", Length: 10, StepDuration: 20, Entries: []int{7}}}, r.Tables)
	assert.Empty(t, r.Verification)

	assert.Equal(t, map[string][]string{
		"front_back": {"BR", "FR", "FL", "BL"},
		"rotate_cw":  {"BR", "BL", "FL", "FR"},
		"rotate_ccw": {"FL", "FR", "BR", "BL"},
	}, r.Permutations)
}

func TestWriteYAML(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "report.yaml")
	require.NoError(t, hexReport().Write(fn))

	data, err := os.ReadFile(fn)
	require.NoError(t, err)

	var got Report
	require.NoError(t, yaml.Unmarshal(data, &got))
	assert.Equal(t, "hexapod", got.Robot)
	assert.True(t, math.IsNaN(got.Verification[1].Failures[0].Angle))
	assert.Equal(t, 72.5, got.Verification[1].Failures[1].Angle)

	_, err = os.Stat(fn + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestWriteTOML(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "report.toml")
	require.NoError(t, hexReport().Write(fn))

	data, err := os.ReadFile(fn)
	require.NoError(t, err)

	var got Report
	require.NoError(t, toml.Unmarshal(data, &got))
	assert.Equal(t, hexReport().Tables, got.Tables)
	assert.Equal(t, "femur", got.Verification[1].Failures[0].Joint)
}

func TestWriteUnknownFormat(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "report.json")
	err := hexReport().Write(fn)
	assert.ErrorIs(t, err, pathtool.ErrInvalidArgument)

	_, err = os.Stat(fn)
	assert.True(t, os.IsNotExist(err))
}
