package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Settings holds the compiler configuration. Values are populated from the
// config file, PATHTOOL_* env vars, and CLI flags.
type Settings struct {
	FirmwareConfig string `mapstructure:"firmware_config"`
	OutputDir      string `mapstructure:"output_dir"`

	FrameTimeMs     int     `mapstructure:"frame_time_ms"`
	AmplitudeX      float64 `mapstructure:"amplitude_x"`
	AmplitudeZ      float64 `mapstructure:"amplitude_z"`
	FastStrideScale float64 `mapstructure:"fast_stride_scale"`
	FastLiftScale   float64 `mapstructure:"fast_lift_scale"`
	TipAngleDeg     float64 `mapstructure:"tip_angle_deg"`

	PostureMaxDeg     float64 `mapstructure:"posture_max_deg"`
	TwistMaxDeg       float64 `mapstructure:"twist_max_deg"`
	PostureSteps      int     `mapstructure:"posture_steps"`
	PostureDurationMs int     `mapstructure:"posture_duration_ms"`

	Limits       LimitSettings       `mapstructure:"limits"`
	Permutations PermutationSettings `mapstructure:"permutations"`
}

// LimitSettings are the inclusive joint angle limits, as [min, max] in degrees.
type LimitSettings struct {
	Coxa  []float64 `mapstructure:"coxa"`
	Femur []float64 `mapstructure:"femur"`
	Tibia []float64 `mapstructure:"tibia"`
}

// PermutationSettings are the leg reassignments used to turn the lift order of
// wave gaits around. Each lists the new leg for FR, BR, BL, FL in turn.
type PermutationSettings struct {
	FrontBack []string `mapstructure:"front_back"`
	RotateCW  []string `mapstructure:"rotate_cw"`
	RotateCCW []string `mapstructure:"rotate_ccw"`
}

// SetDefaults registers the built-in default of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("firmware_config", "firmware/include/config.h")
	v.SetDefault("output_dir", "firmware/src/generated")
	v.SetDefault("frame_time_ms", 20)
	v.SetDefault("amplitude_x", 25.0)
	v.SetDefault("amplitude_z", 35.0)
	v.SetDefault("fast_stride_scale", 1.6)
	v.SetDefault("fast_lift_scale", 0.6)
	v.SetDefault("tip_angle_deg", 15.0)
	v.SetDefault("posture_max_deg", 15.0)
	v.SetDefault("twist_max_deg", 10.0)
	v.SetDefault("posture_steps", 20)
	v.SetDefault("posture_duration_ms", 50)
	v.SetDefault("limits.coxa", []float64{-45, 45})
	v.SetDefault("limits.femur", []float64{-45, 75})
	v.SetDefault("limits.tibia", []float64{-60, 60})
	v.SetDefault("permutations.front_back", []string{"BR", "FR", "FL", "BL"})
	v.SetDefault("permutations.rotate_cw", []string{"BR", "BL", "FL", "FR"})
	v.SetDefault("permutations.rotate_ccw", []string{"FL", "FR", "BR", "BL"})
}

// Load reads the settings from v, applying the defaults for any values not
// set by config file, environment, or flags.
func Load(v *viper.Viper) (Settings, error) {
	SetDefaults(v)

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return s, fmt.Errorf("%s (while decoding settings)", err)
	}

	if err := s.Validate(); err != nil {
		return s, err
	}

	return s, nil
}

// Validate checks the settings which would otherwise produce nonsense tables.
func (s Settings) Validate() error {
	if s.FrameTimeMs <= 0 {
		return fmt.Errorf("frame_time_ms must be positive, got %d", s.FrameTimeMs)
	}

	if s.PostureSteps <= 0 || s.PostureSteps%4 != 0 {
		return fmt.Errorf("posture_steps must be a positive multiple of four, got %d", s.PostureSteps)
	}

	if s.PostureDurationMs <= 0 {
		return fmt.Errorf("posture_duration_ms must be positive, got %d", s.PostureDurationMs)
	}

	for name, r := range map[string][]float64{"coxa": s.Limits.Coxa, "femur": s.Limits.Femur, "tibia": s.Limits.Tibia} {
		if len(r) != 2 || r[0] > r[1] {
			return fmt.Errorf("limits.%s must be [min, max], got %v", name, r)
		}
	}

	return nil
}
