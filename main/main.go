package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/adammck/pathtool/compiler"
	"github.com/adammck/pathtool/config"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var log = logrus.WithFields(logrus.Fields{"pkg": "main"})

type flags struct {
	robot   string
	pathDir string
	outPath string
	report  string
	config  string
	verbose bool
}

// loadSettings reads PATHTOOL_* env vars, the config file (if any), and the
// defaults, in that order of precedence. Nested keys use underscores in env
// vars, so limits.coxa is PATHTOOL_LIMITS_COXA.
func loadSettings(f *flags) (config.Settings, error) {
	v := viper.New()
	v.SetEnvPrefix("PATHTOOL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if f.config != "" {
		v.SetConfigFile(f.config)
		if err := v.ReadInConfig(); err != nil {
			return config.Settings{}, fmt.Errorf("%w (while reading config %s)", err, f.config)
		}

	} else {
		v.SetConfigName("pathtool")
		v.AddConfigPath(".")

		// It's fine if there's no config file; the defaults are complete.
		var notFound viper.ConfigFileNotFoundError
		if err := v.ReadInConfig(); err != nil && !errors.As(err, &notFound) {
			return config.Settings{}, fmt.Errorf("%w (while reading config)", err)
		}
	}

	if fn := v.ConfigFileUsed(); fn != "" {
		log.WithField("path", fn).Debug("read config")
	}

	return config.Load(v)
}

func run(f *flags) error {
	if f.verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	robot, err := compiler.ParseRobot(f.robot)
	if err != nil {
		return err
	}

	s, err := loadSettings(f)
	if err != nil {
		return err
	}

	return compiler.New(s).Run(compiler.Options{
		Robot:      robot,
		PathDir:    f.pathDir,
		OutPath:    f.outPath,
		ReportPath: f.report,
	})
}

func newRootCmd() *cobra.Command {
	f := &flags{}

	cmd := &cobra.Command{
		Use:           "pathtool",
		Short:         "Compile gait movement tables for robot firmware",
		Long:          "pathtool synthesizes the gait trajectories of a quadruped, or verifies the scripted paths of a hexapod, and emits them as firmware movement tables.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(f)
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.robot, "robot", "hexapod", "robot model: hexapod or quad")
	fl.StringVar(&f.pathDir, "pathDir", "path", "directory of hexapod path manifests (*.hcl)")
	fl.StringVar(&f.outPath, "outPath", "", "output header (default <output_dir>/movement_table[_quad].h)")
	fl.StringVar(&f.report, "report", "", "also write a report of the tables and verification (.yaml, .yml or .toml)")
	fl.StringVar(&f.config, "config", "", "config file (default ./pathtool.*)")
	fl.BoolVarP(&f.verbose, "verbose", "v", false, "verbose output")

	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if errors.Is(err, compiler.ErrVerification) {
			fmt.Fprintln(os.Stderr, "There were errors, exit...")
		}

		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
