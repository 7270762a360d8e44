package paths

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/adammck/pathtool"
	"github.com/adammck/pathtool/config"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/sirupsen/logrus"
	"github.com/zclconf/go-cty/cty"
)

type manifestFile struct {
	Paths []Spec `hcl:"path,block"`
}

// EvalContext exposes the firmware constants to manifests as `firmware.<name>`,
// so a path can say `duration = firmware.movementInterval`.
func EvalContext(c *config.Constants) *hcl.EvalContext {
	vals := map[string]cty.Value{}
	for name, v := range c.Names() {
		vals[name] = cty.NumberFloatVal(v)
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"firmware": cty.ObjectVal(vals),
		},
	}
}

// LoadManifest reads every *.hcl file in dir, in name order, and returns the
// path specs they declare. A missing directory, or one with no manifests, is an
// error.
func LoadManifest(dir string, c *config.Constants) ([]Spec, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		abs = dir
	}

	st, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("%w (while reading path directory %s)", err, abs)
	}

	if !st.IsDir() {
		return nil, fmt.Errorf("path directory %s is not a directory", abs)
	}

	files, err := filepath.Glob(filepath.Join(abs, "*.hcl"))
	if err != nil {
		return nil, err
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("no path manifests (*.hcl) in %s", abs)
	}

	sort.Strings(files)

	parser := hclparse.NewParser()
	ctx := EvalContext(c)
	out := []Spec{}

	for _, fn := range files {
		file, diags := parser.ParseHCLFile(fn)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse manifest %s: %w", fn, diags)
		}

		var mf manifestFile
		diags = gohcl.DecodeBody(file.Body, ctx, &mf)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode manifest %s: %w", fn, diags)
		}

		log.WithFields(logrus.Fields{"file": fn, "paths": len(mf.Paths)}).Debug("loaded manifest")
		out = append(out, mf.Paths...)
	}

	return out, nil
}

// Generate reads the manifests in dir and builds their paths with the default
// registry. Paths without a duration use the firmware movement interval.
func Generate(dir string, c *config.Constants) ([]pathtool.HexPath, error) {
	specs, err := LoadManifest(dir, c)
	if err != nil {
		return nil, err
	}

	return Default.Build(specs, int(c.MovementIntervalMs))
}
