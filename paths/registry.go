package paths

import (
	"fmt"
	"sort"

	"github.com/adammck/pathtool"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithFields(logrus.Fields{"pkg": "paths"})

// Spec is one `path` block of a manifest: which generator builds the path,
// and its parameters. Parameters a generator doesn't use are ignored.
type Spec struct {
	Name      string   `hcl:"name,label"`
	Generator string   `hcl:"generator"`
	Heading   float64  `hcl:"heading,optional"`
	Radius    *float64 `hcl:"radius,optional"`
	Steps     *int     `hcl:"steps,optional"`
	Duration  *int     `hcl:"duration,optional"`
	Axis      string   `hcl:"axis,optional"`
	Angle     *float64 `hcl:"angle,optional"`
	Clockwise bool     `hcl:"clockwise,optional"`
}

const (
	defaultRadius = 25.0
	defaultSteps  = 20
	defaultAngle  = 15.0
)

func (s Spec) radius() float64 {
	if s.Radius == nil {
		return defaultRadius
	}

	return *s.Radius
}

func (s Spec) steps() int {
	if s.Steps == nil {
		return defaultSteps
	}

	return *s.Steps
}

func (s Spec) angle() float64 {
	if s.Angle == nil {
		return defaultAngle
	}

	return *s.Angle
}

func (s Spec) duration() int {
	if s.Duration == nil {
		return 0
	}

	return *s.Duration
}

// Generator builds a hexapod path from its spec. The name of the returned path
// is set by the caller.
type Generator func(s Spec) (pathtool.HexPath, error)

// Registry maps generator kinds to the functions which implement them.
type Registry struct {
	generators map[string]Generator
}

func NewRegistry() *Registry {
	return &Registry{
		generators: map[string]Generator{},
	}
}

// Register adds a generator. Registering the same kind twice is a programming
// error, so panics.
func (r *Registry) Register(kind string, g Generator) {
	if _, exists := r.generators[kind]; exists {
		panic(fmt.Sprintf("generator %q already registered", kind))
	}

	r.generators[kind] = g
}

func (r *Registry) Lookup(kind string) (Generator, bool) {
	g, ok := r.generators[kind]
	return g, ok
}

// Kinds returns the registered generator kinds, sorted.
func (r *Registry) Kinds() []string {
	out := make([]string, 0, len(r.generators))
	for k := range r.generators {
		out = append(out, k)
	}

	sort.Strings(out)
	return out
}

// Build runs the generator of every spec, and returns the paths sorted by
// name. Specs without a duration get defaultDuration.
func (r *Registry) Build(specs []Spec, defaultDuration int) ([]pathtool.HexPath, error) {
	seen := map[string]bool{}
	out := make([]pathtool.HexPath, 0, len(specs))

	for _, s := range specs {
		if seen[s.Name] {
			return nil, pathtool.InvalidArgument("path %q defined more than once", s.Name)
		}
		seen[s.Name] = true

		g, ok := r.Lookup(s.Generator)
		if !ok {
			return nil, pathtool.InvalidArgument("path %q: unknown generator %q (have %v)", s.Name, s.Generator, r.Kinds())
		}

		if s.Duration == nil {
			d := defaultDuration
			s.Duration = &d
		}

		p, err := g(s)
		if err != nil {
			return nil, fmt.Errorf("%w (while generating path %s)", err, s.Name)
		}

		p.Name = s.Name
		if err := p.Validate(); err != nil {
			return nil, err
		}

		log.WithFields(logrus.Fields{"path": p.Name, "generator": s.Generator, "frames": p.Len()}).Debug("generated path")
		out = append(out, p)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})

	return out, nil
}

// Default is the registry of built-in generators.
var Default = NewRegistry()

// Register adds a generator to the default registry.
func Register(kind string, g Generator) {
	Default.Register(kind, g)
}
