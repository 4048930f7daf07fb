// Package config loads circuit descriptions from YAML and builds the
// environment, components and optimizer they describe.
//
// Example file:
//
//	environment:
//	  name: sweep
//	  span: {start: 1.5e-6, stop: 1.6e-6, num: 11}
//	components:
//	  - {type: mirror, name: m1, r: 0.5, bounds: [0, 1]}
//	  - {type: mirror, name: m2, r: 0.9, bounds: null}  # fixed
//	training:
//	  optimizer: adam
//	  lr: 0.05
//	  steps: 200
//	  target: {component: m1, r: 0.3}
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/born-ml/photon/internal/component"
	"github.com/born-ml/photon/internal/env"
	"github.com/born-ml/photon/internal/optim"
	"github.com/born-ml/photon/internal/param"
	"gopkg.in/yaml.v3"
)

// Common errors.
var (
	ErrInvalidConfig     = errors.New("invalid config")
	ErrUnknownComponent  = errors.New("unknown component type")
	ErrUnknownOptimizer  = errors.New("unknown optimizer")
	ErrComponentNotFound = errors.New("component not found")
)

// File is the top-level YAML document.
type File struct {
	Environment EnvironmentSpec `yaml:"environment"`
	Components  []ComponentSpec `yaml:"components"`
	Training    *TrainingSpec   `yaml:"training,omitempty"`
}

// EnvironmentSpec describes the wavelength grid, either as an explicit list
// or as an evenly spaced span. An empty section yields env.Default().
type EnvironmentSpec struct {
	Name        string    `yaml:"name"`
	Wavelengths []float64 `yaml:"wavelengths,omitempty"`
	Span        *SpanSpec `yaml:"span,omitempty"`
}

// SpanSpec is an inclusive, evenly spaced wavelength range.
type SpanSpec struct {
	Start float64 `yaml:"start"`
	Stop  float64 `yaml:"stop"`
	Num   int     `yaml:"num"`
}

// ComponentSpec describes one component.
//
// For mirrors, a missing r defaults to 0.5 and missing bounds default to
// [0, 1]; an explicit "bounds: null" makes r a fixed constant.
type ComponentSpec struct {
	Type   string    `yaml:"type"`
	Name   string    `yaml:"name"`
	R      *float64  `yaml:"r,omitempty"`
	Bounds yaml.Node `yaml:"bounds,omitempty"`
}

// TrainingSpec configures the fitting loop.
type TrainingSpec struct {
	Optimizer string     `yaml:"optimizer"` // "sgd" or "adam" (default)
	LR        float64    `yaml:"lr"`
	Momentum  float64    `yaml:"momentum"`
	Steps     int        `yaml:"steps"`
	Tolerance float64    `yaml:"tolerance"`
	LogEvery  int        `yaml:"log_every"`
	Target    TargetSpec `yaml:"target"`
}

// TargetSpec names the component to fit and the reflectivity it should reach.
type TargetSpec struct {
	Component string  `yaml:"component"`
	R         float64 `yaml:"r"`
}

// Parse decodes a YAML document. Unknown keys are rejected.
func Parse(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return &f, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return &f, nil
}

// Load reads and decodes a YAML file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	f, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Env builds the environment.
func (s EnvironmentSpec) Env() (*env.Environment, error) {
	name := s.Name
	if name == "" {
		name = "default"
	}

	switch {
	case s.Span != nil && len(s.Wavelengths) > 0:
		return nil, fmt.Errorf("%w: environment sets both wavelengths and span", ErrInvalidConfig)
	case s.Span != nil:
		return env.Span(name, s.Span.Start, s.Span.Stop, s.Span.Num)
	case len(s.Wavelengths) > 0:
		return env.New(name, s.Wavelengths...)
	default:
		return env.New(name, env.DefaultWavelength)
	}
}

// Build creates the component described by the entry.
func (s ComponentSpec) Build() (component.Component, error) {
	switch s.Type {
	case "mirror":
		cfg := component.DefaultMirrorConfig()
		cfg.Name = s.Name
		if s.R != nil {
			cfg.R = *s.R
		}
		bounds, set, err := s.bounds()
		if err != nil {
			return nil, err
		}
		if set {
			cfg.Bounds = bounds
		}
		m, err := component.NewMirror(cfg)
		if err != nil {
			return nil, err
		}
		return m, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownComponent, s.Type)
	}
}

// bounds decodes the bounds node. set is false when the key is absent.
func (s ComponentSpec) bounds() (b *param.Bounds, set bool, err error) {
	if s.Bounds.Kind == 0 {
		return nil, false, nil
	}
	if s.Bounds.ShortTag() == "!!null" {
		return nil, true, nil
	}

	var pair []float64
	if err := s.Bounds.Decode(&pair); err != nil {
		return nil, true, fmt.Errorf("%w: bounds: %v", ErrInvalidConfig, err)
	}
	if len(pair) != 2 {
		return nil, true, fmt.Errorf("%w: bounds need [low, high], got %d values", ErrInvalidConfig, len(pair))
	}
	return &param.Bounds{Low: pair[0], High: pair[1]}, true, nil
}

// NewOptimizer creates the configured optimizer over params.
func (t TrainingSpec) NewOptimizer(params []*param.Parameter) (optim.Optimizer, error) {
	switch t.Optimizer {
	case "sgd":
		return optim.NewSGD(params, optim.SGDConfig{LR: t.LR, Momentum: t.Momentum}), nil
	case "adam", "":
		return optim.NewAdam(params, optim.AdamConfig{LR: t.LR}), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownOptimizer, t.Optimizer)
	}
}

// FitConfig returns the loop settings of the training section.
func (t TrainingSpec) FitConfig(logf func(format string, args ...any)) optim.FitConfig {
	return optim.FitConfig{
		Steps:     t.Steps,
		Tolerance: t.Tolerance,
		LogEvery:  t.LogEvery,
		Logf:      logf,
	}
}

// Setup is a fully built configuration.
type Setup struct {
	Env        *env.Environment
	Components []component.Component
	Training   *TrainingSpec

	byName map[string]component.Component
}

// Build creates the environment and all components. Component names must
// be unique.
func (f *File) Build() (*Setup, error) {
	e, err := f.Environment.Env()
	if err != nil {
		return nil, fmt.Errorf("environment: %w", err)
	}

	s := &Setup{Env: e, Training: f.Training, byName: make(map[string]component.Component)}
	for i, spec := range f.Components {
		c, err := spec.Build()
		if err != nil {
			return nil, fmt.Errorf("components[%d]: %w", i, err)
		}
		s.Components = append(s.Components, c)
	}
	if _, err := component.Parameters(s.Components...); err != nil {
		return nil, err
	}
	for _, c := range s.Components {
		s.byName[c.Name()] = c
	}
	return s, nil
}

// Lookup returns the component with the given name.
func (s *Setup) Lookup(name string) (component.Component, error) {
	c, ok := s.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrComponentNotFound, name)
	}
	return c, nil
}

// Target builds the fitting target described by the training section: the
// scattering matrix of a mirror with reflectivity Target.R.
func (s *Setup) Target() (component.Component, optim.Target, error) {
	if s.Training == nil {
		return nil, optim.Target{}, fmt.Errorf("%w: no training section", ErrInvalidConfig)
	}
	c, err := s.Lookup(s.Training.Target.Component)
	if err != nil {
		return nil, optim.Target{}, err
	}

	ref, err := component.NewMirror(component.MirrorConfig{R: s.Training.Target.R, Name: "target"})
	if err != nil {
		return nil, optim.Target{}, fmt.Errorf("target: %w", err)
	}
	return c, optim.Target{RealS: ref.RealS(s.Env), ImagS: ref.ImagS(s.Env)}, nil
}
