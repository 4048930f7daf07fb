package config

import (
	"fmt"
	"os"

	"github.com/born-ml/photon/internal/component"
	"gopkg.in/yaml.v3"
)

// stateful is implemented by components that can export and restore their
// parameter values.
type stateful interface {
	StateDict() map[string]float64
	CheckStateDict(state map[string]float64) error
	LoadStateDict(state map[string]float64) error
}

// State collects the parameter values of all components, keyed
// "<component>.<param>".
func State(cs ...component.Component) map[string]float64 {
	state := make(map[string]float64)
	for _, c := range cs {
		s, ok := c.(stateful)
		if !ok {
			continue
		}
		for k, v := range s.StateDict() {
			state[k] = v
		}
	}
	return state
}

// ApplyState restores parameter values into all components. The state is
// checked against every component first, so a rejected state leaves all of
// them unchanged.
func ApplyState(state map[string]float64, cs ...component.Component) error {
	for _, c := range cs {
		s, ok := c.(stateful)
		if !ok {
			continue
		}
		if err := s.CheckStateDict(state); err != nil {
			return fmt.Errorf("restore %s: %w", c.Name(), err)
		}
	}
	for _, c := range cs {
		s, ok := c.(stateful)
		if !ok {
			continue
		}
		if err := s.LoadStateDict(state); err != nil {
			return fmt.Errorf("restore %s: %w", c.Name(), err)
		}
	}
	return nil
}

// SaveState writes the parameter values of cs to a YAML file.
func SaveState(path string, cs ...component.Component) error {
	data, err := yaml.Marshal(State(cs...))
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write state: %w", err)
	}
	return nil
}

// LoadState reads a YAML state file and restores it into cs.
func LoadState(path string, cs ...component.Component) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read state: %w", err)
	}

	var state map[string]float64
	if err := yaml.Unmarshal(data, &state); err != nil {
		return fmt.Errorf("%w: state %s: %v", ErrInvalidConfig, path, err)
	}
	return ApplyState(state, cs...)
}
