package scan

import (
	"errors"
	"fmt"
	"slices"
)

// Config describes a lexer: its read widths and its rules.
type Config struct {
	Widths []int        `toml:"widths" yaml:"widths"`
	Rules  []RuleConfig `toml:"rules" yaml:"rules"`
}

// RuleConfig describes one rule. Rules are assigned kinds 1, 2, ... in the
// order they appear.
type RuleConfig struct {
	Name  string       `toml:"name" yaml:"name"`
	Steps []StepConfig `toml:"steps" yaml:"steps"`
}

// StepConfig describes one pattern step. Op is one of "one", "run",
// "run1" (which take Class) or "lit" (which takes Text).
type StepConfig struct {
	Op    string `toml:"op" yaml:"op"`
	Class string `toml:"class,omitempty" yaml:"class,omitempty"`
	Text  string `toml:"text,omitempty" yaml:"text,omitempty"`
}

// DefaultConfig returns a configuration with the default widths and no
// rules.
func DefaultConfig() Config {
	return Config{Widths: slices.Clone(DefaultWidths)}
}

// Validate checks the widths and compiles the rules.
func (c Config) Validate() error {
	if err := validateWidths(c.Widths); err != nil {
		return err
	}
	_, err := c.Compile()
	return err
}

func validateWidths(widths []int) error {
	if len(widths) == 0 {
		return fmt.Errorf("%w: empty list", ErrInvalidWidth)
	}
	for i, w := range widths {
		switch w {
		case 1, 2, 4, 8, 16:
		default:
			return fmt.Errorf("%w: %d", ErrInvalidWidth, w)
		}
		if i > 0 && w >= widths[i-1] {
			return fmt.Errorf("%w: %v is not strictly decreasing", ErrInvalidWidth, widths)
		}
	}
	if widths[len(widths)-1] != 1 {
		return fmt.Errorf("%w: %v does not end in 1", ErrInvalidWidth, widths)
	}
	return nil
}

// Compile builds the rules described by the configuration.
func (c Config) Compile() ([]Rule, error) {
	if len(c.Rules) == 0 {
		return nil, ErrNoRules
	}

	rules := make([]Rule, 0, len(c.Rules))
	for i, rc := range c.Rules {
		if rc.Name == "" {
			return nil, fmt.Errorf("rule %d: missing name", i)
		}
		if len(rc.Steps) == 0 {
			return nil, fmt.Errorf("rule %q: no steps", rc.Name)
		}

		steps := make([]Step, 0, len(rc.Steps))
		for j, sc := range rc.Steps {
			step, err := sc.compile()
			if err != nil {
				return nil, fmt.Errorf("rule %q step %d: %w", rc.Name, j, err)
			}
			steps = append(steps, step)
		}

		rules = append(rules, Rule{
			Name:    rc.Name,
			Kind:    Kind(i + 1),
			Pattern: NewPattern(steps...),
		})
	}
	return rules, nil
}

func (sc StepConfig) compile() (Step, error) {
	if sc.Op == "lit" {
		if sc.Text == "" {
			return Step{}, errors.New("lit step needs text")
		}
		return Lit(sc.Text), nil
	}

	var build func(Class) Step
	switch sc.Op {
	case "one":
		build = One
	case "run":
		build = Run
	case "run1":
		build = Run1
	default:
		return Step{}, fmt.Errorf("%w: %q", ErrUnknownStep, sc.Op)
	}

	class, err := ParseClass(sc.Class)
	if err != nil {
		return Step{}, err
	}
	return build(class), nil
}

// Options returns the lexer options described by the configuration.
func (c Config) Options() []Option {
	if len(c.Widths) == 0 {
		return nil
	}
	return []Option{WithWidths(c.Widths...)}
}
