package main

import (
	"fmt"
	"regexp"

	"github.com/goccy/go-yaml"

	"go.jacobcolvin.com/clargs"
)

// optionDecl is the YAML shape of one option in a demo manifest. Only a
// subset of [clargs.Option]'s fields are exposed here — enough to build a
// realistic schema without requiring Go code.
type optionDecl struct {
	Names    []string `yaml:"names"`
	Kind     string   `yaml:"kind"`
	Desc     string   `yaml:"desc"`
	Group    string   `yaml:"group"`
	Default  any      `yaml:"default"`
	Required bool     `yaml:"required"`
	Requires []string `yaml:"requires"`
	Enums    []string `yaml:"enums"`
	Regex    string   `yaml:"regex"`
	Range    *struct {
		Lo float64 `yaml:"lo"`
		Hi float64 `yaml:"hi"`
	} `yaml:"range"`
	Separator  string `yaml:"separator"`
	Positional bool   `yaml:"positional"`
	Hide       bool   `yaml:"hide"`
}

// manifest is the top-level YAML document describing a demo schema.
type manifest struct {
	Name    string       `yaml:"name"`
	Version string       `yaml:"version"`
	Options []optionDecl `yaml:"options"`
}

// loadManifest parses raw as a [manifest].
func loadManifest(raw []byte) (*manifest, error) {
	var m manifest

	if err := yaml.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}

	return &m, nil
}

// buildOptions converts every declared option into a [clargs.Option]. It
// runs in two passes because a Requires clause references another option by
// name, and YAML declares options in no guaranteed dependency order.
func (m *manifest) buildOptions() ([]*clargs.Option, error) {
	opts := make([]*clargs.Option, len(m.Options))

	for i, d := range m.Options {
		opt, err := d.build()
		if err != nil {
			return nil, fmt.Errorf("option %v: %w", d.Names, err)
		}

		opts[i] = opt
	}

	for i, d := range m.Options {
		if len(d.Requires) == 0 {
			continue
		}

		leaves := make([]clargs.Requirement, len(d.Requires))
		for j, key := range d.Requires {
			leaves[j] = clargs.Req(key)
		}

		opts[i] = opts[i].WithRequires(clargs.All(leaves...))
	}

	return opts, nil
}

func (d optionDecl) build() (*clargs.Option, error) {
	var opt *clargs.Option

	switch d.Kind {
	case "flag":
		opt = clargs.NewFlag(d.Names...)
	case "string":
		opt = clargs.NewString(d.Names...)
	case "number":
		opt = clargs.NewNumber(d.Names...)
	case "strings":
		opt = clargs.NewStrings(d.Names...)
	case "numbers":
		opt = clargs.NewNumbers(d.Names...)
	case "":
		return nil, fmt.Errorf("missing kind")
	default:
		return nil, fmt.Errorf("unknown kind %q", d.Kind)
	}

	opt = opt.WithDesc(d.Desc).WithGroup(d.Group)

	if d.Required {
		opt = opt.WithRequired()
	}

	if d.Hide {
		opt = opt.WithHide()
	}

	if d.Positional {
		opt = opt.WithPositional()
	}

	if d.Default != nil {
		def := d.Default

		// YAML integers decode as integer types; number options hold float64.
		switch n := def.(type) {
		case int:
			def = float64(n)
		case int64:
			def = float64(n)
		case uint64:
			def = float64(n)
		}

		opt = opt.WithDefault(def)
	}

	if len(d.Enums) > 0 {
		opt = opt.WithEnums(d.Enums...)
	}

	if d.Regex != "" {
		re, err := regexp.Compile(d.Regex)
		if err != nil {
			return nil, fmt.Errorf("compiling regex: %w", err)
		}

		opt = opt.WithRegex(re)
	}

	if d.Range != nil {
		opt = opt.WithRange(d.Range.Lo, d.Range.Hi)
	}

	if d.Separator != "" {
		opt = opt.WithSeparator(d.Separator)
	}

	return opt, nil
}
