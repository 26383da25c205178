// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gramfile loads declarative grammar manifests. A manifest
// describes the same model as the pkg/cligram declaration API --
// program header, global options, command shapes -- in a TOML or YAML
// file, using the usage-line notation for command arguments: <name>
// for a required positional, [name] for an optional one, (a|b) for a
// choice group, --name for an option reference, and [...] wrapping a
// group or reference to mark it optional.
package gramfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/cligram/cligram/pkg/cligram"
)

// Manifest is the on-disk grammar declaration.
type Manifest struct {
	Name        string `toml:"name" yaml:"name"`
	Display     string `toml:"display,omitempty" yaml:"display,omitempty"`
	Version     string `toml:"version,omitempty" yaml:"version,omitempty"`
	Description string `toml:"description,omitempty" yaml:"description,omitempty"`

	Options  []OptionDecl  `toml:"options,omitempty" yaml:"options,omitempty"`
	Commands []CommandDecl `toml:"commands,omitempty" yaml:"commands,omitempty"`
}

// OptionDecl declares one global option. Value marks the option as
// value-bearing; otherwise it is a boolean flag.
type OptionDecl struct {
	Short       string `toml:"short,omitempty" yaml:"short,omitempty"`
	Long        string `toml:"long" yaml:"long"`
	Value       bool   `toml:"value,omitempty" yaml:"value,omitempty"`
	Description string `toml:"description,omitempty" yaml:"description,omitempty"`
}

// CommandDecl declares one command: its name (the result-set key), an
// optional wildcard marker, and its argument specs in usage notation.
type CommandDecl struct {
	Name     string   `toml:"name" yaml:"name"`
	Wildcard bool     `toml:"wildcard,omitempty" yaml:"wildcard,omitempty"`
	Args     []string `toml:"args,omitempty" yaml:"args,omitempty"`
}

// SyntaxError reports an argument spec that does not follow the usage
// notation.
type SyntaxError struct {
	Command string
	Spec    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("command '%s': invalid argument spec '%s'", e.Command, e.Spec)
}

// Load reads a manifest, choosing the format by file extension:
// .toml, .yaml, or .yml.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Decode(data, filepath.Ext(path))
}

// Decode parses manifest bytes in the format implied by ext.
func Decode(data []byte, ext string) (*Manifest, error) {
	var m Manifest
	switch ext {
	case ".toml":
		if err := toml.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("parsing manifest: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("parsing manifest: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported manifest format %q", ext)
	}
	return &m, nil
}

// Compile turns the manifest into a ready parser. Declaration problems
// surface as the same typed errors the cligram API returns.
func (m *Manifest) Compile() (*cligram.Parser, error) {
	p := cligram.New(cligram.Info{
		Name:        m.Name,
		Display:     m.Display,
		Version:     m.Version,
		Description: m.Description,
	})

	opts := make([]cligram.Option, 0, len(m.Options))
	for _, o := range m.Options {
		if o.Value {
			opts = append(opts, cligram.OptValue(o.Short, o.Long, o.Description))
		} else {
			opts = append(opts, cligram.Opt(o.Short, o.Long, o.Description))
		}
	}
	if err := p.Options(opts...); err != nil {
		return nil, err
	}

	for _, c := range m.Commands {
		slots := make([]cligram.Slot, 0, len(c.Args))
		for _, spec := range c.Args {
			slot, err := parseArgSpec(c.Name, spec)
			if err != nil {
				return nil, err
			}
			slots = append(slots, slot)
		}
		cmd := cligram.Cmd(c.Name, slots...)
		if c.Wildcard {
			cmd = cligram.Wildcard(c.Name, slots...)
		}
		if err := p.Commands(cmd); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// parseArgSpec maps one usage-notation token to a slot.
func parseArgSpec(command, spec string) (cligram.Slot, error) {
	s := spec
	optional := false
	if strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]") && len(s) > 2 {
		optional = true
		s = s[1 : len(s)-1]
	}

	switch {
	case strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") && len(s) > 2:
		literals := strings.Split(s[1:len(s)-1], "|")
		for _, lit := range literals {
			if lit == "" {
				return nil, &SyntaxError{Command: command, Spec: spec}
			}
		}
		c := cligram.OneOf(literals...)
		if optional {
			c = c.Optional()
		}
		return c, nil

	case strings.HasPrefix(s, "--") && len(s) > 2:
		r := cligram.Ref(s[2:])
		if optional {
			r = r.Optional()
		}
		return r, nil

	case strings.HasPrefix(s, "<") && strings.HasSuffix(s, ">") && len(s) > 2:
		if optional {
			// "[<name>]" mixes both wrappings; [name] is the optional form.
			return nil, &SyntaxError{Command: command, Spec: spec}
		}
		return cligram.Pos(s[1 : len(s)-1]), nil

	case optional && s != "" && !strings.ContainsAny(s, "<>()[]|") && !strings.HasPrefix(s, "-"):
		return cligram.Pos(s).Optional(), nil
	}

	return nil, &SyntaxError{Command: command, Spec: spec}
}
