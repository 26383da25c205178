// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cligram

import "slices"

// Info carries the program metadata rendered by the presentation
// layer. Name is the program name used in usage lines; Display,
// Version, and Description form the optional header.
type Info struct {
	Name        string
	Display     string
	Version     string
	Description string
}

// HasHeader reports whether any header line would be printed.
func (i Info) HasHeader() bool {
	return i.Display != "" || i.Version != "" || i.Description != ""
}

// Parser holds one program's declared grammar: the option registry and
// the ordered command list. Declare options first, then commands, then
// call Parse. A Parser is written once during declaration and read-only
// afterwards; construct a fresh one per program invocation (or test
// case) rather than sharing static state.
type Parser struct {
	info Info
	opts *optionSet
	cmds []Command
}

// New returns a Parser with only the reserved help and version options
// registered.
func New(info Info) *Parser {
	if info.Name == "" {
		info.Name = "program"
	}
	return &Parser{info: info, opts: newOptionSet()}
}

// Options registers global options. It fails on an empty long name or
// on any short or long name already taken, including collisions with
// the reserved help and version options.
func (p *Parser) Options(opts ...Option) error {
	return p.opts.register(opts)
}

// Commands appends command declarations. It fails on a duplicate
// non-wildcard name, a required slot following an optional one, or an
// option reference that does not resolve against the registry; any
// failure indicates a programming error in the declaration, not a
// user-input problem.
func (p *Parser) Commands(cmds ...Command) error {
	for _, c := range cmds {
		if err := c.validate(); err != nil {
			return err
		}
		if !c.wildcard {
			for _, prev := range p.cmds {
				if !prev.wildcard && prev.name == c.name {
					return &DuplicateCommandError{Name: c.name}
				}
			}
		}
		for _, ref := range c.optRefs {
			if _, ok := p.opts.resolve(ref.name); !ok {
				return &UnknownOptionRefError{Command: c.name, Name: ref.name}
			}
		}
		p.cmds = append(p.cmds, c)
	}
	return nil
}

// Info returns the program metadata.
func (p *Parser) Info() Info { return p.info }

// OptionList returns every registered option in registration order,
// reserved options first.
func (p *Parser) OptionList() []Option {
	return slices.Clone(p.opts.items)
}

// LookupOption resolves a short or long option name.
func (p *Parser) LookupOption(name string) (Option, bool) {
	return p.opts.resolve(name)
}

// CommandList returns every declared command in declaration order.
func (p *Parser) CommandList() []Command {
	return slices.Clone(p.cmds)
}
