// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cligram

import (
	"slices"
	"strings"
)

// Slot is one ordered element of a command grammar: a plain positional
// (Arg), a choice group (Choice), or an option reference (Arg created
// with Ref). Slots are required unless marked Optional.
type Slot interface {
	required() bool
	// label renders the slot for diagnostics and usage lines, without
	// the required/optional wrapping.
	label() string
}

// Arg is a plain positional slot, or an option reference when created
// with Ref.
type Arg struct {
	name string
	opt  bool // optional
	ref  bool // resolves against the option registry
}

// Pos declares a required plain positional slot.
func Pos(name string) Arg { return Arg{name: name} }

// Ref declares a required reference to a registered option.
func Ref(name string) Arg { return Arg{name: name, ref: true} }

// Optional marks the slot optional. Once any slot of a command is
// optional, no later positional slot may be required.
func (a Arg) Optional() Arg {
	a.opt = true
	return a
}

// Name returns the slot or option name.
func (a Arg) Name() string { return a.name }

// IsOptional reports whether the slot was marked optional.
func (a Arg) IsOptional() bool { return a.opt }

// IsRef reports whether the slot references a registered option.
func (a Arg) IsRef() bool { return a.ref }

func (a Arg) required() bool { return !a.opt }
func (a Arg) label() string  { return a.name }

// Choice is a positional slot bound to exactly one of a fixed literal
// set. Every literal becomes its own boolean key in the result set,
// true only for the selected literal.
type Choice struct {
	literals []string
	opt      bool
}

// OneOf declares a required choice group over the given literals.
func OneOf(literals ...string) Choice {
	return Choice{literals: slices.Clone(literals)}
}

// Optional marks the choice group optional: omitting it leaves every
// literal false.
func (c Choice) Optional() Choice {
	c.opt = true
	return c
}

// Literals returns the declared literal set, in order.
func (c Choice) Literals() []string { return slices.Clone(c.literals) }

// IsOptional reports whether the group was marked optional.
func (c Choice) IsOptional() bool { return c.opt }

func (c Choice) required() bool { return !c.opt }
func (c Choice) label() string  { return "(" + strings.Join(c.literals, "|") + ")" }

func (c Choice) contains(tok string) bool {
	return slices.Contains(c.literals, tok)
}

// Command declares one command grammar: a name, ordered positional
// slots, referenced options, and an optional entry callback invoked
// with the result set on a successful match.
type Command struct {
	name     string
	wildcard bool
	slots    []Slot
	optRefs  []Arg
	entry    func(Values)
}

// Cmd declares a command. Option references in items are split out of
// the positional slot order, matching their declaration style.
func Cmd(name string, items ...Slot) Command {
	c := Command{name: name}
	for _, it := range items {
		if a, ok := it.(Arg); ok && a.ref {
			c.optRefs = append(c.optRefs, a)
			continue
		}
		c.slots = append(c.slots, it)
	}
	return c
}

// Wildcard declares a catch-all command: its name is not matched
// against input. Instead it accepts any command-position token, which
// is bound under name as a string Value. Wildcards are tried in
// declaration order after exact-name commands fail to match, and a
// wildcard whose required slots cannot be satisfied is skipped rather
// than reported as an error.
func Wildcard(name string, items ...Slot) Command {
	c := Cmd(name, items...)
	c.wildcard = true
	return c
}

// Do attaches an entry callback, invoked exactly once with the final
// result set when this command matches.
func (c Command) Do(fn func(Values)) Command {
	c.entry = fn
	return c
}

// Name returns the declared command name (the result-set key).
func (c Command) Name() string { return c.name }

// IsWildcard reports whether the command matches any literal.
func (c Command) IsWildcard() bool { return c.wildcard }

// Slots returns the ordered positional slots.
func (c Command) Slots() []Slot { return slices.Clone(c.slots) }

// OptionRefs returns the referenced options, in declaration order.
func (c Command) OptionRefs() []Arg { return slices.Clone(c.optRefs) }

// validate enforces the declaration-time slot invariant: once a slot
// is optional, no later slot may be required.
func (c Command) validate() error {
	if c.name == "" {
		return &EmptyNameError{Kind: "command"}
	}
	sawOptional := false
	for _, s := range c.slots {
		if !s.required() {
			sawOptional = true
			continue
		}
		if sawOptional {
			return &SlotOrderError{Command: c.name, Slot: s.label()}
		}
	}
	return nil
}
