// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cligram

import "strings"

// Option declares one global option. Names are stored without leading
// dashes and are case-sensitive. Flag options carry no value token:
// presence means true, absence means false. Value options require a
// following value (short form) or an =value suffix (long form), and
// default to null when absent.
type Option struct {
	Short       string // short name, without the dash; may be empty
	Long        string // long name, without dashes; never empty
	Flag        bool
	Description string
}

// Opt declares a flag option. short may be empty.
func Opt(short, long, description string) Option {
	return Option{Short: short, Long: long, Flag: true, Description: description}
}

// OptValue declares a value-bearing option. short may be empty.
func OptValue(short, long, description string) Option {
	return Option{Short: short, Long: long, Description: description}
}

// Reserved options, injected at the front of every registry. User
// declarations must not collide with them.
var reservedOptions = []Option{
	{Short: "h", Long: "help", Flag: true, Description: "Show this screen"},
	{Short: "v", Long: "version", Flag: true, Description: "Show version"},
}

// optionSet is the option registry: the ordered declarations plus the
// set of taken names used for duplicate detection.
type optionSet struct {
	items []Option
	taken map[string]bool
}

func newOptionSet() *optionSet {
	s := &optionSet{taken: make(map[string]bool)}
	for _, o := range reservedOptions {
		s.items = append(s.items, o)
		s.taken[o.Short] = true
		s.taken[o.Long] = true
	}
	return s
}

// register appends user options, rejecting empty long names and any
// short or long name already taken.
func (s *optionSet) register(opts []Option) error {
	for _, o := range opts {
		if o.Long == "" {
			return &EmptyNameError{Kind: "option"}
		}
		if s.taken[o.Long] {
			return &DuplicateOptionError{Name: o.Long}
		}
		if o.Short != "" && s.taken[o.Short] {
			return &DuplicateOptionError{Name: o.Short, Short: true}
		}
		s.items = append(s.items, o)
		s.taken[o.Long] = true
		if o.Short != "" {
			s.taken[o.Short] = true
		}
	}
	return nil
}

// resolve looks up a dash-stripped, =-stripped name against the
// registry, matching either the short or the long form.
func (s *optionSet) resolve(name string) (Option, bool) {
	if name == "" {
		return Option{}, false
	}
	for _, o := range s.items {
		if name == o.Short || name == o.Long {
			return o, true
		}
	}
	return Option{}, false
}

// stripDashes removes up to two leading dashes; any further dashes are
// part of the name.
func stripDashes(tok string) string {
	for i := 0; i < 2 && strings.HasPrefix(tok, "-"); i++ {
		tok = tok[1:]
	}
	return tok
}

// splitOption splits an option token into its dash-stripped name and
// inline value: "--name=value" yields ("name", "value"), a token with
// no "=" yields the whole stripped name and "".
func splitOption(tok string) (name, value string) {
	if i := strings.IndexByte(tok, '='); i >= 0 {
		return stripDashes(tok[:i]), tok[i+1:]
	}
	return stripDashes(tok), ""
}

// isShort reports whether an option token is short form: exactly one
// leading dash. Two or more dashes mean long form.
func isShort(tok string) bool {
	return strings.HasPrefix(tok, "-") && !strings.HasPrefix(tok, "--")
}
