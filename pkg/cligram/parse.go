// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cligram

import "strings"

// Parse matches argv against the declared grammar and returns the
// resolved result set. argv[0] is ignored; argv[1] is the command
// position; the remainder is split into option tokens and positional
// tokens before command matching.
//
// Every declared name is present in the returned Values regardless of
// which command matched: command keys default to false, plain slots to
// null, choice literals to false, flag options to false, and value
// options to null.
//
// Errors map to process exit codes via ExitCode: ErrHelp and
// ErrVersion mean the caller should render the corresponding text and
// exit 1; parse errors exit 2; InternalError exits 3.
func (p *Parser) Parse(argv []string) (Values, error) {
	if len(argv) <= 1 {
		if len(p.cmds) != 0 {
			return nil, ErrHelp
		}
		return Values{}, nil
	}

	command := argv[1]
	if len(argv) == 2 {
		switch command {
		case "-h", "--help":
			return nil, ErrHelp
		case "-v", "--version":
			return nil, ErrVersion
		}
	}

	opts, positionals, err := p.tokenize(argv[2:])
	if err != nil {
		return nil, err
	}
	return p.match(command, positionals, opts)
}

// tokenize walks the tokens after the command position. Dash-prefixed
// tokens resolve against the option registry and land in a map keyed
// by long name; everything else is collected, in order, as positional
// tokens. A short-form value option consumes the literal next token as
// its value, even one that itself starts with a dash; a long-form
// value option must carry =value inline.
func (p *Parser) tokenize(args []string) (map[string]string, []string, error) {
	opts := make(map[string]string)
	var positionals []string

	for i := 0; i < len(args); i++ {
		tok := args[i]
		if !strings.HasPrefix(tok, "-") {
			positionals = append(positionals, tok)
			continue
		}

		name, inline := splitOption(tok)
		o, ok := p.opts.resolve(name)
		if !ok {
			return nil, nil, &UnknownOptionError{Token: tok}
		}

		value := tok
		if !o.Flag {
			if isShort(tok) {
				i++
				if i >= len(args) {
					return nil, nil, &ShortOptionError{Option: o.Long}
				}
				value = args[i]
			} else {
				if inline == "" {
					return nil, nil, &OptionFormatError{Token: tok}
				}
				value = inline
			}
		}
		opts[o.Long] = value
	}

	return opts, positionals, nil
}

// seedDefaults pre-populates the result set for every declared name,
// so callers may read any declared key no matter which command matched.
func (p *Parser) seedDefaults() Values {
	vals := make(Values)
	for _, o := range p.opts.items {
		if o.Flag {
			vals[o.Long] = Bool(false)
		} else {
			vals[o.Long] = Null()
		}
	}
	for _, c := range p.cmds {
		vals[c.name] = Bool(false)
		for _, s := range c.slots {
			switch s := s.(type) {
			case Arg:
				vals[s.name] = Null()
			case Choice:
				for _, lit := range s.literals {
					vals[lit] = Bool(false)
				}
			}
		}
	}
	return vals
}

// match tries candidates in two passes: exact-name commands first,
// then wildcards as fallback, each pass in declaration order. Every
// candidate attempt binds into a working copy of the result set and a
// padded copy of the positional tokens, so a disqualified wildcard is
// abandoned without trace and the next candidate starts from the same
// pre-attempt state. The first fully satisfied candidate wins.
func (p *Parser) match(command string, positionals []string, opts map[string]string) (Values, error) {
	vals := p.seedDefaults()

	var tooMany *TooManyArgsError
	for _, wildcardPass := range []bool{false, true} {
		for _, cmd := range p.cmds {
			if cmd.wildcard != wildcardPass {
				continue
			}
			if !cmd.wildcard && cmd.name != command {
				continue
			}

			if len(positionals) > len(cmd.slots) {
				if !cmd.wildcard && tooMany == nil {
					tooMany = &TooManyArgsError{Command: cmd.name, Got: len(positionals), Want: len(cmd.slots)}
				}
				continue
			}

			work, err := p.bind(cmd, command, positionals, opts, vals.clone())
			if err != nil {
				return nil, err
			}
			if work == nil {
				// Wildcard shape mismatch: the attempt copy is discarded,
				// restoring the pre-attempt state for the next candidate.
				continue
			}

			if cmd.entry != nil {
				cmd.entry(work)
			}
			return work, nil
		}
	}

	if tooMany != nil {
		return nil, tooMany
	}
	return nil, &UnknownCommandError{Name: command}
}

// bind attempts one candidate against the working copy. It returns
// (nil, nil) when a wildcard candidate is disqualified by an
// unsatisfiable required slot; every other failure is a hard error.
func (p *Parser) bind(cmd Command, command string, positionals []string, opts map[string]string, work Values) (Values, error) {
	// Pad the positional tokens up to the slot count. A padded slot
	// whose requirement is required cannot be satisfied: hard error
	// for exact-name commands, disqualification for wildcards.
	padded := make([]string, len(cmd.slots))
	copy(padded, positionals)
	for i := len(positionals); i < len(cmd.slots); i++ {
		if cmd.slots[i].required() {
			if cmd.wildcard {
				return nil, nil
			}
			return nil, &MissingArgumentError{Command: cmd.name, Slot: cmd.slots[i].label()}
		}
	}

	for i, s := range cmd.slots {
		tok := padded[i]
		switch s := s.(type) {
		case Arg:
			if tok != "" {
				work[s.name] = String(tok)
			}
		case Choice:
			if tok != "" && !s.contains(tok) {
				return nil, &InvalidChoiceError{Token: tok}
			}
			for _, lit := range s.literals {
				work[lit] = Bool(tok == lit)
			}
		default:
			return nil, &InternalError{Name: s.label()}
		}
	}

	for _, ref := range cmd.optRefs {
		o, ok := p.opts.resolve(ref.name)
		if !ok {
			// Validated at declaration time; failing here is a defect.
			return nil, &InternalError{Name: ref.name}
		}
		raw, present := opts[o.Long]
		switch {
		case present && o.Flag:
			work[o.Long] = Bool(true)
		case present:
			work[o.Long] = String(raw)
		case ref.required():
			return nil, &MissingOptionError{Command: cmd.name, Option: o.Long}
		}
	}

	if cmd.wildcard {
		work[cmd.name] = String(command)
	} else {
		work[cmd.name] = Bool(true)
	}
	return work, nil
}
