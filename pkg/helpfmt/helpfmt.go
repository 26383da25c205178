// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package helpfmt renders a declared grammar as human-readable usage
// and version text, and provides Run, the thin entry wrapper that
// translates parse results into process exit codes. It is a read-only
// consumer of the grammar model in pkg/cligram.
package helpfmt

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/cligram/cligram/pkg/cligram"
)

// HelpOnError controls whether a parse failure prints the full usage
// text after the error message.
var HelpOnError = true

// Version renders the program header: display name, version, and
// description. Empty when no header fields are set.
func Version(p *cligram.Parser) string {
	info := p.Info()
	var b strings.Builder
	if info.Display != "" {
		b.WriteString(info.Display)
		b.WriteString(" ")
	}
	if info.Version != "" {
		b.WriteString(info.Version)
	}
	if info.Description != "" {
		b.WriteString("\n")
		b.WriteString(info.Description)
	}
	if info.HasHeader() {
		b.WriteString("\n")
	}
	return b.String()
}

// Usage renders the full help text: the header, one usage line per
// declared command, and the aligned options table. Required slots are
// shown as <name>, optional ones as [name], choice groups as (a|b),
// option references as --name or --name=ARG, and wildcard command
// names wrapped in {}.
func Usage(p *cligram.Parser) string {
	info := p.Info()
	var b strings.Builder
	b.WriteString(Version(p))
	if info.HasHeader() {
		b.WriteString("\n")
	}

	cmds := p.CommandList()
	if len(cmds) > 0 {
		b.WriteString("Usage:\n")
		for _, c := range cmds {
			b.WriteString("  ")
			b.WriteString(info.Name)
			b.WriteString(" ")
			if c.IsWildcard() {
				b.WriteString("{" + c.Name() + "}")
			} else {
				b.WriteString(c.Name())
			}
			for _, s := range c.Slots() {
				b.WriteString(" ")
				b.WriteString(slotString(s))
			}
			for _, r := range c.OptionRefs() {
				b.WriteString(" ")
				b.WriteString(refString(p, r))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString("Options:\n")
	tw := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	for _, o := range p.OptionList() {
		short := ""
		if o.Short != "" {
			short = "-" + o.Short
		}
		fmt.Fprintf(tw, "  %s\t--%s\t%s\n", short, o.Long, o.Description)
	}
	tw.Flush()
	return b.String()
}

func slotString(s cligram.Slot) string {
	switch s := s.(type) {
	case cligram.Arg:
		if s.IsOptional() {
			return "[" + s.Name() + "]"
		}
		return "<" + s.Name() + ">"
	case cligram.Choice:
		group := "(" + strings.Join(s.Literals(), "|") + ")"
		if s.IsOptional() {
			return "[" + group + "]"
		}
		return group
	}
	return ""
}

func refString(p *cligram.Parser, r cligram.Arg) string {
	out := "--" + r.Name()
	if o, ok := p.LookupOption(r.Name()); ok {
		out = "--" + o.Long
		if !o.Flag {
			out += "=ARG"
		}
	}
	if r.IsOptional() {
		return "[" + out + "]"
	}
	return out
}

// Run parses argv against p and handles the non-success paths: help
// and version requests render their text and exit 1, any declaration
// or parse error prints an ERROR line (plus the usage text when
// HelpOnError is set) and exits with the mapped code. On success the
// result set is returned and the process continues.
func Run(p *cligram.Parser, argv []string) cligram.Values {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		color.NoColor = true
	}
	vals, code := run(p, argv, os.Stdout)
	if vals == nil {
		os.Exit(code)
	}
	return vals
}

func run(p *cligram.Parser, argv []string, w io.Writer) (cligram.Values, int) {
	vals, err := p.Parse(argv)
	switch {
	case err == nil:
		return vals, cligram.ExitOK
	case errors.Is(err, cligram.ErrHelp):
		fmt.Fprint(w, Usage(p))
		return nil, cligram.ExitHelp
	case errors.Is(err, cligram.ErrVersion):
		fmt.Fprint(w, Version(p))
		return nil, cligram.ExitHelp
	}

	fmt.Fprintf(w, "%s %v\n", color.New(color.FgRed, color.Bold).Sprint("ERROR:"), err)
	if HelpOnError {
		fmt.Fprint(w, "\n", Usage(p))
	}
	return nil, cligram.ExitCode(err)
}
