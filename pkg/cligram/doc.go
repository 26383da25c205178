// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cligram is a declarative command-line argument parser: a set
// of command grammars (positional slots, choice groups, and option
// references) is declared up front, raw arguments are matched against
// the declared shapes, and the result is a mapping from every declared
// name to a typed Value.
//
// # Declaring a grammar
//
//	p := cligram.New(cligram.Info{Name: "shipit", Version: "1.2.0"})
//	err := p.Options(
//	    cligram.Opt("f", "force", "Skip confirmation"),
//	    cligram.OptValue("t", "tag", "Release tag"),
//	)
//	err = p.Commands(
//	    cligram.Cmd("deploy",
//	        cligram.Pos("service"),
//	        cligram.OneOf("staging", "prod"),
//	        cligram.Pos("note").Optional(),
//	        cligram.Ref("force").Optional(),
//	    ),
//	)
//
// Positional slots bind tokens by position. A choice group binds one
// token against a fixed literal set and exposes each literal as its
// own boolean key. Option references attach registered options to a
// command; each reference is independently required or optional.
//
// # Parsing
//
//	vals, err := p.Parse(os.Args)
//	if vals.Bool("deploy") {
//	    service := vals.Str("service")
//	    toProd := vals.Bool("prod")
//	    ...
//	}
//
// Every declared name is present in the result set with a seeded
// default, so callers read keys without caring which command matched.
//
// # Wildcard commands
//
// A command declared with Wildcard matches any command-position token
// and binds that token under its own name as a string. Wildcards are
// tried speculatively in declaration order: one whose required slots
// cannot be filled by the given arguments is rolled back and the next
// candidate is tried.
//
// # Errors
//
// Declaration methods and Parse return typed errors rather than
// terminating the process; ExitCode maps any of them to the program
// exit code (1 for help/version, 2 for declaration or parse errors,
// 3 for internal invariant violations). The helpfmt package provides
// the usage renderer and a Run wrapper that performs the translation.
package cligram
