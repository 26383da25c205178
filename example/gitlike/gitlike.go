// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Gitlike shows wildcard commands: a few exact subcommands plus a
// catch-all that forwards anything else to an external tool, the way
// git dispatches unknown subcommands to git-<name> binaries.
package main

import (
	"fmt"
	"os"

	"github.com/cligram/cligram/pkg/cligram"
	"github.com/cligram/cligram/pkg/helpfmt"
)

func main() {
	p := cligram.New(cligram.Info{
		Name:    "gitlike",
		Display: "Gitlike",
		Version: "0.1.0",
	})
	if err := p.Commands(
		cligram.Cmd("status"),
		cligram.Cmd("commit", cligram.Pos("message")),
		cligram.Wildcard("external", cligram.Pos("arg").Optional()),
	); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cligram.ExitUsage)
	}

	v := helpfmt.Run(p, os.Args)
	switch {
	case v.Bool("status"):
		fmt.Println("nothing to commit, working tree clean")
	case v.Bool("commit"):
		fmt.Printf("committed: %s\n", v.Str("message"))
	default:
		tool := v.Str("external")
		fmt.Printf("would exec gitlike-%s", tool)
		if arg := v.Str("arg"); arg != "" {
			fmt.Printf(" %s", arg)
		}
		fmt.Println()
	}
}
