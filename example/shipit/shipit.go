// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Shipit is a small release tool skeleton showing the declaration API:
// global options, plain positionals, choice groups, option references,
// and entry callbacks.
package main

import (
	"fmt"
	"os"

	"github.com/cligram/cligram/pkg/cligram"
	"github.com/cligram/cligram/pkg/helpfmt"
)

func main() {
	p := cligram.New(cligram.Info{
		Name:        "shipit",
		Display:     "Shipit",
		Version:     "1.2.0",
		Description: "Deploys things",
	})
	if err := p.Options(
		cligram.Opt("f", "force", "Skip confirmation"),
		cligram.OptValue("", "tag", "Release tag"),
	); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cligram.ExitUsage)
	}
	if err := p.Commands(
		cligram.Cmd("deploy",
			cligram.Pos("service"),
			cligram.OneOf("staging", "prod"),
			cligram.Ref("force").Optional(),
			cligram.Ref("tag").Optional(),
		).Do(deploy),
		cligram.Cmd("rollback",
			cligram.Pos("service"),
			cligram.Pos("release").Optional(),
		).Do(rollback),
	); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cligram.ExitUsage)
	}

	helpfmt.Run(p, os.Args)
}

func deploy(v cligram.Values) {
	target := "staging"
	if v.Bool("prod") {
		target = "prod"
	}
	fmt.Printf("deploying %s to %s", v.Str("service"), target)
	if tag := v.Str("tag"); tag != "" {
		fmt.Printf(" at %s", tag)
	}
	if v.Bool("force") {
		fmt.Print(" (forced)")
	}
	fmt.Println()
}

func rollback(v cligram.Values) {
	rel := v.Str("release")
	if rel == "" {
		rel = "previous release"
	}
	fmt.Printf("rolling %s back to %s\n", v.Str("service"), rel)
}
