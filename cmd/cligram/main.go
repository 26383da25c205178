// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The cligram command works with grammar manifest files: it validates
// them, renders their usage text, and evaluates sample command lines
// against them. Its own command line is declared with pkg/cligram.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/Masterminds/semver/v3"
	"github.com/fatih/color"
	"golang.org/x/sync/errgroup"

	"github.com/cligram/cligram/pkg/cligram"
	"github.com/cligram/cligram/pkg/gramfile"
	"github.com/cligram/cligram/pkg/helpfmt"
)

const version = "0.3.1"

func main() {
	vals := helpfmt.Run(grammar(), os.Args)
	switch {
	case vals.Bool("check"):
		os.Exit(runCheck(os.Stdout, vals.Str("path"), vals.Bool("strict")))
	case vals.Bool("usage"):
		os.Exit(runUsage(os.Stdout, vals.Str("file")))
	case vals.Bool("eval"):
		os.Exit(runEval(os.Stdout, vals.Str("file"), vals.Str("args")))
	}
}

func grammar() *cligram.Parser {
	p := cligram.New(cligram.Info{
		Name:        "cligram",
		Display:     "Cligram",
		Version:     version,
		Description: "Inspect and evaluate grammar manifests",
	})
	must(p.Options(
		cligram.Opt("s", "strict", "Require a semver manifest version"),
	))
	must(p.Commands(
		cligram.Cmd("check", cligram.Pos("path"), cligram.Ref("strict").Optional()),
		cligram.Cmd("usage", cligram.Pos("file")),
		cligram.Cmd("eval", cligram.Pos("file"), cligram.Pos("args").Optional()),
	))
	return p
}

func must(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, "cligram:", err)
		os.Exit(cligram.ExitUsage)
	}
}

// runCheck validates one manifest file, or every manifest found
// directly in a directory. Files are checked concurrently and results
// reported in name order.
func runCheck(w io.Writer, path string, strict bool) int {
	files, err := manifestFiles(path)
	if err != nil {
		fmt.Fprintln(w, "cligram:", err)
		return cligram.ExitUsage
	}

	errs := make([]error, len(files))
	var g errgroup.Group
	g.SetLimit(8)
	for i, f := range files {
		i, f := i, f
		g.Go(func() error {
			errs[i] = checkFile(f, strict)
			return nil
		})
	}
	g.Wait()

	okLabel := color.New(color.FgGreen).Sprint("ok")
	failLabel := color.New(color.FgRed, color.Bold).Sprint("fail")
	code := cligram.ExitOK
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for i, f := range files {
		if errs[i] != nil {
			fmt.Fprintf(tw, "%s\t%s\t%v\n", failLabel, f, errs[i])
			code = cligram.ExitUsage
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\t\n", okLabel, f)
	}
	tw.Flush()
	return code
}

func manifestFiles(path string) ([]string, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !fi.IsDir() {
		return []string{path}, nil
	}

	ents, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, e := range ents {
		if e.IsDir() {
			continue
		}
		switch filepath.Ext(e.Name()) {
		case ".toml", ".yaml", ".yml":
			files = append(files, filepath.Join(path, e.Name()))
		}
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no manifests in %s", path)
	}
	return files, nil
}

func checkFile(path string, strict bool) error {
	m, err := gramfile.Load(path)
	if err != nil {
		return err
	}
	if _, err := m.Compile(); err != nil {
		return err
	}
	if strict {
		if m.Version == "" {
			return fmt.Errorf("missing manifest version")
		}
		if _, err := semver.StrictNewVersion(m.Version); err != nil {
			return fmt.Errorf("version %q: %w", m.Version, err)
		}
	}
	return nil
}

// runUsage prints the rendered help text of a compiled manifest.
func runUsage(w io.Writer, path string) int {
	p, err := compile(path)
	if err != nil {
		fmt.Fprintln(w, "cligram:", err)
		return cligram.ExitUsage
	}
	fmt.Fprint(w, helpfmt.Usage(p))
	return cligram.ExitOK
}

// runEval parses a sample command line against a manifest and dumps
// the resulting value set. The sample is whitespace-split; the program
// name token is supplied from the manifest.
func runEval(w io.Writer, path, args string) int {
	p, err := compile(path)
	if err != nil {
		fmt.Fprintln(w, "cligram:", err)
		return cligram.ExitUsage
	}

	argv := append([]string{p.Info().Name}, strings.Fields(args)...)
	vals, err := p.Parse(argv)
	switch {
	case err == nil:
		fmt.Fprint(w, vals.Dump())
		return cligram.ExitOK
	case errors.Is(err, cligram.ErrHelp):
		fmt.Fprint(w, helpfmt.Usage(p))
		return cligram.ExitHelp
	case errors.Is(err, cligram.ErrVersion):
		fmt.Fprint(w, helpfmt.Version(p))
		return cligram.ExitHelp
	}
	fmt.Fprintln(w, "cligram:", err)
	return cligram.ExitCode(err)
}

func compile(path string) (*cligram.Parser, error) {
	m, err := gramfile.Load(path)
	if err != nil {
		return nil, err
	}
	return m.Compile()
}
