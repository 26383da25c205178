// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cligram

import (
	"errors"
	"fmt"
)

// Sentinel errors for the distinguished exit paths.
var (
	// ErrHelp is returned when help output was requested (-h, --help,
	// or invoking a program with declared commands and no arguments).
	ErrHelp = errors.New("help requested")

	// ErrVersion is returned when version output was requested (-v, --version).
	ErrVersion = errors.New("version requested")
)

// Process exit codes for the errors this package produces.
const (
	ExitOK       = 0
	ExitHelp     = 1 // help or version explicitly requested
	ExitUsage    = 2 // any declaration or parse error
	ExitInternal = 3 // invariant violation, never caused by valid input
)

// ExitCode maps an error returned by Parse or a declaration method to
// its process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	if errors.Is(err, ErrHelp) || errors.Is(err, ErrVersion) {
		return ExitHelp
	}
	var internal *InternalError
	if errors.As(err, &internal) {
		return ExitInternal
	}
	return ExitUsage
}

// UnknownCommandError is returned when the command-position token
// matches no declared command and no wildcard candidate fits.
type UnknownCommandError struct {
	Name string
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("unknown command '%s'", e.Name)
}

// UnknownOptionError is returned when an option token does not resolve
// against the registry.
type UnknownOptionError struct {
	Token string
}

func (e *UnknownOptionError) Error() string {
	return fmt.Sprintf("invalid option '%s'", e.Token)
}

// OptionFormatError is returned when a long-form value option is given
// without an =value suffix.
type OptionFormatError struct {
	Token string
}

func (e *OptionFormatError) Error() string {
	return fmt.Sprintf("invalid option format '%s'", e.Token)
}

// ShortOptionError is returned when a short-form value option has no
// following token to consume.
type ShortOptionError struct {
	Option string // long name of the option missing its value
}

func (e *ShortOptionError) Error() string {
	return "invalid short option format"
}

// MissingArgumentError is returned when a required positional slot of a
// non-wildcard command has no token to bind.
type MissingArgumentError struct {
	Command string
	Slot    string
}

func (e *MissingArgumentError) Error() string {
	return fmt.Sprintf("missing required argument '%s'", e.Slot)
}

// MissingOptionError is returned when a command's required option
// reference is absent from the arguments.
type MissingOptionError struct {
	Command string
	Option  string
}

func (e *MissingOptionError) Error() string {
	return fmt.Sprintf("missing required option '%s'", e.Option)
}

// InvalidChoiceError is returned when a choice-group slot is bound to a
// token outside its literal set.
type InvalidChoiceError struct {
	Token string
}

func (e *InvalidChoiceError) Error() string {
	return fmt.Sprintf("invalid argument '%s'", e.Token)
}

// TooManyArgsError is returned when more positional tokens were given
// than any matching command declares slots for.
type TooManyArgsError struct {
	Command string
	Got     int
	Want    int
}

func (e *TooManyArgsError) Error() string {
	return fmt.Sprintf("too many arguments for '%s': got %d, want at most %d", e.Command, e.Got, e.Want)
}

// EmptyNameError is a declaration error: an option or command was
// declared with an empty name.
type EmptyNameError struct {
	Kind string // "option" or "command"
}

func (e *EmptyNameError) Error() string {
	return fmt.Sprintf("%s name is empty", e.Kind)
}

// DuplicateOptionError is a declaration error: a short or long option
// name was registered twice (the reserved help and version options
// count as already registered).
type DuplicateOptionError struct {
	Name  string
	Short bool
}

func (e *DuplicateOptionError) Error() string {
	if e.Short {
		return fmt.Sprintf("duplicate short option '%s'", e.Name)
	}
	return fmt.Sprintf("duplicate option '%s'", e.Name)
}

// DuplicateCommandError is a declaration error: two non-wildcard
// commands share a name.
type DuplicateCommandError struct {
	Name string
}

func (e *DuplicateCommandError) Error() string {
	return fmt.Sprintf("duplicate command '%s'", e.Name)
}

// SlotOrderError is a declaration error: a required positional slot
// follows an optional one.
type SlotOrderError struct {
	Command string
	Slot    string
}

func (e *SlotOrderError) Error() string {
	return fmt.Sprintf("command '%s': required argument '%s' follows an optional one", e.Command, e.Slot)
}

// UnknownOptionRefError is a declaration error: a command references an
// option that was never registered.
type UnknownOptionRefError struct {
	Command string
	Name    string
}

func (e *UnknownOptionRefError) Error() string {
	return fmt.Sprintf("command '%s': unknown option '%s'", e.Command, e.Name)
}

// InternalError reports an invariant violation: a name that passed
// declaration-time validation could not be re-resolved at parse time.
// It indicates a defect in this package, not bad input.
type InternalError struct {
	Name string
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("internal error: '%s' cannot be resolved", e.Name)
}
