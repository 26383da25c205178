// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cligram

import (
	"errors"
	"testing"
)

func TestOptionsRegister(t *testing.T) {
	tests := []struct {
		name    string
		opts    []Option
		wantErr error
	}{
		{
			name: "distinct names",
			opts: []Option{
				Opt("o1", "option1", "Option 1"),
				OptValue("o2", "option2", "Option 2"),
				OptValue("", "option3", "no short name"),
			},
		},
		{
			name:    "duplicate long name",
			opts:    []Option{Opt("a", "same", ""), Opt("b", "same", "")},
			wantErr: &DuplicateOptionError{Name: "same"},
		},
		{
			name:    "duplicate short name",
			opts:    []Option{Opt("x", "one", ""), Opt("x", "two", "")},
			wantErr: &DuplicateOptionError{Name: "x", Short: true},
		},
		{
			name:    "collision with reserved long",
			opts:    []Option{Opt("", "help", "")},
			wantErr: &DuplicateOptionError{Name: "help"},
		},
		{
			name:    "collision with reserved short",
			opts:    []Option{Opt("v", "verbose", "")},
			wantErr: &DuplicateOptionError{Name: "v", Short: true},
		},
		{
			name:    "empty long name",
			opts:    []Option{Opt("x", "", "")},
			wantErr: &EmptyNameError{Kind: "option"},
		},
		{
			// Names are case-sensitive: HELP is not help.
			name: "case sensitivity",
			opts: []Option{Opt("H", "HELP", "")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(Info{Name: "test"})
			err := p.Options(tt.opts...)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Options() error = %v", err)
				}
				return
			}
			if err == nil || err.Error() != tt.wantErr.Error() {
				t.Fatalf("Options() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestOptionsReservedAlwaysPresent(t *testing.T) {
	p := New(Info{Name: "test"})
	list := p.OptionList()
	if len(list) < 2 || list[0].Long != "help" || list[1].Long != "version" {
		t.Fatalf("reserved options not injected first: %+v", list)
	}
	if _, ok := p.LookupOption("h"); !ok {
		t.Error("short form of reserved help option did not resolve")
	}
	if _, ok := p.LookupOption("version"); !ok {
		t.Error("reserved version option did not resolve")
	}
}

func TestLookupOption(t *testing.T) {
	p := New(Info{Name: "test"})
	if err := p.Options(OptValue("o2", "option2", "")); err != nil {
		t.Fatal(err)
	}

	if o, ok := p.LookupOption("o2"); !ok || o.Long != "option2" {
		t.Errorf("LookupOption(o2) = %+v, %v", o, ok)
	}
	if o, ok := p.LookupOption("option2"); !ok || o.Flag {
		t.Errorf("LookupOption(option2) = %+v, %v", o, ok)
	}
	if _, ok := p.LookupOption("nope"); ok {
		t.Error("LookupOption resolved an unregistered name")
	}
	if _, ok := p.LookupOption(""); ok {
		t.Error("LookupOption resolved the empty name")
	}
}

func TestSplitOption(t *testing.T) {
	tests := []struct {
		tok   string
		name  string
		value string
	}{
		{"--name=value", "name", "value"},
		{"--name", "name", ""},
		{"-n", "n", ""},
		{"-n=v", "n", "v"},
		{"--name=", "name", ""},
		{"--name=a=b", "name", "a=b"},
		{"---name=v", "-name", "v"}, // only two dashes are stripped
		{"-", "", ""},
		{"--", "", ""},
	}
	for _, tt := range tests {
		name, value := splitOption(tt.tok)
		if name != tt.name || value != tt.value {
			t.Errorf("splitOption(%q) = (%q, %q), want (%q, %q)", tt.tok, name, value, tt.name, tt.value)
		}
	}
}

func TestIsShort(t *testing.T) {
	tests := []struct {
		tok  string
		want bool
	}{
		{"-n", true},
		{"-long", true},
		{"--name", false},
		{"---name", false},
		{"name", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := isShort(tt.tok); got != tt.want {
			t.Errorf("isShort(%q) = %v, want %v", tt.tok, got, tt.want)
		}
	}
}

func TestDeclarationErrorsExitUsage(t *testing.T) {
	p := New(Info{Name: "test"})
	err := p.Options(Opt("h", "halt", ""))
	if err == nil {
		t.Fatal("expected reserved-short collision")
	}
	var dup *DuplicateOptionError
	if !errors.As(err, &dup) {
		t.Fatalf("error type = %T, want *DuplicateOptionError", err)
	}
	if got := ExitCode(err); got != ExitUsage {
		t.Errorf("ExitCode(%v) = %d, want %d", err, got, ExitUsage)
	}
}
