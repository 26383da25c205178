// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cligram

import (
	"fmt"
	"slices"
	"strconv"
)

type valueKind int

const (
	kindNull valueKind = iota
	kindBool
	kindInt
	kindString
)

// Value is one resolved argument: exactly one of null, bool, int, or
// string. The zero Value is null, meaning "not supplied, no default".
// Values are immutable once constructed.
type Value struct {
	kind valueKind
	b    bool
	i    int
	s    string
}

// Null returns the null Value.
func Null() Value { return Value{} }

// Bool returns a bool-valued Value.
func Bool(b bool) Value { return Value{kind: kindBool, b: b} }

// Int returns an int-valued Value.
func Int(i int) Value { return Value{kind: kindInt, i: i} }

// String returns a string-valued Value.
func String(s string) Value { return Value{kind: kindString, s: s} }

func (v Value) IsNull() bool   { return v.kind == kindNull }
func (v Value) IsBool() bool   { return v.kind == kindBool }
func (v Value) IsInt() bool    { return v.kind == kindInt }
func (v Value) IsString() bool { return v.kind == kindString }

// Bool returns the bool variant, or false if v holds another kind.
func (v Value) Bool() bool {
	return v.kind == kindBool && v.b
}

// Int returns the int variant, or 0 if v holds another kind.
func (v Value) Int() int {
	if v.kind != kindInt {
		return 0
	}
	return v.i
}

// Str returns the string variant, or "" if v holds another kind.
func (v Value) Str() string {
	if v.kind != kindString {
		return ""
	}
	return v.s
}

// Is compares v against a native literal: nil, a bool, an int, or a
// string. A Value only equals a literal of its own kind; comparisons
// across kinds (or against any other type) report false rather than
// erroring.
func (v Value) Is(want any) bool {
	switch want := want.(type) {
	case nil:
		return v.kind == kindNull
	case bool:
		return v.kind == kindBool && v.b == want
	case int:
		return v.kind == kindInt && v.i == want
	case string:
		return v.kind == kindString && v.s == want
	}
	return false
}

// Equal reports whether v and w hold the same kind and contents.
func (v Value) Equal(w Value) bool {
	if v.kind != w.kind {
		return false
	}
	switch v.kind {
	case kindBool:
		return v.b == w.b
	case kindInt:
		return v.i == w.i
	case kindString:
		return v.s == w.s
	}
	return true
}

// Dump renders v for diagnostics: null, true, 7, "text".
func (v Value) Dump() string {
	switch v.kind {
	case kindBool:
		return strconv.FormatBool(v.b)
	case kindInt:
		return strconv.Itoa(v.i)
	case kindString:
		return strconv.Quote(v.s)
	}
	return "null"
}

// Values is the result of a successful parse: a mapping from every
// declared name (commands, positional slots, choice literals, option
// long names) to its resolved Value. All declared keys are present
// regardless of which command matched.
type Values map[string]Value

// Bool returns the bool under key, or false if absent or another kind.
func (vs Values) Bool(key string) bool { return vs[key].Bool() }

// Int returns the int under key, or 0 if absent or another kind.
func (vs Values) Int(key string) int { return vs[key].Int() }

// Str returns the string under key, or "" if absent or another kind.
func (vs Values) Str(key string) string { return vs[key].Str() }

func (vs Values) clone() Values {
	out := make(Values, len(vs))
	for k, v := range vs {
		out[k] = v
	}
	return out
}

// Dump renders vs for diagnostics, one "key = value" line per entry in
// lexical key order.
func (vs Values) Dump() string {
	keys := make([]string, 0, len(vs))
	for k := range vs {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	var out string
	for _, k := range keys {
		out += fmt.Sprintf("%s = %s\n", k, vs[k].Dump())
	}
	return out
}
