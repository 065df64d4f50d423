// File: value.go
// Title: Typed Flag Values
// Description: Defines the typed value variant used for flag values
//              and parameter defaults
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-25
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-25 v0.1.0: Initial implementation

package command

import (
	"fmt"
	"strconv"
)

// ValueKind discriminates the possible types of a Value.
type ValueKind int

const (
	// KindString is a plain text value.
	KindString ValueKind = iota

	// KindNumber is a 64-bit integer value.
	KindNumber

	// KindBoolean is a true/false value.
	KindBoolean
)

// String returns the lowercase type name, as used in verification
// error messages.
func (k ValueKind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBoolean:
		return "boolean"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Value is a typed scalar. Exactly one of the payload fields is
// meaningful, selected by Kind.
type Value struct {
	Kind ValueKind
	Str  string
	Num  int64
	Bool bool
}

// StringValue creates a string-typed value.
func StringValue(s string) Value {
	return Value{Kind: KindString, Str: s}
}

// NumberValue creates a number-typed value.
func NumberValue(n int64) Value {
	return Value{Kind: KindNumber, Num: n}
}

// BoolValue creates a boolean-typed value.
func BoolValue(b bool) Value {
	return Value{Kind: KindBoolean, Bool: b}
}

// String renders the payload for display.
func (v Value) String() string {
	switch v.Kind {
	case KindNumber:
		return strconv.FormatInt(v.Num, 10)
	case KindBoolean:
		return strconv.FormatBool(v.Bool)
	default:
		return v.Str
	}
}

// Flags maps long flag names to their typed values.
type Flags map[string]Value

// GetString returns the string payload of the named flag.
func (f Flags) GetString(name string) (string, bool) {
	v, ok := f[name]
	if !ok || v.Kind != KindString {
		return "", false
	}
	return v.Str, true
}

// GetNumber returns the numeric payload of the named flag.
func (f Flags) GetNumber(name string) (int64, bool) {
	v, ok := f[name]
	if !ok || v.Kind != KindNumber {
		return 0, false
	}
	return v.Num, true
}

// GetBool returns the boolean payload of the named flag.
func (f Flags) GetBool(name string) (bool, bool) {
	v, ok := f[name]
	if !ok || v.Kind != KindBoolean {
		return false, false
	}
	return v.Bool, true
}

// Has reports whether the named flag is present, regardless of type.
func (f Flags) Has(name string) bool {
	_, ok := f[name]
	return ok
}

// Clone returns a shallow copy of the flag map.
func (f Flags) Clone() Flags {
	if f == nil {
		return nil
	}
	c := make(Flags, len(f))
	for k, v := range f {
		c[k] = v
	}
	return c
}
