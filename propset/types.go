// Copyright (C) 2017 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package propset is component B: the typed, dynamic, multi-valued
// property system every other component (descriptors, instances, clips,
// images, the host facade) is built on (spec.md §3/§4.B). It is grounded
// on the teacher's type-registry shape
// (_examples/google-gapid/framework/binary/registry/registry.go's
// signature-keyed lookup map with fallback chaining) generalized from
// "one entry per wire type" to "one entry per named, typed, multi-valued
// property".
package propset

import (
	"unsafe"

	"github.com/openfx-host/ofxhost/internal/xerr"
)

// Type is the semantic type of a property (spec §3).
type Type int

const (
	TypeInt Type = iota
	TypeDouble
	TypeString
	TypePointer
)

func (t Type) String() string {
	switch t {
	case TypeInt:
		return "int"
	case TypeDouble:
		return "double"
	case TypeString:
		return "string"
	case TypePointer:
		return "pointer"
	default:
		return "?"
	}
}

// Value is a single boxed typed value, used at the Hook boundary where a
// single signature must carry any of the four OFX property types.
type Value struct {
	Type Type
	I    int64
	F    float64
	S    string
	P    unsafe.Pointer
}

// IntValue, DoubleValue, StringValue and PointerValue construct a typed Value.
func IntValue(v int64) Value          { return Value{Type: TypeInt, I: v} }
func DoubleValue(v float64) Value     { return Value{Type: TypeDouble, F: v} }
func StringValue(v string) Value      { return Value{Type: TypeString, S: v} }
func PointerValue(v unsafe.Pointer) Value { return Value{Type: TypePointer, P: v} }

// Errors returned by this package. These map onto OFX wire statuses at the
// suite boundary (see ToStatus in status.go); internally they are ordinary
// Go errors so host-side callers can use errors.Is.
const (
	// ErrUnknown: name not present in a non-permissive set (spec §4.B).
	ErrUnknown = xerr.Const("propset: unknown property")
	// ErrBadType: type mismatch between the property and the requested
	// accessor (spec §4.B).
	ErrBadType = xerr.Const("propset: bad type")
	// ErrBadIndex: index >= fixed dimension for a d>0 property (spec §4.B).
	ErrBadIndex = xerr.Const("propset: bad index")
	// ErrReadOnly: a plugin-originated write to a plugin-read-only property
	// (spec §4.B).
	ErrReadOnly = xerr.Const("propset: read-only")
	// ErrReentrant: a set hook attempted to mutate the property that
	// triggered it (spec §4.B/§9).
	ErrReentrant = xerr.Const("propset: reentrant hook mutation")
	// ErrWrongCount: RequireDimension found a property whose observable
	// dimension disagrees with N (spec §4.G: "frame range is exactly
	// 2; others are 1").
	ErrWrongCount = xerr.Const("propset: wrong value count for property")
)
