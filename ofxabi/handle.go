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

// Package ofxabi implements the fixed OFX C ABI boundary (spec.md §6): the
// discovery entry points, the OfxPlugin/OfxHost struct layout, and the
// opaque-handle discipline described in spec.md §9 ("Opaque C handles").
//
// A handle crossing the ABI is not a bare pointer: it is an integer key
// into a process-wide registry that records, beside the Go object, the
// Kind it was minted for, so a plugin passing a stale or wrong-typed
// handle back produces kOfxStatErrBadHandle rather than a crash.
package ofxabi

import (
	"sync"
	"unsafe"
)

// Kind identifies what a Handle was minted for.
type Kind uint32

const (
	// KindPropertySet tags handles minted by propset.Set.
	KindPropertySet Kind = 0x4f465050 // "OFPP"
	// KindImageEffect tags handles minted by imageeffect.Instance / Descriptor.
	KindImageEffect Kind = 0x4f464945 // "OFIE"
	// KindParamSet tags parameter-set handles; no package in this module
	// mints one.
	KindParamSet Kind = 0x4f465053 // "OFPS"
	// KindClip tags clip handles; no package in this module mints one.
	KindClip Kind = 0x4f464943 // "OFIC"
	// KindImage tags image handles; no package in this module mints one.
	KindImage Kind = 0x4f464947 // "OFIG"
	// KindInteract tags handles minted by interact.Instance.
	KindInteract Kind = 0x4f464949 // "OFII"
)

// registry maps a Handle's integer identity to the Go value it authenticates.
// A handle is never the bare Go pointer cast to C: Go's moving GC forbids
// passing Go pointers to C and getting them back unchanged across calls that
// may trigger a GC, so each minted handle gets a stable, GC-independent
// integer key instead (spec §9: "a stable identity whose lifetime is
// bounded by its owning container").
var (
	mu      sync.Mutex
	nextKey uintptr = 1
	table   = map[uintptr]entry{}
)

type entry struct {
	kind  Kind
	value interface{}
}

// Handle is the opaque identity handed across the ABI boundary.
type Handle uintptr

// Mint registers value under kind and returns the Handle identifying it.
// The caller owns releasing it with Release when the underlying object is
// destroyed (spec §3: a handle must not outlive its emitting object).
func Mint(kind Kind, value interface{}) Handle {
	mu.Lock()
	defer mu.Unlock()
	k := nextKey
	nextKey++
	table[k] = entry{kind, value}
	return Handle(k)
}

// Release invalidates h. Subsequent Lookups for h return ok=false.
func Release(h Handle) {
	mu.Lock()
	defer mu.Unlock()
	delete(table, uintptr(h))
}

// Lookup resolves h, verifying it was minted with the expected kind.
// ok is false for a zero handle, an unknown handle, or a kind mismatch —
// any of which the caller reports as kOfxStatErrBadHandle.
func Lookup(h Handle, want Kind) (value interface{}, ok bool) {
	if h == 0 {
		return nil, false
	}
	mu.Lock()
	defer mu.Unlock()
	e, found := table[uintptr(h)]
	if !found || e.kind != want {
		return nil, false
	}
	return e.value, true
}

// AsPointer renders h in the form a C caller stores and round-trips
// (spec §4.B: "a stable opaque handle ... round-tripped by the suite").
// The returned pointer is never dereferenced on the Go side; it's an
// opaque integer disguised as a pointer purely so the C struct field that
// carries it (e.g. OfxImageEffectHandle) type-checks on the C side.
func (h Handle) AsPointer() unsafe.Pointer {
	return unsafe.Pointer(uintptr(h)) //nolint:govet // intentionally non-dereferenceable sentinel
}

// HandleFromPointer reverses AsPointer.
func HandleFromPointer(p unsafe.Pointer) Handle {
	return Handle(uintptr(p))
}
