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

// Package binloader is component A: it opens and closes shared libraries,
// tracks the file size and mtime used to detect changed binaries (spec
// §3/§4.D), and resolves named symbols. It is grounded on the teacher's
// device-binding shape (_examples/google-gapid/core/os/device/bind/simple.go
// holds identity + status; refcounted lifetime mirrors
// core/os/device/bind/registry.go's Listen/unregister pairing) adapted to
// POSIX dlopen/dlsym via cgo instead of a device transport.
package binloader

import (
	"fmt"
	"os"
	"sync"

	"github.com/openfx-host/ofxhost/ofxabi"
)

// Binary is one shared library on disk: a bundle's per-arch plugin
// library. Binary is safe for concurrent use; callers typically serialize
// through plugincache's registry lock regardless (spec §5).
type Binary struct {
	mu sync.Mutex

	path   string // the resolved per-arch library path (spec §4.D)
	mtime  int64  // unix nanoseconds, last known
	size   int64  // bytes, last known
	valid  bool   // false if the last Stat failed

	refs    int
	handle  nativeHandle // nil iff refs == 0 (spec §3 invariant 3)
	numPlug Symbol
	getPlug Symbol
}

// New creates a Binary for path without loading it or stat'ing it yet;
// call Stat to populate the mtime/size fields used for change detection.
func New(path string) *Binary {
	return &Binary{path: path}
}

// Path returns the binary's file path.
func (b *Binary) Path() string { return b.path }

// Stat refreshes the recorded mtime and size from disk. Failure ("file
// cannot be stat'd", spec §4.A) marks the binary invalid and clears the
// recorded signature so the next Changed call reports true.
func (b *Binary) Stat() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	fi, err := os.Stat(b.path)
	if err != nil {
		b.valid = false
		b.mtime, b.size = 0, 0
		return fmt.Errorf("stat %s: %w", b.path, err)
	}
	b.mtime = fi.ModTime().UnixNano()
	b.size = fi.Size()
	b.valid = true
	return nil
}

// SetSignature primes the recorded (mtime, size) pair without touching
// disk, for a binary restored from the on-disk plug-in cache (spec §4.D
// reconcile: a cached binary whose signature still matches is accepted
// without ever being dlopen'd).
func (b *Binary) SetSignature(mtime, size int64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.mtime, b.size, b.valid = mtime, size, true
}

// Valid reports whether the last Stat succeeded.
func (b *Binary) Valid() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.valid
}

// Signature returns the (mtime, size) pair Stat last recorded.
func (b *Binary) Signature() (mtime, size int64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.mtime, b.size
}

// Changed reports whether the on-disk file's current (mtime, size) differs
// from the recorded signature (spec §3: "A binary is changed iff..."). It
// does not mutate the recorded signature; call Stat to accept the new one.
func (b *Binary) Changed() bool {
	b.mu.Lock()
	recorded := [2]int64{b.mtime, b.size}
	b.mu.Unlock()
	fi, err := os.Stat(b.path)
	if err != nil {
		return true
	}
	return [2]int64{fi.ModTime().UnixNano(), fi.Size()} != recorded
}

// RefCount returns the current reference count.
func (b *Binary) RefCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.refs
}

// Loaded reports whether the binary currently holds an OS handle.
func (b *Binary) Loaded() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.handle != nil
}

// Ref increments the reference count, loading the binary on the 0->1
// transition (spec §4.A/§5).
func (b *Binary) Ref() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.refs == 0 {
		h, err := load(b.path)
		if err != nil {
			return fmt.Errorf("load %s: %w", b.path, err)
		}
		b.handle = h
		num, err := lookup(h, discoveryNumPlugins)
		if err != nil {
			unload(h)
			b.handle = nil
			return err
		}
		get, err := lookup(h, discoveryGetPlugin)
		if err != nil {
			unload(h)
			b.handle = nil
			return err
		}
		b.numPlug, b.getPlug = num, get
	}
	b.refs++
	return nil
}

// Unref decrements the reference count, unloading the binary on the 1->0
// transition. The count is clamped to zero and never goes negative (spec
// §4.A).
func (b *Binary) Unref() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.refs == 0 {
		return
	}
	b.refs--
	if b.refs == 0 && b.handle != nil {
		unload(b.handle)
		b.handle = nil
		b.numPlug, b.getPlug = nil, nil
	}
}

// Discovery returns the binary's discovery entry points. The binary must
// be loaded (RefCount() > 0); calling this on an unloaded binary returns
// the zero DiscoveryEntry, which is a safe configuration for ofxabi's
// calls to fail loudly rather than dereference null.
func (b *Binary) Discovery() ofxabi.DiscoveryEntry {
	b.mu.Lock()
	defer b.mu.Unlock()
	return ofxabi.NewDiscoveryEntry(ofxabi.Symbol(b.numPlug), ofxabi.Symbol(b.getPlug))
}

// Symbol looks up an arbitrary named symbol. Returns nil on an unloaded
// binary or an unresolved name (spec §4.A: "symbol lookup on unloaded
// binary -> null").
func (b *Binary) Symbol(name string) Symbol {
	b.mu.Lock()
	h := b.handle
	b.mu.Unlock()
	if h == nil {
		return nil
	}
	sym, err := lookup(h, name)
	if err != nil {
		return nil
	}
	return sym
}
