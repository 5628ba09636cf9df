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

package propset

import (
	"sync"

	"github.com/openfx-host/ofxhost/ofxabi"
)

// Origin distinguishes a write made by the host itself from one arriving
// through the C ABI from a plugin; only the latter is subject to the
// plugin-read-only flag (spec §4.B).
type Origin int

const (
	// FromHost is a write made by host-side Go code.
	FromHost Origin = iota
	// FromPlugin is a write decoded off a suite call from a plugin.
	FromPlugin
)

// Set is an ordered mapping from name to Property (spec §3's "Property
// set"), plus the insertion-order list XML serialization (component C)
// needs for stable output.
type Set struct {
	mu         sync.RWMutex
	props      map[string]*Property
	order      []string
	permissive bool
	handle     ofxabi.Handle
}

// New creates an empty Set. permissive controls the §4.B miss policy: a
// permissive set creates a property of the inferred type on a read-style
// miss; a strict set returns ErrUnknown. Per spec §9's open question, this
// repository picks one explicit policy per set rather than mixing the two
// within a set.
func New(permissive bool) *Set {
	s := &Set{props: map[string]*Property{}, permissive: permissive}
	s.handle = ofxabi.Mint(ofxabi.KindPropertySet, s)
	return s
}

// Handle returns the stable opaque handle suite functions round-trip
// (spec §4.B).
func (s *Set) Handle() ofxabi.Handle { return s.handle }

// Release invalidates the set's handle. Call when the owning object (a
// descriptor, instance, clip, image...) is destroyed.
func (s *Set) Release() { ofxabi.Release(s.handle) }

// Permissive reports whether this set creates properties on a read-style miss.
func (s *Set) Permissive() bool { return s.permissive }

// Define adds a new property. Re-defining an existing name replaces it
// (and its hooks), matching the teacher registry's last-writer-wins
// Define semantics seen across the pack's registration patterns.
func (s *Set) Define(name string, typ Type, dim int, readOnly bool, defaults ...Value) *Property {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.props[name]; !exists {
		s.order = append(s.order, name)
	}
	p := newProperty(name, typ, dim, readOnly, defaults)
	s.props[name] = p
	return p
}

// Remove deletes a property and its position in the insertion order.
func (s *Set) Remove(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.props[name]; !ok {
		return
	}
	delete(s.props, name)
	for i, n := range s.order {
		if n == name {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Names returns property names in insertion order.
func (s *Set) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Has reports whether name is defined.
func (s *Set) Has(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.props[name]
	return ok
}

// lookup finds a property by name; it never fabricates one. Fabrication in
// a permissive set happens in getOrFabricate, which both the typed Get*
// and Set* accessors use, so a miss on either a read or a write creates
// the property with the accessor's type.
func (s *Set) lookup(name string) (*Property, error) {
	if p, ok := s.props[name]; ok {
		return p, nil
	}
	return nil, ErrUnknown
}

// Property returns the named property, or ErrUnknown if absent (even in a
// permissive set: permissive fabrication only applies to the typed Get*
// and Set* accessors, which know what type to fabricate).
func (s *Set) Property(name string) (*Property, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lookup(name)
}

func (s *Set) getOrFabricate(name string, typ Type, dim int) (*Property, error) {
	p, err := s.lookup(name)
	if err == nil {
		return p, nil
	}
	if !s.permissive {
		return nil, ErrUnknown
	}
	if _, exists := s.props[name]; !exists {
		s.order = append(s.order, name)
	}
	p = newProperty(name, typ, dim, false, nil)
	s.props[name] = p
	return p, nil
}

func checkType(p *Property, want Type) error {
	if p.typ != want {
		return ErrBadType
	}
	return nil
}

// Dimension returns the property's observable dimension (spec §3).
func (s *Set) Dimension(name string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, err := s.lookup(name)
	if err != nil {
		return 0, err
	}
	return p.dimension()
}

// Reset restores a property to its default values (spec TP 1).
func (s *Set) Reset(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, err := s.lookup(name)
	if err != nil {
		return err
	}
	return p.reset()
}

// fireHooks runs set hooks then the notify hook for one Set call. Guards
// against reentrant mutation of the same property from within a hook
// (spec §4.B/§9).
func (s *Set) fireHooks(p *Property, v Value, indexOrCount int) {
	if p.inHooks {
		return
	}
	p.inHooks = true
	defer func() { p.inHooks = false }()
	for _, h := range p.setHooks {
		h(p.name, v, indexOrCount)
	}
	if p.notifyHook != nil {
		p.notifyHook(p.name)
	}
}

// setValue is the shared single-index write path used by every typed
// Set* accessor; it enforces read-only-for-plugin-writes (spec §4.B) and
// the reentry guard, then fires hooks.
func (s *Set) setValue(name string, typ Type, i int, v Value, origin Origin) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, err := s.getOrFabricate(name, typ, 0)
	if err != nil {
		return err
	}
	if err := checkType(p, typ); err != nil {
		return err
	}
	if p.inHooks {
		return ErrReentrant
	}
	if origin == FromPlugin && p.readOnly {
		return ErrValue(name)
	}
	if p.getHook != nil {
		// A get-hooked property still observes writes (the hook owns
		// storage, but the host virtual behind it is expected to apply
		// the write itself via its own Set call path before this fires);
		// propset only drives the hook-independent notification here.
		s.fireHooks(p, v, i)
		return nil
	}
	if err := p.set(i, v); err != nil {
		return err
	}
	s.fireHooks(p, v, i)
	return nil
}

// ErrValue reports a read-only violation for property name, matching the
// OFX wire status kOfxStatErrValue (spec §4.B).
func ErrValue(name string) error { return &readOnlyError{name} }

type readOnlyError struct{ name string }

func (e *readOnlyError) Error() string { return "propset: " + e.name + " is plugin-read-only" }
func (e *readOnlyError) Is(target error) bool { return target == ErrReadOnly }
