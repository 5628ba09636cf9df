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

// SetGetHook installs (or replaces) the get hook for name. At most one is
// ever active (spec §4.B).
func (s *Set) SetGetHook(name string, hook GetHook) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, err := s.lookup(name)
	if err != nil {
		return err
	}
	p.getHook = hook
	return nil
}

// AddSetHook appends an observer to name's append-only set-hook chain.
func (s *Set) AddSetHook(name string, hook SetHook) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, err := s.lookup(name)
	if err != nil {
		return err
	}
	p.setHooks = append(p.setHooks, hook)
	return nil
}

// SetNotifyHook installs the once-per-Set-call observer for name.
func (s *Set) SetNotifyHook(name string, hook NotifyHook) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, err := s.lookup(name)
	if err != nil {
		return err
	}
	p.notifyHook = hook
	return nil
}

// Clone returns a copy of s: every property's name/type/dimension/default/
// current vectors are duplicated, read-only flags are cleared, and no
// hooks are carried over (SPEC_FULL.md §12, grounded on the original
// PropertySuite copy constructor). The clone is independently permissive
// per s's own setting and gets its own handle.
func (s *Set) Clone() *Set {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := New(s.permissive)
	out.order = make([]string, len(s.order))
	copy(out.order, s.order)
	for name, p := range s.props {
		out.props[name] = p.clone()
	}
	return out
}
