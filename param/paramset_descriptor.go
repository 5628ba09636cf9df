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

package param

import "github.com/openfx-host/ofxhost/internal/xerr"

// ErrUnknownParam is returned when a name does not name a defined
// parameter.
const ErrUnknownParam = xerr.Const("param: unknown parameter")

// SetDescriptor is the insertion-ordered mapping of parameter descriptors
// a plug-in builds during describe/describeInContext (spec §3: "Mapping +
// insertion-ordered list of parameter descriptors").
type SetDescriptor struct {
	byName map[string]*Descriptor
	order  []string
}

// NewSetDescriptor creates an empty parameter-set descriptor.
func NewSetDescriptor() *SetDescriptor {
	return &SetDescriptor{byName: map[string]*Descriptor{}}
}

// Define creates and inserts a new parameter descriptor of kind named
// name. Re-defining an existing name replaces it in place, preserving its
// position in the order (a plug-in describe pass never redefines the same
// name twice in practice, but this mirrors propset.Set.Define's
// last-writer-wins policy for consistency).
func (s *SetDescriptor) Define(name string, kind Kind) *Descriptor {
	d := NewDescriptor(name, kind)
	if _, exists := s.byName[name]; !exists {
		s.order = append(s.order, name)
	}
	s.byName[name] = d
	return d
}

// Get returns the named descriptor.
func (s *SetDescriptor) Get(name string) (*Descriptor, error) {
	d, ok := s.byName[name]
	if !ok {
		return nil, ErrUnknownParam
	}
	return d, nil
}

// Names returns parameter names in insertion (describe) order.
func (s *SetDescriptor) Names() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}
