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

import (
	"github.com/openfx-host/ofxhost/ofxstatus"
	"github.com/openfx-host/ofxhost/propset"
)

// SetInstance owns every parameter instance of one image-effect instance,
// in descriptor insertion order (spec §4.F: "Owns instances in insertion
// order; cleans them up at destruction").
type SetInstance struct {
	byName map[string]*Instance
	order  []string
}

// NewSetInstance builds an empty instance set.
func NewSetInstance() *SetInstance {
	return &SetInstance{byName: map[string]*Instance{}}
}

// Add inserts inst, appending it to the order.
func (s *SetInstance) Add(inst *Instance) {
	name := inst.Name()
	if _, exists := s.byName[name]; !exists {
		s.order = append(s.order, name)
	}
	s.byName[name] = inst
}

// Get returns the named instance.
func (s *SetInstance) Get(name string) (*Instance, error) {
	inst, ok := s.byName[name]
	if !ok {
		return nil, ErrUnknownParam
	}
	return inst, nil
}

// Names returns parameter names in insertion order.
func (s *SetInstance) Names() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Destroy releases every instance's property-set handle.
func (s *SetInstance) Destroy() {
	for _, inst := range s.byName {
		inst.Properties.Release()
	}
}

// ResolveParents wires every non-group/page parameter whose
// OfxParamPropParent names a Group into that group's page-child list, and
// wires Page parameters' own OfxParamPropPageChild lists the same way
// (spec §4.F: "a second pass resolves parent references to wire children
// into their Group and the set's Pages"). It is run once, after the
// per-context describe pass that defines every parameter is complete, so
// forward references to a Group or Page declared later in the descriptor
// order still resolve.
func (s *SetInstance) ResolveParents() error {
	for _, name := range s.order {
		inst := s.byName[name]
		parent, err := inst.Properties.GetString(ofxstatus.ParamPropParent, 0)
		if err != nil || parent == "" {
			continue
		}
		parentInst, ok := s.byName[parent]
		if !ok {
			continue
		}
		if parentInst.Kind() != KindGroup && parentInst.Kind() != KindPage {
			continue
		}
		if !parentInst.Properties.Has(ofxstatus.ParamPropPageChild) {
			parentInst.Properties.Define(ofxstatus.ParamPropPageChild, propset.TypeString, 0, false)
		}
		dim, err := parentInst.Properties.Dimension(ofxstatus.ParamPropPageChild)
		if err != nil {
			dim = 0
		}
		if err := parentInst.Properties.SetString(ofxstatus.ParamPropPageChild, dim, name, propset.FromHost); err != nil {
			return err
		}
	}
	return nil
}
