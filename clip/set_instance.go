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

package clip

import "github.com/openfx-host/ofxhost/internal/xerr"

// ErrUnknownClipInstance is returned when a name does not name a clip on an
// image-effect instance.
const ErrUnknownClipInstance = xerr.Const("clip: unknown clip instance")

// SetInstance owns every clip instance of one image-effect instance, in
// descriptor order (spec §4.H: "for each clip descriptor build a clip
// instance (in descriptor order)").
type SetInstance struct {
	byName map[string]*Instance
	order  []string
}

// NewSetInstance builds an empty clip-instance set.
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

// Get returns the named clip instance.
func (s *SetInstance) Get(name string) (*Instance, error) {
	inst, ok := s.byName[name]
	if !ok {
		return nil, ErrUnknownClipInstance
	}
	return inst, nil
}

// Names returns clip names in insertion (descriptor) order.
func (s *SetInstance) Names() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Destroy releases every clip instance's property set (spec §4.H:
// destroyInstance tears down everything createInstance built).
func (s *SetInstance) Destroy() {
	for _, inst := range s.byName {
		inst.Properties.Release()
	}
}

// NotifyChanged routes instanceChanged to the named clip, if it exists
// (spec §4.G). A name outside the clip set is silently ignored: the
// plug-in may legally tag instanceChanged with a parameter name instead of
// a clip name, and the caller is expected to try both sets.
func (s *SetInstance) NotifyChanged(name string) {
	if inst, ok := s.byName[name]; ok {
		inst.NotifyChanged()
	}
}
