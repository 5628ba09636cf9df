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

// Package clip is component G: clip descriptors and instances. A clip
// instance's polymorphic properties (pixel depth, components, premult, PAR,
// frame rate/range, field order, connected, unmapped variants, continuous
// samples) are served through property-system get hooks onto an
// embedder-supplied Virtual, so a plug-in's read can never observe a value
// that has drifted from what the embedder currently reports (spec §3/§4.G).
package clip

import (
	"github.com/openfx-host/ofxhost/internal/xerr"
	"github.com/openfx-host/ofxhost/ofxstatus"
	"github.com/openfx-host/ofxhost/propset"
)

// ErrUnknownClip is returned when a name does not name a defined clip.
const ErrUnknownClip = xerr.Const("clip: unknown clip")

// Descriptor is a clip's property bag: name, labels, supported components,
// temporal access, optional/mask flags, field-extraction policy, tile
// support (spec §3: "Clip descriptor").
type Descriptor struct {
	name       string
	Properties *propset.Set
}

// NewDescriptor seeds a new clip descriptor named name.
func NewDescriptor(name string) *Descriptor {
	d := &Descriptor{name: name, Properties: propset.New(false)}
	p := d.Properties

	p.Define(ofxstatus.PropName, propset.TypeString, 1, true, propset.StringValue(name))
	p.Define(ofxstatus.PropLabel, propset.TypeString, 1, false, propset.StringValue(name))
	p.Define(ofxstatus.PropShortLabel, propset.TypeString, 1, false, propset.StringValue(name))
	p.Define(ofxstatus.PropLongLabel, propset.TypeString, 1, false, propset.StringValue(name))
	p.Define(ofxstatus.ImageEffectPropSupportedComponents, propset.TypeString, 0, false)
	p.Define(ofxstatus.ImageEffectPropTemporalClipAccess, propset.TypeInt, 1, false, propset.IntValue(0))
	p.Define(ofxstatus.ImageClipPropOptional, propset.TypeInt, 1, false, propset.IntValue(0))
	p.Define(ofxstatus.ImageClipPropIsMask, propset.TypeInt, 1, false, propset.IntValue(0))
	p.Define(ofxstatus.ImageClipPropFieldExtraction, propset.TypeString, 1, false,
		propset.StringValue("OfxImageFieldDoubled"))
	p.Define(ofxstatus.ImageEffectPropSupportsTiles, propset.TypeInt, 1, false, propset.IntValue(1))

	return d
}

// Name returns the clip's (script-stable) name.
func (d *Descriptor) Name() string { return d.name }

// SetDescriptor is the insertion-ordered, order-preserving mapping of clip
// descriptors an effect descriptor owns (spec §3: "a mapping and
// order-preserving list of clip descriptors").
type SetDescriptor struct {
	byName map[string]*Descriptor
	order  []string
}

// NewSetDescriptor creates an empty clip-set descriptor.
func NewSetDescriptor() *SetDescriptor {
	return &SetDescriptor{byName: map[string]*Descriptor{}}
}

// Define creates and inserts a new clip descriptor named name, preserving
// its position in the order if name is redefined.
func (s *SetDescriptor) Define(name string) *Descriptor {
	d := NewDescriptor(name)
	if _, exists := s.byName[name]; !exists {
		s.order = append(s.order, name)
	}
	s.byName[name] = d
	return d
}

// Get returns the named clip descriptor.
func (s *SetDescriptor) Get(name string) (*Descriptor, error) {
	d, ok := s.byName[name]
	if !ok {
		return nil, ErrUnknownClip
	}
	return d, nil
}

// Names returns clip names in insertion (describe) order.
func (s *SetDescriptor) Names() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}
