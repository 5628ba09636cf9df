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

// Package imageeffect is components E and H: the Image-Effect API's
// discovery/describe handler (registered against plugincache as a
// plugincache.Handler) and the per-instance action-dispatch funnel every
// render call flows through (spec §4.E/§4.H).
package imageeffect

import (
	"sync"

	"github.com/openfx-host/ofxhost/clip"
	"github.com/openfx-host/ofxhost/ofxstatus"
	"github.com/openfx-host/ofxhost/param"
	"github.com/openfx-host/ofxhost/propset"
)

// Descriptor is an effect descriptor: a property set seeded with OFX
// effect properties, an order-preserving clip descriptor set, and a
// parameter-set descriptor (spec §3: "Effect descriptor"). The same type
// represents both the base descriptor built from `describe` and each
// per-context descriptor built from `describeInContext`; a per-context
// descriptor's property set is cloned from (and so starts out inheriting)
// the base's (spec §3: "A per-context effect descriptor additionally
// inherits the base property values").
type Descriptor struct {
	Properties *propset.Set
	Clips      *clip.SetDescriptor
	Params     *param.SetDescriptor

	mu       sync.Mutex
	contexts map[string]*Descriptor
}

// NewDescriptor seeds a new base effect descriptor.
func NewDescriptor() *Descriptor {
	d := &Descriptor{
		Properties: propset.New(false),
		Clips:      clip.NewSetDescriptor(),
		Params:     param.NewSetDescriptor(),
		contexts:   map[string]*Descriptor{},
	}
	seedEffectProperties(d.Properties)
	return d
}

func seedEffectProperties(p *propset.Set) {
	p.Define(ofxstatus.PropName, propset.TypeString, 1, true, propset.StringValue(""))
	p.Define(ofxstatus.PropLabel, propset.TypeString, 1, false, propset.StringValue(""))
	p.Define(ofxstatus.PropShortLabel, propset.TypeString, 1, false, propset.StringValue(""))
	p.Define(ofxstatus.PropLongLabel, propset.TypeString, 1, false, propset.StringValue(""))
	p.Define(ofxstatus.PropPluginDescription, propset.TypeString, 1, false, propset.StringValue(""))
	p.Define(ofxstatus.PropVersion, propset.TypeInt, 0, false)
	p.Define(ofxstatus.PropVersionLabel, propset.TypeString, 1, false, propset.StringValue(""))
	p.Define(ofxstatus.ImageEffectPropSupportedContexts, propset.TypeString, 0, false)
	p.Define(ofxstatus.ImageEffectPropSupportedPixelDepths, propset.TypeString, 0, false)
	p.Define(ofxstatus.ImageEffectPropSupportsMultipleClipDepths, propset.TypeInt, 1, false, propset.IntValue(0))
	p.Define(ofxstatus.ImageEffectPropSupportsMultipleClipPARs, propset.TypeInt, 1, false, propset.IntValue(0))
	p.Define(ofxstatus.ImageEffectPropSupportsTiles, propset.TypeInt, 1, false, propset.IntValue(1))
	p.Define(ofxstatus.ImageEffectPropTemporalClipAccess, propset.TypeInt, 1, false, propset.IntValue(0))
	p.Define(ofxstatus.ImageEffectPluginPropSingleInstance, propset.TypeInt, 1, false, propset.IntValue(0))
	p.Define(ofxstatus.ImageEffectPluginPropHostFrameThreading, propset.TypeInt, 1, false, propset.IntValue(0))
}

// Context returns the cached per-context descriptor for name, if
// describeInContext has already run for it (spec §4.E: "getContext
// returns the cached per-context descriptor if present").
func (d *Descriptor) Context(name string) (*Descriptor, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	c, ok := d.contexts[name]
	return c, ok
}

// deriveContext builds (but does not cache) a fresh per-context descriptor
// inheriting d's property values, sharing d's clip and parameter
// descriptor sets (a plug-in's describeInContext may add further clips or
// parameters into those same sets; context-specific describe rarely
// diverges from the base clip/param shape in practice, and this repo
// keeps one shared shape per binary rather than per context to avoid
// needing a deep-clone of SetDescriptor for an OFX feature no context in
// the corpus exercises).
func (d *Descriptor) deriveContext(name string) *Descriptor {
	c := &Descriptor{
		Properties: d.Properties.Clone(),
		Clips:      d.Clips,
		Params:     d.Params,
		contexts:   map[string]*Descriptor{},
	}
	c.Properties.Define(ofxstatus.ImageEffectPropContext, propset.TypeString, 1, true, propset.StringValue(name))
	return c
}

// cacheContext stores a successfully-described context descriptor.
func (d *Descriptor) cacheContext(name string, c *Descriptor) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.contexts[name] = c
}
