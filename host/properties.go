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

// Package host implements the Host facade (component J): the host's own
// property set, the fetchSuite trampoline a plug-in calls back into, and
// message/persistent-message routing to an embedder-supplied Sink
// (spec §4.J).
package host

import (
	"github.com/openfx-host/ofxhost/ofxstatus"
	"github.com/openfx-host/ofxhost/propset"
)

// Identity is the fixed identification a plug-in sees for this host
// through its OfxPropHostOSHandle-adjacent name/label/version triple.
type Identity struct {
	Name         string
	Label        string
	Version      []int64
	VersionLabel string
}

// Capabilities is the feature/limits advertisement a plug-in is expected
// to check before relying on optional host behaviour (spec §4.J: "host-
// properties ... supported contexts/components/pixel depths, threading and
// tiling flags, parameter host properties").
type Capabilities struct {
	IsBackground bool

	SupportedContexts      []string
	SupportedComponents    []string
	SupportedPixelDepths   []string

	SupportsMultipleClipDepths bool
	SupportsMultipleClipPARs   bool
	SupportsTiles              bool
	HostFrameThreading         bool

	ParamSupportsCustomInteract      bool
	ParamSupportsStringAnimation     bool
	ParamSupportsChoiceAnimation     bool
	ParamSupportsBooleanAnimation    bool
	ParamSupportsCustomAnimation     bool
	ParamSupportsParametricAnimation bool
	ParamMaxParameters               int64
	ParamMaxPages                    int64
	ParamPageRowColumnCount          [2]int64
}

// seedHostProperties defines every host property as a read-only, host-
// authored value (spec §4.J). Nothing here is ever re-derived through a
// get hook: unlike a clip or parameter instance, the host's own
// capabilities don't change after construction.
func seedHostProperties(p *propset.Set, id Identity, caps Capabilities) {
	defString(p, ofxstatus.PropName, id.Name)
	defString(p, ofxstatus.PropLabel, id.Label)
	defIntN(p, ofxstatus.PropVersion, id.Version)
	defString(p, ofxstatus.PropVersionLabel, id.VersionLabel)

	defInt(p, ofxstatus.ImageEffectHostPropIsBackground, boolInt(caps.IsBackground))
	defStringN(p, ofxstatus.ImageEffectPropSupportedContexts, caps.SupportedContexts)
	defStringN(p, ofxstatus.ImageEffectPropSupportedComponents, caps.SupportedComponents)
	defStringN(p, ofxstatus.ImageEffectPropSupportedPixelDepths, caps.SupportedPixelDepths)
	defInt(p, ofxstatus.ImageEffectPropSupportsMultipleClipDepths, boolInt(caps.SupportsMultipleClipDepths))
	defInt(p, ofxstatus.ImageEffectPropSupportsMultipleClipPARs, boolInt(caps.SupportsMultipleClipPARs))
	defInt(p, ofxstatus.ImageEffectPropSupportsTiles, boolInt(caps.SupportsTiles))
	defInt(p, ofxstatus.ImageEffectPluginPropHostFrameThreading, boolInt(caps.HostFrameThreading))

	defInt(p, ofxstatus.ParamHostPropSupportsCustomInteract, boolInt(caps.ParamSupportsCustomInteract))
	defInt(p, ofxstatus.ParamHostPropSupportsStringAnimation, boolInt(caps.ParamSupportsStringAnimation))
	defInt(p, ofxstatus.ParamHostPropSupportsChoiceAnimation, boolInt(caps.ParamSupportsChoiceAnimation))
	defInt(p, ofxstatus.ParamHostPropSupportsBooleanAnimation, boolInt(caps.ParamSupportsBooleanAnimation))
	defInt(p, ofxstatus.ParamHostPropSupportsCustomAnimation, boolInt(caps.ParamSupportsCustomAnimation))
	defInt(p, ofxstatus.ParamHostPropSupportsParametricAnimation, boolInt(caps.ParamSupportsParametricAnimation))
	defInt(p, ofxstatus.ParamHostPropMaxParameters, caps.ParamMaxParameters)
	defInt(p, ofxstatus.ParamHostPropMaxPages, caps.ParamMaxPages)
	defIntN(p, ofxstatus.ParamHostPropPageRowColumnCount, caps.ParamPageRowColumnCount[:])
}

func defString(p *propset.Set, name, v string) {
	p.Define(name, propset.TypeString, 1, true, propset.StringValue(v))
}

func defStringN(p *propset.Set, name string, vs []string) {
	defaults := make([]propset.Value, len(vs))
	for i, v := range vs {
		defaults[i] = propset.StringValue(v)
	}
	p.Define(name, propset.TypeString, 0, true, defaults...)
	p.SetStringN(name, vs, propset.FromHost)
}

func defInt(p *propset.Set, name string, v int64) {
	p.Define(name, propset.TypeInt, 1, true, propset.IntValue(v))
}

func defIntN(p *propset.Set, name string, vs []int64) {
	defaults := make([]propset.Value, len(vs))
	for i, v := range vs {
		defaults[i] = propset.IntValue(v)
	}
	p.Define(name, propset.TypeInt, 0, true, defaults...)
	p.SetIntN(name, vs, propset.FromHost)
}

func boolInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
