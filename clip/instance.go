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

import (
	"github.com/openfx-host/ofxhost/ofxstatus"
	"github.com/openfx-host/ofxhost/propset"
)

// Instance is one clip instance: the descriptor's cloned property set with
// every polymorphic field's get hook wired onto virtual, plus the
// clipName-tagged instanceChanged notification route (spec §3/§4.G).
type Instance struct {
	desc       *Descriptor
	Properties *propset.Set
	virtual    Virtual
	onChanged  func(clipName string)
}

// NewInstance builds a clip instance from desc, backed by virtual.
// onChanged, if non-nil, is invoked whenever the plug-in's
// instanceChanged action names this clip (spec §4.G: "instanceChanged
// dispatches clipName-tagged change notifications through the owning
// effect").
func NewInstance(desc *Descriptor, virtual Virtual, onChanged func(string)) *Instance {
	i := &Instance{desc: desc, Properties: desc.Properties.Clone(), virtual: virtual, onChanged: onChanged}
	i.installHooks()
	return i
}

func single(v propset.Value) []propset.Value { return []propset.Value{v} }

func (i *Instance) installHooks() {
	p := i.Properties
	v := i.virtual

	mustHook := func(name string, hook propset.GetHook) {
		if err := p.SetGetHook(name, hook); err != nil {
			panic(err)
		}
	}

	mustDefine := func(name string, typ propset.Type, dim int) {
		if !p.Has(name) {
			p.Define(name, typ, dim, true)
		}
	}

	mustDefine(ofxstatus.ImageEffectPropPixelDepth, propset.TypeString, 1)
	mustHook(ofxstatus.ImageEffectPropPixelDepth, valueHook{func() []propset.Value {
		return single(propset.StringValue(v.PixelDepth()))
	}})

	mustDefine(ofxstatus.ImageEffectPropComponents, propset.TypeString, 1)
	mustHook(ofxstatus.ImageEffectPropComponents, valueHook{func() []propset.Value {
		return single(propset.StringValue(v.Components()))
	}})

	mustDefine(ofxstatus.ImageClipPropUnmappedPixelDepth, propset.TypeString, 1)
	mustHook(ofxstatus.ImageClipPropUnmappedPixelDepth, valueHook{func() []propset.Value {
		return single(propset.StringValue(v.UnmappedPixelDepth()))
	}})

	mustDefine(ofxstatus.ImageClipPropUnmappedComponents, propset.TypeString, 1)
	mustHook(ofxstatus.ImageClipPropUnmappedComponents, valueHook{func() []propset.Value {
		return single(propset.StringValue(v.UnmappedComponents()))
	}})

	mustDefine(ofxstatus.ImageEffectPropPreMultiplication, propset.TypeString, 1)
	mustHook(ofxstatus.ImageEffectPropPreMultiplication, valueHook{func() []propset.Value {
		return single(propset.StringValue(v.PreMultiplication()))
	}})

	mustDefine(ofxstatus.ImageEffectPropPixelAspectRatio, propset.TypeDouble, 1)
	mustHook(ofxstatus.ImageEffectPropPixelAspectRatio, valueHook{func() []propset.Value {
		return single(propset.DoubleValue(v.PixelAspectRatio()))
	}})

	mustDefine(ofxstatus.ImageEffectPropFrameRate, propset.TypeDouble, 1)
	mustHook(ofxstatus.ImageEffectPropFrameRate, valueHook{func() []propset.Value {
		return single(propset.DoubleValue(v.FrameRate()))
	}})

	mustDefine(ofxstatus.ImageEffectPropFrameRange, propset.TypeDouble, 2)
	mustHook(ofxstatus.ImageEffectPropFrameRange, valueHook{func() []propset.Value {
		min, max := v.FrameRange()
		return []propset.Value{propset.DoubleValue(min), propset.DoubleValue(max)}
	}})

	mustDefine(ofxstatus.ImageClipPropFieldOrder, propset.TypeString, 1)
	mustHook(ofxstatus.ImageClipPropFieldOrder, valueHook{func() []propset.Value {
		return single(propset.StringValue(v.FieldOrder()))
	}})

	mustDefine(ofxstatus.ImageClipPropConnected, propset.TypeInt, 1)
	mustHook(ofxstatus.ImageClipPropConnected, valueHook{func() []propset.Value {
		return single(propset.IntValue(boolInt(v.Connected())))
	}})

	mustDefine("OfxImageClipPropUnmappedFrameRate", propset.TypeDouble, 1)
	mustHook("OfxImageClipPropUnmappedFrameRate", valueHook{func() []propset.Value {
		return single(propset.DoubleValue(v.UnmappedFrameRate()))
	}})

	mustDefine("OfxImageClipPropUnmappedFrameRange", propset.TypeDouble, 2)
	mustHook("OfxImageClipPropUnmappedFrameRange", valueHook{func() []propset.Value {
		min, max := v.UnmappedFrameRange()
		return []propset.Value{propset.DoubleValue(min), propset.DoubleValue(max)}
	}})

	mustDefine(ofxstatus.ImageClipPropContinuousSamples, propset.TypeInt, 1)
	mustHook(ofxstatus.ImageClipPropContinuousSamples, valueHook{func() []propset.Value {
		return single(propset.IntValue(boolInt(v.ContinuousSamples())))
	}})
}

func boolInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}

// Name returns the clip's name.
func (i *Instance) Name() string { return i.desc.Name() }

// NotifyChanged invokes the instanceChanged callback for this clip, if one
// was supplied.
func (i *Instance) NotifyChanged() {
	if i.onChanged != nil {
		i.onChanged(i.desc.Name())
	}
}

// FrameRange returns the clip's (min, max) frame range as read through its
// property set (spec §4.G: "frame range is exactly 2").
func (i *Instance) FrameRange() (min, max float64, err error) {
	vs, err := i.Properties.GetDoubleN(ofxstatus.ImageEffectPropFrameRange, 2)
	if err != nil {
		return 0, 0, err
	}
	return vs[0], vs[1], nil
}
