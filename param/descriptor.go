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

// Descriptor is an immutable-after-construction property bag for one
// parameter (spec §3: "Property-bag of kind..."). Properties beyond the
// universal set are seeded per kind at construction (spec §4.F table).
type Descriptor struct {
	name string
	kind Kind
	Properties *propset.Set
}

// NewDescriptor seeds a new parameter descriptor of kind named name, with
// the universal properties every kind carries (spec §4.F: "a universal
// param-descriptor set containing name/label/short-label/long-label/
// parent/script-name/hint/secret/enabled/data-pointer/type") plus the
// kind-specific additions.
func NewDescriptor(name string, kind Kind) *Descriptor {
	d := &Descriptor{name: name, kind: kind, Properties: propset.New(false)}
	p := d.Properties

	p.Define(ofxstatus.PropName, propset.TypeString, 1, true, propset.StringValue(name))
	p.Define(ofxstatus.PropLabel, propset.TypeString, 1, false, propset.StringValue(name))
	p.Define(ofxstatus.PropShortLabel, propset.TypeString, 1, false, propset.StringValue(name))
	p.Define(ofxstatus.PropLongLabel, propset.TypeString, 1, false, propset.StringValue(name))
	p.Define(ofxstatus.ParamPropType, propset.TypeString, 1, true, propset.StringValue(kind.TypeName()))
	p.Define(ofxstatus.ParamPropParent, propset.TypeString, 1, false, propset.StringValue(""))
	p.Define(ofxstatus.ParamPropScriptName, propset.TypeString, 1, false, propset.StringValue(name))
	p.Define(ofxstatus.ParamPropHint, propset.TypeString, 1, false, propset.StringValue(""))
	p.Define(ofxstatus.ParamPropSecret, propset.TypeInt, 1, false, propset.IntValue(0))
	p.Define(ofxstatus.ParamPropEnabled, propset.TypeInt, 1, false, propset.IntValue(1))
	p.Define(ofxstatus.ParamPropDataPtr, propset.TypePointer, 1, false, propset.PointerValue(nil))
	p.Define(ofxstatus.ParamPropPersistent, propset.TypeInt, 1, false, propset.IntValue(1))
	p.Define(ofxstatus.ParamPropEvaluateOnChange, propset.TypeInt, 1, false, propset.IntValue(1))
	p.Define(ofxstatus.ParamPropPluginMayWrite, propset.TypeInt, 1, false, propset.IntValue(0))
	p.Define(ofxstatus.ParamPropCanUndo, propset.TypeInt, 1, false, propset.IntValue(1))

	if kind != KindGroup && kind != KindPage && kind != KindPushButton {
		p.Define(ofxstatus.ParamPropInteractV1, propset.TypePointer, 1, false, propset.PointerValue(nil))
		p.Define(ofxstatus.ParamPropInteractSize, propset.TypeDouble, 2, false,
			propset.DoubleValue(0), propset.DoubleValue(0))
		p.Define(ofxstatus.ParamPropInteractSizeAspect, propset.TypeDouble, 1, false, propset.DoubleValue(1))
		p.Define(ofxstatus.ParamPropInteractMinimumSize, propset.TypeDouble, 2, false,
			propset.DoubleValue(10), propset.DoubleValue(10))
		p.Define(ofxstatus.ParamPropInteractPreferedSize, propset.TypeDouble, 2, false,
			propset.DoubleValue(10), propset.DoubleValue(10))
	}

	seedKindProperties(p, kind)
	return d
}

// Name returns the parameter's (script-stable) name.
func (d *Descriptor) Name() string { return d.name }

// Kind returns the parameter's kind.
func (d *Descriptor) Kind() Kind { return d.kind }

func seedKindProperties(p *propset.Set, kind Kind) {
	dim := kind.ValueDimension()
	switch kind {
	case KindInteger, KindInteger2D, KindInteger3D:
		defaults := make([]propset.Value, dim)
		mins := make([]propset.Value, dim)
		maxs := make([]propset.Value, dim)
		for i := range defaults {
			defaults[i] = propset.IntValue(0)
			mins[i] = propset.IntValue(-1 << 30)
			maxs[i] = propset.IntValue(1 << 30)
		}
		p.Define(ofxstatus.ParamPropDefault, propset.TypeInt, dim, false, defaults...)
		p.Define(ofxstatus.ParamPropMin, propset.TypeInt, dim, false, mins...)
		p.Define(ofxstatus.ParamPropMax, propset.TypeInt, dim, false, maxs...)
		p.Define(ofxstatus.ParamPropDisplayMin, propset.TypeInt, dim, false, mins...)
		p.Define(ofxstatus.ParamPropDisplayMax, propset.TypeInt, dim, false, maxs...)
		p.Define(ofxstatus.ParamPropAnimates, propset.TypeInt, 1, false, propset.IntValue(1))
		defineDimensionLabels(p, xyzLabels(dim))

	case KindDouble, KindDouble2D, KindDouble3D:
		defaults := make([]propset.Value, dim)
		mins := make([]propset.Value, dim)
		maxs := make([]propset.Value, dim)
		incs := make([]propset.Value, dim)
		digits := make([]propset.Value, dim)
		for i := range defaults {
			defaults[i] = propset.DoubleValue(0)
			mins[i] = propset.DoubleValue(-1e30)
			maxs[i] = propset.DoubleValue(1e30)
			incs[i] = propset.DoubleValue(1)
			digits[i] = propset.IntValue(2)
		}
		p.Define(ofxstatus.ParamPropDefault, propset.TypeDouble, dim, false, defaults...)
		p.Define(ofxstatus.ParamPropMin, propset.TypeDouble, dim, false, mins...)
		p.Define(ofxstatus.ParamPropMax, propset.TypeDouble, dim, false, maxs...)
		p.Define(ofxstatus.ParamPropDisplayMin, propset.TypeDouble, dim, false, mins...)
		p.Define(ofxstatus.ParamPropDisplayMax, propset.TypeDouble, dim, false, maxs...)
		p.Define(ofxstatus.ParamPropIncrement, propset.TypeDouble, dim, false, incs...)
		p.Define(ofxstatus.ParamPropDigits, propset.TypeInt, dim, false, digits...)
		p.Define(ofxstatus.ParamPropDoubleType, propset.TypeString, 1, false, propset.StringValue("OfxParamDoubleTypePlain"))
		p.Define(ofxstatus.ParamPropAnimates, propset.TypeInt, 1, false, propset.IntValue(1))
		if kind == KindDouble {
			p.Define(ofxstatus.ParamPropShowTimeMarker, propset.TypeInt, 1, false, propset.IntValue(0))
		}
		defineDimensionLabels(p, xyzLabels(dim))

	case KindBoolean:
		p.Define(ofxstatus.ParamPropDefault, propset.TypeInt, 1, false, propset.IntValue(0))
		p.Define(ofxstatus.ParamPropAnimates, propset.TypeInt, 1, false, propset.IntValue(1))

	case KindChoice:
		p.Define(ofxstatus.ParamPropDefault, propset.TypeInt, 1, false, propset.IntValue(0))
		p.Define(ofxstatus.ParamPropChoiceOption, propset.TypeString, 0, false)
		p.Define(ofxstatus.ParamPropAnimates, propset.TypeInt, 1, false, propset.IntValue(1))

	case KindRGB, KindRGBA:
		defaults := make([]propset.Value, dim)
		for i := range defaults {
			defaults[i] = propset.DoubleValue(0)
		}
		displayMin := make([]propset.Value, dim)
		displayMax := make([]propset.Value, dim)
		for i := range displayMin {
			displayMin[i] = propset.DoubleValue(0)
			displayMax[i] = propset.DoubleValue(1)
		}
		p.Define(ofxstatus.ParamPropDefault, propset.TypeDouble, dim, false, defaults...)
		p.Define(ofxstatus.ParamPropDisplayMin, propset.TypeDouble, dim, false, displayMin...)
		p.Define(ofxstatus.ParamPropDisplayMax, propset.TypeDouble, dim, false, displayMax...)
		p.Define(ofxstatus.ParamPropAnimates, propset.TypeInt, 1, false, propset.IntValue(1))
		defineDimensionLabels(p, rgbaLabels(dim))

	case KindString:
		p.Define(ofxstatus.ParamPropDefault, propset.TypeString, 1, false, propset.StringValue(""))
		p.Define(ofxstatus.ParamPropStringMode, propset.TypeString, 1, false, propset.StringValue("OfxParamStringIsSingleLine"))
		p.Define(ofxstatus.ParamPropStringFilePathExists, propset.TypeInt, 1, false, propset.IntValue(0))
		p.Define(ofxstatus.ParamPropAnimates, propset.TypeInt, 1, false, propset.IntValue(0))

	case KindCustom:
		p.Define(ofxstatus.ParamPropDefault, propset.TypeString, 1, false, propset.StringValue(""))
		p.Define(ofxstatus.ParamPropCustomInterpCallback, propset.TypePointer, 1, false, propset.PointerValue(nil))
		p.Define(ofxstatus.ParamPropAnimates, propset.TypeInt, 1, false, propset.IntValue(0))

	case KindGroup:
		p.Define(ofxstatus.ParamPropGroupOpen, propset.TypeInt, 1, false, propset.IntValue(1))

	case KindPage:
		p.Define(ofxstatus.ParamPropPageChild, propset.TypeString, 0, false)

	case KindPushButton:
		// no extra properties (spec §4.F table)
	}
}

// xyzLabels returns the X/Y/Z dimension labels for the Integer2D/3D and
// Double2D/3D kinds (spec §4.F: "dimension labels X/Y/Z (2D/3D)").
func xyzLabels(dim int) []string {
	switch dim {
	case 2:
		return []string{"X", "Y"}
	case 3:
		return []string{"X", "Y", "Z"}
	default:
		return nil
	}
}

// rgbaLabels returns the R/G/B/A dimension labels for RGB/RGBA (spec §4.F:
// "dimension labels R/G/B(/A)").
func rgbaLabels(dim int) []string {
	switch dim {
	case 3:
		return []string{"R", "G", "B"}
	case 4:
		return []string{"R", "G", "B", "A"}
	default:
		return nil
	}
}

func defineDimensionLabels(p *propset.Set, labels []string) {
	if len(labels) == 0 {
		return
	}
	vals := make([]propset.Value, len(labels))
	for i, l := range labels {
		vals[i] = propset.StringValue(l)
	}
	p.Define(ofxstatus.ParamPropDimensionLabel, propset.TypeString, len(labels), false, vals...)
}
