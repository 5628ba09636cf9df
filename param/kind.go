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

// Package param is component F: parameter descriptors and instances for
// the twelve-plus OFX parameter kinds, their suite-facing value storage,
// and keyframe enumeration (spec §3/§4.F, SPEC_FULL.md §12). Grounded on
// the teacher's tagged-variant device property style in
// _examples/google-gapid/core/os/device/device.go (one Go type, switched
// behavior per an enum field) generalized from "device property kind" to
// "parameter kind".
package param

import "github.com/openfx-host/ofxhost/ofxstatus"

// Kind identifies one of the OFX parameter kinds (spec §3/§4.F table).
type Kind int

const (
	KindInteger Kind = iota
	KindInteger2D
	KindInteger3D
	KindDouble
	KindDouble2D
	KindDouble3D
	KindBoolean
	KindChoice
	KindRGB
	KindRGBA
	KindString
	KindCustom
	KindGroup
	KindPage
	KindPushButton
)

// TypeName returns the OFX wire type string for k (spec §6).
func (k Kind) TypeName() string {
	switch k {
	case KindInteger:
		return ofxstatus.ParamTypeInteger
	case KindInteger2D:
		return ofxstatus.ParamTypeInteger2D
	case KindInteger3D:
		return ofxstatus.ParamTypeInteger3D
	case KindDouble:
		return ofxstatus.ParamTypeDouble
	case KindDouble2D:
		return ofxstatus.ParamTypeDouble2D
	case KindDouble3D:
		return ofxstatus.ParamTypeDouble3D
	case KindBoolean:
		return ofxstatus.ParamTypeBoolean
	case KindChoice:
		return ofxstatus.ParamTypeChoice
	case KindRGB:
		return ofxstatus.ParamTypeRGB
	case KindRGBA:
		return ofxstatus.ParamTypeRGBA
	case KindString:
		return ofxstatus.ParamTypeString
	case KindCustom:
		return ofxstatus.ParamTypeCustom
	case KindGroup:
		return ofxstatus.ParamTypeGroup
	case KindPage:
		return ofxstatus.ParamTypePage
	case KindPushButton:
		return ofxstatus.ParamTypePushButton
	default:
		return "?"
	}
}

// ValueDimension is the number of scalar values the kind's value holds (0
// for Group/Page/Pushbutton, which carry no animatable value).
func (k Kind) ValueDimension() int {
	switch k {
	case KindInteger, KindDouble, KindBoolean, KindChoice, KindString, KindCustom:
		return 1
	case KindInteger2D, KindDouble2D:
		return 2
	case KindInteger3D, KindDouble3D, KindRGB:
		return 3
	case KindRGBA:
		return 4
	default:
		return 0
	}
}

// IsNumeric reports whether the kind's value storage is int or double
// (spec §4.F table: Integer/Double families, Boolean, Choice, RGB/RGBA).
func (k Kind) IsNumeric() bool {
	switch k {
	case KindInteger, KindInteger2D, KindInteger3D,
		KindDouble, KindDouble2D, KindDouble3D,
		KindBoolean, KindChoice, KindRGB, KindRGBA:
		return true
	default:
		return false
	}
}

// IsFloatingPoint reports whether the kind's numeric storage is double
// rather than int.
func (k Kind) IsFloatingPoint() bool {
	switch k {
	case KindDouble, KindDouble2D, KindDouble3D, KindRGB, KindRGBA:
		return true
	default:
		return false
	}
}
