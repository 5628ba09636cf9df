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

package imageeffect

import "github.com/openfx-host/ofxhost/ofxstatus"

// SequenceRenderParams carries beginSequenceRender/endSequenceRender's
// shared argument shape (spec §4.H: "beginSequenceRender(frameRange[2],
// step, interactive, renderScale[2])").
type SequenceRenderParams struct {
	FrameRangeMin, FrameRangeMax float64
	Step                         float64
	Interactive                  bool
	RenderScaleX, RenderScaleY   float64
}

// RenderParams carries render's argument shape (spec §4.H:
// "render(time, fieldToRender, renderWindow[4], renderScale[2])").
// RenderWindow is pixel-integer coordinates (kOfxImageEffectPropRenderWindow
// is Property::eInt in the original source, not a double).
type RenderParams struct {
	Time         float64
	Field        string
	RenderWindow [4]int64
	RenderScaleX, RenderScaleY float64
}

// roiPropName builds a per-clip getRegionsOfInterest reply property name.
func roiPropName(clipName string) string {
	return ofxstatus.ImageClipPropRoIPrefix + clipName
}

// framesNeededPropName builds a per-clip getFramesNeeded reply property
// name.
func framesNeededPropName(clipName string) string {
	return ofxstatus.ImageClipPropFrameRangePrefix + clipName
}

func clipComponentsPropName(clipName string) string {
	return "OfxImageClipPropComponents_" + clipName
}

func clipDepthPropName(clipName string) string {
	return "OfxImageClipPropDepth_" + clipName
}

func clipPARPropName(clipName string) string {
	return "OfxImageClipPropPAR_" + clipName
}
