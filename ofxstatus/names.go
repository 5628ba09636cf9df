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

package ofxstatus

// Generic actions (spec §4.D/§4.H), dispatched through mainEntry.
const (
	ActionLoad               = "OfxActionLoad"
	ActionUnload             = "OfxActionUnload"
	ActionDescribe           = "OfxActionDescribe"
	ActionCreateInstance     = "OfxActionCreateInstance"
	ActionDestroyInstance    = "OfxActionDestroyInstance"
	ActionBeginInstanceChanged = "OfxActionBeginInstanceChanged"
	ActionInstanceChanged    = "OfxActionInstanceChanged"
	ActionEndInstanceChanged = "OfxActionEndInstanceChanged"
	ActionPurgeCaches        = "OfxActionPurgeCaches"
	ActionSyncPrivateData    = "OfxActionSyncPrivateData"
)

// Image-effect-API specific actions (spec §4.D/§4.E/§4.H).
const (
	ImageEffectActionDescribeInContext    = "OfxImageEffectActionDescribeInContext"
	ImageEffectActionGetRegionOfDefinition = "OfxImageEffectActionGetRegionOfDefinition"
	ImageEffectActionGetRegionsOfInterest  = "OfxImageEffectActionGetRegionsOfInterest"
	ImageEffectActionGetFramesNeeded       = "OfxImageEffectActionGetFramesNeeded"
	ImageEffectActionGetClipPreferences    = "OfxImageEffectActionGetClipPreferences"
	ImageEffectActionIsIdentity            = "OfxImageEffectActionIsIdentity"
	ImageEffectActionBeginSequenceRender   = "OfxImageEffectActionBeginSequenceRender"
	ImageEffectActionRender                = "OfxImageEffectActionRender"
	ImageEffectActionEndSequenceRender     = "OfxImageEffectActionEndSequenceRender"
	ImageEffectActionGetTimeDomain         = "OfxImageEffectActionGetTimeDomain"
)

// Interact actions (spec §4.I).
const (
	InteractActionDraw       = "OfxInteractActionDraw"
	InteractActionPenDown    = "OfxInteractActionPenDown"
	InteractActionPenUp      = "OfxInteractActionPenUp"
	InteractActionPenMotion  = "OfxInteractActionPenMotion"
	InteractActionKeyDown    = "OfxInteractActionKeyDown"
	InteractActionKeyUp      = "OfxInteractActionKeyUp"
	InteractActionKeyRepeat  = "OfxInteractActionKeyRepeat"
	InteractActionGainFocus  = "OfxInteractActionGainFocus"
	InteractActionLoseFocus  = "OfxInteractActionLoseFocus"
)

// Context name values (spec glossary: Context).
const (
	ContextFilter      = "OfxImageEffectContextFilter"
	ContextGenerator   = "OfxImageEffectContextGenerator"
	ContextTransition  = "OfxImageEffectContextTransition"
	ContextGeneral     = "OfxImageEffectContextGeneral"
	ContextPaint       = "OfxImageEffectContextPaint"
	ContextRetimer     = "OfxImageEffectContextRetimer"
)

// Suite names, fetched through OfxHost.fetchSuite (spec §6).
const (
	PropertySuite   = "OfxPropertySuite"
	ParameterSuite  = "OfxParameterSuite"
	ImageEffectSuite = "OfxImageEffectSuite"
	MemorySuite     = "OfxMemorySuite"
	MessageSuite    = "OfxMessageSuite"
	InteractSuite   = "OfxInteractSuite"
	ProgressSuite   = "OfxProgressSuite"
	TimeLineSuite   = "OfxTimeLineSuite"
	MultiThreadSuite = "OfxMultiThreadSuite"
)

// API identifier this repository's Image-Effect handler confirms plug-ins
// against (spec §4.E).
const ImageEffectPluginAPI = "OfxImageEffectPluginAPI"

// Message categories (spec §7).
const (
	MessageLog      = "log"
	MessageError    = "error"
	MessageFatal    = "fatal"
	MessageQuestion = "question"
	MessageMessage  = "message"
)
