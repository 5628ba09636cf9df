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

// Universal properties present on most property sets (spec §3/§4.B).
const (
	PropType           = "OfxPropType"
	PropName           = "OfxPropName"
	PropLabel          = "OfxPropLabel"
	PropShortLabel     = "OfxPropShortLabel"
	PropLongLabel      = "OfxPropLongLabel"
	PropPluginDescription = "OfxPropPluginDescription"
	PropVersion        = "OfxPropVersion"
	PropVersionLabel   = "OfxPropVersionLabel"
	PropAPIVersion     = "OfxPropAPIVersion"
	PropTime           = "OfxPropTime"
	PropIsInteractive  = "OfxPropIsInteractive"

	// ImageEffectHost properties (spec §4.J).
	ImageEffectHostPropIsBackground             = "OfxImageEffectHostPropIsBackground"
	ImageEffectPropSupportedContexts             = "OfxImageEffectPropSupportedContexts"
	ImageEffectPropSupportedComponents           = "OfxImageEffectPropSupportedComponents"
	ImageEffectPropSupportedPixelDepths          = "OfxImageEffectPropSupportedPixelDepths"
	ImageEffectPropSupportsMultipleClipDepths    = "OfxImageEffectPropSupportsMultipleClipDepths"
	ImageEffectPropSupportsMultipleClipPARs      = "OfxImageEffectPropSupportsMultipleClipPARs"
	ImageEffectPropSupportsTiles                 = "OfxImageEffectPropSupportsTiles"
	ImageEffectPropTemporalClipAccess            = "OfxImageEffectPropTemporalClipAccess"
	ImageEffectPluginPropSingleInstance          = "OfxImageEffectPluginPropSingleInstance"
	ImageEffectPluginPropHostFrameThreading      = "OfxImageEffectPluginPropHostFrameThreading"
	ImageEffectPropContext                       = "OfxImageEffectPropContext"
	ImageEffectPropPluginHandle                  = "OfxImageEffectPropPluginHandle"
	ImageEffectPropFrameRate                     = "OfxImageEffectPropFrameRate"
	ImageEffectPropFrameRange                    = "OfxImageEffectPropFrameRange"
	ImageEffectPropFrameStep                     = "OfxImageEffectPropFrameStep"
	ImageEffectPropRegionOfDefinition            = "OfxImageEffectPropRegionOfDefinition"
	ImageEffectPropRegionOfInterest              = "OfxImageEffectPropRegionOfInterest"
	ImageEffectPropRenderWindow                  = "OfxImageEffectPropRenderWindow"
	ImageEffectPropRenderScale                   = "OfxImageEffectPropRenderScale"
	ImageEffectPropFieldToRender                 = "OfxImageEffectPropFieldToRender"
	ImageEffectPropPreMultiplication              = "OfxImageEffectPropPreMultiplication"
	ImageEffectPropPixelDepth                    = "OfxImageEffectPropPixelDepth"
	ImageEffectPropComponents                    = "OfxImageEffectPropComponents"
	ImageEffectPropOutputPremultiplication        = "OfxImageEffectPropOutputPremultiplication"
	ImageEffectPropFrameVarying                  = "OfxImageEffectPropFrameVarying"

	// clip-prefixed per-clip argument property names are templated at
	// dispatch time: e.g. "OfxImageClipPropRoI_" + clip name. See
	// imageeffect.roiPropName / framesNeededPropName.
	ImageClipPropRoIPrefix          = "OfxImageClipPropRoI_"
	ImageClipPropFrameRangePrefix   = "OfxImageClipPropFrameRange_"

	// Clip descriptor/instance properties (spec §3/§4.G).
	ImageClipPropConnected         = "OfxImageClipPropConnected"
	ImageClipPropUnmappedComponents = "OfxImageClipPropUnmappedComponents"
	ImageClipPropUnmappedPixelDepth = "OfxImageClipPropUnmappedPixelDepth"
	ImageClipPropContinuousSamples = "OfxImageClipPropContinuousSamples"
	ImageClipPropFieldOrder        = "OfxImageClipPropFieldOrder"
	ImageClipPropOptional          = "OfxImageClipPropOptional"
	ImageClipPropIsMask            = "OfxImageClipPropIsMask"
	ImageClipPropFieldExtraction   = "OfxImageClipPropFieldExtraction"
	ImageEffectPropPixelAspectRatio = "OfxImageEffectPropPixelAspectRatio"

	// Image instance properties (spec §3).
	ImagePropData       = "OfxImagePropData"
	ImagePropBounds     = "OfxImagePropBounds"
	ImagePropRegionOfDefinition = "OfxImagePropRegionOfDefinition"
	ImagePropRowBytes   = "OfxImagePropRowBytes"
	ImagePropField      = "OfxImagePropField"
	ImagePropUniqueIdentifier = "OfxImagePropUniqueIdentifier"

	// Parameter descriptor properties (spec §4.F).
	ParamPropType            = "OfxParamPropType"
	ParamPropDefault         = "OfxParamPropDefault"
	ParamPropMin             = "OfxParamPropMin"
	ParamPropMax             = "OfxParamPropMax"
	ParamPropDisplayMin      = "OfxParamPropDisplayMin"
	ParamPropDisplayMax      = "OfxParamPropDisplayMax"
	ParamPropIncrement       = "OfxParamPropIncrement"
	ParamPropDigits          = "OfxParamPropDigits"
	ParamPropDimensionLabel  = "OfxParamPropDimensionLabel"
	ParamPropAnimates        = "OfxParamPropAnimates"
	ParamPropIsAutoKeying    = "OfxParamPropIsAutoKeying"
	ParamPropPersistent      = "OfxParamPropPersistent"
	ParamPropEvaluateOnChange = "OfxParamPropEvaluateOnChange"
	ParamPropPluginMayWrite  = "OfxParamPropPluginMayWrite"
	ParamPropCanUndo         = "OfxParamPropCanUndo"
	ParamPropHint            = "OfxParamPropHint"
	ParamPropScriptName      = "OfxParamPropScriptName"
	ParamPropParent          = "OfxParamPropParent"
	ParamPropEnabled         = "OfxParamPropEnabled"
	ParamPropSecret          = "OfxParamPropSecret"
	ParamPropDataPtr         = "OfxParamPropDataPtr"
	ParamPropChoiceOption    = "OfxParamPropChoiceOption"
	ParamPropStringMode      = "OfxParamPropStringMode"
	ParamPropStringFilePathExists = "OfxParamPropStringFilePathExists"
	ParamPropCustomInterpCallback = "OfxParamPropCustomInterpCallbackV1"
	ParamPropGroupOpen       = "OfxParamPropGroupOpen"
	ParamPropPageChild       = "OfxParamPropPageChild"
	ParamPropInteractV1      = "OfxParamPropInteractV1"
	ParamPropInteractSize    = "OfxParamPropInteractSize"
	ParamPropInteractSizeAspect = "OfxParamPropInteractSizeAspect"
	ParamPropInteractMinimumSize = "OfxParamPropInteractMinimumSize"
	ParamPropInteractPreferedSize = "OfxParamPropInteractPreferredSize"
	ParamPropDoubleType      = "OfxParamPropDoubleType"
	ParamPropShowTimeMarker  = "OfxParamPropShowTimeMarker"

	// Interact subsystem properties (spec §4.I).
	InteractPropPixelScale        = "OfxInteractPropPixelScale"
	InteractPropBackgroundColour  = "OfxInteractPropBackgroundColour"
	InteractPropViewportSize      = "OfxInteractPropViewportSize"
	InteractPropSlaveToParam      = "OfxInteractPropSlaveToParam"
	InteractPropPenPosition       = "OfxInteractPropPenPosition"
	InteractPropPenViewportPosition = "OfxInteractPropPenViewportPosition"
	InteractPropPenPressure       = "OfxInteractPropPenPressure"
	PropKeySym                    = "OfxPropKeySym"
	PropKeyString                 = "OfxPropKeyString"
	PropEffectInstance            = "OfxPropEffectInstance"

	// Host descriptor properties (spec §4.J/§6).
	PropHostOSHandle        = "OfxPropHostOSHandle"
	PropHostName            = "host"
	HostPropName            = "OfxPropName"
	HostSupportedContexts   = ImageEffectPropSupportedContexts
	HostPropIsBackground    = ImageEffectHostPropIsBackground

	// Parameter host properties (spec §4.J: "parameter host properties"),
	// advertised on the host's own property set so a plug-in can query
	// what animation/layout features this host supports before declaring
	// parameters that need them.
	ParamHostPropSupportsCustomInteract    = "OfxParamHostPropSupportsCustomInteract"
	ParamHostPropSupportsStringAnimation   = "OfxParamHostPropSupportsStringAnimation"
	ParamHostPropSupportsChoiceAnimation   = "OfxParamHostPropSupportsChoiceAnimation"
	ParamHostPropSupportsBooleanAnimation  = "OfxParamHostPropSupportsBooleanAnimation"
	ParamHostPropSupportsCustomAnimation   = "OfxParamHostPropSupportsCustomAnimation"
	ParamHostPropSupportsParametricAnimation = "OfxParamHostPropSupportsParametricAnimation"
	ParamHostPropMaxParameters             = "OfxParamHostPropMaxParameters"
	ParamHostPropMaxPages                  = "OfxParamHostPropMaxPages"
	ParamHostPropPageRowColumnCount        = "OfxParamHostPropPageRowColumnCount"
)

// Parameter kind string constants (spec §3's Kind enumeration).
const (
	ParamTypeInteger    = "OfxParamTypeInteger"
	ParamTypeInteger2D  = "OfxParamTypeInteger2D"
	ParamTypeInteger3D  = "OfxParamTypeInteger3D"
	ParamTypeDouble     = "OfxParamTypeDouble"
	ParamTypeDouble2D   = "OfxParamTypeDouble2D"
	ParamTypeDouble3D   = "OfxParamTypeDouble3D"
	ParamTypeBoolean    = "OfxParamTypeBoolean"
	ParamTypeChoice     = "OfxParamTypeChoice"
	ParamTypeRGBA       = "OfxParamTypeRGBA"
	ParamTypeRGB        = "OfxParamTypeRGB"
	ParamTypeString     = "OfxParamTypeString"
	ParamTypeCustom     = "OfxParamTypeCustom"
	ParamTypeGroup      = "OfxParamTypeGroup"
	ParamTypePage       = "OfxParamTypePage"
	ParamTypePushButton = "OfxParamTypePushButton"
)
