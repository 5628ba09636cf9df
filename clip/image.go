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
	"sync"
	"unsafe"

	"github.com/openfx-host/ofxhost/ofxstatus"
	"github.com/openfx-host/ofxhost/propset"
)

// Bounds is a pixel-space rectangle (x1, y1, x2, y2), used for both an
// image's explicit bounds and its region of definition (spec §3).
type Bounds struct {
	X1, Y1, X2, Y2 float64
}

// ImageParams is the explicit state an Image is constructed from: its
// clip's current preferences (depth/components/premult/PAR) plus the
// per-render bounds, region of definition, row bytes, field, unique
// identifier and data pointer (spec §3: "constructed referencing its
// clip's current preferences; properties populated from explicit bounds,
// RoD, row bytes, field, unique identifier, and data pointer").
type ImageParams struct {
	PixelDepth        string
	Components        string
	PreMultiplication string
	PixelAspectRatio  float64
	Bounds            Bounds
	RegionOfDefinition Bounds
	RowBytes          int
	Field             string
	UniqueIdentifier  string
	Data              unsafe.Pointer
}

// Image is a rendered pixel buffer's OFX-visible handle: a property set
// plus an explicit reference count (spec §3: "Reference count starts at
// 1; addReference/releaseReference balance; last release deletes").
type Image struct {
	Properties *propset.Set

	mu      sync.Mutex
	refs    int
	onEmpty func()
}

// NewImage builds an image from p, with its reference count starting at 1
// (spec §4.G). onDestroy, if non-nil, runs exactly once when the last
// reference is released.
func NewImage(p ImageParams, onDestroy func()) *Image {
	props := propset.New(false)
	props.Define(ofxstatus.ImageEffectPropPixelDepth, propset.TypeString, 1, true, propset.StringValue(p.PixelDepth))
	props.Define(ofxstatus.ImageEffectPropComponents, propset.TypeString, 1, true, propset.StringValue(p.Components))
	props.Define(ofxstatus.ImageEffectPropPreMultiplication, propset.TypeString, 1, true, propset.StringValue(p.PreMultiplication))
	props.Define(ofxstatus.ImageEffectPropPixelAspectRatio, propset.TypeDouble, 1, true, propset.DoubleValue(p.PixelAspectRatio))
	props.Define(ofxstatus.ImagePropBounds, propset.TypeDouble, 4, true,
		propset.DoubleValue(p.Bounds.X1), propset.DoubleValue(p.Bounds.Y1),
		propset.DoubleValue(p.Bounds.X2), propset.DoubleValue(p.Bounds.Y2))
	props.Define(ofxstatus.ImagePropRegionOfDefinition, propset.TypeDouble, 4, true,
		propset.DoubleValue(p.RegionOfDefinition.X1), propset.DoubleValue(p.RegionOfDefinition.Y1),
		propset.DoubleValue(p.RegionOfDefinition.X2), propset.DoubleValue(p.RegionOfDefinition.Y2))
	props.Define(ofxstatus.ImagePropRowBytes, propset.TypeInt, 1, true, propset.IntValue(int64(p.RowBytes)))
	props.Define(ofxstatus.ImagePropField, propset.TypeString, 1, true, propset.StringValue(p.Field))
	props.Define(ofxstatus.ImagePropUniqueIdentifier, propset.TypeString, 1, true, propset.StringValue(p.UniqueIdentifier))
	props.Define(ofxstatus.ImagePropData, propset.TypePointer, 1, true, propset.PointerValue(p.Data))

	return &Image{Properties: props, refs: 1, onEmpty: onDestroy}
}

// AddReference increments the image's reference count.
func (img *Image) AddReference() {
	img.mu.Lock()
	defer img.mu.Unlock()
	img.refs++
}

// ReleaseReference decrements the image's reference count. On reaching
// zero the image's property set is released and its destroy callback, if
// any, runs (spec §4.G: "last release deletes"). Calling ReleaseReference
// more times than the image has references is a caller bug; it is a no-op
// past zero rather than going negative.
func (img *Image) ReleaseReference() {
	img.mu.Lock()
	defer img.mu.Unlock()
	if img.refs <= 0 {
		return
	}
	img.refs--
	if img.refs == 0 {
		img.Properties.Release()
		if img.onEmpty != nil {
			img.onEmpty()
		}
	}
}

// RefCount returns the image's current reference count.
func (img *Image) RefCount() int {
	img.mu.Lock()
	defer img.mu.Unlock()
	return img.refs
}
