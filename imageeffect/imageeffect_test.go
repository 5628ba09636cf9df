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

package imageeffect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openfx-host/ofxhost/clip"
	"github.com/openfx-host/ofxhost/imageeffect"
	"github.com/openfx-host/ofxhost/ofxstatus"
	"github.com/openfx-host/ofxhost/param"
	"github.com/openfx-host/ofxhost/xmlcodec"
)

func TestNewDescriptorSeedsEffectProperties(t *testing.T) {
	d := imageeffect.NewDescriptor()
	tiles, err := d.Properties.GetInt(ofxstatus.ImageEffectPropSupportsTiles, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), tiles)
}

func TestDescriptorContextStartsUncached(t *testing.T) {
	d := imageeffect.NewDescriptor()
	_, ok := d.Context(ofxstatus.ContextFilter)
	assert.False(t, ok)
}

// TestHandlerRestoreReadsBaseProperties exercises Restore's property-set
// import against a hand-built cache entry, without going through Confirm
// (which crosses the cgo/dlopen boundary this package does not unit test).
func TestHandlerRestoreReadsBaseProperties(t *testing.T) {
	seed := imageeffect.NewDescriptor()
	require.NoError(t, seed.Properties.SetString(ofxstatus.PropName, 0, "gain.ofx", 0))

	entry := xmlcodec.PluginEntry{
		Name:          "gain.ofx",
		API:           ofxstatus.ImageEffectPluginAPI,
		APIProperties: xmlcodec.ExportSet(seed.Properties),
	}

	restored, err := imageeffect.NewHandler(1, 1).Restore(entry)
	require.NoError(t, err)

	rd := restored.(*imageeffect.Descriptor)
	name, err := rd.Properties.GetString(ofxstatus.PropName, 0)
	require.NoError(t, err)
	assert.Equal(t, "gain.ofx", name)
}

// TestHandlerRestoreToleratesEmptyContent exercises the common cold-cache
// path where a plugin row carries no per-API-handler content blob yet.
func TestHandlerRestoreToleratesEmptyContent(t *testing.T) {
	entry := xmlcodec.PluginEntry{Name: "bare.ofx", API: ofxstatus.ImageEffectPluginAPI}
	restored, err := imageeffect.NewHandler(1, 1).Restore(entry)
	require.NoError(t, err)

	rd := restored.(*imageeffect.Descriptor)
	assert.Empty(t, rd.Clips.Names())
	assert.Empty(t, rd.Params.Names())
}

func TestInstanceDestroyBeforeCreateIsRejected(t *testing.T) {
	desc := imageeffect.NewDescriptor()
	desc.Clips.Define("Source")
	desc.Params.Define("gain", param.KindDouble)

	inst, err := imageeffect.NewInstance(nil, 0, desc, ofxstatus.ContextFilter, nil, fakeFactory{})
	require.NoError(t, err)

	_, err = inst.DestroyInstance()
	assert.Equal(t, imageeffect.ErrWrongOrder, err)
}

func TestInstanceRenderBeforeBeginIsRejected(t *testing.T) {
	desc := imageeffect.NewDescriptor()
	inst, err := imageeffect.NewInstance(nil, 0, desc, ofxstatus.ContextFilter, nil, fakeFactory{})
	require.NoError(t, err)

	_, err = inst.Render(imageeffect.RenderParams{})
	assert.Equal(t, imageeffect.ErrWrongOrder, err)
}

func TestInstancePopulatesClipsAndParamsInDescriptorOrder(t *testing.T) {
	desc := imageeffect.NewDescriptor()
	desc.Clips.Define("Source")
	desc.Clips.Define("Output")
	desc.Params.Define("gain", param.KindDouble)

	inst, err := imageeffect.NewInstance(nil, 0, desc, ofxstatus.ContextFilter, nil, fakeFactory{})
	require.NoError(t, err)

	assert.Equal(t, []string{"Source", "Output"}, inst.Clips.Names())
	assert.Equal(t, []string{"gain"}, inst.Params.Names())
}

type fakeFactory struct{}

func (fakeFactory) ClipVirtual(name string) clip.Virtual                { return fakeClipVirtual{} }
func (fakeFactory) ParamVirtual(name string, k param.Kind) param.Virtual { return nil }

type fakeClipVirtual struct{}

func (fakeClipVirtual) PixelDepth() string                    { return "8u" }
func (fakeClipVirtual) Components() string                    { return "RGBA" }
func (fakeClipVirtual) UnmappedPixelDepth() string             { return "8u" }
func (fakeClipVirtual) UnmappedComponents() string             { return "RGBA" }
func (fakeClipVirtual) PreMultiplication() string              { return "OfxImagePreMultiplied" }
func (fakeClipVirtual) PixelAspectRatio() float64              { return 1 }
func (fakeClipVirtual) FrameRate() float64                     { return 24 }
func (fakeClipVirtual) FrameRange() (float64, float64)         { return 1, 100 }
func (fakeClipVirtual) FieldOrder() string                     { return "OfxImageFieldNone" }
func (fakeClipVirtual) Connected() bool                        { return true }
func (fakeClipVirtual) UnmappedFrameRate() float64              { return 24 }
func (fakeClipVirtual) UnmappedFrameRange() (float64, float64) { return 1, 100 }
func (fakeClipVirtual) ContinuousSamples() bool                { return false }
