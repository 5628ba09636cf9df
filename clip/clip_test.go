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

package clip_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openfx-host/ofxhost/clip"
)

type fakeVirtual struct {
	depth, comps, unmappedDepth, unmappedComps, premult, field string
	par                                                        float64
	frameRate                                                  float64
	min, max                                                   float64
	connected, continuous                                      bool
}

func (f *fakeVirtual) PixelDepth() string          { return f.depth }
func (f *fakeVirtual) Components() string          { return f.comps }
func (f *fakeVirtual) UnmappedPixelDepth() string  { return f.unmappedDepth }
func (f *fakeVirtual) UnmappedComponents() string  { return f.unmappedComps }
func (f *fakeVirtual) PreMultiplication() string   { return f.premult }
func (f *fakeVirtual) PixelAspectRatio() float64   { return f.par }
func (f *fakeVirtual) FrameRate() float64          { return f.frameRate }
func (f *fakeVirtual) FrameRange() (float64, float64) { return f.min, f.max }
func (f *fakeVirtual) FieldOrder() string          { return f.field }
func (f *fakeVirtual) Connected() bool             { return f.connected }
func (f *fakeVirtual) UnmappedFrameRate() float64  { return f.frameRate }
func (f *fakeVirtual) UnmappedFrameRange() (float64, float64) { return f.min, f.max }
func (f *fakeVirtual) ContinuousSamples() bool     { return f.continuous }

func TestInstancePropertiesServedFromVirtual(t *testing.T) {
	desc := clip.NewDescriptor("Source")
	v := &fakeVirtual{depth: "8u", comps: "RGBA", par: 1.0, frameRate: 24.0, min: 1, max: 100, connected: true}
	inst := clip.NewInstance(desc, v, nil)

	depth, err := inst.Properties.GetString("OfxImageEffectPropPixelDepth", 0)
	require.NoError(t, err)
	assert.Equal(t, "8u", depth)

	connected, err := inst.Properties.GetInt("OfxImageClipPropConnected", 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), connected)

	min, max, err := inst.FrameRange()
	require.NoError(t, err)
	assert.Equal(t, 1.0, min)
	assert.Equal(t, 100.0, max)
}

func TestInstanceNotifyChangedInvokesCallback(t *testing.T) {
	desc := clip.NewDescriptor("Output")
	var notified string
	inst := clip.NewInstance(desc, &fakeVirtual{}, func(name string) { notified = name })
	inst.NotifyChanged()
	assert.Equal(t, "Output", notified)
}

func TestSetInstanceNotifyChangedIgnoresUnknownName(t *testing.T) {
	si := clip.NewSetInstance()
	si.Add(clip.NewInstance(clip.NewDescriptor("Source"), &fakeVirtual{}, nil))
	assert.NotPanics(t, func() { si.NotifyChanged("someParam") })
}

func TestImageReferenceCounting(t *testing.T) {
	destroyed := false
	img := clip.NewImage(clip.ImageParams{PixelDepth: "8u", Components: "RGBA"}, func() { destroyed = true })
	assert.Equal(t, 1, img.RefCount())

	img.AddReference()
	assert.Equal(t, 2, img.RefCount())

	img.ReleaseReference()
	assert.False(t, destroyed)
	assert.Equal(t, 1, img.RefCount())

	img.ReleaseReference()
	assert.True(t, destroyed)
	assert.Equal(t, 0, img.RefCount())
}

func TestImageReleaseNeverGoesNegative(t *testing.T) {
	img := clip.NewImage(clip.ImageParams{}, nil)
	img.ReleaseReference()
	img.ReleaseReference()
	assert.Equal(t, 0, img.RefCount())
}

func TestSetDescriptorOrderPreserved(t *testing.T) {
	sd := clip.NewSetDescriptor()
	sd.Define("Output")
	sd.Define("Source")
	sd.Define("Matte")
	assert.Equal(t, []string{"Output", "Source", "Matte"}, sd.Names())
}
