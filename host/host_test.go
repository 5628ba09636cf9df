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

package host_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openfx-host/ofxhost/host"
	"github.com/openfx-host/ofxhost/ofxstatus"
	"github.com/openfx-host/ofxhost/propset"
)

func testIdentity() host.Identity {
	return host.Identity{
		Name:         "com.example.testhost",
		Label:        "Test Host",
		Version:      []int64{1, 0},
		VersionLabel: "1.0",
	}
}

func testCapabilities() host.Capabilities {
	return host.Capabilities{
		IsBackground:            false,
		SupportedContexts:       []string{"OfxImageEffectContextFilter"},
		SupportedComponents:     []string{"OfxImageComponentRGBA"},
		SupportedPixelDepths:    []string{"OfxBitDepthFloat"},
		SupportsTiles:           true,
		ParamMaxParameters:      -1,
		ParamMaxPages:           10,
		ParamPageRowColumnCount: [2]int64{4, 4},
	}
}

func TestNewSeedsIdentityAndCapabilities(t *testing.T) {
	h := host.New(testIdentity(), testCapabilities(), host.NopSink{})
	defer h.Close()

	name, err := h.Properties.GetString(ofxstatus.PropName, 0)
	require.NoError(t, err)
	assert.Equal(t, "com.example.testhost", name)

	label, err := h.Properties.GetString(ofxstatus.PropLabel, 0)
	require.NoError(t, err)
	assert.Equal(t, "Test Host", label)

	tiles, err := h.Properties.GetInt(ofxstatus.ImageEffectPropSupportsTiles, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 1, tiles)

	maxPages, err := h.Properties.GetInt(ofxstatus.ParamHostPropMaxPages, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 10, maxPages)
}

func TestNewSeedsVariableLengthLists(t *testing.T) {
	caps := testCapabilities()
	h := host.New(testIdentity(), caps, host.NopSink{})
	defer h.Close()

	dim, err := h.Properties.Dimension(ofxstatus.ImageEffectPropSupportedContexts)
	require.NoError(t, err)
	assert.Equal(t, len(caps.SupportedContexts), dim)

	contexts, err := h.Properties.GetStringN(ofxstatus.ImageEffectPropSupportedContexts, dim)
	require.NoError(t, err)
	assert.Equal(t, caps.SupportedContexts, contexts)
}

func TestHostPropertiesAreReadOnly(t *testing.T) {
	h := host.New(testIdentity(), testCapabilities(), host.NopSink{})
	defer h.Close()

	err := h.Properties.SetString(ofxstatus.PropName, 0, "hijacked", propset.FromPlugin)
	assert.Error(t, err)
}

func TestNopSinkAlwaysReportsOK(t *testing.T) {
	var s host.NopSink
	assert.Equal(t, ofxstatus.OK, s.Message("error", "id", "text"))
	assert.Equal(t, ofxstatus.OK, s.SetPersistentMessage("error", "id", "text"))
	assert.Equal(t, ofxstatus.OK, s.ClearPersistentMessage())
}

func TestRawExposesTheABIHost(t *testing.T) {
	h := host.New(testIdentity(), testCapabilities(), host.NopSink{})
	defer h.Close()
	require.NotNil(t, h.Raw())
}
