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

package ofxabi_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openfx-host/ofxhost/ofxabi"
)

func TestMintLookupRoundTrips(t *testing.T) {
	value := "a property set"
	h := ofxabi.Mint(ofxabi.KindPropertySet, value)

	got, ok := ofxabi.Lookup(h, ofxabi.KindPropertySet)
	require.True(t, ok)
	assert.Equal(t, value, got)
}

func TestLookupRejectsKindMismatch(t *testing.T) {
	h := ofxabi.Mint(ofxabi.KindClip, "a clip instance")

	_, ok := ofxabi.Lookup(h, ofxabi.KindImageEffect)
	assert.False(t, ok, "a handle minted for one kind must not authenticate as another")
}

func TestLookupRejectsZeroHandle(t *testing.T) {
	_, ok := ofxabi.Lookup(ofxabi.Handle(0), ofxabi.KindPropertySet)
	assert.False(t, ok)
}

func TestReleaseInvalidatesHandle(t *testing.T) {
	h := ofxabi.Mint(ofxabi.KindImage, "an image")
	ofxabi.Release(h)

	_, ok := ofxabi.Lookup(h, ofxabi.KindImage)
	assert.False(t, ok, "a released handle must not resolve")
}

func TestMintAssignsDistinctHandles(t *testing.T) {
	a := ofxabi.Mint(ofxabi.KindParamSet, "a")
	b := ofxabi.Mint(ofxabi.KindParamSet, "b")
	assert.NotEqual(t, a, b)
}

func TestAsPointerRoundTrips(t *testing.T) {
	h := ofxabi.Mint(ofxabi.KindInteract, "an interact instance")
	p := h.AsPointer()
	assert.Equal(t, h, ofxabi.HandleFromPointer(p))
}
