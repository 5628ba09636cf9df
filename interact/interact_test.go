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

package interact_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openfx-host/ofxhost/interact"
	"github.com/openfx-host/ofxhost/ofxabi"
	"github.com/openfx-host/ofxhost/ofxstatus"
	"github.com/openfx-host/ofxhost/propset"
)

type fakeVirtual struct{}

func (fakeVirtual) PixelScale() (float64, float64)       { return 0.5, 0.5 }
func (fakeVirtual) BackgroundColour() (float64, float64, float64) { return 0.2, 0.2, 0.2 }
func (fakeVirtual) ViewportSize() (float64, float64)      { return 1920, 1080 }

func TestGeometryPropertiesServedFromVirtual(t *testing.T) {
	props := propset.New(true)
	inst := interact.NewInstance(props, fakeVirtual{}, func(action string, handle, in, out ofxabi.Handle) ofxstatus.Status {
		return ofxstatus.OK
	})
	defer inst.Release()

	w, err := props.GetDouble(ofxstatus.InteractPropViewportSize, 0)
	require.NoError(t, err)
	assert.Equal(t, 1920.0, w)

	r, err := props.GetDouble(ofxstatus.InteractPropBackgroundColour, 0)
	require.NoError(t, err)
	assert.Equal(t, 0.2, r)
}

func TestDrawDispatchesThroughEntryPoint(t *testing.T) {
	props := propset.New(true)
	var gotAction string
	inst := interact.NewInstance(props, fakeVirtual{}, func(action string, handle, in, out ofxabi.Handle) ofxstatus.Status {
		gotAction = action
		return ofxstatus.OK
	})
	defer inst.Release()

	st, err := inst.Draw(1, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, ofxstatus.OK, st)
	assert.Equal(t, ofxstatus.InteractActionDraw, gotAction)
}

func TestPenDownCarriesPositionAndPressure(t *testing.T) {
	props := propset.New(true)
	var seenX, seenPressure float64
	inst := interact.NewInstance(props, fakeVirtual{}, func(action string, handle, in, out ofxabi.Handle) ofxstatus.Status {
		argSet, ok := ofxabi.Lookup(in, ofxabi.KindPropertySet)
		if !ok {
			t.Fatalf("in args handle did not resolve")
		}
		s := argSet.(*propset.Set)
		seenX, _ = s.GetDouble(ofxstatus.InteractPropPenPosition, 0)
		seenPressure, _ = s.GetDouble(ofxstatus.InteractPropPenPressure, 0)
		return ofxstatus.OK
	})
	defer inst.Release()

	_, err := inst.PenDown(1, 1, 1, 42, 7, 0.75)
	require.NoError(t, err)
	assert.Equal(t, 42.0, seenX)
	assert.Equal(t, 0.75, seenPressure)
}

func TestKeyDownCarriesSymbolAndString(t *testing.T) {
	props := propset.New(true)
	var seenSym string
	inst := interact.NewInstance(props, fakeVirtual{}, func(action string, handle, in, out ofxabi.Handle) ofxstatus.Status {
		argSet, _ := ofxabi.Lookup(in, ofxabi.KindPropertySet)
		s := argSet.(*propset.Set)
		seenSym, _ = s.GetString(ofxstatus.PropKeySym, 0)
		return ofxstatus.OK
	})
	defer inst.Release()

	_, err := inst.KeyDown(1, 1, 1, "space", " ")
	require.NoError(t, err)
	assert.Equal(t, "space", seenSym)
}
