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

package propset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openfx-host/ofxhost/propset"
)

func TestResetRestoresDefault(t *testing.T) {
	s := propset.New(false)
	s.Define("OfxPropLabel", propset.TypeString, 1, false, propset.StringValue("Invert"))

	require.NoError(t, s.SetString("OfxPropLabel", 0, "Custom", propset.FromHost))
	v, err := s.GetString("OfxPropLabel", 0)
	require.NoError(t, err)
	assert.Equal(t, "Custom", v)

	require.NoError(t, s.Reset("OfxPropLabel"))
	v, err = s.GetString("OfxPropLabel", 0)
	require.NoError(t, err)
	assert.Equal(t, "Invert", v)
}

func TestWriteThenReadRoundTrips(t *testing.T) {
	s := propset.New(false)
	s.Define("OfxPropVersion", propset.TypeInt, 3, false, propset.IntValue(1), propset.IntValue(0), propset.IntValue(0))

	require.NoError(t, s.SetInt("OfxPropVersion", 1, 5, propset.FromHost))
	got, err := s.GetIntN("OfxPropVersion", 3)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 5, 0}, got)
}

func TestUnknownPropertyStrict(t *testing.T) {
	s := propset.New(false)
	_, err := s.GetInt("NoSuchProp", 0)
	assert.ErrorIs(t, err, propset.ErrUnknown)
}

func TestPermissiveFabricatesOnRead(t *testing.T) {
	s := propset.New(true)
	v, err := s.GetDouble("SomeDynamicProp", 0)
	require.NoError(t, err)
	assert.Zero(t, v)
}

func TestBadTypeRejected(t *testing.T) {
	s := propset.New(false)
	s.Define("OfxPropName", propset.TypeString, 1, false, propset.StringValue(""))
	_, err := s.GetInt("OfxPropName", 0)
	assert.ErrorIs(t, err, propset.ErrBadType)
}

func TestFixedDimensionBadIndex(t *testing.T) {
	s := propset.New(false)
	s.Define("OfxImageEffectPropRenderScale", propset.TypeDouble, 2, false,
		propset.DoubleValue(1), propset.DoubleValue(1))
	_, err := s.GetDouble("OfxImageEffectPropRenderScale", 2)
	assert.ErrorIs(t, err, propset.ErrBadIndex)
}

func TestPluginWriteRejectedOnReadOnly(t *testing.T) {
	s := propset.New(false)
	s.Define("OfxPropAPIVersion", propset.TypeInt, 1, true, propset.IntValue(1))
	err := s.SetInt("OfxPropAPIVersion", 0, 2, propset.FromPlugin)
	assert.Error(t, err)
	err = s.SetInt("OfxPropAPIVersion", 0, 2, propset.FromHost)
	assert.NoError(t, err)
}

func TestCloneDropsReadOnlyAndHooks(t *testing.T) {
	s := propset.New(false)
	s.Define("OfxPropName", propset.TypeString, 1, true, propset.StringValue("orig"))
	hookCalls := 0
	require.NoError(t, s.AddSetHook("OfxPropName", func(string, propset.Value, int) { hookCalls++ }))

	clone := s.Clone()
	require.NoError(t, clone.SetString("OfxPropName", 0, "changed", propset.FromPlugin))
	v, err := clone.GetString("OfxPropName", 0)
	require.NoError(t, err)
	assert.Equal(t, "changed", v)
	assert.Zero(t, hookCalls, "clone must not carry over the original's set hooks")
}

type constHook struct{ v propset.Value }

func (c constHook) Get(int) (propset.Value, error) { return c.v, nil }
func (c constHook) Dimension() (int, error)         { return 1, nil }
func (c constHook) Reset() error                    { return nil }

func TestGetHookGovernsReads(t *testing.T) {
	s := propset.New(false)
	s.Define("OfxImageClipPropConnected", propset.TypeInt, 1, true, propset.IntValue(0))
	require.NoError(t, s.SetGetHook("OfxImageClipPropConnected", constHook{propset.IntValue(1)}))

	v, err := s.GetInt("OfxImageClipPropConnected", 0)
	require.NoError(t, err)
	assert.EqualValues(t, 1, v)
}
