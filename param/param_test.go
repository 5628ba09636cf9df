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

package param_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openfx-host/ofxhost/ofxstatus"
	"github.com/openfx-host/ofxhost/param"
	"github.com/openfx-host/ofxhost/propset"
)

func TestKindTypeNamesAndDimensions(t *testing.T) {
	assert.Equal(t, 2, param.KindInteger2D.ValueDimension())
	assert.Equal(t, 3, param.KindRGB.ValueDimension())
	assert.Equal(t, 4, param.KindRGBA.ValueDimension())
	assert.Equal(t, 0, param.KindGroup.ValueDimension())
	assert.True(t, param.KindDouble.IsFloatingPoint())
	assert.False(t, param.KindInteger.IsFloatingPoint())
	assert.True(t, param.KindChoice.IsNumeric())
	assert.False(t, param.KindString.IsNumeric())
}

func TestDescriptorSeedsRGBLabelsNotXYZ(t *testing.T) {
	d := param.NewDescriptor("colour", param.KindRGB)
	labels, err := d.Properties.GetStringN(ofxstatus.ParamPropDimensionLabel, 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"R", "G", "B"}, labels)
}

func TestDescriptorSeedsXYZLabelsForInteger3D(t *testing.T) {
	d := param.NewDescriptor("pos", param.KindInteger3D)
	labels, err := d.Properties.GetStringN(ofxstatus.ParamPropDimensionLabel, 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"X", "Y", "Z"}, labels)
}

func TestDescriptorGroupHasNoInteractProperties(t *testing.T) {
	d := param.NewDescriptor("grp", param.KindGroup)
	assert.False(t, d.Properties.Has(ofxstatus.ParamPropInteractV1))
}

type fakeVirtual struct {
	values []propset.Value
}

func (f *fakeVirtual) GetValueAtTime(time float64) ([]propset.Value, error) {
	return f.values, nil
}

func (f *fakeVirtual) SetValueAtTime(time float64, values []propset.Value) error {
	f.values = values
	return nil
}

func TestInstanceSetValueRecordsKeyframeAndNotifies(t *testing.T) {
	desc := param.NewDescriptor("x", param.KindDouble)
	v := &fakeVirtual{values: []propset.Value{propset.DoubleValue(0)}}
	var notified string
	inst := param.NewInstance(desc, v, func(name string) { notified = name })

	require.NoError(t, inst.SetValue(1.0, []propset.Value{propset.DoubleValue(5)}, true))
	assert.Equal(t, "x", notified)
	assert.Equal(t, 1, inst.NumKeys())

	got, err := inst.KeyTime(0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, got)

	vals, err := inst.GetValue(1.0)
	require.NoError(t, err)
	assert.Equal(t, 5.0, vals[0].F)
}

func TestInstanceSetValueWithoutKeyframeDoesNotRecord(t *testing.T) {
	desc := param.NewDescriptor("x", param.KindDouble)
	v := &fakeVirtual{values: []propset.Value{propset.DoubleValue(0)}}
	inst := param.NewInstance(desc, v, nil)

	require.NoError(t, inst.SetValue(2.0, []propset.Value{propset.DoubleValue(1)}, false))
	assert.Equal(t, 0, inst.NumKeys())
}

type derivableVirtual struct {
	fakeVirtual
}

func (d *derivableVirtual) GetDerivative(time float64) ([]propset.Value, error) {
	return []propset.Value{propset.DoubleValue(42)}, nil
}

func TestInstanceGetDerivativeUsesOptionalVirtual(t *testing.T) {
	desc := param.NewDescriptor("x", param.KindDouble)
	inst := param.NewInstance(desc, &derivableVirtual{}, nil)

	vals, err := inst.GetDerivative(0)
	require.NoError(t, err)
	assert.Equal(t, 42.0, vals[0].F)
}

func TestInstanceGetDerivativeFailsWithoutOptionalVirtual(t *testing.T) {
	desc := param.NewDescriptor("x", param.KindDouble)
	inst := param.NewInstance(desc, &fakeVirtual{}, nil)

	_, err := inst.GetDerivative(0)
	assert.Equal(t, param.ErrNoVirtual, err)
}

func TestKeyIndexDirections(t *testing.T) {
	desc := param.NewDescriptor("x", param.KindDouble)
	inst := param.NewInstance(desc, &fakeVirtual{}, nil)

	require.NoError(t, inst.SetValue(1.0, []propset.Value{propset.DoubleValue(1)}, true))
	require.NoError(t, inst.SetValue(3.0, []propset.Value{propset.DoubleValue(3)}, true))
	require.NoError(t, inst.SetValue(5.0, []propset.Value{propset.DoubleValue(5)}, true))

	idx, err := inst.KeyIndex(3.0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, idx)

	idx, err = inst.KeyIndex(4.0, -1)
	require.NoError(t, err)
	assert.Equal(t, 1, idx)

	idx, err = inst.KeyIndex(4.0, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, idx)

	require.NoError(t, inst.DeleteKey(3.0))
	assert.Equal(t, 2, inst.NumKeys())

	inst.DeleteAllKeys()
	assert.Equal(t, 0, inst.NumKeys())
}

func TestSetDescriptorDefineAndGet(t *testing.T) {
	sd := param.NewSetDescriptor()
	sd.Define("a", param.KindDouble)
	sd.Define("b", param.KindInteger)

	assert.Equal(t, []string{"a", "b"}, sd.Names())

	d, err := sd.Get("a")
	require.NoError(t, err)
	assert.Equal(t, param.KindDouble, d.Kind())

	_, err = sd.Get("missing")
	assert.Equal(t, param.ErrUnknownParam, err)
}

func TestSetInstanceResolveParentsWiresGroupChildren(t *testing.T) {
	sd := param.NewSetDescriptor()
	sd.Define("grp", param.KindGroup)
	child := sd.Define("child", param.KindDouble)
	require.NoError(t, child.Properties.SetString(ofxstatus.ParamPropParent, 0, "grp", propset.FromHost))

	si := param.NewSetInstance()
	for _, name := range sd.Names() {
		d, _ := sd.Get(name)
		si.Add(param.NewInstance(d, &fakeVirtual{}, nil))
	}

	require.NoError(t, si.ResolveParents())

	grp, err := si.Get("grp")
	require.NoError(t, err)
	children, err := grp.Properties.GetStringN(ofxstatus.ParamPropPageChild, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"child"}, children)
}

func TestSetInstanceDestroyReleasesProperties(t *testing.T) {
	sd := param.NewSetDescriptor()
	sd.Define("a", param.KindDouble)
	si := param.NewSetInstance()
	d, _ := sd.Get("a")
	si.Add(param.NewInstance(d, &fakeVirtual{}, nil))

	assert.NotPanics(t, func() { si.Destroy() })
}
