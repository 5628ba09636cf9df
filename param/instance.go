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

package param

import (
	"github.com/openfx-host/ofxhost/internal/xerr"
	"github.com/openfx-host/ofxhost/propset"
)

// ErrNoVirtual is returned by an Instance operation that requires a
// capability its Virtual does not implement (derivative/integral on a
// non-numeric kind, for instance).
const ErrNoVirtual = xerr.Const("param: virtual does not support this operation")

// Virtual is the embedder-supplied get/set contract every parameter
// instance is backed by (spec §4.F: "Each kind has a virtual get/set
// contract keyed on time"). The host support library never stores the
// authoritative value itself; it always asks the embedder, so a read
// immediately after an external change (e.g. a host-side undo) is
// correct without an explicit cache-invalidation step.
type Virtual interface {
	GetValueAtTime(time float64) ([]propset.Value, error)
	SetValueAtTime(time float64, values []propset.Value) error
}

// DerivativeVirtual is an optional Virtual extension for kinds that
// support ParamGetDerivative (spec §4.F: "instances may also derive").
type DerivativeVirtual interface {
	GetDerivative(time float64) ([]propset.Value, error)
}

// IntegralVirtual is an optional Virtual extension for kinds that support
// ParamGetIntegral (spec §4.F: "... integrate").
type IntegralVirtual interface {
	GetIntegral(time1, time2 float64) ([]propset.Value, error)
}

// Instance is one parameter instance: the descriptor's cloned property
// set, the embedder's Virtual, and the keyframe set the suite layer
// enumerates (spec §3/§4.F, SPEC_FULL.md §12).
type Instance struct {
	desc       *Descriptor
	Properties *propset.Set
	virtual    Virtual
	keys       keyframes
	onChanged  func(paramName string)
}

// NewInstance builds an instance from desc, backed by virtual. onChanged,
// if non-nil, is invoked after every successful write so the owning
// image-effect instance can schedule instanceChanged (spec §4.F: "the
// host is notified so it can schedule instanceChanged").
func NewInstance(desc *Descriptor, virtual Virtual, onChanged func(string)) *Instance {
	return &Instance{
		desc:       desc,
		Properties: desc.Properties.Clone(),
		virtual:    virtual,
		onChanged:  onChanged,
	}
}

// Name returns the parameter's name.
func (i *Instance) Name() string { return i.desc.Name() }

// Kind returns the parameter's kind.
func (i *Instance) Kind() Kind { return i.desc.Kind() }

// GetValue reads the parameter's value at time through the Virtual.
func (i *Instance) GetValue(time float64) ([]propset.Value, error) {
	return i.virtual.GetValueAtTime(time)
}

// SetValue writes the parameter's value at time through the Virtual, then
// notifies the change callback. recordKeyframe should be true for a
// plug-in's explicit "set value at time" call and false for the
// time-independent "set value" call (the OFX suite distinguishes the
// two; only the former is defined to create an animation key).
func (i *Instance) SetValue(time float64, values []propset.Value, recordKeyframe bool) error {
	if err := i.virtual.SetValueAtTime(time, values); err != nil {
		return err
	}
	if recordKeyframe {
		i.keys.insert(time)
	}
	if i.onChanged != nil {
		i.onChanged(i.desc.Name())
	}
	return nil
}

// GetDerivative reads the first derivative at time, if the Virtual
// supports it.
func (i *Instance) GetDerivative(time float64) ([]propset.Value, error) {
	dv, ok := i.virtual.(DerivativeVirtual)
	if !ok {
		return nil, ErrNoVirtual
	}
	return dv.GetDerivative(time)
}

// GetIntegral reads the definite integral over [time1, time2], if the
// Virtual supports it.
func (i *Instance) GetIntegral(time1, time2 float64) ([]propset.Value, error) {
	iv, ok := i.virtual.(IntegralVirtual)
	if !ok {
		return nil, ErrNoVirtual
	}
	return iv.GetIntegral(time1, time2)
}

// NumKeys returns the number of animation keyframes.
func (i *Instance) NumKeys() int { return i.keys.numKeys() }

// KeyTime returns the time of the n'th keyframe in ascending order.
func (i *Instance) KeyTime(n int) (float64, error) { return i.keys.keyTime(n) }

// KeyIndex finds the keyframe at, before (direction<0), or after
// (direction>0) time.
func (i *Instance) KeyIndex(time float64, direction int) (int, error) {
	return i.keys.keyIndex(time, direction)
}

// DeleteKey removes the keyframe at time, if any.
func (i *Instance) DeleteKey(time float64) error { return i.keys.deleteKey(time) }

// DeleteAllKeys removes every keyframe.
func (i *Instance) DeleteAllKeys() { i.keys.deleteAllKeys() }
