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

package interact

import (
	"github.com/openfx-host/ofxhost/internal/xerr"
	"github.com/openfx-host/ofxhost/ofxabi"
	"github.com/openfx-host/ofxhost/ofxstatus"
	"github.com/openfx-host/ofxhost/propset"
)

// EntryPoint is the plug-in's overlay interact entry point, obtained from
// a parameter's OfxParamPropInteractV1 or the effect's own
// OfxImageEffectPluginPropOverlayInteractV1 property (spec §4.I). It has
// the same (action, handle, inArgs, outArgs) -> status shape as the main
// image-effect entry, so it is dispatched through the same call discipline.
type EntryPoint func(action string, handle, inArgs, outArgs ofxabi.Handle) ofxstatus.Status

// Instance is one overlay interactor. Its property set is the same set the
// owning effect instance uses (spec §4.I: "holds a property set shared with
// the effect"), so Instance never releases Properties itself; the effect
// instance's own teardown owns that lifetime.
type Instance struct {
	Properties *propset.Set
	virtual    Virtual
	entry      EntryPoint
	handle     ofxabi.Handle
}

// NewInstance builds an interact instance over effectProperties, installing
// get hooks for its geometry properties if they are not already present.
func NewInstance(effectProperties *propset.Set, virtual Virtual, entry EntryPoint) *Instance {
	i := &Instance{Properties: effectProperties, virtual: virtual, entry: entry}
	i.installHooks()
	i.handle = ofxabi.Mint(ofxabi.KindInteract, i)
	return i
}

// Release invalidates this instance's handle. It does not touch Properties,
// which the owning effect instance still owns.
func (i *Instance) Release() { ofxabi.Release(i.handle) }

func single2(a, b float64) []propset.Value {
	return []propset.Value{propset.DoubleValue(a), propset.DoubleValue(b)}
}

func single3(a, b, c float64) []propset.Value {
	return []propset.Value{propset.DoubleValue(a), propset.DoubleValue(b), propset.DoubleValue(c)}
}

// valueHook adapts a niladic getter returning a property's full current
// value vector into a propset.GetHook, the same shape clip.Instance uses
// for its own virtual-backed properties.
type valueHook struct {
	get func() []propset.Value
}

func (h valueHook) Get(index int) (propset.Value, error) {
	vs := h.get()
	if index < 0 || index >= len(vs) {
		return propset.Value{}, propset.ErrBadIndex
	}
	return vs[index], nil
}
func (h valueHook) Dimension() (int, error) { return len(h.get()), nil }
func (h valueHook) Reset() error            { return nil }

func (i *Instance) installHooks() {
	p := i.Properties
	v := i.virtual

	mustDefine := func(name string, typ propset.Type, dim int) {
		if !p.Has(name) {
			p.Define(name, typ, dim, true)
		}
	}
	mustHook := func(name string, hook propset.GetHook) {
		if err := p.SetGetHook(name, hook); err != nil {
			panic(err)
		}
	}

	mustDefine(ofxstatus.InteractPropPixelScale, propset.TypeDouble, 2)
	mustHook(ofxstatus.InteractPropPixelScale, valueHook{func() []propset.Value {
		x, y := v.PixelScale()
		return single2(x, y)
	}})

	mustDefine(ofxstatus.InteractPropBackgroundColour, propset.TypeDouble, 3)
	mustHook(ofxstatus.InteractPropBackgroundColour, valueHook{func() []propset.Value {
		r, g, b := v.BackgroundColour()
		return single3(r, g, b)
	}})

	mustDefine(ofxstatus.InteractPropViewportSize, propset.TypeDouble, 2)
	mustHook(ofxstatus.InteractPropViewportSize, valueHook{func() []propset.Value {
		w, h := v.ViewportSize()
		return single2(w, h)
	}})
}

// call dispatches one interact action, wrapped in the same foreign
// exception boundary every plug-in call crossing requires (spec §4.H's
// "the host must wrap each plug-in call..." applies equally here).
func (i *Instance) call(action string, in *propset.Set) (st ofxstatus.Status, err error) {
	defer xerr.Recover(&err)
	var inHandle ofxabi.Handle
	if in != nil {
		inHandle = in.Handle()
	}
	st = i.entry(action, i.handle, inHandle, 0)
	return st, err
}

func (i *Instance) baseArgs(time, renderScaleX, renderScaleY float64) *propset.Set {
	in := propset.New(true)
	in.SetDouble(ofxstatus.PropTime, 0, time, propset.FromHost)
	in.SetDoubleN(ofxstatus.ImageEffectPropRenderScale, []float64{renderScaleX, renderScaleY}, propset.FromHost)
	return in
}

// Draw dispatches the draw action.
func (i *Instance) Draw(time, renderScaleX, renderScaleY float64) (ofxstatus.Status, error) {
	in := i.baseArgs(time, renderScaleX, renderScaleY)
	defer in.Release()
	return i.call(ofxstatus.InteractActionDraw, in)
}

// PenDown dispatches penDown with pen position, viewport position and
// pressure (spec §4.I: "pen (down/up/motion with x,y,pressure)").
func (i *Instance) PenDown(time, renderScaleX, renderScaleY, x, y, pressure float64) (ofxstatus.Status, error) {
	return i.dispatchPen(ofxstatus.InteractActionPenDown, time, renderScaleX, renderScaleY, x, y, pressure)
}

// PenUp dispatches penUp.
func (i *Instance) PenUp(time, renderScaleX, renderScaleY, x, y, pressure float64) (ofxstatus.Status, error) {
	return i.dispatchPen(ofxstatus.InteractActionPenUp, time, renderScaleX, renderScaleY, x, y, pressure)
}

// PenMotion dispatches penMotion.
func (i *Instance) PenMotion(time, renderScaleX, renderScaleY, x, y, pressure float64) (ofxstatus.Status, error) {
	return i.dispatchPen(ofxstatus.InteractActionPenMotion, time, renderScaleX, renderScaleY, x, y, pressure)
}

func (i *Instance) dispatchPen(action string, time, renderScaleX, renderScaleY, x, y, pressure float64) (ofxstatus.Status, error) {
	in := i.baseArgs(time, renderScaleX, renderScaleY)
	defer in.Release()
	in.SetDoubleN(ofxstatus.InteractPropPenPosition, []float64{x, y}, propset.FromHost)
	in.SetDoubleN(ofxstatus.InteractPropPenViewportPosition, []float64{x, y}, propset.FromHost)
	in.SetDouble(ofxstatus.InteractPropPenPressure, 0, pressure, propset.FromHost)
	return i.call(action, in)
}

// KeyDown dispatches keyDown with the platform key symbol and its UTF-8
// string form (spec §4.I: "key (down/up/repeat with symbol+string)").
func (i *Instance) KeyDown(time, renderScaleX, renderScaleY float64, keySym, keyString string) (ofxstatus.Status, error) {
	return i.dispatchKey(ofxstatus.InteractActionKeyDown, time, renderScaleX, renderScaleY, keySym, keyString)
}

// KeyUp dispatches keyUp.
func (i *Instance) KeyUp(time, renderScaleX, renderScaleY float64, keySym, keyString string) (ofxstatus.Status, error) {
	return i.dispatchKey(ofxstatus.InteractActionKeyUp, time, renderScaleX, renderScaleY, keySym, keyString)
}

// KeyRepeat dispatches keyRepeat.
func (i *Instance) KeyRepeat(time, renderScaleX, renderScaleY float64, keySym, keyString string) (ofxstatus.Status, error) {
	return i.dispatchKey(ofxstatus.InteractActionKeyRepeat, time, renderScaleX, renderScaleY, keySym, keyString)
}

func (i *Instance) dispatchKey(action string, time, renderScaleX, renderScaleY float64, keySym, keyString string) (ofxstatus.Status, error) {
	in := i.baseArgs(time, renderScaleX, renderScaleY)
	defer in.Release()
	in.SetString(ofxstatus.PropKeySym, 0, keySym, propset.FromHost)
	in.SetString(ofxstatus.PropKeyString, 0, keyString, propset.FromHost)
	return i.call(action, in)
}

// GainFocus dispatches gainFocus.
func (i *Instance) GainFocus(time, renderScaleX, renderScaleY float64) (ofxstatus.Status, error) {
	in := i.baseArgs(time, renderScaleX, renderScaleY)
	defer in.Release()
	return i.call(ofxstatus.InteractActionGainFocus, in)
}

// LoseFocus dispatches loseFocus.
func (i *Instance) LoseFocus(time, renderScaleX, renderScaleY float64) (ofxstatus.Status, error) {
	in := i.baseArgs(time, renderScaleX, renderScaleY)
	defer in.Release()
	return i.call(ofxstatus.InteractActionLoseFocus, in)
}
