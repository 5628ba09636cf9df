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

package imageeffect

import (
	"sync"

	"github.com/openfx-host/ofxhost/binloader"
	"github.com/openfx-host/ofxhost/clip"
	"github.com/openfx-host/ofxhost/crashreport"
	"github.com/openfx-host/ofxhost/internal/xerr"
	"github.com/openfx-host/ofxhost/metrics"
	"github.com/openfx-host/ofxhost/ofxabi"
	"github.com/openfx-host/ofxhost/ofxstatus"
	"github.com/openfx-host/ofxhost/param"
	"github.com/openfx-host/ofxhost/propset"
)

// newArgSet builds the permissive property set used for one action's
// in/out arguments: a plug-in or host may legally touch a property
// neither side declared up front (spec §4.B's permissive miss policy).
func newArgSet() *propset.Set { return propset.New(true) }

// ErrWrongOrder is returned when an action is dispatched out of the
// sequence spec §4.H guarantees (createInstance first, destroyInstance
// last and only once, render only between a matched begin/end pair).
const ErrWrongOrder = xerr.Const("imageeffect: action dispatched out of order")

// VirtualFactory supplies the embedder's backing implementation for every
// clip and parameter an effect instance is populated with (spec §4.H:
// "Population ... for each clip descriptor build a clip instance; ...
// populate [params] from the param descriptor map").
type VirtualFactory interface {
	ClipVirtual(clipName string) clip.Virtual
	ParamVirtual(paramName string, kind param.Kind) param.Virtual
}

type instanceState int

const (
	stateBuilt instanceState = iota
	stateCreated
	stateRendering
	stateDestroyed
)

// Instance is one Image-Effect instance (spec §3: "Image-effect
// instance"). Its clip and parameter instances are built immediately on
// construction (before the createInstance action is ever dispatched), as
// describeInContext has already run on ctxDesc by the time an Instance is
// built.
type Instance struct {
	bin     *binloader.Binary
	index   int
	host    *ofxabi.Host
	ctxDesc *Descriptor
	context string

	Clips  *clip.SetInstance
	Params *param.SetInstance

	mu    sync.Mutex
	state instanceState
	handle ofxabi.Handle

	continuousSamples bool
	frameVarying      bool

	metrics *metrics.Metrics
	crash   crashreport.Sink
}

// SetTelemetry attaches observability for every action this instance
// dispatches from this point on (SPEC_FULL §11's metrics/crashreport
// wiring). Either argument may be nil; a nil Metrics skips instrumentation
// and a nil Sink skips crash reporting, so a caller that only wants one of
// the two doesn't have to construct the other.
func (i *Instance) SetTelemetry(m *metrics.Metrics, crash crashreport.Sink) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.metrics = m
	i.crash = crash
}

// NewInstance builds (but does not yet createInstance) an effect instance
// bound to bin's index'th plug-in, in context ctxDesc, with clip/param
// instances sourced from factory (spec §4.H: "Population").
func NewInstance(bin *binloader.Binary, index int, ctxDesc *Descriptor, context string, host *ofxabi.Host, factory VirtualFactory) (*Instance, error) {
	inst := &Instance{bin: bin, index: index, host: host, ctxDesc: ctxDesc, context: context}

	inst.Clips = clip.NewSetInstance()
	for _, name := range ctxDesc.Clips.Names() {
		cd, err := ctxDesc.Clips.Get(name)
		if err != nil {
			continue
		}
		ci := clip.NewInstance(cd, factory.ClipVirtual(name), inst.notifyClipChanged)
		inst.Clips.Add(ci)
	}

	inst.Params = param.NewSetInstance()
	for _, name := range ctxDesc.Params.Names() {
		pd, err := ctxDesc.Params.Get(name)
		if err != nil {
			continue
		}
		pi := param.NewInstance(pd, factory.ParamVirtual(name, pd.Kind()), inst.notifyParamChanged)
		inst.Params.Add(pi)
	}
	if err := inst.Params.ResolveParents(); err != nil {
		return nil, err
	}

	return inst, nil
}

func (i *Instance) notifyClipChanged(name string)  { i.instanceChanged(name, "OfxTypeClip") }
func (i *Instance) notifyParamChanged(name string) { i.instanceChanged(name, "OfxTypeParameter") }

func (i *Instance) rawPlugin() ofxabi.RawPlugin {
	return i.bin.Discovery().Plugin(i.index)
}

// call dispatches one action through this instance's handle, wrapped in
// the foreign-exception boundary every plug-in call crossing must have
// (spec §4.H: "The host must wrap each plug-in call to catch any foreign
// exception and translate it into the OFX failed status").
func (i *Instance) call(action string, inArgs, outArgs ofxabi.Handle) (st ofxstatus.Status, err error) {
	i.mu.Lock()
	m, crash := i.metrics, i.crash
	i.mu.Unlock()

	var done func(string)
	if m != nil {
		done = m.Timer(action)
	}
	panicked := true
	defer func() {
		if panicked && err != nil {
			if m != nil {
				m.ForeignException()
			}
			if crash != nil {
				crash.Report(err, map[string]string{
					"identifier": i.rawPlugin().Identifier,
					"action":     action,
				})
			}
		}
		if done != nil {
			if err != nil {
				done(ofxstatus.Failed.String())
			} else {
				done(st.String())
			}
		}
	}()
	defer xerr.Recover(&err)
	st = i.rawPlugin().MainEntry(action, i.handle, inArgs, outArgs)
	panicked = false
	return st, err
}

// CreateInstance dispatches createInstance. It must be the first action
// ever sent on this instance (spec §4.H ordering guarantee #1).
func (i *Instance) CreateInstance() (ofxstatus.Status, error) {
	i.mu.Lock()
	if i.state != stateBuilt {
		i.mu.Unlock()
		return 0, ErrWrongOrder
	}
	i.mu.Unlock()

	if err := i.bin.Ref(); err != nil {
		return 0, err
	}
	i.handle = ofxabi.Mint(ofxabi.KindImageEffect, i)

	st, err := i.call(ofxstatus.ActionCreateInstance, 0, 0)
	if err != nil || !st.Succeeded() {
		ofxabi.Release(i.handle)
		i.bin.Unref()
		return st, err
	}

	i.mu.Lock()
	i.state = stateCreated
	i.mu.Unlock()
	return st, nil
}

// DestroyInstance dispatches destroyInstance exactly once, as the last
// action this instance will ever receive (spec §4.H: "destroyInstance ...
// the handle must not be reused"; spec §3 invariant: "destroyInstance is
// dispatched iff createInstance returned success").
func (i *Instance) DestroyInstance() (ofxstatus.Status, error) {
	i.mu.Lock()
	if i.state != stateCreated {
		i.mu.Unlock()
		return 0, ErrWrongOrder
	}
	i.state = stateDestroyed
	i.mu.Unlock()

	st, err := i.call(ofxstatus.ActionDestroyInstance, 0, 0)
	ofxabi.Release(i.handle)
	i.Params.Destroy()
	i.Clips.Destroy()
	i.bin.Unref()
	return st, err
}

// SyncPrivateData dispatches syncPrivateData, the no-argument action a
// plug-in whose effect handle was created from a pre-populated parameter
// set (loading a saved project) expects right after createInstance
// succeeds.
func (i *Instance) SyncPrivateData() (ofxstatus.Status, error) {
	i.mu.Lock()
	created := i.state == stateCreated
	i.mu.Unlock()
	if !created {
		return 0, ErrWrongOrder
	}
	return i.call(ofxstatus.ActionSyncPrivateData, 0, 0)
}

// BeginSequenceRender dispatches beginSequenceRender, opening the window
// within which Render calls are valid (spec §4.H ordering guarantee #2).
func (i *Instance) BeginSequenceRender(p SequenceRenderParams) (ofxstatus.Status, error) {
	i.mu.Lock()
	if i.state != stateCreated {
		i.mu.Unlock()
		return 0, ErrWrongOrder
	}
	i.state = stateRendering
	i.mu.Unlock()
	return i.dispatchSequenceRender(ofxstatus.ImageEffectActionBeginSequenceRender, p)
}

// EndSequenceRender dispatches endSequenceRender, closing a render window
// opened by BeginSequenceRender.
func (i *Instance) EndSequenceRender(p SequenceRenderParams) (ofxstatus.Status, error) {
	i.mu.Lock()
	if i.state != stateRendering {
		i.mu.Unlock()
		return 0, ErrWrongOrder
	}
	i.state = stateCreated
	i.mu.Unlock()
	return i.dispatchSequenceRender(ofxstatus.ImageEffectActionEndSequenceRender, p)
}

func (i *Instance) dispatchSequenceRender(action string, p SequenceRenderParams) (ofxstatus.Status, error) {
	in := newArgSet()
	defer in.Release()
	in.SetDoubleN(ofxstatus.ImageEffectPropFrameRange, []float64{p.FrameRangeMin, p.FrameRangeMax}, propset.FromHost)
	in.SetDouble(ofxstatus.ImageEffectPropFrameStep, 0, p.Step, propset.FromHost)
	in.SetDouble(ofxstatus.PropIsInteractive, 0, float64(boolInt(p.Interactive)), propset.FromHost)
	in.SetDoubleN(ofxstatus.ImageEffectPropRenderScale, []float64{p.RenderScaleX, p.RenderScaleY}, propset.FromHost)
	return i.call(action, in.Handle(), 0)
}

// Render dispatches render; it must occur strictly between a matched
// BeginSequenceRender/EndSequenceRender pair (spec §4.H ordering guarantee
// #2).
func (i *Instance) Render(p RenderParams) (ofxstatus.Status, error) {
	i.mu.Lock()
	inRender := i.state == stateRendering
	i.mu.Unlock()
	if !inRender {
		return 0, ErrWrongOrder
	}

	in := newArgSet()
	defer in.Release()
	in.SetDouble(ofxstatus.PropTime, 0, p.Time, propset.FromHost)
	in.SetString(ofxstatus.ImageEffectPropFieldToRender, 0, p.Field, propset.FromHost)
	in.SetIntN(ofxstatus.ImageEffectPropRenderWindow, p.RenderWindow[:], propset.FromHost)
	in.SetDoubleN(ofxstatus.ImageEffectPropRenderScale, []float64{p.RenderScaleX, p.RenderScaleY}, propset.FromHost)
	return i.call(ofxstatus.ImageEffectActionRender, in.Handle(), 0)
}

// GetRegionOfDefinition dispatches getRegionOfDefinition.
func (i *Instance) GetRegionOfDefinition(time float64, scaleX, scaleY float64) (rod [4]float64, st ofxstatus.Status, err error) {
	in := newArgSet()
	defer in.Release()
	in.SetDouble(ofxstatus.PropTime, 0, time, propset.FromHost)
	in.SetDoubleN(ofxstatus.ImageEffectPropRenderScale, []float64{scaleX, scaleY}, propset.FromHost)

	out := newArgSet()
	defer out.Release()

	st, err = i.call(ofxstatus.ImageEffectActionGetRegionOfDefinition, in.Handle(), out.Handle())
	if err != nil || !st.Succeeded() {
		return rod, st, err
	}
	vs, err := out.GetDoubleN(ofxstatus.ImageEffectPropRegionOfDefinition, 4)
	if err != nil {
		return rod, st, err
	}
	copy(rod[:], vs)
	return rod, st, nil
}

// GetRegionsOfInterest dispatches getRegionsOfInterest and decodes the
// per-clip OfxImageClipPropRoI_<name> replies (spec §4.H).
func (i *Instance) GetRegionsOfInterest(time float64, scaleX, scaleY float64, requestedRoI [4]float64) (rois map[string][4]float64, st ofxstatus.Status, err error) {
	in := newArgSet()
	defer in.Release()
	in.SetDouble(ofxstatus.PropTime, 0, time, propset.FromHost)
	in.SetDoubleN(ofxstatus.ImageEffectPropRenderScale, []float64{scaleX, scaleY}, propset.FromHost)
	in.SetDoubleN(ofxstatus.ImageEffectPropRegionOfInterest, requestedRoI[:], propset.FromHost)

	out := newArgSet()
	defer out.Release()

	st, err = i.call(ofxstatus.ImageEffectActionGetRegionsOfInterest, in.Handle(), out.Handle())
	if err != nil || !st.Succeeded() {
		return nil, st, err
	}
	rois = map[string][4]float64{}
	for _, name := range i.Clips.Names() {
		vs, err := out.GetDoubleN(roiPropName(name), 4)
		if err != nil {
			continue
		}
		var r [4]float64
		copy(r[:], vs)
		rois[name] = r
	}
	return rois, st, nil
}

// GetFramesNeeded dispatches getFramesNeeded and decodes the per-clip
// OfxImageClipPropFrameRange_<name> replies, each a flattened list of k
// [min,max] pairs (spec §4.H: "bails with default if temporal access
// unsupported; k pairs means k ranges").
func (i *Instance) GetFramesNeeded(time float64) (ranges map[string][][2]float64, st ofxstatus.Status, err error) {
	if ta, _ := i.ctxDesc.Properties.GetInt(ofxstatus.ImageEffectPropTemporalClipAccess, 0); ta == 0 {
		return nil, ofxstatus.ReplyDefault, nil
	}
	in := newArgSet()
	defer in.Release()
	in.SetDouble(ofxstatus.PropTime, 0, time, propset.FromHost)

	out := newArgSet()
	defer out.Release()

	st, err = i.call(ofxstatus.ImageEffectActionGetFramesNeeded, in.Handle(), out.Handle())
	if err != nil || !st.Succeeded() {
		return nil, st, err
	}
	ranges = map[string][][2]float64{}
	for _, name := range i.Clips.Names() {
		propName := framesNeededPropName(name)
		dim, derr := out.Dimension(propName)
		if derr != nil || dim == 0 || dim%2 != 0 {
			continue
		}
		vs, verr := out.GetDoubleN(propName, dim)
		if verr != nil {
			continue
		}
		var pairs [][2]float64
		for k := 0; k+1 < len(vs); k += 2 {
			pairs = append(pairs, [2]float64{vs[k], vs[k+1]})
		}
		ranges[name] = pairs
	}
	return ranges, st, nil
}

// IsIdentity dispatches isIdentity, returning the passthrough (time,
// clipName) pair the plug-in names on a "yes" reply.
func (i *Instance) IsIdentity(time float64, field string, renderWindow [4]int64, scaleX, scaleY float64) (identityTime float64, identityClip string, st ofxstatus.Status, err error) {
	in := newArgSet()
	defer in.Release()
	in.SetDouble(ofxstatus.PropTime, 0, time, propset.FromHost)
	in.SetString(ofxstatus.ImageEffectPropFieldToRender, 0, field, propset.FromHost)
	in.SetIntN(ofxstatus.ImageEffectPropRenderWindow, renderWindow[:], propset.FromHost)
	in.SetDoubleN(ofxstatus.ImageEffectPropRenderScale, []float64{scaleX, scaleY}, propset.FromHost)

	out := newArgSet()
	defer out.Release()

	st, err = i.call(ofxstatus.ImageEffectActionIsIdentity, in.Handle(), out.Handle())
	if err != nil || st != ofxstatus.OK {
		return 0, "", st, err
	}
	identityTime, _ = out.GetDouble(ofxstatus.PropTime, 0)
	identityClip, _ = out.GetString(ofxstatus.PropName, 0)
	return identityTime, identityClip, st, nil
}

// ClipPreferences is one clip's reply to getClipPreferences.
type ClipPreferences struct {
	Components        string
	PixelDepth        string
	PixelAspectRatio  float64
}

// EffectPreferences is the output-level reply to getClipPreferences.
type EffectPreferences struct {
	Clips              map[string]ClipPreferences
	OutputFrameRate    float64
	OutputPixelAspectRatio float64
	OutputPreMultiplication string
	ContinuousSamples  bool
	FrameVarying       bool
}

// GetClipPreferences dispatches getClipPreferences and decodes the
// per-clip and output-level replies (spec §4.H).
func (i *Instance) GetClipPreferences() (prefs EffectPreferences, st ofxstatus.Status, err error) {
	in := newArgSet()
	defer in.Release()
	out := newArgSet()
	defer out.Release()

	st, err = i.call(ofxstatus.ImageEffectActionGetClipPreferences, in.Handle(), out.Handle())
	if err != nil || !st.Succeeded() {
		return prefs, st, err
	}

	prefs.Clips = map[string]ClipPreferences{}
	for _, name := range i.Clips.Names() {
		comps, _ := out.GetString(clipComponentsPropName(name), 0)
		depth, _ := out.GetString(clipDepthPropName(name), 0)
		par, _ := out.GetDouble(clipPARPropName(name), 0)
		prefs.Clips[name] = ClipPreferences{Components: comps, PixelDepth: depth, PixelAspectRatio: par}
	}
	prefs.OutputFrameRate, _ = out.GetDouble(ofxstatus.ImageEffectPropFrameRate, 0)
	prefs.OutputPixelAspectRatio, _ = out.GetDouble(ofxstatus.ImageEffectPropPixelAspectRatio, 0)
	prefs.OutputPreMultiplication, _ = out.GetString(ofxstatus.ImageEffectPropOutputPremultiplication, 0)

	continuous, _ := out.GetInt(ofxstatus.ImageClipPropContinuousSamples, 0)
	varying, _ := out.GetInt(ofxstatus.ImageEffectPropFrameVarying, 0)
	prefs.ContinuousSamples = continuous != 0
	prefs.FrameVarying = varying != 0

	i.mu.Lock()
	i.continuousSamples, i.frameVarying = prefs.ContinuousSamples, prefs.FrameVarying
	i.mu.Unlock()

	return prefs, st, nil
}

// GetTimeDomain dispatches getTimeDomain.
func (i *Instance) GetTimeDomain() (min, max float64, st ofxstatus.Status, err error) {
	out := newArgSet()
	defer out.Release()
	st, err = i.call(ofxstatus.ImageEffectActionGetTimeDomain, 0, out.Handle())
	if err != nil || !st.Succeeded() {
		return 0, 0, st, err
	}
	vs, err := out.GetDoubleN(ofxstatus.ImageEffectPropFrameRange, 2)
	if err != nil {
		return 0, 0, st, err
	}
	return vs[0], vs[1], st, nil
}

// instanceChanged dispatches the begin/instanceChanged/end sequence for a
// single clip or parameter name. The argument set carries the name, the
// type and the change reason (always "OfxChangePluginEdited"); no time or
// render scale is passed.
func (i *Instance) instanceChanged(name, changeType string) {
	i.mu.Lock()
	created := i.state == stateCreated || i.state == stateRendering
	i.mu.Unlock()
	if !created {
		return
	}

	in := newArgSet()
	defer in.Release()
	in.SetString(ofxstatus.PropName, 0, name, propset.FromHost)
	in.SetString(ofxstatus.PropType, 0, changeType, propset.FromHost)
	in.SetString("OfxPropChangeReason", 0, "OfxChangePluginEdited", propset.FromHost)

	i.call(ofxstatus.ActionBeginInstanceChanged, in.Handle(), 0)
	i.call(ofxstatus.ActionInstanceChanged, in.Handle(), 0)
	i.call(ofxstatus.ActionEndInstanceChanged, in.Handle(), 0)
}

func boolInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
