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

package clip

import "github.com/openfx-host/ofxhost/propset"

// Virtual is the embedder-supplied contract behind one clip instance's
// polymorphic properties (spec §3: "Clip instance. Polymorphic virtual
// fields..."). Every method's return is surfaced to the plug-in through a
// property-system get hook (see Instance), so the embedder is always asked
// fresh rather than the host caching a copy that can go stale.
type Virtual interface {
	PixelDepth() string
	Components() string
	UnmappedPixelDepth() string
	UnmappedComponents() string
	PreMultiplication() string
	PixelAspectRatio() float64
	FrameRate() float64
	FrameRange() (min, max float64)
	FieldOrder() string
	Connected() bool
	UnmappedFrameRate() float64
	UnmappedFrameRange() (min, max float64)
	ContinuousSamples() bool
}

// valueHook adapts a niladic getter returning the property's full current
// value vector into a propset.GetHook. Dimension is always len(get()); a
// clip virtual never reports a variable dimension other than the fixed one
// declared on the property (spec §4.G: "Reads of multi-valued properties
// enforce correct N").
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

// Reset is a no-op: a virtual clip property has no independent default to
// restore to, its value is whatever the embedder currently reports.
func (h valueHook) Reset() error { return nil }
