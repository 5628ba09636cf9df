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
	"fmt"

	"github.com/openfx-host/ofxhost/binloader"
	"github.com/openfx-host/ofxhost/internal/xerr"
	"github.com/openfx-host/ofxhost/ofxabi"
	"github.com/openfx-host/ofxhost/ofxstatus"
	"github.com/openfx-host/ofxhost/propset"
	"github.com/openfx-host/ofxhost/xmlcodec"
)

// Handler is the plugincache.Handler for the Image-Effect API (component
// E). It is the only API handler this repository ships; plugincache (D)
// is unaware of its existence beyond the plugincache.Handler interface
// (spec §4.D/§4.E).
type Handler struct {
	minVersion, maxVersion int
}

// NewHandler builds a Handler accepting OfxImageEffectPluginAPI versions
// in [minVersion, maxVersion].
func NewHandler(minVersion, maxVersion int) *Handler {
	return &Handler{minVersion: minVersion, maxVersion: maxVersion}
}

// APIName implements plugincache.Handler.
func (h *Handler) APIName() string { return ofxstatus.ImageEffectPluginAPI }

// SupportsVersion implements plugincache.Handler.
func (h *Handler) SupportsVersion(apiVersion int) bool {
	return apiVersion >= h.minVersion && apiVersion <= h.maxVersion
}

// Confirm runs load -> describe -> unload for one raw discovery record
// (spec §4.E: "For each plug-in: create an Image-Effect descriptor, set
// the host handle on the plug-in struct, dispatch action load, then
// describe on the base descriptor, then unload").
func (h *Handler) Confirm(bin *binloader.Binary, raw ofxabi.RawPlugin, host *ofxabi.Host) (descriptor interface{}, props []xmlcodec.PropertyEntry, content []byte, err error) {
	defer xerr.Recover(&err)

	desc := NewDescriptor()
	handle := ofxabi.Mint(ofxabi.KindImageEffect, desc)
	defer ofxabi.Release(handle)

	raw.SetHost(host)

	if st := raw.MainEntry(ofxstatus.ActionLoad, 0, 0, 0); !st.Succeeded() {
		return nil, nil, nil, fmt.Errorf("imageeffect: load failed: %s", st)
	}

	st := raw.MainEntry(ofxstatus.ActionDescribe, handle, 0, 0)
	raw.MainEntry(ofxstatus.ActionUnload, 0, 0, 0)
	if !st.Succeeded() {
		return nil, nil, nil, fmt.Errorf("imageeffect: describe failed: %s", st)
	}

	return desc, xmlcodec.ExportSet(desc.Properties), marshalContent(desc), nil
}

// Restore rebuilds an effect descriptor purely from persisted cache rows,
// without loading the binary (spec §4.E, the common no-op-reconcile path).
func (h *Handler) Restore(entry xmlcodec.PluginEntry) (descriptor interface{}, err error) {
	desc := NewDescriptor()
	xmlcodec.ImportSet(desc.Properties, entry.APIProperties)
	unmarshalContent(entry.APIContent, desc)
	return desc, nil
}

// GetContext returns the cached per-context descriptor for name if
// describeInContext has already run, otherwise it loads bin, dispatches
// describeInContext on a fresh context descriptor derived from base, and
// caches the result on success (spec §4.E: "getContext ... ensures
// load+describe have run, creates a fresh descriptor derived from the
// base, and dispatches describeInContext with an argument property set
// carrying context=<name>. Result ok or default -> cache and return; else
// -> return absent").
func (h *Handler) GetContext(bin *binloader.Binary, index int, base *Descriptor, host *ofxabi.Host, contextName string) (ctx *Descriptor, ok bool, err error) {
	if c, cached := base.Context(contextName); cached {
		return c, true, nil
	}

	defer xerr.Recover(&err)

	if err := bin.Ref(); err != nil {
		return nil, false, err
	}
	defer bin.Unref()

	entry := bin.Discovery()
	raw := entry.Plugin(index)
	raw.SetHost(host)

	if st := raw.MainEntry(ofxstatus.ActionLoad, 0, 0, 0); !st.Succeeded() {
		return nil, false, fmt.Errorf("imageeffect: load failed: %s", st)
	}
	defer raw.MainEntry(ofxstatus.ActionUnload, 0, 0, 0)

	baseHandle := ofxabi.Mint(ofxabi.KindImageEffect, base)
	defer ofxabi.Release(baseHandle)
	if st := raw.MainEntry(ofxstatus.ActionDescribe, baseHandle, 0, 0); !st.Succeeded() {
		return nil, false, fmt.Errorf("imageeffect: describe failed: %s", st)
	}

	ctxDesc := base.deriveContext(contextName)
	handle := ofxabi.Mint(ofxabi.KindImageEffect, ctxDesc)
	defer ofxabi.Release(handle)

	in := propset.New(true)
	defer in.Release()
	in.SetString(ofxstatus.ImageEffectPropContext, 0, contextName, propset.FromHost)

	st := raw.MainEntry(ofxstatus.ImageEffectActionDescribeInContext, handle, in.Handle(), 0)
	if !st.Succeeded() {
		return nil, false, nil
	}

	base.cacheContext(contextName, ctxDesc)
	return ctxDesc, true, nil
}
