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

package plugincache

import (
	"github.com/openfx-host/ofxhost/binloader"
	"github.com/openfx-host/ofxhost/ofxabi"
	"github.com/openfx-host/ofxhost/xmlcodec"
)

// Plugin is one confirmed plug-in: the raw discovery record, the API
// handler's opaque descriptor, and the base property rows to persist.
type Plugin struct {
	Identifier   string
	MajorVersion int
	MinorVersion int
	API          string
	APIVersion   int
	Index        int

	Binary *binloader.Binary

	// Descriptor is the API handler's own representation (for the image
	// effect API, an *imageeffect.Descriptor). plugincache never inspects
	// it; it is opaque the same way xmlcodec.PluginEntry.APIContent is.
	Descriptor interface{}

	// BaseProperties is the plug-in's base property set serialized as
	// cache rows, kept so a cache write doesn't need to re-query a
	// descriptor that may not be loaded.
	BaseProperties []xmlcodec.PropertyEntry
	APIContent     []byte
}

// Handler is an API-specific confirmation strategy, registered against an
// (api-name, min-version, max-version) range (spec §4.D: "API handlers
// register themselves ... the cache dispatches each plug-in to the first
// matching handler"). The image-effect API handler (component E) is the
// only one this repository implements; Handler is the seam future API
// handlers (e.g. a hypothetical OfxGenericParametricPlugin) would plug
// into without plugincache changing.
type Handler interface {
	// APIName is the value of OfxPlugin.pluginApi this handler claims.
	APIName() string
	// SupportsVersion reports whether apiVersion is in this handler's
	// supported [min,max] range.
	SupportsVersion(apiVersion int) bool
	// Confirm runs load -> describe -> unload for one raw discovery
	// record and returns the handler's opaque descriptor plus the base
	// property rows to persist, or an error if describe failed (the
	// plug-in is then dropped from the cache entirely).
	Confirm(bin *binloader.Binary, raw ofxabi.RawPlugin, host *ofxabi.Host) (descriptor interface{}, props []xmlcodec.PropertyEntry, content []byte, err error)
	// Restore rebuilds an opaque descriptor purely from persisted cache
	// rows, without loading the binary (the common path: disk signature
	// unchanged since last run).
	Restore(entry xmlcodec.PluginEntry) (descriptor interface{}, err error)
}
