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

// Package xmlcodec is component C: it reads and writes the plug-in cache's
// on-disk XML representation (spec.md §4.C/§6). The element grammar is
// fixed: <cache version=..> -> <bundle> -> <binary .../> ->
// <plugin ..>{<apiproperties>...</apiproperties>, per-API content}</plugin>.
//
// Parsing is incremental, driven by encoding/xml's token stream
// (xml.StartElement/xml.CharData/xml.EndElement) rather than a single
// xml.Unmarshal reflection pass, matching spec §4.C's "incremental parser
// (element-begin/char/end callbacks)" requirement directly: no third-party
// XML library in the retrieval pack offers a token-level callback API
// encoding/xml doesn't already provide, and
// _examples/google-gapid/core/os/android/manifest/manifest.go shows the
// teacher itself reaching for encoding/xml (there via struct tags, since
// Android manifests are static shapes; our grammar nests a dynamic
// property list, so this package drives xml.Decoder.Token directly).
package xmlcodec

// Cache is the decoded root of a plug-in cache file.
type Cache struct {
	Version string
	Bundles []Bundle
}

// Bundle is one <bundle> element: every binary found under one bundle
// directory (normally exactly one, since each .ofx.bundle resolves to a
// single per-arch binary, but the grammar allows more for forward
// compatibility with multi-binary bundles).
type Bundle struct {
	Binaries []BinaryEntry
}

// BinaryEntry is one <binary> element (spec §4.C/§12: bundle_path is the
// bundle directory, path is the resolved per-arch binary beneath
// Contents/<arch>).
type BinaryEntry struct {
	Path       string
	BundlePath string
	Mtime      int64
	Size       int64
	Plugins    []PluginEntry
}

// PluginEntry is one <plugin> element.
type PluginEntry struct {
	Name         string
	Index        int
	API          string
	APIVersion   int
	MajorVersion int
	MinorVersion int

	// APIProperties is the plugin's base property set, as the raw
	// name/type/dimension/value rows under <apiproperties> (spec §4.C).
	// Pointer properties are never included (spec §4.C).
	APIProperties []PropertyEntry

	// APIContent is the opaque per-API-handler payload nested after
	// </apiproperties> inside <plugin>, owned and decoded by whichever
	// API handler (component E) claims this plugin's API name. xmlcodec
	// never interprets it: component C must not depend on D or E (see
	// spec §2's dependency table: D and E depend on C, not the reverse).
	APIContent []byte
}

// PropertyEntry is one <property name=.. type=.. dimension=..> element,
// holding its <value index=.. value=../> children.
type PropertyEntry struct {
	Name      string
	Type      string
	Dimension int
	Values    []ValueEntry
}

// ValueEntry is one <value index=.. value=../> element.
type ValueEntry struct {
	Index int
	Value string
}
