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
	"encoding/xml"

	"github.com/openfx-host/ofxhost/param"
	"github.com/openfx-host/ofxhost/xmlcodec"
)

// wireEffect is the per-API-handler payload imageeffect nests into
// xmlcodec's <plugin> element as opaque bytes (xmlcodec.PluginEntry.
// APIContent), carrying the pieces of an effect descriptor xmlcodec itself
// has no vocabulary for: the clip and parameter descriptor sets (spec
// §4.C: "per-API-handler payload capture"). Unlike the cache's own
// grammar, this blob is never read by anything but this package, so a
// plain reflection-driven encoding/xml Marshal/Unmarshal pass is used
// rather than a token-streamed decoder.
type wireEffect struct {
	XMLName xml.Name    `xml:"imageeffect"`
	Clips   []wireClip  `xml:"clip"`
	Params  []wireParam `xml:"param"`
}

type wireClip struct {
	Name       string                   `xml:"name,attr"`
	Properties []xmlcodec.PropertyEntry `xml:"property"`
}

type wireParam struct {
	Name       string                   `xml:"name,attr"`
	Kind       int                      `xml:"kind,attr"`
	Properties []xmlcodec.PropertyEntry `xml:"property"`
}

// marshalContent serializes d's clip and parameter descriptor sets.
func marshalContent(d *Descriptor) []byte {
	var we wireEffect
	for _, name := range d.Clips.Names() {
		c, err := d.Clips.Get(name)
		if err != nil {
			continue
		}
		we.Clips = append(we.Clips, wireClip{Name: name, Properties: xmlcodec.ExportSet(c.Properties)})
	}
	for _, name := range d.Params.Names() {
		pd, err := d.Params.Get(name)
		if err != nil {
			continue
		}
		we.Params = append(we.Params, wireParam{
			Name:       name,
			Kind:       int(pd.Kind()),
			Properties: xmlcodec.ExportSet(pd.Properties),
		})
	}
	b, err := xml.Marshal(we)
	if err != nil {
		return nil
	}
	return b
}

// unmarshalContent restores d's clip and parameter descriptor sets from a
// blob marshalContent produced. A blob that fails to parse leaves d with
// empty clip/param sets rather than erroring the whole restore (matching
// xmlcodec's own "malformed input is silently tolerated" posture).
func unmarshalContent(content []byte, d *Descriptor) {
	if len(content) == 0 {
		return
	}
	var we wireEffect
	if err := xml.Unmarshal(content, &we); err != nil {
		return
	}
	for _, wc := range we.Clips {
		cd := d.Clips.Define(wc.Name)
		xmlcodec.ImportSet(cd.Properties, wc.Properties)
	}
	for _, wp := range we.Params {
		pd := d.Params.Define(wp.Name, param.Kind(wp.Kind))
		xmlcodec.ImportSet(pd.Properties, wp.Properties)
	}
}
