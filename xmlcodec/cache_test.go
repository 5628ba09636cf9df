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

package xmlcodec_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openfx-host/ofxhost/propset"
	"github.com/openfx-host/ofxhost/xmlcodec"
)

func sampleCache() xmlcodec.Cache {
	return xmlcodec.Cache{
		Version: "1",
		Bundles: []xmlcodec.Bundle{{
			Binaries: []xmlcodec.BinaryEntry{{
				Path:       "/plugins/Blur.ofx.bundle/Contents/Linux-x86-64/Blur.ofx",
				BundlePath: "/plugins/Blur.ofx.bundle",
				Mtime:      1000,
				Size:       2048,
				Plugins: []xmlcodec.PluginEntry{{
					Name:         "net.example.Blur",
					Index:        0,
					API:          "OfxImageEffectPluginAPI",
					APIVersion:   1,
					MajorVersion: 1,
					MinorVersion: 0,
					APIProperties: []xmlcodec.PropertyEntry{
						{Name: "OfxPropLabel", Type: "string", Dimension: 1,
							Values: []xmlcodec.ValueEntry{{Index: 0, Value: "Blur"}}},
						{Name: "OfxImageEffectPropSupportedPixelDepths", Type: "string", Dimension: 2,
							Values: []xmlcodec.ValueEntry{
								{Index: 0, Value: "OfxBitDepthFloat"},
								{Index: 1, Value: "OfxBitDepthByte"},
							}},
					},
				}},
			}},
		}},
	}
}

func TestEncodeDecodeRoundTrips(t *testing.T) {
	c := sampleCache()
	var buf bytes.Buffer
	require.NoError(t, xmlcodec.WriteCache(&buf, c))

	got, ok := xmlcodec.ReadCache(&buf)
	require.True(t, ok)
	require.NotNil(t, got)

	assert.Equal(t, c.Version, got.Version)
	require.Len(t, got.Bundles, 1)
	require.Len(t, got.Bundles[0].Binaries, 1)
	bin := got.Bundles[0].Binaries[0]
	assert.Equal(t, c.Bundles[0].Binaries[0].Path, bin.Path)
	assert.Equal(t, c.Bundles[0].Binaries[0].BundlePath, bin.BundlePath)
	assert.EqualValues(t, 1000, bin.Mtime)
	assert.EqualValues(t, 2048, bin.Size)
	require.Len(t, bin.Plugins, 1)
	p := bin.Plugins[0]
	assert.Equal(t, "net.example.Blur", p.Name)
	assert.Equal(t, "OfxImageEffectPluginAPI", p.API)
	require.Len(t, p.APIProperties, 2)
	assert.Equal(t, "OfxPropLabel", p.APIProperties[0].Name)
	assert.Equal(t, "Blur", p.APIProperties[0].Values[0].Value)
}

func TestDecodeMalformedCacheIsIgnored(t *testing.T) {
	_, ok := xmlcodec.ReadCache(strings.NewReader(`<cache version="1"><bundle><binary path="x"`))
	assert.False(t, ok)
}

func TestDecodeWrongRootIsIgnored(t *testing.T) {
	_, ok := xmlcodec.ReadCache(strings.NewReader(`<notacache/>`))
	assert.False(t, ok)
}

func TestDecodeUnknownPluginChildIsCapturedNotFatal(t *testing.T) {
	doc := `<cache version="2">
	  <bundle>
	    <binary path="/p/Blur.ofx" bundle_path="/p" mtime="1" size="2">
	      <plugin name="n" index="0" api="OfxImageEffectPluginAPI" api_version="1" major_version="1" minor_version="0">
	        <apiproperties></apiproperties>
	        <futureextension foo="bar"><nested/></futureextension>
	      </plugin>
	    </binary>
	  </bundle>
	</cache>`
	c, ok := xmlcodec.ReadCache(strings.NewReader(doc))
	require.True(t, ok)
	require.Len(t, c.Bundles[0].Binaries[0].Plugins, 1)
	assert.NotEmpty(t, c.Bundles[0].Binaries[0].Plugins[0].APIContent)
}

func TestExportSetSkipsPointerProperties(t *testing.T) {
	s := propset.New(false)
	s.Define("OfxPropLabel", propset.TypeString, 1, false, propset.StringValue("Blur"))
	s.Define("OfxPropInstanceData", propset.TypePointer, 1, false, propset.PointerValue(nil))

	entries := xmlcodec.ExportSet(s)
	require.Len(t, entries, 1)
	assert.Equal(t, "OfxPropLabel", entries[0].Name)
}

func TestImportSetRestoresValues(t *testing.T) {
	entries := []xmlcodec.PropertyEntry{
		{Name: "OfxPropVersion", Type: "int", Dimension: 2,
			Values: []xmlcodec.ValueEntry{{Index: 0, Value: "1"}, {Index: 1, Value: "2"}}},
	}
	s := propset.New(false)
	xmlcodec.ImportSet(s, entries)

	got, err := s.GetIntN("OfxPropVersion", 2)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, got)
}

func TestExportImportRoundTrips(t *testing.T) {
	s := propset.New(false)
	s.Define("OfxPropLabel", propset.TypeString, 1, false, propset.StringValue("Blur"))
	s.Define("OfxImageEffectPropSupportedPixelDepths", propset.TypeString, 2, false,
		propset.StringValue("OfxBitDepthFloat"), propset.StringValue("OfxBitDepthByte"))

	entries := xmlcodec.ExportSet(s)
	s2 := propset.New(false)
	xmlcodec.ImportSet(s2, entries)

	v, err := s2.GetString("OfxPropLabel", 0)
	require.NoError(t, err)
	assert.Equal(t, "Blur", v)
}
