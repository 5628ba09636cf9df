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

package xmlcodec

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
)

// WriteCache serializes cache to w following the grammar in spec §4.C.
// Escaping is encoding/xml's token Encoder's, with no bespoke escaper:
// &, < and > become &amp;, &lt; and &gt;; double and single quotes become
// the numeric references &#34; and &#39;; tab, newline and carriage return
// become numeric references. Other C0 control points are replaced with
// U+FFFD rather than written as numeric references, and C1 control points
// are written unescaped.
func WriteCache(w io.Writer, cache Cache) error {
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")

	start := xml.StartElement{Name: xml.Name{Local: "cache"}, Attr: []xml.Attr{
		{Name: xml.Name{Local: "version"}, Value: cache.Version},
	}}
	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	for _, b := range cache.Bundles {
		if err := writeBundle(enc, b); err != nil {
			return err
		}
	}
	if err := enc.EncodeToken(start.End()); err != nil {
		return err
	}
	return enc.Flush()
}

func writeBundle(enc *xml.Encoder, b Bundle) error {
	start := xml.StartElement{Name: xml.Name{Local: "bundle"}}
	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	for _, bin := range b.Binaries {
		if err := writeBinary(enc, bin); err != nil {
			return err
		}
	}
	return enc.EncodeToken(start.End())
}

func writeBinary(enc *xml.Encoder, b BinaryEntry) error {
	start := xml.StartElement{Name: xml.Name{Local: "binary"}, Attr: []xml.Attr{
		{Name: xml.Name{Local: "path"}, Value: b.Path},
		{Name: xml.Name{Local: "bundle_path"}, Value: b.BundlePath},
		{Name: xml.Name{Local: "mtime"}, Value: strconv.FormatInt(b.Mtime, 10)},
		{Name: xml.Name{Local: "size"}, Value: strconv.FormatInt(b.Size, 10)},
	}}
	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	for _, p := range b.Plugins {
		if err := writePlugin(enc, p); err != nil {
			return err
		}
	}
	return enc.EncodeToken(start.End())
}

func writePlugin(enc *xml.Encoder, p PluginEntry) error {
	start := xml.StartElement{Name: xml.Name{Local: "plugin"}, Attr: []xml.Attr{
		{Name: xml.Name{Local: "name"}, Value: p.Name},
		{Name: xml.Name{Local: "index"}, Value: strconv.Itoa(p.Index)},
		{Name: xml.Name{Local: "api"}, Value: p.API},
		{Name: xml.Name{Local: "api_version"}, Value: strconv.Itoa(p.APIVersion)},
		{Name: xml.Name{Local: "major_version"}, Value: strconv.Itoa(p.MajorVersion)},
		{Name: xml.Name{Local: "minor_version"}, Value: strconv.Itoa(p.MinorVersion)},
	}}
	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	if err := writeAPIProperties(enc, p.APIProperties); err != nil {
		return err
	}
	if len(p.APIContent) > 0 {
		if err := enc.Flush(); err != nil {
			return err
		}
		if _, err := enc.Writer().Write(p.APIContent); err != nil {
			return fmt.Errorf("write api content for %s: %w", p.Name, err)
		}
	}
	return enc.EncodeToken(start.End())
}

func writeAPIProperties(enc *xml.Encoder, props []PropertyEntry) error {
	start := xml.StartElement{Name: xml.Name{Local: "apiproperties"}}
	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	for _, p := range props {
		if err := writeProperty(enc, p); err != nil {
			return err
		}
	}
	return enc.EncodeToken(start.End())
}

func writeProperty(enc *xml.Encoder, p PropertyEntry) error {
	start := xml.StartElement{Name: xml.Name{Local: "property"}, Attr: []xml.Attr{
		{Name: xml.Name{Local: "name"}, Value: p.Name},
		{Name: xml.Name{Local: "type"}, Value: p.Type},
		{Name: xml.Name{Local: "dimension"}, Value: strconv.Itoa(p.Dimension)},
	}}
	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	for _, v := range p.Values {
		vstart := xml.StartElement{Name: xml.Name{Local: "value"}, Attr: []xml.Attr{
			{Name: xml.Name{Local: "index"}, Value: strconv.Itoa(v.Index)},
			{Name: xml.Name{Local: "value"}, Value: v.Value},
		}}
		if err := enc.EncodeToken(vstart); err != nil {
			return err
		}
		if err := enc.EncodeToken(vstart.End()); err != nil {
			return err
		}
	}
	return enc.EncodeToken(start.End())
}
