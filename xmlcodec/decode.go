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
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"strconv"
)

var errMalformed = errors.New("xmlcodec: malformed cache")

// ReadCache parses a cache file off r. A malformed document (bad grammar,
// an unparsable integer attribute, truncated input) is never reported as
// a hard error to the caller: per spec §4.C/§6 a malformed cache is wholly
// ignored, so ok is false and the caller falls back to a full rescan.
func ReadCache(r io.Reader) (cache *Cache, ok bool) {
	dec := xml.NewDecoder(r)
	c, err := decodeCacheDoc(dec)
	if err != nil {
		return nil, false
	}
	return c, true
}

func decodeCacheDoc(dec *xml.Decoder) (*Cache, error) {
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return nil, errMalformed
		}
		if err != nil {
			return nil, err
		}
		if start, ok := tok.(xml.StartElement); ok {
			if start.Name.Local != "cache" {
				return nil, errMalformed
			}
			return decodeCache(dec, start)
		}
	}
}

func attrOf(start xml.StartElement, name string) (string, bool) {
	for _, a := range start.Attr {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

func intAttr(start xml.StartElement, name string) (int, error) {
	v, ok := attrOf(start, name)
	if !ok {
		return 0, errMalformed
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, errMalformed
	}
	return n, nil
}

func int64Attr(start xml.StartElement, name string) (int64, error) {
	v, ok := attrOf(start, name)
	if !ok {
		return 0, errMalformed
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, errMalformed
	}
	return n, nil
}

func decodeCache(dec *xml.Decoder, start xml.StartElement) (*Cache, error) {
	version, _ := attrOf(start, "version")
	c := &Cache{Version: version}
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local != "bundle" {
				if err := skip(dec, t); err != nil {
					return nil, err
				}
				continue
			}
			b, err := decodeBundle(dec)
			if err != nil {
				return nil, err
			}
			c.Bundles = append(c.Bundles, *b)
		case xml.EndElement:
			if t.Name.Local == "cache" {
				return c, nil
			}
		}
	}
}

func decodeBundle(dec *xml.Decoder) (*Bundle, error) {
	b := &Bundle{}
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local != "binary" {
				if err := skip(dec, t); err != nil {
					return nil, err
				}
				continue
			}
			bin, err := decodeBinary(dec, t)
			if err != nil {
				return nil, err
			}
			b.Binaries = append(b.Binaries, *bin)
		case xml.EndElement:
			if t.Name.Local == "bundle" {
				return b, nil
			}
		}
	}
}

func decodeBinary(dec *xml.Decoder, start xml.StartElement) (*BinaryEntry, error) {
	path, ok := attrOf(start, "path")
	if !ok {
		return nil, errMalformed
	}
	bundlePath, _ := attrOf(start, "bundle_path")
	mtime, err := int64Attr(start, "mtime")
	if err != nil {
		return nil, err
	}
	size, err := int64Attr(start, "size")
	if err != nil {
		return nil, err
	}
	b := &BinaryEntry{Path: path, BundlePath: bundlePath, Mtime: mtime, Size: size}
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local != "plugin" {
				if err := skip(dec, t); err != nil {
					return nil, err
				}
				continue
			}
			p, err := decodePlugin(dec, t)
			if err != nil {
				return nil, err
			}
			b.Plugins = append(b.Plugins, *p)
		case xml.EndElement:
			if t.Name.Local == "binary" {
				return b, nil
			}
		}
	}
}

func decodePlugin(dec *xml.Decoder, start xml.StartElement) (*PluginEntry, error) {
	name, ok := attrOf(start, "name")
	if !ok {
		return nil, errMalformed
	}
	index, err := intAttr(start, "index")
	if err != nil {
		return nil, err
	}
	api, ok := attrOf(start, "api")
	if !ok {
		return nil, errMalformed
	}
	apiVersion, err := intAttr(start, "api_version")
	if err != nil {
		return nil, err
	}
	major, err := intAttr(start, "major_version")
	if err != nil {
		return nil, err
	}
	minor, err := intAttr(start, "minor_version")
	if err != nil {
		return nil, err
	}
	p := &PluginEntry{Name: name, Index: index, API: api, APIVersion: apiVersion, MajorVersion: major, MinorVersion: minor}

	var content bytes.Buffer
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "apiproperties" {
				props, err := decodeAPIProperties(dec)
				if err != nil {
					return nil, err
				}
				p.APIProperties = props
				continue
			}
			// Everything else inside <plugin> is opaque, per-API-handler
			// content (spec §2's dependency direction: C must not parse
			// it). Re-encode it token by token so the handler that owns
			// this API name can decode it later.
			if err := captureRaw(dec, t, &content); err != nil {
				return nil, err
			}
		case xml.EndElement:
			if t.Name.Local == "plugin" {
				p.APIContent = content.Bytes()
				return p, nil
			}
		}
	}
}

func decodeAPIProperties(dec *xml.Decoder) ([]PropertyEntry, error) {
	var props []PropertyEntry
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local != "property" {
				if err := skip(dec, t); err != nil {
					return nil, err
				}
				continue
			}
			p, err := decodeProperty(dec, t)
			if err != nil {
				return nil, err
			}
			props = append(props, *p)
		case xml.EndElement:
			if t.Name.Local == "apiproperties" {
				return props, nil
			}
		}
	}
}

func decodeProperty(dec *xml.Decoder, start xml.StartElement) (*PropertyEntry, error) {
	name, ok := attrOf(start, "name")
	if !ok {
		return nil, errMalformed
	}
	typ, ok := attrOf(start, "type")
	if !ok {
		return nil, errMalformed
	}
	dim, err := intAttr(start, "dimension")
	if err != nil {
		return nil, err
	}
	p := &PropertyEntry{Name: name, Type: typ, Dimension: dim}
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local != "value" {
				if err := skip(dec, t); err != nil {
					return nil, err
				}
				continue
			}
			idx, err := intAttr(t, "index")
			if err != nil {
				return nil, err
			}
			val, _ := attrOf(t, "value")
			p.Values = append(p.Values, ValueEntry{Index: idx, Value: val})
			if err := skip(dec, t); err != nil {
				return nil, err
			}
		case xml.EndElement:
			if t.Name.Local == "property" {
				return p, nil
			}
		}
	}
}

// skip consumes tokens up to and including the matching end element for an
// already-read start element, discarding them. Used for unrecognized
// elements so the grammar tolerates forward-compatible additions rather
// than treating them as malformed.
func skip(dec *xml.Decoder, start xml.StartElement) error {
	depth := 1
	for depth > 0 {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		switch tok.(type) {
		case xml.StartElement:
			depth++
		case xml.EndElement:
			depth--
		}
	}
	return nil
}

// captureRaw re-encodes an already-read start element and everything up to
// its matching end element into buf, token by token. The result is
// equivalent XML, not a byte copy of the input: an empty element such as
// <nested/> comes back as <nested></nested>.
func captureRaw(dec *xml.Decoder, start xml.StartElement, buf *bytes.Buffer) error {
	enc := xml.NewEncoder(buf)
	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	depth := 1
	for depth > 0 {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		if err := enc.EncodeToken(tok); err != nil {
			return err
		}
		switch tok.(type) {
		case xml.StartElement:
			depth++
		case xml.EndElement:
			depth--
		}
	}
	return enc.Flush()
}
