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
	"strconv"

	"github.com/openfx-host/ofxhost/propset"
)

// ExportSet projects s into the rows <apiproperties> serializes. Pointer
// properties are skipped: a pointer is only ever meaningful within the
// process that minted it, so spec §4.C excludes them from the on-disk
// representation entirely.
func ExportSet(s *propset.Set) []PropertyEntry {
	names := s.Names()
	out := make([]PropertyEntry, 0, len(names))
	for _, name := range names {
		p, err := s.Property(name)
		if err != nil {
			continue
		}
		if p.Type() == propset.TypePointer {
			continue
		}
		dim, err := s.Dimension(name)
		if err != nil {
			continue
		}
		entry := PropertyEntry{Name: name, Type: p.Type().String(), Dimension: dim}
		for i := 0; i < dim; i++ {
			v, err := readAsString(s, name, p.Type(), i)
			if err != nil {
				continue
			}
			entry.Values = append(entry.Values, ValueEntry{Index: i, Value: v})
		}
		out = append(out, entry)
	}
	return out
}

func readAsString(s *propset.Set, name string, typ propset.Type, i int) (string, error) {
	switch typ {
	case propset.TypeInt:
		v, err := s.GetInt(name, i)
		if err != nil {
			return "", err
		}
		return strconv.FormatInt(v, 10), nil
	case propset.TypeDouble:
		v, err := s.GetDouble(name, i)
		if err != nil {
			return "", err
		}
		return strconv.FormatFloat(v, 'g', -1, 64), nil
	case propset.TypeString:
		return s.GetString(name, i)
	default:
		return "", propset.ErrBadType
	}
}

// ImportSet defines every row of entries on s, restoring the persisted
// values as the property's defaults. Dimension is taken as given
// (variable-length properties are defined with their persisted width as a
// fixed default vector, so a later write past that width fails with
// propset.ErrBadIndex). Properties whose
// type string does not match a known propset.Type are skipped rather than
// failing the whole load, matching the "ignore what we don't understand"
// posture the rest of this package takes toward forward-compatible input.
func ImportSet(s *propset.Set, entries []PropertyEntry) {
	for _, e := range entries {
		typ, ok := parseType(e.Type)
		if !ok {
			continue
		}
		values := make([]propset.Value, e.Dimension)
		for _, v := range e.Values {
			if v.Index < 0 || v.Index >= e.Dimension {
				continue
			}
			values[v.Index] = parseValue(typ, v.Value)
		}
		s.Define(e.Name, typ, e.Dimension, false, values...)
	}
}

func parseType(s string) (propset.Type, bool) {
	switch s {
	case "int":
		return propset.TypeInt, true
	case "double":
		return propset.TypeDouble, true
	case "string":
		return propset.TypeString, true
	default:
		return 0, false
	}
}

func parseValue(typ propset.Type, s string) propset.Value {
	switch typ {
	case propset.TypeInt:
		n, _ := strconv.ParseInt(s, 10, 64)
		return propset.IntValue(n)
	case propset.TypeDouble:
		f, _ := strconv.ParseFloat(s, 64)
		return propset.DoubleValue(f)
	default:
		return propset.StringValue(s)
	}
}
