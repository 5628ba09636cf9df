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

package propset

import "unsafe"

func (s *Set) getValue(name string, typ Type, i int) (Value, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, err := s.getOrFabricate(name, typ, 0)
	if err != nil {
		return Value{}, err
	}
	if err := checkType(p, typ); err != nil {
		return Value{}, err
	}
	return p.get(i)
}

// GetInt reads a single int value at index i.
func (s *Set) GetInt(name string, i int) (int64, error) {
	v, err := s.getValue(name, TypeInt, i)
	return v.I, err
}

// SetInt writes a single int value at index i.
func (s *Set) SetInt(name string, i int, v int64, origin Origin) error {
	return s.setValue(name, TypeInt, i, IntValue(v), origin)
}

// GetDouble reads a single double value at index i.
func (s *Set) GetDouble(name string, i int) (float64, error) {
	v, err := s.getValue(name, TypeDouble, i)
	return v.F, err
}

// SetDouble writes a single double value at index i.
func (s *Set) SetDouble(name string, i int, v float64, origin Origin) error {
	return s.setValue(name, TypeDouble, i, DoubleValue(v), origin)
}

// GetString reads a single string value at index i.
func (s *Set) GetString(name string, i int) (string, error) {
	v, err := s.getValue(name, TypeString, i)
	return v.S, err
}

// SetString writes a single string value at index i.
func (s *Set) SetString(name string, i int, v string, origin Origin) error {
	return s.setValue(name, TypeString, i, StringValue(v), origin)
}

// GetPointer reads a single pointer value at index i.
func (s *Set) GetPointer(name string, i int) (unsafe.Pointer, error) {
	v, err := s.getValue(name, TypePointer, i)
	return v.P, err
}

// SetPointer writes a single pointer value at index i.
func (s *Set) SetPointer(name string, i int, v unsafe.Pointer, origin Origin) error {
	return s.setValue(name, TypePointer, i, PointerValue(v), origin)
}

// GetIntN reads n values starting at index 0 (the "bulk N-at-once" variant
// of spec §4.B).
func (s *Set) GetIntN(name string, n int) ([]int64, error) {
	out := make([]int64, n)
	for i := 0; i < n; i++ {
		v, err := s.GetInt(name, i)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// SetIntN writes len(vs) values starting at index 0.
func (s *Set) SetIntN(name string, vs []int64, origin Origin) error {
	for i, v := range vs {
		if err := s.SetInt(name, i, v, origin); err != nil {
			return err
		}
	}
	return nil
}

// GetDoubleN reads n values starting at index 0.
func (s *Set) GetDoubleN(name string, n int) ([]float64, error) {
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		v, err := s.GetDouble(name, i)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// SetDoubleN writes len(vs) values starting at index 0.
func (s *Set) SetDoubleN(name string, vs []float64, origin Origin) error {
	for i, v := range vs {
		if err := s.SetDouble(name, i, v, origin); err != nil {
			return err
		}
	}
	return nil
}

// GetStringN reads n values starting at index 0.
func (s *Set) GetStringN(name string, n int) ([]string, error) {
	out := make([]string, n)
	for i := 0; i < n; i++ {
		v, err := s.GetString(name, i)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// SetStringN writes len(vs) values starting at index 0.
func (s *Set) SetStringN(name string, vs []string, origin Origin) error {
	for i, v := range vs {
		if err := s.SetString(name, i, v, origin); err != nil {
			return err
		}
	}
	return nil
}

// RequireDimension enforces the exact-N rule spec §4.G calls out for
// multi-valued clip/image properties ("frame range is exactly 2; others
// are 1"): it reads no values, only the property's observable dimension,
// and errors with ErrWrongCount if that disagrees with n.
func (s *Set) RequireDimension(name string, n int) error {
	dim, err := s.Dimension(name)
	if err != nil {
		return err
	}
	if dim != n {
		return ErrWrongCount
	}
	return nil
}
