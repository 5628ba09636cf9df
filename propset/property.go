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

// Property holds one named, typed, multi-valued entry (spec §3). Readers
// go through Set, never directly: Set owns the reentry guard hooks rely on.
type Property struct {
	name     string
	typ      Type
	dim      int // 0 means variable-length
	readOnly bool

	def []Value
	cur []Value

	getHook    GetHook
	setHooks   []SetHook
	notifyHook NotifyHook

	inHooks bool // reentry guard (spec §4.B/§9)
}

func newProperty(name string, typ Type, dim int, readOnly bool, defaults []Value) *Property {
	def := make([]Value, len(defaults))
	copy(def, defaults)
	return &Property{name: name, typ: typ, dim: dim, readOnly: readOnly, def: def}
}

// Name returns the property's name.
func (p *Property) Name() string { return p.name }

// Type returns the property's semantic type.
func (p *Property) Type() Type { return p.typ }

// FixedDimension returns the declared fixed dimension, or 0 if variable.
func (p *Property) FixedDimension() int { return p.dim }

// ReadOnly reports whether plugin-originated writes are rejected.
func (p *Property) ReadOnly() bool { return p.readOnly }

// dimension computes the observable dimension (spec §3: "Observable
// dimension equals current-vector length (or fixed d when d>0)").
func (p *Property) dimension() (int, error) {
	if p.getHook != nil {
		return p.getHook.Dimension()
	}
	if p.dim > 0 {
		return p.dim, nil
	}
	return len(p.cur), nil
}

// get reads index i, honoring the get-hook-or-default-then-current rule
// (spec §3: "a read returns current[i] if present, else default[i]").
func (p *Property) get(i int) (Value, error) {
	if p.getHook != nil {
		return p.getHook.Get(i)
	}
	if p.dim > 0 && i >= p.dim {
		return Value{}, ErrBadIndex
	}
	if i < len(p.cur) {
		return p.cur[i], nil
	}
	if i < len(p.def) {
		return p.def[i], nil
	}
	return Value{}, ErrBadIndex
}

// set writes index i, extending cur on demand for variable-dimension
// properties (spec §3: "Writing index i extends the current vector to
// length >= i+1"). The get-hook path is handled by the caller (Set.set),
// since a get-hooked property still notifies set hooks on write.
func (p *Property) set(i int, v Value) error {
	if p.dim > 0 && i >= p.dim {
		return ErrBadIndex
	}
	if i >= len(p.cur) {
		grown := make([]Value, i+1)
		copy(grown, p.cur)
		p.cur = grown
	}
	p.cur[i] = v
	return nil
}

// reset restores index-by-index current values to the default (spec
// TP 1). A get-hooked property forwards to the hook since only it knows
// the true default.
func (p *Property) reset() error {
	if p.getHook != nil {
		return p.getHook.Reset()
	}
	p.cur = nil
	return nil
}

// clone copies name/type/dim/default/current, dropping read-only and every
// hook, per SPEC_FULL.md §12 ("cloning copies vectors; hooks are not
// copied — the clone starts hookless").
func (p *Property) clone() *Property {
	def := make([]Value, len(p.def))
	copy(def, p.def)
	cur := make([]Value, len(p.cur))
	copy(cur, p.cur)
	return &Property{name: p.name, typ: p.typ, dim: p.dim, readOnly: false, def: def, cur: cur}
}
