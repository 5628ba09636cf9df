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

// GetHook is installed on a property to serve every read, the dimension
// query, and Reset from a host-implemented virtual rather than the stored
// default/current vectors (spec §4.B/§4.G: clip and parameter virtuals are
// surfaced this way so they can never drift from what the property system
// reports). At most one GetHook may be installed per property.
type GetHook interface {
	// Get returns the value at index.
	Get(index int) (Value, error)
	// Dimension returns the hook's current reported dimension.
	Dimension() (int, error)
	// Reset restores the hook's backing value to its default, if it has
	// one; hooks over truly virtual (computed) values may treat this as a
	// no-op.
	Reset() error
}

// SetHook observes every write to the property it is installed on. It
// cannot veto the write (spec §4.B: "Set hooks observe; they cannot veto").
// index is the written index for a single-value write, or the written
// count for a bulk write.
type SetHook func(name string, value Value, index int)

// NotifyHook fires once per Set call (not once per index touched by a bulk
// Set), regardless of how many values were written (spec §3).
type NotifyHook func(name string)
