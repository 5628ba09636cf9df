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

package param

import (
	"sort"

	"github.com/openfx-host/ofxhost/internal/xerr"
)

// ErrNoSuchKey is returned by KeyTime/DeleteKey when the index/time given
// does not name an existing keyframe.
const ErrNoSuchKey = xerr.Const("param: no such keyframe")

// keyframes is a sorted, deduplicated set of animation key times
// (SPEC_FULL.md §12: NumKeys/KeyTime/KeyIndex/DeleteKey/DeleteAllKeys
// backed by a sorted slice).
type keyframes struct {
	times []float64
}

func (k *keyframes) insert(t float64) {
	i := sort.SearchFloat64s(k.times, t)
	if i < len(k.times) && k.times[i] == t {
		return
	}
	k.times = append(k.times, 0)
	copy(k.times[i+1:], k.times[i:])
	k.times[i] = t
}

func (k *keyframes) numKeys() int { return len(k.times) }

func (k *keyframes) keyTime(n int) (float64, error) {
	if n < 0 || n >= len(k.times) {
		return 0, ErrNoSuchKey
	}
	return k.times[n], nil
}

// keyIndex returns the index of the key at time t (direction == 0), the
// nearest key before t (direction < 0), or the nearest key after t
// (direction > 0). Matches the OFX param suite's GetKeyIndex semantics.
func (k *keyframes) keyIndex(t float64, direction int) (int, error) {
	i := sort.SearchFloat64s(k.times, t)
	switch {
	case direction == 0:
		if i < len(k.times) && k.times[i] == t {
			return i, nil
		}
		return 0, ErrNoSuchKey
	case direction < 0:
		if i < len(k.times) && k.times[i] == t {
			i--
		} else {
			i--
		}
		if i < 0 {
			return 0, ErrNoSuchKey
		}
		return i, nil
	default: // direction > 0
		if i < len(k.times) && k.times[i] == t {
			i++
		}
		if i >= len(k.times) {
			return 0, ErrNoSuchKey
		}
		return i, nil
	}
}

func (k *keyframes) deleteKey(t float64) error {
	i := sort.SearchFloat64s(k.times, t)
	if i >= len(k.times) || k.times[i] != t {
		return ErrNoSuchKey
	}
	k.times = append(k.times[:i], k.times[i+1:]...)
	return nil
}

func (k *keyframes) deleteAllKeys() { k.times = nil }
