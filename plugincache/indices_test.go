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

package plugincache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDuplicateIdentifierResolution covers spec testable property S3: two
// bundles exporting the same identifier at (1,0) and (1,2) resolve so both
// indices point at the (1,2) instance.
func TestDuplicateIdentifierResolution(t *testing.T) {
	c := New("1")
	older := &Plugin{Identifier: "net.sf.openfx.invertPlugin", MajorVersion: 1, MinorVersion: 0}
	newer := &Plugin{Identifier: "net.sf.openfx.invertPlugin", MajorVersion: 1, MinorVersion: 2}
	c.binaries["/a"] = &binaryState{plugins: []*Plugin{older}}
	c.binaries["/b"] = &binaryState{plugins: []*Plugin{newer}}

	c.rebuildIndices()

	byID, ok := c.ByIdentifier("net.sf.openfx.invertPlugin")
	require.True(t, ok)
	assert.Same(t, newer, byID)

	byIDMajor, ok := c.ByIdentifierMajor("net.sf.openfx.invertPlugin", 1)
	require.True(t, ok)
	assert.Same(t, newer, byIDMajor)
}

func TestGreaterVersionPrefersMajorThenMinor(t *testing.T) {
	a := &Plugin{MajorVersion: 2, MinorVersion: 0}
	b := &Plugin{MajorVersion: 1, MinorVersion: 9}
	assert.True(t, greaterVersion(a, b))
	assert.False(t, greaterVersion(b, a))

	a.MajorVersion, b.MajorVersion = 1, 1
	a.MinorVersion, b.MinorVersion = 3, 5
	assert.False(t, greaterVersion(a, b))
	assert.True(t, greaterVersion(b, a))
}

func TestPluginsSortedDeterministically(t *testing.T) {
	c := New("1")
	c.binaries["/a"] = &binaryState{plugins: []*Plugin{
		{Identifier: "z.plugin", MajorVersion: 1, MinorVersion: 0},
		{Identifier: "a.plugin", MajorVersion: 1, MinorVersion: 0},
	}}
	got := c.Plugins()
	require.Len(t, got, 2)
	assert.Equal(t, "a.plugin", got[0].Identifier)
	assert.Equal(t, "z.plugin", got[1].Identifier)
}
