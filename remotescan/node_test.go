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

package remotescan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitNonEmptyLinesDropsBlanks(t *testing.T) {
	got := splitNonEmptyLines("/a/x.ofx.bundle\n\n  \n/a/y.ofx.bundle\n")
	assert.Equal(t, []string{"/a/x.ofx.bundle", "/a/y.ofx.bundle"}, got)
}

func TestBundleBasename(t *testing.T) {
	assert.Equal(t, "Foo.ofx.bundle", bundleBasename("/farm/plugins/Foo.ofx.bundle"))
	assert.Equal(t, "Foo.ofx.bundle", bundleBasename("Foo.ofx.bundle"))
}

func TestShellQuoteEscapesSingleQuotes(t *testing.T) {
	assert.Equal(t, `'plain'`, shellQuote("plain"))
	assert.Equal(t, `'it'\''s'`, shellQuote("it's"))
}

func TestConfigurationAddr(t *testing.T) {
	c := Configuration{Host: "farm-01", Port: 22}
	assert.Equal(t, "farm-01:22", c.addr())
}

func TestClientConfigRequiresAuthMethod(t *testing.T) {
	_, err := clientConfig(Configuration{Name: "farm-01", KnownHosts: "/nonexistent/known_hosts"})
	assert.Error(t, err)
}
