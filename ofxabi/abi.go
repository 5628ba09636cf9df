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

package ofxabi

/*
#include "ofx_abi.h"
*/
import "C"

import (
	"unsafe"

	"github.com/openfx-host/ofxhost/ofxstatus"
)

// Symbol is a resolved, untyped C symbol address (the result of dlsym).
// binloader produces these; ofxabi casts them to the function pointer type
// the caller expects.
type Symbol unsafe.Pointer

// DiscoveryEntry wraps the two symbols every OFX binary must export
// (spec §4.E): OfxGetNumberOfPlugins and OfxGetPlugin.
type DiscoveryEntry struct {
	numPlugins Symbol
	getPlugin  Symbol
}

// NewDiscoveryEntry builds a DiscoveryEntry from the two resolved symbols.
func NewDiscoveryEntry(numPlugins, getPlugin Symbol) DiscoveryEntry {
	return DiscoveryEntry{numPlugins, getPlugin}
}

// NumPlugins calls OfxGetNumberOfPlugins.
func (d DiscoveryEntry) NumPlugins() int {
	f := C.OfxGetNumberOfPluginsFunc(d.numPlugins)
	return int(C.ofxabi_call_get_number_of_plugins(f))
}

// RawPlugin is the Go mirror of one OfxPlugin struct entry, read directly
// out of the binary's memory (read-only fields; mainEntry/setHost remain
// opaque C function pointers invoked through the trampolines below).
type RawPlugin struct {
	APIName       string
	APIVersion    int
	Identifier    string
	VersionMajor  uint32
	VersionMinor  uint32
	cPlugin       *C.OfxPlugin
}

// Plugin returns the index'th plugin struct by calling OfxGetPlugin(index)
// and decoding its fixed-layout fields.
func (d DiscoveryEntry) Plugin(index int) RawPlugin {
	f := C.OfxGetPluginFunc(d.getPlugin)
	p := C.ofxabi_call_get_plugin(f, C.int(index))
	return RawPlugin{
		APIName:      C.GoString(p.pluginApi),
		APIVersion:   int(p.apiVersion),
		Identifier:   C.GoString(p.pluginIdentifier),
		VersionMajor: uint32(p.pluginVersionMajor),
		VersionMinor: uint32(p.pluginVersionMinor),
		cPlugin:      p,
	}
}

// SetHost calls the plugin's setHost(OfxHost*) entry. Must be called once,
// before any action is dispatched (spec §4.E: load, then describe).
func (p RawPlugin) SetHost(host *Host) {
	C.ofxabi_call_set_host(p.cPlugin, host.c)
}

// MainEntry dispatches one action through the plugin's mainEntry funnel
// (spec §4.H). handle, inArgs and outArgs are opaque Handles minted by
// ofxabi.Mint; a zero Handle crosses as a null pointer, matching actions
// like "OfxActionLoad" that take no handle.
func (p RawPlugin) MainEntry(action string, handle, inArgs, outArgs Handle) ofxstatus.Status {
	cAction := C.CString(action)
	defer C.free(unsafe.Pointer(cAction))
	st := C.ofxabi_call_main_entry(
		p.cPlugin,
		cAction,
		handle.AsPointer(),
		C.OfxPropertySetHandle(inArgs.AsPointer()),
		C.OfxPropertySetHandle(outArgs.AsPointer()),
	)
	return ofxstatus.Status(st)
}

// Host is the Go-owned OfxHost struct a plugin's setHost call receives a
// pointer to. Its fetchSuite function pointer is filled in by package host
// (component J), which exports the C trampoline fetchSuite delegates to.
type Host struct {
	c         *C.OfxHost
	propsHandle Handle
}

// NewHost allocates the C-visible OfxHost struct, stamping host.host with
// the handle of the host's top-level property set (spec §6: "Host struct:
// {OfxPropertySetHandle host; ...}").
func NewHost(propsHandle Handle) *Host {
	c := (*C.OfxHost)(C.malloc(C.size_t(unsafe.Sizeof(C.OfxHost{}))))
	c.host = C.OfxPropertySetHandle(propsHandle.AsPointer())
	return &Host{c: c, propsHandle: propsHandle}
}

// SetFetchSuite installs the //export'd fetchSuite trampoline. Called once
// by package host at host construction.
func (h *Host) SetFetchSuite(fn unsafe.Pointer) {
	h.c.fetchSuite = (*[0]byte)(fn)
}

// CPointer exposes the raw *OfxHost for RawPlugin.SetHost and for package
// host's fetchSuite trampoline to recover which Host it was called on.
func (h *Host) CPointer() unsafe.Pointer { return unsafe.Pointer(h.c) }

// Free releases the malloc'd OfxHost struct. Call once when the host
// facade (and every binary that might still call back into it) is torn
// down.
func (h *Host) Free() {
	C.free(unsafe.Pointer(h.c))
}

// Free releases a CString allocated by callers that built one with
// C.CString to pass across a suite boundary (parameter/property names).
func Free(p unsafe.Pointer) { C.free(p) }

// CString duplicates a Go string as a C string the caller must Free.
func CString(s string) unsafe.Pointer { return unsafe.Pointer(C.CString(s)) }

// GoString reads a NUL-terminated C string without taking ownership of it.
func GoString(p unsafe.Pointer) string { return C.GoString((*C.char)(p)) }
