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

//go:build windows

package binloader

import (
	"fmt"
	"syscall"
	"unsafe"
)

// Symbol is a resolved, untyped symbol address.
type Symbol unsafe.Pointer

// nativeHandle is the OS-level loaded-library handle.
type nativeHandle syscall.Handle

const (
	discoveryNumPlugins = "OfxGetNumberOfPlugins"
	discoveryGetPlugin  = "OfxGetPlugin"
)

func load(path string) (nativeHandle, error) {
	h, err := syscall.LoadLibrary(path)
	if err != nil {
		return 0, fmt.Errorf("LoadLibrary: %w", err)
	}
	return nativeHandle(h), nil
}

func unload(h nativeHandle) {
	_ = syscall.FreeLibrary(syscall.Handle(h))
}

func lookup(h nativeHandle, name string) (Symbol, error) {
	addr, err := syscall.GetProcAddress(syscall.Handle(h), name)
	if err != nil {
		return nil, fmt.Errorf("GetProcAddress %s: %w", name, err)
	}
	return Symbol(unsafe.Pointer(addr)), nil
}
