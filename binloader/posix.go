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

//go:build !windows

package binloader

/*
#include <dlfcn.h>
#include <stdlib.h>
*/
import "C"

import (
	"fmt"
	"unsafe"
)

// Symbol is a resolved, untyped symbol address.
type Symbol unsafe.Pointer

// nativeHandle is the OS-level loaded-library handle.
type nativeHandle unsafe.Pointer

const (
	discoveryNumPlugins = "OfxGetNumberOfPlugins"
	discoveryGetPlugin  = "OfxGetPlugin"
)

func load(path string) (nativeHandle, error) {
	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))
	h := C.dlopen(cpath, C.RTLD_NOW|C.RTLD_LOCAL)
	if h == nil {
		return nil, fmt.Errorf("dlopen: %s", C.GoString(C.dlerror()))
	}
	return nativeHandle(h), nil
}

func unload(h nativeHandle) {
	C.dlclose(unsafe.Pointer(h))
}

func lookup(h nativeHandle, name string) (Symbol, error) {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))
	C.dlerror() // clear any pending error
	sym := C.dlsym(unsafe.Pointer(h), cname)
	if errStr := C.dlerror(); errStr != nil {
		return nil, fmt.Errorf("dlsym %s: %s", name, C.GoString(errStr))
	}
	if sym == nil {
		return nil, fmt.Errorf("dlsym %s: not found", name)
	}
	return Symbol(sym), nil
}
