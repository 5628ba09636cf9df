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

// suites.go implements the plugin->host direction of the ABI: the
// fetchSuite trampoline and a representative subset of the property and
// message suites (ofxabi's DESIGN.md scope decision — the full suite set
// is a large //export surface with no compiler to check it against; the
// logic beneath every trampoline here is plain Go, independently tested in
// propset and this package without going through cgo).
package host

/*
#include <stdlib.h>
#include <stdarg.h>
#include <stdio.h>
#include <string.h>

typedef int OfxStatus;
typedef void *OfxPropertySetHandle;

typedef struct OfxPropertySuiteV1 {
	OfxStatus (*propSetString)(OfxPropertySetHandle properties, const char *property, int index, const char *value);
	OfxStatus (*propSetDouble)(OfxPropertySetHandle properties, const char *property, int index, double value);
	OfxStatus (*propSetInt)(OfxPropertySetHandle properties, const char *property, int index, int value);
	OfxStatus (*propGetString)(OfxPropertySetHandle properties, const char *property, int index, char **value);
	OfxStatus (*propGetDouble)(OfxPropertySetHandle properties, const char *property, int index, double *value);
	OfxStatus (*propGetInt)(OfxPropertySetHandle properties, const char *property, int index, int *value);
	OfxStatus (*propGetDimension)(OfxPropertySetHandle properties, const char *property, int *count);
	OfxStatus (*propReset)(OfxPropertySetHandle properties, const char *property);
} OfxPropertySuiteV1;

typedef struct OfxMessageSuiteV1 {
	OfxStatus (*message)(void *handle, const char *messageType, const char *messageId, const char *format, ...);
	OfxStatus (*setPersistentMessage)(void *handle, const char *messageType, const char *messageId, const char *format, ...);
	OfxStatus (*clearPersistentMessage)(void *handle);
} OfxMessageSuiteV1;

extern OfxStatus goPropSetString(OfxPropertySetHandle, char*, int, char*);
extern OfxStatus goPropSetDouble(OfxPropertySetHandle, char*, int, double);
extern OfxStatus goPropSetInt(OfxPropertySetHandle, char*, int, int);
extern OfxStatus goPropGetString(OfxPropertySetHandle, char*, int, char**);
extern OfxStatus goPropGetDouble(OfxPropertySetHandle, char*, int, double*);
extern OfxStatus goPropGetInt(OfxPropertySetHandle, char*, int, int*);
extern OfxStatus goPropGetDimension(OfxPropertySetHandle, char*, int*);
extern OfxStatus goPropReset(OfxPropertySetHandle, char*);
extern OfxStatus goMessage(char*, char*, char*);
extern OfxStatus goSetPersistentMessage(char*, char*, char*);
extern OfxStatus goClearPersistentMessage();

static OfxStatus ofxabi_message_trampoline(void *handle, const char *messageType, const char *messageId, const char *format, ...) {
	char buf[2048];
	va_list ap;
	va_start(ap, format);
	vsnprintf(buf, sizeof(buf), format, ap);
	va_end(ap);
	return goMessage((char*)messageType, (char*)messageId, buf);
}

static OfxStatus ofxabi_set_persistent_message_trampoline(void *handle, const char *messageType, const char *messageId, const char *format, ...) {
	char buf[2048];
	va_list ap;
	va_start(ap, format);
	vsnprintf(buf, sizeof(buf), format, ap);
	va_end(ap);
	return goSetPersistentMessage((char*)messageType, (char*)messageId, buf);
}

static OfxStatus ofxabi_clear_persistent_message_trampoline(void *handle) {
	return goClearPersistentMessage();
}

static OfxPropertySuiteV1 ofxabi_property_suite_v1 = {
	goPropSetString, goPropSetDouble, goPropSetInt,
	goPropGetString, goPropGetDouble, goPropGetInt,
	goPropGetDimension, goPropReset,
};

static OfxMessageSuiteV1 ofxabi_message_suite_v1 = {
	ofxabi_message_trampoline,
	ofxabi_set_persistent_message_trampoline,
	ofxabi_clear_persistent_message_trampoline,
};

static const void *ofxabi_fetch_suite(const char *suiteName, int suiteVersion) {
	if (suiteVersion != 1) {
		return NULL;
	}
	if (strcmp(suiteName, "OfxPropertySuite") == 0) {
		return &ofxabi_property_suite_v1;
	}
	if (strcmp(suiteName, "OfxMessageSuite") == 0) {
		return &ofxabi_message_suite_v1;
	}
	return NULL;
}

static const void *ofxabi_fetch_suite_trampoline(struct OfxHostStruct *host, const char *suiteName, int suiteVersion) {
	return ofxabi_fetch_suite(suiteName, suiteVersion);
}
*/
import "C"

import (
	"sync"
	"unsafe"

	"github.com/openfx-host/ofxhost/ofxabi"
	"github.com/openfx-host/ofxhost/ofxstatus"
	"github.com/openfx-host/ofxhost/propset"
)

// activeSink is the Sink every message/persistent-message trampoline
// delivers to. OFX's C ABI hands suite functions a single global v-table
// (the struct literals above), so distinguishing between multiple Host
// facades inside one process is out of scope for this representative
// subset: an embedder that needs more than one concurrently live Host talks
// to at most one at a time from the plug-in's perspective, matching
// plugincache's own process-wide Init/Global singleton shape.
var (
	activeMu   sync.Mutex
	activeSink Sink = NopSink{}
)

func installFetchSuite(h *Host) {
	activeMu.Lock()
	activeSink = h.sink
	activeMu.Unlock()
	h.raw.SetFetchSuite(unsafe.Pointer(C.ofxabi_fetch_suite_trampoline))
}

func lookupSet(handle C.OfxPropertySetHandle) (*propset.Set, bool) {
	value, ok := ofxabi.Lookup(ofxabi.HandleFromPointer(unsafe.Pointer(handle)), ofxabi.KindPropertySet)
	if !ok {
		return nil, false
	}
	return value.(*propset.Set), true
}

//export goPropSetString
func goPropSetString(handle C.OfxPropertySetHandle, property *C.char, index C.int, value *C.char) C.OfxStatus {
	set, ok := lookupSet(handle)
	if !ok {
		return C.OfxStatus(ofxstatus.ErrBadHandle)
	}
	err := set.SetString(C.GoString(property), int(index), C.GoString(value), propset.FromPlugin)
	return C.OfxStatus(propset.ToStatus(err))
}

//export goPropSetDouble
func goPropSetDouble(handle C.OfxPropertySetHandle, property *C.char, index C.int, value C.double) C.OfxStatus {
	set, ok := lookupSet(handle)
	if !ok {
		return C.OfxStatus(ofxstatus.ErrBadHandle)
	}
	err := set.SetDouble(C.GoString(property), int(index), float64(value), propset.FromPlugin)
	return C.OfxStatus(propset.ToStatus(err))
}

//export goPropSetInt
func goPropSetInt(handle C.OfxPropertySetHandle, property *C.char, index, value C.int) C.OfxStatus {
	set, ok := lookupSet(handle)
	if !ok {
		return C.OfxStatus(ofxstatus.ErrBadHandle)
	}
	err := set.SetInt(C.GoString(property), int(index), int64(value), propset.FromPlugin)
	return C.OfxStatus(propset.ToStatus(err))
}

//export goPropGetString
func goPropGetString(handle C.OfxPropertySetHandle, property *C.char, index C.int, out **C.char) C.OfxStatus {
	set, ok := lookupSet(handle)
	if !ok {
		return C.OfxStatus(ofxstatus.ErrBadHandle)
	}
	v, err := set.GetString(C.GoString(property), int(index))
	if err != nil {
		return C.OfxStatus(propset.ToStatus(err))
	}
	*out = C.CString(v)
	return C.OfxStatus(ofxstatus.OK)
}

//export goPropGetDouble
func goPropGetDouble(handle C.OfxPropertySetHandle, property *C.char, index C.int, out *C.double) C.OfxStatus {
	set, ok := lookupSet(handle)
	if !ok {
		return C.OfxStatus(ofxstatus.ErrBadHandle)
	}
	v, err := set.GetDouble(C.GoString(property), int(index))
	if err != nil {
		return C.OfxStatus(propset.ToStatus(err))
	}
	*out = C.double(v)
	return C.OfxStatus(ofxstatus.OK)
}

//export goPropGetInt
func goPropGetInt(handle C.OfxPropertySetHandle, property *C.char, index C.int, out *C.int) C.OfxStatus {
	set, ok := lookupSet(handle)
	if !ok {
		return C.OfxStatus(ofxstatus.ErrBadHandle)
	}
	v, err := set.GetInt(C.GoString(property), int(index))
	if err != nil {
		return C.OfxStatus(propset.ToStatus(err))
	}
	*out = C.int(v)
	return C.OfxStatus(ofxstatus.OK)
}

//export goPropGetDimension
func goPropGetDimension(handle C.OfxPropertySetHandle, property *C.char, out *C.int) C.OfxStatus {
	set, ok := lookupSet(handle)
	if !ok {
		return C.OfxStatus(ofxstatus.ErrBadHandle)
	}
	n, err := set.Dimension(C.GoString(property))
	if err != nil {
		return C.OfxStatus(propset.ToStatus(err))
	}
	*out = C.int(n)
	return C.OfxStatus(ofxstatus.OK)
}

//export goPropReset
func goPropReset(handle C.OfxPropertySetHandle, property *C.char) C.OfxStatus {
	set, ok := lookupSet(handle)
	if !ok {
		return C.OfxStatus(ofxstatus.ErrBadHandle)
	}
	return C.OfxStatus(propset.ToStatus(set.Reset(C.GoString(property))))
}

//export goMessage
func goMessage(messageType, messageID, text *C.char) C.OfxStatus {
	activeMu.Lock()
	sink := activeSink
	activeMu.Unlock()
	return C.OfxStatus(sink.Message(C.GoString(messageType), C.GoString(messageID), C.GoString(text)))
}

//export goSetPersistentMessage
func goSetPersistentMessage(messageType, messageID, text *C.char) C.OfxStatus {
	activeMu.Lock()
	sink := activeSink
	activeMu.Unlock()
	return C.OfxStatus(sink.SetPersistentMessage(C.GoString(messageType), C.GoString(messageID), C.GoString(text)))
}

//export goClearPersistentMessage
func goClearPersistentMessage() C.OfxStatus {
	activeMu.Lock()
	sink := activeSink
	activeMu.Unlock()
	return C.OfxStatus(sink.ClearPersistentMessage())
}
