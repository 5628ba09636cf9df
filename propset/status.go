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

import (
	"errors"

	"github.com/openfx-host/ofxhost/ofxstatus"
)

// ToStatus maps a propset error to the OFX wire status the property suite
// trampolines return to a calling plugin (spec §7).
func ToStatus(err error) ofxstatus.Status {
	switch {
	case err == nil:
		return ofxstatus.OK
	case errors.Is(err, ErrUnknown):
		return ofxstatus.ErrBadHandle
	case errors.Is(err, ErrBadType):
		return ofxstatus.ErrValue
	case errors.Is(err, ErrBadIndex):
		return ofxstatus.ErrBadIndex
	case errors.Is(err, ErrReadOnly):
		return ofxstatus.ErrValue
	case errors.Is(err, ErrWrongCount):
		return ofxstatus.ErrValue
	case errors.Is(err, ErrReentrant):
		return ofxstatus.ErrValue
	default:
		return ofxstatus.Failed
	}
}
