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

import "runtime"

// archCandidates returns the ordered list of bundle architecture directory
// names to try for the running host (spec §4.D/§6: "on 64-bit macOS,
// MacOS-x86-64 is tried first and falls back to a universal MacOS slice").
// Grounded on the teacher's own GOOS/GOARCH-keyed mapping in
// _examples/google-gapid/core/os/device/architecture.go
// (ArchitectureByName's runtime.GOARCH table), generalized from "one
// canonical Architecture" to "an ordered list of on-disk directory names".
func archCandidates() []string {
	switch runtime.GOOS {
	case "windows":
		if runtime.GOARCH == "amd64" || runtime.GOARCH == "arm64" {
			return []string{"win64"}
		}
		return []string{"win32"}
	case "darwin":
		if runtime.GOARCH == "amd64" || runtime.GOARCH == "arm64" {
			return []string{"MacOS-x86-64", "MacOS"}
		}
		return []string{"MacOS"}
	case "freebsd":
		if runtime.GOARCH == "amd64" {
			return []string{"FreeBSD-x86-64"}
		}
		return []string{"FreeBSD-x86"}
	default: // linux and other POSIX targets share the Linux-* naming
		if runtime.GOARCH == "amd64" || runtime.GOARCH == "arm64" {
			return []string{"Linux-x86-64"}
		}
		return []string{"Linux-x86"}
	}
}
