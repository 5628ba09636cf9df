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

// Package interact implements the Interact subsystem (component I): an
// overlay interactor that dispatches pen, key and focus actions against an
// effect instance's overlay entry point, with its geometry properties
// (pixel scale, background colour, viewport size) served from an embedder
// Virtual rather than stored state (spec §4.I).
package interact

// Virtual supplies the geometry of the surface an interact instance is
// drawn onto. The host owns this state (it tracks window size and display
// scale); the interact instance only ever reads it through these methods.
type Virtual interface {
	PixelScale() (x, y float64)
	BackgroundColour() (r, g, b float64)
	ViewportSize() (w, h float64)
}
