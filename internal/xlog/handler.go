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

package xlog

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// Std returns a Handler that writes human-readable lines to w, one per
// record, guarded by a mutex so concurrent goroutines (e.g. remotescan
// workers) don't interleave partial lines.
func Std(w io.Writer) Handler {
	return &stdHandler{w: w}
}

type stdHandler struct {
	mu sync.Mutex
	w  io.Writer
}

func (h *stdHandler) Handle(r Record) {
	h.mu.Lock()
	defer h.mu.Unlock()
	fmt.Fprintf(h.w, "%s [%s] %s", time.Now().Format("15:04:05.000"), r.Severity.Short(), r.Message)
	for _, f := range r.Fields {
		fmt.Fprintf(h.w, " %s=%v", f.Name, f.Value)
	}
	fmt.Fprintln(h.w)
}

// Multi fans a record out to every handler in turn.
func Multi(handlers ...Handler) Handler {
	return multiHandler(handlers)
}

type multiHandler []Handler

func (m multiHandler) Handle(r Record) {
	for _, h := range m {
		h.Handle(r)
	}
}

// Func adapts a plain function to a Handler.
type Func func(Record)

// Handle implements Handler.
func (f Func) Handle(r Record) { f(r) }
