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

// Package xerr holds the error primitives shared across the host: sentinel
// errors, a multi-error collector for reconcile passes that must keep going
// after one bundle fails, and the panic-to-error boundary every plug-in
// call site installs.
package xerr

import "fmt"

// Const is a constant, comparable error value suitable for sentinel errors
// checked with ==  or errors.Is.
type Const string

// Error implements error.
func (e Const) Error() string { return string(e) }

// List collects every error it is given, in order.
type List []error

// Collect appends err to the list. A nil err is ignored.
func (l *List) Collect(err error) {
	if err != nil {
		*l = append(*l, err)
	}
}

// First returns the first collected error, or nil if none were collected.
func (l *List) First() error {
	if len(*l) == 0 {
		return nil
	}
	return (*l)[0]
}

// Err returns the list as a single error (nil if empty, the sole entry if
// there is one, otherwise an error giving the count and wrapping the first).
func (l List) Err() error {
	if len(l) == 0 {
		return nil
	}
	if len(l) == 1 {
		return l[0]
	}
	return fmt.Errorf("%d errors, first: %w", len(l), l[0])
}

// fromPanic converts a recovered panic value to an error. A nil value (the
// non-panicking case) returns nil.
func fromPanic(v interface{}) error {
	switch e := v.(type) {
	case nil:
		return nil
	case error:
		return fmt.Errorf("panic: %w", e)
	default:
		return fmt.Errorf("panic: %v", e)
	}
}

// Recover must itself be the deferred call (defer xerr.Recover(&err)). It
// recovers any panic in flight and, if one occurred, assigns it to *errp
// (appending the text of whatever *errp already held), converting a foreign unwind
// escaping a plug-in call into a regular error the caller can turn into an
// OFX failed status. Mirrors core/fault's From(recover()) pattern, extended
// to also recover mid-flight.
func Recover(errp *error) {
	if v := recover(); v != nil {
		if panicErr := fromPanic(v); panicErr != nil {
			if *errp != nil {
				*errp = fmt.Errorf("%w (after: %s)", panicErr, *errp)
			} else {
				*errp = panicErr
			}
		}
	}
}
