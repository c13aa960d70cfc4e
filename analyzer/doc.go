// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package analyzer implements the seqsimp static analysis pass.
//
// # Overview
//
// SeqSimp detects code using sequence-combinator libraries that can be
// written more directly, and redundant method forwarders that Go's embedding
// promotion makes unnecessary.
//
// # Example
//
// Before:
//
//	if list.Where(func(x int) bool { return x > 0 }).Any() {
//	    // ...
//	}
//
// After applying seqsimp's suggested fix:
//
//	if list.Any(func(x int) bool { return x > 0 }) {
//	    // ...
//	}
//
// # Rules
//
// The analyzer reports:
//
//   - SS1001: x.Where(pred).Any() can be collapsed to x.Any(pred)
//   - SS1002: x.Any() on a fixed-size collection can be a size comparison,
//     x.Len() > 0 or len(x) > 0, with the == 0 forms under negation
//   - SS1003: a method forwarding to an embedded field's method with
//     unchanged arguments can be removed
//   - SS1004: Select(x, func(v F) T { return v.(T) }) can be Cast[T](x)
//
// A rewrite is never suggested when it would drop comments or cross
// compiler directives; such matches are suppressed entirely.
package analyzer
