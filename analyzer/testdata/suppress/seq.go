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

package suppress

type Seq[T any] func(yield func(T) bool)

func (s Seq[T]) Where(pred func(T) bool) Seq[T] {
	return func(yield func(T) bool) {
		s(func(v T) bool {
			if !pred(v) {
				return true
			}

			return yield(v)
		})
	}
}

func (s Seq[T]) Any(preds ...func(T) bool) bool {
	found := false
	s(func(v T) bool {
		for _, pred := range preds {
			if !pred(v) {
				return true
			}
		}
		found = true

		return false
	})

	return found
}

type Vec[T any] []T

func (v Vec[T]) Where(pred func(T) bool) Vec[T] {
	var out Vec[T]
	for _, e := range v {
		if pred(e) {
			out = append(out, e)
		}
	}

	return out
}

func (v Vec[T]) Any(preds ...func(T) bool) bool {
next:
	for _, e := range v {
		for _, pred := range preds {
			if !pred(e) {
				continue next
			}
		}

		return true
	}

	return false
}

func (v Vec[T]) Len() int { return len(v) }
