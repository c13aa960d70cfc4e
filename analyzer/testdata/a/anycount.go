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

package a

import "fmt"

func anyCount(s Seq[int], v Vec[int], b Bag[int]) {
	if v.Any() { // want `Call to 'Any' can be replaced with 'Len\(\) > 0'`
		fmt.Println("some")
	}

	if !v.Any() { // want `Call to 'Any' can be replaced with 'Len\(\) == 0'`
		fmt.Println("none")
	}

	if b.Any() { // want `Call to 'Any' can be replaced with 'len\(…\) > 0'`
		fmt.Println("some")
	}

	if !b.Any() { // want `Call to 'Any' can be replaced with 'len\(…\) == 0'`
		fmt.Println("none")
	}

	// The filtered result still has an observable size.
	w := v.Where(func(x int) bool { return x > 0 })
	if w.Any() { // want `Call to 'Any' can be replaced with 'Len\(\) > 0'`
		fmt.Println("positive")
	}

	// Lazy sequences have no cheap size.
	if s.Any() {
		fmt.Println("lazy")
	}

	// A predicate makes this a search, not an existence check.
	if v.Any(func(x int) bool { return x > 0 }) {
		fmt.Println("search")
	}
}
