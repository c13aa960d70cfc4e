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

func anyWhere(s Seq[int], v Vec[int]) {
	pos := func(x int) bool { return x > 0 }

	if s.Where(pos).Any() { // want "'Where' followed by 'Any' can be combined into a single 'Any' call"
		fmt.Println("found")
	}

	if v.Where(pos).Any() { // want "'Where' followed by 'Any' can be combined into a single 'Any' call"
		fmt.Println("found")
	}

	if s.Where(func(x int) bool { return x%2 == 0 }).Any() { // want "'Where' followed by 'Any' can be combined into a single 'Any' call"
		fmt.Println("even")
	}

	// Already in the collapsed form.
	if s.Any(pos) {
		fmt.Println("direct")
	}

	// A comment inside the collapsed span suppresses the rewrite.
	if s.Where(pos). /* keep */ Any() {
		fmt.Println("kept")
	}
}
