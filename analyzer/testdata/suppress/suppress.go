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

import "fmt"

func suppressed(s Seq[int], v Vec[int]) {
	pos := func(x int) bool { return x > 0 }

	// A comment inside the collapsed span keeps the chain as written.
	if s.Where(pos). /* slow path */ Any() {
		fmt.Println("kept")
	}

	if s.Where(pos).Any() { //nolint:seqsimp
		fmt.Println("skipped")
	}

	if v.Any() { //nolint:all
		fmt.Println("skipped")
	}

	if v.Any( /* counted */ ) {
		fmt.Println("kept")
	}
}

type door struct{ open bool }

func (d *door) Close() { d.open = false }

type house struct {
	door
}

// The directive pins this wrapper in place.
//
//go:noinline
func (h *house) Close() {
	h.door.Close()
}
