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

package config_test

import (
	"testing"

	. "fillmore-labs.com/seqsimp/internal/config"
)

func TestBitMask(t *testing.T) {
	t.Parallel()

	var b Rules

	if !b.None() {
		t.Error("Zero value should have no flags enabled")
	}

	b.Enable(AnyWhereRule)

	if !b.Enabled(AnyWhereRule) {
		t.Error("AnyWhereRule should be enabled")
	}

	if b.Enabled(ForwardRule) {
		t.Error("ForwardRule should not be enabled")
	}

	b.Set(ForwardRule, true)
	b.Set(AnyWhereRule, false)

	if b.Enabled(AnyWhereRule) || !b.Enabled(ForwardRule) {
		t.Error("Set should flip exactly the given flag")
	}

	b.Disable(ForwardRule)

	if !b.None() {
		t.Error("All flags should be cleared")
	}
}

func TestDefaults(t *testing.T) {
	t.Parallel()

	rules := DefaultRules()

	for _, flag := range []RuleFlags{AnyWhereRule, AnyCountRule, ForwardRule, CastSelectRule} {
		if !rules.Enabled(flag) {
			t.Errorf("Rule %b should be enabled by default", flag)
		}
	}

	if behavior := DefaultBehavior(); behavior.Enabled(IncludeGenerated) {
		t.Error("Generated files should be excluded by default")
	}
}
