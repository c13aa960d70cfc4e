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

package config

// RuleFlags represents individual simplification rules.
type RuleFlags uint8

const (
	// AnyWhereRule enables collapsing chained Where/Any combinator calls.
	AnyWhereRule RuleFlags = 1 << iota

	// AnyCountRule enables replacing existence checks with length comparisons.
	AnyCountRule

	// ForwardRule enables detection of redundant embedded-method forwarders.
	ForwardRule

	// CastSelectRule enables replacing cast-only projections with Cast calls.
	CastSelectRule
)

// Rules is a bitmask of enabled rules.
type Rules = BitMask[RuleFlags]

// DefaultRules returns the rules enabled by default.
func DefaultRules() Rules {
	return NewBitMask(AnyWhereRule, AnyCountRule, ForwardRule, CastSelectRule)
}

// Config represents behavioral options shared by all rules.
type Config uint8

const (
	// IncludeGenerated specifies whether to include analysis of generated files.
	IncludeGenerated Config = 1 << iota
)

// Behavior is a bitmask of behavioral options.
type Behavior = BitMask[Config]

// DefaultBehavior returns the default behavioral options.
func DefaultBehavior() Behavior {
	return NewBitMask[Config]()
}
