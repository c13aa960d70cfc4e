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

package gclplugin

import seqsimp "fillmore-labs.com/seqsimp/analyzer"

// Settings represents the configuration options for an instance of the [Plugin].
type Settings struct {
	// AnyWhere enables the chained Where/Any simplification.
	AnyWhere *bool `json:"any-where,omitzero"`
	// AnyCount enables rewriting existence checks to size comparisons.
	AnyCount *bool `json:"any-count,omitzero"`
	// Forward enables detection of redundant embedded-method forwarders.
	Forward *bool `json:"forward,omitzero"`
	// CastSelect enables rewriting cast-only projections to Cast calls.
	CastSelect *bool `json:"cast-select,omitzero"`
}

// Options converts [Settings] into a list of [seqsimp.Option] for the seqsimp analyzer.
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) Options() []seqsimp.Option {
	var opts []seqsimp.Option

	opts = appendOption(opts, s.AnyWhere, seqsimp.WithAnyWhere)
	opts = appendOption(opts, s.AnyCount, seqsimp.WithAnyCount)
	opts = appendOption(opts, s.Forward, seqsimp.WithForward)
	opts = appendOption(opts, s.CastSelect, seqsimp.WithCastSelect)

	return opts
}

// appendOption appends a non-nil setting to a [seqsimp.Option] list.
func appendOption[T any](opts []seqsimp.Option, value *T, constructor func(T) seqsimp.Option) []seqsimp.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
