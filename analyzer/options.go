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

package analyzer

import (
	"log/slog"

	"fillmore-labs.com/seqsimp/internal/config"
	"fillmore-labs.com/seqsimp/internal/run"
)

// Option configures specific behavior of a [New] seqsimp analyzer.
type Option interface {
	apply(r *run.Options)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *run.Options) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithGenerated is an [Option] to configure diagnostics in generated files.
func WithGenerated(generated bool) Option { return generatedOption{generated: generated} }

type generatedOption struct{ generated bool }

func (o generatedOption) apply(r *run.Options) {
	r.Behavior.Set(config.IncludeGenerated, o.generated)
}

func (o generatedOption) LogAttr() slog.Attr {
	return slog.Bool("generated", o.generated)
}

// WithAnyWhere is an [Option] to configure whether chained Where/Any simplification is enabled.
func WithAnyWhere(anyWhere bool) Option {
	return anyWhereOption{anyWhere: anyWhere}
}

type anyWhereOption struct{ anyWhere bool }

func (o anyWhereOption) apply(r *run.Options) {
	r.Rules.Set(config.AnyWhereRule, o.anyWhere)
}

func (o anyWhereOption) LogAttr() slog.Attr {
	return slog.Bool("any-where", o.anyWhere)
}

// WithAnyCount is an [Option] to configure whether existence checks are rewritten to size comparisons.
func WithAnyCount(anyCount bool) Option {
	return anyCountOption{anyCount: anyCount}
}

type anyCountOption struct{ anyCount bool }

func (o anyCountOption) apply(r *run.Options) {
	r.Rules.Set(config.AnyCountRule, o.anyCount)
}

func (o anyCountOption) LogAttr() slog.Attr {
	return slog.Bool("any-count", o.anyCount)
}

// WithForward is an [Option] to configure whether redundant forwarding methods are detected.
func WithForward(forward bool) Option {
	return forwardOption{forward: forward}
}

type forwardOption struct{ forward bool }

func (o forwardOption) apply(r *run.Options) {
	r.Rules.Set(config.ForwardRule, o.forward)
}

func (o forwardOption) LogAttr() slog.Attr {
	return slog.Bool("forward", o.forward)
}

// WithCastSelect is an [Option] to configure whether cast-only projections are rewritten to Cast calls.
func WithCastSelect(castSelect bool) Option {
	return castSelectOption{castSelect: castSelect}
}

type castSelectOption struct{ castSelect bool }

func (o castSelectOption) apply(r *run.Options) {
	r.Rules.Set(config.CastSelectRule, o.castSelect)
}

func (o castSelectOption) LogAttr() slog.Attr {
	return slog.Bool("cast-select", o.castSelect)
}
