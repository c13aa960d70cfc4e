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
	"flag"

	"fillmore-labs.com/seqsimp/internal/config"
	"fillmore-labs.com/seqsimp/internal/run"
)

// registerFlags binds the [run.Options] values to command line flag values.
// A nil flag set value defaults to the program's command line.
func registerFlags(flags *flag.FlagSet, r *run.Options) {
	if flags == nil {
		flags = flag.CommandLine
	}

	flags.Var(boolValue[config.RuleFlags, *config.Rules]{flags: &r.Rules, value: config.AnyWhereRule},
		"any-where", "simplify chained Where/Any combinator calls")
	flags.Var(boolValue[config.RuleFlags, *config.Rules]{flags: &r.Rules, value: config.AnyCountRule},
		"any-count", "replace existence checks with size comparisons")
	flags.Var(boolValue[config.RuleFlags, *config.Rules]{flags: &r.Rules, value: config.ForwardRule},
		"forward", "detect redundant embedded-method forwarders")
	flags.Var(boolValue[config.RuleFlags, *config.Rules]{flags: &r.Rules, value: config.CastSelectRule},
		"cast-select", "replace cast-only projections with Cast calls")
	flags.Var(boolValue[config.Config, *config.Behavior]{flags: &r.Behavior, value: config.IncludeGenerated},
		"generated", "check generated files")
}
