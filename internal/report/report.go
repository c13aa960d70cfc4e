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

// Package report turns matches into diagnostic records.
//
// Message construction reads only the match's property bag, keeping the
// reporting step decoupled from the predicates that produced the match.
package report

import (
	"fmt"
	"strconv"

	"fillmore-labs.com/seqsimp/internal/diag"
	"fillmore-labs.com/seqsimp/internal/match"
	"fillmore-labs.com/seqsimp/internal/wellknown"
)

// Diagnostic builds the diagnostic record for a match.
func Diagnostic(rule match.Rule, mt match.Match) diag.Diagnostic {
	return diag.Diagnostic{
		ID:         rule.ID,
		Severity:   rule.Severity,
		Pos:        mt.Pos,
		End:        mt.End,
		Message:    Message(mt),
		Properties: mt.Properties,
	}
}

// Message constructs the human-readable finding text for a match.
func Message(mt match.Match) string {
	switch mt.Rule {
	case match.AnyWhereID:
		return "'Where' followed by 'Any' can be combined into a single 'Any' call"

	case match.AnyCountID:
		return anyCountMessage(mt)

	case match.ForwardID:
		return fmt.Sprintf("Method only forwards to embedded '%s' and can be removed",
			mt.Properties[match.PropField])

	case match.CastSelectID:
		return fmt.Sprintf("'Select' projecting a cast can be replaced with 'Cast[%s]'",
			mt.Properties[match.PropType])

	default:
		return "Simplifiable expression"
	}
}

func anyCountMessage(mt match.Match) string {
	accessor := mt.Properties[match.PropAccessor]

	spelled := accessor + "()"
	if accessor == wellknown.BuiltinLen {
		spelled = "len(…)"
	}

	negated, _ := strconv.ParseBool(mt.Properties[match.PropNegated])

	comparison := "> 0"
	if negated {
		comparison = "== 0"
	}

	return fmt.Sprintf("Call to 'Any' can be replaced with '%s %s'", spelled, comparison)
}
