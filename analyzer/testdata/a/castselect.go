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

type Shape interface{ Area() float64 }

type Circle struct{ R float64 }

func (c Circle) Area() float64 { return c.R * c.R * 3 }

func castSelect(s Seq[any], c Seq[Circle]) {
	_ = Select(s, func(v any) Shape { return v.(Shape) }) // want `'Select' projecting a cast can be replaced with 'Cast\[Shape\]'`

	_ = Select(s, func(v any) Circle { return v.(Circle) }) // want `'Select' projecting a cast can be replaced with 'Cast\[Circle\]'`

	// A conversion to an interface type is the same runtime cast.
	_ = Select(c, func(v Circle) Shape { return Shape(v) }) // want `'Select' projecting a cast can be replaced with 'Cast\[Shape\]'`

	// A real projection is not a cast.
	_ = Select(c, func(v Circle) float64 { return v.Area() })

	// A conversion between concrete types changes the value.
	_ = Select(c, func(v Circle) Circle { return Circle(v) })
}
