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

type Inner struct{ closed bool }

func (i *Inner) Close() error {
	i.closed = true

	return nil
}

func (i *Inner) Reset() { i.closed = false }

type Outer struct {
	Inner
	name string
}

func (o *Outer) Close() error { // want "Method only forwards to embedded 'Inner' and can be removed"
	return o.Inner.Close()
}

func (o *Outer) Reset() { // want "Method only forwards to embedded 'Inner' and can be removed"
	o.Inner.Reset()
}

// Name is not a forwarder, the field is not embedded behavior.
func (o *Outer) Name() string { return o.name }

type Loud struct {
	Inner
	calls int
}

// Close counts invocations, removing it would change behavior.
func (l *Loud) Close() error {
	l.calls++

	return l.Inner.Close()
}

type Base struct{ id int }

func (b Base) ID() int { return b.id }

func (b *Base) SetID(v int) { b.id = v }

type Row struct{ Base }

func (r Row) ID() int { // want "Method only forwards to embedded 'Base' and can be removed"
	return r.Base.ID()
}

func (r *Row) SetID(v int) { // want "Method only forwards to embedded 'Base' and can be removed"
	r.Base.SetID(v)
}

type Item struct{ Base }

// ID forwards, but its setter does not, so the pair stays.
func (i Item) ID() int { return i.Base.ID() }

func (i *Item) SetID(v int) { i.Base.SetID(-v) }
