/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package dguard

import "dirpx.dev/dguard/reason"

// BoolChain validates a boolean.
type BoolChain struct {
	Chain[bool]
}

// Bool starts a chain for b named name.
func Bool(b bool, name string, custom ...Customization) BoolChain {
	return BoolChain{newChain(b, name, custom)}
}

// NullableBool lifts a *bool; nil raises the null-argument kind.
func NullableBool(p *bool, name string, custom ...Customization) BoolChain {
	if p == nil {
		c := Bool(false, name, custom...)
		c.null()
		return c
	}
	return Bool(*p, name, custom...)
}

// With returns the chain with cu as its customization. A nil cu
// restores the defaults; a failure already recorded is kept.
func (c BoolChain) With(cu Customization) BoolChain {
	c.Chain = c.with(cu)
	return c
}

// Throw is With(Message(msg)).
func (c BoolChain) Throw(msg string) BoolChain { return c.With(Message(msg)) }

// ThrowFunc is With(Factory(f)).
func (c BoolChain) ThrowFunc(f func() error) BoolChain { return c.With(Factory(f)) }

// ThrowNamed is With(NamedFactory(f)).
func (c BoolChain) ThrowNamed(f func(string) error) BoolChain { return c.With(NamedFactory(f)) }

// OnlyInDebug mutes the chain in builds tagged dguard_release.
func (c BoolChain) OnlyInDebug() BoolChain {
	c.Chain = c.muteUnless(debugBuild)
	return c
}

func (c *BoolChain) bind(v bool, name string, custom Customization) {
	*c = Bool(v, name, custom)
}

// IfTrue fails when the value is true.
func (c BoolChain) IfTrue() BoolChain {
	if c.live() && c.value {
		c.invalid(reason.BoolTrue, "Value should not be true.")
	}
	return c
}

// IfFalse fails when the value is false.
func (c BoolChain) IfFalse() BoolChain {
	if c.live() && !c.value {
		c.invalid(reason.BoolFalse, "Value should not be false.")
	}
	return c
}
