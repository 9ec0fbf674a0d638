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

import (
	"fmt"

	"github.com/google/uuid"

	"dirpx.dev/dguard/reason"
)

// UUIDChain validates a uuid.UUID.
type UUIDChain struct {
	Chain[uuid.UUID]
}

// UUID starts a chain for id named name.
func UUID(id uuid.UUID, name string, custom ...Customization) UUIDChain {
	return UUIDChain{newChain(id, name, custom)}
}

// With returns the chain with cu as its customization. A nil cu
// restores the defaults; a failure already recorded is kept.
func (c UUIDChain) With(cu Customization) UUIDChain {
	c.Chain = c.with(cu)
	return c
}

// Throw is With(Message(msg)).
func (c UUIDChain) Throw(msg string) UUIDChain { return c.With(Message(msg)) }

// ThrowFunc is With(Factory(f)).
func (c UUIDChain) ThrowFunc(f func() error) UUIDChain { return c.With(Factory(f)) }

// ThrowNamed is With(NamedFactory(f)).
func (c UUIDChain) ThrowNamed(f func(string) error) UUIDChain { return c.With(NamedFactory(f)) }

// OnlyInDebug mutes the chain in builds tagged dguard_release.
func (c UUIDChain) OnlyInDebug() UUIDChain {
	c.Chain = c.muteUnless(debugBuild)
	return c
}

func (c *UUIDChain) bind(v uuid.UUID, name string, custom Customization) {
	*c = UUID(v, name, custom)
}

// IfNil fails for uuid.Nil.
func (c UUIDChain) IfNil() UUIDChain {
	if c.live() && c.value == uuid.Nil {
		c.invalid(reason.UUIDNil, "UUID should not be nil.")
	}
	return c
}

// IfNotNil fails unless the value is uuid.Nil.
func (c UUIDChain) IfNotNil() UUIDChain {
	if c.live() && c.value != uuid.Nil {
		c.invalid(reason.UUIDNotNil, "UUID should be nil.")
	}
	return c
}

// IfVersion fails when the UUID has version v.
func (c UUIDChain) IfVersion(v uuid.Version) UUIDChain {
	if c.live() && c.value.Version() == v {
		c.invalid(reason.UUIDVersionEqual, fmt.Sprintf("UUID version should not be %d.", v))
	}
	return c
}

// IfNotVersion fails unless the UUID has version v.
func (c UUIDChain) IfNotVersion(v uuid.Version) UUIDChain {
	if c.live() && c.value.Version() != v {
		c.invalid(reason.UUIDVersionNotEqual, fmt.Sprintf("UUID version should be %d.", v))
	}
	return c
}
