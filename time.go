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
	"time"

	"dirpx.dev/dguard/reason"
)

// TimeChain validates a time.Time. Ordering checks use the instant, so
// values in different locations compare correctly.
type TimeChain struct {
	Chain[time.Time]
}

// Time starts a chain for t named name.
func Time(t time.Time, name string, custom ...Customization) TimeChain {
	return TimeChain{newChain(t, name, custom)}
}

// NullableTime lifts a *time.Time; nil raises the null-argument kind.
func NullableTime(p *time.Time, name string, custom ...Customization) TimeChain {
	if p == nil {
		c := Time(time.Time{}, name, custom...)
		c.null()
		return c
	}
	return Time(*p, name, custom...)
}

// With returns the chain with cu as its customization. A nil cu
// restores the defaults; a failure already recorded is kept.
func (c TimeChain) With(cu Customization) TimeChain {
	c.Chain = c.with(cu)
	return c
}

// Throw is With(Message(msg)).
func (c TimeChain) Throw(msg string) TimeChain { return c.With(Message(msg)) }

// ThrowFunc is With(Factory(f)).
func (c TimeChain) ThrowFunc(f func() error) TimeChain { return c.With(Factory(f)) }

// ThrowNamed is With(NamedFactory(f)).
func (c TimeChain) ThrowNamed(f func(string) error) TimeChain { return c.With(NamedFactory(f)) }

// OnlyInDebug mutes the chain in builds tagged dguard_release.
func (c TimeChain) OnlyInDebug() TimeChain {
	c.Chain = c.muteUnless(debugBuild)
	return c
}

func (c *TimeChain) bind(v time.Time, name string, custom Customization) {
	*c = Time(v, name, custom)
}

// IfUTC fails when the value's location is time.UTC.
func (c TimeChain) IfUTC() TimeChain {
	if c.live() && c.value.Location() == time.UTC {
		c.invalid(reason.TimeUTC, "Value should not be UTC.")
	}
	return c
}

// IfNotUTC fails unless the value's location is time.UTC.
func (c TimeChain) IfNotUTC() TimeChain {
	if c.live() && c.value.Location() != time.UTC {
		c.invalid(reason.TimeNotUTC, "Value should be UTC.")
	}
	return c
}

// IfLocal fails when the value's location is time.Local.
func (c TimeChain) IfLocal() TimeChain {
	if c.live() && c.value.Location() == time.Local {
		c.invalid(reason.TimeLocal, "Value should not be local.")
	}
	return c
}

// IfNotLocal fails unless the value's location is time.Local.
func (c TimeChain) IfNotLocal() TimeChain {
	if c.live() && c.value.Location() != time.Local {
		c.invalid(reason.TimeNotLocal, "Value should be local.")
	}
	return c
}

// IfBefore fails when the value is before limit.
func (c TimeChain) IfBefore(limit time.Time) TimeChain {
	if c.live() && c.value.Before(limit) {
		c.outOfRange(reason.TimeBefore, c.value,
			fmt.Sprintf("Value should not be before %s.", limit.Format(time.RFC3339Nano)),
			WithDetailOption("limit", limit))
	}
	return c
}

// IfAfter fails when the value is after limit.
func (c TimeChain) IfAfter(limit time.Time) TimeChain {
	if c.live() && c.value.After(limit) {
		c.outOfRange(reason.TimeAfter, c.value,
			fmt.Sprintf("Value should not be after %s.", limit.Format(time.RFC3339Nano)),
			WithDetailOption("limit", limit))
	}
	return c
}

// IfOutOfRange fails unless from <= value <= to.
func (c TimeChain) IfOutOfRange(from, to time.Time) TimeChain {
	if c.live() && (c.value.Before(from) || c.value.After(to)) {
		c.outOfRange(reason.TimeOutOfRange, c.value,
			fmt.Sprintf("Value should be between %s and %s.",
				from.Format(time.RFC3339Nano), to.Format(time.RFC3339Nano)),
			WithDetailOption("min", from), WithDetailOption("max", to))
	}
	return c
}

// IfZero fails for the zero time.
func (c TimeChain) IfZero() TimeChain {
	if c.live() && c.value.IsZero() {
		c.invalid(reason.TimeZero, "Value should not be zero.")
	}
	return c
}

// IfNotZero fails unless the value is the zero time.
func (c TimeChain) IfNotZero() TimeChain {
	if c.live() && !c.value.IsZero() {
		c.invalid(reason.TimeNotZero, "Value should be zero.")
	}
	return c
}
