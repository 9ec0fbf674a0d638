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
	"net/url"
	"strconv"
	"strings"

	"dirpx.dev/dguard/reason"
)

// URLChain validates a *url.URL. Scheme comparisons ignore case.
type URLChain struct {
	Chain[*url.URL]
}

// URL starts a chain for u named name. A nil u raises the null-argument
// kind.
func URL(u *url.URL, name string, custom ...Customization) URLChain {
	c := URLChain{newChain(u, name, custom)}
	if u == nil {
		c.null()
	}
	return c
}

// ParseURL parses raw and starts a chain for the result. A parse error
// fails the chain with the general kind, wrapping the parser's error.
func ParseURL(raw, name string, custom ...Customization) URLChain {
	u, err := url.Parse(raw)
	c := URLChain{newChain(u, name, custom)}
	if err != nil {
		c.invalid(reason.URIParse, "Value should be a valid URI.",
			WithCauseOption(err), WithDetailOption("raw", raw))
	}
	return c
}

// With returns the chain with cu as its customization. A nil cu
// restores the defaults; a failure already recorded is kept.
func (c URLChain) With(cu Customization) URLChain {
	c.Chain = c.with(cu)
	return c
}

// Throw is With(Message(msg)).
func (c URLChain) Throw(msg string) URLChain { return c.With(Message(msg)) }

// ThrowFunc is With(Factory(f)).
func (c URLChain) ThrowFunc(f func() error) URLChain { return c.With(Factory(f)) }

// ThrowNamed is With(NamedFactory(f)).
func (c URLChain) ThrowNamed(f func(string) error) URLChain { return c.With(NamedFactory(f)) }

// OnlyInDebug mutes the chain in builds tagged dguard_release.
func (c URLChain) OnlyInDebug() URLChain {
	c.Chain = c.muteUnless(debugBuild)
	return c
}

func (c *URLChain) bind(v *url.URL, name string, custom Customization) {
	*c = URL(v, name, custom)
}

func (c URLChain) scheme(s string) bool {
	return strings.EqualFold(c.value.Scheme, s)
}

// port returns the explicit port, or the scheme's default for http and
// https. ok is false when neither is known.
func (c URLChain) port() (int, bool) {
	if p := c.value.Port(); p != "" {
		n, err := strconv.Atoi(p)
		return n, err == nil
	}
	switch {
	case c.scheme("http"):
		return 80, true
	case c.scheme("https"):
		return 443, true
	}
	return 0, false
}

// IfHttp fails when the scheme is http.
func (c URLChain) IfHttp() URLChain {
	if c.live() && c.scheme("http") {
		c.invalid(reason.URIHTTP, "Uri scheme should not be http.")
	}
	return c
}

// IfNotHttp fails unless the scheme is http.
func (c URLChain) IfNotHttp() URLChain {
	if c.live() && !c.scheme("http") {
		c.invalid(reason.URINotHTTP, "Uri scheme should be http.")
	}
	return c
}

// IfHttps fails when the scheme is https.
func (c URLChain) IfHttps() URLChain {
	if c.live() && c.scheme("https") {
		c.invalid(reason.URIHTTPS, "Uri scheme should not be https.")
	}
	return c
}

// IfNotHttps fails unless the scheme is https.
func (c URLChain) IfNotHttps() URLChain {
	if c.live() && !c.scheme("https") {
		c.invalid(reason.URINotHTTPS, "Uri scheme should be https.")
	}
	return c
}

// IfScheme fails when the scheme is s.
func (c URLChain) IfScheme(s string) URLChain {
	if c.live() && c.scheme(s) {
		c.invalid(reason.URISchemeEqual, fmt.Sprintf("Uri scheme should not be %s.", s))
	}
	return c
}

// IfNotScheme fails unless the scheme is s.
func (c URLChain) IfNotScheme(s string) URLChain {
	if c.live() && !c.scheme(s) {
		c.invalid(reason.URISchemeNotEqual, fmt.Sprintf("Uri scheme should be %s.", s))
	}
	return c
}

// IfAbsolute fails when the URL has a scheme.
func (c URLChain) IfAbsolute() URLChain {
	if c.live() && c.value.IsAbs() {
		c.invalid(reason.URIAbsolute, "Uri should be relative.")
	}
	return c
}

// IfRelative fails when the URL has no scheme.
func (c URLChain) IfRelative() URLChain {
	if c.live() && !c.value.IsAbs() {
		c.invalid(reason.URIRelative, "Uri should be absolute.")
	}
	return c
}

// IfPort fails when the port, explicit or the scheme's default, is p.
func (c URLChain) IfPort(p int) URLChain {
	if c.live() {
		if n, ok := c.port(); ok && n == p {
			c.invalid(reason.URIPortEqual, fmt.Sprintf("Uri port should not be %d.", p))
		}
	}
	return c
}

// IfNotPort fails unless the port is p. An unknown port fails.
func (c URLChain) IfNotPort(p int) URLChain {
	if c.live() {
		if n, ok := c.port(); !ok || n != p {
			c.invalid(reason.URIPortNotEqual, fmt.Sprintf("Uri port should be %d.", p))
		}
	}
	return c
}
