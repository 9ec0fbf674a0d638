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

// fieldChain is satisfied by pointers to the typed chains of this package.
type fieldChain[P, C any] interface {
	*C
	bind(v P, name string, custom Customization)
	failure() error
}

// Field validates a property of parent's value.
//
// It lifts get(parent.Value()) into the typed chain C named
// "{parent name}: {accessor}" with parent's customization, runs checks on it
// and records the first failure on parent, which is returned:
//
//	c := dguard.That(person, "person")
//	c = dguard.Field(c, "p.Name", func(p Person) string { return p.Name },
//		func(s dguard.StringChain) dguard.StringChain { return s.IfWhiteSpace() })
//
// A nil accessor result lifted into a nilable chain raises the null-argument
// kind under the derived name. get is not called once parent has failed.
func Field[T, P, C any, PC fieldChain[P, C]](parent ValueChain[T], accessor string, get func(T) P, checks func(C) C) ValueChain[T] {
	if !parent.live() {
		return parent
	}
	var sub C
	PC(&sub).bind(get(parent.value), fieldName(parent.name, accessor), parent.custom)
	sub = checks(sub)
	if err := PC(&sub).failure(); err != nil {
		parent.err = err
	}
	return parent
}

func fieldName(parent, accessor string) string {
	if parent == "" {
		return accessor
	}
	return parent + ": " + accessor
}
