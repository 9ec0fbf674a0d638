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

package reason

// Null-failure reasons.
const (
	NullValue Reason = "null.value"
)

// Value (generic) reasons.
const (
	ValueEqual      Reason = "value.equal"
	ValueNotEqual   Reason = "value.not_equal"
	ValueDefault    Reason = "value.default"
	ValueNotDefault Reason = "value.not_default"
	ValuePredicate  Reason = "value.predicate"
	TypeMatch       Reason = "type.match"
	TypeMismatch    Reason = "type.mismatch"
)

// String reasons.
const (
	StringEmpty          Reason = "string.empty"
	StringNotEmpty       Reason = "string.not_empty"
	StringWhiteSpace     Reason = "string.white_space"
	StringNotWhiteSpace  Reason = "string.not_white_space"
	StringLonger         Reason = "string.length.longer"
	StringShorter        Reason = "string.length.shorter"
	StringLengthEqual    Reason = "string.length.equal"
	StringLengthNotEqual Reason = "string.length.not_equal"
	StringEqual          Reason = "string.equal"
	StringNotEqual       Reason = "string.not_equal"
	StringContains       Reason = "string.contains"
	StringNotContains    Reason = "string.not_contains"
	StringPrefix         Reason = "string.prefix"
	StringNotPrefix      Reason = "string.not_prefix"
	StringSuffix         Reason = "string.suffix"
	StringNotSuffix      Reason = "string.not_suffix"
	StringMatch          Reason = "string.match"
	StringNotMatch       Reason = "string.not_match"
)

// Number reasons.
const (
	NumberGreater        Reason = "number.greater"
	NumberGreaterOrEqual Reason = "number.greater_or_equal"
	NumberLess           Reason = "number.less"
	NumberLessOrEqual    Reason = "number.less_or_equal"
	NumberOutOfRange     Reason = "number.out_of_range"
	NumberInRange        Reason = "number.in_range"
	NumberPositive       Reason = "number.positive"
	NumberNegative       Reason = "number.negative"
	NumberEqual          Reason = "number.equal"
	NumberNotEqual       Reason = "number.not_equal"
	NumberZero           Reason = "number.zero"
	NumberNotZero        Reason = "number.not_zero"
)

// Bool reasons.
const (
	BoolTrue  Reason = "bool.true"
	BoolFalse Reason = "bool.false"
)

// Collection reasons, shared by slices and sequences.
const (
	CollectionEmpty           Reason = "collection.empty"
	CollectionNotEmpty        Reason = "collection.not_empty"
	CollectionCountGreater    Reason = "collection.count.greater"
	CollectionCountLess       Reason = "collection.count.less"
	CollectionCountEqual      Reason = "collection.count.equal"
	CollectionCountNotEqual   Reason = "collection.count.not_equal"
	CollectionNilElement      Reason = "collection.nil_element"
	CollectionContains        Reason = "collection.contains"
	CollectionNotContains     Reason = "collection.not_contains"
	CollectionContainsOnce    Reason = "collection.contains_once"
	CollectionNotContainsOnce Reason = "collection.not_contains_once"
)

// Map reasons.
const (
	MapEmpty        Reason = "map.empty"
	MapNotEmpty     Reason = "map.not_empty"
	MapKeyPresent   Reason = "map.key.present"
	MapKeyMissing   Reason = "map.key.missing"
	MapCountGreater Reason = "map.count.greater"
	MapCountLess    Reason = "map.count.less"
	MapNilValue     Reason = "map.nil_value"
)

// Enum reasons.
const (
	EnumUndefined Reason = "enum.undefined"
	EnumEqual     Reason = "enum.equal"
	EnumNotEqual  Reason = "enum.not_equal"
)

// Time reasons.
const (
	TimeUTC        Reason = "time.utc"
	TimeNotUTC     Reason = "time.not_utc"
	TimeLocal      Reason = "time.local"
	TimeNotLocal   Reason = "time.not_local"
	TimeBefore     Reason = "time.before"
	TimeAfter      Reason = "time.after"
	TimeOutOfRange Reason = "time.out_of_range"
	TimeZero       Reason = "time.zero"
	TimeNotZero    Reason = "time.not_zero"
)

// URI reasons.
const (
	URIHTTP           Reason = "uri.scheme.http"
	URINotHTTP        Reason = "uri.scheme.not_http"
	URIHTTPS          Reason = "uri.scheme.https"
	URINotHTTPS       Reason = "uri.scheme.not_https"
	URISchemeEqual    Reason = "uri.scheme.equal"
	URISchemeNotEqual Reason = "uri.scheme.not_equal"
	URIAbsolute       Reason = "uri.absolute"
	URIRelative       Reason = "uri.relative"
	URIPortEqual      Reason = "uri.port.equal"
	URIPortNotEqual   Reason = "uri.port.not_equal"
	URIParse          Reason = "uri.parse"
)

// UUID reasons.
const (
	UUIDNil             Reason = "uuid.nil"
	UUIDNotNil          Reason = "uuid.not_nil"
	UUIDVersionEqual    Reason = "uuid.version.equal"
	UUIDVersionNotEqual Reason = "uuid.version.not_equal"
)
