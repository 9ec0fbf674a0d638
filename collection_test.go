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
	"iter"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/dguard/reason"
)

// counted yields 0..n-1 and records how many elements were pulled.
func counted(n int, pulled *int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := range n {
			*pulled++
			if !yield(i) {
				return
			}
		}
	}
}

// once yields its elements on the first traversal only.
func once[E any](xs ...E) iter.Seq[E] {
	used := false
	return func(yield func(E) bool) {
		if used {
			return
		}
		used = true
		for _, x := range xs {
			if !yield(x) {
				return
			}
		}
	}
}

func TestCollectionChain_Checks(t *testing.T) {
	one := 1
	tests := []struct {
		name   string
		err    error
		reason reason.Reason
		msg    string
	}{
		{"empty", Slice([]int{}, "l").IfEmpty().Err(), reason.CollectionEmpty, "Collection should not be empty."},
		{"not empty", Slice([]int{1}, "l").IfNotEmpty().Err(), reason.CollectionNotEmpty, "Collection should be empty."},
		{"count greater", Slice([]int{1, 2, 3}, "l").IfCountGreaterThan(2).Err(), reason.CollectionCountGreater, "Collection count should not be greater than 2."},
		{"count less", Slice([]int{1}, "l").IfCountLessThan(2).Err(), reason.CollectionCountLess, "Collection count should not be less than 2."},
		{"count equals", Slice([]int{1, 2}, "l").IfCountEquals(2).Err(), reason.CollectionCountEqual, "Collection count should not be equal to 2."},
		{"count not equals", Slice([]int{1}, "l").IfCountNotEquals(2).Err(), reason.CollectionCountNotEqual, "Collection count should be equal to 2."},
		{"nil elements", Slice([]*int{&one, nil}, "l").IfHasNilElements().Err(), reason.CollectionNilElement, "Collection should not have null elements."},
		{"contains", Slice([]int{1, 2}, "l").IfContains(2).Err(), reason.CollectionContains, "Collection should not contain element."},
		{"not contains", Slice([]int{1, 2}, "l").IfNotContains(3).Err(), reason.CollectionNotContains, "Collection should contain element."},
		{"contains once", Slice([]int{1, 2}, "l").IfContainsOnce(2).Err(), reason.CollectionContainsOnce, "Collection should not contain element only once."},
		{"not contains once", Slice([]int{2, 2}, "l").IfNotContainsOnce(2).Err(), reason.CollectionNotContainsOnce, "Collection should contain element only once."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ge := guardErr(t, tt.err)
			assert.Equal(t, tt.reason, ge.Reason)
			assert.Equal(t, tt.msg, ge.Message)
			assert.Equal(t, "l", ge.Param)
		})
	}
}

func TestCollectionChain_NilSliceIsNull(t *testing.T) {
	var s []string
	assert.ErrorIs(t, Slice(s, "s").IfEmpty().Err(), ErrNullArgument)
	assert.NoError(t, Slice([]string{}, "s").IfNotEmpty().Err())
}

func TestCollectionChain_StructuralEquality(t *testing.T) {
	type point struct{ X, Y int }
	pts := []point{{1, 2}, {3, 4}}
	assert.Error(t, Slice(pts, "pts").IfContains(point{3, 4}).Err())

	nested := [][]int{{1}, {2, 3}}
	assert.Error(t, Slice(nested, "n").IfContainsOnce([]int{2, 3}).Err())
}

func TestCollectionChain_NamedSliceType(t *testing.T) {
	type tags []string
	c := Slice(tags{"a", "b"}, "tags").IfCountGreaterThan(5)
	require.NoError(t, c.Err())
	assert.Equal(t, tags{"a", "b"}, c.Value())
}

func TestSeqChain_Checks(t *testing.T) {
	assert.Error(t, Seq(slices.Values([]int{}), "s").IfEmpty().Err())
	assert.Error(t, Seq(slices.Values([]int{1, 2, 3}), "s").IfCountGreaterThan(2).Err())
	assert.Error(t, Seq(slices.Values([]int{1, 2}), "s").IfCountEquals(2).Err())
	assert.Error(t, Seq(slices.Values([]int{1, 2, 2}), "s").IfNotContainsOnce(2).Err())
	assert.Error(t, Seq(slices.Values([]any{1, nil}), "s").IfHasNilElements().Err())
	assert.NoError(t, Seq(slices.Values([]int{1, 2, 3}), "s").IfCountGreaterThan(5).IfCountLessThan(3).Err())
	assert.ErrorIs(t, Seq[int](nil, "s").IfEmpty().Err(), ErrNullArgument)
}

func TestSeqChain_StopsEarly(t *testing.T) {
	tests := []struct {
		name  string
		check func(SeqChain[int]) SeqChain[int]
		fails bool
		max   int
	}{
		{"empty", func(c SeqChain[int]) SeqChain[int] { return c.IfEmpty() }, false, 1},
		{"count greater", func(c SeqChain[int]) SeqChain[int] { return c.IfCountGreaterThan(3) }, true, 4},
		{"count less", func(c SeqChain[int]) SeqChain[int] { return c.IfCountLessThan(5) }, false, 5},
		{"count equals", func(c SeqChain[int]) SeqChain[int] { return c.IfCountEquals(2) }, false, 3},
		{"count less than zero", func(c SeqChain[int]) SeqChain[int] { return c.IfCountLessThan(0) }, false, 0},
		{"contains", func(c SeqChain[int]) SeqChain[int] { return c.IfContains(2) }, true, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pulled := 0
			err := tt.check(Seq(counted(1000, &pulled), "s")).Err()
			assert.Equal(t, tt.fails, err != nil)
			assert.Equal(t, tt.max, pulled)
		})
	}
}

func TestSeqChain_ConsumesSingleUseSequence(t *testing.T) {
	c := Seq(once(1, 2, 3), "s")

	require.NoError(t, c.IfEmpty().Err())
	// The first traversal drained the sequence.
	assert.Error(t, c.IfEmpty().Err())
}
