// Copyright (c) 2024 John Millikin <john@john-millikin.com>
//
// Permission to use, copy, modify, and/or distribute this software for any
// purpose with or without fee is hereby granted.
//
// THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH
// REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY
// AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT,
// INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM
// LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR
// OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR
// PERFORMANCE OF THIS SOFTWARE.
//
// SPDX-License-Identifier: 0BSD

package ast

import (
	"iter"

	"github.com/google/btree"
)

// FieldMap is an ordered table of per-field values. Ids from different
// projects must not be mixed in one map.
//
// A FieldMap is not safe for concurrent writers.
type FieldMap[V any] struct {
	tree *btree.BTreeG[fieldMapEntry[V]]
}

type fieldMapEntry[V any] struct {
	id    FieldId
	value V
}

func NewFieldMap[V any]() *FieldMap[V] {
	return &FieldMap[V]{
		tree: btree.NewG[fieldMapEntry[V]](8, func(a, b fieldMapEntry[V]) bool {
			return a.id < b.id
		}),
	}
}

func (m *FieldMap[V]) Len() int {
	return m.tree.Len()
}

func (m *FieldMap[V]) Set(id FieldId, value V) {
	m.tree.ReplaceOrInsert(fieldMapEntry[V]{id, value})
}

func (m *FieldMap[V]) Get(id FieldId) (V, bool) {
	entry, ok := m.tree.Get(fieldMapEntry[V]{id: id})
	return entry.value, ok
}

func (m *FieldMap[V]) Delete(id FieldId) bool {
	_, ok := m.tree.Delete(fieldMapEntry[V]{id: id})
	return ok
}

// Range yields entries with lo <= id < hi in ascending order.
func (m *FieldMap[V]) Range(lo, hi FieldId) iter.Seq2[FieldId, V] {
	return func(yield func(FieldId, V) bool) {
		if lo >= hi {
			return
		}
		m.tree.AscendRange(
			fieldMapEntry[V]{id: lo},
			fieldMapEntry[V]{id: hi},
			func(entry fieldMapEntry[V]) bool {
				return yield(entry.id, entry.value)
			},
		)
	}
}

func (m *FieldMap[V]) All() iter.Seq2[FieldId, V] {
	return m.Range(FieldIdMin, FieldIdMax)
}
