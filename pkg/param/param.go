// Copyright (C) 2025 yandex-delivery-go contributors
//
// This file is part of yandex-delivery-go.
//
// yandex-delivery-go is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// yandex-delivery-go is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with yandex-delivery-go.  If not, see <https://www.gnu.org/licenses/>.

package param

import "strconv"

// Kind identifies the variant held by a Value.
type Kind int

const (
	// KindNull is the zero Value; it carries no data and is always zero-valued.
	KindNull Kind = iota

	// KindScalar is a textual, numeric, or boolean leaf.
	KindScalar

	// KindSequence is an order-preserving list of Values.
	KindSequence

	// KindMapping is an ordered list of unique string keys and their Values.
	KindMapping
)

// Value is the parameter tree every request is expressed in. A Value is one
// of null, scalar, sequence, or mapping, and is immutable once constructed:
// constructors copy their inputs and accessors return copies.
type Value struct {
	kind    Kind
	text    string
	zero    bool
	items   []Value
	members []Member
}

// Member is a single key/value pair of a mapping.
type Member struct {
	Key   string
	Value Value
}

// M builds a mapping member.
func M(key string, v Value) Member {
	return Member{Key: key, Value: v}
}

// Null returns the null Value. The zero Value is equivalent.
func Null() Value {
	return Value{kind: KindNull, zero: true}
}

// String returns a scalar Value holding s. The empty string is zero-valued.
func String(s string) Value {
	return Value{kind: KindScalar, text: s, zero: s == ""}
}

// Int returns a scalar Value rendering n in decimal. Zero is zero-valued.
func Int(n int) Value {
	return Int64(int64(n))
}

// Int64 returns a scalar Value rendering n in decimal. Zero is zero-valued.
func Int64(n int64) Value {
	return Value{kind: KindScalar, text: strconv.FormatInt(n, 10), zero: n == 0}
}

// Float returns a scalar Value rendering f in its minimal decimal form
// (no exponent, no trailing zeros). Zero is zero-valued.
func Float(f float64) Value {
	return Value{kind: KindScalar, text: strconv.FormatFloat(f, 'f', -1, 64), zero: f == 0}
}

// Bool returns a scalar Value rendering b as "true" or "false".
// False is zero-valued, matching the truthiness rule of the historical
// client; see IsZero.
func Bool(b bool) Value {
	return Value{kind: KindScalar, text: strconv.FormatBool(b), zero: !b}
}

// List returns a sequence Value over copies of items. Item order is
// caller-meaningful and preserved through encoding.
func List(items ...Value) Value {
	v := Value{kind: KindSequence}
	if len(items) > 0 {
		v.items = make([]Value, len(items))
		copy(v.items, items)
	}
	return v
}

// Map returns a mapping Value over members. Keys are unique: a repeated key
// replaces the earlier value in place, keeping the original position.
// Member order is the mapping's insertion order; it is preserved through
// encoding but not through canonicalization, which sorts by key.
func Map(members ...Member) Value {
	v := Value{kind: KindMapping}
	for _, m := range members {
		v.set(m)
	}
	return v
}

// With returns a new mapping extended by members, applying the same
// replace-in-place rule as Map. The receiver must be a mapping or null;
// the receiver itself is not modified.
func (v Value) With(members ...Member) Value {
	out := Value{kind: KindMapping}
	if len(v.members) > 0 {
		out.members = make([]Member, len(v.members))
		copy(out.members, v.members)
	}
	for _, m := range members {
		out.set(m)
	}
	return out
}

func (v *Value) set(m Member) {
	for i := range v.members {
		if v.members[i].Key == m.Key {
			v.members[i].Value = m.Value
			return
		}
	}
	v.members = append(v.members, m)
}

// Kind reports which variant v holds.
func (v Value) Kind() Kind {
	return v.kind
}

// Text returns the canonical textual form of a scalar Value. It is the
// empty string for every other kind.
func (v Value) Text() string {
	return v.text
}

// Items returns a copy of a sequence's items, in order.
func (v Value) Items() []Value {
	if len(v.items) == 0 {
		return nil
	}
	out := make([]Value, len(v.items))
	copy(out, v.items)
	return out
}

// Members returns a copy of a mapping's members, in insertion order.
func (v Value) Members() []Member {
	if len(v.members) == 0 {
		return nil
	}
	out := make([]Member, len(v.members))
	copy(out, v.members)
	return out
}

// Get returns the value stored under key in a mapping, and whether it was
// present.
func (v Value) Get(key string) (Value, bool) {
	for _, m := range v.members {
		if m.Key == key {
			return m.Value, true
		}
	}
	return Value{}, false
}

// Len returns the number of items of a sequence or members of a mapping.
func (v Value) Len() int {
	switch v.kind {
	case KindSequence:
		return len(v.items)
	case KindMapping:
		return len(v.members)
	default:
		return 0
	}
}

// IsZero reports whether v is empty under the protocol's filtering rule:
// null, the empty string, numeric zero, false, an empty sequence, or an
// empty mapping. Zero values are excluded from both the signing string and
// the encoded body, so a zero price or quantity never reaches the wire.
// This mirrors the remote server's view of the data and is load-bearing
// for signature compatibility; do not "fix" it.
func (v Value) IsZero() bool {
	switch v.kind {
	case KindScalar:
		return v.zero
	case KindSequence:
		return len(v.items) == 0
	case KindMapping:
		return len(v.members) == 0
	default:
		return true
	}
}
