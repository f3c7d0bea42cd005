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

package signer

import (
	"testing"

	"github.com/daniilr/yandex-delivery-go/pkg/param"
	"github.com/stretchr/testify/assert"
)

func TestCanonicalize_SortsKeysAndFlattens(t *testing.T) {
	// {x: "5", y: {z: "6"}} -> keys sorted x, y; y flattens to "6".
	data := param.Map(
		param.M("y", param.Map(param.M("z", param.String("6")))),
		param.M("x", param.String("5")),
	)

	assert.Equal(t, "56", Canonicalize(data))
}

func TestCanonicalize_DeterministicAcrossInsertionOrder(t *testing.T) {
	first := param.Map(
		param.M("a", param.String("1")),
		param.M("b", param.String("2")),
		param.M("c", param.String("3")),
	)
	second := param.Map(
		param.M("c", param.String("3")),
		param.M("a", param.String("1")),
		param.M("b", param.String("2")),
	)

	assert.Equal(t, Canonicalize(first), Canonicalize(second))
	assert.Equal(t, "123", Canonicalize(first))
}

func TestCanonicalize_SequenceKeepsOrder(t *testing.T) {
	data := param.Map(param.M("items", param.List(
		param.String("b"),
		param.String("a"),
	)))

	// Sequences are canonicalized in their given order, not sorted.
	assert.Equal(t, "ba", Canonicalize(data))
}

func TestCanonicalize_SkipsZeroValues(t *testing.T) {
	data := param.Map(
		param.M("name", param.String("box")),
		param.M("price", param.Float(0)),
		param.M("comment", param.String("")),
		param.M("tags", param.List()),
		param.M("extra", param.Map()),
		param.M("count", param.Int(2)),
	)

	assert.Equal(t, "2box", Canonicalize(data))
}

func TestCanonicalize_SkipsZeroSequenceItems(t *testing.T) {
	data := param.List(
		param.String("a"),
		param.String(""),
		param.Int(0),
		param.String("b"),
	)

	// No separator is contributed by the skipped items.
	assert.Equal(t, "ab", Canonicalize(data))
}

func TestCanonicalize_Scalar(t *testing.T) {
	assert.Equal(t, "5", Canonicalize(param.Int(5)))
	assert.Equal(t, "", Canonicalize(param.Null()))
}

func TestSign_KnownVector(t *testing.T) {
	// canonical "56" + secret "abc" -> md5("56abc")
	data := param.Map(
		param.M("x", param.String("5")),
		param.M("y", param.Map(param.M("z", param.String("6")))),
	)

	assert.Equal(t, "aba3fa0cc39bab2779fab33417e9ab5c", Sign(data, "abc"))
}

func TestSign_LowercaseHex32(t *testing.T) {
	sig := Sign(param.Map(param.M("a", param.String("1"))), "secret")

	assert.Len(t, sig, 32)
	assert.Regexp(t, "^[0-9a-f]{32}$", sig)
}

func TestSign_SensitiveToRetainedValues(t *testing.T) {
	base := param.Map(
		param.M("a", param.String("1")),
		param.M("b", param.String("2")),
	)
	changed := param.Map(
		param.M("a", param.String("1")),
		param.M("b", param.String("3")),
	)

	assert.NotEqual(t, Sign(base, "s"), Sign(changed, "s"))
}

func TestSign_InsensitiveToZeroValues(t *testing.T) {
	base := param.Map(
		param.M("a", param.String("1")),
		param.M("b", param.String("")),
	)
	changed := param.Map(
		param.M("a", param.String("1")),
		param.M("b", param.Int(0)),
	)

	// Swapping one zero value for another leaves the signature alone.
	assert.Equal(t, Sign(base, "s"), Sign(changed, "s"))
}

func TestSign_SensitiveToSecret(t *testing.T) {
	data := param.Map(param.M("a", param.String("1")))

	assert.NotEqual(t, Sign(data, "s1"), Sign(data, "s2"))
}
