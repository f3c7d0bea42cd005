// Package query serializes parameter trees into the delivery API's
// nested-bracket form encoding, e.g. {a: {b: "1"}} -> "a[b]=1&".
package query

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/daniilr/yandex-delivery-go/pkg/param"
)

// Encode serializes a parameter tree into the wire body.
//
// Mapping members are emitted in insertion order, sequences as mappings
// keyed by their stringified 0-based index. Nested keys use bracket
// notation (parent[child]); leaf keys and values are percent-encoded, the
// brackets the encoder adds are not. Zero values are skipped at every level.
//
// Every pair is followed by "&", including the last one. The trailing
// separator is a quirk of the original protocol client, preserved verbatim
// for bit-exact compatibility.
func Encode(v param.Value) string {
	var b strings.Builder
	encode(&b, v, "")
	return b.String()
}

func encode(b *strings.Builder, v param.Value, prefix string) {
	switch v.Kind() {
	case param.KindMapping:
		for _, m := range v.Members() {
			if m.Value.IsZero() {
				continue
			}
			encodeChild(b, m.Key, m.Value, prefix)
		}

	case param.KindSequence:
		// Indices are assigned before filtering, so a zero-valued item
		// still consumes its position.
		for i, item := range v.Items() {
			if item.IsZero() {
				continue
			}
			encodeChild(b, strconv.Itoa(i), item, prefix)
		}
	}
}

func encodeChild(b *strings.Builder, key string, v param.Value, prefix string) {
	if v.Kind() == param.KindScalar {
		name := escape(key)
		if prefix != "" {
			name = prefix + "[" + escape(key) + "]"
		}
		b.WriteString(name)
		b.WriteByte('=')
		b.WriteString(escape(v.Text()))
		b.WriteByte('&')
		return
	}

	child := key
	if prefix != "" {
		child = prefix + "[" + key + "]"
	}
	encode(b, v, child)
}

// escape percent-encodes s the way form bodies are encoded, except that a
// space becomes %20 rather than "+" to match the rest of the payload.
func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
