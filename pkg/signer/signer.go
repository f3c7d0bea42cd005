package signer

import (
	"crypto/md5"
	"encoding/hex"
	"sort"
	"strings"

	"github.com/daniilr/yandex-delivery-go/pkg/param"
)

// Canonicalize linearizes a parameter tree into the signing string.
//
// Scalars contribute their canonical text. Sequences contribute their
// non-zero items in order. Mappings contribute their non-zero values in
// ascending key order, regardless of insertion order. Nothing separates the
// fragments: the result is a single delimiter-free string, identical for any
// two logically equal trees. The remote server rebuilds the same string from
// the same data, so the traversal order here is part of the wire contract.
func Canonicalize(v param.Value) string {
	switch v.Kind() {
	case param.KindScalar:
		return v.Text()

	case param.KindSequence:
		var b strings.Builder
		for _, item := range v.Items() {
			if item.IsZero() {
				continue
			}
			b.WriteString(Canonicalize(item))
		}
		return b.String()

	case param.KindMapping:
		members := v.Members()
		sort.Slice(members, func(i, j int) bool {
			return members[i].Key < members[j].Key
		})
		var b strings.Builder
		for _, m := range members {
			if m.Value.IsZero() {
				continue
			}
			b.WriteString(Canonicalize(m.Value))
		}
		return b.String()

	default:
		return ""
	}
}

// Sign computes the request signature for a parameter tree and a method
// secret: the lowercase hex MD5 digest of Canonicalize(v) + secret.
//
// MD5 is mandated by the protocol; the server recomputes the digest with the
// same algorithm, so it must not be substituted.
func Sign(v param.Value, secret string) string {
	sum := md5.Sum([]byte(Canonicalize(v) + secret))
	return hex.EncodeToString(sum[:])
}
