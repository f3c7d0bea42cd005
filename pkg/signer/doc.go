// Package signer authenticates delivery API requests with per-method
// shared secrets.
//
// Every request is signed by linearizing its parameter tree into a
// deterministic canonical string, appending the method's secret, and taking
// the lowercase hex MD5 digest:
//
//	data := param.Map(
//	    param.M("x", param.String("5")),
//	    param.M("y", param.Map(param.M("z", param.String("6")))),
//	)
//	sig := signer.Sign(data, "abc") // md5("56" + "abc")
//
// # Canonical Form
//
// Canonicalize walks the tree depth-first. Mapping keys are visited in
// ascending lexicographic order — insertion order never matters — while
// sequence items keep their given order. Zero values (see param.Value.IsZero)
// contribute nothing, not even a separator. The resulting string has no
// delimiters at all; only the values survive, concatenated.
//
// Both functions are pure and safe for concurrent use.
package signer
