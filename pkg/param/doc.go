// Package param defines the parameter tree all delivery API calls are
// expressed in.
//
// A Value is a tagged union of null, scalar, sequence, and mapping. The same
// tree flows through the whole request pipeline: it is linearized by the
// signer, serialized by the query encoder, and never mutated by either.
//
// # Building Trees
//
//	data := param.Map(
//	    param.M("city_from", param.String("Москва")),
//	    param.M("dimensions", param.Map(
//	        param.M("weight", param.Float(1.5)),
//	        param.M("width", param.Int(10)),
//	    )),
//	    param.M("tags", param.List(param.String("fragile"))),
//	)
//
// # Ordering
//
// Mapping members remember their insertion order, which the query encoder
// preserves on the wire. Canonicalization ignores it and sorts by key, so two
// logically equal mappings always sign identically.
//
// # Zero Values
//
// IsZero defines the protocol's emptiness rule: null, "", numeric zero,
// false, and empty containers are all "empty" and are dropped from both the
// signing string and the encoded body. The rule silently loses legitimate
// zero-valued fields (a zero price, a zero quantity); it is kept anyway
// because the remote server applies the same rule when recomputing the
// signature.
package param
