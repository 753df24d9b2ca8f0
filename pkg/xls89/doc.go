// Package xls89 encodes and decodes XLS-89 Multi-Purpose Token metadata.
// The XLS-89 convention stores token properties on-ledger as hex-encoded
// UTF-8 JSON with short keys (t=ticker, n=name, d=description, i=icon,
// ac=access control, as=asset class, in=issuer name, us=urls,
// ai=additional info).
//
// Metadata can be authored two ways: structured fields assembled with
// BuildObject, or a raw JSON document validated with ParseRaw. Either way
// the result is a sparse object; an empty object means the issuance
// carries no metadata field at all.
//
//	object := xls89.BuildObject(xls89.Fields{Ticker: "ABC", Name: "Demo"})
//	blob, err := xls89.EncodeHex(object)
//
// Specification: https://github.com/XRPLF/XRPL-Standards/tree/master/XLS-0089-multi-purpose-token-metadata-schema
package xls89
