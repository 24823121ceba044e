// Package sixx serializes an analyzed sketch into an FLProg user-block
// document (.ubi) in the SIXX XML schema.
//
// The serializer is deterministic: element ids are allocated sequentially in
// emission order and object identities are SHA1-derived from stable names,
// so identical inputs always produce byte-identical output. All text fields
// go through Escape, whose inverse Unescape reproduces the original string
// exactly.
package sixx
