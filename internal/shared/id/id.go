// Package id provides deterministic identifier generation for block
// documents.
//
// The SIXX schema requires UUID-shaped id fields on blocks, ports, and
// parameters. Serialization must stay byte-stable across runs, so ids are
// SHA1 name-based UUIDs derived from a fixed project namespace plus a stable
// path instead of random values: the same block always gets the same ids.
package id

import "github.com/google/uuid"

// namespace is the fixed UUID namespace for all generated identities.
var namespace = uuid.MustParse("8b7f2a54-1c3d-4f89-9b10-3e5a6d2c9e41")

func derive(parts ...string) string {
	data := make([]byte, 0, 64)
	for i, p := range parts {
		if i > 0 {
			data = append(data, 0)
		}
		data = append(data, p...)
	}
	return uuid.NewSHA1(namespace, data).String()
}

// Block returns the identity of the block itself.
func Block(name string) string {
	return derive("block", name)
}

// Port returns the identity of an input or output port.
// direction is "input" or "output".
func Port(blockName, direction, alias string) string {
	return derive("port", blockName, direction, alias)
}

// Parameter returns the identity of a configurable parameter.
func Parameter(blockName, alias string) string {
	return derive("parameter", blockName, alias)
}

// Adaptor returns the identity of a parameter's adaptor wrapper.
func Adaptor(blockName, alias string) string {
	return derive("adaptor", blockName, alias)
}
