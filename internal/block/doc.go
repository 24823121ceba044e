// Package block defines the data model for FLProg user blocks.
//
// A block is the reusable unit produced for the FLProg visual editor. It is
// assembled from the pieces the sketch analyzer extracts: variable
// declarations with roles, custom functions, verbatim declaration lines, and
// the setup/loop entry-point bodies.
//
// Key Components:
//   - Declaration: a top-level sketch variable with its semantic type and role
//   - Role: classification as internal variable, input, output, or parameter
//   - Function: a user-defined function carried into the block verbatim
//   - Overrides: caller-supplied role/alias/default adjustments applied at
//     serialization time
//   - Metadata: user-facing block name, description, and version tag
package block
