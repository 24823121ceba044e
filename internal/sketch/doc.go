// Package sketch analyzes Arduino-dialect source text.
//
// The analyzer is a pure function over in-memory text: it extracts top-level
// variable declarations with their role hints, user-defined functions, the
// setup/loop entry-point bodies, and the verbatim declaration lines
// (directives and class instantiations) that FLProg carries unchanged.
//
// Recognition is deliberately lenient. Each candidate statement is classified
// by a small set of line-grammar matchers; anything no matcher recognizes is
// skipped and recorded as a notice, never raised as an error. The analyzer
// does not type-check or compile the input.
package sketch
