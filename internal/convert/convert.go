// Package convert ties the sketch analyzer and the SIXX serializer into a
// single pure conversion step. All I/O stays with the caller; each call is
// independent and safe to run concurrently over different inputs.
package convert

import (
	"regexp"

	"github.com/bytedance/sonic"

	"github.com/flprog-tools/ino2ubi/internal/block"
	"github.com/flprog-tools/ino2ubi/internal/sixx"
	"github.com/flprog-tools/ino2ubi/internal/sketch"
)

// Request carries the user-confirmed conversion inputs.
type Request struct {
	Metadata    block.Metadata
	Overrides   block.Overrides
	EnableInput bool
}

// Result is the outcome of one conversion.
type Result struct {
	Document string
	Analysis *sketch.Analysis
	Notices  []sketch.Notice
}

// Convert analyzes sketch source and serializes it into a block document.
// When the request has no description, the sketch's leading comment is used.
// Aliased declarations are renamed inside the entry-point bodies so the
// emitted code refers to the block's port names.
func Convert(src string, req Request) (*Result, error) {
	a := sketch.Analyze(src)

	meta := req.Metadata
	if meta.Description == "" {
		meta.Description = a.LeadingComment
	}

	a = renameAliases(a, req.Overrides)

	doc, err := sixx.Generate(a, req.Overrides, meta, sixx.Options{EnableInput: req.EnableInput})
	if err != nil {
		return nil, err
	}
	return &Result{Document: doc, Analysis: a, Notices: a.Notices}, nil
}

// DumpAnalysis renders the analysis as indented JSON for inspection.
func (r *Result) DumpAnalysis() ([]byte, error) {
	return sonic.MarshalIndent(r.Analysis, "", "  ")
}

// renameAliases rewrites whole-word uses of renamed declarations inside the
// setup and loop bodies. The input analysis is left untouched.
func renameAliases(a *sketch.Analysis, ov block.Overrides) *sketch.Analysis {
	setup, loop := a.Setup, a.Loop
	changed := false
	for _, d := range a.Declarations {
		alias := ov.Alias(d)
		if alias == d.Name {
			continue
		}
		re, err := regexp.Compile(`\b` + regexp.QuoteMeta(d.Name) + `\b`)
		if err != nil {
			continue
		}
		setup = re.ReplaceAllString(setup, alias)
		loop = re.ReplaceAllString(loop, alias)
		changed = true
	}
	if !changed {
		return a
	}
	out := *a
	out.Setup = setup
	out.Loop = loop
	return &out
}
