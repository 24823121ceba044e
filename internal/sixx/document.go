package sixx

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/flprog-tools/ino2ubi/internal/block"
	"github.com/flprog-tools/ino2ubi/internal/shared/id"
	"github.com/flprog-tools/ino2ubi/internal/sketch"
)

// ErrMissingRequiredField is returned when a required metadata field is
// empty at serialization time.
var ErrMissingRequiredField = errors.New("missing required field")

// Options adjusts document generation.
type Options struct {
	// EnableInput adds a boolean En input and wraps the loop body so the
	// block only runs while En is high.
	EnableInput bool
}

// FLProg assigns numeric source ids to ports in fixed bands.
const (
	inputIDBase   = 119328430
	inputIDBaseEn = 119329430
	outputIDBase  = 153438280
	portIDStride  = 1000
)

type boundDecl struct {
	alias   string
	typ     block.Type
	keyword string
	def     string
}

// Generate emits the SIXX document for an analyzed sketch. Role, alias, and
// default overrides are applied here; the analysis itself is never mutated.
func Generate(a *sketch.Analysis, ov block.Overrides, meta block.Metadata, opts Options) (string, error) {
	if strings.TrimSpace(meta.Name) == "" {
		return "", fmt.Errorf("block name: %w", ErrMissingRequiredField)
	}

	var inputs, outputs, params, state []boundDecl
	for _, d := range a.Declarations {
		bd := boundDecl{
			alias:   ov.Alias(d),
			typ:     d.Type,
			keyword: d.Keyword,
			def:     ov.Default(d),
		}
		switch ov.Role(d) {
		case block.RoleInput:
			inputs = append(inputs, bd)
		case block.RoleOutput:
			outputs = append(outputs, bd)
		case block.RoleParameter:
			params = append(params, bd)
		default:
			state = append(state, bd)
		}
	}

	setup := rstripLines(a.Setup)
	loop := rstripLines(a.Loop)
	if opts.EnableInput {
		loop = "if(En)\n{\n" + loop + "\n}"
	}

	w := &writer{}
	w.b.WriteString(`<?xml version="1.0" encoding="utf-16"?>` + "\n")
	w.open(w.id(), "", "BlocksLibraryElement", "Arduino")
	blockRef := w.id()
	w.open(blockRef, "typeClass", "CodeUserBlock", "Arduino")

	// Metadata: identity, name, description, version.
	w.leaf(w.id(), "id", "String", "Core", id.Block(meta.Name))
	w.emptyColl("blocks")
	w.str("label", meta.Name)
	w.str("name", meta.Name)
	w.open(w.id(), "info", "Text", "Core")
	w.str("string", meta.Description)
	w.open(w.id(), "runs", "RunArray", "Core")
	w.open(w.id(), "runs", "Array", "Core")
	w.leaf(w.id(), "", "SmallInteger", "Core", "50")
	w.close()
	w.open(w.id(), "values", "Array", "Core")
	w.undefined()
	w.close()
	w.close()
	w.close()
	w.str("version", meta.Version)

	// Ports and parameters, in source order within each collection.
	w.open(w.id(), "inputs", "OrderedCollection", "Core")
	srcID := inputIDBase
	if opts.EnableInput {
		w.port(blockRef, srcID, "En", block.TypeBoolean, "", true, id.Port(meta.Name, "input", "En"))
		srcID = inputIDBaseEn
	}
	for i, in := range inputs {
		w.port(blockRef, srcID+i*portIDStride, in.alias, in.typ, in.def, true, id.Port(meta.Name, "input", in.alias))
	}
	w.close()

	w.open(w.id(), "outputs", "OrderedCollection", "Core")
	for i, out := range outputs {
		w.port(blockRef, outputIDBase+i*portIDStride, out.alias, out.typ, out.def, false, id.Port(meta.Name, "output", out.alias))
	}
	w.close()

	w.open(w.id(), "parametrs", "OrderedCollection", "Core")
	for _, p := range params {
		w.parameter(p.alias, p.typ, p.def, id.Parameter(meta.Name, p.alias), id.Adaptor(meta.Name, p.alias))
	}
	w.close()

	// Internal state: declarations kept off the block's external face.
	w.open(w.id(), "variables", "OrderedCollection", "Core")
	for _, v := range state {
		w.stateVar(v.alias, v.keyword, v.def)
	}
	w.close()

	// Code sections, fixed order: declarations first, then setup, loop, and
	// custom functions.
	w.open(w.id(), "declareCodePart", "CodeUserBlockDeclareCodePart", "Arduino")
	w.open(w.id(), "code", "OrderedCollection", "Core")
	for _, line := range a.DeclareLines {
		w.declareLine(line)
	}
	w.close()
	w.close()

	w.open(w.id(), "setupCodePart", "CodeUserBlockSetupCodePart", "Arduino")
	w.leaf(w.id(), "code", "String", "Core", Escape(setup))
	w.close()

	w.open(w.id(), "loopCodePart", "CodeUserBlockLoopCodePart", "Arduino")
	w.leaf(w.id(), "code", "String", "Core", Escape(loop))
	w.close()

	// "Functuin" is the schema's own spelling.
	w.open(w.id(), "functionCodePart", "CodeUserBlockFunctuinCodePart", "Arduino")
	w.open(w.id(), "code", "OrderedCollection", "Core")
	for _, fn := range a.Functions {
		if fn.Excluded {
			continue
		}
		w.function(fn)
	}
	w.close()
	w.close()

	w.emptyColl("userLibraries")
	w.boolFlag("notCanManyUse", false)
	w.close()
	w.close()

	return w.b.String(), nil
}

// port writes one bound input or output entry.
func (w *writer) port(blockRef, srcID int, alias string, t block.Type, def string, isInput bool, uid string) {
	w.open(w.id(), "", "InputsOutputsAdaptorForUserBlock", "Arduino")
	w.open(w.id(), "object", "UniversalBlockInputOutput", "Arduino")
	w.leaf(w.id(), "id", "SmallInteger", "Core", strconv.Itoa(srcID))
	w.idref("block", blockRef)
	w.dataType(t)
	w.boolFlag("isInput", isInput)
	nameID := w.str("name", alias)
	w.boolFlag("isNot", false)
	w.idref("nameCash", nameID)
	w.boolFlag("hasDefaultValue", def != "")
	if def != "" {
		w.defaultValue(t, def)
	}
	w.close()
	w.str("comment", "")
	w.leaf(w.id(), "id", "String", "Core", uid)
	w.close()
}

// parameter writes one configurable parameter entry.
func (w *writer) parameter(alias string, t block.Type, def, uid, adaptUID string) {
	w.open(w.id(), "", "InputsOutputsAdaptorForUserBlock", "Arduino")
	w.open(w.id(), "object", "UserBlockParametr", "Arduino")
	w.str("name", alias)
	w.dataType(t)
	w.boolFlag("hasDefaultValue", true)
	w.defaultValue(t, def)
	w.boolFlag("hasUpRange", false)
	w.boolFlag("hasDownRange", false)
	w.str("comment", "")
	w.leaf(w.id(), "id", "String", "Core", uid)
	w.close()
	w.leaf(w.id(), "id", "String", "Core", adaptUID)
	w.close()
}

// defaultValue writes the typed default element. Booleans are normalized to
// 0/1; numeric defaults fall back to 0 when the sketch gave none.
func (w *writer) defaultValue(t block.Type, def string) {
	switch t {
	case block.TypeText:
		w.str("stringDefaultValue", def)
	case block.TypeBoolean:
		v := "0"
		switch strings.ToLower(strings.TrimSpace(def)) {
		case "true", "1":
			v = "1"
		}
		w.leaf(w.id(), "numberDefaultValue", "SmallInteger", "Core", v)
	case block.TypeFloat:
		if def == "" {
			def = "0"
		}
		w.leaf(w.id(), "numberDefaultValue", "Float", "Core", Escape(def))
	default:
		if def == "" {
			def = "0"
		}
		w.leaf(w.id(), "numberDefaultValue", "SmallInteger", "Core", Escape(def))
	}
}

// declareLine writes one verbatim declaration-section entry.
func (w *writer) declareLine(line string) {
	w.open(w.id(), "", "CodeUserBlockDeclareStandartBlock", "Arduino")
	w.str("name", "")
	w.str("lastPart", "")
	w.str("firstPart", strings.TrimSpace(line))
	w.close()
}

// stateVar writes one internal-state entry.
func (w *writer) stateVar(alias, keyword, def string) {
	w.open(w.id(), "", "CodeUserBlockDeclareStandartBlock", "Arduino")
	w.str("name", strings.TrimSpace(alias))
	last := ";"
	if def != "" {
		last = " = " + Escape(strings.TrimSpace(def)) + ";"
	}
	w.leaf(w.id(), "lastPart", "String", "Core", last)
	w.str("firstPart", keyword)
	w.close()
}

// function writes one custom-function entry.
func (w *writer) function(fn block.Function) {
	w.open(w.id(), "", "CodeUserBlockFunction", "Arduino")
	w.str("functionBody", rstripLines(fn.Body))
	w.open(w.id(), "parsesFunctionName", "CodeUserBlockFunctionName", "Arduino")
	w.str("declare", fn.ReturnType)
	w.str("name", fn.Name)
	w.open(w.id(), "parametrs", "OrderedCollection", "Core")
	for _, p := range fn.Params {
		w.open(w.id(), "", "CodeUserBlockFunctionParametr", "Arduino")
		w.str("declare", p.Type)
		w.str("name", p.Name)
		w.close()
	}
	w.close()
	w.close()
	w.close()
}

// rstripLines trims trailing whitespace from every line of a code body.
func rstripLines(s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " \t\r")
	}
	return strings.Join(lines, "\n")
}
