package sixx

import (
	"fmt"
	"strings"

	"github.com/flprog-tools/ino2ubi/internal/block"
)

// writer emits SIXX elements with tab indentation and sequential sixx.id
// allocation. Ids are handed out in emission order, which keeps the output
// stable across runs.
type writer struct {
	b      strings.Builder
	nextID int
	depth  int
}

func (w *writer) id() int {
	w.nextID++
	return w.nextID
}

func (w *writer) indent() {
	for i := 0; i < w.depth; i++ {
		w.b.WriteByte('\t')
	}
}

func (w *writer) startTag(id int, name, typ, env string) {
	w.b.WriteString("<sixx.object ")
	if id > 0 {
		fmt.Fprintf(&w.b, `sixx.id="%d" `, id)
	}
	if name != "" {
		fmt.Fprintf(&w.b, `sixx.name="%s" `, name)
	}
	fmt.Fprintf(&w.b, `sixx.type="%s" sixx.env="%s" >`, typ, env)
}

// open writes an opening element and increases the nesting depth.
func (w *writer) open(id int, name, typ, env string) {
	w.indent()
	w.startTag(id, name, typ, env)
	w.b.WriteByte('\n')
	w.depth++
}

func (w *writer) close() {
	w.depth--
	w.indent()
	w.b.WriteString("</sixx.object>\n")
}

// leaf writes a one-line element. content must already be escaped.
func (w *writer) leaf(id int, name, typ, env, content string) {
	w.indent()
	w.startTag(id, name, typ, env)
	w.b.WriteString(content)
	w.b.WriteString("</sixx.object>\n")
}

// str writes a Core String leaf with an allocated id, escaping the value.
// The id is returned so nameCash-style idrefs can point back at it.
func (w *writer) str(name, value string) int {
	id := w.id()
	w.leaf(id, name, "String", "Core", Escape(value))
	return id
}

func (w *writer) boolFlag(name string, v bool) {
	typ := "False"
	if v {
		typ = "True"
	}
	w.indent()
	fmt.Fprintf(&w.b, `<sixx.object sixx.name="%s" sixx.type="%s" sixx.env="Core" />`+"\n", name, typ)
}

func (w *writer) idref(name string, ref int) {
	w.indent()
	fmt.Fprintf(&w.b, `<sixx.object sixx.name="%s" sixx.idref="%d" />`+"\n", name, ref)
}

func (w *writer) emptyColl(name string) {
	w.indent()
	fmt.Fprintf(&w.b, `<sixx.object sixx.id="%d" sixx.name="%s" sixx.type="OrderedCollection" sixx.env="Core" ></sixx.object>`+"\n", w.id(), name)
}

func (w *writer) undefined() {
	w.indent()
	w.b.WriteString(`<sixx.object sixx.type="UndefinedObject" sixx.env="Core" />` + "\n")
}

// dataType writes the data-type object with its instance collection.
func (w *writer) dataType(t block.Type) {
	class := block.SchemaClass(t)
	w.open(w.id(), "type", class+" class", "Arduino")
	w.open(w.id(), "instanceCollection", "OrderedCollection", "Core")
	w.open(w.id(), "", class, "Arduino")
	w.close()
	w.close()
	w.close()
}
