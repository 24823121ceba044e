package sketch

import (
	"regexp"
	"strings"

	"github.com/flprog-tools/ino2ubi/internal/block"
)

// Kind tags the result of classifying one statement line.
type Kind int

const (
	KindBlank Kind = iota
	KindDirective
	KindDeclaration
	KindObjectDecl
	KindOther
)

// Statement is one classified line of the global section.
type Statement struct {
	Kind Kind
	Pos  int
	Raw  string // comment-stripped, trimmed statement text
	Decl block.Declaration
}

var (
	includeRe = regexp.MustCompile(`^#include\b`)
	defineRe  = regexp.MustCompile(`^#define\s+([A-Za-z_][A-Za-z0-9_]*)\s+(.+?)\s*$`)

	declRe = regexp.MustCompile(`^(?:static\s+)?(?:const\s+)?` +
		`(unsigned\s+long|boolean|bool|int16_t|uint16_t|int32_t|uint32_t|uint8_t|int|long|float|double|byte|char|String)` +
		`\s+([A-Za-z_][A-Za-z0-9_]*)\s*(?:=\s*([^;]+?))?\s*;$`)

	objectRe = regexp.MustCompile(`^([A-Za-z_][A-Za-z0-9_:<>,\s]*?)\s+([A-Za-z_][A-Za-z0-9_]*)\s*` +
		`(?:\([^;]*\))?\s*(?:=\s*[^;]+)?;$`)

	roleRe = regexp.MustCompile(`(?i)^\s*(in|out|par)\s*$`)
	wsRe   = regexp.MustCompile(`\s+`)
)

// classify matches one comment-stripped line against the statement grammars.
// The order is fixed: directives, variable declarations, object
// instantiations, then the explicit skip bucket.
func classify(code string, pos int) Statement {
	trimmed := strings.TrimSpace(code)
	if trimmed == "" {
		return Statement{Kind: KindBlank, Pos: pos}
	}
	if includeRe.MatchString(trimmed) {
		return Statement{Kind: KindDirective, Pos: pos, Raw: trimmed}
	}
	if m := defineRe.FindStringSubmatch(trimmed); m != nil {
		return Statement{Kind: KindDirective, Pos: pos, Raw: "#define " + m[1] + " " + m[2]}
	}
	if m := declRe.FindStringSubmatch(trimmed); m != nil {
		keyword := wsRe.ReplaceAllString(m[1], " ")
		typ, _ := block.TypeForKeyword(keyword)
		return Statement{
			Kind: KindDeclaration,
			Pos:  pos,
			Raw:  trimmed,
			Decl: block.Declaration{
				Name:    m[2],
				Type:    typ,
				Keyword: keyword,
				Default: strings.TrimSpace(m[3]),
				Role:    block.RoleVariable,
				Pos:     pos,
			},
		}
	}
	if objectRe.MatchString(trimmed) {
		return Statement{Kind: KindObjectDecl, Pos: pos, Raw: trimmed}
	}
	return Statement{Kind: KindOther, Pos: pos, Raw: trimmed}
}

// roleHint maps a trailing line comment of the exact form "in", "out" or
// "par" (case-insensitive, optional whitespace) to a role.
func roleHint(comment string) (block.Role, bool) {
	m := roleRe.FindStringSubmatch(comment)
	if m == nil {
		return "", false
	}
	switch strings.ToLower(m[1]) {
	case "in":
		return block.RoleInput, true
	case "out":
		return block.RoleOutput, true
	case "par":
		return block.RoleParameter, true
	}
	return "", false
}

// splitComment separates code from comments in one source line. It returns
// the code with comments removed, the text of a trailing line comment when
// present, and whether a block comment remains open at end of line. String
// and character literals are honored so "//" inside a literal is not a
// comment start.
func splitComment(line string, inBlock bool) (code, lineComment string, stillOpen bool) {
	var b strings.Builder
	i, n := 0, len(line)
	for i < n {
		if inBlock {
			end := strings.Index(line[i:], "*/")
			if end < 0 {
				return b.String(), "", true
			}
			i += end + 2
			b.WriteByte(' ')
			inBlock = false
			continue
		}
		c := line[i]
		switch {
		case c == '"' || c == '\'':
			quote := c
			b.WriteByte(c)
			i++
			for i < n {
				if line[i] == '\\' && i+1 < n {
					b.WriteByte(line[i])
					b.WriteByte(line[i+1])
					i += 2
					continue
				}
				b.WriteByte(line[i])
				if line[i] == quote {
					i++
					break
				}
				i++
			}
		case c == '/' && i+1 < n && line[i+1] == '/':
			return b.String(), line[i+2:], false
		case c == '/' && i+1 < n && line[i+1] == '*':
			i += 2
			inBlock = true
		default:
			b.WriteByte(c)
			i++
		}
	}
	return b.String(), "", false
}
