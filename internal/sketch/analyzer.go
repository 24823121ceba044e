package sketch

import (
	"regexp"
	"strings"

	"github.com/flprog-tools/ino2ubi/internal/block"
)

// Notice records a line the analyzer saw but could not model.
type Notice struct {
	Line int    `json:"line"`
	Text string `json:"text"`
}

// Analysis is the immutable result of analyzing one sketch.
type Analysis struct {
	Declarations   []block.Declaration `json:"declarations"`
	Functions      []block.Function    `json:"functions"`
	Setup          string              `json:"setup"`
	Loop           string              `json:"loop"`
	DeclareLines   []string            `json:"declare_lines"`
	LeadingComment string              `json:"leading_comment,omitempty"`
	Notices        []Notice            `json:"notices,omitempty"`
}

// NoDeclarations reports the non-fatal warning condition of a sketch with no
// recognized top-level declarations.
func (a *Analysis) NoDeclarations() bool {
	return len(a.Declarations) == 0
}

var funcRe = regexp.MustCompile(
	`\b(void|unsigned\s+long|boolean|bool|int16_t|uint16_t|int32_t|uint32_t|uint8_t|int|long|float|double|byte|char|String)` +
		`\s+([A-Za-z_][A-Za-z0-9_]*)\s*\(([^)]*)\)\s*\{`)

// Analyze scans sketch source and extracts declarations, functions, the two
// lifecycle entry-point bodies, and verbatim declaration lines. It never
// fails: statements no grammar recognizes are skipped and reported as
// notices.
func Analyze(src string) *Analysis {
	a := &Analysis{LeadingComment: leadingComment(src)}

	type span struct{ start, end int }
	var cuts []span

	setupStart, loopStart := len(src), len(src)
	lastEnd := 0
	for _, m := range funcRe.FindAllStringSubmatchIndex(src, -1) {
		if m[0] < lastEnd {
			// Signature-shaped text inside an already captured body.
			continue
		}
		retType := wsRe.ReplaceAllString(src[m[2]:m[3]], " ")
		name := src[m[4]:m[5]]
		rawParams := strings.TrimSpace(src[m[6]:m[7]])
		body, end := matchBody(src, m[1])
		lastEnd = end

		switch name {
		case "setup":
			if m[0] < setupStart {
				setupStart = m[0]
				a.Setup = body
			}
		case "loop":
			if m[0] < loopStart {
				loopStart = m[0]
				a.Loop = body
			}
		default:
			a.Functions = append(a.Functions, block.Function{
				Name:       name,
				ReturnType: retType,
				RawParams:  rawParams,
				Params:     parseParams(rawParams),
				Body:       body,
				Excluded:   false,
				Pos:        lineAt(src, m[0]),
			})
			cuts = append(cuts, span{m[0], end})
		}
	}

	// The global section is everything before the first entry point. Custom
	// functions defined there are blanked out span-by-span so their local
	// declarations never leak into the top-level model; newlines are kept so
	// line positions stay true to the source.
	globalEnd := setupStart
	if loopStart < globalEnd {
		globalEnd = loopStart
	}
	global := []byte(src[:globalEnd])
	for _, c := range cuts {
		if c.start >= globalEnd {
			continue
		}
		end := c.end
		if end > globalEnd {
			end = globalEnd
		}
		for j := c.start; j < end; j++ {
			if global[j] != '\n' {
				global[j] = ' '
			}
		}
	}

	seen := make(map[string]bool)
	inBlock := false
	for pos, line := range strings.Split(string(global), "\n") {
		code, comment, open := splitComment(line, inBlock)
		inBlock = open

		st := classify(code, pos)
		switch st.Kind {
		case KindBlank:
		case KindDirective, KindObjectDecl:
			a.DeclareLines = append(a.DeclareLines, st.Raw)
		case KindDeclaration:
			decl := st.Decl
			if seen[decl.Name] {
				a.Notices = append(a.Notices, Notice{Line: pos, Text: "duplicate declaration of " + decl.Name + " skipped"})
				continue
			}
			seen[decl.Name] = true
			if role, ok := roleHint(comment); ok {
				decl.Role = role
			}
			a.Declarations = append(a.Declarations, decl)
		case KindOther:
			a.Notices = append(a.Notices, Notice{Line: pos, Text: "unrecognized statement skipped: " + st.Raw})
		}
	}

	if a.NoDeclarations() {
		a.Notices = append(a.Notices, Notice{Line: 0, Text: "no declarations found"})
	}
	return a
}

// matchBody captures the body of a brace-delimited block starting just after
// its opening brace. Braces inside string or character literals and comments
// do not count toward nesting. Returns the body with surrounding whitespace
// trimmed and the index just past the closing brace; an unbalanced block
// yields an empty body.
func matchBody(src string, open int) (string, int) {
	depth := 1
	i := open
	for i < len(src) {
		switch src[i] {
		case '/':
			if i+1 < len(src) && src[i+1] == '/' {
				nl := strings.IndexByte(src[i:], '\n')
				if nl < 0 {
					return "", len(src)
				}
				i += nl
			} else if i+1 < len(src) && src[i+1] == '*' {
				close := strings.Index(src[i+2:], "*/")
				if close < 0 {
					return "", len(src)
				}
				i += close + 3
			}
		case '"', '\'':
			quote := src[i]
			i++
			for i < len(src) && src[i] != quote && src[i] != '\n' {
				if src[i] == '\\' {
					i++
				}
				i++
			}
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return strings.TrimSpace(src[open:i]), i + 1
			}
		}
		i++
	}
	return "", len(src)
}

// parseParams splits a raw parameter list into type/name pairs. Entries that
// do not look like a pair are left out; the raw text is preserved elsewhere.
func parseParams(raw string) []block.Param {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var params []block.Param
	for _, p := range strings.Split(raw, ",") {
		fields := strings.Fields(p)
		if len(fields) < 2 {
			continue
		}
		params = append(params, block.Param{
			Type: strings.Join(fields[:len(fields)-1], " "),
			Name: fields[len(fields)-1],
		})
	}
	return params
}

func lineAt(src string, idx int) int {
	return strings.Count(src[:idx], "\n")
}
