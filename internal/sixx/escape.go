package sixx

import "strings"

var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

var unescaper = strings.NewReplacer(
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&#39;", "'",
)

// Escape encodes the characters the SIXX schema treats as special.
func Escape(s string) string {
	return escaper.Replace(s)
}

// Unescape is the exact inverse of Escape.
func Unescape(s string) string {
	return unescaper.Replace(s)
}
