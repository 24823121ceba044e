package sixx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscape(t *testing.T) {
	assert.Equal(t, "a &lt; b &amp;&amp; c &gt; d", Escape("a < b && c > d"))
	assert.Equal(t, "&quot;x&quot; &#39;y&#39;", Escape(`"x" 'y'`))
	assert.Equal(t, "plain", Escape("plain"))
	assert.Equal(t, "", Escape(""))
}

func TestEscapeRoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"plain text",
		"< > & \" '",
		"&amp;",
		"&lt;already escaped&gt;",
		"if (a < b && b > c) { x = \"s\"; }",
		"multi\nline\n\twith tabs",
		"юникод und Ümlaute",
		"&&&&&",
		"&#39;&quot;",
	}
	for _, s := range inputs {
		assert.Equal(t, s, Unescape(Escape(s)), "round trip of %q", s)
	}
}
