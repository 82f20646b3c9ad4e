package safeinput

import (
	"regexp"
	"strings"
)

// tagRegexp matches anything that looks like an HTML tag: a '<', then
// any run of characters other than '>', then '>'.
var tagRegexp = regexp.MustCompile(`<[^>]*>`)

// SanitizeText returns raw with tag-like spans removed and p.Entities
// decoded. The result is meant to be inserted as plain text.
//
// Tags are stripped, entities decoded in table order, then tags stripped
// again so that brackets smuggled in as "&lt;" and "&gt;" cannot form
// markup. A consequence is that "a &lt;b&gt; c" becomes "a  c", and that
// "&amp;lt;" decodes only as far as "&lt;".
//
// This is best-effort. It does not handle attribute vectors, encoded
// null bytes or homoglyphs.
func (p *Policy) SanitizeText(raw string) string {
	if raw == "" {
		return ""
	}

	s := stripTags(raw)
	for _, e := range p.Entities {
		if e.Encoded == "" {
			continue
		}
		s = strings.ReplaceAll(s, e.Encoded, e.Decoded)
	}
	return stripTags(s)
}

func stripTags(s string) string {
	if !strings.Contains(s, "<") {
		return s
	}
	return tagRegexp.ReplaceAllString(s, "")
}
