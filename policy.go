package safeinput

import (
	"github.com/sirupsen/logrus"
)

// Entity is a single literal-to-literal replacement rule used by the text
// sanitizer.
type Entity struct {
	Encoded string
	Decoded string
}

// Policy defines which URL schemes are accepted and how text is decoded.
// A Policy must not be mutated after first use; it is then safe for
// concurrent use.
type Policy struct {
	// DangerousPrefixes are matched case-insensitively against the
	// trimmed URL before anything else. A match rejects the URL.
	DangerousPrefixes []string

	// SafePrefixes are matched case-insensitively after the dangerous
	// list. A match accepts the URL unchanged (apart from trimming).
	SafePrefixes []string

	// AllowBareRelative accepts URLs that matched neither list and
	// contain no colon at all, e.g. "images/a.png".
	AllowBareRelative bool

	// Entities is applied in order, each replacement global, between
	// the two tag-stripping passes of SanitizeText.
	Entities []Entity

	// Logger receives a warning for every rejected URL. Nil means
	// logrus.StandardLogger().
	Logger logrus.FieldLogger
}

// DefaultDangerousPrefixes are the schemes rejected by DefaultPolicy.
var DefaultDangerousPrefixes = []string{
	"javascript:",
	"data:text/html",
	"vbscript:",
	"file:",
	"about:",
}

// DefaultSafePrefixes are the schemes and relative markers accepted by
// DefaultPolicy.
var DefaultSafePrefixes = []string{
	"http://",
	"https://",
	"data:image/",
	"/",
	"./",
	"../",
}

// DefaultEntities is the fixed decode table. Order matters: "&amp;" is
// decoded after "&lt;" and "&gt;", so "&amp;lt;" becomes "&lt;" and not "<".
var DefaultEntities = []Entity{
	{"&lt;", "<"},
	{"&gt;", ">"},
	{"&amp;", "&"},
	{"&quot;", `"`},
	{"&#x27;", "'"},
	{"&#x2F;", "/"},
}

// DefaultPolicy returns a Policy that accepts http, https, data:image and
// relative URLs (including bare paths without a leading marker) and
// rejects javascript, vbscript, file, about and data:text/html.
func DefaultPolicy() *Policy {
	return &Policy{
		DangerousPrefixes: clone(DefaultDangerousPrefixes),
		SafePrefixes:      clone(DefaultSafePrefixes),
		AllowBareRelative: true,
		Entities:          append([]Entity(nil), DefaultEntities...),
	}
}

// StrictPolicy returns a Policy that only accepts https and rooted or
// dot-relative paths. Bare paths and data:image URLs are rejected.
func StrictPolicy() *Policy {
	return &Policy{
		DangerousPrefixes: clone(DefaultDangerousPrefixes),
		SafePrefixes:      []string{"https://", "/", "./", "../"},
		AllowBareRelative: false,
		Entities:          append([]Entity(nil), DefaultEntities...),
	}
}

var defaultPolicy = DefaultPolicy()

// SanitizeURL sanitizes raw with the default policy.
func SanitizeURL(raw string) (string, bool) {
	return defaultPolicy.SanitizeURL(raw)
}

// SanitizeText sanitizes raw with the default policy.
func SanitizeText(raw string) string {
	return defaultPolicy.SanitizeText(raw)
}

// SanitizeURLValue is SanitizeURL for values of unknown type.
func SanitizeURLValue(v any) (string, bool) {
	return defaultPolicy.SanitizeURLValue(v)
}

// SanitizeTextValue is SanitizeText for values of unknown type.
func SanitizeTextValue(v any) string {
	return defaultPolicy.SanitizeTextValue(v)
}

// SanitizeURLValue accepts a string or *string. Nil, a nil *string and
// every other type are treated as an absent URL.
func (p *Policy) SanitizeURLValue(v any) (string, bool) {
	s, ok := stringValue(v)
	if !ok {
		return "", false
	}
	return p.SanitizeURL(s)
}

// SanitizeTextValue accepts a string or *string. Anything else yields "".
func (p *Policy) SanitizeTextValue(v any) string {
	s, ok := stringValue(v)
	if !ok {
		return ""
	}
	return p.SanitizeText(s)
}

func (p *Policy) logger() logrus.FieldLogger {
	if p.Logger != nil {
		return p.Logger
	}
	return logrus.StandardLogger()
}

// --- helpers ---------------------------------------------------------

func stringValue(v any) (string, bool) {
	switch s := v.(type) {
	case string:
		return s, true
	case *string:
		if s == nil {
			return "", false
		}
		return *s, true
	}
	return "", false
}

func clone(s []string) []string {
	return append([]string(nil), s...)
}
