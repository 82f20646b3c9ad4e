// Package safeinput defends a rendering layer against injected markup
// and unsafe URL schemes in untrusted strings.
//
// # Overview
//
// safeinput has two sanitizers, both pure and total:
//   - [SanitizeURL] classifies a candidate link target or image source
//     and returns it trimmed, or reports it as absent.
//   - [SanitizeText] strips tag-like spans and decodes a fixed table of
//     six HTML entities so the result can be shown as plain text.
//
// Neither returns an error or panics. Malformed and malicious input is a
// normal case: a rejected URL is reported as ("", false) and text always
// comes back as a string, possibly empty.
//
// # Policies
//
// A [Policy] controls:
//   - Which prefixes reject a URL outright ([Policy.DangerousPrefixes])
//   - Which prefixes accept it ([Policy.SafePrefixes])
//   - Whether colon-free bare paths are accepted ([Policy.AllowBareRelative])
//   - The ordered entity table used by the text sanitizer ([Policy.Entities])
//   - Where rejection warnings go ([Policy.Logger])
//
// Dangerous prefixes are checked first, then safe prefixes, then the
// bare-path fallback. Two built-in policies are provided:
//   - [DefaultPolicy] — http, https, data:image and any relative path.
//   - [StrictPolicy] — https and rooted or dot-relative paths only.
//
// [LoadConfig] builds the same settings from a YAML file and SAFEINPUT_*
// environment variables.
//
// # Rendering
//
// [Link], [Image] and [TextNode] build golang.org/x/net/html nodes that
// follow the contract for callers: a rejected URL omits the attribute
// instead of substituting a default.
//
// # Security
//
// This is narrow, best-effort defusal. It is not an HTML sanitizer: it
// does not parse markup, does not filter attributes and does not defend
// against every encoding trick. Pair with contextual escaping in the
// template layer and a Content Security Policy.
//
// # Thread Safety
//
// All functions are safe for concurrent use. Policy structs should not be
// mutated after first use.
//
// # Example
//
//	href, ok := safeinput.SanitizeURL(userURL)
//	if ok {
//		safeinput.SetAttr(anchor, "href", href)
//	}
//	label := safeinput.SanitizeText(userLabel)
package safeinput
