package safeinput

import (
	"strings"

	"github.com/sirupsen/logrus"
)

// Classification is the outcome of matching a URL against a Policy's
// prefix lists.
type Classification int

const (
	// Unrecognized means neither list matched.
	Unrecognized Classification = iota
	// Safe means a safe prefix matched and no dangerous prefix did.
	Safe
	// Dangerous means a dangerous prefix matched.
	Dangerous
)

func (c Classification) String() string {
	switch c {
	case Safe:
		return "safe"
	case Dangerous:
		return "dangerous"
	default:
		return "unrecognized"
	}
}

// Classify trims raw and matches it case-insensitively against the
// dangerous prefixes, then the safe prefixes. It returns the
// classification and the prefix that matched, if any.
func (p *Policy) Classify(raw string) (Classification, string) {
	return p.classify(strings.ToLower(strings.TrimSpace(raw)))
}

func (p *Policy) classify(lower string) (Classification, string) {
	if lower == "" {
		return Unrecognized, ""
	}
	if prefix, ok := matchPrefix(lower, p.DangerousPrefixes); ok {
		return Dangerous, prefix
	}
	if prefix, ok := matchPrefix(lower, p.SafePrefixes); ok {
		return Safe, prefix
	}
	return Unrecognized, ""
}

// SanitizeURL returns the trimmed raw URL and true if p judges it safe to
// use as a link target or image source. Otherwise it logs a warning and
// returns "", false; callers must then omit the attribute rather than
// substitute a default.
func (p *Policy) SanitizeURL(raw string) (string, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", false
	}

	lower := strings.ToLower(trimmed)
	class, prefix := p.classify(lower)
	switch class {
	case Dangerous:
		p.logger().WithField("prefix", prefix).Warn("Blocked potentially malicious URL")
		return "", false
	case Safe:
		return trimmed, true
	}

	// No scheme at all: a bare relative path such as "images/a.png".
	if p.AllowBareRelative && !strings.Contains(lower, ":") {
		return trimmed, true
	}

	p.logger().WithFields(logrus.Fields{
		"url": trimmed,
	}).Warn("Blocked URL with unsafe protocol")
	return "", false
}

func matchPrefix(lower string, prefixes []string) (string, bool) {
	for _, prefix := range prefixes {
		if strings.HasPrefix(lower, strings.ToLower(prefix)) {
			return prefix, true
		}
	}
	return "", false
}
