package safeinput

import (
	"bytes"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Link returns an <a> element whose text is SanitizeText(text). The href
// attribute is set only if href passes SanitizeURL.
func (p *Policy) Link(href, text string) *html.Node {
	n := element(atom.A)
	p.SetURLAttr(n, "href", href)
	n.AppendChild(p.TextNode(text))
	return n
}

// Image returns an <img> element. The src attribute is set only if src
// passes SanitizeURL; alt is sanitized as text and omitted when empty.
func (p *Policy) Image(src, alt string) *html.Node {
	n := element(atom.Img)
	p.SetURLAttr(n, "src", src)
	if a := p.SanitizeText(alt); a != "" {
		SetAttr(n, "alt", a)
	}
	return n
}

// TextNode returns a text node holding SanitizeText(raw). The renderer
// escapes it, so the result never carries markup.
func (p *Policy) TextNode(raw string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: p.SanitizeText(raw)}
}

// SetURLAttr sanitizes raw and stores it as attribute key on n. If raw is
// rejected, any existing key attribute is removed and false is returned.
func (p *Policy) SetURLAttr(n *html.Node, key, raw string) bool {
	clean, ok := p.SanitizeURL(raw)
	if !ok {
		RemoveAttr(n, key)
		return false
	}
	SetAttr(n, key, clean)
	return true
}

// Link builds an anchor with the default policy.
func Link(href, text string) *html.Node {
	return defaultPolicy.Link(href, text)
}

// Image builds an image element with the default policy.
func Image(src, alt string) *html.Node {
	return defaultPolicy.Image(src, alt)
}

// TextNode builds a text node with the default policy.
func TextNode(raw string) *html.Node {
	return defaultPolicy.TextNode(raw)
}

// Render serialises n to HTML.
func Render(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// SetAttr sets (or adds) the attribute key=val on node n.
func SetAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

// GetAttr returns the value of the named attribute on n, or "" if not
// present.
func GetAttr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// HasAttr reports whether n carries the named attribute.
func HasAttr(n *html.Node, key string) bool {
	for _, a := range n.Attr {
		if a.Key == key {
			return true
		}
	}
	return false
}

// RemoveAttr removes the named attribute from n if present.
func RemoveAttr(n *html.Node, key string) {
	attrs := n.Attr[:0]
	for _, a := range n.Attr {
		if a.Key != key {
			attrs = append(attrs, a)
		}
	}
	n.Attr = attrs
}

func element(a atom.Atom) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
}
