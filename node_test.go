package safeinput_test

import (
	"testing"

	"github.com/njchilds90/safeinput"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func TestLink(t *testing.T) {
	p, _ := quietPolicy(t, safeinput.DefaultPolicy())

	tests := []struct {
		name string
		href string
		text string
		want string
	}{
		{"safe", " https://example.com/a?b=1&c=2 ", "home", `<a href="https://example.com/a?b=1&amp;c=2">home</a>`},
		{"dangerous omits href", "javascript:alert(1)", "click", `<a>click</a>`},
		{"text stripped", "/about", "<b>About</b> &amp; more", `<a href="/about">About &amp; more</a>`},
		{"empty href omitted", "", "x", `<a>x</a>`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := safeinput.Render(p.Link(tt.href, tt.text))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestImage(t *testing.T) {
	p, _ := quietPolicy(t, safeinput.DefaultPolicy())

	n := p.Image("data:image/png;base64,AA==", `"cat"`)
	assert.Equal(t, "data:image/png;base64,AA==", safeinput.GetAttr(n, "src"))
	assert.Equal(t, `"cat"`, safeinput.GetAttr(n, "alt"))

	n = p.Image("data:text/html,<script>", "<b></b>")
	assert.False(t, safeinput.HasAttr(n, "src"))
	assert.False(t, safeinput.HasAttr(n, "alt"))

	got, err := safeinput.Render(n)
	require.NoError(t, err)
	assert.Equal(t, "<img/>", got)
}

func TestTextNodeEscapedOnRender(t *testing.T) {
	// "&amp;lt;" decodes to "&lt;", which the renderer escapes again.
	got, err := safeinput.Render(safeinput.TextNode("&amp;lt;b&amp;gt; & <i>x</i>"))
	require.NoError(t, err)
	assert.Equal(t, "&amp;lt;b&amp;gt; &amp; x", got)
}

func TestSetURLAttr_RemovesExisting(t *testing.T) {
	p, hook := quietPolicy(t, safeinput.DefaultPolicy())
	n := &html.Node{Type: html.ElementNode, Data: "a"}
	safeinput.SetAttr(n, "href", "https://old.example.com")

	assert.False(t, p.SetURLAttr(n, "href", "vbscript:x"))
	assert.False(t, safeinput.HasAttr(n, "href"))
	assert.Len(t, hook.AllEntries(), 1)

	assert.True(t, p.SetURLAttr(n, "href", "./new"))
	assert.Equal(t, "./new", safeinput.GetAttr(n, "href"))
}

func TestSetGetRemoveAttr(t *testing.T) {
	n := &html.Node{Type: html.ElementNode, Data: "a"}
	safeinput.SetAttr(n, "href", "https://example.com")
	if v := safeinput.GetAttr(n, "href"); v != "https://example.com" {
		t.Errorf("GetAttr got %q want https://example.com", v)
	}
	safeinput.SetAttr(n, "href", "https://other.com")
	if v := safeinput.GetAttr(n, "href"); v != "https://other.com" {
		t.Errorf("SetAttr update got %q", v)
	}
	safeinput.RemoveAttr(n, "href")
	if safeinput.HasAttr(n, "href") {
		t.Errorf("RemoveAttr should remove href, got %v", n.Attr)
	}
}
