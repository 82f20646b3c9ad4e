package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_URLMode(t *testing.T) {
	in := strings.NewReader("  https://example.com/x  \njavascript:alert(1)\nrelative/path\n")
	var out, errOut bytes.Buffer

	require.NoError(t, run([]string{"--mode", "url"}, in, &out, &errOut))
	assert.Equal(t, "https://example.com/x\n\nrelative/path\n", out.String())
	assert.NotEmpty(t, errOut.String(), "rejection should be logged")
}

func TestRun_TextMode(t *testing.T) {
	in := strings.NewReader("<script>alert(1)</script>hello\na &lt;b&gt; c\n")
	var out, errOut bytes.Buffer

	require.NoError(t, run([]string{"-m", "text"}, in, &out, &errOut))
	assert.Equal(t, "alert(1)hello\na  c\n", out.String())
}

func TestRun_LinkMode(t *testing.T) {
	in := strings.NewReader("/about\nvbscript:x\n")
	var out, errOut bytes.Buffer

	require.NoError(t, run([]string{"--mode=link"}, in, &out, &errOut))
	assert.Equal(t, "<a href=\"/about\">/about</a>\n<a>vbscript:x</a>\n", out.String())
}

func TestRun_Config(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: error\nurl:\n  allow_bare_relative: false\n"), 0o600))

	in := strings.NewReader("relative/path\n/rooted\n")
	var out, errOut bytes.Buffer

	require.NoError(t, run([]string{"--config", path}, in, &out, &errOut))
	assert.Equal(t, "\n/rooted\n", out.String())
	assert.Empty(t, errOut.String(), "warnings are below the configured level")
}

func TestRun_Errors(t *testing.T) {
	var out, errOut bytes.Buffer

	err := run([]string{"--mode", "html"}, strings.NewReader(""), &out, &errOut)
	assert.ErrorContains(t, err, "unknown mode")

	err = run([]string{"--bogus"}, strings.NewReader(""), &out, &errOut)
	assert.Error(t, err)

	err = run([]string{"--config", filepath.Join(t.TempDir(), "nope.yaml")}, strings.NewReader(""), &out, &errOut)
	assert.Error(t, err)
}
