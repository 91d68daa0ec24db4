package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClipboard struct {
	text        string
	err         error
	unsupported bool
}

func (f *fakeClipboard) Available() bool {
	return !f.unsupported
}

func (f *fakeClipboard) WriteAll(text string) error {
	f.text = text
	return f.err
}

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	root := NewRootCmd()
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(errOut)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestExpandArgs(t *testing.T) {
	out, _, err := run(t, "", "A(B)〈C／D〉", "plain text", "(A〈B)")
	require.NoError(t, err)
	assert.Equal(t, "AC；AD；ABC；ABD\nplain text\n(A〈B)\n", out)
}

func TestExpandStdin(t *testing.T) {
	out, _, err := run(t, "見（る）\n\n{a／b}c\r\n", "--join", ",")
	require.NoError(t, err)
	assert.Equal(t, "見,見る\nac,bc\n", out)
}

func TestExpandFlags(t *testing.T) {
	out, _, err := run(t, "", "--unique", "(A)(A)")
	require.NoError(t, err)
	assert.Equal(t, "A；AA\n", out)

	out, _, err = run(t, "", "--max-terms", "2", "{a／b／c}")
	require.NoError(t, err)
	assert.Equal(t, "{a／b／c}\n", out)
}

func TestExpandTable(t *testing.T) {
	out, _, err := run(t, "", "--table", "A(B)C")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "AC；ABC\n"))
	assert.Contains(t, out, "A（B）C")
	assert.Contains(t, out, "Terms")
}

func TestExpandCopy(t *testing.T) {
	saved := clipboardSink
	defer func() { clipboardSink = saved }()

	cb := &fakeClipboard{}
	clipboardSink = cb
	_, _, err := run(t, "", "--copy", "a(b)", "{c,d}", "plain")
	require.NoError(t, err)
	assert.Equal(t, "｛c／d｝", cb.text)

	cb = &fakeClipboard{}
	clipboardSink = cb
	_, errOut, err := run(t, "", "--copy", "plain")
	require.NoError(t, err)
	assert.Equal(t, "", cb.text)
	assert.Contains(t, errOut, "nothing to copy")

	clipboardSink = &fakeClipboard{err: errors.New("no display")}
	_, _, err = run(t, "", "--copy", "a(b)")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no display")

	cb = &fakeClipboard{unsupported: true}
	clipboardSink = cb
	out, errOut, err := run(t, "", "--copy", "a(b)")
	require.NoError(t, err)
	assert.Equal(t, "a；ab\n", out)
	assert.Equal(t, "", cb.text)
	assert.Contains(t, errOut, "clipboard unsupported")
}

func TestExpandHTML(t *testing.T) {
	page := writeFile(t, "ngramcounts.html", `<html><body>
<input name="q" value="食べ（させ）｛る／ない｝"><input id="other" value="{x／y}">
</body></html>`)

	out, _, err := run(t, "", "--html", page)
	require.NoError(t, err)
	assert.Equal(t, "食べる；食べない；食べさせる；食べさせない\n", out)

	out, _, err = run(t, "", "--html", page, "--selector", "#other")
	require.NoError(t, err)
	assert.Equal(t, "x；y\n", out)

	_, _, err = run(t, "", "--html", filepath.Join(t.TempDir(), "missing.html"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestConfigFile(t *testing.T) {
	cfg := writeFile(t, "ngroup.yaml", "join: \" | \"\nalphabet:\n  alternative: [\"<>\"]\n")
	out, _, err := run(t, "", "--config", cfg, "x<a／b>")
	require.NoError(t, err)
	assert.Equal(t, "xa | xb\n", out)

	out, _, err = run(t, "", "--config", cfg, "--join", "+", "x<a／b>")
	require.NoError(t, err)
	assert.Equal(t, "xa+xb\n", out)

	bad := writeFile(t, "bad.toml", "max_terms = -5")
	_, _, err = run(t, "", "--config", bad, "x")
	assert.Error(t, err)
}

func TestVerbose(t *testing.T) {
	_, errOut, err := run(t, "", "-v", "plain")
	require.NoError(t, err)
	assert.Contains(t, errOut, "no grouping found")

	_, errOut, err = run(t, "", "plain")
	require.NoError(t, err)
	assert.NotContains(t, errOut, "no grouping found")
}

func TestNormalize(t *testing.T) {
	out, _, err := run(t, "", "normalize", "A(B)〈C,D〉", "plain", "(x")
	require.NoError(t, err)
	assert.Equal(t, "A（B）｛C／D｝\nplain\n(x\n", out)
}

func TestCheck(t *testing.T) {
	out, _, err := run(t, "", "check", "a(b)", "plain")
	require.NoError(t, err)
	assert.Contains(t, out, "a(b)\tok: 2 terms")
	assert.Contains(t, out, "plain\tskipped: no grouping found")

	out, _, err = run(t, "", "check", "a(b)", "(A〈B)", "{")
	require.ErrorIs(t, err, errMalformed)
	assert.Contains(t, err.Error(), "2 of 3")
	assert.Contains(t, out, "(A〈B)\terror:")
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "ngroup v"+Version)
}
