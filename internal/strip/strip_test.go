// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package strip

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/unbookmark/internal/document"
	"github.com/pdiddy/unbookmark/internal/pdftest"
	"github.com/pdiddy/unbookmark/pkg/types"
)

var bookOutline = []pdftest.Bookmark{
	{Title: "Part I", Page: 0, Kids: []pdftest.Bookmark{
		{Title: "Chapter 1", Page: 1},
		{Title: "Chapter 2", Page: 2},
	}},
	{Title: "Part II", Page: 3, Kids: []pdftest.Bookmark{
		{Title: "Chapter 3", Page: 4},
	}},
	{Title: "Index", Page: 4},
}

// assertSamePages checks that the output at path keeps every page of a
// pdftest document with n pages, in order, and carries no outline.
func assertSamePages(t *testing.T, path string, n int) {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	for i := range n {
		assert.True(t, bytes.Contains(data, []byte(pdftest.PageContent(i))), "content of page %d missing", i+1)
	}

	doc, err := document.Open(path, document.Options{})
	require.NoError(t, err)
	assert.Equal(t, n, doc.PageCount())

	sizes, err := doc.PageSizes()
	require.NoError(t, err)
	require.Len(t, sizes, n)
	for i, s := range sizes {
		assert.Equal(t, pdftest.PageWidth(i), s.Width, "page %d out of order", i+1)
	}

	entries, err := doc.OutlineEntries()
	require.NoError(t, err)
	assert.Zero(t, entries, "output should have no outline entries")
}

func TestStrip(t *testing.T) {
	tests := []struct {
		name    string
		pages   int
		outline []pdftest.Bookmark
	}{
		{name: "nested outline", pages: 5, outline: bookOutline},
		{name: "flat outline", pages: 2, outline: []pdftest.Bookmark{{Title: "One", Page: 0}, {Title: "Two", Page: 1}}},
		{name: "no outline", pages: 3},
		{name: "single page", pages: 1, outline: []pdftest.Bookmark{{Title: "Cover", Page: 0}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			input := pdftest.Write(t, dir, "book.pdf", pdftest.Document{Pages: tt.pages, Outline: tt.outline})
			before, err := os.ReadFile(input)
			require.NoError(t, err)

			res, err := Strip(input, types.DefaultStripConfig())
			require.NoError(t, err)

			assert.Equal(t, filepath.Join(dir, "book_cleaned.pdf"), res.OutputPath)
			assert.Equal(t, input, res.InputPath)
			assert.Equal(t, tt.pages, res.Pages)
			assert.Equal(t, pdftest.Count(tt.outline), res.OutlineEntries)

			assertSamePages(t, res.OutputPath, tt.pages)

			after, err := os.ReadFile(input)
			require.NoError(t, err)
			assert.Equal(t, before, after, "input must not be modified")
		})
	}
}

func TestStrip_ResetsPageMode(t *testing.T) {
	dir := t.TempDir()
	input := pdftest.Write(t, dir, "book.pdf", pdftest.Document{Pages: 5, Outline: bookOutline, PageMode: "UseOutlines"})

	res, err := Strip(input, types.DefaultStripConfig())
	require.NoError(t, err)

	data, err := os.ReadFile(res.OutputPath)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "/UseOutlines")
}

func TestStrip_NotFound(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "missing.pdf")

	_, err := Strip(input, types.DefaultStripConfig())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "missing.pdf")

	var serr *Error
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, KindNotFound, serr.Kind)

	_, statErr := os.Stat(filepath.Join(dir, "missing_cleaned.pdf"))
	assert.True(t, os.IsNotExist(statErr), "no output should be created")
}

func TestStrip_Directory(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "folder.pdf")
	require.NoError(t, os.Mkdir(sub, 0o755))

	_, err := Strip(sub, types.DefaultStripConfig())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStrip_CorruptInput(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "broken.pdf")
	require.NoError(t, os.WriteFile(input, []byte("%PDF-1.7\nnot really a pdf\n"), 0o644))

	_, err := Strip(input, types.DefaultStripConfig())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrProcessing)
	assert.False(t, errors.Is(err, ErrNotFound))
	assert.Contains(t, err.Error(), "broken.pdf")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "only the input should remain in the directory")
}

func TestStrip_OverwritesPreviousOutput(t *testing.T) {
	dir := t.TempDir()
	input := pdftest.Write(t, dir, "book.pdf", pdftest.Document{Pages: 5, Outline: bookOutline})
	output := filepath.Join(dir, "book_cleaned.pdf")
	require.NoError(t, os.WriteFile(output, []byte("stale output"), 0o644))

	for range 2 {
		res, err := Strip(input, types.DefaultStripConfig())
		require.NoError(t, err)
		assert.Equal(t, output, res.OutputPath)
	}
	assertSamePages(t, output, 5)
}

func TestStrip_NoOverwrite(t *testing.T) {
	dir := t.TempDir()
	input := pdftest.Write(t, dir, "book.pdf", pdftest.Document{Pages: 2})
	output := filepath.Join(dir, "book_cleaned.pdf")
	require.NoError(t, os.WriteFile(output, []byte("keep me"), 0o644))

	cfg := types.DefaultStripConfig()
	cfg.Overwrite = false

	_, err := Strip(input, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOutputExists)
	assert.Contains(t, err.Error(), "book_cleaned.pdf")

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "keep me", string(data))
}

func TestStrip_InvalidConfig(t *testing.T) {
	dir := t.TempDir()
	input := pdftest.Write(t, dir, "book.pdf", pdftest.Document{Pages: 1})

	_, err := Strip(input, types.StripConfig{Suffix: "", Overwrite: true})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrProcessing)
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	input := pdftest.Write(t, dir, "book.pdf", pdftest.Document{Pages: 5, Outline: bookOutline})

	var log bytes.Buffer
	res, err := Run(input, types.DefaultStripConfig(), &log)
	require.NoError(t, err)

	out := log.String()
	assert.True(t, strings.HasPrefix(out, "stripped:"), "log output %q", out)
	assert.Contains(t, out, res.OutputPath)
	assert.Contains(t, out, "6 bookmarks removed")
}

func TestRun_NotFoundWritesNothing(t *testing.T) {
	var log bytes.Buffer
	_, err := Run(filepath.Join(t.TempDir(), "missing.pdf"), types.DefaultStripConfig(), &log)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Empty(t, log.String())
}

func TestError_Kinds(t *testing.T) {
	tests := []struct {
		kind Kind
		want error
		text string
	}{
		{KindNotFound, ErrNotFound, "file 'a.pdf' not found"},
		{KindOutputExists, ErrOutputExists, "output file 'a.pdf' already exists"},
		{KindProcessing, ErrProcessing, "processing a.pdf: boom"},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			err := &Error{Kind: tt.kind, Path: "a.pdf", Err: errors.New("boom")}
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, tt.text, err.Error())
		})
	}
}

func TestStrip_RenameFailureLeavesNoTemp(t *testing.T) {
	dir := t.TempDir()
	input := pdftest.Write(t, dir, "book.pdf", pdftest.Document{Pages: 2, Outline: []pdftest.Bookmark{{Title: "One", Page: 0}}})
	// A non-empty directory at the output path makes the final rename fail.
	output := filepath.Join(dir, "book_cleaned.pdf")
	require.NoError(t, os.Mkdir(output, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(output, "keep"), nil, 0o644))

	_, err := Strip(input, types.DefaultStripConfig())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrProcessing)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.ElementsMatch(t, []string{"book.pdf", "book_cleaned.pdf"}, names, "temp file left behind")

	info, err := os.Stat(output)
	require.NoError(t, err)
	assert.True(t, info.IsDir(), "existing directory must be left alone")
}

func TestStrip_KeepsExistingOutputMode(t *testing.T) {
	dir := t.TempDir()
	input := pdftest.Write(t, dir, "book.pdf", pdftest.Document{Pages: 2})
	output := filepath.Join(dir, "book_cleaned.pdf")
	require.NoError(t, os.WriteFile(output, []byte("old"), 0o600))
	require.NoError(t, os.Chmod(output, 0o600))

	_, err := Strip(input, types.DefaultStripConfig())
	require.NoError(t, err)

	info, err := os.Stat(output)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestStrip_NewOutputFollowsUmask(t *testing.T) {
	dir := t.TempDir()
	input := pdftest.Write(t, dir, "book.pdf", pdftest.Document{Pages: 2})

	// A file created with 0666 gets exactly the mode the umask allows.
	ref := filepath.Join(dir, "reference")
	require.NoError(t, os.WriteFile(ref, nil, 0o666))
	want, err := os.Stat(ref)
	require.NoError(t, err)

	res, err := Strip(input, types.DefaultStripConfig())
	require.NoError(t, err)

	got, err := os.Stat(res.OutputPath)
	require.NoError(t, err)
	assert.Equal(t, want.Mode().Perm(), got.Mode().Perm())
}
