// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pdftest builds small, well-formed PDF files for tests. Each page
// carries an uncompressed content stream and a distinct MediaBox width, so
// tests can check both content and order after a round trip.
package pdftest

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// PageHeight is the MediaBox height of every generated page.
const PageHeight = 792

// PageWidth returns the MediaBox width of the page at index i.
func PageWidth(i int) float64 {
	return float64(600 + 10*i)
}

// PageContent returns the content stream of the page at index i.
func PageContent(i int) string {
	return fmt.Sprintf("BT /F1 12 Tf 72 720 Td (page %d marker) Tj ET", i+1)
}

// Bookmark is one outline item pointing at a zero-based page index.
type Bookmark struct {
	Title string
	Page  int
	Kids  []Bookmark
}

// Count returns the number of items in marks, including all descendants.
func Count(marks []Bookmark) int {
	n := len(marks)
	for _, m := range marks {
		n += Count(m.Kids)
	}
	return n
}

// Document describes a PDF to generate.
type Document struct {
	Pages    int
	Outline  []Bookmark
	PageMode string
}

// Bytes renders the document as a PDF 1.7 file with a classic xref table.
func (d Document) Bytes() []byte {
	b := &builder{}

	catalog := b.reserve()
	pagesRoot := b.reserve()

	pageRefs := make([]int, d.Pages)
	kids := make([]string, d.Pages)
	for i := range d.Pages {
		pageNum := b.reserve()
		contentNum := b.reserve()
		pageRefs[i] = pageNum
		kids[i] = ref(pageNum)

		content := PageContent(i)
		b.set(contentNum, fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(content), content))
		b.set(pageNum, fmt.Sprintf("<< /Type /Page /Parent %s /MediaBox [0 0 %d %d] /Resources << >> /Contents %s >>",
			ref(pagesRoot), int(PageWidth(i)), PageHeight, ref(contentNum)))
	}
	b.set(pagesRoot, fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), d.Pages))

	var cat strings.Builder
	fmt.Fprintf(&cat, "<< /Type /Catalog /Pages %s", ref(pagesRoot))
	if len(d.Outline) > 0 {
		outlines := b.reserve()
		first, last, count := b.outline(outlines, d.Outline, pageRefs)
		b.set(outlines, fmt.Sprintf("<< /Type /Outlines /First %s /Last %s /Count %d >>", ref(first), ref(last), count))
		fmt.Fprintf(&cat, " /Outlines %s", ref(outlines))
	}
	if d.PageMode != "" {
		fmt.Fprintf(&cat, " /PageMode /%s", d.PageMode)
	}
	cat.WriteString(" >>")
	b.set(catalog, cat.String())

	return b.render(catalog)
}

// Write renders doc into dir/name and returns the file path.
func Write(t testing.TB, dir, name string, doc Document) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, doc.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// builder accumulates object bodies indexed by object number minus one.
type builder struct {
	objs []string
}

func (b *builder) reserve() int {
	b.objs = append(b.objs, "")
	return len(b.objs)
}

func (b *builder) set(num int, body string) {
	b.objs[num-1] = body
}

// outline writes the sibling items marks under parent and returns the
// first and last item numbers and the total number of items written.
func (b *builder) outline(parent int, marks []Bookmark, pages []int) (first, last, count int) {
	nums := make([]int, len(marks))
	for i := range marks {
		nums[i] = b.reserve()
	}
	count = len(marks)
	for i, m := range marks {
		var sb strings.Builder
		fmt.Fprintf(&sb, "<< /Title (%s) /Parent %s /Dest [%s /Fit]", m.Title, ref(parent), ref(pages[m.Page]))
		if i > 0 {
			fmt.Fprintf(&sb, " /Prev %s", ref(nums[i-1]))
		}
		if i < len(marks)-1 {
			fmt.Fprintf(&sb, " /Next %s", ref(nums[i+1]))
		}
		if len(m.Kids) > 0 {
			kf, kl, kc := b.outline(nums[i], m.Kids, pages)
			fmt.Fprintf(&sb, " /First %s /Last %s /Count %d", ref(kf), ref(kl), kc)
			count += kc
		}
		sb.WriteString(" >>")
		b.set(nums[i], sb.String())
	}
	return nums[0], nums[len(nums)-1], count
}

func (b *builder) render(root int) []byte {
	var buf bytes.Buffer
	buf.WriteString("%PDF-1.7\n%\xe2\xe3\xcf\xd3\n")

	offsets := make([]int, len(b.objs))
	for i, body := range b.objs {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, body)
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(b.objs)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root %s >>\nstartxref\n%d\n%%%%EOF\n", len(b.objs)+1, ref(root), xref)
	return buf.Bytes()
}

func ref(num int) string {
	return fmt.Sprintf("%d 0 R", num)
}
