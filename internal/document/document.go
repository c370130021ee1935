// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package document wraps a pdfcpu context with the few operations the
// stripper needs: reading a file, walking its page tree, counting and
// dropping the outline, and serializing the result.
package document

import (
	"fmt"
	"io"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	rtypes "github.com/pdiddy/unbookmark/pkg/types"
)

func init() {
	// pdfcpu otherwise creates and reads a config.yml under the user's
	// config directory on first use.
	api.DisableConfigDir()
}

// Options controls how a document is read.
type Options struct {
	// Validate runs pdfcpu's relaxed validation after parsing.
	Validate bool
}

// Document is a parsed PDF held in memory.
type Document struct {
	path string
	ctx  *model.Context
}

// Open reads and parses the PDF at path.
func Open(path string, opts Options) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	return Read(f, path, opts)
}

// Read parses a PDF from rs. The name is used in error messages only.
func Read(rs io.ReadSeeker, name string, opts Options) (*Document, error) {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	ctx, err := api.ReadContext(rs, conf)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	if opts.Validate {
		if err := api.ValidateContext(ctx); err != nil {
			return nil, fmt.Errorf("validating %s: %w", name, err)
		}
	}
	if err := ctx.EnsurePageCount(); err != nil {
		return nil, fmt.Errorf("counting pages of %s: %w", name, err)
	}
	return &Document{path: name, ctx: ctx}, nil
}

// Path returns the name the document was opened with.
func (d *Document) Path() string {
	return d.path
}

// PageCount returns the number of pages recorded in the page tree root.
func (d *Document) PageCount() int {
	return d.ctx.PageCount
}

// Write serializes the document to w.
func (d *Document) Write(w io.Writer) error {
	if err := api.WriteContext(d.ctx, w); err != nil {
		return fmt.Errorf("writing %s: %w", d.path, err)
	}
	return nil
}

// Summary reports page and outline statistics for the document.
func (d *Document) Summary() (rtypes.DocumentSummary, error) {
	sizes, err := d.PageSizes()
	if err != nil {
		return rtypes.DocumentSummary{}, err
	}
	n, err := d.OutlineEntries()
	if err != nil {
		return rtypes.DocumentSummary{}, err
	}
	return rtypes.DocumentSummary{
		Path:           d.path,
		Version:        d.ctx.VersionString(),
		Pages:          len(sizes),
		PageSizes:      sizes,
		OutlineEntries: n,
	}, nil
}

// catalog returns the document root dictionary. The returned map is the
// one stored in the xref table, so edits to it are written out.
func (d *Document) catalog() (types.Dict, error) {
	root, err := d.ctx.Catalog()
	if err != nil {
		return nil, fmt.Errorf("reading catalog of %s: %w", d.path, err)
	}
	return root, nil
}
