// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package strip removes the outline (bookmark) tree from a PDF file and
// writes the remaining pages, unchanged and in order, next to the input.
// It can also replace the outline with one built from a table of contents.
package strip

import (
	"fmt"
	"io"
	"io/fs"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pdiddy/unbookmark/internal/document"
	"github.com/pdiddy/unbookmark/pkg/types"
)

// Strip reads the PDF at input, drops its outline and writes the result to
// OutputPath(input, cfg.Suffix). An existing output is replaced unless
// cfg.Overwrite is false. The returned error, if any, is an *Error.
func Strip(input string, cfg types.StripConfig) (types.StripResult, error) {
	doc, output, err := open(input, cfg)
	if err != nil {
		return types.StripResult{}, err
	}

	removed, err := doc.DropOutline()
	if err != nil {
		return types.StripResult{}, &Error{Kind: KindProcessing, Path: input, Err: err}
	}

	if err := writeFile(doc, output); err != nil {
		return types.StripResult{}, &Error{Kind: KindProcessing, Path: input, Err: err}
	}

	return types.StripResult{
		InputPath:      input,
		OutputPath:     output,
		Pages:          doc.PageCount(),
		OutlineEntries: removed,
	}, nil
}

// Run strips input and reports the outcome on w.
func Run(input string, cfg types.StripConfig, w io.Writer) (types.StripResult, error) {
	res, err := Strip(input, cfg)
	if err != nil {
		return res, err
	}
	fmt.Fprintf(w, "stripped: %s -> %s (%d pages, %d bookmarks removed)\n",
		res.InputPath, res.OutputPath, res.Pages, res.OutlineEntries)
	return res, nil
}

// open checks the input and output paths and parses the input. Errors are
// returned as *Error.
func open(input string, cfg types.StripConfig) (*document.Document, string, error) {
	info, err := os.Stat(input)
	if err != nil || info.IsDir() {
		return nil, "", &Error{Kind: KindNotFound, Path: input, Err: err}
	}
	if err := cfg.Check(); err != nil {
		return nil, "", &Error{Kind: KindProcessing, Path: input, Err: err}
	}

	output := OutputPath(input, cfg.Suffix)
	if !cfg.Overwrite {
		if _, err := os.Stat(output); err == nil {
			return nil, "", &Error{Kind: KindOutputExists, Path: output}
		}
	}

	doc, err := document.Open(input, document.Options{Validate: cfg.Validate})
	if err != nil {
		return nil, "", &Error{Kind: KindProcessing, Path: input, Err: err}
	}
	return doc, output, nil
}

// writeFile serializes doc to a temporary file beside path and renames it
// into place, so a failed write never leaves a partial output. A replaced
// output keeps its permission bits; a new one gets 0666 less the umask.
func writeFile(doc *document.Document, path string) (err error) {
	dir := filepath.Dir(path)
	tmp, err := createTemp(dir, filepath.Base(path))
	if err != nil {
		return fmt.Errorf("creating temp file in %s: %w", dir, err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err := doc.Write(tmp); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", tmp.Name(), err)
	}
	if info, statErr := os.Stat(path); statErr == nil && info.Mode().IsRegular() {
		if err := os.Chmod(tmp.Name(), info.Mode().Perm()); err != nil {
			return fmt.Errorf("setting mode on %s: %w", tmp.Name(), err)
		}
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("renaming to %s: %w", path, err)
	}
	return nil
}

// createTemp creates a new file named .<base>.<random>.tmp in dir. Unlike
// os.CreateTemp it requests mode 0666, so the process umask decides the
// final permissions.
func createTemp(dir, base string) (*os.File, error) {
	for range 100 {
		name := filepath.Join(dir, "."+base+"."+strconv.FormatUint(uint64(rand.Uint32()), 10)+".tmp")
		f, err := os.OpenFile(name, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0o666)
		if os.IsExist(err) {
			continue
		}
		return f, err
	}
	return nil, &fs.PathError{Op: "createtemp", Path: filepath.Join(dir, "."+base+".*.tmp"), Err: fs.ErrExist}
}
