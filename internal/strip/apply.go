// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package strip

import (
	"errors"
	"fmt"
	"io"

	"github.com/pdiddy/unbookmark/internal/toc"
	"github.com/pdiddy/unbookmark/pkg/types"
)

// Apply reads the PDF at input, replaces its outline with one built from
// items and writes the result to OutputPath(input, cfg.Suffix). Item pages
// are shifted by cfg.Offset and must then name an existing page. Levels
// left at zero are inferred from the titles. The returned error, if any,
// is an *Error.
func Apply(input string, items []types.TocItem, cfg types.ApplyConfig) (types.ApplyResult, error) {
	doc, output, err := open(input, cfg.StripConfig)
	if err != nil {
		return types.ApplyResult{}, err
	}
	if len(items) == 0 {
		return types.ApplyResult{}, &Error{Kind: KindProcessing, Path: input, Err: errors.New("table of contents is empty")}
	}

	resolved := toc.Resolve(items)
	for i := range resolved {
		page := resolved[i].Page + cfg.Offset
		if page < 1 || page > doc.PageCount() {
			return types.ApplyResult{}, &Error{Kind: KindProcessing, Path: input,
				Err: fmt.Errorf("entry %q: page %d is outside 1..%d", resolved[i].Title, page, doc.PageCount())}
		}
		resolved[i].Page = page
	}

	replaced, err := doc.OutlineEntries()
	if err != nil {
		replaced = 0
	}

	nodes := toc.Tree(resolved)
	if err := doc.SetOutline(nodes); err != nil {
		return types.ApplyResult{}, &Error{Kind: KindProcessing, Path: input, Err: err}
	}

	if err := writeFile(doc, output); err != nil {
		return types.ApplyResult{}, &Error{Kind: KindProcessing, Path: input, Err: err}
	}

	return types.ApplyResult{
		InputPath:  input,
		OutputPath: output,
		Pages:      doc.PageCount(),
		Replaced:   replaced,
		Added:      toc.Count(nodes),
	}, nil
}

// RunApply applies items to input and reports the outcome on w.
func RunApply(input string, items []types.TocItem, cfg types.ApplyConfig, w io.Writer) (types.ApplyResult, error) {
	res, err := Apply(input, items, cfg)
	if err != nil {
		return res, err
	}
	fmt.Fprintf(w, "bookmarked: %s -> %s (%d pages, %d bookmarks added, %d replaced)\n",
		res.InputPath, res.OutputPath, res.Pages, res.Added, res.Replaced)
	return res, nil
}
