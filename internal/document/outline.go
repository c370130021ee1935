// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package document

import (
	"errors"
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"github.com/pdiddy/unbookmark/internal/toc"
)

const (
	keyOutlines = "Outlines"
	keyPageMode = "PageMode"
)

// OutlineEntries counts the items in the outline tree. A document without
// an /Outlines entry has zero.
func (d *Document) OutlineEntries() (int, error) {
	root, err := d.catalog()
	if err != nil {
		return 0, err
	}
	obj, found := root.Find(keyOutlines)
	if !found {
		return 0, nil
	}
	outlines, err := d.ctx.DereferenceDict(obj)
	if err != nil {
		return 0, fmt.Errorf("reading outline of %s: %w", d.path, err)
	}
	if outlines == nil {
		return 0, nil
	}
	n, err := d.countItems(outlines, map[int]bool{})
	if err != nil {
		return 0, fmt.Errorf("reading outline of %s: %w", d.path, err)
	}
	return n, nil
}

// DropOutline detaches the outline tree from the catalog and returns the
// number of items removed. The items become unreachable and are not
// serialized. Pages are untouched. A /PageMode of /UseOutlines is reset
// to /UseNone so viewers do not open an empty bookmark pane.
//
// An outline that cannot be walked is still dropped; its count is
// reported as zero.
func (d *Document) DropOutline() (int, error) {
	n, err := d.OutlineEntries()
	if err != nil {
		n = 0
	}
	root, err := d.catalog()
	if err != nil {
		return 0, err
	}
	delete(root, keyOutlines)

	if mode, found := root.Find(keyPageMode); found {
		if name, ok := mode.(types.Name); ok && name == "UseOutlines" {
			root[keyPageMode] = types.Name("UseNone")
		}
	}
	return n, nil
}

// countItems counts the children of parent and all of their descendants,
// following /First and /Next links. The walk stops at an item it has
// already visited.
func (d *Document) countItems(parent types.Dict, seen map[int]bool) (int, error) {
	count := 0
	next, found := parent.Find("First")
	for found {
		if ref, ok := next.(types.IndirectRef); ok {
			n := int(ref.ObjectNumber)
			if seen[n] {
				break
			}
			seen[n] = true
		}

		item, err := d.ctx.DereferenceDict(next)
		if err != nil {
			return 0, err
		}
		if item == nil {
			break
		}
		count++

		kids, err := d.countItems(item, seen)
		if err != nil {
			return 0, err
		}
		count += kids

		next, found = item.Find("Next")
	}
	return count, nil
}

// SetOutline replaces the outline tree with nodes. Node pages are 1-based
// physical page numbers. Siblings must not go back in page order and a
// child must not point before its parent.
func (d *Document) SetOutline(nodes []*toc.Node) error {
	if len(nodes) == 0 {
		return errors.New("outline has no entries")
	}
	if err := pdfcpu.AddBookmarks(d.ctx, bookmarks(nodes), true); err != nil {
		return fmt.Errorf("adding outline to %s: %w", d.path, err)
	}
	return nil
}

func bookmarks(nodes []*toc.Node) []pdfcpu.Bookmark {
	bms := make([]pdfcpu.Bookmark, 0, len(nodes))
	for _, n := range nodes {
		bms = append(bms, pdfcpu.Bookmark{
			Title:    n.Title,
			PageFrom: n.Page,
			Kids:     bookmarks(n.Kids),
		})
	}
	return bms
}
