// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package document

import (
	"errors"
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	rtypes "github.com/pdiddy/unbookmark/pkg/types"
)

// page is one leaf of the page tree together with the MediaBox it
// inherits from its ancestors.
type page struct {
	dict     types.Dict
	mediaBox types.Array
}

// PageSizes returns the MediaBox width and height of every page.
func (d *Document) PageSizes() ([]rtypes.PageSize, error) {
	pages, err := d.walkPages()
	if err != nil {
		return nil, err
	}
	sizes := make([]rtypes.PageSize, len(pages))
	for i, p := range pages {
		box, err := d.rect(p.mediaBox)
		if err != nil {
			return nil, fmt.Errorf("page %d of %s: %w", i+1, d.path, err)
		}
		sizes[i] = rtypes.PageSize{Width: box[2] - box[0], Height: box[3] - box[1]}
	}
	return sizes, nil
}

func (d *Document) walkPages() ([]page, error) {
	root, err := d.catalog()
	if err != nil {
		return nil, err
	}
	obj, found := root.Find("Pages")
	if !found {
		return nil, fmt.Errorf("%s has no page tree", d.path)
	}
	var pages []page
	seen := map[int]bool{}
	if err := d.collectPages(obj, nil, seen, &pages); err != nil {
		return nil, fmt.Errorf("walking page tree of %s: %w", d.path, err)
	}
	return pages, nil
}

func (d *Document) collectPages(obj types.Object, box types.Array, seen map[int]bool, pages *[]page) error {
	if ref, ok := obj.(types.IndirectRef); ok {
		n := int(ref.ObjectNumber)
		if seen[n] {
			return fmt.Errorf("page tree node %d is reachable twice", n)
		}
		seen[n] = true
	}

	node, err := d.ctx.DereferenceDict(obj)
	if err != nil {
		return err
	}
	if node == nil {
		return errors.New("page tree node is null")
	}

	if mb, found := node.Find("MediaBox"); found {
		arr, err := d.ctx.DereferenceArray(mb)
		if err != nil {
			return err
		}
		box = arr
	}

	kids, found := node.Find("Kids")
	if !found || node["Type"] == types.Name("Page") {
		*pages = append(*pages, page{dict: node, mediaBox: box})
		return nil
	}

	arr, err := d.ctx.DereferenceArray(kids)
	if err != nil {
		return err
	}
	for _, kid := range arr {
		if err := d.collectPages(kid, box, seen, pages); err != nil {
			return err
		}
	}
	return nil
}

// rect resolves a four-number rectangle.
func (d *Document) rect(arr types.Array) ([4]float64, error) {
	var r [4]float64
	if len(arr) != 4 {
		return r, fmt.Errorf("MediaBox has %d entries, want 4", len(arr))
	}
	for i, o := range arr {
		v, err := d.ctx.Dereference(o)
		if err != nil {
			return r, err
		}
		switch n := v.(type) {
		case types.Integer:
			r[i] = float64(n)
		case types.Float:
			r[i] = float64(n)
		default:
			return r, fmt.Errorf("MediaBox entry %d is %T, want a number", i, v)
		}
	}
	return r, nil
}
