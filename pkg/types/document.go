// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// PageSize is the MediaBox extent of one page in PDF user space units.
type PageSize struct {
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// DocumentSummary describes a PDF file as seen by the inspect command.
type DocumentSummary struct {
	// Path is the file the summary was read from.
	Path string `json:"path" yaml:"path"`

	// Version is the PDF header version (e.g. "1.7").
	Version string `json:"version" yaml:"version"`

	// Pages is the number of pages in the document.
	Pages int `json:"pages" yaml:"pages"`

	// PageSizes lists the MediaBox of each page in document order.
	PageSizes []PageSize `json:"page_sizes" yaml:"page_sizes"`

	// OutlineEntries is the number of bookmark items in the outline tree.
	OutlineEntries int `json:"outline_entries" yaml:"outline_entries"`
}

// StripResult records the outcome of removing the outline from one file.
type StripResult struct {
	// InputPath is the file that was read.
	InputPath string `json:"input_path" yaml:"input_path"`

	// OutputPath is the file that was written.
	OutputPath string `json:"output_path" yaml:"output_path"`

	// Pages is the number of pages carried over to the output.
	Pages int `json:"pages" yaml:"pages"`

	// OutlineEntries is the number of bookmark items dropped.
	OutlineEntries int `json:"outline_entries" yaml:"outline_entries"`
}

// TocItem is one table-of-contents entry to be written as a bookmark.
type TocItem struct {
	// Title is the bookmark text.
	Title string `json:"title" yaml:"title"`

	// Page is the 1-based page the entry points at, before any offset.
	Page int `json:"page" yaml:"page"`

	// Level is the nesting depth, 1 for top-level entries. Zero means the
	// level is inferred from the title's numbering.
	Level int `json:"level,omitempty" yaml:"level,omitempty"`
}

// ApplyResult records the outcome of writing a table of contents into one file.
type ApplyResult struct {
	// InputPath is the file that was read.
	InputPath string `json:"input_path" yaml:"input_path"`

	// OutputPath is the file that was written.
	OutputPath string `json:"output_path" yaml:"output_path"`

	// Pages is the number of pages carried over to the output.
	Pages int `json:"pages" yaml:"pages"`

	// Replaced is the number of bookmark items the input already had.
	Replaced int `json:"replaced" yaml:"replaced"`

	// Added is the number of bookmark items written.
	Added int `json:"added" yaml:"added"`
}
