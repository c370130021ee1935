// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package strip

import (
	"path/filepath"
	"testing"
)

func TestOutputPath(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"book.pdf", "book_cleaned.pdf"},
		{"my_book.PDF", "my_book_cleaned.PDF"},
		{filepath.Join("papers", "raw", "2301.07041.pdf"), filepath.Join("papers", "raw", "2301.07041_cleaned.pdf")},
		{"archive.tar.pdf", "archive.tar_cleaned.pdf"},
		{"noext", "noext_cleaned"},
		{".pdf", ".pdf_cleaned"},
		{"..hidden.pdf", "..hidden_cleaned.pdf"},
		{filepath.Join("dir.d", "file"), filepath.Join("dir.d", "file_cleaned")},
		{"trailing.", "trailing_cleaned."},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := OutputPath(tt.input, "_cleaned")
			if got != tt.want {
				t.Errorf("OutputPath(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestOutputPath_CustomSuffix(t *testing.T) {
	if got := OutputPath("book.pdf", ".nobm"); got != "book.nobm.pdf" {
		t.Errorf("OutputPath = %q, want %q", got, "book.nobm.pdf")
	}
}
