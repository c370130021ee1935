// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package toc reads a table of contents and arranges its entries into a
// bookmark tree.
//
// A TOC file is a YAML (or JSON) list of entries:
//
//	- title: Chapter 1
//	  page: 1
//	- title: 1.1 Background
//	  page: 3
//	  level: 2
//
// Entries without a level get one inferred from the title's numbering.
package toc

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/unbookmark/pkg/types"
)

// DefaultLevel is assigned to titles whose numbering says nothing about
// their depth.
const DefaultLevel = 2

const cjkNumerals = `[一二三四五六七八九十百]+`

var (
	partPattern       = regexp.MustCompile(`^第` + cjkNumerals + `[部编]`)
	chapterPattern    = regexp.MustCompile(`^第` + cjkNumerals + `章`)
	sectionPattern    = regexp.MustCompile(`^第` + cjkNumerals + `节`)
	decimal3Pattern   = regexp.MustCompile(`^\d+\.\d+\.\d+`)
	decimal2Pattern   = regexp.MustCompile(`^\d+\.\d+`)
	enumPattern       = regexp.MustCompile(`^` + cjkNumerals + `[、\s]`)
	parenEnumPattern  = regexp.MustCompile(`^[(（]` + cjkNumerals + `[)）]`)
	chapterEnglish    = regexp.MustCompile(`(?i)^(chapter|part)\s+\S+`)
	decimal1Pattern   = regexp.MustCompile(`^\d+[.\s]`)
	appendixOrPreface = regexp.MustCompile(`(?i)^(appendix|preface|foreword|introduction|index|bibliography|references)\b`)
)

// Load reads a TOC file. Every entry needs a title and a page of at least
// one; a negative level is rejected.
func Load(path string) ([]types.TocItem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading TOC %s: %w", path, err)
	}
	items, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing TOC %s: %w", path, err)
	}
	return items, nil
}

// Parse decodes TOC entries from YAML or JSON.
func Parse(data []byte) ([]types.TocItem, error) {
	var items []types.TocItem
	if err := yaml.Unmarshal(data, &items); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, errors.New("no entries")
	}
	for i, it := range items {
		switch {
		case it.Title == "":
			return nil, fmt.Errorf("entry %d: missing title", i+1)
		case it.Page < 1:
			return nil, fmt.Errorf("entry %d (%q): page must be at least 1", i+1, it.Title)
		case it.Level < 0:
			return nil, fmt.Errorf("entry %d (%q): negative level", i+1, it.Title)
		}
	}
	return items, nil
}

// InferLevel guesses the nesting depth of a title from its numbering:
// parts and chapters are 1, sections and "1.2" style numbers are 2, and
// "1.2.3" style numbers are 3. Anything else is DefaultLevel.
func InferLevel(title string) int {
	t := strings.TrimSpace(title)
	switch {
	case partPattern.MatchString(t), chapterPattern.MatchString(t), chapterEnglish.MatchString(t):
		return 1
	case decimal3Pattern.MatchString(t):
		return 3
	case sectionPattern.MatchString(t), decimal2Pattern.MatchString(t):
		return 2
	case decimal1Pattern.MatchString(t), appendixOrPreface.MatchString(t):
		return 1
	case enumPattern.MatchString(t):
		return 2
	case parenEnumPattern.MatchString(t):
		return 3
	}
	return DefaultLevel
}

// Resolve returns a copy of items with every zero level inferred. When the
// inferred entries include parts, inferred chapters move down to level 2
// and inferred sections to level 3. Explicit levels are kept.
func Resolve(items []types.TocItem) []types.TocItem {
	out := make([]types.TocItem, len(items))
	copy(out, items)

	hasPart := false
	for _, it := range out {
		if it.Level == 0 && partPattern.MatchString(strings.TrimSpace(it.Title)) {
			hasPart = true
			break
		}
	}

	for i, it := range out {
		if it.Level != 0 {
			continue
		}
		t := strings.TrimSpace(it.Title)
		level := InferLevel(t)
		if hasPart {
			switch {
			case chapterPattern.MatchString(t):
				level = 2
			case sectionPattern.MatchString(t), decimal2Pattern.MatchString(t):
				level = 3
			}
		}
		out[i].Level = level
	}
	return out
}

// Node is one bookmark in a tree built by Tree.
type Node struct {
	Title string
	Page  int
	Kids  []*Node
}

// Tree nests items by level. Each entry becomes a child of the closest
// preceding entry with a lower level, or a top-level node when there is
// none. A level that skips ahead (1 then 3) attaches to the nearest open
// ancestor. Items must have their levels resolved; a zero level is
// treated as 1.
func Tree(items []types.TocItem) []*Node {
	root := &Node{}
	open := map[int]*Node{0: root}

	for _, it := range items {
		level := max(it.Level, 1)

		parent := root
		for l := level - 1; l >= 0; l-- {
			if n, ok := open[l]; ok {
				parent = n
				break
			}
		}

		n := &Node{Title: it.Title, Page: it.Page}
		parent.Kids = append(parent.Kids, n)

		open[level] = n
		for l := range open {
			if l > level {
				delete(open, l)
			}
		}
	}
	return root.Kids
}

// Count returns the number of nodes in the forest.
func Count(nodes []*Node) int {
	n := 0
	for _, node := range nodes {
		n += 1 + Count(node.Kids)
	}
	return n
}

