// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package strip

import (
	"errors"
	"fmt"
)

// Kind classifies a strip failure.
type Kind int

const (
	// KindProcessing covers parse, outline and write failures.
	KindProcessing Kind = iota
	// KindNotFound means the input path does not name an existing file.
	KindNotFound
	// KindOutputExists means the output exists and overwriting is disabled.
	KindOutputExists
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindOutputExists:
		return "output exists"
	default:
		return "processing"
	}
}

// Sentinels for errors.Is. Each *Error matches the sentinel of its Kind.
var (
	ErrProcessing   = errors.New("processing failed")
	ErrNotFound     = errors.New("file not found")
	ErrOutputExists = errors.New("output file exists")
)

// Error is returned by Strip. Path names the file the failure concerns:
// the input for KindNotFound and KindProcessing, the output for
// KindOutputExists.
type Error struct {
	Kind Kind
	Path string
	Err  error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindNotFound:
		return fmt.Sprintf("file '%s' not found", e.Path)
	case KindOutputExists:
		return fmt.Sprintf("output file '%s' already exists", e.Path)
	default:
		return fmt.Sprintf("processing %s: %v", e.Path, e.Err)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the sentinel for e.Kind.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Kind == KindNotFound
	case ErrOutputExists:
		return e.Kind == KindOutputExists
	case ErrProcessing:
		return e.Kind == KindProcessing
	}
	return false
}
