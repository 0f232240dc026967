// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/snipdoc

package snipdoc

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDocumentShape is returned when snippet document root is not a mapping.
	ErrInvalidDocumentShape = errors.New("invalid document structure: expected mapping at root level")
	// ErrInvalidSnippetShape is returned when snippet entry or its scalar fields have wrong structure.
	ErrInvalidSnippetShape = errors.New("invalid snippet shape")
	// ErrInvalidSnippetBody is returned when body field is neither a string nor a sequence of strings.
	ErrInvalidSnippetBody = errors.New("invalid snippet body: expected string or sequence of strings")
	// ErrDecodeDocument is returned when snippet document decoding fails.
	ErrDecodeDocument = errors.New("decode snippet document")
	// ErrReadSnippetFile is returned when snippet file loading fails.
	ErrReadSnippetFile = errors.New("read snippet file")
)

// SnippetError wraps a validation failure with the name of the offending snippet entry.
// The underlying cause is one of the sentinel errors above, available via errors.Is.
type SnippetError struct {
	Err  error
	Name string
}

// Error formats the failure with the offending entry name.
func (snippetError *SnippetError) Error() string {
	return fmt.Sprintf("snippet %q: %v", snippetError.Name, snippetError.Err)
}

// Unwrap exposes the proximate cause for errors.Is and errors.As.
func (snippetError *SnippetError) Unwrap() error {
	return snippetError.Err
}
