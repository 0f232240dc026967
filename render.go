// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/snipdoc

package snipdoc

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	// noSnippetsDocument is the fixed fallback for documents without snippets.
	noSnippetsDocument = "# No Snippets Found\n\nThe provided input contains no valid snippets."
	// sectionSeparator joins rendered snippet sections with a horizontal rule.
	sectionSeparator = "\n\n---\n"
)

// Options configures markdown rendering.
type Options struct {
	// Language tags fenced code blocks; SourceName is used when empty.
	Language string
	// SourceName is the snippet document identifier used as the fallback
	// code block language tag, usually the snippet file base name.
	SourceName string
}

// RenderFile reads a snippet file and renders markdown documentation.
// The file base name becomes the fallback language tag unless the caller
// already set one.
func RenderFile(path string, opt Options) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadSnippetFile, err)
	}

	if strings.TrimSpace(opt.SourceName) == "" {
		base := filepath.Base(path)
		opt.SourceName = strings.TrimSuffix(base, filepath.Ext(base))
	}

	return Render(data, opt)
}

// Render converts snippet document bytes into one markdown document.
func Render(data []byte, opt Options) (string, error) {
	snippets, err := Parse(data)
	if err != nil {
		return "", err
	}

	return RenderSnippets(snippets, resolveLanguage(opt)), nil
}

// RenderSnippets converts validated snippets into one markdown document,
// preserving input order. An empty sequence yields the fixed fallback
// document. The function is pure and never fails.
func RenderSnippets(snippets []Snippet, language string) string {
	if len(snippets) == 0 {
		return noSnippetsDocument
	}

	sections := make([]string, 0, len(snippets))
	for _, snippet := range snippets {
		sections = append(sections, snippet.Markdown(language))
	}

	return strings.Join(sections, sectionSeparator)
}

// resolveLanguage selects explicit language tag over document source name.
func resolveLanguage(opt Options) string {
	language := strings.TrimSpace(opt.Language)
	if language != "" {
		return language
	}

	return strings.TrimSpace(opt.SourceName)
}
