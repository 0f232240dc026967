// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/snipdoc

package snipdoc

import "strings"

// Snippet is one validated editor snippet entry from a snippet document.
type Snippet struct {
	// Description is nil when the source entry carries no description key.
	Description *string
	// Name is the mapping key of the entry in the source document.
	Name string
	// Prefix is the trigger text typed in the editor; empty when absent.
	Prefix string
	// Body holds the template lines in source order; tab stops and
	// placeholders are carried verbatim, never interpreted.
	Body []string
}

// Markdown renders one snippet section with a fenced code block tagged by language.
// Rendering is total over validated snippets and produces byte-identical output
// for identical input.
func (snippet Snippet) Markdown(language string) string {
	var out strings.Builder
	out.Grow(64 + len(snippet.Name) + len(snippet.Prefix))

	out.WriteString("### ")
	out.WriteString(snippet.Name)
	out.WriteString("\n **Prefix**: ")
	out.WriteString(snippet.Prefix)
	out.WriteString("\n")

	// An empty-but-present description renders the same "n/a" marker as an
	// absent one; only a non-empty value produces the description section.
	if snippet.Description != nil && *snippet.Description != "" {
		out.WriteString("\n\n**Description**: ")
		out.WriteString(*snippet.Description)
	} else {
		out.WriteString("n/a")
	}

	out.WriteString("\n\n#### Template\n\n```")
	out.WriteString(language)
	out.WriteString("\n")
	out.WriteString(strings.Join(snippet.Body, "\n"))
	out.WriteString("\n```")

	return out.String()
}

// String renders the snippet section without a code block language tag.
func (snippet Snippet) String() string {
	return snippet.Markdown("")
}
