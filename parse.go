// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/snipdoc

package snipdoc

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Parse decodes snippet document bytes and returns validated snippets in
// document order. YAML 1.2 is a superset of JSON, so both plain VSCode
// .json snippet files and YAML documents decode through the same path.
func Parse(data []byte) ([]Snippet, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodeDocument, err)
	}

	return ParseNode(&root)
}

// ParseNode validates a decoded snippet document tree and returns snippets
// in document order. Parsing is all-or-nothing: the first invalid entry
// aborts the whole document and surfaces as *SnippetError carrying the
// offending entry name; no partial result is ever returned.
func ParseNode(root *yaml.Node) ([]Snippet, error) {
	document := resolveNode(root)
	if document == nil || document.Kind != yaml.MappingNode {
		return nil, ErrInvalidDocumentShape
	}

	snippets := make([]Snippet, 0, len(document.Content)/2)
	position := make(map[string]int, len(document.Content)/2)

	for index := 0; index+1 < len(document.Content); index += 2 {
		name := document.Content[index].Value
		snippet, err := newSnippet(name, document.Content[index+1])
		if err != nil {
			return nil, &SnippetError{Name: name, Err: err}
		}

		// Duplicate keys keep the first position with the last value,
		// matching mapping semantics of the source format.
		if existing, ok := position[name]; ok {
			snippets[existing] = snippet
			continue
		}

		position[name] = len(snippets)
		snippets = append(snippets, snippet)
	}

	return snippets, nil
}

// newSnippet validates one raw entry value and builds a Snippet.
func newSnippet(name string, raw *yaml.Node) (Snippet, error) {
	fields := resolveNode(raw)
	if fields == nil || fields.Kind != yaml.MappingNode {
		return Snippet{}, fmt.Errorf("%w: expected object, got %s", ErrInvalidSnippetShape, nodeKindName(fields))
	}

	snippet := Snippet{Name: name, Body: []string{}}

	for index := 0; index+1 < len(fields.Content); index += 2 {
		key := fields.Content[index].Value
		value := resolveNode(fields.Content[index+1])

		switch key {
		case "prefix":
			prefix, ok := scalarString(value)
			if !ok {
				return Snippet{}, fmt.Errorf("%w: field %q must be a string, got %s", ErrInvalidSnippetShape, key, nodeKindName(value))
			}

			snippet.Prefix = prefix
		case "body":
			body, err := bodyLines(value)
			if err != nil {
				return Snippet{}, err
			}

			snippet.Body = body
		case "description":
			if isNullNode(value) {
				continue
			}

			description, ok := scalarString(value)
			if !ok {
				return Snippet{}, fmt.Errorf("%w: field %q must be a string, got %s", ErrInvalidSnippetShape, key, nodeKindName(value))
			}

			snippet.Description = &description
		}
	}

	return snippet, nil
}

// bodyLines normalizes the body field: a bare string becomes a one-element
// sequence, a sequence of strings is used as-is, anything else fails.
func bodyLines(node *yaml.Node) ([]string, error) {
	if line, ok := scalarString(node); ok && !isNullNode(node) {
		return []string{line}, nil
	}

	if node == nil || node.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("%w, got %s", ErrInvalidSnippetBody, nodeKindName(node))
	}

	lines := make([]string, 0, len(node.Content))
	for _, item := range node.Content {
		line, ok := scalarString(resolveNode(item))
		if !ok {
			return nil, fmt.Errorf("%w, got %s element", ErrInvalidSnippetBody, nodeKindName(item))
		}

		lines = append(lines, line)
	}

	return lines, nil
}

// scalarString extracts a string scalar value; explicit nulls report
// success with an empty value so callers can default absent-like fields.
func scalarString(node *yaml.Node) (string, bool) {
	if node == nil || node.Kind != yaml.ScalarNode {
		return "", false
	}

	switch node.Tag {
	case "!!str", "":
		return node.Value, true
	case "!!null":
		return "", true
	default:
		return "", false
	}
}

// isNullNode reports whether node is an absent-like explicit null scalar.
func isNullNode(node *yaml.Node) bool {
	return node == nil || (node.Kind == yaml.ScalarNode && node.Tag == "!!null")
}

// resolveNode unwraps document and alias indirections down to a content node.
func resolveNode(node *yaml.Node) *yaml.Node {
	for node != nil {
		switch node.Kind {
		case yaml.DocumentNode:
			if len(node.Content) == 0 {
				return nil
			}

			node = node.Content[0]
		case yaml.AliasNode:
			node = node.Alias
		default:
			return node
		}
	}

	return nil
}

// nodeKindName names node structure for validation error messages.
func nodeKindName(node *yaml.Node) string {
	if node == nil {
		return "nothing"
	}

	switch node.Kind {
	case yaml.MappingNode:
		return "object"
	case yaml.SequenceNode:
		return "array"
	case yaml.ScalarNode:
		switch node.Tag {
		case "!!str":
			return "string"
		case "!!int", "!!float":
			return "number"
		case "!!bool":
			return "boolean"
		case "!!null":
			return "null"
		default:
			return "scalar"
		}
	case yaml.DocumentNode:
		return "document"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown value"
	}
}
