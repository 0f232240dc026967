// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/snipdoc

/*
Package snipdoc renders markdown documentation from editor snippet files.

The package converts a VSCode-style snippet document (a mapping of snippet
name to prefix/body/description) into one deterministic markdown document.
Parsing is all-or-nothing: one malformed entry fails the whole document
with the offending name attached; rendering never fails over validated
snippets and preserves the document order of the source mapping.

Basic render from snippet file bytes:

	data, err := os.ReadFile("python.json")
	if err != nil {
		return err
	}

	md, err := snipdoc.Render(data, snipdoc.Options{
		Language: "python",
	})
	if err != nil {
		return err
	}

	fmt.Println(md)

Render directly from file, with the file base name as the fallback code
block language tag:

	md, err := snipdoc.RenderFile("python.json", snipdoc.Options{})
	if err != nil {
		return err
	}

	fmt.Println(md)

Inspect validation failures:

	_, err := snipdoc.Parse(data)

	var snippetErr *snipdoc.SnippetError
	if errors.As(err, &snippetErr) {
		fmt.Printf("bad entry %q: %v\n", snippetErr.Name, snippetErr.Err)
	}

Work with parsed snippets directly:

	snippets, err := snipdoc.Parse(data)
	if err != nil {
		return err
	}

	fmt.Println(snipdoc.RenderSnippets(snippets, "go"))
*/
package snipdoc
