// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/snipdoc

package snipdoc

import (
	"os"
	"path/filepath"
	"testing"
)

// BenchmarkParse measures snippet document decoding and validation cost.
func BenchmarkParse(b *testing.B) {
	data := readBenchmarkFile(b, filepath.Join("testdata", "python.json"))

	b.ReportAllocs()
	b.SetBytes(int64(len(data)))

	for i := 0; i < b.N; i++ {
		if _, err := Parse(data); err != nil {
			b.Fatalf("Parse: %v", err)
		}
	}
}

// BenchmarkRender measures full in-memory render flow.
func BenchmarkRender(b *testing.B) {
	data := readBenchmarkFile(b, filepath.Join("testdata", "python.json"))

	b.ReportAllocs()
	b.SetBytes(int64(len(data)))

	for i := 0; i < b.N; i++ {
		if _, err := Render(data, Options{Language: "python"}); err != nil {
			b.Fatalf("Render: %v", err)
		}
	}
}

// BenchmarkRenderSnippets measures rendering cost over pre-validated snippets.
func BenchmarkRenderSnippets(b *testing.B) {
	data := readBenchmarkFile(b, filepath.Join("testdata", "python.json"))
	snippets, err := Parse(data)
	if err != nil {
		b.Fatalf("Parse: %v", err)
	}

	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if out := RenderSnippets(snippets, "python"); out == "" {
			b.Fatal("empty render output")
		}
	}
}

// readBenchmarkFile loads benchmark fixture file and fails benchmark on read errors.
func readBenchmarkFile(b *testing.B, path string) []byte {
	b.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		b.Fatalf("read benchmark file %q: %v", path, err)
	}

	if len(data) == 0 {
		b.Fatalf("empty benchmark file: %s", path)
	}

	return data
}
