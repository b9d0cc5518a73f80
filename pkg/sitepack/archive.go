// Package sitepack turns a generated file map into a single downloadable
// artifact. Packaging is pure containerization: paths are preserved
// exactly and contents are never altered.
package sitepack

import (
	"archive/zip"
	"bytes"
	"fmt"
	"sort"

	"portfolio-builder/internal/model"
	"portfolio-builder/pkg/generator"
)

// Archive packs files into a zip. Entries are written in sorted path
// order with zero timestamps so equal file maps produce byte-identical
// archives.
func Archive(files generator.FileMap) ([]byte, error) {
	paths := make([]string, 0, len(files))
	for p := range files {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, p := range paths {
		w, err := zw.CreateHeader(&zip.FileHeader{
			Name:   p,
			Method: zip.Deflate,
		})
		if err != nil {
			return nil, fmt.Errorf("create %s: %w", p, err)
		}
		if _, err := w.Write([]byte(files[p])); err != nil {
			return nil, fmt.Errorf("write %s: %w", p, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ArchiveName derives the artifact filename from the model's name, using
// the same slug fallback as the generated manifest.
func ArchiveName(m model.ContentModel) string {
	return generator.ProjectName(m) + ".zip"
}
