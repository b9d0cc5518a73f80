package sitepack

import (
	"archive/zip"
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-builder/internal/model"
	"portfolio-builder/pkg/generator"
)

func readEntries(t *testing.T, b []byte) map[string]string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(b), int64(len(b)))
	require.NoError(t, err)

	out := map[string]string{}
	for _, f := range zr.File {
		rc, err := f.Open()
		require.NoError(t, err)
		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		require.NoError(t, rc.Close())
		out[f.Name] = string(data)
	}
	return out
}

func TestArchive_PreservesPathsAndContents(t *testing.T) {
	files := generator.FileMap{
		"index.html":       "<!DOCTYPE html><title>x</title>",
		"styles.css":       "body{}",
		"assets/notes.txt": "nested path",
	}
	b, err := Archive(files)
	require.NoError(t, err)

	got := readEntries(t, b)
	assert.Equal(t, map[string]string(files), got)
}

func TestArchive_Deterministic(t *testing.T) {
	files := generator.FileMap{"b.txt": "2", "a.txt": "1", "c.txt": "3"}
	first, err := Archive(files)
	require.NoError(t, err)
	second, err := Archive(files)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestArchive_Empty(t *testing.T) {
	b, err := Archive(generator.FileMap{})
	require.NoError(t, err)
	assert.Empty(t, readEntries(t, b))
}

func TestArchiveName(t *testing.T) {
	assert.Equal(t, "ada-lovelace.zip", ArchiveName(model.ContentModel{Name: "Ada Lovelace"}))
	assert.Equal(t, "portfolio.zip", ArchiveName(model.ContentModel{}))
}
