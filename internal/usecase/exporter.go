package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"

	"portfolio-builder/internal/model"
	"portfolio-builder/pkg/generator"
	"portfolio-builder/pkg/sitepack"
)

// generatorVersion is folded into cache keys so a generator change
// invalidates previously cached sites.
const generatorVersion = "v1"

// Exporter runs the export pipeline: generate the static project for a
// content model and package it as a downloadable archive. Generation is
// deterministic, so results are cached by content hash when a cache is
// available.
type Exporter struct {
	cache SiteCache
	log   *logrus.Entry
}

func NewExporter(cache SiteCache) *Exporter {
	return &Exporter{
		cache: cache,
		log:   logrus.WithField("component", "exporter"),
	}
}

// ExportResult is a packaged site ready to hand to the client.
type ExportResult struct {
	Archive  []byte
	Filename string
}

// Files returns the generated project for m, consulting the cache first.
// A cache failure only costs a regeneration.
func (e *Exporter) Files(ctx context.Context, m model.ContentModel) (generator.FileMap, error) {
	key, err := cacheKey(m)
	if err != nil {
		return nil, err
	}

	if e.cache != nil {
		if files, ok := e.cache.Get(ctx, key); ok {
			e.log.WithField("key", key).Debug("site cache hit")
			return files, nil
		}
	}

	files, err := generator.Generate(m)
	if err != nil {
		return nil, err
	}

	if e.cache != nil {
		e.cache.Set(ctx, key, files)
	}
	return files, nil
}

// Export generates and archives the site for m. The caller's model is
// untouched regardless of outcome.
func (e *Exporter) Export(ctx context.Context, m model.ContentModel) (*ExportResult, error) {
	files, err := e.Files(ctx, m)
	if err != nil {
		return nil, fmt.Errorf("generate site: %w", err)
	}

	archive, err := sitepack.Archive(files)
	if err != nil {
		return nil, fmt.Errorf("archive site: %w", err)
	}

	e.log.WithFields(logrus.Fields{
		"template": m.Template,
		"files":    len(files),
		"bytes":    len(archive),
	}).Info("site exported")

	return &ExportResult{
		Archive:  archive,
		Filename: sitepack.ArchiveName(m),
	}, nil
}

// cacheKey hashes the canonical JSON form of the model. Struct marshaling
// has a fixed field order, so structurally equal models share a key.
func cacheKey(m model.ContentModel) (string, error) {
	b, err := json.Marshal(m)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(b)
	return "site:" + generatorVersion + ":" + hex.EncodeToString(sum[:]), nil
}
