package generator

import (
	"encoding/json"

	"portfolio-builder/internal/model"
)

// packageManifest is the generated project's dependency manifest. Struct
// marshaling keeps field order fixed and map keys sorted, so the emitted
// file is deterministic, and every user-derived string goes through JSON
// quoting rather than interpolation.
type packageManifest struct {
	Name         string            `json:"name"`
	Version      string            `json:"version"`
	Private      bool              `json:"private"`
	Scripts      map[string]string `json:"scripts"`
	Dependencies map[string]string `json:"dependencies"`
}

func manifestJSON(name string, deps map[string]string) (string, error) {
	b, err := json.MarshalIndent(packageManifest{
		Name:    name,
		Version: "1.0.0",
		Private: true,
		Scripts: map[string]string{
			"start": "serve .",
		},
		Dependencies: deps,
	}, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b) + "\n", nil
}

// siteMeta is the metadata block injected into site.js. json.Marshal
// escapes angle brackets, so a hostile name can never contain a literal
// "</script>" inside the emitted source.
type siteMeta struct {
	Name     string   `json:"name"`
	Sections []string `json:"sections"`
}

func siteMetaJSON(m model.ContentModel) (string, error) {
	meta := siteMeta{Name: m.Name, Sections: []string{}}
	for _, s := range model.VisibleSections(m) {
		meta.Sections = append(meta.Sections, string(s))
	}
	b, err := json.Marshal(meta)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
