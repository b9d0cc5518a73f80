// Package generator emits complete standalone static-site projects from a
// content model, one generator per template variant. Output is a pure
// function of the model: structurally equal models produce byte-identical
// file maps, which is what makes export caching and diffing safe.
package generator

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"strings"

	"github.com/gosimple/slug"

	"portfolio-builder/internal/model"
	"portfolio-builder/pkg/renderer"
)

// FileMap is a generated project: relative file path to file contents.
// It is exactly the shape the deployment collaborator accepts and the
// shape the archiver packs.
type FileMap map[string]string

// ErrUnknownTemplate is returned when no generator is registered for the
// model's template value.
var ErrUnknownTemplate = errors.New("unknown template")

// SiteGenerator produces the standalone project for one template variant.
type SiteGenerator interface {
	Template() model.Template
	Generate(m model.ContentModel) (FileMap, error)
}

var registry = func() map[model.Template]SiteGenerator {
	out := map[model.Template]SiteGenerator{}
	for _, g := range []SiteGenerator{newModern(), newMinimal(), newCreative()} {
		out[g.Template()] = g
	}
	return out
}()

// ForTemplate returns the generator for a template variant.
func ForTemplate(t model.Template) (SiteGenerator, bool) {
	g, ok := registry[t]
	return g, ok
}

// Generate dispatches to the model's variant generator.
func Generate(m model.ContentModel) (FileMap, error) {
	g, ok := ForTemplate(m.Template)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTemplate, m.Template)
	}
	return g.Generate(m)
}

// ProjectName derives the deploy/manifest/archive name from the model's
// name. An empty or unslugifiable name degrades to the fixed fallback so
// the manifest can never carry an empty name.
func ProjectName(m model.ContentModel) string {
	s := slug.Make(strings.TrimSpace(m.Name))
	if s == "" {
		return "portfolio"
	}
	return s
}

// siteShell is the exported site's layout: document metadata, icon link,
// stylesheet link, script include. The body is the renderer's read-only
// markup, so section presence in the export matches the live preview by
// construction.
var siteShell = template.Must(template.New("shell").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<link rel="icon" type="image/svg+xml" href="favicon.svg">
<link rel="stylesheet" href="styles.css">
</head>
<body class="tpl-{{.Variant}}">
{{.Body}}<script src="site.js"></script>
</body>
</html>
`))

var faviconTemplate = template.Must(template.New("favicon").Parse(
	`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 64 64"><rect width="64" height="64" rx="12" fill="{{.Color}}"/><text x="32" y="43" font-size="30" font-family="sans-serif" text-anchor="middle" fill="#ffffff">{{.Initial}}</text></svg>
`))

// vercelConfig is the static hosting config emitted with every project.
const vercelConfig = `{
  "cleanUrls": true,
  "trailingSlash": false
}
`

// variant groups the per-template pieces of a generated project.
type variant struct {
	template model.Template
	accent   string
	deps     map[string]string
	script   func(m model.ContentModel) (string, error)
}

func (v *variant) Template() model.Template { return v.template }

func (v *variant) Generate(m model.ContentModel) (FileMap, error) {
	if m.Template != v.template {
		return nil, fmt.Errorf("%w: generator for %q got %q", ErrUnknownTemplate, v.template, m.Template)
	}

	// Defaulting happens once, here and inside the renderer's read-only
	// mode, from the same model value.
	dm := model.WithDefaults(m)

	body, err := renderer.Body(m, renderer.Options{})
	if err != nil {
		return nil, fmt.Errorf("render body: %w", err)
	}

	var page bytes.Buffer
	err = siteShell.Execute(&page, map[string]interface{}{
		"Title":   dm.Name,
		"Variant": string(v.template),
		"Body":    body,
	})
	if err != nil {
		return nil, fmt.Errorf("render shell: %w", err)
	}

	script, err := v.script(dm)
	if err != nil {
		return nil, fmt.Errorf("render script: %w", err)
	}

	manifest, err := manifestJSON(ProjectName(m), v.deps)
	if err != nil {
		return nil, fmt.Errorf("render manifest: %w", err)
	}

	icon, err := favicon(dm.Name, v.accent)
	if err != nil {
		return nil, fmt.Errorf("render favicon: %w", err)
	}

	return FileMap{
		"index.html":   page.String(),
		"styles.css":   renderer.Stylesheet(v.template),
		"site.js":      script,
		"favicon.svg":  icon,
		"package.json": manifest,
		"vercel.json":  vercelConfig,
	}, nil
}

func favicon(name, color string) (string, error) {
	initial := "P"
	for _, r := range strings.TrimSpace(name) {
		initial = strings.ToUpper(string(r))
		break
	}
	var buf bytes.Buffer
	err := faviconTemplate.Execute(&buf, map[string]string{"Color": color, "Initial": initial})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
