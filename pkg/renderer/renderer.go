// Package renderer turns a content model into the HTML page for its
// template variant. The same templates serve the live editor (editable
// mode decorates fields with contenteditable hooks) and the static
// project generators (read-only mode), so the two targets cannot drift.
package renderer

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"github.com/microcosm-cc/bluemonday"

	"portfolio-builder/internal/model"
)

//go:embed templates/*.tmpl templates/*.css
var assets embed.FS

// Options controls how a page is rendered.
type Options struct {
	// Editable decorates every leaf field with contenteditable and
	// data-field/data-index attributes for the builder UI. Read-only
	// rendering (Editable=false) applies placeholder defaulting and is
	// the mode the static generators embed.
	Editable bool
}

// richText is the constrained inline-markup subset permitted in bio,
// about and contact fields. Markup in this subset round-trips verbatim;
// anything else (scripts in particular) is stripped.
var richText = func() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements("b", "i", "em", "strong", "u", "br", "span")
	p.AllowAttrs("href").OnElements("a")
	p.AllowStandardURLs()
	return p
}()

// SanitizeRichText applies the rich-text policy to a user-supplied HTML
// fragment. Exposed so edit round-trip behavior is testable on its own.
func SanitizeRichText(s string) template.HTML {
	return template.HTML(richText.Sanitize(s))
}

var bodyTemplates = func() map[model.Template]*template.Template {
	out := make(map[model.Template]*template.Template, 3)
	for _, t := range model.Templates() {
		name := string(t) + ".tmpl"
		out[t] = template.Must(template.New(name).ParseFS(assets, "templates/"+name))
	}
	return out
}()

var notFoundTemplate = template.Must(
	template.New("notfound.tmpl").ParseFS(assets, "templates/notfound.tmpl"))

var stylesheets = func() map[model.Template]string {
	out := make(map[model.Template]string, 3)
	for _, t := range model.Templates() {
		b, err := assets.ReadFile("templates/" + string(t) + ".css")
		if err != nil {
			panic(err)
		}
		out[t] = string(b)
	}
	return out
}()

// Stylesheet returns the global stylesheet for a template variant, or an
// empty string for an unknown variant.
func Stylesheet(t model.Template) string {
	return stylesheets[t]
}

// NavItem is one entry of the section navigation menu.
type NavItem struct {
	Label  string
	Anchor string
}

var navLabels = map[model.Section]string{
	model.SectionAbout:      "About",
	model.SectionExperience: "Experience",
	model.SectionSkills:     "Skills",
	model.SectionProjects:   "Projects",
	model.SectionContact:    "Contact",
}

// Nav derives the navigation menu from the visibility policy. The
// generators use the same function for the exported site's menu.
func Nav(m model.ContentModel) []NavItem {
	var out []NavItem
	for _, s := range model.VisibleSections(m) {
		if s == model.SectionProfile {
			continue // the hero is not a nav target
		}
		out = append(out, NavItem{Label: navLabels[s], Anchor: "#" + string(s)})
	}
	return out
}

// pageData is what the variant templates execute against.
type pageData struct {
	M        model.ContentModel
	Editable bool
	Bio      template.HTML
	About    template.HTML
	Nav      []NavItem
}

// Show reports section visibility inside a template.
func (p pageData) Show(name string) bool {
	return model.SectionVisible(model.Section(name), p.M)
}

// Edit emits contenteditable attributes for a top-level field in editable
// mode and nothing otherwise. Field names are package constants, never
// user input.
func (p pageData) Edit(field string) template.HTMLAttr {
	if !p.Editable {
		return ""
	}
	return template.HTMLAttr(fmt.Sprintf(`contenteditable="true" data-field="%s"`, field))
}

// EditItem is Edit for one field of a list item.
func (p pageData) EditItem(list string, index int, field string) template.HTMLAttr {
	if !p.Editable {
		return ""
	}
	return template.HTMLAttr(fmt.Sprintf(`contenteditable="true" data-list="%s" data-index="%d" data-field="%s"`, list, index, field))
}

// LevelPct maps a skill level to a bar width for the skill meters.
func (p pageData) LevelPct(l model.SkillLevel) int {
	switch l {
	case model.SkillIntermediate:
		return 50
	case model.SkillAdvanced:
		return 75
	case model.SkillExpert:
		return 100
	default:
		return 25
	}
}

func newPageData(m model.ContentModel, opts Options) pageData {
	if opts.Editable {
		m = model.Normalize(m)
	} else {
		m = model.WithDefaults(m)
	}
	return pageData{
		M:        m,
		Editable: opts.Editable,
		Bio:      SanitizeRichText(m.Bio),
		About:    SanitizeRichText(m.AboutText),
		Nav:      Nav(m),
	}
}

// Body renders the section markup for m's template variant. An unknown
// template value renders the inert not-found placeholder; Body never
// fails on user data.
func Body(m model.ContentModel, opts Options) (template.HTML, error) {
	tpl, ok := bodyTemplates[m.Template]
	if !ok {
		var buf bytes.Buffer
		if err := notFoundTemplate.Execute(&buf, map[string]string{"Template": string(m.Template)}); err != nil {
			return "", err
		}
		return template.HTML(buf.String()), nil
	}

	var buf bytes.Buffer
	if err := tpl.Execute(&buf, newPageData(m, opts)); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

var previewShell = template.Must(template.New("shell").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<link rel="icon" href="data:,">
<style>{{.CSS}}</style>
</head>
<body class="tpl-{{.Variant}}">
{{.Body}}</body>
</html>
`))

// Page renders a complete standalone HTML document with the variant
// stylesheet inlined, suitable for the preview surface and for thumbnail
// snapshots.
func Page(m model.ContentModel, opts Options) (string, error) {
	body, err := Body(m, opts)
	if err != nil {
		return "", err
	}

	title := m.Name
	if !opts.Editable {
		title = model.WithDefaults(m).Name
	}
	if title == "" {
		title = "Portfolio"
	}

	var buf bytes.Buffer
	err = previewShell.Execute(&buf, map[string]interface{}{
		"Title":   title,
		"CSS":     template.CSS(Stylesheet(m.Template)),
		"Variant": string(m.Template),
		"Body":    body,
	})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
