package generator

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"portfolio-builder/internal/model"
	"portfolio-builder/pkg/renderer"
)

func sampleModel(t model.Template) model.ContentModel {
	return model.ContentModel{
		Template:  t,
		Name:      "Ada Lovelace",
		Bio:       "Analyst and <b>metaphysician</b>.",
		AboutText: "I write about engines.",
		WorkExperience: []model.WorkExperience{
			{ID: "w1", Title: "Analyst", Company: "Babbage & Co", Duration: "1842", Description: "Notes on the Analytical Engine."},
		},
		Skills:   []model.Skill{{ID: "s1", Name: "Mathematics", Level: model.SkillExpert}},
		Projects: []model.Project{{ID: "p1", Title: "Note G", GithubLink: "https://github.com/ada/note-g"}},
		Contact:  model.Contact{Email: "ada@example.com"},
	}
}

// parseHTML fails the test if the document is not well-formed enough for
// the tokenizer; returns the root node for text walking.
func parseHTML(t *testing.T, doc string) *html.Node {
	t.Helper()
	root, err := html.Parse(strings.NewReader(doc))
	require.NoError(t, err)
	return root
}

// collectText gathers all visible text nodes, skipping script and style.
func collectText(n *html.Node, sb *strings.Builder) {
	if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
		return
	}
	if n.Type == html.TextNode {
		sb.WriteString(n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, sb)
	}
}

func visibleText(t *testing.T, doc string) string {
	var sb strings.Builder
	collectText(parseHTML(t, doc), &sb)
	return sb.String()
}

func TestGenerate_EmitsCompleteProject(t *testing.T) {
	for _, tpl := range model.Templates() {
		files, err := Generate(sampleModel(tpl))
		require.NoError(t, err, "template %s", tpl)

		for _, path := range []string{"index.html", "styles.css", "site.js", "favicon.svg", "package.json", "vercel.json"} {
			assert.Contains(t, files, path, "template %s", tpl)
			assert.NotEmpty(t, files[path], "template %s %s", tpl, path)
		}
		assert.Equal(t, renderer.Stylesheet(tpl), files["styles.css"])
		assert.True(t, json.Valid([]byte(files["package.json"])))
		assert.True(t, json.Valid([]byte(files["vercel.json"])))
	}
}

func TestGenerate_UnknownTemplate(t *testing.T) {
	m := sampleModel("retro")
	_, err := Generate(m)
	require.ErrorIs(t, err, ErrUnknownTemplate)
}

func TestGenerate_Deterministic(t *testing.T) {
	for _, tpl := range model.Templates() {
		a, err := Generate(sampleModel(tpl))
		require.NoError(t, err)
		b, err := Generate(sampleModel(tpl))
		require.NoError(t, err)
		assert.Equal(t, a, b, "template %s", tpl)
	}
}

func TestGenerate_ManifestNameFallsBackForEmptyName(t *testing.T) {
	m := sampleModel(model.TemplateModern)
	m.Name = ""
	files, err := Generate(m)
	require.NoError(t, err)

	var manifest struct {
		Name string `json:"name"`
	}
	require.NoError(t, json.Unmarshal([]byte(files["package.json"]), &manifest))
	assert.Equal(t, "portfolio", manifest.Name)
}

func TestProjectName(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"Ada Lovelace", "ada-lovelace"},
		{"", "portfolio"},
		{"   ", "portfolio"},
		{"!!!", "portfolio"},
	}
	for _, tc := range cases {
		m := model.ContentModel{Name: tc.name}
		assert.Equal(t, tc.want, ProjectName(m), "name %q", tc.name)
	}
}

func TestGenerate_AdversarialStringsStayInert(t *testing.T) {
	m := sampleModel(model.TemplateCreative)
	m.Name = `Eve "the ` + "`" + `breaker` + "`" + `" </script>`
	m.Bio = `Hi "there" <b>bold</b><script>alert(1)</script>`
	m.Projects[0].Title = `"quoted" & <dangerous>`

	for _, tpl := range model.Templates() {
		m.Template = tpl
		files, err := Generate(m)
		require.NoError(t, err, "template %s", tpl)

		// the entry page re-parses cleanly and the hostile strings are
		// text, not markup
		text := visibleText(t, files["index.html"])
		assert.Contains(t, text, `Hi "there" bold`, "template %s", tpl)
		assert.Contains(t, text, `"quoted" & <dangerous>`, "template %s", tpl)
		assert.NotContains(t, text, "alert(1)", "template %s", tpl)

		// no script element in the page carries injected content
		assert.NotContains(t, files["index.html"], "alert(1)")

		// the manifest survives JSON re-parsing with the name intact
		require.True(t, json.Valid([]byte(files["package.json"])), "template %s", tpl)

		// the emitted script cannot be terminated early by user data
		assert.NotContains(t, files["site.js"], "</script")
		var meta struct {
			Name string `json:"name"`
		}
		header := strings.SplitN(files["site.js"], ";\n", 2)[0]
		require.NoError(t, json.Unmarshal([]byte(strings.TrimPrefix(header, "var site = ")), &meta))
		assert.Equal(t, m.Name, meta.Name, "name round-trips through the script verbatim")
	}
}

func TestGenerate_RichTextMarkupRendersAsFormatting(t *testing.T) {
	m := sampleModel(model.TemplateMinimal)
	m.Bio = `Hi "there" <b>bold</b>`
	files, err := Generate(m)
	require.NoError(t, err)

	assert.Contains(t, files["index.html"], "<b>bold</b>")
	assert.NotContains(t, visibleText(t, files["index.html"]), "<b>")
}

func TestGenerate_SectionPresenceMatchesPolicy(t *testing.T) {
	full := sampleModel(model.TemplateModern)

	empty := model.ContentModel{Template: model.TemplateModern, Name: "A"}

	noAbout := sampleModel(model.TemplateModern)
	noAbout.AboutText = ""

	for _, m := range []model.ContentModel{full, empty, noAbout} {
		files, err := Generate(m)
		require.NoError(t, err)
		page := files["index.html"]

		for _, s := range []model.Section{
			model.SectionAbout, model.SectionExperience, model.SectionSkills,
			model.SectionProjects, model.SectionContact,
		} {
			want := model.SectionVisible(s, m)
			assert.Equal(t, want, strings.Contains(page, `id="`+string(s)+`"`), "section %s", s)
			assert.Equal(t, want, strings.Contains(page, `href="#`+string(s)+`"`), "nav link %s", s)
		}
	}
}

// The preview surface and the export must agree: the generated entry page
// embeds exactly the renderer's read-only body.
func TestGenerate_PageEmbedsReadonlyRendererBody(t *testing.T) {
	m := sampleModel(model.TemplateMinimal)
	files, err := Generate(m)
	require.NoError(t, err)

	body, err := renderer.Body(m, renderer.Options{})
	require.NoError(t, err)
	assert.Contains(t, files["index.html"], string(body))
	assert.NotContains(t, files["index.html"], "contenteditable")
}

func TestGenerate_AboutOmittedEverywhereWhenEmpty(t *testing.T) {
	m := sampleModel(model.TemplateModern)
	m.AboutText = ""
	files, err := Generate(m)
	require.NoError(t, err)

	page, err := renderer.Page(m, renderer.Options{})
	require.NoError(t, err)

	for _, doc := range []string{files["index.html"], page} {
		assert.NotContains(t, doc, `id="about"`)
		assert.NotContains(t, doc, `href="#about"`)
	}
}
