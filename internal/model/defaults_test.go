package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithDefaults_FillsEmptyDisplayFields(t *testing.T) {
	m := ContentModel{Template: TemplateModern}
	got := WithDefaults(m)

	assert.Equal(t, "Your Name", got.Name)
	assert.NotEmpty(t, got.Bio)
	assert.NotEmpty(t, got.ProfileImage)
	// section-gating fields stay empty so hidden sections stay hidden
	assert.Empty(t, got.AboutText)
	assert.Empty(t, got.WorkExperience)
	assert.Empty(t, got.Skills)
	assert.Empty(t, got.Projects)
}

func TestWithDefaults_PreservesUserValues(t *testing.T) {
	m := ContentModel{
		Template:     TemplateMinimal,
		Name:         "Ada Lovelace",
		Bio:          "first programmer",
		ProfileImage: "https://example.com/ada.png",
		Projects:     []Project{{Title: "Engine", Image: "https://example.com/engine.png"}},
	}
	got := WithDefaults(m)
	assert.Equal(t, "Ada Lovelace", got.Name)
	assert.Equal(t, "first programmer", got.Bio)
	assert.Equal(t, "https://example.com/ada.png", got.ProfileImage)
	assert.Equal(t, "https://example.com/engine.png", got.Projects[0].Image)
}

func TestWithDefaults_FillsProjectImagePlaceholder(t *testing.T) {
	m := ContentModel{Template: TemplateCreative, Projects: []Project{{Title: "p"}}}
	got := WithDefaults(m)
	require.Len(t, got.Projects, 1)
	assert.NotEmpty(t, got.Projects[0].Image)
}

func TestWithDefaults_Idempotent(t *testing.T) {
	for _, tpl := range append(Templates(), Template("bogus")) {
		m := ContentModel{Template: tpl, Projects: []Project{{Title: "p"}}}
		once := WithDefaults(m)
		twice := WithDefaults(once)
		assert.Equal(t, once, twice, "template %s", tpl)
	}
}

func TestWithDefaults_VariantPlaceholdersDiffer(t *testing.T) {
	modern := WithDefaults(ContentModel{Template: TemplateModern})
	creative := WithDefaults(ContentModel{Template: TemplateCreative})
	assert.NotEqual(t, modern.ProfileImage, creative.ProfileImage)
}
