package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSectionVisible_Profile_AlwaysTrue(t *testing.T) {
	assert.True(t, SectionVisible(SectionProfile, ContentModel{}))
	assert.True(t, SectionVisible(SectionProfile, NewContentModel(TemplateModern)))
}

func TestSectionVisible_DataDrivenSections(t *testing.T) {
	cases := []struct {
		name    string
		section Section
		model   ContentModel
		want    bool
	}{
		{"about empty", SectionAbout, ContentModel{}, false},
		{"about set", SectionAbout, ContentModel{AboutText: "hi"}, true},
		{"experience empty", SectionExperience, ContentModel{}, false},
		{"experience set", SectionExperience, ContentModel{WorkExperience: []WorkExperience{{Title: "x"}}}, true},
		{"skills empty", SectionSkills, ContentModel{}, false},
		{"skills set", SectionSkills, ContentModel{Skills: []Skill{{Name: "Go"}}}, true},
		{"projects empty", SectionProjects, ContentModel{}, false},
		{"projects set", SectionProjects, ContentModel{Projects: []Project{{Title: "p"}}}, true},
		{"contact empty", SectionContact, ContentModel{}, false},
		{"contact email only", SectionContact, ContentModel{Contact: Contact{Email: "a@b.c"}}, true},
		{"contact phone only", SectionContact, ContentModel{Contact: Contact{Phone: "123"}}, true},
		{"contact github only", SectionContact, ContentModel{Contact: Contact{Github: "gh"}}, true},
		{"contact linkedin only", SectionContact, ContentModel{Contact: Contact{LinkedIn: "in"}}, true},
		{"unknown section", Section("banner"), NewContentModel(TemplateModern), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, SectionVisible(tc.section, tc.model))
		})
	}
}

func TestVisibleSections_OrderAndFiltering(t *testing.T) {
	m := ContentModel{
		AboutText: "about me",
		Projects:  []Project{{Title: "p"}},
		Contact:   Contact{Email: "a@b.c"},
	}
	got := VisibleSections(m)
	assert.Equal(t, []Section{SectionProfile, SectionAbout, SectionProjects, SectionContact}, got)
}

func TestVisibleSections_EmptyModelIsHeroOnly(t *testing.T) {
	assert.Equal(t, []Section{SectionProfile}, VisibleSections(ContentModel{}))
}
