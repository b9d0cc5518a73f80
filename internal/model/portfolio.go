package model

import "github.com/google/uuid"

// ContentModel is the template-agnostic representation of a portfolio's
// editable content. It is the only shape the renderers and the static
// project generators ever see; persistence metadata lives in domain.Portfolio.

type Template string

const (
	TemplateModern   Template = "modern"
	TemplateMinimal  Template = "minimal"
	TemplateCreative Template = "creative"
)

// Known reports whether t names one of the shipped template variants.
func (t Template) Known() bool {
	switch t {
	case TemplateModern, TemplateMinimal, TemplateCreative:
		return true
	}
	return false
}

// Templates lists the shipped variants in display order.
func Templates() []Template {
	return []Template{TemplateModern, TemplateMinimal, TemplateCreative}
}

type SkillLevel string

const (
	SkillBeginner     SkillLevel = "Beginner"
	SkillIntermediate SkillLevel = "Intermediate"
	SkillAdvanced     SkillLevel = "Advanced"
	SkillExpert       SkillLevel = "Expert"
)

func (l SkillLevel) Known() bool {
	switch l {
	case SkillBeginner, SkillIntermediate, SkillAdvanced, SkillExpert:
		return true
	}
	return false
}

// WorkExperience is one entry of the experience timeline. ID is a synthetic
// identifier assigned when the entry is created; it never appears in
// generated site output.
type WorkExperience struct {
	ID          string `json:"id,omitempty"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

type Skill struct {
	ID    string     `json:"id,omitempty"`
	Name  string     `json:"name"`
	Level SkillLevel `json:"level"`
	Icon  string     `json:"icon,omitempty"`
}

type Project struct {
	ID           string `json:"id,omitempty"`
	Title        string `json:"title"`
	Image        string `json:"image"`
	GithubLink   string `json:"githubLink"`
	LiveDemoLink string `json:"liveDemoLink,omitempty"`
}

type Contact struct {
	Email    string `json:"email"`
	LinkedIn string `json:"linkedin"`
	Github   string `json:"github"`
	Phone    string `json:"phone,omitempty"`
}

type ContentModel struct {
	Name           string           `json:"name"`
	Bio            string           `json:"bio"`
	ProfileImage   string           `json:"profileImage"`
	ResumeLink     string           `json:"resumeLink"`
	AboutText      string           `json:"aboutText"`
	WorkExperience []WorkExperience `json:"workExperience"`
	Skills         []Skill          `json:"skills"`
	Projects       []Project        `json:"projects"`
	Contact        Contact          `json:"contact"`
	Template       Template         `json:"template"`

	// Deployment metadata, owned by the deployment collaborator and
	// merely carried through.
	VercelProjectID string `json:"vercelProjectId,omitempty"`
	VercelDomain    string `json:"vercelDomain,omitempty"`
}

// NewContentModel seeds a freshly created portfolio with starter content
// for the chosen template so the editor never opens on a blank page.
func NewContentModel(t Template) ContentModel {
	return ContentModel{
		Name:      "John Doe",
		Bio:       "I build things for the web.",
		AboutText: "Tell visitors who you are, what you care about, and what you are working on right now.",
		WorkExperience: []WorkExperience{
			{
				ID:          uuid.NewString(),
				Title:       "Software Engineer",
				Company:     "Acme Inc",
				Duration:    "2022 - Present",
				Description: "Describe what you built and the impact it had.",
			},
		},
		Skills: []Skill{
			{ID: uuid.NewString(), Name: "JavaScript", Level: SkillAdvanced},
			{ID: uuid.NewString(), Name: "Go", Level: SkillIntermediate},
		},
		Projects: []Project{
			{
				ID:         uuid.NewString(),
				Title:      "My First Project",
				GithubLink: "https://github.com",
			},
		},
		Contact:  Contact{},
		Template: t,
	}
}

// Clone returns a deep copy of m. Edit operations work on clones so a
// caller's model value is never mutated in place.
func (m ContentModel) Clone() ContentModel {
	out := m
	out.WorkExperience = append([]WorkExperience(nil), m.WorkExperience...)
	out.Skills = append([]Skill(nil), m.Skills...)
	out.Projects = append([]Project(nil), m.Projects...)
	return out
}

// Normalize replaces nil slices with empty ones and assigns missing item
// IDs. Call it on anything that crossed a serialization boundary so
// renderers can test truthiness uniformly.
func Normalize(m ContentModel) ContentModel {
	out := m.Clone()
	if out.WorkExperience == nil {
		out.WorkExperience = []WorkExperience{}
	}
	if out.Skills == nil {
		out.Skills = []Skill{}
	}
	if out.Projects == nil {
		out.Projects = []Project{}
	}
	for i := range out.WorkExperience {
		if out.WorkExperience[i].ID == "" {
			out.WorkExperience[i].ID = uuid.NewString()
		}
	}
	for i := range out.Skills {
		if out.Skills[i].ID == "" {
			out.Skills[i].ID = uuid.NewString()
		}
		if !out.Skills[i].Level.Known() {
			out.Skills[i].Level = SkillBeginner
		}
	}
	for i := range out.Projects {
		if out.Projects[i].ID == "" {
			out.Projects[i].ID = uuid.NewString()
		}
	}
	return out
}
