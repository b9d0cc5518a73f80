package model

import "github.com/google/uuid"

// Edit operations. Every operation takes a ContentModel by value and
// returns a new one; the input is never mutated. List items are addressed
// by position, and an out-of-range index makes the operation a no-op
// rather than an error, so a stale editor view can never corrupt the model.

// Field names accepted by SetField.
const (
	FieldName         = "name"
	FieldBio          = "bio"
	FieldProfileImage = "profileImage"
	FieldResumeLink   = "resumeLink"
	FieldAboutText    = "aboutText"
)

// SetField sets a top-level scalar field. Unknown field names are no-ops.
func SetField(m ContentModel, field, value string) ContentModel {
	out := m.Clone()
	switch field {
	case FieldName:
		out.Name = value
	case FieldBio:
		out.Bio = value
	case FieldProfileImage:
		out.ProfileImage = value
	case FieldResumeLink:
		out.ResumeLink = value
	case FieldAboutText:
		out.AboutText = value
	}
	return out
}

// SetContactField sets one contact channel. Unknown fields are no-ops.
func SetContactField(m ContentModel, field, value string) ContentModel {
	out := m.Clone()
	switch field {
	case "email":
		out.Contact.Email = value
	case "linkedin":
		out.Contact.LinkedIn = value
	case "github":
		out.Contact.Github = value
	case "phone":
		out.Contact.Phone = value
	}
	return out
}

// SetWorkExperienceField edits one field of workExperience[i].
func SetWorkExperienceField(m ContentModel, i int, field, value string) ContentModel {
	if i < 0 || i >= len(m.WorkExperience) {
		return m
	}
	out := m.Clone()
	e := &out.WorkExperience[i]
	switch field {
	case "title":
		e.Title = value
	case "company":
		e.Company = value
	case "duration":
		e.Duration = value
	case "description":
		e.Description = value
	}
	return out
}

// SetSkillField edits one field of skills[i]. An unknown level value is
// ignored, the previous level stays.
func SetSkillField(m ContentModel, i int, field, value string) ContentModel {
	if i < 0 || i >= len(m.Skills) {
		return m
	}
	out := m.Clone()
	s := &out.Skills[i]
	switch field {
	case "name":
		s.Name = value
	case "level":
		if l := SkillLevel(value); l.Known() {
			s.Level = l
		}
	case "icon":
		s.Icon = value
	}
	return out
}

// SetProjectField edits one field of projects[i].
func SetProjectField(m ContentModel, i int, field, value string) ContentModel {
	if i < 0 || i >= len(m.Projects) {
		return m
	}
	out := m.Clone()
	p := &out.Projects[i]
	switch field {
	case "title":
		p.Title = value
	case "image":
		p.Image = value
	case "githubLink":
		p.GithubLink = value
	case "liveDemoLink":
		p.LiveDemoLink = value
	}
	return out
}

// AddWorkExperience appends a placeholder entry.
func AddWorkExperience(m ContentModel) ContentModel {
	out := m.Clone()
	out.WorkExperience = append(out.WorkExperience, WorkExperience{
		ID:       uuid.NewString(),
		Title:    "New Position",
		Company:  "Company",
		Duration: "Year - Year",
	})
	return out
}

// AddSkill appends a placeholder skill entry.
func AddSkill(m ContentModel) ContentModel {
	out := m.Clone()
	out.Skills = append(out.Skills, Skill{
		ID:    uuid.NewString(),
		Name:  "New Skill",
		Level: SkillBeginner,
	})
	return out
}

// AddProject appends a placeholder project entry.
func AddProject(m ContentModel) ContentModel {
	out := m.Clone()
	out.Projects = append(out.Projects, Project{
		ID:    uuid.NewString(),
		Title: "New Project",
	})
	return out
}

// RemoveWorkExperience deletes workExperience[i], shifting later entries
// down by one. Out-of-range i is a no-op.
func RemoveWorkExperience(m ContentModel, i int) ContentModel {
	if i < 0 || i >= len(m.WorkExperience) {
		return m
	}
	out := m.Clone()
	out.WorkExperience = append(out.WorkExperience[:i], out.WorkExperience[i+1:]...)
	return out
}

// RemoveSkill deletes skills[i].
func RemoveSkill(m ContentModel, i int) ContentModel {
	if i < 0 || i >= len(m.Skills) {
		return m
	}
	out := m.Clone()
	out.Skills = append(out.Skills[:i], out.Skills[i+1:]...)
	return out
}

// RemoveProject deletes projects[i].
func RemoveProject(m ContentModel, i int) ContentModel {
	if i < 0 || i >= len(m.Projects) {
		return m
	}
	out := m.Clone()
	out.Projects = append(out.Projects[:i], out.Projects[i+1:]...)
	return out
}

// RemoveSkillByID deletes the skill with the given synthetic id. Batched
// callers that interleave adds and deletes should prefer this over the
// positional form; positions are resolved only at the render boundary.
func RemoveSkillByID(m ContentModel, id string) ContentModel {
	for i := range m.Skills {
		if m.Skills[i].ID == id {
			return RemoveSkill(m, i)
		}
	}
	return m
}

// RemoveWorkExperienceByID deletes the experience entry with the given id.
func RemoveWorkExperienceByID(m ContentModel, id string) ContentModel {
	for i := range m.WorkExperience {
		if m.WorkExperience[i].ID == id {
			return RemoveWorkExperience(m, i)
		}
	}
	return m
}

// RemoveProjectByID deletes the project with the given id.
func RemoveProjectByID(m ContentModel, id string) ContentModel {
	for i := range m.Projects {
		if m.Projects[i].ID == id {
			return RemoveProject(m, i)
		}
	}
	return m
}

// Edit is the serialized form of one edit operation, as submitted by the
// editor surface. Ops apply sequentially, last write wins.
type Edit struct {
	Op    string `json:"op"`              // set | setContact | setItem | add | remove
	List  string `json:"list,omitempty"`  // workExperience | skills | projects
	Index int    `json:"index,omitempty"` // for setItem / remove
	Field string `json:"field,omitempty"`
	Value string `json:"value,omitempty"`
}

// Apply applies a single serialized edit. Unknown ops and lists are no-ops.
func Apply(m ContentModel, e Edit) ContentModel {
	switch e.Op {
	case "set":
		return SetField(m, e.Field, e.Value)
	case "setContact":
		return SetContactField(m, e.Field, e.Value)
	case "setItem":
		switch e.List {
		case "workExperience":
			return SetWorkExperienceField(m, e.Index, e.Field, e.Value)
		case "skills":
			return SetSkillField(m, e.Index, e.Field, e.Value)
		case "projects":
			return SetProjectField(m, e.Index, e.Field, e.Value)
		}
	case "add":
		switch e.List {
		case "workExperience":
			return AddWorkExperience(m)
		case "skills":
			return AddSkill(m)
		case "projects":
			return AddProject(m)
		}
	case "remove":
		switch e.List {
		case "workExperience":
			return RemoveWorkExperience(m, e.Index)
		case "skills":
			return RemoveSkill(m, e.Index)
		case "projects":
			return RemoveProject(m, e.Index)
		}
	}
	return m
}

// ApplyEdits applies a batch of serialized edits in order.
func ApplyEdits(m ContentModel, edits []Edit) ContentModel {
	for _, e := range edits {
		m = Apply(m, e)
	}
	return m
}
