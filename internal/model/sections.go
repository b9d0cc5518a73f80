package model

// Section names a renderable block of the portfolio page.
type Section string

const (
	SectionProfile    Section = "profile"
	SectionAbout      Section = "about"
	SectionExperience Section = "experience"
	SectionSkills     Section = "skills"
	SectionProjects   Section = "projects"
	SectionContact    Section = "contact"
)

// sectionOrder is the order sections appear on every template variant and
// in every generated nav menu.
var sectionOrder = []Section{
	SectionProfile,
	SectionAbout,
	SectionExperience,
	SectionSkills,
	SectionProjects,
	SectionContact,
}

// SectionVisible is the single source of truth for section presence. The
// interactive renderer and the static generators must consult it and
// nothing else; a divergence between the two is a correctness bug.
func SectionVisible(s Section, m ContentModel) bool {
	switch s {
	case SectionProfile:
		return true
	case SectionAbout:
		return m.AboutText != ""
	case SectionExperience:
		return len(m.WorkExperience) > 0
	case SectionSkills:
		return len(m.Skills) > 0
	case SectionProjects:
		return len(m.Projects) > 0
	case SectionContact:
		c := m.Contact
		return c.Email != "" || c.LinkedIn != "" || c.Github != "" || c.Phone != ""
	}
	return false
}

// VisibleSections returns the ordered list of sections that should render
// for m. Drives both page bodies and nav menus.
func VisibleSections(m ContentModel) []Section {
	out := make([]Section, 0, len(sectionOrder))
	for _, s := range sectionOrder {
		if SectionVisible(s, m) {
			out = append(out, s)
		}
	}
	return out
}
