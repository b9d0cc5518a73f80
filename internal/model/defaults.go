package model

import "strings"

// Placeholder values substituted for empty display fields before rendering
// or generating. The renderer's read-only mode and the static generators
// must both go through WithDefaults exactly once so the live preview and
// the exported site never drift.

type placeholderSet struct {
	Name         string
	Bio          string
	ProfileImage string
	ProjectImage string
}

var placeholdersByTemplate = map[Template]placeholderSet{
	TemplateModern: {
		Name:         "Your Name",
		Bio:          "A short introduction about yourself.",
		ProfileImage: "https://ui-avatars.com/api/?name=Your+Name&size=256&background=2563eb&color=fff",
		ProjectImage: "https://placehold.co/640x360/2563eb/ffffff?text=Project",
	},
	TemplateMinimal: {
		Name:         "Your Name",
		Bio:          "A short introduction about yourself.",
		ProfileImage: "https://ui-avatars.com/api/?name=Your+Name&size=256&background=111111&color=fff",
		ProjectImage: "https://placehold.co/640x360/111111/ffffff?text=Project",
	},
	TemplateCreative: {
		Name:         "Your Name",
		Bio:          "A short introduction about yourself.",
		ProfileImage: "https://ui-avatars.com/api/?name=Your+Name&size=256&background=7c3aed&color=fff",
		ProjectImage: "https://placehold.co/640x360/7c3aed/ffffff?text=Project",
	},
}

// fallbackPlaceholders is used when the template value is unknown; the
// renderer will show its not-found page anyway, but defaulting must not
// depend on a valid variant.
var fallbackPlaceholders = placeholdersByTemplate[TemplateModern]

func placeholdersFor(t Template) placeholderSet {
	if p, ok := placeholdersByTemplate[t]; ok {
		return p
	}
	return fallbackPlaceholders
}

// WithDefaults returns a copy of m with empty display fields replaced by
// variant placeholders. Section-gating fields (aboutText, the three lists,
// contact) are left untouched: their emptiness is what hides a section.
// Idempotent by construction, every substitution only fills blanks.
func WithDefaults(m ContentModel) ContentModel {
	p := placeholdersFor(m.Template)
	out := Normalize(m)

	if strings.TrimSpace(out.Name) == "" {
		out.Name = p.Name
	}
	if strings.TrimSpace(out.Bio) == "" {
		out.Bio = p.Bio
	}
	if strings.TrimSpace(out.ProfileImage) == "" {
		out.ProfileImage = p.ProfileImage
	}
	for i := range out.Projects {
		if strings.TrimSpace(out.Projects[i].Image) == "" {
			out.Projects[i].Image = p.ProjectImage
		}
	}
	return out
}
