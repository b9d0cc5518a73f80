package generator

import "portfolio-builder/internal/model"

const minimalScript = `
document.querySelectorAll('a[href^="#"]').forEach(function (link) {
  link.addEventListener('click', function (ev) {
    var target = document.querySelector(link.getAttribute('href'));
    if (target) {
      ev.preventDefault();
      target.scrollIntoView({ behavior: 'smooth' });
    }
  });
});
`

func newMinimal() SiteGenerator {
	return &variant{
		template: model.TemplateMinimal,
		accent:   "#111111",
		deps: map[string]string{
			"serve": "^14.2.3",
		},
		script: func(m model.ContentModel) (string, error) {
			meta, err := siteMetaJSON(m)
			if err != nil {
				return "", err
			}
			return "var site = " + meta + ";\n" + minimalScript, nil
		},
	}
}
