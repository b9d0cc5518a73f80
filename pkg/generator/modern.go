package generator

import "portfolio-builder/internal/model"

const modernScript = `
document.querySelectorAll('a[href^="#"]').forEach(function (link) {
  link.addEventListener('click', function (ev) {
    var target = document.querySelector(link.getAttribute('href'));
    if (target) {
      ev.preventDefault();
      target.scrollIntoView({ behavior: 'smooth' });
    }
  });
});

var navLinks = document.querySelectorAll('.nav a[href^="#"]');
window.addEventListener('scroll', function () {
  var current = '';
  site.sections.forEach(function (id) {
    var el = document.getElementById(id);
    if (el && el.getBoundingClientRect().top <= 80) {
      current = '#' + id;
    }
  });
  navLinks.forEach(function (link) {
    link.style.fontWeight = link.getAttribute('href') === current ? '700' : '400';
  });
});
`

func newModern() SiteGenerator {
	return &variant{
		template: model.TemplateModern,
		accent:   "#2563eb",
		deps: map[string]string{
			"serve": "^14.2.3",
		},
		script: func(m model.ContentModel) (string, error) {
			meta, err := siteMetaJSON(m)
			if err != nil {
				return "", err
			}
			return "var site = " + meta + ";\n" + modernScript, nil
		},
	}
}
