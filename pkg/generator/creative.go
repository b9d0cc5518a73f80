package generator

import "portfolio-builder/internal/model"

const creativeScript = `
document.querySelectorAll('a[href^="#"]').forEach(function (link) {
  link.addEventListener('click', function (ev) {
    var target = document.querySelector(link.getAttribute('href'));
    if (target) {
      ev.preventDefault();
      target.scrollIntoView({ behavior: 'smooth' });
    }
  });
});

var typed = document.querySelector('.typed');
if (typed) {
  var full = site.name;
  var shown = 0;
  typed.textContent = '';
  var timer = setInterval(function () {
    shown += 1;
    typed.textContent = full.slice(0, shown);
    if (shown >= full.length) {
      clearInterval(timer);
    }
  }, 90);
}
`

func newCreative() SiteGenerator {
	return &variant{
		template: model.TemplateCreative,
		accent:   "#7c3aed",
		deps: map[string]string{
			"serve": "^14.2.3",
		},
		script: func(m model.ContentModel) (string, error) {
			meta, err := siteMetaJSON(m)
			if err != nil {
				return "", err
			}
			return "var site = " + meta + ";\n" + creativeScript, nil
		},
	}
}
