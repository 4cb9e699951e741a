package export

import (
	"html/template"
	"strings"

	"github.com/careeragentpro/backend/pkg/resume"
)

// The page layout is fixed; only field values flow through
// html/template's contextual escaping.
const htmlDocument = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Name}} - Resume</title>
<style>
  body { font-family: Georgia, serif; max-width: 800px; margin: 40px auto; color: #1a1a1a; }
  h1 { margin-bottom: 4px; }
  h2 { border-bottom: 1px solid #999; padding-bottom: 4px; margin-top: 28px; }
  .contact { color: #555; margin-bottom: 24px; }
  .entry { margin-bottom: 14px; }
  .meta { color: #555; font-style: italic; }
  @media print { body { margin: 0; } }
</style>
</head>
<body>
<h1>{{.Name}}</h1>
{{if .Contact}}<div class="contact">{{.Contact}}</div>
{{end}}{{if .Summary}}<h2>Summary</h2>
<p>{{.Summary}}</p>
{{end}}{{if .Skills}}<h2>Skills</h2>
<p>{{join .Skills ", "}}</p>
{{end}}{{if .Experience}}<h2>Experience</h2>
{{range .Experience}}<div class="entry">
<strong>{{.Role}}</strong>{{if .Company}} - {{.Company}}{{end}}
{{if .Duration}}<div class="meta">{{.Duration}}</div>
{{end}}{{if .Description}}<p>{{.Description}}</p>
{{end}}</div>
{{end}}{{end}}{{if .Education}}<h2>Education</h2>
{{range .Education}}<div class="entry">
<strong>{{.Degree}}</strong>{{if .Institution}} - {{.Institution}}{{end}}
{{if .Year}}<div class="meta">{{.Year}}</div>
{{end}}</div>
{{end}}{{end}}{{if .Projects}}<h2>Projects</h2>
{{range .Projects}}<div class="entry">
<strong>{{.Name}}</strong>
{{if .Technologies}}<div class="meta">{{join .Technologies ", "}}</div>
{{end}}{{if .Description}}<p>{{.Description}}</p>
{{end}}</div>
{{end}}{{end}}{{if .Certifications}}<h2>Certifications</h2>
<ul>
{{range .Certifications}}<li>{{.}}</li>
{{end}}</ul>
{{end}}</body>
</html>
`

var htmlTmpl = template.Must(template.New("resume").
	Funcs(template.FuncMap{"join": strings.Join}).
	Parse(htmlDocument))

// HTML renders the profile as a standalone print-ready page.
func HTML(p resume.Profile) (string, error) {
	if strings.TrimSpace(p.Name) == "" {
		return "", ErrNameRequired
	}
	data := struct {
		resume.Profile
		Contact string
	}{Profile: p, Contact: contactLine(p)}

	var b strings.Builder
	if err := htmlTmpl.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}
