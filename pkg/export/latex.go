package export

import (
	"fmt"
	"strings"

	"github.com/careeragentpro/backend/pkg/resume"
)

// latexEscaper rewrites LaTeX-reserved characters in a single pass, so
// the backslashes it introduces are never rescanned and escaped again.
var latexEscaper = strings.NewReplacer(
	`&`, `\&`,
	`%`, `\%`,
	`$`, `\$`,
	`#`, `\#`,
	`^`, `\textasciicircum{}`,
	`_`, `\_`,
	`{`, `\{`,
	`}`, `\}`,
	`~`, `\textasciitilde{}`,
	`\`, `\textbackslash{}`,
)

func escapeLaTeX(s string) string {
	return latexEscaper.Replace(s)
}

// LaTeX renders the profile as a moderncv document. Only the name is
// mandatory; empty sections are omitted.
func LaTeX(p resume.Profile) (string, error) {
	if strings.TrimSpace(p.Name) == "" {
		return "", ErrNameRequired
	}
	first, last := splitName(p.Name)

	var b strings.Builder
	b.WriteString("\\documentclass[11pt,a4paper,sans]{moderncv}\n")
	b.WriteString("\\moderncvstyle{casual}\n")
	b.WriteString("\\moderncvcolor{blue}\n")
	fmt.Fprintf(&b, "\\name{%s}{%s}\n", escapeLaTeX(first), escapeLaTeX(last))
	fmt.Fprintf(&b, "\\address{%s}\n", escapeLaTeX(p.Email))
	if p.Phone != "" {
		fmt.Fprintf(&b, "\\phone[mobile]{%s}\n", escapeLaTeX(p.Phone))
	}
	if p.LinkedIn != "" {
		fmt.Fprintf(&b, "\\social[linkedin]{%s}\n", escapeLaTeX(p.LinkedIn))
	}
	b.WriteString("\n\\begin{document}\n\\makecvtitle\n\n")

	if p.Summary != "" {
		b.WriteString("\\section{Summary}\n")
		b.WriteString(escapeLaTeX(p.Summary))
		b.WriteString("\n\n")
	}
	if len(p.Experience) > 0 {
		b.WriteString("\\section{Experience}\n")
		for _, e := range p.Experience {
			fmt.Fprintf(&b, "\\cventry{%s}{%s}{%s}{}{}{%s}\n",
				escapeLaTeX(e.Duration), escapeLaTeX(e.Role),
				escapeLaTeX(e.Company), escapeLaTeX(e.Description))
		}
		b.WriteString("\n")
	}
	if len(p.Education) > 0 {
		b.WriteString("\\section{Education}\n")
		for _, e := range p.Education {
			fmt.Fprintf(&b, "\\cventry{%s}{%s}{%s}{}{}{}\n",
				escapeLaTeX(e.Year), escapeLaTeX(e.Degree), escapeLaTeX(e.Institution))
		}
		b.WriteString("\n")
	}
	if len(p.Skills) > 0 {
		escaped := make([]string, len(p.Skills))
		for i, s := range p.Skills {
			escaped[i] = escapeLaTeX(s)
		}
		b.WriteString("\\section{Skills}\n")
		fmt.Fprintf(&b, "\\cvitem{Core Skills}{%s}\n\n", strings.Join(escaped, ", "))
	}
	b.WriteString("\\end{document}\n")
	return b.String(), nil
}
