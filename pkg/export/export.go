// Package export renders a parsed resume profile as downloadable
// documents. Three textual formats are supported: a print-ready HTML
// page, RTF and LaTeX source. Field values are escaped for the target
// format before substitution so that markup in resume text never
// becomes markup in the document.
package export

import (
	"errors"
	"strings"

	"github.com/careeragentpro/backend/pkg/resume"
)

// ErrNameRequired is returned when the profile has no name to head the
// document with.
var ErrNameRequired = errors.New("export: resume name is required")

func splitName(name string) (first, last string) {
	parts := strings.Fields(name)
	if len(parts) == 0 {
		return "", ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}

// contactLine joins the non-empty contact fields into a single line.
func contactLine(p resume.Profile) string {
	var parts []string
	for _, s := range []string{p.Email, p.Phone, p.Location, p.LinkedIn, p.Website} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " | ")
}
