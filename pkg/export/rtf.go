package export

import (
	"fmt"
	"strings"

	"github.com/careeragentpro/backend/pkg/resume"
)

// escapeRTF backslash-escapes the RTF control characters and encodes
// everything outside printable ASCII as \uN? escapes. Newlines become
// paragraph breaks, other control characters are dropped.
func escapeRTF(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r == '\\':
			b.WriteString(`\\`)
		case r == '{':
			b.WriteString(`\{`)
		case r == '}':
			b.WriteString(`\}`)
		case r == '\n':
			b.WriteString(`\par `)
		case r < 0x20:
		case r < 0x80:
			b.WriteRune(r)
		case r <= 0xFFFF:
			fmt.Fprintf(&b, `\u%d?`, int16(r))
		default:
			b.WriteByte('?')
		}
	}
	return b.String()
}

func rtfHeading(title string) string {
	return `{\b\fs26 ` + title + `\par}` + "\n"
}

// rtfEntryLine formats "Role - Company" with whichever parts are set.
func rtfEntryLine(parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " - ")
}

// RTF renders the profile as a minimal rich text document that word
// processors open directly.
func RTF(p resume.Profile) (string, error) {
	if strings.TrimSpace(p.Name) == "" {
		return "", ErrNameRequired
	}

	var b strings.Builder
	b.WriteString(`{\rtf1\ansi\deff0{\fonttbl{\f0\fswiss Helvetica;}}` + "\n")
	b.WriteString(`\f0\fs22` + "\n")
	fmt.Fprintf(&b, `{\b\fs32 %s\par}`+"\n", escapeRTF(p.Name))
	if line := contactLine(p); line != "" {
		fmt.Fprintf(&b, `%s\par`+"\n", escapeRTF(line))
	}

	if p.Summary != "" {
		b.WriteString(rtfHeading("Summary"))
		fmt.Fprintf(&b, `%s\par`+"\n", escapeRTF(p.Summary))
	}
	if len(p.Skills) > 0 {
		b.WriteString(rtfHeading("Skills"))
		fmt.Fprintf(&b, `%s\par`+"\n", escapeRTF(strings.Join(p.Skills, ", ")))
	}
	if len(p.Experience) > 0 {
		b.WriteString(rtfHeading("Experience"))
		for _, e := range p.Experience {
			fmt.Fprintf(&b, `{\b %s}\par`+"\n", escapeRTF(rtfEntryLine(e.Role, e.Company)))
			if e.Duration != "" {
				fmt.Fprintf(&b, `{\i %s}\par`+"\n", escapeRTF(e.Duration))
			}
			if e.Description != "" {
				fmt.Fprintf(&b, `%s\par`+"\n", escapeRTF(e.Description))
			}
		}
	}
	if len(p.Education) > 0 {
		b.WriteString(rtfHeading("Education"))
		for _, e := range p.Education {
			line := rtfEntryLine(e.Degree, e.Institution, e.Year)
			fmt.Fprintf(&b, `%s\par`+"\n", escapeRTF(line))
		}
	}
	if len(p.Projects) > 0 {
		b.WriteString(rtfHeading("Projects"))
		for _, pr := range p.Projects {
			fmt.Fprintf(&b, `{\b %s}\par`+"\n", escapeRTF(pr.Name))
			if len(pr.Technologies) > 0 {
				fmt.Fprintf(&b, `{\i %s}\par`+"\n", escapeRTF(strings.Join(pr.Technologies, ", ")))
			}
			if pr.Description != "" {
				fmt.Fprintf(&b, `%s\par`+"\n", escapeRTF(pr.Description))
			}
		}
	}
	if len(p.Certifications) > 0 {
		b.WriteString(rtfHeading("Certifications"))
		for _, c := range p.Certifications {
			fmt.Fprintf(&b, `%s\par`+"\n", escapeRTF(c))
		}
	}
	b.WriteString("}\n")
	return b.String(), nil
}
