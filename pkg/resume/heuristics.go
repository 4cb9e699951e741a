package resume

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/careeragentpro/backend/pkg/nlp"
)

const (
	maxSummaryLen   = 600
	maxSkills       = 25
	maxCerts        = 10
	maxExpBullets   = 5
	maxNameLen      = 50
	nameSearchLines = 5
)

var (
	reEmail    = regexp.MustCompile(`[\w.\-+]+@[\w.\-]+\.\w+`)
	rePhone    = regexp.MustCompile(`\+?1?\d{10,11}|\+?\d{1,3}[\s\-]?\d{3}[\s\-]?\d{3}[\s\-]?\d{4}`)
	reLinkedIn = regexp.MustCompile(`(?i)linkedin\.com/in/([a-zA-Z0-9\-_]+)`)
	reGitHub   = regexp.MustCompile(`(?i)github\.com/([a-zA-Z0-9\-_]+)`)
	reLocation = regexp.MustCompile(`(?m)(?i:^\s*(?:location|based in)[:\s]+(.+)$)|\b([A-Z][a-z]+(?: [A-Z][a-z]+)?, ?[A-Z]{2})\b`)

	reDateRange = regexp.MustCompile(`(?i)([A-Z][a-z]{2,8}\s*\d{4}|(?:19|20)\d{2})\s*[–\-to]+\s*([A-Z][a-z]{2,8}\s*\d{4}|(?:19|20)\d{2}|Present|Current|Now)`)
	reBullet    = regexp.MustCompile(`^[•\-○*►]|^\d+\.`)
	reBulletCut = regexp.MustCompile(`^[•\-○*►\d.]+\s*`)
	reParens    = regexp.MustCompile(`\([^)]*\)`)
	reYear      = regexp.MustCompile(`(?:19|20)\d{2}`)
	reDegree    = regexp.MustCompile(`(?i)\b(?:Bachelor(?:'s)?|Master(?:'s)?|Ph\.?D|B\.?S|M\.?S|B\.?A|M\.?A|B\.?Tech|M\.?Tech|MBA|Associate(?:'s)?)\b\.?(?:\s+(?:of|in)\s+[A-Za-z][A-Za-z ]{2,39})?`)
	reInstCut   = regexp.MustCompile(`(?i)^(.+?(?:University|College|Institute|School|Academy))`)
)

// Section boundaries used to slice the resume into blocks. Matching is
// header-line based; the block runs until the next known header.
type sectionBounds struct {
	start *regexp.Regexp
	end   *regexp.Regexp
}

func headerPattern(names ...string) *regexp.Regexp {
	return regexp.MustCompile(`(?im)^\s*(?:` + strings.Join(names, "|") + `)\s*:?\s*$`)
}

var (
	summaryBounds = sectionBounds{
		start: headerPattern("Summary", "Objective", "Profile", "About"),
		end:   headerPattern("Skills", "Experience", "Education", "Technical Skills"),
	}
	skillsBounds = sectionBounds{
		start: headerPattern("Skills", "Technical Skills", "Skills and Technical Proficiencies"),
		end:   headerPattern("Experience", "Education", "Projects", "Work History"),
	}
	experienceBounds = sectionBounds{
		start: headerPattern("Experience", "Work Experience", "Employment", "Work History"),
		end:   headerPattern("Education", "Projects", "Publications", "Certifications"),
	}
	educationBounds = sectionBounds{
		start: headerPattern("Education"),
		end:   headerPattern("Projects", "Publications", "Certifications", "Skills"),
	}
	projectsBounds = sectionBounds{
		start: headerPattern("Projects"),
		end:   headerPattern("Publications", "Certifications", "References"),
	}
	certsBounds = sectionBounds{
		start: headerPattern("Certifications", "Certificates"),
		end:   headerPattern("References", "Publications"),
	}
)

func (b sectionBounds) extract(text string) string {
	loc := b.start.FindStringIndex(text)
	if loc == nil {
		return ""
	}
	rest := text[loc[1]:]
	if end := b.end.FindStringIndex(rest); end != nil {
		rest = rest[:end[0]]
	}
	return strings.TrimSpace(rest)
}

// HeuristicParse builds a profile from resume text with regex and
// line scanning alone. It never fails; unrecognized parts stay empty.
func HeuristicParse(text string) Profile {
	var p Profile
	p.Name = extractName(text)
	p.Email = reEmail.FindString(text)
	p.Phone = strings.TrimSpace(rePhone.FindString(text))

	if m := reLinkedIn.FindStringSubmatch(text); m != nil {
		p.LinkedIn = "linkedin.com/in/" + m[1]
	}
	if m := reGitHub.FindStringSubmatch(text); m != nil {
		p.Website = "github.com/" + m[1]
	}
	if m := reLocation.FindStringSubmatch(text); m != nil {
		if m[1] != "" {
			p.Location = strings.TrimSpace(m[1])
		} else {
			p.Location = m[2]
		}
	}

	if s := summaryBounds.extract(text); s != "" {
		summary := strings.Join(strings.Fields(s), " ")
		p.Summary = nlp.Truncate(summary, maxSummaryLen)
	}
	if s := skillsBounds.extract(text); s != "" {
		p.Skills = parseSkills(s)
	}
	if s := experienceBounds.extract(text); s != "" {
		p.Experience = parseExperience(s)
	}
	if s := educationBounds.extract(text); s != "" {
		p.Education = parseEducation(s)
	}
	if s := projectsBounds.extract(text); s != "" {
		p.Projects = parseProjects(s)
	}
	if s := certsBounds.extract(text); s != "" {
		p.Certifications = parseCertifications(s)
	}

	p.Normalize()
	return p
}

// extractName picks the first early line that looks like a person's
// name rather than contact data or a section header.
func extractName(text string) string {
	count := 0
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		count++
		if count > nameSearchLines {
			break
		}
		if strings.ContainsAny(line, "@+") {
			continue
		}
		if len(line) <= 3 || len(line) >= maxNameLen {
			continue
		}
		first := []rune(line)[0]
		if unicode.IsDigit(first) || !unicode.IsUpper(first) {
			continue
		}
		lower := strings.ToLower(line)
		if strings.Contains(lower, "summary") || strings.Contains(lower, "skills") ||
			strings.Contains(lower, "experience") || strings.Contains(lower, "resume") ||
			strings.Contains(lower, "cv") {
			continue
		}
		return line
	}
	return ""
}

// parseSkills splits a skills block on commas, pipes and bullet marks.
// A leading "Category:" label on a line is dropped.
func parseSkills(section string) []string {
	var skills []string
	seen := make(map[string]struct{})
	for _, line := range strings.Split(section, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if _, after, found := strings.Cut(line, ":"); found {
			line = after
		}
		for _, part := range strings.FieldsFunc(line, func(r rune) bool {
			return r == ',' || r == '|' || r == '•'
		}) {
			skill := strings.TrimSpace(reParens.ReplaceAllString(part, ""))
			if len(skill) <= 2 || len(skill) >= 40 {
				continue
			}
			key := nlp.Normalize(skill)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			skills = append(skills, skill)
			if len(skills) == maxSkills {
				return skills
			}
		}
	}
	return skills
}

// parseExperience walks the experience block line by line. A line with
// a date range starts a new entry; the text before the range is the
// role and the previous line the company. Bullet lines under an entry
// become its description.
func parseExperience(section string) []ExperienceEntry {
	var (
		entries []ExperienceEntry
		current *ExperienceEntry
		bullets []string
		lines   []string
	)
	for _, l := range strings.Split(section, "\n") {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}

	flush := func() {
		if current == nil || (current.Company == "" && current.Role == "") {
			return
		}
		if len(bullets) > maxExpBullets {
			bullets = bullets[:maxExpBullets]
		}
		current.Description = strings.Join(bullets, " | ")
		entries = append(entries, *current)
	}

	for i, line := range lines {
		m := reDateRange.FindStringSubmatchIndex(line)
		if m != nil {
			flush()
			current = &ExperienceEntry{
				Duration: line[m[2]:m[3]] + " - " + line[m[4]:m[5]],
				Role:     strings.TrimRight(strings.TrimSpace(line[:m[0]]), " -–|,"),
			}
			if i > 0 && !reBullet.MatchString(lines[i-1]) {
				prev := strings.ToLower(lines[i-1])
				if !strings.Contains(prev, "experience") && !strings.Contains(prev, "employment") &&
					!strings.Contains(prev, "work history") {
					current.Company = lines[i-1]
				}
			}
			bullets = nil
			continue
		}
		if current != nil && reBullet.MatchString(line) {
			clean := reBulletCut.ReplaceAllString(line, "")
			if len(clean) > 15 {
				bullets = append(bullets, clean)
			}
		}
	}
	flush()
	return entries
}

func parseEducation(section string) []EducationEntry {
	var entries []EducationEntry
	var lines []string
	for _, l := range strings.Split(section, "\n") {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}

	for i := 0; i < len(lines); i++ {
		line := lines[i]
		lower := strings.ToLower(line)
		isInstitution := strings.Contains(lower, "university") || strings.Contains(lower, "college") ||
			strings.Contains(lower, "institute") || strings.Contains(lower, "school") ||
			strings.Contains(lower, "academy")
		hasDegree := reDegree.MatchString(line)
		if !isInstitution && !hasDegree {
			continue
		}

		var e EducationEntry
		if isInstitution {
			if m := reInstCut.FindStringSubmatch(line); m != nil {
				e.Institution = strings.TrimSpace(m[1])
			} else {
				e.Institution, _, _ = strings.Cut(line, ",")
				e.Institution = strings.TrimSpace(e.Institution)
			}
		}

		// The degree often continues on the following line.
		degreeText := line
		if i+1 < len(lines) {
			degreeText = line + " " + lines[i+1]
		}
		e.Degree = strings.TrimSpace(reDegree.FindString(degreeText))
		e.Year = reYear.FindString(degreeText)

		if e.Institution != "" || e.Degree != "" {
			entries = append(entries, e)
			i++
		}
	}
	return entries
}

func parseProjects(section string) []ProjectEntry {
	var projects []ProjectEntry
	var lines []string
	for _, l := range strings.Split(section, "\n") {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}

	for i := 0; i < len(lines); i++ {
		line := lines[i]
		if !reDateRange.MatchString(line) && !strings.Contains(line, "(") {
			continue
		}
		name := reParens.ReplaceAllString(line, "")
		if m := reDateRange.FindStringIndex(name); m != nil {
			name = name[:m[0]]
		}
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}

		var bullets []string
		for i+1 < len(lines) && reBullet.MatchString(lines[i+1]) {
			i++
			bullets = append(bullets, reBulletCut.ReplaceAllString(lines[i], ""))
			if len(bullets) == 3 {
				break
			}
		}
		projects = append(projects, ProjectEntry{
			Name:        name,
			Description: strings.Join(bullets, " | "),
		})
	}
	return projects
}

func parseCertifications(section string) []string {
	var certs []string
	for _, line := range strings.Split(section, "\n") {
		line = strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(line), "○•-*► "))
		if len(line) > 5 {
			certs = append(certs, line)
			if len(certs) == maxCerts {
				break
			}
		}
	}
	return certs
}
