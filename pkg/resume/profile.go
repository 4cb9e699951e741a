package resume

// Source tells who produced a parsed profile.
type Source string

const (
	SourceAI        Source = "ai"
	SourceHeuristic Source = "heuristic"
)

// Profile is the structured form of a resume that the rest of the
// system works with. Every field is optional; absent sections are
// empty strings or empty slices.
type Profile struct {
	Name           string            `json:"name"`
	Email          string            `json:"email"`
	Phone          string            `json:"phone"`
	LinkedIn       string            `json:"linkedin"`
	Website        string            `json:"website"`
	Location       string            `json:"location"`
	Summary        string            `json:"summary"`
	Skills         []string          `json:"skills"`
	Experience     []ExperienceEntry `json:"experience"`
	Education      []EducationEntry  `json:"education"`
	Projects       []ProjectEntry    `json:"projects"`
	Certifications []string          `json:"certifications"`
}

// ExperienceEntry is a single job in the work history.
type ExperienceEntry struct {
	Role        string `json:"role"`
	Company     string `json:"company"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

// EducationEntry is a single degree or course.
type EducationEntry struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
}

// ProjectEntry is a personal or professional project.
type ProjectEntry struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
}

// Normalize replaces nil slices with empty ones so that the profile
// always serializes with arrays instead of nulls.
func (p *Profile) Normalize() {
	if p.Skills == nil {
		p.Skills = []string{}
	}
	if p.Experience == nil {
		p.Experience = []ExperienceEntry{}
	}
	if p.Education == nil {
		p.Education = []EducationEntry{}
	}
	if p.Projects == nil {
		p.Projects = []ProjectEntry{}
	}
	if p.Certifications == nil {
		p.Certifications = []string{}
	}
}

// ParseResult is a parsed profile together with its provenance: the
// model that produced it, or the heuristic fallback. RawText carries
// the extracted plain text so the UI can show and re-parse it.
type ParseResult struct {
	Profile Profile `json:"profile"`
	RawText string  `json:"rawText,omitempty"`
	Source  Source  `json:"source"`
	Model   string  `json:"model,omitempty"`
}
