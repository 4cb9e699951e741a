package job

// Source tells who produced a posting: a language model or the
// regex heuristics.
type Source string

const (
	SourceAI        Source = "ai"
	SourceHeuristic Source = "heuristic"
)

// Posting is a normalized job description extracted from a page or
// from pasted text.
type Posting struct {
	Title            string   `json:"title"`
	Company          string   `json:"company"`
	Location         string   `json:"location"`
	Salary           string   `json:"salary"`
	JobType          string   `json:"jobType"`
	Description      string   `json:"description"`
	Requirements     []string `json:"requirements"`
	Responsibilities []string `json:"responsibilities"`
	Skills           []string `json:"skills"`
	URL              string   `json:"url,omitempty"`
	Source           Source   `json:"source"`
	Model            string   `json:"model,omitempty"`
}

// Normalize replaces nil slices with empty ones so the posting always
// serializes with arrays.
func (p *Posting) Normalize() {
	if p.Requirements == nil {
		p.Requirements = []string{}
	}
	if p.Responsibilities == nil {
		p.Responsibilities = []string{}
	}
	if p.Skills == nil {
		p.Skills = []string{}
	}
}
