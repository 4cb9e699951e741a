package resume

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResume = `Jane Smith
jane.smith@example.com
+1 415 555 0123
linkedin.com/in/janesmith
github.com/janesmith
San Francisco, CA

Summary
Backend engineer with eight years of experience building payment systems.

Skills
Languages: Go, Python, SQL
Tools: Docker, Kubernetes, Terraform (IaC)

Experience
Acme Payments
Senior Software Engineer Jan 2020 - Present
• Designed and operated the settlement pipeline processing millions of records daily.
• Led the migration from a monolith to services without downtime.
Initech
Software Engineer 2016 - 2019
• Built internal billing tools used by three departments.

Education
Stanford University
B.S. in Computer Science 2016

Certifications
○ AWS Certified Solutions Architect
○ CKA: Certified Kubernetes Administrator`

func TestHeuristicParseContact(t *testing.T) {
	p := HeuristicParse(sampleResume)

	assert.Equal(t, "Jane Smith", p.Name)
	assert.Equal(t, "jane.smith@example.com", p.Email)
	assert.Equal(t, "+1 415 555 0123", p.Phone)
	assert.Equal(t, "linkedin.com/in/janesmith", p.LinkedIn)
	assert.Equal(t, "github.com/janesmith", p.Website)
	assert.Equal(t, "San Francisco, CA", p.Location)
}

func TestHeuristicParseSummary(t *testing.T) {
	p := HeuristicParse(sampleResume)

	assert.Equal(t, "Backend engineer with eight years of experience building payment systems.", p.Summary)
}

func TestHeuristicParseSkills(t *testing.T) {
	p := HeuristicParse(sampleResume)

	// Category labels are dropped and the parenthetical is stripped.
	assert.Equal(t, []string{"Python", "SQL", "Docker", "Kubernetes", "Terraform"}, p.Skills)
}

func TestHeuristicParseExperience(t *testing.T) {
	p := HeuristicParse(sampleResume)

	require.Len(t, p.Experience, 2)
	first := p.Experience[0]
	assert.Equal(t, "Senior Software Engineer", first.Role)
	assert.Equal(t, "Acme Payments", first.Company)
	assert.Equal(t, "Jan 2020 - Present", first.Duration)
	assert.Contains(t, first.Description, "settlement pipeline")
	assert.Contains(t, first.Description, " | ")

	second := p.Experience[1]
	assert.Equal(t, "Software Engineer", second.Role)
	assert.Equal(t, "Initech", second.Company)
	assert.Equal(t, "2016 - 2019", second.Duration)
}

func TestHeuristicParseEducation(t *testing.T) {
	p := HeuristicParse(sampleResume)

	require.Len(t, p.Education, 1)
	assert.Equal(t, "Stanford University", p.Education[0].Institution)
	assert.Equal(t, "B.S. in Computer Science", p.Education[0].Degree)
	assert.Equal(t, "2016", p.Education[0].Year)
}

func TestHeuristicParseCertifications(t *testing.T) {
	p := HeuristicParse(sampleResume)

	assert.Equal(t, []string{
		"AWS Certified Solutions Architect",
		"CKA: Certified Kubernetes Administrator",
	}, p.Certifications)
}

func TestHeuristicParseEmptyText(t *testing.T) {
	p := HeuristicParse("")

	assert.Empty(t, p.Name)
	assert.NotNil(t, p.Skills)
	assert.NotNil(t, p.Experience)
}

func TestExtractNameSkipsContactLines(t *testing.T) {
	text := "jane@example.com\n+1 415 555 0123\nJane Smith\nmore text"
	p := HeuristicParse(text)

	assert.Equal(t, "Jane Smith", p.Name)
}

func TestExtractNameSkipsHeaders(t *testing.T) {
	text := "Resume of a Developer\nJane Smith\n"
	p := HeuristicParse(text)

	assert.Equal(t, "Jane Smith", p.Name)
}
