package bullet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strongBullet() SixPoint {
	return SixPoint{
		Action:  "Led",
		Context: "cross-functional team of 12 engineers and designers for the payment reconciliation platform",
		Method:  "using Agile methodology and facilitated stakeholder interviews",
		Result:  "reducing manual processing time by 40%",
		Impact:  "improving cash flow visibility",
		Outcome: "for Fortune 500 clients",
	}
}

func TestAssemble(t *testing.T) {
	got := SixPoint{
		Action:  "Led",
		Context: "the team",
		Method:  "using Scrum",
		Result:  "cutting lead time by 30%",
		Impact:  "raising throughput",
		Outcome: "for enterprise clients",
	}.Assemble()

	assert.Equal(t, "Led the team, using Scrum, cutting lead time by 30%, raising throughput for enterprise clients", got)
}

func TestAssembleSkipsEmptyParts(t *testing.T) {
	got := SixPoint{Action: "Built", Context: "the pipeline"}.Assemble()
	assert.Equal(t, "Built the pipeline", got)
}

func TestValidateStrongBullet(t *testing.T) {
	r := Validate(strongBullet())

	assert.True(t, r.Valid)
	assert.Equal(t, 255, r.CharacterCount)
	assert.Equal(t, 100, r.QualityScore)
	assert.True(t, r.HasAllSixPoints)
	assert.True(t, r.HasMetrics)
	assert.True(t, r.HasStrongVerb)
	assert.True(t, r.NoGenericLanguage)
	assert.Empty(t, r.Errors)
	assert.False(t, r.AutoFixAvailable)
	// 255 is inside the window but close to its upper edge.
	assert.Contains(t, r.Warnings, "Bullet is close to maximum length (255 chars)")
}

func TestValidateTooShort(t *testing.T) {
	b := strongBullet()
	b.Context = "cross-functional team for payment reconciliation platform"
	r := Validate(b)

	assert.False(t, r.Valid)
	assert.Equal(t, 221, r.CharacterCount)
	assert.Equal(t, 85, r.QualityScore)
	require.NotEmpty(t, r.Errors)
	assert.Contains(t, r.Errors[0], "Bullet too short (221 chars)")
	assert.Contains(t, r.Suggestions, "Add more detail to context, method, or impact")
}

func TestValidateMissingPoints(t *testing.T) {
	r := Validate(SixPoint{Action: "Built", Result: "grew revenue by 20%"})

	assert.False(t, r.Valid)
	assert.False(t, r.HasAllSixPoints)
	assert.Contains(t, r.Errors, "Missing required fields: Context, Method, Impact, Outcome")
}

func TestValidateNoMetrics(t *testing.T) {
	r := Validate(SixPoint{
		Action:  "Led",
		Context: "cross-functional team for the payment reconciliation platform",
		Method:  "using Agile methodology and stakeholder interviews",
		Result:  "reducing manual processing time considerably",
		Impact:  "improving cash flow visibility",
		Outcome: "for enterprise clients",
	})

	assert.False(t, r.Valid)
	assert.False(t, r.HasMetrics)
	assert.Contains(t, r.Errors, "Bullet must contain metrics (numbers, percentages, dollar amounts)")
	assert.Contains(t, r.Errors, "Result field must contain specific metrics or numbers")
}

func TestValidateWeakVerbAndGenericLanguage(t *testing.T) {
	b := strongBullet()
	b.Action = "Helped with"
	b.Impact = "being a team player"
	r := Validate(b)

	assert.False(t, r.HasStrongVerb)
	assert.False(t, r.NoGenericLanguage)
	assert.True(t, r.AutoFixAvailable)
	assert.Equal(t, "Replace with: Enabled", r.AutoFix["action_verb"])
}

func TestValidateTooLongSuggestsTrim(t *testing.T) {
	b := strongBullet()
	b.Outcome = "for Fortune 500 clients across three continents and four business units"
	r := Validate(b)

	assert.False(t, r.Valid)
	assert.Greater(t, r.CharacterCount, MaxChars)
	assert.Equal(t, "Trim to 260 characters", r.AutoFix["character_count"])
	assert.True(t, r.AutoFixAvailable)
}

func TestDetectMetrics(t *testing.T) {
	m := DetectMetrics("Increased revenue by 150% ($2.5M) and reduced costs by $500K, serving 10K+ users")

	assert.True(t, m.Found)
	assert.Contains(t, m.Values, "150%")
	assert.Contains(t, m.Values, "2.5M")
	assert.Contains(t, m.Values, "$500K")
	assert.Contains(t, m.Types, "percentage")
	assert.Contains(t, m.Types, "dollar")
	assert.Contains(t, m.Types, "scaled_number")
}

func TestDetectMetricsPlainNumberFallback(t *testing.T) {
	m := DetectMetrics("Managed 4 services across 2 regions")

	assert.True(t, m.Found)
	assert.Equal(t, []string{"plain_number"}, m.Types)
	assert.Equal(t, []string{"4", "2"}, m.Values)
}

func TestDetectMetricsNone(t *testing.T) {
	m := DetectMetrics("Improved things significantly")
	assert.False(t, m.Found)
	assert.Empty(t, m.Values)
}
