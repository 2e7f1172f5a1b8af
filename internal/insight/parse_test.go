package insight

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validReply = `{
  "executiveSummary": "Revenue grew on fewer orders.",
  "keyFindings": ["AOV up 12%", "Two products near stockout"],
  "salesAnalysis": "Sales concentrated in outerwear.",
  "recommendations": [
    {"priority": "High", "title": "Reorder hoodies", "description": "Stock covers 3 days", "expectedImpact": "Avoid lost sales", "category": "inventory"},
    {"priority": "urgent", "title": "Bad priority"},
    {"priority": "low", "title": ""},
    {"priority": "medium", "title": "Win back at-risk customers", "category": "customers"}
  ]
}`

func TestParse(t *testing.T) {
	r := Parse(validReply)

	assert.False(t, r.Degraded)
	assert.Equal(t, "Revenue grew on fewer orders.", r.ExecutiveSummary)
	assert.Len(t, r.KeyFindings, 2)
	assert.Equal(t, "Sales concentrated in outerwear.", r.SalesAnalysis)

	require.Len(t, r.Recommendations, 2)
	assert.Equal(t, "high", r.Recommendations[0].Priority)
	assert.Equal(t, "Reorder hoodies", r.Recommendations[0].Title)
	assert.Equal(t, "medium", r.Recommendations[1].Priority)
}

func TestParseFencedAndWrapped(t *testing.T) {
	tests := map[string]string{
		"json fence":  "```json\n" + validReply + "\n```",
		"plain fence": "```\n" + validReply + "\n```",
		"prose":       "Here is my analysis:\n" + validReply + "\nLet me know if you need more.",
	}
	for name, text := range tests {
		t.Run(name, func(t *testing.T) {
			r := Parse(text)
			assert.False(t, r.Degraded)
			assert.Len(t, r.Recommendations, 2)
		})
	}
}

func TestParseDegraded(t *testing.T) {
	tests := map[string]string{
		"not json":        "Sales look healthy this month.",
		"broken json":     `{"executiveSummary": "cut off`,
		"missing summary": `{"keyFindings": ["a"], "recommendations": []}`,
		"blank summary":   `{"executiveSummary": "  "}`,
		"reversed braces": "} nothing {",
	}
	for name, text := range tests {
		t.Run(name, func(t *testing.T) {
			r := Parse(text)
			assert.True(t, r.Degraded)
			assert.Contains(t, text, r.ExecutiveSummary)
			assert.NotNil(t, r.KeyFindings)
			assert.Empty(t, r.KeyFindings)
			assert.NotNil(t, r.Recommendations)
			assert.Empty(t, r.Recommendations)
		})
	}
}

func TestParseMissingArrays(t *testing.T) {
	r := Parse(`{"executiveSummary": "ok"}`)
	assert.False(t, r.Degraded)
	assert.NotNil(t, r.KeyFindings)
	assert.NotNil(t, r.Recommendations)
}
