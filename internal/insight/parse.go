package insight

import (
	"encoding/json"
	"strings"

	"github.com/jekabolt/grbpwr-dashboard/internal/entity"
)

// Parse extracts a Recommendation from generated text. Text that does not hold a JSON
// object with an executive summary yields a degraded result carrying the raw text.
func Parse(text string) entity.Recommendation {
	body, ok := extractObject(stripFences(text))
	if !ok {
		return degraded(text)
	}

	var r entity.Recommendation
	if err := json.Unmarshal([]byte(body), &r); err != nil {
		return degraded(text)
	}
	if strings.TrimSpace(r.ExecutiveSummary) == "" {
		return degraded(text)
	}

	items := make([]entity.RecommendationItem, 0, len(r.Recommendations))
	for _, it := range r.Recommendations {
		it.Priority = strings.ToLower(strings.TrimSpace(it.Priority))
		if err := it.Validate(); err != nil {
			continue
		}
		items = append(items, it)
	}
	r.Recommendations = items
	if r.KeyFindings == nil {
		r.KeyFindings = []string{}
	}
	r.Degraded = false
	return r
}

func degraded(text string) entity.Recommendation {
	return entity.Recommendation{
		ExecutiveSummary: strings.TrimSpace(text),
		KeyFindings:      []string{},
		Recommendations:  []entity.RecommendationItem{},
		Degraded:         true,
	}
}

// stripFences removes a surrounding Markdown code fence, with or without a language tag.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	if nl := strings.IndexByte(s, '\n'); nl >= 0 {
		s = s[nl+1:]
	} else {
		s = strings.TrimPrefix(s, "```")
	}
	s = strings.TrimSpace(s)
	return strings.TrimSpace(strings.TrimSuffix(s, "```"))
}

// extractObject returns the text between the first '{' and the last '}'.
func extractObject(s string) (string, bool) {
	start := strings.IndexByte(s, '{')
	end := strings.LastIndexByte(s, '}')
	if start < 0 || end <= start {
		return "", false
	}
	return s[start : end+1], true
}
