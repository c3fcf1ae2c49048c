package usecase

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/vybe/backend/internal/domain"
)

// Compiled patterns for stripping Markdown code fences the text model
// sometimes wraps around JSON output
var (
	openFencePattern  = regexp.MustCompile("(?i)^```(?:json)?\\s*")
	closeFencePattern = regexp.MustCompile("\\s*```$")
)

// stripFences removes a leading ```json (or bare ```) fence and a trailing
// ``` fence from model output
func stripFences(text string) string {
	cleaned := strings.TrimSpace(text)
	cleaned = openFencePattern.ReplaceAllString(cleaned, "")
	cleaned = closeFencePattern.ReplaceAllString(cleaned, "")
	return strings.TrimSpace(cleaned)
}

// parseModelJSON fence-strips model text and decodes it into v. On failure
// it returns a ParseError carrying a truncated excerpt of the original text.
func parseModelJSON(text string, v interface{}) error {
	if err := json.Unmarshal([]byte(stripFences(text)), v); err != nil {
		return domain.NewParseError(text)
	}
	return nil
}
