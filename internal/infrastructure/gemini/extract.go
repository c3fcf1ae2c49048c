package gemini

import (
	"strings"

	"github.com/vybe/backend/internal/domain"
	"google.golang.org/genai"
)

// Response-shape normalization. The SDK response can arrive with missing
// candidates, nil content, or parts in any order; these helpers enumerate
// the shapes we accept and the precedence between them:
//
//	text:  all non-empty Text parts of the first candidate, joined by "\n"
//	image: the first part of the first candidate carrying InlineData
//
// Anything else normalizes to "no output" and the caller reports the
// candidate's finish reason.

// extractText returns the joined text parts of the first candidate
func extractText(resp *genai.GenerateContentResponse) string {
	parts := candidateParts(resp)
	if parts == nil {
		return ""
	}

	var texts []string
	for _, part := range parts {
		if part != nil && part.Text != "" {
			texts = append(texts, part.Text)
		}
	}
	return strings.Join(texts, "\n")
}

// extractImage returns the first inline-data part of the first candidate
func extractImage(resp *genai.GenerateContentResponse) *domain.GeneratedImage {
	for _, part := range candidateParts(resp) {
		if part == nil || part.InlineData == nil || len(part.InlineData.Data) == 0 {
			continue
		}
		mimeType := part.InlineData.MIMEType
		if mimeType == "" {
			mimeType = "image/png"
		}
		return &domain.GeneratedImage{
			Data:     part.InlineData.Data,
			MIMEType: mimeType,
		}
	}
	return nil
}

// finishReason reports the first candidate's finish reason, or "UNKNOWN"
// when the response carries none
func finishReason(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0] == nil {
		return "UNKNOWN"
	}
	reason := string(resp.Candidates[0].FinishReason)
	if reason == "" {
		return "UNKNOWN"
	}
	return reason
}

func candidateParts(resp *genai.GenerateContentResponse) []*genai.Part {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil
	}
	candidate := resp.Candidates[0]
	if candidate == nil || candidate.Content == nil {
		return nil
	}
	return candidate.Content.Parts
}
