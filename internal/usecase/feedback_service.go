package usecase

import (
	"context"
	"log"

	"github.com/vybe/backend/internal/domain"
)

// FeedbackService produces a structured style critique of one outfit photo
// against a target vibe. The model computes every score; this service only
// validates input, parses the response, and passes the report through.
type FeedbackService struct {
	model domain.GenerativeClient
}

// NewFeedbackService creates a feedback service
func NewFeedbackService(model domain.GenerativeClient) *FeedbackService {
	return &FeedbackService{model: model}
}

// Evaluate scores the outfit in image against the target style
func (s *FeedbackService) Evaluate(ctx context.Context, image domain.ImageAttachment, style string) (*domain.FeedbackReport, error) {
	if style == "" || len(image.Data) == 0 {
		return nil, domain.ErrInvalidRequest
	}

	parts := []domain.PromptPart{
		{Text: feedbackPrompt(style)},
		{Image: &image},
	}

	text, err := s.model.GenerateText(ctx, parts)
	if err != nil {
		return nil, err
	}

	var report domain.FeedbackReport
	if err := parseModelJSON(text, &report); err != nil {
		log.Printf("[feedback] unparseable model output (%d bytes)", len(text))
		return nil, err
	}

	return &report, nil
}
