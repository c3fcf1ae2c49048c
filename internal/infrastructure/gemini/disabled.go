package gemini

import (
	"context"
	"fmt"

	"github.com/vybe/backend/internal/domain"
)

// Disabled is the stand-in client used when no API key is configured. The
// server still starts and serves saved looks; generative calls fail with a
// transport error instead of reaching the SDK.
type Disabled struct{}

func (Disabled) GenerateText(_ context.Context, _ []domain.PromptPart) (string, error) {
	return "", fmt.Errorf("%w: no API key configured", domain.ErrModelTransport)
}

func (Disabled) GenerateImage(_ context.Context, _ []domain.PromptPart) (*domain.GeneratedImage, error) {
	return nil, fmt.Errorf("%w: no API key configured", domain.ErrModelTransport)
}
