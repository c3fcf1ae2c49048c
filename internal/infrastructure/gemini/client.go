package gemini

import (
	"context"
	"fmt"
	"log"

	"github.com/vybe/backend/internal/domain"
	"google.golang.org/genai"
)

// Client wraps the Gemini SDK behind domain.GenerativeClient. One client is
// built at startup and injected into every service.
type Client struct {
	genAI      *genai.Client
	textModel  string
	imageModel string
	debug      bool
}

// NewClient creates a Gemini client against the AI Studio (API key) backend
func NewClient(ctx context.Context, apiKey, textModel, imageModel string) (*Client, error) {
	genAIClient, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &Client{
		genAI:      genAIClient,
		textModel:  textModel,
		imageModel: imageModel,
	}, nil
}

// SetDebug enables verbose logging of model responses
func (c *Client) SetDebug(debug bool) {
	c.debug = debug
}

// GenerateText runs a text-modality call and returns the model's text output
func (c *Client) GenerateText(ctx context.Context, parts []domain.PromptPart) (string, error) {
	resp, err := c.genAI.Models.GenerateContent(
		ctx,
		c.textModel,
		toContents(parts),
		&genai.GenerateContentConfig{ResponseModalities: []string{"TEXT"}},
	)
	if err != nil {
		log.Printf("[gemini] text generation error: %v", err)
		return "", fmt.Errorf("%w: %v", domain.ErrModelTransport, err)
	}

	if c.debug {
		log.Printf("[gemini] text response: candidates=%d finish=%s", len(resp.Candidates), finishReason(resp))
	}

	text := extractText(resp)
	if text == "" {
		return "", &domain.NoOutputError{FinishReason: finishReason(resp)}
	}
	return text, nil
}

// GenerateImage runs an image-modality call and returns the first inline
// image part of the response
func (c *Client) GenerateImage(ctx context.Context, parts []domain.PromptPart) (*domain.GeneratedImage, error) {
	resp, err := c.genAI.Models.GenerateContent(
		ctx,
		c.imageModel,
		toContents(parts),
		&genai.GenerateContentConfig{ResponseModalities: []string{"IMAGE"}},
	)
	if err != nil {
		log.Printf("[gemini] image generation error: %v", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrModelTransport, err)
	}

	if c.debug {
		log.Printf("[gemini] image response: candidates=%d finish=%s", len(resp.Candidates), finishReason(resp))
	}

	img := extractImage(resp)
	if img == nil {
		return nil, &domain.NoOutputError{FinishReason: finishReason(resp)}
	}
	return img, nil
}

// toContents converts ordered prompt parts into a single user-role content.
// Interleaved text/image ordering is preserved so labels stay adjacent to
// the images they describe.
func toContents(parts []domain.PromptPart) []*genai.Content {
	sdkParts := make([]*genai.Part, 0, len(parts))
	for _, part := range parts {
		if part.Image != nil {
			sdkParts = append(sdkParts, &genai.Part{
				InlineData: &genai.Blob{
					MIMEType: part.Image.MIMEType,
					Data:     part.Image.Data,
				},
			})
		} else {
			sdkParts = append(sdkParts, genai.NewPartFromText(part.Text))
		}
	}
	return []*genai.Content{genai.NewContentFromParts(sdkParts, genai.RoleUser)}
}
