package usecase

import (
	"context"
	"encoding/base64"
	"log"
	"sync"

	"github.com/vybe/backend/internal/domain"
)

// TryOnViews are the views rendered per try-on request, in response order
var TryOnViews = []string{"Front View", "Back View"}

// TryOnInput is one try-on request: a subject photo, up to four outfit
// reference images, and free-form client instructions.
type TryOnInput struct {
	Prompt  string
	Subject domain.ImageAttachment
	Outfits []domain.ImageAttachment
}

// TryOnService renders the subject wearing the referenced outfit, one
// generative call per view. A failed view carries an error in its slot while
// the other views still render; partial success is a valid terminal state.
type TryOnService struct {
	model domain.GenerativeClient
}

// NewTryOnService creates a try-on service
func NewTryOnService(model domain.GenerativeClient) *TryOnService {
	return &TryOnService{model: model}
}

// Generate renders all views concurrently and returns them in TryOnViews
// order. The returned error is only for invalid input; per-view failures
// live inside the result.
func (s *TryOnService) Generate(ctx context.Context, input *TryOnInput) (*domain.TryOnResult, error) {
	if input == nil || input.Prompt == "" || len(input.Subject.Data) == 0 {
		return nil, domain.ErrInvalidRequest
	}

	results := make([]domain.GeneratedView, len(TryOnViews))

	var wg sync.WaitGroup
	for i, view := range TryOnViews {
		wg.Add(1)
		go func(i int, view string) {
			defer wg.Done()
			results[i] = s.generateView(ctx, input, view)
		}(i, view)
	}
	wg.Wait()

	return &domain.TryOnResult{Results: results}, nil
}

// generateView runs one image call for a single view
func (s *TryOnService) generateView(ctx context.Context, input *TryOnInput, view string) domain.GeneratedView {
	img, err := s.model.GenerateImage(ctx, buildTryOnParts(input, view))
	if err != nil {
		log.Printf("[tryon] %s failed: %v", view, err)
		return domain.GeneratedView{View: view, Error: err.Error()}
	}

	return domain.GeneratedView{
		View:     view,
		MIMEType: img.MIMEType,
		Data:     base64.StdEncoding.EncodeToString(img.Data),
	}
}

// buildTryOnParts interleaves instruction text with the uploads so the model
// knows which image is the subject and which are clothing sources
func buildTryOnParts(input *TryOnInput, view string) []domain.PromptPart {
	parts := []domain.PromptPart{
		{Text: tryOnIntro},
		{Text: viewInstruction(view)},
		{Text: "Client instructions: " + input.Prompt},
		{Text: subjectLabel},
		{Image: &input.Subject},
	}

	for i := range input.Outfits {
		parts = append(parts,
			domain.PromptPart{Text: outfitLabel(i + 1)},
			domain.PromptPart{Image: &input.Outfits[i]},
		)
	}
	return parts
}

// AllViewsFailed reports whether no view produced an image
func AllViewsFailed(result *domain.TryOnResult) bool {
	for _, view := range result.Results {
		if view.Error == "" {
			return false
		}
	}
	return true
}
