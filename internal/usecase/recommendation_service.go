package usecase

import (
	"context"
	"log"
	"net/url"
	"sync"

	"github.com/vybe/backend/internal/domain"
)

// shopSearchURL is the Google Shopping deep-link template; the encoded
// search query is appended to it
const shopSearchURL = "https://www.google.com/search?tbm=shop&q="

// RecommendationService asks the model for 4 outfit items matching a vibe,
// then enriches each item with a product image URL and a shopping deep link.
type RecommendationService struct {
	model  domain.GenerativeClient
	images domain.ImageResolver
}

// NewRecommendationService creates a recommendation service
func NewRecommendationService(model domain.GenerativeClient, images domain.ImageResolver) *RecommendationService {
	return &RecommendationService{
		model:  model,
		images: images,
	}
}

// Recommend produces enriched outfit recommendations for the subject photo
// and vibe. An empty vibe defaults to "casual".
func (s *RecommendationService) Recommend(ctx context.Context, image domain.ImageAttachment, vibe string) (*domain.RecommendationResult, error) {
	if len(image.Data) == 0 {
		return nil, domain.ErrInvalidRequest
	}
	if vibe == "" {
		vibe = "casual"
	}

	parts := []domain.PromptPart{
		{Text: recommendationPrompt(vibe)},
		{Image: &image},
	}

	text, err := s.model.GenerateText(ctx, parts)
	if err != nil {
		return nil, err
	}

	var result domain.RecommendationResult
	if err := parseModelJSON(text, &result); err != nil {
		log.Printf("[recommend] unparseable model output (%d bytes)", len(text))
		return nil, err
	}

	s.enrich(ctx, result.Recommendations)
	return &result, nil
}

// enrich resolves a product image per item concurrently, then zips the URLs
// back onto the items in their original order and derives each shop link.
// Image resolution never fails, so enrichment never fails either.
func (s *RecommendationService) enrich(ctx context.Context, items []domain.OutfitItem) {
	imageURLs := make([]string, len(items))

	var wg sync.WaitGroup
	for i := range items {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			imageURLs[i] = s.images.Resolve(ctx, itemQuery(&items[i]), items[i].Category)
		}(i)
	}
	wg.Wait()

	for i := range items {
		items[i].ImageURL = imageURLs[i]
		items[i].ShopLink = shopSearchURL + url.QueryEscape(itemQuery(&items[i]))
	}
}

// itemQuery is the item's shopping search text: the model's searchQuery,
// falling back to the display name
func itemQuery(item *domain.OutfitItem) string {
	if item.SearchQuery != "" {
		return item.SearchQuery
	}
	return item.Name
}
