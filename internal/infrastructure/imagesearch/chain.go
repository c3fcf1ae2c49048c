package imagesearch

import (
	"context"
	"log"

	"github.com/vybe/backend/internal/domain"
)

// Resolver tries an ordered list of providers and returns the first usable
// image URL. Provider failures are absorbed here and never reach the caller:
// image resolution is cosmetic enrichment, and a recommendation must not
// fail because a thumbnail lookup did.
type Resolver struct {
	providers []domain.ImageProvider
}

// NewResolver creates a resolver over the given providers, tried in order.
// Unconfigured tiers are simply omitted from the list at startup.
func NewResolver(providers ...domain.ImageProvider) *Resolver {
	return &Resolver{providers: providers}
}

// Resolve returns an image URL for the query. Never fails: if every tier
// errors or yields nothing, it synthesizes a category placeholder URL.
func (r *Resolver) Resolve(ctx context.Context, query, category string) string {
	for _, provider := range r.providers {
		imageURL, err := provider.Lookup(ctx, query, category)
		if err != nil {
			log.Printf("[images] %s failed for %q: %v", provider.Name(), query, err)
			continue
		}
		if imageURL == "" {
			log.Printf("[images] %s returned empty URL for %q", provider.Name(), query)
			continue
		}
		log.Printf("[images] %s resolved %q", provider.Name(), query)
		return imageURL
	}

	log.Printf("[images] all providers exhausted for %q, using placeholder", query)
	return PlaceholderURL(category)
}
