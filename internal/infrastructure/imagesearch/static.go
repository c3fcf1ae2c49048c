package imagesearch

import (
	"context"
	"net/url"
)

// Hand-curated fallback photos, one representative image per category
var categoryImages = map[string]string{
	"shirt":     "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?w=400&h=400&fit=crop",
	"pants":     "https://images.unsplash.com/photo-1473966968600-fa801b869a1a?w=400&h=400&fit=crop",
	"dress":     "https://images.unsplash.com/photo-1595777457583-95e059d581b8?w=400&h=400&fit=crop",
	"shoes":     "https://images.unsplash.com/photo-1549298916-b41d501d3772?w=400&h=400&fit=crop",
	"outerwear": "https://images.unsplash.com/photo-1551028719-00167b16eac5?w=400&h=400&fit=crop",
	"accessory": "https://images.unsplash.com/photo-1590874103328-eac38a683ce7?w=400&h=400&fit=crop",
}

const defaultCategoryImage = "https://images.unsplash.com/photo-1445205170230-053b83016050?w=400&h=400&fit=crop"

// Placeholder tile colors per category, used for the synthesized terminal URL
var categoryColors = map[string]string{
	"shirt":     "3B82F6",
	"pants":     "6366F1",
	"dress":     "EC4899",
	"shoes":     "8B5CF6",
	"outerwear": "14B8A6",
	"accessory": "F59E0B",
}

const defaultCategoryColor = "6B7280"

// StaticProvider is the last real tier of the lookup chain: a fixed photo
// per category, no network involved.
type StaticProvider struct{}

// NewStaticProvider creates the static fallback provider
func NewStaticProvider() *StaticProvider {
	return &StaticProvider{}
}

func (p *StaticProvider) Name() string {
	return "static"
}

// Lookup returns the category's curated photo URL. Never fails.
func (p *StaticProvider) Lookup(ctx context.Context, query, category string) (string, error) {
	return StaticURL(category), nil
}

// StaticURL returns the curated photo for a category, or the designated
// default for unrecognized categories
func StaticURL(category string) string {
	if u, ok := categoryImages[category]; ok {
		return u
	}
	return defaultCategoryImage
}

// PlaceholderURL synthesizes a colored placeholder tile labeled with the
// category name. Terminal fallback when every provider tier has failed.
func PlaceholderURL(category string) string {
	color, ok := categoryColors[category]
	if !ok {
		color = defaultCategoryColor
	}
	return "https://via.placeholder.com/400/" + color + "/FFFFFF?text=" + url.QueryEscape(category)
}
