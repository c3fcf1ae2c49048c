package domain

// Outfit item categories the recommendation prompt constrains the model to.
const (
	CategoryShirt     = "shirt"
	CategoryPants     = "pants"
	CategoryDress     = "dress"
	CategoryShoes     = "shoes"
	CategoryOuterwear = "outerwear"
	CategoryAccessory = "accessory"
)

// OutfitItem represents one recommended outfit piece. The model produces the
// core fields; ImageURL and ShopLink are filled in by the recommendation
// service after parsing.
type OutfitItem struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Style       string  `json:"style"`
	Price       string  `json:"price"`
	MatchScore  float64 `json:"matchScore"`
	SearchQuery string  `json:"searchQuery"`
	Description string  `json:"description"`
	ImageURL    string  `json:"imageUrl,omitempty"`
	ShopLink    string  `json:"shopLink,omitempty"`
}

// RecommendationResult is the payload returned by the recommendation service.
type RecommendationResult struct {
	Recommendations []OutfitItem `json:"recommendations"`
}
