package imagesearch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"github.com/vybe/backend/internal/domain"
)

// PexelsClient queries the Pexels photo API. Third tier: stock photography
// when no true product image could be found.
type PexelsClient struct {
	httpClient  *http.Client
	apiKey      string
	baseURL     string
	rateLimiter *rate.Limiter
}

// pexelsResponse is the subset of the Pexels payload we read
type pexelsResponse struct {
	Photos []struct {
		Src struct {
			Large string `json:"large"`
		} `json:"src"`
	} `json:"photos"`
}

// NewPexelsClient creates a Pexels client
func NewPexelsClient(apiKey, baseURL string) *PexelsClient {
	// Pexels allows 200 requests/hour
	limiter := rate.NewLimiter(rate.Limit(0.056), 10)

	return &PexelsClient{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		apiKey:      apiKey,
		baseURL:     baseURL,
		rateLimiter: limiter,
	}
}

func (c *PexelsClient) Name() string {
	return "pexels"
}

// Lookup searches stock photos for the query joined with the category and
// returns the first photo's large-size source URL
func (c *PexelsClient) Lookup(ctx context.Context, query, category string) (string, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("%w: rate limiter: %v", domain.ErrProviderLookup, err)
	}

	endpoint := fmt.Sprintf("%s/v1/search", c.baseURL)
	params := url.Values{}
	params.Add("query", query+" "+category)
	params.Add("per_page", "1")

	headers := map[string]string{"Authorization": c.apiKey}
	body, err := getJSON(ctx, c.httpClient, fmt.Sprintf("%s?%s", endpoint, params.Encode()), headers)
	if err != nil {
		return "", err
	}

	var resp pexelsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("%w: decode: %v", domain.ErrProviderLookup, err)
	}

	if len(resp.Photos) == 0 || resp.Photos[0].Src.Large == "" {
		return "", fmt.Errorf("%w: no photos for %q", domain.ErrProviderLookup, query)
	}

	return resp.Photos[0].Src.Large, nil
}
