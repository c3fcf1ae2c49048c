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

// GoogleCSEClient queries the Google Custom Search API for product images.
// Second tier: generic image search disambiguated with a fixed
// "shopping product" suffix.
type GoogleCSEClient struct {
	httpClient  *http.Client
	apiKey      string
	engineID    string
	baseURL     string
	rateLimiter *rate.Limiter
}

// googleCSEResponse is the subset of the Custom Search payload we read
type googleCSEResponse struct {
	Items []struct {
		Link string `json:"link"`
	} `json:"items"`
}

// NewGoogleCSEClient creates a Google Custom Search client
func NewGoogleCSEClient(apiKey, engineID, baseURL string) *GoogleCSEClient {
	// CSE free quota is 100 queries/day
	limiter := rate.NewLimiter(rate.Limit(1), 5)

	return &GoogleCSEClient{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		apiKey:      apiKey,
		engineID:    engineID,
		baseURL:     baseURL,
		rateLimiter: limiter,
	}
}

func (c *GoogleCSEClient) Name() string {
	return "google-cse"
}

// Lookup runs a medium-size, safe-filtered image search for the query plus
// the shopping suffix, and returns the first item's link
func (c *GoogleCSEClient) Lookup(ctx context.Context, query, category string) (string, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("%w: rate limiter: %v", domain.ErrProviderLookup, err)
	}

	endpoint := fmt.Sprintf("%s/customsearch/v1", c.baseURL)
	params := url.Values{}
	params.Add("key", c.apiKey)
	params.Add("cx", c.engineID)
	params.Add("searchType", "image")
	params.Add("q", query+" shopping product")
	params.Add("num", "1")
	params.Add("imgSize", "medium")
	params.Add("safe", "active")

	body, err := getJSON(ctx, c.httpClient, fmt.Sprintf("%s?%s", endpoint, params.Encode()), nil)
	if err != nil {
		return "", err
	}

	var resp googleCSEResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("%w: decode: %v", domain.ErrProviderLookup, err)
	}

	if len(resp.Items) == 0 || resp.Items[0].Link == "" {
		return "", fmt.Errorf("%w: no image results for %q", domain.ErrProviderLookup, query)
	}

	return resp.Items[0].Link, nil
}
