package imagesearch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"github.com/vybe/backend/internal/domain"
)

// SerpAPIClient queries SerpAPI's Google Shopping engine for real product
// thumbnails. Highest-quality tier of the lookup chain.
type SerpAPIClient struct {
	httpClient  *http.Client
	apiKey      string
	baseURL     string
	rateLimiter *rate.Limiter
}

// serpAPIResponse is the subset of the SerpAPI payload we read
type serpAPIResponse struct {
	ShoppingResults []struct {
		Thumbnail string `json:"thumbnail"`
	} `json:"shopping_results"`
}

// NewSerpAPIClient creates a SerpAPI client
func NewSerpAPIClient(apiKey, baseURL string) *SerpAPIClient {
	// SerpAPI free tier is tight; keep outbound calls to ~1/sec with a
	// burst wide enough for one recommendation batch
	limiter := rate.NewLimiter(rate.Limit(1), 5)

	return &SerpAPIClient{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		apiKey:      apiKey,
		baseURL:     baseURL,
		rateLimiter: limiter,
	}
}

func (c *SerpAPIClient) Name() string {
	return "serpapi"
}

// Lookup searches Google Shopping for the query and returns the first
// result's thumbnail URL
func (c *SerpAPIClient) Lookup(ctx context.Context, query, category string) (string, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("%w: rate limiter: %v", domain.ErrProviderLookup, err)
	}

	endpoint := fmt.Sprintf("%s/search.json", c.baseURL)
	params := url.Values{}
	params.Add("engine", "google_shopping")
	params.Add("q", query)
	params.Add("api_key", c.apiKey)
	params.Add("num", "1")

	body, err := getJSON(ctx, c.httpClient, fmt.Sprintf("%s?%s", endpoint, params.Encode()), nil)
	if err != nil {
		return "", err
	}

	var resp serpAPIResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("%w: decode: %v", domain.ErrProviderLookup, err)
	}

	if len(resp.ShoppingResults) == 0 || resp.ShoppingResults[0].Thumbnail == "" {
		return "", fmt.Errorf("%w: no shopping results for %q", domain.ErrProviderLookup, query)
	}

	return resp.ShoppingResults[0].Thumbnail, nil
}

// getJSON executes a GET request and returns the response body, mapping
// transport and non-200 statuses onto ErrProviderLookup
func getJSON(ctx context.Context, client *http.Client, reqURL string, headers map[string]string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrProviderLookup, err)
	}
	req.Header.Set("User-Agent", "Vybe/1.0")
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrProviderLookup, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", domain.ErrProviderLookup, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrProviderLookup, err)
	}
	return body, nil
}
