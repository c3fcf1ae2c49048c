package imagesearch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vybe/backend/internal/domain"
)

func TestGoogleCSELookup_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/customsearch/v1", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		assert.Equal(t, "test-cx", r.URL.Query().Get("cx"))
		assert.Equal(t, "image", r.URL.Query().Get("searchType"))
		assert.Equal(t, "leather boots shopping product", r.URL.Query().Get("q"))
		assert.Equal(t, "medium", r.URL.Query().Get("imgSize"))
		assert.Equal(t, "active", r.URL.Query().Get("safe"))

		w.Write([]byte(`{"items":[{"link":"https://images.example.com/boots.jpg"}]}`))
	}))
	defer server.Close()

	client := NewGoogleCSEClient("test-key", "test-cx", server.URL)
	got, err := client.Lookup(context.Background(), "leather boots", "shoes")

	require.NoError(t, err)
	assert.Equal(t, "https://images.example.com/boots.jpg", got)
}

func TestGoogleCSELookup_NoItems(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewGoogleCSEClient("test-key", "test-cx", server.URL)
	_, err := client.Lookup(context.Background(), "leather boots", "shoes")

	assert.True(t, errors.Is(err, domain.ErrProviderLookup))
}

func TestGoogleCSELookup_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	client := NewGoogleCSEClient("test-key", "test-cx", server.URL)
	_, err := client.Lookup(context.Background(), "leather boots", "shoes")

	assert.True(t, errors.Is(err, domain.ErrProviderLookup))
}
