package usecase

import (
	"context"
	"sync"

	"github.com/vybe/backend/internal/domain"
)

// MockGenerativeClient is a mock implementation of domain.GenerativeClient.
// Behavior is supplied per test through the function fields.
type MockGenerativeClient struct {
	mu         sync.Mutex
	textCalls  int
	imageCalls int

	textFn  func(parts []domain.PromptPart) (string, error)
	imageFn func(parts []domain.PromptPart) (*domain.GeneratedImage, error)
}

func (m *MockGenerativeClient) GenerateText(ctx context.Context, parts []domain.PromptPart) (string, error) {
	m.mu.Lock()
	m.textCalls++
	m.mu.Unlock()
	return m.textFn(parts)
}

func (m *MockGenerativeClient) GenerateImage(ctx context.Context, parts []domain.PromptPart) (*domain.GeneratedImage, error) {
	m.mu.Lock()
	m.imageCalls++
	m.mu.Unlock()
	return m.imageFn(parts)
}

// MockImageResolver is a mock implementation of domain.ImageResolver that
// records queries and answers from a fixed table.
type MockImageResolver struct {
	mu      sync.Mutex
	queries []string
	urls    map[string]string
}

func NewMockImageResolver() *MockImageResolver {
	return &MockImageResolver{urls: make(map[string]string)}
}

func (m *MockImageResolver) Resolve(ctx context.Context, query, category string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queries = append(m.queries, query)
	if u, ok := m.urls[query]; ok {
		return u
	}
	return "https://fallback.example/" + category + ".jpg"
}

// promptText concatenates the text parts of a prompt, for assertions
func promptText(parts []domain.PromptPart) string {
	var text string
	for _, part := range parts {
		if part.Image == nil {
			text += part.Text + "\n"
		}
	}
	return text
}

// countImages counts the image parts of a prompt
func countImages(parts []domain.PromptPart) int {
	n := 0
	for _, part := range parts {
		if part.Image != nil {
			n++
		}
	}
	return n
}
