package domain

import "context"

// GenerativeClient defines the interface for the upstream generative AI
// service. Implementations wrap the Gemini SDK; usecase tests substitute
// mocks.
type GenerativeClient interface {
	// GenerateText runs a text-modality call and returns the model's text.
	// Returns a NoOutputError when the call succeeds but yields no text.
	GenerateText(ctx context.Context, parts []PromptPart) (string, error)

	// GenerateImage runs an image-modality call and returns the first
	// inline image part. Returns a NoOutputError when no image comes back.
	GenerateImage(ctx context.Context, parts []PromptPart) (*GeneratedImage, error)
}

// ImageProvider is one tier of the outfit-image lookup chain. Lookup returns
// a representative product photo URL for the query, or an error when the
// provider has no usable result.
type ImageProvider interface {
	Name() string
	Lookup(ctx context.Context, query, category string) (string, error)
}

// ImageResolver resolves a product photo URL for an outfit item. Resolve
// never fails; when every provider comes up empty it returns a fallback URL.
type ImageResolver interface {
	Resolve(ctx context.Context, query, category string) string
}

// Blob is a stored binary value with its content type
type Blob struct {
	Data     []byte
	MIMEType string
}

// BlobStore defines the interface for binary image persistence, one blob per
// string key.
type BlobStore interface {
	Put(ctx context.Context, key string, blob *Blob) error
	Get(ctx context.Context, key string) (*Blob, error)
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}
