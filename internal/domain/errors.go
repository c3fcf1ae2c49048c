package domain

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

var (
	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrNoModelOutput is returned when the generative call succeeded but
	// contained no usable text or image part
	ErrNoModelOutput = errors.New("model returned no usable output")

	// ErrModelOutputParse is returned when model text is not valid JSON
	// after fence stripping
	ErrModelOutputParse = errors.New("could not parse model JSON output")

	// ErrModelTransport is returned when the generative API request fails
	ErrModelTransport = errors.New("generative API request failed")

	// ErrProviderLookup is returned when an image-search provider call fails
	ErrProviderLookup = errors.New("image provider lookup failed")

	// ErrBlobNotFound is returned when a blob key has no stored value
	ErrBlobNotFound = errors.New("blob not found")

	// ErrLookNotFound is returned when a saved look id does not exist
	ErrLookNotFound = errors.New("saved look not found")
)

// NoOutputError carries the model's reported finish reason alongside
// ErrNoModelOutput so handlers can surface it to the client.
type NoOutputError struct {
	FinishReason string
}

func (e *NoOutputError) Error() string {
	return fmt.Sprintf("model returned no usable output (finish reason: %s)", e.FinishReason)
}

func (e *NoOutputError) Unwrap() error {
	return ErrNoModelOutput
}

// maxRawExcerpt bounds the raw-text excerpt included in parse error responses.
const maxRawExcerpt = 1000

// ParseError carries a truncated excerpt of the raw model text alongside
// ErrModelOutputParse to aid diagnosis of malformed JSON responses.
type ParseError struct {
	Raw string
}

// NewParseError builds a ParseError with the raw text truncated to the
// excerpt limit. The cut lands on a rune boundary so the excerpt stays
// valid UTF-8 when serialized into an error body.
func NewParseError(raw string) *ParseError {
	if len(raw) > maxRawExcerpt {
		cut := maxRawExcerpt
		for cut > 0 && !utf8.RuneStart(raw[cut]) {
			cut--
		}
		raw = raw[:cut]
	}
	return &ParseError{Raw: raw}
}

func (e *ParseError) Error() string {
	return "could not parse model JSON output"
}

func (e *ParseError) Unwrap() error {
	return ErrModelOutputParse
}
