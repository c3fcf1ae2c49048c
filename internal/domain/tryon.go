package domain

// ImageAttachment is raw image bytes attached inline to a generative prompt
type ImageAttachment struct {
	Data     []byte
	MIMEType string
}

// PromptPart is one element of an ordered prompt: either text or an image.
// Interleaving text labels with images tells the model what each upload is.
type PromptPart struct {
	Text  string
	Image *ImageAttachment
}

// GeneratedImage is the inline image payload returned by an image model call
type GeneratedImage struct {
	Data     []byte
	MIMEType string
}

// GeneratedView is one rendered try-on view. On per-view failure, Error is
// set instead of Data; partial success across views is a valid result.
type GeneratedView struct {
	View     string `json:"view"`
	MIMEType string `json:"mimeType,omitempty"`
	Data     string `json:"data,omitempty"` // base64-encoded image bytes
	Error    string `json:"error,omitempty"`
}

// TryOnResult is the payload returned by the try-on service
type TryOnResult struct {
	Results []GeneratedView `json:"results"`
}
