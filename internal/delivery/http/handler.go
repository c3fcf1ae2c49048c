package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/vybe/backend/internal/domain"
	"github.com/vybe/backend/internal/usecase"
)

// Upload limits, mirroring the browser client's expectations
const (
	maxUploadFiles = 5
	maxUploadBytes = 12 << 20 // 12 MB per file
)

var allowedImageTypes = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
	"image/webp": true,
}

// Handler holds dependencies for HTTP handlers
type Handler struct {
	tryOn     *usecase.TryOnService
	feedback  *usecase.FeedbackService
	recommend *usecase.RecommendationService
	looks     *usecase.LooksService
}

// NewHandler creates a new HTTP handler
func NewHandler(
	tryOn *usecase.TryOnService,
	feedback *usecase.FeedbackService,
	recommend *usecase.RecommendationService,
	looks *usecase.LooksService,
) *Handler {
	return &Handler{
		tryOn:     tryOn,
		feedback:  feedback,
		recommend: recommend,
		looks:     looks,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "vybe-backend",
		"version": "1.0.0",
	})
}

// Generate handles virtual try-on requests: first uploaded image is the
// subject, the rest are outfit sources. Returns one result per view;
// a failed view carries an error instead of data.
func (h *Handler) Generate(c *gin.Context) {
	prompt := strings.TrimSpace(c.PostForm("prompt"))
	if prompt == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing prompt"})
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid multipart form"})
		return
	}

	files := form.File["images"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Upload 1-5 images"})
		return
	}
	if len(files) > maxUploadFiles {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Too many images (max %d)", maxUploadFiles)})
		return
	}

	attachments := make([]domain.ImageAttachment, 0, len(files))
	for _, file := range files {
		attachment, err := readImageFile(file)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		attachments = append(attachments, attachment)
	}

	input := &usecase.TryOnInput{
		Prompt:  prompt,
		Subject: attachments[0],
		Outfits: attachments[1:],
	}

	result, err := h.tryOn.Generate(serviceContext(c), input)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	if usecase.AllViewsFailed(result) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "Model did not return an image",
			"results": result.Results,
		})
		return
	}

	c.JSON(http.StatusOK, result)
}

// Feedback handles outfit critique requests
func (h *Handler) Feedback(c *gin.Context) {
	style := strings.TrimSpace(c.PostForm("style"))
	if style == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing style"})
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing image file"})
		return
	}

	attachment, err := readImageFile(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report, err := h.feedback.Evaluate(serviceContext(c), attachment, style)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// Recommendations handles outfit recommendation requests
func (h *Handler) Recommendations(c *gin.Context) {
	vibe := strings.TrimSpace(c.PostForm("vibe"))

	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing image file"})
		return
	}

	attachment, err := readImageFile(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.recommend.Recommend(serviceContext(c), attachment, vibe)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ListLooks returns all saved looks in save order
func (h *Handler) ListLooks(c *gin.Context) {
	looks, err := h.looks.List(serviceContext(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	if looks == nil {
		looks = []domain.SavedLook{}
	}
	c.JSON(http.StatusOK, gin.H{"looks": looks})
}

// SaveLook persists a generated look (front and back images)
func (h *Handler) SaveLook(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("name"))
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing name"})
		return
	}

	input := &usecase.SaveLookInput{Name: name}
	for _, spec := range []struct {
		field string
		blob  *domain.Blob
	}{
		{"front", &input.Front},
		{"back", &input.Back},
	} {
		file, err := c.FormFile(spec.field)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing " + spec.field + " image"})
			return
		}
		attachment, err := readImageFile(file)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		spec.blob.Data = attachment.Data
		spec.blob.MIMEType = attachment.MIMEType
	}

	look, err := h.looks.Save(serviceContext(c), input)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, look)
}

// DeleteLook removes a saved look and its stored images
func (h *Handler) DeleteLook(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid look id"})
		return
	}

	if err := h.looks.Delete(serviceContext(c), id); err != nil {
		writeServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// LookImage streams one stored view image of a saved look
func (h *Handler) LookImage(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid look id"})
		return
	}

	blob, err := h.looks.Image(serviceContext(c), id, c.Param("view"))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.Data(http.StatusOK, blob.MIMEType, blob.Data)
}

// serviceContext detaches service work from the request context. Once a
// generation or store mutation starts it runs to completion even if the
// client disconnects.
func serviceContext(c *gin.Context) context.Context {
	return context.WithoutCancel(c.Request.Context())
}

// readImageFile validates and reads one multipart upload into memory
func readImageFile(header *multipart.FileHeader) (domain.ImageAttachment, error) {
	if header.Size > maxUploadBytes {
		return domain.ImageAttachment{}, fmt.Errorf("file %q exceeds the 12MB limit", header.Filename)
	}

	contentType := header.Header.Get("Content-Type")
	if !allowedImageTypes[contentType] {
		return domain.ImageAttachment{}, fmt.Errorf("unsupported image type (png/jpeg/webp only)")
	}

	file, err := header.Open()
	if err != nil {
		return domain.ImageAttachment{}, fmt.Errorf("cannot read file %q", header.Filename)
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes+1))
	if err != nil {
		return domain.ImageAttachment{}, fmt.Errorf("cannot read file %q", header.Filename)
	}
	if len(data) > maxUploadBytes {
		return domain.ImageAttachment{}, fmt.Errorf("file %q exceeds the 12MB limit", header.Filename)
	}

	return domain.ImageAttachment{Data: data, MIMEType: contentType}, nil
}

// writeServiceError maps service errors onto the HTTP error contract
func writeServiceError(c *gin.Context, err error) {
	var noOutput *domain.NoOutputError
	var parseErr *domain.ParseError

	switch {
	case errors.Is(err, domain.ErrInvalidRequest):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
	case errors.Is(err, domain.ErrLookNotFound), errors.Is(err, domain.ErrBlobNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.As(err, &noOutput):
		c.JSON(http.StatusBadGateway, gin.H{
			"error":        "Model did not return text",
			"finishReason": noOutput.FinishReason,
		})
	case errors.As(err, &parseErr):
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Could not parse model JSON",
			"raw":   parseErr.Raw,
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
