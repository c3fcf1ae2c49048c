package usecase

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/vybe/backend/internal/domain"
)

// savedLooksKey is the single well-known blob key holding the ordered list
// of saved-look records
const savedLooksKey = "vybe_saved_looks"

// LooksService manages the user's saved try-on looks. Record metadata lives
// as a JSON list under one well-known key; image bytes live as individual
// blobs keyed look_<id>_front / look_<id>_back. Legacy records that embedded
// raw data URLs are rewritten into blob references on first load.
//
// The record list lives under a single key, so every operation is a
// load-modify-store cycle; mu serializes those cycles. Without it two saves
// in the same millisecond mint the same id and one record is lost.
type LooksService struct {
	mu    sync.Mutex
	blobs domain.BlobStore
	now   func() time.Time
}

// NewLooksService creates a looks service
func NewLooksService(blobs domain.BlobStore) *LooksService {
	return &LooksService{
		blobs: blobs,
		now:   time.Now,
	}
}

// SaveLookInput holds one look to persist
type SaveLookInput struct {
	Name  string
	Front domain.Blob
	Back  domain.Blob
}

// Save persists a new look. The id is the save timestamp in milliseconds,
// bumped past any existing id so blob keys never collide.
func (s *LooksService) Save(ctx context.Context, input *SaveLookInput) (*domain.SavedLook, error) {
	if input == nil || input.Name == "" || len(input.Front.Data) == 0 || len(input.Back.Data) == 0 {
		return nil, domain.ErrInvalidRequest
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	looks, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	id := s.now().UnixMilli()
	for containsID(looks, id) {
		id++
	}

	look := domain.SavedLook{
		ID:    id,
		Name:  input.Name,
		Date:  s.now().Format("January 2, 2006"),
		Front: domain.ImageRef{Key: domain.LookBlobKey(id, "front")},
		Back:  domain.ImageRef{Key: domain.LookBlobKey(id, "back")},
	}

	if err := s.blobs.Put(ctx, look.Front.Key, &input.Front); err != nil {
		return nil, fmt.Errorf("storing front image: %w", err)
	}
	if err := s.blobs.Put(ctx, look.Back.Key, &input.Back); err != nil {
		return nil, fmt.Errorf("storing back image: %w", err)
	}

	looks = append(looks, look)
	if err := s.store(ctx, looks); err != nil {
		return nil, err
	}

	return &look, nil
}

// List returns the saved looks in save order, opportunistically migrating
// legacy inline-image records into blob references.
func (s *LooksService) List(ctx context.Context) ([]domain.SavedLook, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	looks, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	migrated := false
	for i := range looks {
		if s.migrate(ctx, &looks[i]) {
			migrated = true
		}
	}
	if migrated {
		if err := s.store(ctx, looks); err != nil {
			log.Printf("[looks] failed to persist migrated records: %v", err)
		}
	}

	return looks, nil
}

// Delete removes a look's record and its referenced blobs
func (s *LooksService) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	looks, err := s.load(ctx)
	if err != nil {
		return err
	}

	index := -1
	for i := range looks {
		if looks[i].ID == id {
			index = i
			break
		}
	}
	if index == -1 {
		return domain.ErrLookNotFound
	}

	for _, key := range []string{looks[index].Front.Key, looks[index].Back.Key} {
		if key == "" {
			continue
		}
		if err := s.blobs.Delete(ctx, key); err != nil {
			log.Printf("[looks] failed to delete blob %q: %v", key, err)
		}
	}

	looks = append(looks[:index], looks[index+1:]...)
	return s.store(ctx, looks)
}

// Image returns the stored image bytes for one view of a look
func (s *LooksService) Image(ctx context.Context, id int64, view string) (*domain.Blob, error) {
	if view != "front" && view != "back" {
		return nil, domain.ErrInvalidRequest
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	looks, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	for i := range looks {
		if looks[i].ID != id {
			continue
		}
		ref := looks[i].Front
		if view == "back" {
			ref = looks[i].Back
		}
		if ref.Key != "" {
			return s.blobs.Get(ctx, ref.Key)
		}
		if ref.Src != "" {
			data, mimeType, err := decodeDataURL(ref.Src)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", domain.ErrBlobNotFound, err)
			}
			return &domain.Blob{Data: data, MIMEType: mimeType}, nil
		}
		return nil, domain.ErrBlobNotFound
	}

	return nil, domain.ErrLookNotFound
}

// migrate rewrites one legacy record in place. Legacy shapes, oldest first:
// an images array of data URLs (front then back), or per-view inline src
// fields. Both end up as blob-store keys. Returns true when the record
// changed.
func (s *LooksService) migrate(ctx context.Context, look *domain.SavedLook) bool {
	changed := false

	if len(look.Images) > 0 {
		if look.Front.Key == "" && look.Front.Src == "" {
			look.Front.Src = look.Images[0]
		}
		if len(look.Images) > 1 && look.Back.Key == "" && look.Back.Src == "" {
			look.Back.Src = look.Images[1]
		}
		look.Images = nil
		changed = true
	}

	if s.migrateRef(ctx, look.ID, "front", &look.Front) {
		changed = true
	}
	if s.migrateRef(ctx, look.ID, "back", &look.Back) {
		changed = true
	}
	return changed
}

// migrateRef moves one inline data URL into the blob store. Undecodable
// legacy data is left as-is rather than lost.
func (s *LooksService) migrateRef(ctx context.Context, id int64, view string, ref *domain.ImageRef) bool {
	if ref.Key != "" || ref.Src == "" {
		return false
	}

	data, mimeType, err := decodeDataURL(ref.Src)
	if err != nil {
		log.Printf("[looks] cannot migrate %s image of look %d: %v", view, id, err)
		return false
	}

	key := domain.LookBlobKey(id, view)
	if err := s.blobs.Put(ctx, key, &domain.Blob{Data: data, MIMEType: mimeType}); err != nil {
		log.Printf("[looks] cannot store migrated %s image of look %d: %v", view, id, err)
		return false
	}

	ref.Key = key
	ref.Src = ""
	return true
}

// load reads the record list; a missing key is an empty list
func (s *LooksService) load(ctx context.Context) ([]domain.SavedLook, error) {
	blob, err := s.blobs.Get(ctx, savedLooksKey)
	if errors.Is(err, domain.ErrBlobNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var looks []domain.SavedLook
	if err := json.Unmarshal(blob.Data, &looks); err != nil {
		return nil, fmt.Errorf("corrupt saved-looks record list: %w", err)
	}
	return looks, nil
}

// store writes the record list back under the well-known key
func (s *LooksService) store(ctx context.Context, looks []domain.SavedLook) error {
	data, err := json.Marshal(looks)
	if err != nil {
		return err
	}
	return s.blobs.Put(ctx, savedLooksKey, &domain.Blob{Data: data, MIMEType: "application/json"})
}

func containsID(looks []domain.SavedLook, id int64) bool {
	for i := range looks {
		if looks[i].ID == id {
			return true
		}
	}
	return false
}

// decodeDataURL splits a "data:<mime>;base64,<payload>" URL into bytes and
// content type
func decodeDataURL(src string) ([]byte, string, error) {
	rest, ok := strings.CutPrefix(src, "data:")
	if !ok {
		return nil, "", fmt.Errorf("not a data URL")
	}

	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return nil, "", fmt.Errorf("malformed data URL")
	}

	mimeType := "image/png"
	if trimmed := strings.TrimSuffix(meta, ";base64"); trimmed != "" {
		mimeType = trimmed
	}
	if !strings.HasSuffix(meta, ";base64") {
		return nil, "", fmt.Errorf("unsupported data URL encoding")
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", fmt.Errorf("invalid base64 payload: %w", err)
	}
	return data, mimeType, nil
}
