package blobstore

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/vybe/backend/internal/domain"
)

func TestMemoryStore_PutAndGet(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	tests := []struct {
		name     string
		key      string
		data     []byte
		mimeType string
	}{
		{
			name:     "store and retrieve png",
			key:      "look_1712000000000_front",
			data:     []byte{0x89, 0x50, 0x4e, 0x47},
			mimeType: "image/png",
		},
		{
			name:     "store and retrieve jpeg",
			key:      "look_1712000000000_back",
			data:     []byte{0xff, 0xd8, 0xff},
			mimeType: "image/jpeg",
		},
		{
			name:     "store empty blob",
			key:      "empty",
			data:     nil,
			mimeType: "application/octet-stream",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := store.Put(ctx, tt.key, &domain.Blob{Data: tt.data, MIMEType: tt.mimeType})
			if err != nil {
				t.Fatalf("Put() error = %v", err)
			}

			got, err := store.Get(ctx, tt.key)
			if err != nil {
				t.Fatalf("Get() error = %v", err)
			}
			if got.MIMEType != tt.mimeType {
				t.Errorf("MIMEType = %q, want %q", got.MIMEType, tt.mimeType)
			}
			if string(got.Data) != string(tt.data) {
				t.Errorf("Data = %v, want %v", got.Data, tt.data)
			}
		})
	}
}

func TestMemoryStore_GetMissing(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.Get(context.Background(), "no-such-key")
	if err != domain.ErrBlobNotFound {
		t.Errorf("Get() error = %v, want ErrBlobNotFound", err)
	}
}

func TestMemoryStore_PutNil(t *testing.T) {
	store := NewMemoryStore()

	err := store.Put(context.Background(), "key", nil)
	if err != domain.ErrInvalidRequest {
		t.Errorf("Put(nil) error = %v, want ErrInvalidRequest", err)
	}
}

func TestMemoryStore_PutCopiesData(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	data := []byte{1, 2, 3}
	if err := store.Put(ctx, "key", &domain.Blob{Data: data, MIMEType: "image/png"}); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	// Mutating the caller's buffer must not affect the stored blob
	data[0] = 99

	got, err := store.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Data[0] != 1 {
		t.Errorf("stored blob mutated through caller buffer: %v", got.Data)
	}
}

func TestMemoryStore_Delete(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	store.Put(ctx, "key", &domain.Blob{Data: []byte{1}, MIMEType: "image/png"})

	if err := store.Delete(ctx, "key"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	exists, err := store.Exists(ctx, "key")
	if err != nil {
		t.Fatalf("Exists() error = %v", err)
	}
	if exists {
		t.Error("key still exists after Delete()")
	}

	// Deleting a missing key is a no-op
	if err := store.Delete(ctx, "no-such-key"); err != nil {
		t.Errorf("Delete(missing) error = %v", err)
	}
}

func TestMemoryStore_ConcurrentSavesDoNotCollide(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := fmt.Sprintf("look_%d_front", i)
			store.Put(ctx, key, &domain.Blob{Data: []byte{byte(i)}, MIMEType: "image/png"})
		}(i)
	}
	wg.Wait()

	if store.Size() != 50 {
		t.Errorf("Size() = %d, want 50", store.Size())
	}
	for i := 0; i < 50; i++ {
		key := fmt.Sprintf("look_%d_front", i)
		got, err := store.Get(ctx, key)
		if err != nil {
			t.Fatalf("Get(%q) error = %v", key, err)
		}
		if got.Data[0] != byte(i) {
			t.Errorf("Get(%q) = %v, want [%d]", key, got.Data, i)
		}
	}
}
