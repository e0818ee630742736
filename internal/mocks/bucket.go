package mocks

import (
	"context"
	"io"
	"sync"

	"github.com/phrazzld/folio-api/internal/platform/storage"
)

// Ensure MockBucket implements storage.Bucket
var _ storage.Bucket = (*MockBucket)(nil)

// StoredObject is one object written to a MockBucket.
type StoredObject struct {
	Key         string
	Data        []byte
	Size        int64
	ContentType string
}

// MockBucket implements storage.Bucket for testing. By default it reads the
// whole object into memory and returns BaseURL + "/" + key.
type MockBucket struct {
	PutFn func(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error)

	BaseURL string
	Err     error

	mu      sync.Mutex
	objects []StoredObject
}

// Put implements the storage.Bucket interface.
func (m *MockBucket) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error) {
	if m.PutFn != nil {
		return m.PutFn(ctx, key, r, size, contentType)
	}
	if m.Err != nil {
		return "", m.Err
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}

	m.mu.Lock()
	m.objects = append(m.objects, StoredObject{Key: key, Data: data, Size: size, ContentType: contentType})
	m.mu.Unlock()
	return m.BaseURL + "/" + key, nil
}

// Objects returns the stored objects in write order.
func (m *MockBucket) Objects() []StoredObject {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]StoredObject, len(m.objects))
	copy(out, m.objects)
	return out
}
