package cache

import (
	"fmt"
	"time"

	"github.com/tobeqz/spotify-manage/models"
	"github.com/tobeqz/spotify-manage/utils"
)

// MemoryStore keeps the record slot in memory. It runs records through
// the same encode/decode round-trip as FileStore so substituting it in
// tests exercises the serialized form.
type MemoryStore struct {
	ttl  time.Duration
	data []byte
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{ttl: ttl}
}

func (ms *MemoryStore) Read() (*models.Metadata, error) {
	if ms.data == nil {
		return nil, ErrNotFound
	}
	meta, decodeErr := models.DecodeMetadata(ms.data)
	if decodeErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, decodeErr)
	}
	if validateErr := utils.ValidateRecord(meta); validateErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, validateErr)
	}
	return meta, nil
}

func (ms *MemoryStore) Write(m *models.Metadata) error {
	data, encodeErr := m.Encode()
	if encodeErr != nil {
		return encodeErr
	}
	ms.data = data
	return nil
}

func (ms *MemoryStore) IsFresh(m *models.Metadata, now time.Time) bool {
	return now.Sub(m.Timestamp) < ms.ttl
}
