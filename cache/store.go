package cache

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/tobeqz/spotify-manage/models"
	"github.com/tobeqz/spotify-manage/utils"
)

var (
	// ErrNotFound means no record has been written yet.
	ErrNotFound = errors.New("cache: record not found")
	// ErrCorrupt means the slot exists but does not decode to a valid
	// record, e.g. after racing a concurrent writer. Callers treat it
	// as a miss, never as fatal.
	ErrCorrupt = errors.New("cache: corrupt record")
)

// Store holds the single now-playing record and judges its freshness.
// There is no history: each Write replaces the prior record entirely.
type Store interface {
	Read() (*models.Metadata, error)
	Write(m *models.Metadata) error
	IsFresh(m *models.Metadata, now time.Time) bool
}

// FileStore keeps the record at one fixed path. Single-writer,
// best-effort: no locking against concurrent invocations. Last writer
// wins, and a reader racing a write sees ErrCorrupt.
type FileStore struct {
	path string
	ttl  time.Duration
}

func NewFileStore(path string, ttl time.Duration) *FileStore {
	return &FileStore{path: path, ttl: ttl}
}

func (fst *FileStore) Read() (*models.Metadata, error) {
	data, readErr := os.ReadFile(fst.path)
	if readErr != nil {
		if errors.Is(readErr, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("cache read: %w", readErr)
	}
	meta, decodeErr := models.DecodeMetadata(data)
	if decodeErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, decodeErr)
	}
	if validateErr := utils.ValidateRecord(meta); validateErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, validateErr)
	}
	return meta, nil
}

func (fst *FileStore) Write(m *models.Metadata) error {
	data, encodeErr := m.Encode()
	if encodeErr != nil {
		return encodeErr
	}
	if writeErr := os.WriteFile(fst.path, data, 0o644); writeErr != nil {
		return fmt.Errorf("cache write: %w", writeErr)
	}
	return nil
}

// IsFresh reports whether the record is younger than the store's TTL.
func (fst *FileStore) IsFresh(m *models.Metadata, now time.Time) bool {
	return now.Sub(m.Timestamp) < fst.ttl
}
