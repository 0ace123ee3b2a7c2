package spotifymanage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/godbus/dbus/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tobeqz/spotify-manage/cache"
	"github.com/tobeqz/spotify-manage/models"
)

// stubPlayer counts bus round-trips so tests can assert the cache
// actually short-circuits them.
type stubPlayer struct {
	raw           map[string]dbus.Variant
	position      int64
	status        string
	err           error
	metadataCalls int
	positionCalls int
}

func (sp *stubPlayer) Next() error      { return sp.err }
func (sp *stubPlayer) Previous() error  { return sp.err }
func (sp *stubPlayer) Pause() error     { return sp.err }
func (sp *stubPlayer) Play() error      { return sp.err }
func (sp *stubPlayer) PlayPause() error { return sp.err }

func (sp *stubPlayer) Position() (int64, error) {
	sp.positionCalls++
	if sp.err != nil {
		return 0, sp.err
	}
	return sp.position, nil
}

func (sp *stubPlayer) Metadata() (map[string]dbus.Variant, error) {
	sp.metadataCalls++
	if sp.err != nil {
		return nil, sp.err
	}
	return sp.raw, nil
}

func (sp *stubPlayer) PlaybackStatus() (string, error) {
	if sp.err != nil {
		return "", sp.err
	}
	return sp.status, nil
}

func playingStub() *stubPlayer {
	return &stubPlayer{
		raw: map[string]dbus.Variant{
			models.KeyTitle:  dbus.MakeVariant("One More Time"),
			models.KeyArtist: dbus.MakeVariant([]string{"Daft Punk"}),
			models.KeyLength: dbus.MakeVariant(int64(200000)),
		},
		position: 50000,
		status:   models.PlaybackStatusPlaying,
	}
}

// failingStore wraps a Store and fails every write.
type failingStore struct {
	cache.Store
}

var errDiskFull = errors.New("disk full")

func (fs *failingStore) Write(m *models.Metadata) error { return errDiskFull }

func newTestNowPlaying(sp *stubPlayer, store cache.Store) *NowPlaying {
	np := NewNowPlaying(sp, store)
	np.logf = func(string, ...interface{}) {}
	return np
}

func TestMetadataPopulatesCache(t *testing.T) {
	sp := playingStub()
	store := cache.NewMemoryStore(3 * time.Second)
	np := newTestNowPlaying(sp, store)

	meta, metadataErr := np.Metadata()
	require.NoError(t, metadataErr)
	assert.Equal(t, "One More Time", meta.Title)
	assert.Equal(t, "Daft Punk", meta.Artist)
	assert.Equal(t, int64(200000), meta.Length)
	assert.Equal(t, int64(50000), meta.Position)
	assert.Equal(t, 1, sp.metadataCalls)
	assert.Equal(t, 1, sp.positionCalls)

	// The write-back landed in the store.
	cached, readErr := store.Read()
	require.NoError(t, readErr)
	assert.Equal(t, meta.Title, cached.Title)
	assert.True(t, meta.Timestamp.Equal(cached.Timestamp))

	// A second query inside the TTL window costs zero bus calls and
	// returns the identical record.
	again, againErr := np.Metadata()
	require.NoError(t, againErr)
	assert.Equal(t, 1, sp.metadataCalls)
	assert.Equal(t, 1, sp.positionCalls)
	assert.Equal(t, meta.Title, again.Title)
	assert.Equal(t, meta.Position, again.Position)
	assert.True(t, meta.Timestamp.Equal(again.Timestamp))
}

func TestMetadataStaleRecordRefetches(t *testing.T) {
	sp := playingStub()
	store := cache.NewMemoryStore(3 * time.Second)
	np := newTestNowPlaying(sp, store)

	stale := &models.Metadata{
		Title:     "Harder Better Faster Stronger",
		Artist:    "Daft Punk",
		Length:    224000,
		Position:  10000,
		Timestamp: time.Now().Add(-10 * time.Second),
	}
	require.NoError(t, store.Write(stale))

	meta, metadataErr := np.Metadata()
	require.NoError(t, metadataErr)
	assert.Equal(t, "One More Time", meta.Title)
	assert.Equal(t, 1, sp.metadataCalls)
	assert.Equal(t, 1, sp.positionCalls)
}

func TestMetadataCorruptRecordRefetches(t *testing.T) {
	sp := playingStub()
	path := filepath.Join(t.TempDir(), "cache")
	require.NoError(t, os.WriteFile(path, []byte("torn write"), 0o644))
	np := newTestNowPlaying(sp, cache.NewFileStore(path, 3*time.Second))

	meta, metadataErr := np.Metadata()
	require.NoError(t, metadataErr)
	assert.Equal(t, "One More Time", meta.Title)
	assert.Equal(t, 1, sp.metadataCalls)
}

func TestMetadataDecodeErrorPropagates(t *testing.T) {
	sp := playingStub()
	delete(sp.raw, models.KeyTitle)
	np := newTestNowPlaying(sp, cache.NewMemoryStore(3*time.Second))

	meta, metadataErr := np.Metadata()
	assert.Nil(t, meta)

	var decodeErrVal *models.DecodeError
	assert.True(t, errors.As(metadataErr, &decodeErrVal))
}

func TestMetadataWriteFailurePropagates(t *testing.T) {
	sp := playingStub()
	store := &failingStore{Store: cache.NewMemoryStore(3 * time.Second)}
	np := newTestNowPlaying(sp, store)

	meta, metadataErr := np.Metadata()
	assert.Nil(t, meta)
	assert.ErrorIs(t, metadataErr, errDiskFull)
}

func TestSongProgress(t *testing.T) {
	np := newTestNowPlaying(playingStub(), cache.NewMemoryStore(3*time.Second))

	progress, progressErr := np.SongProgress()
	require.NoError(t, progressErr)
	assert.Equal(t, 0.25, progress)
}

func TestSongProgressZeroLength(t *testing.T) {
	sp := playingStub()
	sp.raw[models.KeyLength] = dbus.MakeVariant(int64(0))
	np := newTestNowPlaying(sp, cache.NewMemoryStore(3*time.Second))

	progress, progressErr := np.SongProgress()
	assert.Zero(t, progress)
	assert.ErrorIs(t, progressErr, ErrZeroLength)
}

func TestSongName(t *testing.T) {
	np := newTestNowPlaying(playingStub(), cache.NewMemoryStore(3*time.Second))

	name, nameErr := np.SongName()
	require.NoError(t, nameErr)
	assert.Equal(t, "Daft Punk - One More Time", name)
}

func TestSongNameFallsBackToStaleCache(t *testing.T) {
	sp := playingStub()
	sp.err = errors.New("player gone")
	store := cache.NewMemoryStore(3 * time.Second)
	np := newTestNowPlaying(sp, store)

	// Seed a record well past the TTL. The fallback reads it anyway.
	require.NoError(t, store.Write(&models.Metadata{
		Title:     "One More Time",
		Artist:    "Daft Punk",
		Length:    200000,
		Position:  50000,
		Timestamp: time.Now().Add(-time.Hour),
	}))

	name, nameErr := np.SongName()
	require.NoError(t, nameErr)
	assert.Equal(t, "Daft Punk - One More Time", name)
}

func TestSongNameNoFallbackRecord(t *testing.T) {
	sp := playingStub()
	sp.err = errors.New("player gone")
	np := newTestNowPlaying(sp, cache.NewMemoryStore(3*time.Second))

	name, nameErr := np.SongName()
	assert.Empty(t, name)
	assert.ErrorIs(t, nameErr, cache.ErrNotFound)
}

func TestPlaybackStatus(t *testing.T) {
	np := newTestNowPlaying(playingStub(), cache.NewMemoryStore(3*time.Second))

	playbackStatus, statusErr := np.PlaybackStatus()
	require.NoError(t, statusErr)
	assert.Equal(t, models.PlaybackStatusPlaying, playbackStatus)
}

func TestPlaybackStatusInvalidValue(t *testing.T) {
	sp := playingStub()
	sp.status = "Rewinding"
	np := newTestNowPlaying(sp, cache.NewMemoryStore(3*time.Second))

	playbackStatus, statusErr := np.PlaybackStatus()
	assert.Empty(t, playbackStatus)
	assert.Error(t, statusErr)
}
