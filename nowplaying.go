package spotifymanage

import (
	"errors"
	"fmt"
	"time"

	"github.com/tobeqz/spotify-manage/cache"
	"github.com/tobeqz/spotify-manage/models"
	"github.com/tobeqz/spotify-manage/player"
	"github.com/tobeqz/spotify-manage/utils"
)

// ErrZeroLength is returned by SongProgress for a zero-length track.
var ErrZeroLength = errors.New("nowplaying: track length is zero")

// NowPlaying answers now-playing queries with minimal bus traffic. A
// fresh cached record short-circuits the bus entirely; anything else
// (record missing, corrupt, or stale) costs one metadata fetch plus one
// position fetch, followed by a cache write-back.
type NowPlaying struct {
	logf   func(string, ...interface{})
	player player.Player
	store  cache.Store
	now    func() time.Time
}

func NewNowPlaying(p player.Player, store cache.Store) *NowPlaying {
	return &NowPlaying{
		logf: func(s string, i ...interface{}) {
			utils.LogFunc("NP", s, i...)
		},
		player: p,
		store:  store,
		now:    time.Now,
	}
}

// Metadata returns the current record, from cache when fresh. A missing
// or corrupt slot is recovered by refetching from the bus, never
// surfaced. A write-back failure propagates rather than being masked.
func (np *NowPlaying) Metadata() (*models.Metadata, error) {
	cached, readErr := np.store.Read()
	if readErr == nil && np.store.IsFresh(cached, np.now()) {
		return cached, nil
	}
	if readErr != nil && !errors.Is(readErr, cache.ErrNotFound) && !errors.Is(readErr, cache.ErrCorrupt) {
		return nil, readErr
	}

	raw, metadataErr := np.player.Metadata()
	if metadataErr != nil {
		return nil, fmt.Errorf("metadata fetch: %w", metadataErr)
	}
	position, positionErr := np.player.Position()
	if positionErr != nil {
		return nil, fmt.Errorf("position fetch: %w", positionErr)
	}
	meta, decodeErr := models.FromMPRIS(raw, position, np.now())
	if decodeErr != nil {
		return nil, decodeErr
	}
	if writeErr := np.store.Write(meta); writeErr != nil {
		return nil, writeErr
	}
	return meta, nil
}

// SongProgress is position/length of the current (possibly cached)
// record.
func (np *NowPlaying) SongProgress() (float64, error) {
	meta, metadataErr := np.Metadata()
	if metadataErr != nil {
		return 0, metadataErr
	}
	if meta.Length == 0 {
		return 0, ErrZeroLength
	}
	return float64(meta.Position) / float64(meta.Length), nil
}

// SongName formats the current track as "Artist - Title". On a query
// failure it falls back to whatever the cache last held, with no
// freshness check: for a status-bar consumer a stale name beats an
// error.
func (np *NowPlaying) SongName() (string, error) {
	meta, metadataErr := np.Metadata()
	if metadataErr != nil {
		np.logf("falling back to cached record: %v", metadataErr)
		cached, readErr := np.store.Read()
		if readErr != nil {
			return "", readErr
		}
		meta = cached
	}
	return fmt.Sprintf("%s - %s", meta.Artist, meta.Title), nil
}

// PlaybackStatus reads the player's status and validates it against the
// MPRIS enum.
func (np *NowPlaying) PlaybackStatus() (string, error) {
	playbackStatus, statusErr := np.player.PlaybackStatus()
	if statusErr != nil {
		return "", fmt.Errorf("playback status: %w", statusErr)
	}
	return models.ParsePlaybackStatus(playbackStatus)
}
