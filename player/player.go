package player

import (
	"fmt"
	"runtime"

	"github.com/godbus/dbus/v5"
)

// Player is the typed stand-in for the remote MPRIS player object.
// Every call is one blocking bus round-trip; no timeout is applied, so
// a hung remote player stalls the caller. Position is an int64 of
// microseconds, as the MPRIS Position property is typed.
type Player interface {
	Next() error
	Previous() error
	Pause() error
	Play() error
	PlayPause() error
	Position() (int64, error)
	Metadata() (map[string]dbus.Variant, error)
	PlaybackStatus() (string, error)
}

// New connects to the session bus and returns a proxy for the named
// player, e.g. "org.mpris.MediaPlayer2.spotifyd".
func New(name string) (Player, error) {
	// Only platform currently supported is Linux
	if runtime.GOOS == "linux" {
		return NewLinuxPlayer(name)
	}
	return nil, fmt.Errorf("player: OS not supported (%s)", runtime.GOOS)
}
