package player

import (
	"fmt"

	"github.com/Pauloo27/go-mpris"
	"github.com/godbus/dbus/v5"
)

const (
	dbusObjectPath   = "/org/mpris/MediaPlayer2"
	positionProperty = "org.mpris.MediaPlayer2.Player.Position"
)

// LinuxPlayer drives an MPRIS player over the session D-Bus. The
// connection is scoped to one command invocation and released on
// process exit.
type LinuxPlayer struct {
	bus    *dbus.Conn
	name   string
	player *mpris.Player
}

func NewLinuxPlayer(name string) (*LinuxPlayer, error) {
	busConn, sessionBusErr := dbus.SessionBus()
	if sessionBusErr != nil {
		return nil, fmt.Errorf("session bus: %w", sessionBusErr)
	}
	return &LinuxPlayer{
		bus:    busConn,
		name:   name,
		player: mpris.New(busConn, name),
	}, nil
}

func (lp *LinuxPlayer) Next() error      { return lp.player.Next() }
func (lp *LinuxPlayer) Previous() error  { return lp.player.Previous() }
func (lp *LinuxPlayer) Pause() error     { return lp.player.Pause() }
func (lp *LinuxPlayer) Play() error      { return lp.player.Play() }
func (lp *LinuxPlayer) PlayPause() error { return lp.player.PlayPause() }

// Position reads the raw Position property, which MPRIS types as an
// int64 of microseconds. go-mpris's GetPosition would rescale it to
// float seconds, so the property is narrowed here instead, the same way
// the decoder treats mpris:length.
func (lp *LinuxPlayer) Position() (int64, error) {
	variant, positionErr := lp.bus.Object(lp.name, dbusObjectPath).GetProperty(positionProperty)
	if positionErr != nil {
		return 0, positionErr
	}
	return positionFromVariant(variant)
}

func positionFromVariant(variant dbus.Variant) (int64, error) {
	position, positionIsInt := variant.Value().(int64)
	if !positionIsInt {
		return 0, fmt.Errorf("position: unexpected type %T", variant.Value())
	}
	return position, nil
}

func (lp *LinuxPlayer) Metadata() (map[string]dbus.Variant, error) {
	return lp.player.GetMetadata()
}

func (lp *LinuxPlayer) PlaybackStatus() (string, error) {
	playbackStatus, statusErr := lp.player.GetPlaybackStatus()
	if statusErr != nil {
		return "", statusErr
	}
	return string(playbackStatus), nil
}
