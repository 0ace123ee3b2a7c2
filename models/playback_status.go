package models

/*
PlaybackStatus

This parses media playback status values reported by the player.

Ref: https://specifications.freedesktop.org/mpris-spec/latest/Player_Interface.html#Enum:Playback_Status
*/

import "fmt"

const (
	PlaybackStatusPlaying = "Playing"
	PlaybackStatusPaused  = "Paused"
	PlaybackStatusStopped = "Stopped"
	PlaybackStatusError   = ""
)

func ParsePlaybackStatus(playbackStatus string) (string, error) {
	switch playbackStatus {
	case PlaybackStatusPlaying, PlaybackStatusPaused, PlaybackStatusStopped:
		return playbackStatus, nil
	default:
		return PlaybackStatusError, fmt.Errorf(
			"playbackStatus: %s is not a proper playback value",
			playbackStatus,
		)
	}
}
