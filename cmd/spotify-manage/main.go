package main

import (
	"fmt"
	"log"

	flag "github.com/spf13/pflag"

	spotifymanage "github.com/tobeqz/spotify-manage"
	"github.com/tobeqz/spotify-manage/cache"
	"github.com/tobeqz/spotify-manage/config"
	"github.com/tobeqz/spotify-manage/player"
)

func main() {
	play := flag.Bool("play", false, "Start playback")
	pause := flag.Bool("pause", false, "Pause playback")
	next := flag.Bool("next", false, "Skip to the next track")
	progress := flag.Bool("progress", false, "Print playback progress (0..1)")
	song := flag.Bool("song", false, "Print the current track as \"Artist - Title\"")
	status := flag.Bool("status", false, "Print the playback status")
	playPause := flag.Bool("playpause", false, "Toggle playback")
	flag.Parse()

	cfg, cfgErr := config.Load()
	if cfgErr != nil {
		log.Fatalf("config error: %v", cfgErr)
	}

	mPlayer, mPlayerErr := player.New(cfg.Player.Name)
	if mPlayerErr != nil {
		log.Fatalf("player error: %v", mPlayerErr)
	}
	store := cache.NewFileStore(cfg.Cache.Path, cfg.TTL())
	nowPlaying := spotifymanage.NewNowPlaying(mPlayer, store)

	// Flags run in a fixed order. A failure aborts the invocation with
	// a non-zero exit; flags already processed keep their effect.
	if *play {
		fatalOn(mPlayer.Play())
	}
	if *pause {
		fatalOn(mPlayer.Pause())
	}
	if *next {
		fatalOn(mPlayer.Next())
	}
	if *progress {
		value, progressErr := nowPlaying.SongProgress()
		fatalOn(progressErr)
		fmt.Println(value)
	}
	if *song {
		name, nameErr := nowPlaying.SongName()
		fatalOn(nameErr)
		fmt.Println(name)
	}
	if *status {
		playbackStatus, statusErr := nowPlaying.PlaybackStatus()
		fatalOn(statusErr)
		fmt.Println(playbackStatus)
	}
	if *playPause {
		fatalOn(mPlayer.PlayPause())
	}
}

func fatalOn(err error) {
	if err != nil {
		log.Fatalf("spotify-manage: %v", err)
	}
}
