package main

import (
	"flag"
	"log"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/spaceranger/common"
	"github.com/milk9111/spaceranger/prefabs"
	"github.com/milk9111/spaceranger/sfx"
	"github.com/pkg/profile"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug mode")
	watch := flag.Bool("watch", false, "hot reload prefabs and scripts from ./prefabs")
	recordsPath := flag.String("records", "records.yaml", "file the best runs are kept in")
	seed := flag.Int64("seed", 0, "stage RNG seed (0 picks one from the clock)")
	cpuProfile := flag.Bool("profile", false, "write a CPU profile to the working directory")
	mute := flag.Bool("mute", false, "start with sound effects muted")
	flag.Parse()

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	if *debug {
		log.Printf("main: seed %d", *seed)
	}

	player, err := newSoundPlayer(*mute)
	if err != nil {
		log.Printf("main: audio disabled: %v", err)
	}

	ebiten.SetWindowSize(common.WindowWidth, common.WindowHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetWindowTitle(common.Title)
	ebiten.SetTPS(common.TPS)

	game, err := NewGame(gameOptions{
		debug:   *debug,
		watch:   *watch,
		records: *recordsPath,
		seed:    *seed,
		sound:   player,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

func newSoundPlayer(muted bool) (*sfx.Player, error) {
	spec, err := prefabs.LoadGameSpec()
	if err != nil {
		return nil, err
	}
	bank, err := sfx.NewBank(spec.Audio)
	if err != nil {
		return nil, err
	}
	log.Printf("sfx: loaded %s", strings.Join(bank.Names(), ", "))
	p := sfx.NewPlayer(audio.NewContext(bank.SampleRate), bank, spec.Audio.Volume)
	p.SetMuted(muted)
	return p, nil
}
