package main

import (
	"fmt"
	"log"
	"math/rand"
	"path/filepath"
	"sync"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/spaceranger/common"
	"github.com/milk9111/spaceranger/ecs/component"
	"github.com/milk9111/spaceranger/ecs/entity"
	"github.com/milk9111/spaceranger/ecs/system"
	"github.com/milk9111/spaceranger/prefabs"
	"github.com/milk9111/spaceranger/records"
	"github.com/milk9111/spaceranger/stats"
	"golang.design/x/clipboard"
)

type gameState int

const (
	stateMainMenu gameState = iota
	stateGameplay
	stateGameOver
)

func (s gameState) String() string {
	switch s {
	case stateGameplay:
		return "gameplay"
	case stateGameOver:
		return "game over"
	default:
		return "main menu"
	}
}

type gameOptions struct {
	debug   bool
	watch   bool
	records string
	seed    int64
	sound   system.SoundPlayer
}

type Game struct {
	state  gameState
	paused bool
	debug  bool
	quit   bool

	spec     *prefabs.GameSpec
	script   *system.StageScript
	bindings system.Bindings
	sound    system.SoundPlayer
	rng      *rand.Rand

	stats    stats.Stats
	records  *records.Store
	gameplay *gameplay

	menu     *mainMenuUI
	hud      *hudUI
	pauseUI  *ebitenui.UI
	gameOver *gameOverUI

	watcher *prefabs.Watcher

	clipboardOnce sync.Once
	clipboardErr  error
}

func NewGame(opts gameOptions) (*Game, error) {
	spec, err := prefabs.LoadGameSpec()
	if err != nil {
		return nil, err
	}
	bindings, err := system.ParseBindings(spec.Bindings)
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	script, err := system.LoadStageScript(spec.Stage.Script)
	if err != nil {
		log.Printf("game: %v; waves use the default spawners", err)
	}
	store, err := records.Open(opts.records)
	if err != nil {
		return nil, err
	}

	g := &Game{
		debug:    opts.debug,
		spec:     spec,
		script:   script,
		bindings: bindings,
		sound:    opts.sound,
		rng:      rand.New(rand.NewSource(opts.seed)),
		records:  store,
	}

	theme := newUITheme()
	g.menu = newMainMenuUI(g, theme)
	g.hud = newHUDUI(g, theme)
	g.pauseUI = newPauseUI(g, theme)
	g.gameOver = newGameOverUI(g, theme)
	g.menu.refresh(g)

	if opts.watch {
		w, err := prefabs.NewWatcher("prefabs", filepath.Join("prefabs", "scripts"))
		if err != nil {
			log.Printf("game: prefab watcher disabled: %v", err)
		} else {
			g.watcher = w
		}
	}
	return g, nil
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	g.pollWatcher()

	switch g.state {
	case stateMainMenu:
		g.menu.ui.Update()
	case stateGameplay:
		g.updateGameplay()
	case stateGameOver:
		g.gameOver.ui.Update()
	}
	return nil
}

func (g *Game) updateGameplay() {
	if g.pauseJustPressed() {
		g.setPaused(!g.paused)
	}

	if g.paused {
		g.pauseUI.Update()
		return
	}

	g.gameplay.Update()
	g.stats.Watch.Tick(time.Second / common.TPS)
	if g.gameplay.Over() {
		g.finishRun()
		return
	}

	g.hud.refresh(g)
	g.hud.ui.Update()
}

func (g *Game) pauseJustPressed() bool {
	for _, key := range g.bindings[component.ActionPause] {
		if inpututil.IsKeyJustPressed(key) {
			return true
		}
	}
	return false
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backdrop)

	switch g.state {
	case stateMainMenu:
		g.menu.ui.Draw(screen)
	case stateGameplay:
		g.gameplay.Draw(screen)
		g.hud.ui.Draw(screen)
		if g.paused {
			g.pauseUI.Draw(screen)
		}
	case stateGameOver:
		g.gameOver.ui.Draw(screen)
	}

	if g.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.2f  state: %s", ebiten.ActualFPS(), g.state))
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.WindowWidth, common.WindowHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

func (g *Game) setPaused(paused bool) {
	if g.state != stateGameplay {
		return
	}
	g.paused = paused
	if paused {
		g.stats.Watch.Pause()
	} else {
		g.stats.Watch.Unpause()
	}
}

// startGameplay begins a fresh run, replacing any previous one.
func (g *Game) startGameplay() {
	g.endGameplay()

	run, err := newGameplay(gameplayConfig{
		spec:     g.spec,
		script:   g.script,
		bindings: g.bindings,
		keys:     system.EbitenKeys{},
		sound:    g.sound,
		rng:      g.rng,
		addScore: g.stats.AddScore,
		debug:    g.debug,
	})
	if err != nil {
		log.Printf("game: start: %v", err)
		g.toMainMenu()
		return
	}

	g.gameplay = run
	g.stats.Reset()
	g.paused = false
	g.state = stateGameplay
	g.hud.refresh(g)
}

func (g *Game) endGameplay() {
	if g.gameplay == nil {
		return
	}
	g.gameplay.Close()
	g.gameplay = nil
}

func (g *Game) finishRun() {
	g.stats.Watch.Pause()
	if _, err := g.records.Add(g.stats.Score, g.stats.Watch.Elapsed()); err != nil {
		log.Printf("game: save record: %v", err)
	}
	g.endGameplay()
	g.paused = false
	g.state = stateGameOver
	g.gameOver.refresh(g)
}

func (g *Game) toMainMenu() {
	g.endGameplay()
	g.paused = false
	g.state = stateMainMenu
	g.menu.refresh(g)
}

func (g *Game) requestQuit() {
	g.quit = true
}

// copyScore puts a one-line summary of the last run on the clipboard.
func (g *Game) copyScore() bool {
	g.clipboardOnce.Do(func() {
		g.clipboardErr = clipboard.Init()
		if g.clipboardErr != nil {
			log.Printf("game: clipboard: %v", g.clipboardErr)
		}
	})
	if g.clipboardErr != nil {
		return false
	}
	line := fmt.Sprintf("%s: %d points in %s", common.Title, g.stats.Score, g.stats.Watch.Format())
	clipboard.Write(clipboard.FmtText, []byte(line))
	return true
}

// pollWatcher applies prefab and script edits picked up since the last tick.
func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.reload(name)
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("game: watcher: %v", err)
		default:
			return
		}
	}
}

func (g *Game) reload(name string) {
	switch {
	case name == "game.yaml":
		spec, err := prefabs.LoadGameSpec()
		if err != nil {
			log.Printf("game: reload %s: %v", name, err)
			return
		}
		bindings, err := system.ParseBindings(spec.Bindings)
		if err != nil {
			log.Printf("game: reload %s: %v", name, err)
			return
		}
		g.spec = spec
		g.bindings = bindings
		g.gameplay.ApplyConfig(spec)
	case name == "spaceship.yaml":
		entity.InvalidatePrefab(name)
		if err := g.gameplay.ReloadSpaceship(); err != nil {
			log.Printf("game: reload %s: %v", name, err)
		}
	case prefabs.IsScriptFile(name):
		script, err := system.LoadStageScript(g.spec.Stage.Script)
		if err != nil {
			log.Printf("game: reload %s: %v", name, err)
			return
		}
		g.script = script
		g.gameplay.SetScript(script)
	default:
		entity.InvalidatePrefab(name)
	}
	log.Printf("game: reloaded %s", name)
}

// Close releases the watcher. Safe to call more than once.
func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	err := g.watcher.Close()
	g.watcher = nil
	return err
}
