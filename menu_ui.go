package main

import (
	"fmt"
	"strings"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/milk9111/spaceranger/common"
	"github.com/milk9111/spaceranger/stats"
)

const menuTopRuns = 3

type mainMenuUI struct {
	ui   *ebitenui.UI
	best *widget.Text
	runs *widget.Text
}

func newMainMenuUI(g *Game, theme *uiTheme) *mainMenuUI {
	m := &mainMenuUI{}

	panel := theme.centeredPanel(common.WindowWidth/2, common.WindowHeight/3)
	panel.AddChild(theme.centeredText(common.Title))
	m.best = theme.centeredText("")
	panel.AddChild(m.best)
	m.runs = theme.centeredText("")
	panel.AddChild(m.runs)
	panel.AddChild(theme.button("Play", 200, g.startGameplay))
	panel.AddChild(theme.button("Exit", 200, g.requestQuit))

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(panel)
	m.ui = &ebitenui.UI{Container: root}
	return m
}

func (m *mainMenuUI) refresh(g *Game) {
	m.best.Label = bestScoreLabel(g)
	m.runs.Label = topRunsLabel(g)
}

func topRunsLabel(g *Game) string {
	entries := g.records.Entries()
	if len(entries) > menuTopRuns {
		entries = entries[:menuTopRuns]
	}
	lines := make([]string, 0, len(entries))
	for i, e := range entries {
		lines = append(lines, fmt.Sprintf("%d. %5d  %s", i+1, e.Score, stats.FormatDuration(e.Duration())))
	}
	return strings.Join(lines, "\n")
}

func bestScoreLabel(g *Game) string {
	best, ok := g.records.Best()
	if !ok {
		return "BEST: -"
	}
	return fmt.Sprintf("BEST: %d", best.Score)
}
