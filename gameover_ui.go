package main

import (
	"fmt"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/milk9111/spaceranger/common"
)

type gameOverUI struct {
	ui      *ebitenui.UI
	lasted  *widget.Text
	score   *widget.Text
	best    *widget.Text
	copied  *widget.Text
	copyBtn *widget.Button
}

func newGameOverUI(g *Game, theme *uiTheme) *gameOverUI {
	o := &gameOverUI{}

	panel := theme.centeredPanel(common.WindowWidth/2, common.WindowHeight/3)
	panel.AddChild(theme.centeredText("GAME OVER"))
	o.lasted = theme.centeredText("")
	o.score = theme.centeredText("")
	o.best = theme.centeredText("")
	o.copied = theme.centeredText("")
	panel.AddChild(o.lasted)
	panel.AddChild(o.score)
	panel.AddChild(o.best)
	panel.AddChild(theme.button("TRY AGAIN", 200, g.startGameplay))
	o.copyBtn = theme.button("COPY SCORE", 200, func() {
		if g.copyScore() {
			o.copied.Label = "copied"
		} else {
			o.copied.Label = "clipboard unavailable"
		}
	})
	panel.AddChild(o.copyBtn)
	panel.AddChild(theme.button("QUIT", 200, g.toMainMenu))
	panel.AddChild(o.copied)

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(panel)
	o.ui = &ebitenui.UI{Container: root}
	return o
}

func (o *gameOverUI) refresh(g *Game) {
	o.lasted.Label = "ADVENTURE LASTED: " + g.stats.Watch.Format()
	o.score.Label = fmt.Sprintf("SCORE: %d", g.stats.Score)
	o.best.Label = bestScoreLabel(g)
	o.copied.Label = ""
}
