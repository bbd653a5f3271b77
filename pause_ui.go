package main

import (
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/milk9111/spaceranger/common"
)

// newPauseUI builds the centered pause overlay with a Resume button.
func newPauseUI(g *Game, theme *uiTheme) *ebitenui.UI {
	panel := theme.centeredPanel(common.WindowWidth/2, common.WindowHeight/4)
	panel.AddChild(theme.centeredText("PAUSED"))
	panel.AddChild(theme.button("Resume", 200, func() { g.setPaused(false) }))

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(panel)
	return &ebitenui.UI{Container: root}
}
