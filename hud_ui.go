package main

import (
	"strconv"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
)

const healthBoxSize = 20

// hudUI shows health boxes, the score, the stopwatch and a pause button along
// the top of the screen.
type hudUI struct {
	ui     *ebitenui.UI
	theme  *uiTheme
	health *widget.Container
	boxes  []*widget.Container
	shown  int
	score  *widget.Text
	watch  *widget.Text
}

func newHUDUI(g *Game, theme *uiTheme) *hudUI {
	h := &hudUI{theme: theme}

	h.health = widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(6),
		)),
		widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)
	h.score = theme.centeredText("0")
	h.watch = theme.centeredText("00:00")

	bar := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(40),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 12, Left: 16, Right: 16}),
		)),
		widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
			HorizontalPosition: widget.AnchorLayoutPositionCenter,
			VerticalPosition:   widget.AnchorLayoutPositionStart,
		})),
	)
	bar.AddChild(h.health)
	bar.AddChild(h.score)
	bar.AddChild(h.watch)
	bar.AddChild(theme.button("II", 50, func() { g.setPaused(true) }))

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(bar)
	h.ui = &ebitenui.UI{Container: root}
	return h
}

// refresh syncs the widgets with the current run. Boxes are rebuilt only
// when the health changes.
func (h *hudUI) refresh(g *Game) {
	current, maxHealth := 0, 0
	if g.gameplay != nil {
		current, maxHealth = g.gameplay.Health()
	}

	if current != h.shown || maxHealth != len(h.boxes) {
		for _, box := range h.boxes {
			h.health.RemoveChild(box)
		}
		h.boxes = h.boxes[:0]
		for i := 0; i < maxHealth; i++ {
			img := h.theme.healthEmpty
			if i < current {
				img = h.theme.healthFull
			}
			box := widget.NewContainer(
				widget.ContainerOpts.BackgroundImage(img),
				widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.MinSize(healthBoxSize, healthBoxSize)),
			)
			h.boxes = append(h.boxes, box)
			h.health.AddChild(box)
		}
		h.shown = current
	}

	h.score.Label = strconv.Itoa(g.stats.Score)
	h.watch.Label = g.stats.Watch.Format()
}
