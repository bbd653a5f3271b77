package main

import (
	"image/color"

	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

var (
	textColor    = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	healthFull   = color.NRGBA{R: 26, G: 255, B: 26, A: 255}
	healthEmpty  = color.NRGBA{R: 128, G: 128, B: 128, A: 255}
	buttonIdle   = color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255}
	buttonHover  = color.NRGBA{R: 0x4d, G: 0x4d, B: 0x4d, A: 255}
	buttonActive = color.NRGBA{R: 0x1a, G: 0x1a, B: 0x1a, A: 255}
	overlayColor = color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200}
	backdrop     = colornames.Midnightblue
)

// uiTheme holds the shared font and nine-slices for every screen.
type uiTheme struct {
	face        ebtext.Face
	buttonImage *widget.ButtonImage
	buttonText  *widget.ButtonTextColor
	panel       *imageui.NineSlice
	healthFull  *imageui.NineSlice
	healthEmpty *imageui.NineSlice
}

func newUITheme() *uiTheme {
	return &uiTheme{
		face: ebtext.NewGoXFace(basicfont.Face7x13),
		buttonImage: &widget.ButtonImage{
			Idle:    imageui.NewNineSliceColor(buttonIdle),
			Hover:   imageui.NewNineSliceColor(buttonHover),
			Pressed: imageui.NewNineSliceColor(buttonActive),
		},
		buttonText:  &widget.ButtonTextColor{Idle: textColor},
		panel:       imageui.NewNineSliceColor(overlayColor),
		healthFull:  imageui.NewNineSliceColor(healthFull),
		healthEmpty: imageui.NewNineSliceColor(healthEmpty),
	}
}

func (t *uiTheme) text(label string, layout any) *widget.Text {
	return widget.NewText(
		widget.TextOpts.Text(label, &t.face, textColor),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(layout)),
	)
}

func (t *uiTheme) centeredText(label string) *widget.Text {
	return t.text(label, widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})
}

func (t *uiTheme) button(label string, width int, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.Image(t.buttonImage),
		widget.ButtonOpts.Text(label, &t.face, t.buttonText),
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(width, 36),
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter}),
		),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

// centeredPanel is a vertical panel anchored in the middle of the screen.
func (t *uiTheme) centeredPanel(minW, minH int) *widget.Container {
	return widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(t.panel),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(14),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 30, Bottom: 30, Left: 40, Right: 40}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(minW, minH),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)
}
