package main

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/milk9111/pathviz/search"
	"github.com/milk9111/pathviz/world"
)

// Bar is the status strip under the grid: one toggle button per search
// plus the status and last-result lines.
type Bar struct {
	group   *widget.RadioGroup
	buttons []*widget.Button
	kinds   []search.Kind
	status  *widget.Text
	result  *widget.Text

	// suppress is set while Sync moves the radio selection so the change
	// handler does not feed it back into the world.
	suppress bool
}

// NewBarUI builds the ebitenui tree for the status bar. Buttons use
// colored nine-slices and the built-in basic font, so no theme assets are
// needed.
func NewBarUI(g *Game) (*ebitenui.UI, *Bar) {
	p := g.palette
	btnImg := &widget.ButtonImage{
		Idle:         imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}),
		Hover:        imageui.NewNineSliceColor(color.NRGBA{R: 0x44, G: 0x44, B: 0x44, A: 0xff}),
		Pressed:      imageui.NewNineSliceColor(p.Selected),
		PressedHover: imageui.NewNineSliceColor(p.Selected),
		Disabled:     imageui.NewNineSliceColor(color.NRGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xff}),
	}

	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)
	btnTextColor := &widget.ButtonTextColor{
		Idle:     p.Text,
		Hover:    p.Text,
		Pressed:  p.Background,
		Disabled: p.TextDim,
	}

	bar := &Bar{kinds: search.Kinds()}

	buttons := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)
	elements := make([]widget.RadioGroupElement, 0, len(bar.kinds))
	for _, kind := range bar.kinds {
		btn := widget.NewButton(
			widget.ButtonOpts.Image(btnImg),
			widget.ButtonOpts.Text(kind.String(), &face, btnTextColor),
			widget.ButtonOpts.ToggleMode(),
			widget.ButtonOpts.TextPadding(&widget.Insets{Left: 8, Right: 8, Top: 2, Bottom: 2}),
		)
		bar.buttons = append(bar.buttons, btn)
		elements = append(elements, btn)
		buttons.AddChild(btn)
	}

	bar.group = widget.NewRadioGroup(
		widget.RadioGroupOpts.Elements(elements...),
		widget.RadioGroupOpts.ChangedHandler(func(args *widget.RadioGroupChangedEventArgs) {
			if bar.suppress {
				return
			}
			for i, b := range bar.buttons {
				if args.Active == b {
					g.world.SelectAlgorithm(bar.kinds[i])
					return
				}
			}
		}),
	)

	bar.status = widget.NewText(widget.TextOpts.Text("", &face, p.Text))
	bar.result = widget.NewText(widget.TextOpts.Text("", &face, p.TextDim))

	lines := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(4),
		)),
	)
	lines.AddChild(bar.status)
	lines.AddChild(bar.result)

	panel := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(16),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 6, Bottom: 6, Left: 8, Right: 8}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(g.spec.ScreenWidth(), g.spec.StatusBarHeight),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
				StretchHorizontal:  true,
			}),
		),
	)
	panel.AddChild(buttons)
	panel.AddChild(lines)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	bar.Sync(g.world)
	return &ebitenui.UI{Container: root}, bar
}

// Sync reflects the world in the widgets: the selected search (which Tab
// may have changed), whether it can be changed, and the status line.
func (b *Bar) Sync(w *world.World) {
	if b == nil || w == nil {
		return
	}
	editing := w.Mode() == world.Editing
	for i, btn := range b.buttons {
		btn.GetWidget().Disabled = !editing
		if b.kinds[i] == w.Algorithm() && b.group.Active() != btn {
			b.suppress = true
			b.group.SetActive(btn)
			b.suppress = false
		}
	}
	b.status.Label = w.Status()
}

// OnEvent keeps the result line current.
func (b *Bar) OnEvent(evt world.Event) {
	if b == nil {
		return
	}
	switch evt.Type {
	case world.EventSearchFinished:
		if r, ok := evt.Data.(world.SearchResult); ok {
			b.result.Label = resultLine(r)
		}
	case world.EventSpecReloaded:
		b.result.Label = fmt.Sprintf("Reloaded %v", evt.Data)
	}
}

func resultLine(r world.SearchResult) string {
	if !r.Found {
		return fmt.Sprintf("Last: %s, no path, %d expanded", r.Algorithm, r.Expanded)
	}
	return fmt.Sprintf("Last: %s, cost %d, %d expanded", r.Algorithm, r.Cost, r.Expanded)
}
