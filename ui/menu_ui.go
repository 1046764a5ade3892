package ui

import (
	"bytes"
	"fmt"
	"image/color"

	cfg "github.com/automoto/duskrunner/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// MenuUI is the ebitenui title menu.
type MenuUI struct {
	UI *ebitenui.UI

	OnStartRun   func()
	OnQuit       func()
	OnVolumeDown func()
	OnVolumeUp   func()

	volumeLabel *widget.Label

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

// NewMenuUI builds the title menu.
func NewMenuUI(onStartRun, onQuit, onVolumeDown, onVolumeUp func()) *MenuUI {
	mui := &MenuUI{
		OnStartRun:   onStartRun,
		OnQuit:       onQuit,
		OnVolumeDown: onVolumeDown,
		OnVolumeUp:   onVolumeUp,
	}

	mui.loadFonts()
	mui.buildUI()

	return mui
}

func (mui *MenuUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	mui.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   30,
	}
	mui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   14,
	}
	mui.smallFace = &text.GoTextFace{
		Source: fontSource,
		Size:   10,
	}
}

func (mui *MenuUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Menu.BackgroundColor)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(12)),
			widget.RowLayoutOpts.Spacing(10),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text(cfg.Menu.Title, &mui.titleFace, &widget.LabelColor{
			Idle: cfg.Menu.TitleColor,
		}),
	)
	contentContainer.AddChild(titleLabel)

	contentContainer.AddChild(mui.button("Start Run", 140, func() {
		if mui.OnStartRun != nil {
			mui.OnStartRun()
		}
	}))

	contentContainer.AddChild(mui.buildVolumeRow())

	contentContainer.AddChild(mui.button("Quit", 140, func() {
		if mui.OnQuit != nil {
			mui.OnQuit()
		}
	}))

	hintLabel := widget.NewLabel(
		widget.LabelOpts.Text("arrows move  space jumps  J melee  K dart", &mui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{170, 170, 180, 255},
		}),
	)
	contentContainer.AddChild(hintLabel)

	rootContainer.AddChild(contentContainer)
	mui.UI = &ebitenui.UI{Container: rootContainer}
}

func (mui *MenuUI) buildVolumeRow() *widget.Container {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)

	row.AddChild(mui.button("-", 24, func() {
		if mui.OnVolumeDown != nil {
			mui.OnVolumeDown()
		}
	}))

	mui.volumeLabel = widget.NewLabel(
		widget.LabelOpts.Text("SFX: 80%", &mui.normalFace, &widget.LabelColor{
			Idle: cfg.White,
		}),
	)
	row.AddChild(mui.volumeLabel)

	row.AddChild(mui.button("+", 24, func() {
		if mui.OnVolumeUp != nil {
			mui.OnVolumeUp()
		}
	}))

	return row
}

// SetVolume updates the volume readout (0..1).
func (mui *MenuUI) SetVolume(v float64) {
	if mui.volumeLabel != nil {
		mui.volumeLabel.Label = fmt.Sprintf("SFX: %d%%", int(v*100+0.5))
	}
}

func (mui *MenuUI) button(label string, minWidth int, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(minWidth, 26),
		),
		widget.ButtonOpts.Image(mui.buttonImage()),
		widget.ButtonOpts.Text(label, &mui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func (mui *MenuUI) buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{60, 50, 85, 255})
	hover := image.NewNineSliceColor(color.RGBA{85, 70, 115, 255})
	pressed := image.NewNineSliceColor(color.RGBA{45, 38, 65, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}
