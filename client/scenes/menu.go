package scenes

import (
	"image/color"

	"github.com/deckstride/deckstride/client/fonts"
	"github.com/deckstride/deckstride/client/objects"
	"github.com/deckstride/deckstride/pkg/log"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
)

type MenuScene struct {
	*BaseScene

	onStart      func(guideEnabled bool) error
	ui           *ebitenui.UI
	guideEnabled bool
}

type MenuSceneOptions struct {
	// OnStart is called when the start button is pressed.
	OnStart func(guideEnabled bool) error

	// GuideEnabled is the initial state of the guide toggle.
	GuideEnabled bool
}

var _ Scene = &MenuScene{}

func NewMenuScene(opts MenuSceneOptions) (Scene, error) {
	return &MenuScene{
		BaseScene:    NewBaseScene(objects.NewBaseObject("menu-root")),
		onStart:      opts.OnStart,
		guideEnabled: opts.GuideEnabled,
	}, nil
}

func (s *MenuScene) Init() error {
	s.renderUI()
	return s.BaseScene.Init()
}

func (s *MenuScene) renderUI() {
	buttonImage := &widget.ButtonImage{
		Idle:    image.NewNineSliceColor(color.NRGBA{R: 170, G: 170, B: 180, A: 255}),
		Hover:   image.NewNineSliceColor(color.NRGBA{R: 135, G: 135, B: 150, A: 255}),
		Pressed: image.NewNineSliceColor(color.NRGBA{R: 100, G: 100, B: 120, A: 255}),
	}

	fontFace := fonts.TTFNormalFont

	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(20),
			widget.RowLayoutOpts.Padding(widget.Insets{
				Top:    150,
				Left:   160,
				Right:  160,
				Bottom: 90,
			}))),
	)

	rootContainer.AddChild(widget.NewText(
		widget.TextOpts.Text("Deckstride", fonts.TTFLargeFont, color.NRGBA{R: 254, G: 255, B: 255, A: 255}),
		widget.TextOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
			}),
		),
	))

	startButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
				Stretch:  true,
			}),
		),
		widget.ButtonOpts.Image(buttonImage),
		widget.ButtonOpts.Text("Start", fontFace, &widget.ButtonTextColor{
			Idle:     color.NRGBA{R: 254, G: 255, B: 255, A: 255},
			Disabled: color.NRGBA{R: 200, G: 200, B: 200, A: 255},
		}),
		widget.ButtonOpts.TextPadding(widget.Insets{
			Left:   30,
			Right:  30,
			Top:    5,
			Bottom: 5,
		}),
	)
	rootContainer.AddChild(startButton)

	guideButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
				Stretch:  true,
			}),
		),
		widget.ButtonOpts.Image(buttonImage),
		widget.ButtonOpts.Text(guideButtonText(s.guideEnabled), fontFace, &widget.ButtonTextColor{
			Idle:     color.NRGBA{R: 254, G: 255, B: 255, A: 255},
			Disabled: color.NRGBA{R: 200, G: 200, B: 200, A: 255},
		}),
		widget.ButtonOpts.TextPadding(widget.Insets{
			Left:   30,
			Right:  30,
			Top:    5,
			Bottom: 5,
		}),
	)
	rootContainer.AddChild(guideButton)

	guideButton.ClickedEvent.AddHandler(func(args interface{}) {
		s.guideEnabled = !s.guideEnabled
		s.renderUI()
	})

	startButton.ClickedEvent.AddHandler(func(args interface{}) {
		if err := s.onStart(s.guideEnabled); err != nil {
			log.Error("Failed to start game: %v", err)
		}
	})

	ui := &ebitenui.UI{
		Container: rootContainer,
	}

	s.ui = ui
}

func guideButtonText(enabled bool) string {
	if enabled {
		return "Guides: On"
	}
	return "Guides: Off"
}

func (s *MenuScene) Update() error {
	s.ui.Update()
	return s.BaseScene.Update()
}

func (s *MenuScene) Draw(screen *ebiten.Image) {
	s.ui.Draw(screen)
	s.BaseScene.Draw(screen)
}
