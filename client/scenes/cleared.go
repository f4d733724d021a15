package scenes

import (
	"fmt"
	"image/color"

	"github.com/deckstride/deckstride/client/fonts"
	"github.com/deckstride/deckstride/client/input"
	"github.com/deckstride/deckstride/client/objects"
	"github.com/deckstride/deckstride/pkg/repositories"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type ClearedScene struct {
	*BaseScene

	record repositories.ClearRecord
	best   *repositories.ClearRecord
	onDone func() error
}

type ClearedSceneOptions struct {
	// Record is the clear that just happened.
	Record repositories.ClearRecord
	// Best is the best previous clear for the same puzzle, if any.
	Best *repositories.ClearRecord
	// OnDone is called when the player taps to leave the scene.
	OnDone func() error
}

var _ Scene = &ClearedScene{}

func NewClearedScene(opts ClearedSceneOptions) (Scene, error) {
	scene := &ClearedScene{
		BaseScene: NewBaseScene(objects.NewBaseObject("cleared-root")),
		record:    opts.Record,
		best:      opts.Best,
		onDone:    opts.OnDone,
	}
	overlay := objects.NewTextOverlayObject("cleared-overlay", "Cleared!")
	if err := scene.Root.AddChild("cleared-overlay", overlay); err != nil {
		return nil, fmt.Errorf("failed to add overlay: %v", err)
	}
	return scene, nil
}

func (s *ClearedScene) Update() error {
	if input.IsTapJustPressed() || input.IsBackJustPressed() {
		if err := s.onDone(); err != nil {
			return fmt.Errorf("failed to leave cleared scene: %v", err)
		}
	}
	return s.BaseScene.Update()
}

func (s *ClearedScene) Draw(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, float32(screen.Bounds().Dx()), float32(screen.Bounds().Dy()), color.RGBA{R: 28, G: 30, B: 38, A: 255}, false)
	s.BaseScene.Draw(screen)

	lines := []string{
		fmt.Sprintf("Time  %s", FormatElapsed(s.record.Elapsed)),
		fmt.Sprintf("Moves %d", s.record.Moves),
	}
	if s.best != nil {
		lines = append(lines, fmt.Sprintf("Best  %s in %d moves", FormatElapsed(s.best.Elapsed), s.best.Moves))
	} else {
		lines = append(lines, "First clear!")
	}
	lines = append(lines, "Tap to continue")

	y := float64(screen.Bounds().Dy())/2 + 40
	for _, line := range lines {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(screen.Bounds().Dx())/2-100, y)
		op.ColorScale.ScaleWithColor(color.RGBA{R: 230, G: 230, B: 235, A: 255})
		text.DrawWithOptions(screen, line, fonts.TTFNormalFont, op)
		y += 32
	}
}
