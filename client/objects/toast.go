package objects

import (
	"image/color"
	"math"

	"github.com/deckstride/deckstride/client/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

const DefaultToastTTL = 120 // ticks

// ToastObject is a transient message near the bottom of the screen.
// It removes itself from its parent when its TTL runs out.
type ToastObject struct {
	*BaseObject

	text string
	ttl  int
}

func NewToastObject(id string, text string, ttl int) *ToastObject {
	if ttl <= 0 {
		ttl = DefaultToastTTL
	}
	return &ToastObject{
		BaseObject: NewBaseObject(id),
		text:       text,
		ttl:        ttl,
	}
}

func (o *ToastObject) Update() error {
	o.ttl--
	if o.ttl <= 0 {
		o.RemoveFromParent()
	}
	return nil
}

func (o *ToastObject) Draw(screen *ebiten.Image) {
	f := fonts.TTFNormalFont
	bounds, _ := font.BoundString(f, o.text)
	alpha := float32(1.0)
	if o.ttl < 30 {
		alpha = float32(math.Max(0, float64(o.ttl)/30))
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(screen.Bounds().Dx())/2-float64(bounds.Max.X>>6)/2, float64(screen.Bounds().Dy())-48)
	op.ColorScale.ScaleWithColor(color.RGBA{R: 255, G: 200, B: 80, A: 255})
	op.ColorScale.ScaleAlpha(alpha)
	text.DrawWithOptions(screen, o.text, f, op)
}
