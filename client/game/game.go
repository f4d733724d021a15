package game

import (
	"fmt"
	"image/color"

	"github.com/deckstride/deckstride/client/fonts"
	"github.com/deckstride/deckstride/client/input"
	"github.com/deckstride/deckstride/client/scenes"
	"github.com/deckstride/deckstride/pkg/coord"
	"github.com/deckstride/deckstride/pkg/repositories"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Game implements ebiten.Game interface, which has Update, Draw and Layout methods.
type Game struct {
	// debug is a boolean value indicating whether debug mode is enabled.
	debug bool
	// records stores clear records.
	records repositories.Repository
	// mode is the current game mode.
	mode GameMode
	// scene is the current scene.
	scene scenes.Scene
	// boardScene is kept while playing so the pause menu can draw over it.
	boardScene *scenes.BoardScene
	// guideEnabled is the menu setting carried into each run.
	guideEnabled bool
	// focused tracks the window focus from the previous tick.
	focused bool

	clearedPending bool
	clearedRecord  repositories.ClearRecord
	clearedBest    *repositories.ClearRecord
}

type GameMode int

const (
	GameModeMenu GameMode = iota
	GameModePlay
	GameModePaused
	GameModeCleared
)

func (m GameMode) String() string {
	switch m {
	case GameModeMenu:
		return "Menu"
	case GameModePlay:
		return "Play"
	case GameModePaused:
		return "Paused"
	case GameModeCleared:
		return "Cleared"
	}
	return "Unknown"
}

type NewGameOptions struct {
	Debug        bool
	GuideEnabled bool
	Records      repositories.Repository
}

func NewGame(opts NewGameOptions) (ebiten.Game, error) {
	g := &Game{
		debug:        opts.Debug,
		records:      opts.Records,
		guideEnabled: opts.GuideEnabled,
		focused:      true,
	}

	if err := g.loadMenu(); err != nil {
		return nil, fmt.Errorf("failed to load menu scene: %v", err)
	}

	return g, nil
}

func (g *Game) SetScene(scene scenes.Scene) error {
	if g.scene != nil {
		if err := g.scene.Destroy(); err != nil {
			return fmt.Errorf("failed to destroy previous scene: %v", err)
		}
	}

	g.scene = scene
	if err := g.scene.Init(); err != nil {
		return fmt.Errorf("failed to initialize scene: %v", err)
	}

	return nil
}

func (g *Game) loadMenu() error {
	menu, err := scenes.NewMenuScene(scenes.MenuSceneOptions{
		OnStart:      g.startGame,
		GuideEnabled: g.guideEnabled,
	})
	if err != nil {
		return fmt.Errorf("failed to create menu scene: %v", err)
	}
	if err := g.SetScene(menu); err != nil {
		return fmt.Errorf("failed to set menu scene: %v", err)
	}
	g.boardScene = nil
	g.mode = GameModeMenu
	return nil
}

func (g *Game) startGame(guideEnabled bool) error {
	g.guideEnabled = guideEnabled
	boardScene, err := scenes.NewBoardScene(scenes.BoardSceneOptions{
		GuideEnabled: guideEnabled,
		Records:      g.records,
		OnCleared: func(record repositories.ClearRecord, best *repositories.ClearRecord) {
			g.clearedPending = true
			g.clearedRecord = record
			g.clearedBest = best
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create board scene: %v", err)
	}
	if err := g.SetScene(boardScene); err != nil {
		return fmt.Errorf("failed to set board scene: %v", err)
	}
	g.boardScene = boardScene
	g.mode = GameModePlay
	return nil
}

func (g *Game) loadCleared() error {
	cleared, err := scenes.NewClearedScene(scenes.ClearedSceneOptions{
		Record: g.clearedRecord,
		Best:   g.clearedBest,
		OnDone: g.loadMenu,
	})
	if err != nil {
		return fmt.Errorf("failed to create cleared scene: %v", err)
	}
	if err := g.SetScene(cleared); err != nil {
		return fmt.Errorf("failed to set cleared scene: %v", err)
	}
	g.boardScene = nil
	g.mode = GameModeCleared
	return nil
}

func (g *Game) Update() error {
	g.updateFocus()

	if err := g.handleInput(); err != nil {
		return fmt.Errorf("failed to handle input: %v", err)
	}

	// The board scene does not tick while the pause menu is open.
	if g.mode != GameModePaused {
		if err := g.scene.Update(); err != nil {
			return fmt.Errorf("failed to update scene: %v", err)
		}
	}

	if g.clearedPending {
		g.clearedPending = false
		if err := g.loadCleared(); err != nil {
			return fmt.Errorf("failed to load cleared scene: %v", err)
		}
	}

	return nil
}

// updateFocus mirrors window focus into the backgrounded suspension reason.
func (g *Game) updateFocus() {
	focused := ebiten.IsFocused()
	if focused == g.focused {
		return
	}
	g.focused = focused
	if g.boardScene == nil {
		return
	}
	g.boardScene.Bridge().Suspender().SetReason(coord.ReasonBackgrounded, !focused)
}

func (g *Game) handleInput() error {
	switch g.mode {
	case GameModePlay:
		if input.IsBackJustPressed() {
			g.boardScene.Bridge().Suspender().SetReason(coord.ReasonMenuOpen, true)
			g.mode = GameModePaused
		}
	case GameModePaused:
		if input.IsBackJustPressed() {
			g.boardScene.Bridge().Suspender().SetReason(coord.ReasonMenuOpen, false)
			g.mode = GameModePlay
			break
		}
		if input.IsQuitJustPressed() {
			if err := g.loadMenu(); err != nil {
				return fmt.Errorf("failed to load menu scene: %v", err)
			}
		}
	}

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
	if g.mode == GameModePaused {
		g.drawPauseOverlay(screen)
	}
	if g.debug {
		g.drawDebugOverlay(screen)
	}
}

func (g *Game) drawPauseOverlay(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, float32(screen.Bounds().Dx()), float32(screen.Bounds().Dy()), color.RGBA{R: 0, G: 0, B: 0, A: 160}, false)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(screen.Bounds().Dx())/2-80, float64(screen.Bounds().Dy())/2-20)
	op.ColorScale.ScaleWithColor(color.White)
	text.DrawWithOptions(screen, "PAUSED", fonts.TTFLargeFont, op)

	hint := "Esc to resume, Q for menu"
	hintOp := &ebiten.DrawImageOptions{}
	hintOp.GeoM.Translate(float64(screen.Bounds().Dx())/2-130, float64(screen.Bounds().Dy())/2+24)
	hintOp.ColorScale.ScaleWithColor(color.RGBA{R: 200, G: 200, B: 205, A: 255})
	text.DrawWithOptions(screen, hint, fonts.TTFNormalFont, hintOp)
}

func (g *Game) drawDebugOverlay(screen *ebiten.Image) {
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n   FPS: %0.1f", ebiten.ActualFPS()))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n   TPS: %0.1f", ebiten.ActualTPS()))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n   Mode: %s", g.mode))

	if g.boardScene == nil {
		return
	}
	reasons := g.boardScene.Bridge().Suspender().ActiveReasons()
	if len(reasons) > 0 {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n\n   Suspended: %v", reasons))
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return scenes.DefaultScreenWidth, scenes.DefaultScreenHeight
}
