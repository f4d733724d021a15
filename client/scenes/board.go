package scenes

import (
	"context"
	"fmt"
	"image/color"
	"time"

	"github.com/deckstride/deckstride/client/fonts"
	"github.com/deckstride/deckstride/client/input"
	"github.com/deckstride/deckstride/client/objects"
	"github.com/deckstride/deckstride/pkg/board"
	"github.com/deckstride/deckstride/pkg/board/types"
	"github.com/deckstride/deckstride/pkg/clock"
	"github.com/deckstride/deckstride/pkg/coord"
	"github.com/deckstride/deckstride/pkg/log"
	"github.com/deckstride/deckstride/pkg/queue"
	"github.com/deckstride/deckstride/pkg/repositories"
	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	BoardCellSize = 48
	BoardLeft     = 152
	BoardTop      = 24

	HandSlotWidth   = 128
	HandSlotHeight  = 88
	HandSlotSpacing = 24
	HandTop         = 392

	// WarpPauseDuration is how long play stays paused after a warp jump.
	WarpPauseDuration = 600 * time.Millisecond

	playFeedbackTicks = 10
	warpFlashTicks    = 40
)

type BoardScene struct {
	*BaseScene

	state     *board.State
	events    queue.Queue
	bridge    *coord.Bridge
	gameClock *clock.Clock
	records   repositories.Repository

	highlights      coord.Highlights
	animationTarget *types.GridPoint
	hiddenCards     map[string]struct{}
	flash           int
	warpFlash       *types.GridPoint
	warpFlashTTL    int
	transitionUntil time.Time
	cleared         bool
	loading         bool

	onCleared func(record repositories.ClearRecord, best *repositories.ClearRecord)
}

type BoardSceneOptions struct {
	// GuideEnabled is the initial state of the guide highlight engine.
	GuideEnabled bool
	// Records stores clear records.
	Records repositories.Repository
	// OnCleared is called once when the puzzle is cleared.
	OnCleared func(record repositories.ClearRecord, best *repositories.ClearRecord)
}

var _ Scene = &BoardScene{}
var _ coord.RenderSurface = &BoardScene{}

func NewBoardScene(opts BoardSceneOptions) (*BoardScene, error) {
	b, stacks, err := board.NewDefaultPuzzle()
	if err != nil {
		return nil, fmt.Errorf("failed to create puzzle: %v", err)
	}
	events := queue.NewInMemoryQueue()
	state := board.NewState(b, stacks, events)
	gameClock := clock.New()

	s := &BoardScene{
		BaseScene:   NewBaseScene(objects.NewBaseObject("board-root")),
		state:       state,
		events:      events,
		gameClock:   gameClock,
		records:     opts.Records,
		highlights:  coord.Highlights{Buckets: coord.NewBuckets()},
		hiddenCards: make(map[string]struct{}),
		onCleared:   opts.OnCleared,
	}
	s.bridge = coord.NewBridge(coord.NewBridgeOptions{
		Events:       events,
		Source:       state,
		Surface:      s,
		Clock:        gameClock,
		GuideEnabled: opts.GuideEnabled,
	})
	s.bridge.SetOnMoveResolved(s.handleMoveResolved)
	return s, nil
}

// Bridge exposes the coordination layer so the outer game can flip
// suspension reasons and tear the scene down.
func (s *BoardScene) Bridge() *coord.Bridge {
	return s.bridge
}

func (s *BoardScene) Init() error {
	s.state.Start()
	s.gameClock.Start()
	// The load reason is held until the first ticked frame.
	s.loading = true
	s.bridge.Suspender().SetReason(coord.ReasonLoadingOverlay, true)
	return s.BaseScene.Init()
}

func (s *BoardScene) Destroy() error {
	s.bridge.Teardown()
	return s.BaseScene.Destroy()
}

func (s *BoardScene) handleMoveResolved(outcome types.MoveOutcome) {
	if !outcome.Warp {
		return
	}
	to := outcome.To
	s.warpFlash = &to
	s.warpFlashTTL = warpFlashTicks
	s.transitionUntil = time.Now().Add(WarpPauseDuration)
}

func (s *BoardScene) Update() error {
	now := time.Now()
	s.bridge.Drain(now)

	if s.loading {
		s.loading = false
		s.bridge.Suspender().SetReason(coord.ReasonLoadingOverlay, false)
	}

	if s.state.Phase() == types.PhaseTransitionPause && now.After(s.transitionUntil) {
		s.state.EndTransition()
	}

	if s.state.Phase() == types.PhaseCleared && !s.cleared {
		s.cleared = true
		s.finishClear()
	}

	if s.flash > 0 {
		s.flash--
	}
	if s.warpFlashTTL > 0 {
		s.warpFlashTTL--
		if s.warpFlashTTL == 0 {
			s.warpFlash = nil
		}
	}

	if s.state.Phase().Playable() && input.IsTapJustPressed() {
		s.handleTap(input.TapPosition())
	}

	return s.BaseScene.Update()
}

func (s *BoardScene) finishClear() {
	elapsed := s.gameClock.Stop()
	record := repositories.ClearRecord{
		Puzzle:    board.DefaultPuzzleName,
		Moves:     s.state.Moves(),
		Elapsed:   elapsed,
		ClearedAt: time.Now(),
	}
	ctx := context.Background()
	best, err := s.records.BestClear(ctx, record.Puzzle)
	if err != nil {
		log.Error("Failed to load best clear: %v", err)
	}
	if err := s.records.SaveClear(ctx, record); err != nil {
		log.Error("Failed to save clear record: %v", err)
	}
	if s.onCleared != nil {
		s.onCleared(record, best)
	}
}

func (s *BoardScene) handleTap(x, y int) {
	if slot := s.handSlotAt(x, y); slot != nil {
		if slot.Top != nil {
			s.bridge.Resolver().SelectCard(slot.Top.ID)
		}
		return
	}
	if cell := s.cellAt(x, y); cell != nil {
		s.bridge.Resolver().Resolve(coord.TapRequest{
			Destination: *cell,
			Candidates:  s.state.AvailableMoves(nil, nil),
		})
	}
}

// RenderSurface implementation. The coordination layer pushes visual state
// here; nothing below is authoritative.

func (s *BoardScene) ApplyHighlights(h coord.Highlights) {
	s.highlights = h
}

func (s *BoardScene) SetAnimationTarget(cell *types.GridPoint) {
	s.animationTarget = cell
}

func (s *BoardScene) HideCard(cardID string) {
	s.hiddenCards[cardID] = struct{}{}
}

func (s *BoardScene) ShowCard(cardID string) {
	delete(s.hiddenCards, cardID)
}

func (s *BoardScene) ConflictWarning(message string, destination types.GridPoint) {
	toastID := fmt.Sprintf("toast-%s", uuid.New().String())
	toast := objects.NewToastObject(toastID, message, objects.DefaultToastTTL)
	if err := s.Root.AddChild(toastID, toast); err != nil {
		log.Error("Failed to add toast: %v", err)
	}
}

func (s *BoardScene) PlayFeedback() {
	s.flash = playFeedbackTicks
}

// Cell geometry. Row 0 is at the bottom of the board, matching the
// coordinate system of the puzzle state.

func (s *BoardScene) cellRect(p types.GridPoint) (float32, float32, float32, float32) {
	x := float32(BoardLeft + p.X*BoardCellSize)
	y := float32(BoardTop + (s.state.Board().Height()-1-p.Y)*BoardCellSize)
	return x, y, BoardCellSize, BoardCellSize
}

func (s *BoardScene) cellCenter(p types.GridPoint) (float32, float32) {
	x, y, w, h := s.cellRect(p)
	return x + w/2, y + h/2
}

func (s *BoardScene) cellAt(screenX, screenY int) *types.GridPoint {
	b := s.state.Board()
	cx := (screenX - BoardLeft) / BoardCellSize
	cy := (screenY - BoardTop) / BoardCellSize
	if screenX < BoardLeft || screenY < BoardTop || cx >= b.Width() || cy >= b.Height() {
		return nil
	}
	p := types.GridPoint{X: cx, Y: b.Height() - 1 - cy}
	return &p
}

func (s *BoardScene) handSlotRect(i int) (float32, float32, float32, float32) {
	total := 3*HandSlotWidth + 2*HandSlotSpacing
	left := (DefaultScreenWidth - total) / 2
	x := float32(left + i*(HandSlotWidth+HandSlotSpacing))
	return x, HandTop, HandSlotWidth, HandSlotHeight
}

func (s *BoardScene) handSlotAt(screenX, screenY int) *types.HandSlot {
	hand := s.state.Hand()
	for i := range hand {
		x, y, w, h := s.handSlotRect(i)
		if float32(screenX) >= x && float32(screenX) < x+w && float32(screenY) >= y && float32(screenY) < y+h {
			return &hand[i]
		}
	}
	return nil
}

var (
	backgroundColor = color.RGBA{R: 28, G: 30, B: 38, A: 255}
	cellColor       = color.RGBA{R: 52, G: 56, B: 70, A: 255}
	cellBlocked     = color.RGBA{R: 20, G: 20, B: 24, A: 255}
	cellGoal        = color.RGBA{R: 56, G: 110, B: 64, A: 255}
	cellWarp        = color.RGBA{R: 96, G: 58, B: 120, A: 255}
	gridLineColor   = color.RGBA{R: 34, G: 36, B: 46, A: 255}

	highlightSingle   = color.RGBA{R: 90, G: 160, B: 230, A: 140}
	highlightMultiple = color.RGBA{R: 230, G: 180, B: 80, A: 140}
	highlightSlide    = color.RGBA{R: 230, G: 120, B: 90, A: 140}
	highlightWarp     = color.RGBA{R: 190, G: 110, B: 230, A: 140}
	highlightForced   = color.RGBA{R: 250, G: 250, B: 250, A: 170}

	pawnColor     = color.RGBA{R: 240, G: 240, B: 245, A: 255}
	targetColor   = color.RGBA{R: 250, G: 220, B: 90, A: 255}
	flashColor    = color.RGBA{R: 120, G: 220, B: 140, A: 255}
	cardColor     = color.RGBA{R: 70, G: 76, B: 96, A: 255}
	cardDimColor  = color.RGBA{R: 44, G: 46, B: 56, A: 255}
	cardSelected  = color.RGBA{R: 250, G: 250, B: 250, A: 255}
	cardTextColor = color.RGBA{R: 230, G: 230, B: 235, A: 255}
)

func (s *BoardScene) Draw(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, float32(screen.Bounds().Dx()), float32(screen.Bounds().Dy()), backgroundColor, false)

	s.drawBoard(screen)
	s.drawHighlights(screen)
	s.drawPawn(screen)
	s.drawAnimation(screen)
	s.drawHand(screen)
	s.drawHUD(screen)

	s.BaseScene.Draw(screen)
}

func (s *BoardScene) drawBoard(screen *ebiten.Image) {
	b := s.state.Board()
	for x := 0; x < b.Width(); x++ {
		for y := 0; y < b.Height(); y++ {
			p := types.GridPoint{X: x, Y: y}
			clr := cellColor
			switch {
			case b.IsBlocked(p):
				clr = cellBlocked
			case b.IsGoal(p):
				clr = cellGoal
			case b.IsWarpPad(p):
				clr = cellWarp
			}
			cx, cy, cw, ch := s.cellRect(p)
			vector.DrawFilledRect(screen, cx, cy, cw, ch, clr, false)
			vector.StrokeRect(screen, cx, cy, cw, ch, 1, gridLineColor, false)
		}
	}

	if s.flash > 0 {
		width := float32(b.Width() * BoardCellSize)
		height := float32(b.Height() * BoardCellSize)
		vector.StrokeRect(screen, BoardLeft, BoardTop, width, height, 3, flashColor, false)
	}
}

func (s *BoardScene) drawHighlights(screen *ebiten.Image) {
	// Later sets win when a cell appears in more than one bucket.
	s.fillCells(screen, s.highlights.SingleVector, highlightSingle)
	s.fillCells(screen, s.highlights.MultipleVector, highlightMultiple)
	s.fillCells(screen, s.highlights.MultiStep, highlightSlide)
	s.fillCells(screen, s.highlights.Warp, highlightWarp)
	for p := range s.highlights.ForcedSelection {
		cx, cy, cw, ch := s.cellRect(p)
		vector.StrokeRect(screen, cx+2, cy+2, cw-4, ch-4, 2, highlightForced, false)
	}
}

func (s *BoardScene) fillCells(screen *ebiten.Image, cells map[types.GridPoint]struct{}, clr color.RGBA) {
	for p := range cells {
		cx, cy, cw, ch := s.cellRect(p)
		vector.DrawFilledRect(screen, cx+4, cy+4, cw-8, ch-8, clr, false)
	}
}

func (s *BoardScene) drawPawn(screen *ebiten.Image) {
	pos := s.state.Position()
	if pos == nil {
		return
	}
	cx, cy := s.cellCenter(*pos)
	vector.DrawFilledCircle(screen, cx, cy, BoardCellSize/3, pawnColor, false)

	if s.warpFlash != nil {
		fx, fy, fw, fh := s.cellRect(*s.warpFlash)
		vector.StrokeRect(screen, fx, fy, fw, fh, 3, cellWarp, false)
	}
}

func (s *BoardScene) drawAnimation(screen *ebiten.Image) {
	if s.animationTarget != nil {
		tx, ty, tw, th := s.cellRect(*s.animationTarget)
		vector.StrokeRect(screen, tx, ty, tw, th, 2, targetColor, false)
	}

	session := s.bridge.Animator().ActiveSession()
	if session == nil {
		return
	}
	fromX, fromY := s.slotCenter(session.Candidate.StackID)
	toX, toY := s.cellCenter(session.Candidate.Destination)
	progress := float32(session.Progress(time.Now()))
	x := fromX + (toX-fromX)*progress
	y := fromY + (toY-fromY)*progress
	vector.DrawFilledRect(screen, x-16, y-22, 32, 44, cardColor, false)
	vector.StrokeRect(screen, x-16, y-22, 32, 44, 1, cardTextColor, false)
}

func (s *BoardScene) slotCenter(stackID string) (float32, float32) {
	for i, slot := range s.state.Hand() {
		if slot.StackID == stackID {
			x, y, w, h := s.handSlotRect(i)
			return x + w/2, y + h/2
		}
	}
	x, y, w, _ := s.handSlotRect(1)
	return x + w/2, y
}

func (s *BoardScene) drawHand(screen *ebiten.Image) {
	selected := s.bridge.Resolver().SelectedCard()
	for i, slot := range s.state.Hand() {
		x, y, w, h := s.handSlotRect(i)
		clr := cardColor
		label := ""
		count := slot.Count
		if slot.Top != nil {
			label = slot.Top.Kind.String()
			if _, hidden := s.hiddenCards[slot.Top.ID]; hidden {
				clr = cardDimColor
				label = ""
			}
		} else {
			clr = cardDimColor
		}
		vector.DrawFilledRect(screen, x, y, w, h, clr, false)
		if slot.Top != nil && slot.Top.ID == selected {
			vector.StrokeRect(screen, x, y, w, h, 2, cardSelected, false)
		}
		if label != "" {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(float64(x)+10, float64(y)+32)
			op.ColorScale.ScaleWithColor(cardTextColor)
			text.DrawWithOptions(screen, label, fonts.TTFNormalFont, op)
		}
		countOp := &ebiten.DrawImageOptions{}
		countOp.GeoM.Translate(float64(x)+10, float64(y+h)-12)
		countOp.ColorScale.ScaleWithColor(cardTextColor)
		text.DrawWithOptions(screen, fmt.Sprintf("x%d", count), fonts.TTFSmallFont, countOp)
	}
}

func (s *BoardScene) drawHUD(screen *ebiten.Image) {
	hud := fmt.Sprintf("%s  moves %d", FormatElapsed(s.gameClock.Elapsed()), s.state.Moves())
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(16, 28)
	op.ColorScale.ScaleWithColor(cardTextColor)
	text.DrawWithOptions(screen, hud, fonts.TTFNormalFont, op)
}

// FormatElapsed renders a duration as mm:ss for the in-game HUD and the
// cleared screen.
func FormatElapsed(d time.Duration) string {
	total := int(d.Seconds())
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
