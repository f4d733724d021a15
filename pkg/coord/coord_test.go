package coord

import (
	"github.com/deckstride/deckstride/pkg/board/types"
)

// fakeSource is a configurable StateSource for tests.
type fakeSource struct {
	hand        []types.HandSlot
	pos         *types.GridPoint
	phase       types.Phase
	moves       []types.MoveCandidate
	movesFn     func(hand []types.HandSlot, pos *types.GridPoint) []types.MoveCandidate
	blocked     map[types.GridPoint]struct{}
	applyErr    error
	applied     []types.MoveCandidate
	movesCalled int
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		phase:   types.PhasePlaying,
		blocked: make(map[types.GridPoint]struct{}),
	}
}

func (s *fakeSource) Hand() []types.HandSlot      { return s.hand }
func (s *fakeSource) Position() *types.GridPoint  { return s.pos }
func (s *fakeSource) Phase() types.Phase          { return s.phase }

func (s *fakeSource) Traversable(p types.GridPoint) bool {
	_, ok := s.blocked[p]
	return !ok
}

func (s *fakeSource) AvailableMoves(hand []types.HandSlot, pos *types.GridPoint) []types.MoveCandidate {
	s.movesCalled++
	if s.movesFn != nil {
		return s.movesFn(hand, pos)
	}
	return s.moves
}

func (s *fakeSource) ApplyMove(c types.MoveCandidate) error {
	if s.applyErr != nil {
		return s.applyErr
	}
	s.applied = append(s.applied, c)
	return nil
}

// setHand installs slots with the given cards as tops.
func (s *fakeSource) setHand(cards ...types.Card) {
	s.hand = nil
	for i := range cards {
		card := cards[i]
		s.hand = append(s.hand, types.HandSlot{
			StackID: "stack-" + card.ID,
			Top:     &card,
			Count:   3,
		})
	}
}

type warning struct {
	message     string
	destination types.GridPoint
}

// fakeSurface records every render-surface call in order.
type fakeSurface struct {
	highlights []Highlights
	targets    []*types.GridPoint
	hidden     []string
	shown      []string
	warnings   []warning
	feedback   int
	calls      []string
}

func (s *fakeSurface) ApplyHighlights(h Highlights) {
	s.highlights = append(s.highlights, h)
	s.calls = append(s.calls, "highlights")
}

func (s *fakeSurface) SetAnimationTarget(cell *types.GridPoint) {
	s.targets = append(s.targets, cell)
	s.calls = append(s.calls, "target")
}

func (s *fakeSurface) HideCard(cardID string) {
	s.hidden = append(s.hidden, cardID)
	s.calls = append(s.calls, "hide")
}

func (s *fakeSurface) ShowCard(cardID string) {
	s.shown = append(s.shown, cardID)
	s.calls = append(s.calls, "show")
}

func (s *fakeSurface) ConflictWarning(message string, destination types.GridPoint) {
	s.warnings = append(s.warnings, warning{message: message, destination: destination})
	s.calls = append(s.calls, "warn")
}

func (s *fakeSurface) PlayFeedback() {
	s.feedback++
	s.calls = append(s.calls, "feedback")
}

func (s *fakeSurface) lastHighlights() Highlights {
	return s.highlights[len(s.highlights)-1]
}

// fakeClock records pause/resume commands in order.
type fakeClock struct {
	commands []string
}

func (c *fakeClock) Pause()  { c.commands = append(c.commands, "pause") }
func (c *fakeClock) Resume() { c.commands = append(c.commands, "resume") }

func gp(x, y int) types.GridPoint { return types.GridPoint{X: x, Y: y} }

func soldier(id string, dx, dy int) types.Card {
	return types.Card{ID: id, Kind: types.CardKindSoldier, Vectors: []types.GridVector{{DX: dx, DY: dy}}}
}

func candidate(card types.Card, dest types.GridPoint) types.MoveCandidate {
	return types.MoveCandidate{
		StackID:     "stack-" + card.ID,
		CardID:      card.ID,
		Kind:        card.Kind,
		Vectors:     card.Vectors,
		Destination: dest,
	}
}
