package types

import "fmt"

// GridPoint is a cell on the board. (0, 0) is the bottom-left corner.
type GridPoint struct {
	X int
	Y int
}

func (p GridPoint) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Add returns the point offset by the given vector.
func (p GridPoint) Add(v GridVector) GridPoint {
	return GridPoint{X: p.X + v.DX, Y: p.Y + v.DY}
}

// GridVector is a single movement step on the board.
type GridVector struct {
	DX int
	DY int
}

type CardKind int

const (
	// CardKindSoldier moves along exactly one vector.
	CardKindSoldier CardKind = iota
	// CardKindScout chooses between two or more vectors.
	CardKindScout
	// CardKindRunner slides along a vector through intermediate cells.
	CardKindRunner
	// CardKindWarp jumps to an unoccupied warp pad.
	CardKindWarp
	// CardKindWild reaches any traversable cell.
	CardKindWild
)

func (k CardKind) String() string {
	switch k {
	case CardKindSoldier:
		return "Soldier"
	case CardKindScout:
		return "Scout"
	case CardKindRunner:
		return "Runner"
	case CardKindWarp:
		return "Warp"
	case CardKindWild:
		return "Wild"
	}
	return "Unknown"
}

// Card is a movement card. Vectors is empty for Warp and Wild kinds, whose
// destinations are derived from the board rather than from the pawn.
type Card struct {
	ID      string
	Kind    CardKind
	Vectors []GridVector
}

// Stack is one of the player's face-up card stacks. Only the top card is
// playable; played cards cycle to the bottom.
type Stack struct {
	ID    string
	Cards []Card
}

// TopCard returns the playable card, or nil when the stack is empty.
func (s *Stack) TopCard() *Card {
	if len(s.Cards) == 0 {
		return nil
	}
	return &s.Cards[0]
}

// HandSlot is the published snapshot of one stack: its top card and depth.
type HandSlot struct {
	StackID string
	Top     *Card
	Count   int
}

// MoveCandidate is one legal (card, stack, destination) play, rebuilt from
// the live state on every query and never mutated in place.
type MoveCandidate struct {
	StackID     string
	CardID      string
	Kind        CardKind
	Vectors     []GridVector
	Destination GridPoint
}

// Key identifies a candidate by value: two candidates are the same play iff
// their stack, card and destination all match.
func (c MoveCandidate) Key() string {
	return fmt.Sprintf("%s/%s/%s", c.StackID, c.CardID, c.Destination)
}

type Phase int

const (
	PhaseAwaitingStart Phase = iota
	PhasePlaying
	PhaseTransitionPause
	PhaseCleared
)

func (p Phase) String() string {
	switch p {
	case PhaseAwaitingStart:
		return "AwaitingStart"
	case PhasePlaying:
		return "Playing"
	case PhaseTransitionPause:
		return "TransitionPause"
	case PhaseCleared:
		return "Cleared"
	}
	return "Unknown"
}

// Playable reports whether the puzzle is actively accepting moves.
func (p Phase) Playable() bool {
	return p == PhasePlaying
}

// MoveOutcome describes the last applied move, published so the rendering
// side can pick a landing effect.
type MoveOutcome struct {
	CardID string
	Kind   CardKind
	From   GridPoint
	To     GridPoint
	Warp   bool
}

// Board cell tags for the collision space.
const (
	CellTagBlocked = "blocked"
	CellTagGoal    = "goal"
	CellTagWarp    = "warp"
)
