// Package coord is the reactive coordination layer between the mutable
// puzzle state and the passive rendering surface. It owns the guide
// highlight lifecycle, the single-flight card-play animation, tap
// disambiguation and the clock suspension reasons. Everything here runs on
// the update tick of the game loop; there are no concurrent writers.
package coord

import "github.com/deckstride/deckstride/pkg/board/types"

// StateSource is the read API of the external game state. AvailableMoves
// must reflect the same legality rules the state uses for actual play.
type StateSource interface {
	Hand() []types.HandSlot
	Position() *types.GridPoint
	Phase() types.Phase
	Traversable(p types.GridPoint) bool
	AvailableMoves(handOverride []types.HandSlot, posOverride *types.GridPoint) []types.MoveCandidate
	ApplyMove(c types.MoveCandidate) error
}

// RenderSurface is the passive drawing layer. Calls are visual-only side
// channels, never authoritative state.
type RenderSurface interface {
	// ApplyHighlights replaces every highlight set in one atomic call.
	ApplyHighlights(h Highlights)
	// SetAnimationTarget marks the destination cell of the in-flight play,
	// or clears it when cell is nil.
	SetAnimationTarget(cell *types.GridPoint)
	HideCard(cardID string)
	ShowCard(cardID string)
	// ConflictWarning shows a one-shot, auto-expiring warning that more than
	// one card can reach the tapped cell.
	ConflictWarning(message string, destination types.GridPoint)
	// PlayFeedback triggers the accepted-play feedback pulse.
	PlayFeedback()
}

// GameClock is the pause/resume surface of the elapsed-time clock.
type GameClock interface {
	Pause()
	Resume()
}

// Buckets are the four disjoint guide classification sets, keyed by the card
// kind that reaches each cell. Destination sets may overlap across buckets
// when cards of different kinds reach the same cell.
type Buckets struct {
	SingleVector   map[types.GridPoint]struct{}
	MultipleVector map[types.GridPoint]struct{}
	MultiStep      map[types.GridPoint]struct{}
	Warp           map[types.GridPoint]struct{}
}

func NewBuckets() Buckets {
	return Buckets{
		SingleVector:   make(map[types.GridPoint]struct{}),
		MultipleVector: make(map[types.GridPoint]struct{}),
		MultiStep:      make(map[types.GridPoint]struct{}),
		Warp:           make(map[types.GridPoint]struct{}),
	}
}

// Empty reports whether no cell is highlighted in any bucket.
func (b Buckets) Empty() bool {
	return len(b.SingleVector) == 0 && len(b.MultipleVector) == 0 && len(b.MultiStep) == 0 && len(b.Warp) == 0
}

// Highlights is the full set pushed to the rendering surface: the four guide
// buckets plus the independently managed forced-selection set.
type Highlights struct {
	Buckets
	ForcedSelection map[types.GridPoint]struct{}
}
