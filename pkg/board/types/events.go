package types

// State-change events published by the game state and drained by the
// coordination bridge once per update tick.

// HandChangedEvent carries a full snapshot of the hand slots.
type HandChangedEvent struct {
	Slots []HandSlot
}

// PositionChangedEvent carries the pawn position. Position is nil while the
// pawn has not been placed.
type PositionChangedEvent struct {
	Position *GridPoint
}

// BoardChangedEvent signals a layout change (warp pad occupancy and the like)
// without changing hand or position.
type BoardChangedEvent struct{}

// PhaseChangedEvent carries the new lifecycle phase.
type PhaseChangedEvent struct {
	Phase Phase
}

// MoveResolvedEvent carries the outcome of the last applied move.
type MoveResolvedEvent struct {
	Outcome MoveOutcome
}
