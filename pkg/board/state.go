package board

import (
	"fmt"

	"github.com/deckstride/deckstride/pkg/board/types"
	"github.com/deckstride/deckstride/pkg/queue"
)

// State is the mutable puzzle state: the pawn, the hand stacks and the
// lifecycle phase. Every mutation publishes change events onto the event
// queue; the coordination layer drains that queue on the update tick.
type State struct {
	board      *Board
	stacks     []*types.Stack
	pawn       *types.GridPoint
	phase      types.Phase
	moves      int
	eventQueue queue.Queue
}

func NewState(board *Board, stacks []*types.Stack, eventQueue queue.Queue) *State {
	return &State{
		board:      board,
		stacks:     stacks,
		phase:      types.PhaseAwaitingStart,
		eventQueue: eventQueue,
	}
}

func (s *State) Board() *Board { return s.board }

// Phase returns the current lifecycle phase.
func (s *State) Phase() types.Phase { return s.phase }

// Moves returns the number of moves applied this session.
func (s *State) Moves() int { return s.moves }

// Position returns the pawn cell, or nil while the pawn is not placed.
func (s *State) Position() *types.GridPoint {
	if s.pawn == nil {
		return nil
	}
	p := *s.pawn
	return &p
}

// Traversable reports whether the pawn may occupy the cell.
func (s *State) Traversable(p types.GridPoint) bool {
	return s.board.Traversable(p)
}

// Hand returns a snapshot of the hand slots.
func (s *State) Hand() []types.HandSlot {
	slots := make([]types.HandSlot, 0, len(s.stacks))
	for _, stack := range s.stacks {
		slot := types.HandSlot{
			StackID: stack.ID,
			Count:   len(stack.Cards),
		}
		if top := stack.TopCard(); top != nil {
			card := *top
			slot.Top = &card
		}
		slots = append(slots, slot)
	}
	return slots
}

// Start places the pawn on the start cell and opens play.
func (s *State) Start() {
	p := s.board.Start()
	s.pawn = &p
	s.phase = types.PhasePlaying
	s.moves = 0
	s.publish(types.HandChangedEvent{Slots: s.Hand()})
	s.publish(types.PositionChangedEvent{Position: s.Position()})
	s.publish(types.PhaseChangedEvent{Phase: s.phase})
}

// Reset returns the state to awaiting-start and clears the pawn.
func (s *State) Reset() {
	s.pawn = nil
	s.phase = types.PhaseAwaitingStart
	s.moves = 0
	s.publish(types.PositionChangedEvent{Position: nil})
	s.publish(types.PhaseChangedEvent{Phase: s.phase})
}

// AvailableMoves returns every legal play for the effective hand and
// position. Overrides win over the current state; pass nil for both to query
// the live state. Candidates are rebuilt on every call.
func (s *State) AvailableMoves(handOverride []types.HandSlot, posOverride *types.GridPoint) []types.MoveCandidate {
	hand := handOverride
	if hand == nil {
		hand = s.Hand()
	}
	pos := posOverride
	if pos == nil {
		pos = s.Position()
	}
	if pos == nil {
		return nil
	}

	var candidates []types.MoveCandidate
	for _, slot := range hand {
		if slot.Top == nil {
			continue
		}
		for _, dest := range s.destinations(*slot.Top, *pos) {
			candidates = append(candidates, types.MoveCandidate{
				StackID:     slot.StackID,
				CardID:      slot.Top.ID,
				Kind:        slot.Top.Kind,
				Vectors:     append([]types.GridVector{}, slot.Top.Vectors...),
				Destination: dest,
			})
		}
	}
	return candidates
}

func (s *State) destinations(card types.Card, from types.GridPoint) []types.GridPoint {
	var dests []types.GridPoint
	switch card.Kind {
	case types.CardKindSoldier, types.CardKindScout:
		for _, v := range card.Vectors {
			p := from.Add(v)
			if s.board.Traversable(p) {
				dests = append(dests, p)
			}
		}
	case types.CardKindRunner:
		for _, v := range card.Vectors {
			p := from.Add(v)
			for s.board.Traversable(p) {
				dests = append(dests, p)
				p = p.Add(v)
			}
		}
	case types.CardKindWarp:
		for _, pad := range s.board.WarpPads() {
			if pad != from {
				dests = append(dests, pad)
			}
		}
	case types.CardKindWild:
		for y := 0; y < s.board.Height(); y++ {
			for x := 0; x < s.board.Width(); x++ {
				p := types.GridPoint{X: x, Y: y}
				if p != from && s.board.Traversable(p) {
					dests = append(dests, p)
				}
			}
		}
	}
	return dests
}

// ApplyMove re-validates and applies a candidate: the pawn moves, the played
// card cycles to the bottom of its stack, and the relevant change events are
// published. The candidate may be stale relative to the live state, in which
// case an error is returned and nothing changes.
func (s *State) ApplyMove(c types.MoveCandidate) error {
	if !s.phase.Playable() {
		return fmt.Errorf("phase %s is not playable", s.phase)
	}
	if s.pawn == nil {
		return fmt.Errorf("pawn position is not established")
	}

	stack := s.findStack(c.StackID)
	if stack == nil {
		return fmt.Errorf("unknown stack %s", c.StackID)
	}
	top := stack.TopCard()
	if top == nil || top.ID != c.CardID {
		return fmt.Errorf("card %s is no longer on top of stack %s", c.CardID, c.StackID)
	}

	legal := false
	for _, dest := range s.destinations(*top, *s.pawn) {
		if dest == c.Destination {
			legal = true
			break
		}
	}
	if !legal {
		return fmt.Errorf("destination %s is not legal for card %s", c.Destination, c.CardID)
	}

	from := *s.pawn
	to := c.Destination
	s.pawn = &to
	s.moves++

	// Cycle the played card to the bottom of its stack.
	played := stack.Cards[0]
	stack.Cards = append(stack.Cards[1:], played)

	outcome := types.MoveOutcome{
		CardID: c.CardID,
		Kind:   c.Kind,
		From:   from,
		To:     to,
		Warp:   c.Kind == types.CardKindWarp,
	}

	s.publish(types.HandChangedEvent{Slots: s.Hand()})
	s.publish(types.PositionChangedEvent{Position: s.Position()})
	s.publish(types.MoveResolvedEvent{Outcome: outcome})

	switch {
	case s.board.IsGoal(to):
		s.phase = types.PhaseCleared
		s.publish(types.PhaseChangedEvent{Phase: s.phase})
	case outcome.Warp:
		// The warp landing effect plays out before play reopens.
		s.phase = types.PhaseTransitionPause
		s.publish(types.PhaseChangedEvent{Phase: s.phase})
	}

	return nil
}

// EndTransition reopens play after the post-move transition effect.
func (s *State) EndTransition() {
	if s.phase != types.PhaseTransitionPause {
		return
	}
	s.phase = types.PhasePlaying
	s.publish(types.PhaseChangedEvent{Phase: s.phase})
}

func (s *State) findStack(id string) *types.Stack {
	for _, stack := range s.stacks {
		if stack.ID == id {
			return stack
		}
	}
	return nil
}

func (s *State) publish(event interface{}) {
	if s.eventQueue == nil {
		return
	}
	s.eventQueue.Enqueue(event)
}
