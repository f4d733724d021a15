package board

import (
	"testing"

	"github.com/deckstride/deckstride/pkg/board/types"
	"github.com/deckstride/deckstride/pkg/queue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBoard(t *testing.T) *Board {
	t.Helper()
	b, err := NewBoard(NewBoardOptions{
		Width:   5,
		Height:  5,
		Start:   types.GridPoint{X: 0, Y: 0},
		Goal:    types.GridPoint{X: 4, Y: 4},
		Blocked: []types.GridPoint{{X: 2, Y: 0}, {X: 2, Y: 1}},
		Warps:   []types.GridPoint{{X: 4, Y: 0}, {X: 0, Y: 4}},
	})
	require.NoError(t, err)
	return b
}

func testState(t *testing.T, stacks []*types.Stack) (*State, queue.Queue) {
	t.Helper()
	events := queue.NewInMemoryQueue()
	s := NewState(testBoard(t), stacks, events)
	s.Start()
	events.ClearQueue()
	return s, events
}

func soldierStack(id string, dx, dy int) *types.Stack {
	return &types.Stack{
		ID: id,
		Cards: []types.Card{
			{ID: id + "-top", Kind: types.CardKindSoldier, Vectors: []types.GridVector{{DX: dx, DY: dy}}},
			{ID: id + "-next", Kind: types.CardKindSoldier, Vectors: []types.GridVector{{DX: dy, DY: dx}}},
		},
	}
}

func TestBoard_Traversability(t *testing.T) {
	b := testBoard(t)

	assert.True(t, b.Traversable(types.GridPoint{X: 1, Y: 1}))
	assert.False(t, b.Traversable(types.GridPoint{X: 2, Y: 0}), "blocked cell")
	assert.False(t, b.Traversable(types.GridPoint{X: -1, Y: 0}), "off board")
	assert.False(t, b.Traversable(types.GridPoint{X: 5, Y: 5}), "off board")
	assert.True(t, b.Traversable(types.GridPoint{X: 4, Y: 0}), "warp pads are traversable")
	assert.True(t, b.IsWarpPad(types.GridPoint{X: 4, Y: 0}))
	assert.True(t, b.IsGoal(types.GridPoint{X: 4, Y: 4}))
}

func TestBoard_RejectsInvalidLayouts(t *testing.T) {
	_, err := NewBoard(NewBoardOptions{
		Width:   3,
		Height:  3,
		Start:   types.GridPoint{X: 0, Y: 0},
		Goal:    types.GridPoint{X: 2, Y: 2},
		Blocked: []types.GridPoint{{X: 0, Y: 0}},
	})
	assert.Error(t, err, "blocked start cell")

	_, err = NewBoard(NewBoardOptions{
		Width:   3,
		Height:  3,
		Start:   types.GridPoint{X: 0, Y: 0},
		Goal:    types.GridPoint{X: 5, Y: 5},
	})
	assert.Error(t, err, "goal outside the board")
}

func TestState_AvailableMovesPerKind(t *testing.T) {
	tests := []struct {
		name  string
		card  types.Card
		wants []types.GridPoint
	}{
		{
			name:  "soldier single hop",
			card:  types.Card{ID: "s", Kind: types.CardKindSoldier, Vectors: []types.GridVector{{DX: 0, DY: 1}}},
			wants: []types.GridPoint{{X: 0, Y: 1}},
		},
		{
			name: "scout one hop per vector, blocked hop dropped",
			card: types.Card{ID: "sc", Kind: types.CardKindScout, Vectors: []types.GridVector{{DX: 0, DY: 1}, {DX: -1, DY: 0}, {DX: 1, DY: 1}}},
			wants: []types.GridPoint{{X: 0, Y: 1}, {X: 1, Y: 1}},
		},
		{
			name: "runner slides until blocked",
			card: types.Card{ID: "r", Kind: types.CardKindRunner, Vectors: []types.GridVector{{DX: 1, DY: 0}}},
			// (2,0) is blocked, so the slide stops after (1,0).
			wants: []types.GridPoint{{X: 1, Y: 0}},
		},
		{
			name:  "warp reaches every other pad",
			card:  types.Card{ID: "w", Kind: types.CardKindWarp},
			wants: []types.GridPoint{{X: 4, Y: 0}, {X: 0, Y: 4}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stack := &types.Stack{ID: "stack", Cards: []types.Card{tt.card}}
			s, _ := testState(t, []*types.Stack{stack})

			var dests []types.GridPoint
			for _, c := range s.AvailableMoves(nil, nil) {
				assert.Equal(t, "stack", c.StackID)
				assert.Equal(t, tt.card.ID, c.CardID)
				dests = append(dests, c.Destination)
			}
			assert.ElementsMatch(t, tt.wants, dests)
		})
	}
}

func TestState_AvailableMovesWildReachesBoard(t *testing.T) {
	stack := &types.Stack{ID: "stack", Cards: []types.Card{{ID: "wild", Kind: types.CardKindWild}}}
	s, _ := testState(t, []*types.Stack{stack})

	dests := make(map[types.GridPoint]struct{})
	for _, c := range s.AvailableMoves(nil, nil) {
		dests[c.Destination] = struct{}{}
	}
	// 25 cells minus 2 blocked minus the pawn's own cell.
	assert.Len(t, dests, 22)
	assert.NotContains(t, dests, types.GridPoint{X: 0, Y: 0})
	assert.NotContains(t, dests, types.GridPoint{X: 2, Y: 0})
}

func TestState_AvailableMovesOverrides(t *testing.T) {
	s, _ := testState(t, []*types.Stack{soldierStack("a", 0, 1)})

	override := []types.HandSlot{{
		StackID: "a",
		Top:     &types.Card{ID: "x", Kind: types.CardKindSoldier, Vectors: []types.GridVector{{DX: 1, DY: 0}}},
		Count:   1,
	}}
	pos := types.GridPoint{X: 3, Y: 3}

	candidates := s.AvailableMoves(override, &pos)
	require.Len(t, candidates, 1)
	assert.Equal(t, "x", candidates[0].CardID)
	assert.Equal(t, types.GridPoint{X: 4, Y: 3}, candidates[0].Destination)
}

func TestState_AvailableMovesWithoutPosition(t *testing.T) {
	events := queue.NewInMemoryQueue()
	s := NewState(testBoard(t), []*types.Stack{soldierStack("a", 0, 1)}, events)
	assert.Nil(t, s.AvailableMoves(nil, nil))
}

func TestState_ApplyMove(t *testing.T) {
	s, events := testState(t, []*types.Stack{soldierStack("a", 0, 1)})

	candidates := s.AvailableMoves(nil, nil)
	require.Len(t, candidates, 1)
	require.NoError(t, s.ApplyMove(candidates[0]))

	assert.Equal(t, types.GridPoint{X: 0, Y: 1}, *s.Position())
	assert.Equal(t, 1, s.Moves())

	// The played card cycled to the bottom; the next card is now on top.
	hand := s.Hand()
	require.Len(t, hand, 1)
	assert.Equal(t, "a-next", hand[0].Top.ID)

	var kinds []interface{}
	for _, e := range events.ReadAllMessages() {
		kinds = append(kinds, e)
	}
	require.Len(t, kinds, 3)
	assert.IsType(t, types.HandChangedEvent{}, kinds[0])
	assert.IsType(t, types.PositionChangedEvent{}, kinds[1])
	assert.IsType(t, types.MoveResolvedEvent{}, kinds[2])
}

func TestState_ApplyMoveRejectsStaleCandidates(t *testing.T) {
	s, _ := testState(t, []*types.Stack{soldierStack("a", 0, 1)})

	stale := types.MoveCandidate{
		StackID:     "a",
		CardID:      "a-next", // not the top card
		Kind:        types.CardKindSoldier,
		Destination: types.GridPoint{X: 0, Y: 1},
	}
	assert.Error(t, s.ApplyMove(stale))
	assert.Equal(t, types.GridPoint{X: 0, Y: 0}, *s.Position())

	illegal := types.MoveCandidate{
		StackID:     "a",
		CardID:      "a-top",
		Kind:        types.CardKindSoldier,
		Destination: types.GridPoint{X: 3, Y: 3},
	}
	assert.Error(t, s.ApplyMove(illegal))
}

func TestState_WarpMoveEntersTransitionPause(t *testing.T) {
	stack := &types.Stack{ID: "stack", Cards: []types.Card{{ID: "gate", Kind: types.CardKindWarp}, {ID: "filler", Kind: types.CardKindSoldier, Vectors: []types.GridVector{{DX: 0, DY: 1}}}}}
	s, events := testState(t, []*types.Stack{stack})

	var warpMove *types.MoveCandidate
	for _, c := range s.AvailableMoves(nil, nil) {
		if c.Destination == (types.GridPoint{X: 4, Y: 0}) {
			move := c
			warpMove = &move
		}
	}
	require.NotNil(t, warpMove)
	require.NoError(t, s.ApplyMove(*warpMove))

	assert.Equal(t, types.PhaseTransitionPause, s.Phase())
	msgs := events.ReadAllMessages()
	outcome := msgs[2].(types.MoveResolvedEvent).Outcome
	assert.True(t, outcome.Warp)

	assert.Error(t, s.ApplyMove(*warpMove), "no moves during the transition pause")

	s.EndTransition()
	assert.Equal(t, types.PhasePlaying, s.Phase())
}

func TestState_ReachingGoalClears(t *testing.T) {
	stack := &types.Stack{ID: "stack", Cards: []types.Card{{ID: "wild", Kind: types.CardKindWild}}}
	s, _ := testState(t, []*types.Stack{stack})

	var goalMove *types.MoveCandidate
	for _, c := range s.AvailableMoves(nil, nil) {
		if c.Destination == (types.GridPoint{X: 4, Y: 4}) {
			move := c
			goalMove = &move
		}
	}
	require.NotNil(t, goalMove)
	require.NoError(t, s.ApplyMove(*goalMove))
	assert.Equal(t, types.PhaseCleared, s.Phase())
}

func TestState_Reset(t *testing.T) {
	s, events := testState(t, []*types.Stack{soldierStack("a", 0, 1)})
	s.Reset()
	assert.Nil(t, s.Position())
	assert.Equal(t, types.PhaseAwaitingStart, s.Phase())
	assert.Zero(t, s.Moves())
	assert.NotZero(t, len(events.ReadAllMessages()))
}

func TestNewDefaultPuzzle(t *testing.T) {
	b, stacks, err := NewDefaultPuzzle()
	require.NoError(t, err)
	assert.Equal(t, DefaultWidth, b.Width())
	assert.Equal(t, DefaultHeight, b.Height())
	require.Len(t, stacks, 3)
	for _, stack := range stacks {
		assert.NotEmpty(t, stack.Cards)
	}
	assert.True(t, b.Traversable(b.Start()))
	assert.True(t, b.Traversable(b.Goal()))
}
