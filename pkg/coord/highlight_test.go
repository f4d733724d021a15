package coord

import (
	"testing"

	"github.com/deckstride/deckstride/pkg/board/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHighlightEngine_PositionUnknownBuffersHand(t *testing.T) {
	source := newFakeSource()
	surface := &fakeSurface{}
	engine := NewHighlightEngine(source, surface, true)

	foot := soldier("foot", 0, 1)
	source.setHand(foot)
	var seenHands [][]types.HandSlot
	source.movesFn = func(hand []types.HandSlot, pos *types.GridPoint) []types.MoveCandidate {
		seenHands = append(seenHands, hand)
		return []types.MoveCandidate{candidate(foot, gp(0, 1))}
	}

	// No position yet: empty push, no classification.
	engine.Refresh(RefreshOptions{Hand: source.Hand()})
	require.Len(t, surface.highlights, 1)
	assert.True(t, surface.lastHighlights().Empty())
	assert.Zero(t, source.movesCalled)

	// Position arrives: the buffered hand is the classification input.
	pos := gp(0, 0)
	engine.Refresh(RefreshOptions{Position: &pos, PositionSet: true})
	require.Len(t, seenHands, 1)
	require.Len(t, seenHands[0], 1)
	assert.Equal(t, "foot", seenHands[0][0].Top.ID)
	assert.Contains(t, surface.lastHighlights().SingleVector, gp(0, 1))
}

func TestHighlightEngine_GuideDisabledSuppressesAndDiscardsPending(t *testing.T) {
	source := newFakeSource()
	surface := &fakeSurface{}
	engine := NewHighlightEngine(source, surface, true)

	foot := soldier("foot", 0, 1)
	source.setHand(foot)
	pos := gp(0, 0)
	source.pos = &pos
	source.moves = []types.MoveCandidate{candidate(foot, gp(0, 1))}

	// Build a pending snapshot during a paused phase.
	source.phase = types.PhaseTransitionPause
	engine.Refresh(RefreshOptions{})
	assert.True(t, engine.HasPending())
	assert.True(t, surface.lastHighlights().Empty())

	// Disabling guides discards it; nothing may silently reappear.
	engine.SetGuideEnabled(false)
	engine.Refresh(RefreshOptions{})
	assert.False(t, engine.HasPending())
	assert.True(t, surface.lastHighlights().Empty())

	source.phase = types.PhasePlaying
	engine.Refresh(RefreshOptions{})
	assert.True(t, surface.lastHighlights().Empty())
}

func TestHighlightEngine_PausedPhaseRetainsSnapshotForReplay(t *testing.T) {
	source := newFakeSource()
	surface := &fakeSurface{}
	engine := NewHighlightEngine(source, surface, true)

	foot := soldier("foot", 0, 1)
	source.setHand(foot)
	pos := gp(0, 0)
	source.pos = &pos
	source.moves = []types.MoveCandidate{candidate(foot, gp(0, 1))}

	source.phase = types.PhaseTransitionPause
	engine.Refresh(RefreshOptions{})
	assert.True(t, surface.lastHighlights().Empty(), "paused phase must not display buckets")
	assert.True(t, engine.HasPending())
	callsDuringPause := source.movesCalled

	// Phase returns to playable: the snapshot is recomputed, not restored.
	playing := types.PhasePlaying
	source.phase = types.PhasePlaying
	engine.Refresh(RefreshOptions{Phase: &playing})
	assert.False(t, engine.HasPending())
	assert.Greater(t, source.movesCalled, callsDuringPause, "replay must recompute")
	assert.Contains(t, surface.lastHighlights().SingleVector, gp(0, 1))
}

func TestHighlightEngine_IdempotentRefresh(t *testing.T) {
	source := newFakeSource()
	surface := &fakeSurface{}
	engine := NewHighlightEngine(source, surface, true)

	foot := soldier("foot", 0, 1)
	source.setHand(foot)
	pos := gp(2, 2)
	source.pos = &pos
	source.moves = []types.MoveCandidate{candidate(foot, gp(2, 3))}

	engine.Refresh(RefreshOptions{})
	first := surface.lastHighlights()
	engine.Refresh(RefreshOptions{})
	second := surface.lastHighlights()
	assert.Equal(t, first, second)
}

func TestHighlightEngine_ForcedSelection(t *testing.T) {
	source := newFakeSource()
	surface := &fakeSurface{}
	engine := NewHighlightEngine(source, surface, false) // guides off: forced bypasses the toggle

	foot := soldier("foot", 0, 1)
	source.setHand(foot)
	pos := gp(0, 0)
	source.pos = &pos
	source.blocked[gp(5, 5)] = struct{}{}

	engine.SetForcedSelection([]types.MoveCandidate{
		candidate(foot, gp(0, 1)),
		candidate(foot, gp(5, 5)), // not traversable, filtered out
	})

	h := surface.lastHighlights()
	assert.Contains(t, h.ForcedSelection, gp(0, 1))
	assert.NotContains(t, h.ForcedSelection, gp(5, 5))
	assert.True(t, h.Buckets.Empty(), "guide buckets stay empty while guides are disabled")

	engine.ClearForcedSelection()
	assert.Empty(t, surface.lastHighlights().ForcedSelection)
}

func TestHighlightEngine_PushIsAtomic(t *testing.T) {
	source := newFakeSource()
	surface := &fakeSurface{}
	engine := NewHighlightEngine(source, surface, true)

	foot := soldier("foot", 0, 1)
	source.setHand(foot)
	pos := gp(0, 0)
	source.pos = &pos
	source.moves = []types.MoveCandidate{candidate(foot, gp(0, 1))}

	engine.SetForcedSelection([]types.MoveCandidate{candidate(foot, gp(0, 1))})
	engine.Refresh(RefreshOptions{})

	// Every push carries all five sets; the last one has both the guide
	// bucket and the forced selection.
	h := surface.lastHighlights()
	assert.Contains(t, h.SingleVector, gp(0, 1))
	assert.Contains(t, h.ForcedSelection, gp(0, 1))
}
