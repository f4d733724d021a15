package coord

import (
	"github.com/deckstride/deckstride/pkg/board/types"
	"github.com/deckstride/deckstride/pkg/log"
)

// HighlightEngine owns the guide highlight state. Refresh resolves the
// effective hand, position and phase, classifies the available moves and
// decides whether the result is shown, buffered or suppressed:
//
//   - position unknown: buckets forced empty, the hand is buffered for the
//     refresh that sees a position;
//   - guides disabled: buckets forced empty and any pending snapshot is
//     discarded so stale guides cannot silently reappear;
//   - phase not playable: buckets forced empty, the computed result is kept
//     as a pending snapshot and replayed as recomputation input once the
//     phase returns to playable;
//   - playable: the fresh classification is shown.
//
// Every outcome is pushed to the surface as one atomic ApplyHighlights call
// that also carries the forced-selection set.
type HighlightEngine struct {
	source  StateSource
	surface RenderSurface

	guideEnabled bool
	buckets      Buckets
	forced       map[types.GridPoint]struct{}
	pending      *pendingSnapshot
	bufferedHand []types.HandSlot
}

// pendingSnapshot holds a computed-but-undisplayed classification along with
// the inputs that produced it. On replay the inputs are re-run through
// AvailableMoves rather than the buckets being trusted as-is.
type pendingSnapshot struct {
	hand     []types.HandSlot
	position types.GridPoint
	buckets  Buckets
}

func NewHighlightEngine(source StateSource, surface RenderSurface, guideEnabled bool) *HighlightEngine {
	return &HighlightEngine{
		source:       source,
		surface:      surface,
		guideEnabled: guideEnabled,
		buckets:      NewBuckets(),
		forced:       make(map[types.GridPoint]struct{}),
	}
}

// RefreshOptions carries per-call overrides. A nil/unset field means "read
// the current value from the state source".
type RefreshOptions struct {
	Hand        []types.HandSlot
	Position    *types.GridPoint
	PositionSet bool
	Phase       *types.Phase
}

// SetGuideEnabled records the user preference. The caller refreshes
// afterwards; the two steps are split so preference changes and state
// changes go through the same recomputation path.
func (e *HighlightEngine) SetGuideEnabled(enabled bool) {
	e.guideEnabled = enabled
}

func (e *HighlightEngine) GuideEnabled() bool {
	return e.guideEnabled
}

// Refresh recomputes the guide buckets and pushes the result.
func (e *HighlightEngine) Refresh(opts RefreshOptions) {
	hand := opts.Hand
	if hand == nil {
		hand = e.source.Hand()
	}
	pos := opts.Position
	if !opts.PositionSet {
		pos = e.source.Position()
	}
	phase := e.source.Phase()
	if opts.Phase != nil {
		phase = *opts.Phase
	}

	if pos == nil {
		// No position to classify against yet. Keep the hand around so the
		// refresh triggered by the position arriving sees it.
		e.bufferedHand = hand
		e.buckets = NewBuckets()
		e.push()
		return
	}

	if e.bufferedHand != nil && opts.Hand == nil {
		hand = e.bufferedHand
	}
	e.bufferedHand = nil

	if !e.guideEnabled {
		if e.pending != nil {
			log.Debug("Discarding pending guide snapshot: guides disabled")
			e.pending = nil
		}
		e.buckets = NewBuckets()
		e.push()
		return
	}

	if e.pending != nil && opts.Hand == nil && !opts.PositionSet {
		// Replay the snapshot inputs; the buckets themselves are recomputed
		// below to guard against staleness.
		hand = e.pending.hand
		p := e.pending.position
		pos = &p
	}

	buckets := Classify(e.source.AvailableMoves(hand, pos))

	if !phase.Playable() {
		e.pending = &pendingSnapshot{hand: hand, position: *pos, buckets: buckets}
		e.buckets = NewBuckets()
		e.push()
		return
	}

	e.pending = nil
	e.buckets = buckets
	e.push()
}

// SetForcedSelection highlights the destinations of one chosen card,
// bypassing the guide-enabled preference. Destinations are intersected with
// on-board traversability before being applied.
func (e *HighlightEngine) SetForcedSelection(candidates []types.MoveCandidate) {
	forced := make(map[types.GridPoint]struct{})
	for _, c := range candidates {
		if e.source.Traversable(c.Destination) {
			forced[c.Destination] = struct{}{}
		}
	}
	e.forced = forced
	e.push()
}

// ClearForcedSelection drops the forced-selection set. Called when the
// selection is dismissed and when an animation begins.
func (e *HighlightEngine) ClearForcedSelection() {
	if len(e.forced) == 0 {
		return
	}
	e.forced = make(map[types.GridPoint]struct{})
	e.push()
}

// HasPending reports whether a computed snapshot is waiting for a playable
// phase.
func (e *HighlightEngine) HasPending() bool {
	return e.pending != nil
}

func (e *HighlightEngine) push() {
	forced := make(map[types.GridPoint]struct{}, len(e.forced))
	for p := range e.forced {
		forced[p] = struct{}{}
	}
	e.surface.ApplyHighlights(Highlights{
		Buckets:         e.buckets,
		ForcedSelection: forced,
	})
}
