package coord

import (
	"github.com/deckstride/deckstride/pkg/board/types"
	"github.com/deckstride/deckstride/pkg/log"
)

// ConflictWarningMessage is shown when a tap cannot be resolved to a single
// card.
const ConflictWarningMessage = "More than one card can reach this square"

// TapRequest is one "user tapped a destination cell" signal, consumed once
// per resolution attempt.
type TapRequest struct {
	Destination types.GridPoint
	Candidates  []types.MoveCandidate
}

// selection is the user's pre-selected card and its candidates at selection
// time.
type selection struct {
	cardID     string
	stackID    string
	candidates []types.MoveCandidate
}

// TapResolver turns board taps into plays, highlight updates or a conflict
// warning. A single-vector card is always considered unambiguous: it has
// only one possible destination, so tapping that destination is unmistakable
// intent. Two single-vector cards converging on the same cell are a genuine
// conflict and warn like any other.
type TapResolver struct {
	source   StateSource
	animator *Animator
	engine   *HighlightEngine
	surface  RenderSurface

	selected *selection
}

func NewTapResolver(source StateSource, animator *Animator, engine *HighlightEngine, surface RenderSurface) *TapResolver {
	return &TapResolver{
		source:   source,
		animator: animator,
		engine:   engine,
		surface:  surface,
	}
}

// HasSelection reports whether a card is pre-selected.
func (r *TapResolver) HasSelection() bool {
	return r.selected != nil
}

// SelectedCard returns the pre-selected card id, or "".
func (r *TapResolver) SelectedCard() string {
	if r.selected == nil {
		return ""
	}
	return r.selected.cardID
}

// SelectCard pre-selects a top card by id and highlights its destinations
// through the forced-selection set. Selecting the already-selected card
// deselects it. Unknown or non-top ids are ignored.
func (r *TapResolver) SelectCard(cardID string) {
	if r.animator.InFlight() {
		log.Debug("Ignoring card selection during animation")
		return
	}
	if r.selected != nil && r.selected.cardID == cardID {
		r.ClearSelection()
		return
	}

	var stackID string
	for _, slot := range r.source.Hand() {
		if slot.Top != nil && slot.Top.ID == cardID {
			stackID = slot.StackID
			break
		}
	}
	if stackID == "" {
		log.Debug("Ignoring selection of %s: not a live top card", cardID)
		return
	}

	var mine []types.MoveCandidate
	for _, c := range r.source.AvailableMoves(nil, nil) {
		if c.CardID == cardID && c.StackID == stackID {
			mine = append(mine, c)
		}
	}

	r.selected = &selection{cardID: cardID, stackID: stackID, candidates: mine}
	r.engine.SetForcedSelection(mine)
}

// ClearSelection drops the pre-selection and its highlight.
func (r *TapResolver) ClearSelection() {
	if r.selected == nil {
		return
	}
	r.selected = nil
	r.engine.ClearForcedSelection()
}

// DropStaleSelection clears the selection when its card is no longer a live
// top card. Called on hand changes.
func (r *TapResolver) DropStaleSelection(slots []types.HandSlot) {
	if r.selected == nil {
		return
	}
	for _, slot := range slots {
		if slot.StackID == r.selected.stackID && slot.Top != nil && slot.Top.ID == r.selected.cardID {
			return
		}
	}
	log.Debug("Selected card %s left the hand, clearing selection", r.selected.cardID)
	r.ClearSelection()
}

// Resolve handles one tap. With no pre-selection it either plays the single
// unambiguous candidate or emits a conflict warning; with a pre-selection it
// restricts consideration to that card. Unresolvable taps are silent no-ops.
func (r *TapResolver) Resolve(req TapRequest) {
	if r.selected != nil {
		r.resolveSelected(req)
		return
	}

	var matching []types.MoveCandidate
	for _, c := range req.Candidates {
		if c.Destination == req.Destination {
			matching = append(matching, c)
		}
	}
	if len(matching) == 0 {
		return
	}

	var singles []types.MoveCandidate
	stacks := make(map[string]struct{})
	for _, c := range matching {
		stacks[c.StackID] = struct{}{}
		if IsSingleVector(c) {
			singles = append(singles, c)
		}
	}

	switch {
	case len(singles) == 1:
		// Single-vector override: unmistakable intent even when other
		// multi-candidate cards reach the same cell.
		r.animator.Play(singles[0])
	case len(singles) > 1:
		r.warn(req.Destination)
	case len(stacks) > 1:
		r.warn(req.Destination)
	default:
		r.animator.Play(matching[0])
	}
}

func (r *TapResolver) resolveSelected(req TapRequest) {
	var mine []types.MoveCandidate
	for _, c := range r.selected.candidates {
		if c.Destination == req.Destination {
			mine = append(mine, c)
		}
	}
	if len(mine) == 0 {
		// Not one of the selected card's destinations: just re-assert the
		// forced highlight, no state change.
		r.engine.SetForcedSelection(r.selected.candidates)
		return
	}

	if r.animator.Play(mine[0]) {
		r.selected = nil
		return
	}
	// Rejected: keep the selection and its highlights so the user can retry.
	log.Debug("Play of selected card %s rejected, keeping selection", r.selected.cardID)
}

func (r *TapResolver) warn(dest types.GridPoint) {
	log.Debug("Ambiguous tap at %s", dest)
	r.surface.ConflictWarning(ConflictWarningMessage, dest)
}
