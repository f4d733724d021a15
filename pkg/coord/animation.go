package coord

import (
	"time"

	"github.com/deckstride/deckstride/pkg/board/types"
	"github.com/deckstride/deckstride/pkg/log"
	"github.com/google/uuid"
)

// TravelDelay is the fixed travel phase between an accepted play and its
// commit to the game state.
const TravelDelay = 220 * time.Millisecond

// Session is the lifecycle record of one in-flight card play. At most one
// non-nil Session exists system-wide at any instant.
type Session struct {
	ID        string
	Candidate types.MoveCandidate
	StartedAt time.Time
	CommitAt  time.Time
}

// Progress returns the travel completion in [0, 1] at the given time.
func (s *Session) Progress(now time.Time) float64 {
	total := s.CommitAt.Sub(s.StartedAt)
	if total <= 0 {
		return 1
	}
	p := float64(now.Sub(s.StartedAt)) / float64(total)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// Animator owns the single-flight card-play animation. Play is the only way
// a session starts, Tick is the only place the underlying move commits, and
// ForceClear is the explicit cancellation handle: clearing the session drops
// the pending commit, so there is never an orphaned callback to re-check.
type Animator struct {
	source  StateSource
	surface RenderSurface
	travel  time.Duration
	now     func() time.Time

	session *Session

	// onAccept runs when a play is accepted; the bridge uses it to clear the
	// forced-selection highlight.
	onAccept func()
}

func NewAnimator(source StateSource, surface RenderSurface) *Animator {
	return &Animator{
		source:  source,
		surface: surface,
		travel:  TravelDelay,
		now:     time.Now,
	}
}

// SetOnAccept registers the accepted-play hook.
func (a *Animator) SetOnAccept(fn func()) {
	a.onAccept = fn
}

// SetNow injects a time source for tests.
func (a *Animator) SetNow(now func() time.Time) {
	a.now = now
}

// InFlight reports whether a session is active, gating other components.
func (a *Animator) InFlight() bool {
	return a.session != nil
}

// ActiveSession returns the in-flight session, or nil.
func (a *Animator) ActiveSession() *Session {
	return a.session
}

// Play starts the animation lifecycle for a candidate. Rejections are
// silent: the common cause is double input during an accepted animation, so
// callers treat false as "ignore input" rather than an error to surface.
func (a *Animator) Play(c types.MoveCandidate) bool {
	if a.session != nil {
		log.Debug("Rejecting play of %s: animation already in flight", c.CardID)
		return false
	}
	if a.source.Position() == nil {
		log.Debug("Rejecting play of %s: pawn position unknown", c.CardID)
		return false
	}
	if !a.cardIsLive(c) {
		log.Debug("Rejecting play of %s: candidate is stale", c.CardID)
		return false
	}

	now := a.now()
	dest := c.Destination
	a.session = &Session{
		ID:        uuid.NewString(),
		Candidate: c,
		StartedAt: now,
		CommitAt:  now.Add(a.travel),
	}

	a.surface.SetAnimationTarget(&dest)
	a.surface.HideCard(c.CardID)
	if a.onAccept != nil {
		a.onAccept()
	}
	a.surface.PlayFeedback()

	log.Debug("Animation %s started: card %s to %s", a.session.ID, c.CardID, dest)
	return true
}

// cardIsLive re-validates a candidate against the live hand: the card must
// still be the top of its stack.
func (a *Animator) cardIsLive(c types.MoveCandidate) bool {
	for _, slot := range a.source.Hand() {
		if slot.StackID != c.StackID {
			continue
		}
		return slot.Top != nil && slot.Top.ID == c.CardID
	}
	return false
}

// Tick commits the pending move once the travel phase has elapsed. Called
// once per update tick with the current time.
func (a *Animator) Tick(now time.Time) {
	if a.session == nil || now.Before(a.session.CommitAt) {
		return
	}

	s := a.session
	a.session = nil

	if err := a.source.ApplyMove(s.Candidate); err != nil {
		// The candidate went stale mid-flight and the state rejected it.
		// The session is already gone; nothing else to unwind.
		log.Warn("Animation %s commit rejected: %v", s.ID, err)
	}

	a.surface.ShowCard(s.Candidate.CardID)
	a.surface.SetAnimationTarget(nil)
	log.Debug("Animation %s committed", s.ID)
}

// HandChanged force-clears the session if the animating card is no longer
// among the live top cards, rather than leaving it dangling.
func (a *Animator) HandChanged(slots []types.HandSlot) {
	if a.session == nil {
		return
	}
	for _, slot := range slots {
		if slot.Top != nil && slot.Top.ID == a.session.Candidate.CardID {
			return
		}
	}
	log.Warn("Animating card %s disappeared from the hand, clearing session", a.session.Candidate.CardID)
	a.ForceClear()
}

// ForceClear cancels the in-flight session without committing. The pending
// commit dies with the session.
func (a *Animator) ForceClear() {
	if a.session == nil {
		return
	}
	s := a.session
	a.session = nil
	a.surface.ShowCard(s.Candidate.CardID)
	a.surface.SetAnimationTarget(nil)
	log.Debug("Animation %s force-cleared", s.ID)
}
