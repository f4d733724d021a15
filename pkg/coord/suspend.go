package coord

import (
	"sort"

	"github.com/deckstride/deckstride/pkg/board/types"
	"github.com/deckstride/deckstride/pkg/log"
)

// ReasonTag names one independent cause for suspending the clock. Each
// reason is set and cleared only by the event source that owns it.
type ReasonTag string

const (
	ReasonMenuOpen       ReasonTag = "menuOpen"
	ReasonBackgrounded   ReasonTag = "backgrounded"
	ReasonLoadingOverlay ReasonTag = "loadingOverlay"
)

// Suspender coordinates the clock suspension reasons. Pause is issued on the
// empty-to-non-empty transition of the reason set and resume on the
// non-empty-to-empty transition, both only while the phase is playable.
// Resume is never issued while any reason remains active, so clearing one
// reason cannot mask another.
type Suspender struct {
	clock   GameClock
	phase   types.Phase
	reasons map[ReasonTag]struct{}
}

func NewSuspender(clock GameClock) *Suspender {
	return &Suspender{
		clock:   clock,
		phase:   types.PhaseAwaitingStart,
		reasons: make(map[ReasonTag]struct{}),
	}
}

// SetPhase records the external phase. The phase only gates whether pause
// and resume commands are issued; it is not itself a reason.
func (s *Suspender) SetPhase(phase types.Phase) {
	s.phase = phase
}

// SetReason adds or removes one suspension reason. Re-adding a present
// reason and removing an absent one are no-ops.
func (s *Suspender) SetReason(tag ReasonTag, active bool) {
	if active {
		if _, ok := s.reasons[tag]; ok {
			return
		}
		wasEmpty := len(s.reasons) == 0
		s.reasons[tag] = struct{}{}
		if wasEmpty && s.phase.Playable() {
			log.Debug("Pausing clock: reason %s", tag)
			s.clock.Pause()
		}
		return
	}

	if _, ok := s.reasons[tag]; !ok {
		return
	}
	delete(s.reasons, tag)
	if len(s.reasons) == 0 && s.phase.Playable() {
		log.Debug("Resuming clock: last reason %s cleared", tag)
		s.clock.Resume()
	}
}

// Suspended reports whether any reason is active.
func (s *Suspender) Suspended() bool {
	return len(s.reasons) > 0
}

// ActiveReasons returns the active reasons in stable order, for overlays
// and logs.
func (s *Suspender) ActiveReasons() []ReasonTag {
	tags := make([]ReasonTag, 0, len(s.reasons))
	for tag := range s.reasons {
		tags = append(tags, tag)
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i] < tags[j] })
	return tags
}

// Teardown force-clears every reason unconditionally so a future session
// never inherits a stuck-paused clock. If reasons were active and the phase
// is playable the clock resumes, completing the cycle.
func (s *Suspender) Teardown() {
	if len(s.reasons) == 0 {
		return
	}
	log.Debug("Teardown clearing suspension reasons: %v", s.ActiveReasons())
	s.reasons = make(map[ReasonTag]struct{})
	if s.phase.Playable() {
		s.clock.Resume()
	}
}
