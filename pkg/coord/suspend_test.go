package coord

import (
	"testing"

	"github.com/deckstride/deckstride/pkg/board/types"
	"github.com/stretchr/testify/assert"
)

func newPlayingSuspender(clock *fakeClock) *Suspender {
	s := NewSuspender(clock)
	s.SetPhase(types.PhasePlaying)
	return s
}

func TestSuspender_PauseOnFirstReasonOnly(t *testing.T) {
	clock := &fakeClock{}
	s := newPlayingSuspender(clock)

	s.SetReason(ReasonMenuOpen, true)
	s.SetReason(ReasonBackgrounded, true)
	s.SetReason(ReasonMenuOpen, true) // re-adding is a no-op

	assert.Equal(t, []string{"pause"}, clock.commands)
	assert.True(t, s.Suspended())
}

func TestSuspender_ResumeRequiresEmptySet(t *testing.T) {
	clock := &fakeClock{}
	s := newPlayingSuspender(clock)

	s.SetReason(ReasonMenuOpen, true)
	s.SetReason(ReasonBackgrounded, true)

	// Clearing one reason must not resume while the other is active.
	s.SetReason(ReasonMenuOpen, false)
	assert.Equal(t, []string{"pause"}, clock.commands)

	s.SetReason(ReasonBackgrounded, false)
	assert.Equal(t, []string{"pause", "resume"}, clock.commands)
	assert.False(t, s.Suspended())
}

func TestSuspender_RemovingAbsentReasonIsNoop(t *testing.T) {
	clock := &fakeClock{}
	s := newPlayingSuspender(clock)

	s.SetReason(ReasonMenuOpen, false)
	assert.Empty(t, clock.commands)
}

func TestSuspender_PhaseGatesCommands(t *testing.T) {
	clock := &fakeClock{}
	s := NewSuspender(clock)
	s.SetPhase(types.PhaseTransitionPause)

	// Reasons are always recorded, but no commands are issued while the
	// phase is not playable.
	s.SetReason(ReasonLoadingOverlay, true)
	s.SetReason(ReasonLoadingOverlay, false)
	assert.Empty(t, clock.commands)

	s.SetPhase(types.PhasePlaying)
	s.SetReason(ReasonLoadingOverlay, true)
	assert.Equal(t, []string{"pause"}, clock.commands)

	// Resume is withheld when the phase left playable before the set drained.
	s.SetPhase(types.PhaseCleared)
	s.SetReason(ReasonLoadingOverlay, false)
	assert.Equal(t, []string{"pause"}, clock.commands)
}

func TestSuspender_TeardownClearsAllReasons(t *testing.T) {
	clock := &fakeClock{}
	s := newPlayingSuspender(clock)

	s.SetReason(ReasonMenuOpen, true)
	s.SetReason(ReasonBackgrounded, true)
	s.Teardown()
	assert.False(t, s.Suspended())

	// A fresh cycle pauses and resumes cleanly, proving no residual reasons
	// survived the teardown.
	clock.commands = nil
	s.SetReason(ReasonLoadingOverlay, true)
	s.SetReason(ReasonLoadingOverlay, false)
	assert.Equal(t, []string{"pause", "resume"}, clock.commands)
}

func TestSuspender_TeardownOnEmptySetIsNoop(t *testing.T) {
	clock := &fakeClock{}
	s := newPlayingSuspender(clock)
	s.Teardown()
	assert.Empty(t, clock.commands)
}

func TestSuspender_ActiveReasonsStableOrder(t *testing.T) {
	clock := &fakeClock{}
	s := newPlayingSuspender(clock)
	s.SetReason(ReasonMenuOpen, true)
	s.SetReason(ReasonBackgrounded, true)
	s.SetReason(ReasonLoadingOverlay, true)
	assert.Equal(t, []ReasonTag{ReasonBackgrounded, ReasonLoadingOverlay, ReasonMenuOpen}, s.ActiveReasons())
}
