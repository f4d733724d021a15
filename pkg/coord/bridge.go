package coord

import (
	"time"

	"github.com/deckstride/deckstride/pkg/board/types"
	"github.com/deckstride/deckstride/pkg/log"
	"github.com/deckstride/deckstride/pkg/queue"
)

// Bridge is the composition root of the coordination layer. It owns the
// components, subscribes them to the state-change event queue and dispatches
// every drained event to them in a fixed order:
//
//	hand changed:     animator invalidation, highlight refresh, stale
//	                  selection drop
//	position changed: highlight refresh
//	board changed:    highlight refresh
//	phase changed:    suspender phase, highlight refresh
//	move resolved:    the registered move-resolution hook
//
// Drain runs on the update tick, so handlers execute atomically with respect
// to each other; the animator tick runs first so a due commit lands before
// this tick's events are interpreted.
type Bridge struct {
	events    queue.Queue
	engine    *HighlightEngine
	animator  *Animator
	resolver  *TapResolver
	suspender *Suspender

	onMoveResolved func(types.MoveOutcome)
}

type NewBridgeOptions struct {
	Events       queue.Queue
	Source       StateSource
	Surface      RenderSurface
	Clock        GameClock
	GuideEnabled bool
}

func NewBridge(opts NewBridgeOptions) *Bridge {
	engine := NewHighlightEngine(opts.Source, opts.Surface, opts.GuideEnabled)
	animator := NewAnimator(opts.Source, opts.Surface)
	animator.SetOnAccept(engine.ClearForcedSelection)
	resolver := NewTapResolver(opts.Source, animator, engine, opts.Surface)

	return &Bridge{
		events:    opts.Events,
		engine:    engine,
		animator:  animator,
		resolver:  resolver,
		suspender: NewSuspender(opts.Clock),
	}
}

func (b *Bridge) Highlights() *HighlightEngine { return b.engine }
func (b *Bridge) Animator() *Animator          { return b.animator }
func (b *Bridge) Resolver() *TapResolver       { return b.resolver }
func (b *Bridge) Suspender() *Suspender        { return b.suspender }

// SetOnMoveResolved registers the hook that decides the post-move effect
// (a warp flash instead of a plain landing).
func (b *Bridge) SetOnMoveResolved(fn func(types.MoveOutcome)) {
	b.onMoveResolved = fn
}

// Drain advances the animation lifecycle and dispatches all pending events.
func (b *Bridge) Drain(now time.Time) {
	b.animator.Tick(now)

	for _, item := range b.events.ReadAllMessages() {
		switch e := item.(type) {
		case types.HandChangedEvent:
			b.animator.HandChanged(e.Slots)
			b.engine.Refresh(RefreshOptions{Hand: e.Slots})
			b.resolver.DropStaleSelection(e.Slots)
		case types.PositionChangedEvent:
			b.engine.Refresh(RefreshOptions{Position: e.Position, PositionSet: true})
		case types.BoardChangedEvent:
			b.engine.Refresh(RefreshOptions{})
		case types.PhaseChangedEvent:
			b.suspender.SetPhase(e.Phase)
			phase := e.Phase
			b.engine.Refresh(RefreshOptions{Phase: &phase})
		case types.MoveResolvedEvent:
			if b.onMoveResolved != nil {
				b.onMoveResolved(e.Outcome)
			}
		default:
			log.Warn("Dropping unexpected event type %T", item)
		}
	}
}

// Teardown drains the suspension reasons and cancels any in-flight
// animation; called on session reset and return to menu.
func (b *Bridge) Teardown() {
	b.animator.ForceClear()
	b.resolver.ClearSelection()
	b.suspender.Teardown()
	b.events.ClearQueue()
}
