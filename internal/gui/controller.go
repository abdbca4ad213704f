package gui

import (
	"context"
	"sync"
	"time"

	"blackjack/internal/cards"
	"blackjack/internal/debug"
	"blackjack/internal/game"
)

const (
	DefaultFPS         = 60
	DefaultDealerDelay = 400 * time.Millisecond
	inputBufferSize    = 32
)

// Renderer draws one frame of display data.
type Renderer interface {
	Render(snap game.Snapshot)
}

type ControllerConfig struct {
	FPS         int
	DealerDelay time.Duration
}

func DefaultControllerConfig() ControllerConfig {
	return ControllerConfig{
		FPS:         DefaultFPS,
		DealerDelay: DefaultDealerDelay,
	}
}

// Controller runs the frame loop. The loop goroutine is the only owner of the
// game state; input arrives through Send and display data leaves through the
// Renderer.
type Controller struct {
	table    *game.Table
	renderer Renderer
	logger   debug.Logger
	events   debug.EventPublisher
	timing   debug.TimingTracker
	config   ControllerConfig

	input chan game.Event
	state game.State

	lastDealerStep time.Time
	roundSpan      debug.Span

	mu       sync.Mutex
	running  bool
	stop     chan struct{}
	stopOnce sync.Once
	done     chan struct{}
}

func NewController(table *game.Table, renderer Renderer, debugCoord debug.Coordinator, config ControllerConfig) *Controller {
	if config.FPS <= 0 {
		config.FPS = DefaultFPS
	}
	if config.DealerDelay < 0 {
		config.DealerDelay = 0
	}

	return &Controller{
		table:    table,
		renderer: renderer,
		logger:   debugCoord.Logger(),
		events:   debugCoord.EventPublisher(),
		timing:   debugCoord.TimingTracker(),
		config:   config,
		input:    make(chan game.Event, inputBufferSize),
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Send queues an input event for the next frame. It never blocks; when the
// queue is full the event is dropped.
func (c *Controller) Send(ev game.Event) {
	select {
	case c.input <- ev:
	default:
		c.logger.Warning("Controller", "input queue full, event dropped", map[string]interface{}{
			"event": ev.String(),
		})
	}
}

// Run blocks until ctx is cancelled, Shutdown is called, or a step fails.
// A failed step is returned; there is no way to continue the round.
func (c *Controller) Run(ctx context.Context) error {
	c.mu.Lock()
	c.running = true
	c.mu.Unlock()
	defer close(c.done)

	ticker := time.NewTicker(time.Second / time.Duration(c.config.FPS))
	defer ticker.Stop()

	c.logger.Info("Controller", "frame loop started", map[string]interface{}{
		"fps":          c.config.FPS,
		"dealer_delay": c.config.DealerDelay.String(),
	})
	c.renderer.Render(game.TakeSnapshot(c.state))

	for {
		select {
		case <-ctx.Done():
			c.logger.Info("Controller", "frame loop stopped", nil)
			return nil
		case <-c.stop:
			c.logger.Info("Controller", "frame loop stopped", nil)
			return nil
		case now := <-ticker.C:
			if err := c.frame(now); err != nil {
				c.logger.Error("Controller", err, map[string]interface{}{
					"wins": c.state.Session.Wins,
				})
				return err
			}
		}
	}
}

// frame advances the game by at most one step.
func (c *Controller) frame(now time.Time) error {
	prev := c.state
	dealerTurn := prev.Round != nil && prev.Round.Phase == game.PhaseDealerTurn

	ev := game.EventTick
	if dealerTurn {
		// input is meaningless while the dealer plays; leave it queued
		if now.Sub(c.lastDealerStep) < c.config.DealerDelay {
			return nil
		}
		c.lastDealerStep = now
	} else {
		select {
		case ev = <-c.input:
		default:
		}
	}

	if ev == game.EventTick && !dealerTurn {
		return nil
	}

	next, err := c.table.Step(prev, ev)
	if err != nil {
		return err
	}
	c.state = next

	if next.Round != nil && next.Round.Phase == game.PhaseDealerTurn && !dealerTurn {
		c.lastDealerStep = now
	}

	c.publish(prev, next, ev)
	c.renderer.Render(game.TakeSnapshot(next))
	return nil
}

func (c *Controller) publish(prev, next game.State, ev game.Event) {
	switch {
	case next.Round == nil && prev.Round != nil:
		c.endRoundTiming()
		c.events.Publish(debug.Event{Type: debug.EventSessionReset, Data: map[string]interface{}{
			"wins": prev.Session.Wins,
		}})
		c.logger.Info("Controller", "session reset", nil)
		return
	case next.Round == nil:
		return
	case prev.Round == nil || (prev.Round.Over() && ev == game.EventNextRound):
		c.endRoundTiming()
		c.roundSpan = c.timing.Start("round")
		c.events.Publish(debug.Event{Type: debug.EventRoundStarted, Data: map[string]interface{}{
			"wins":      next.Session.Wins,
			"deck_size": next.Round.Deck.Len(),
		}})
		return
	}

	r, p := next.Round, prev.Round
	if n := r.Player.Len(); n > p.Player.Len() {
		c.cardDrawn("player", r.Player.Cards[n-1], n)
	}
	if n := r.Dealer.Len(); n > p.Dealer.Len() {
		c.cardDrawn("dealer", r.Dealer.Cards[n-1], n)
	}

	if r.Over() && !p.Over() {
		var duration time.Duration
		if c.roundSpan != nil {
			duration = c.roundSpan.End()
			c.roundSpan = nil
		}
		fields := map[string]interface{}{
			"outcome":      r.Outcome.String(),
			"player_value": r.Player.Value(),
			"dealer_value": r.Dealer.Value(),
			"wins":         next.Session.Wins,
			"duration":     duration.String(),
		}
		c.events.Publish(debug.Event{Type: debug.EventRoundOver, Data: fields})
		c.logger.Info("Controller", r.Message, fields)
	}
}

func (c *Controller) cardDrawn(side string, card cards.Card, count int) {
	c.events.Publish(debug.Event{Type: debug.EventCardDrawn, Data: map[string]interface{}{
		"side":  side,
		"card":  card.String(),
		"cards": count,
	}})
}

func (c *Controller) endRoundTiming() {
	if c.roundSpan != nil {
		c.roundSpan.End()
		c.roundSpan = nil
	}
}

// State returns the current game state. Only call it when the loop is not
// running.
func (c *Controller) State() game.State {
	return c.state
}

// Shutdown stops the loop and waits for it to exit.
func (c *Controller) Shutdown() {
	c.stopOnce.Do(func() { close(c.stop) })

	c.mu.Lock()
	running := c.running
	c.mu.Unlock()
	if running {
		<-c.done
	}
}
