package game

import (
	"fmt"
	"math/rand"
	"time"

	"blackjack/internal/cards"
)

// DeckSource supplies the deck for each new round.
type DeckSource func() *cards.Deck

// ShuffledDecks returns a DeckSource that builds a fresh 52-card deck and
// shuffles it with r. r must only be used from one goroutine.
func ShuffledDecks(r *rand.Rand) DeckSource {
	return func() *cards.Deck {
		deck := cards.Build()
		deck.Shuffle(r)
		return deck
	}
}

type Option func(*Table)

// WithDeckSource replaces the shuffled deck used for every round.
func WithDeckSource(src DeckSource) Option {
	return func(t *Table) {
		t.newDeck = src
	}
}

// WithRand shuffles decks with r instead of a time-seeded source.
func WithRand(r *rand.Rand) Option {
	return WithDeckSource(ShuffledDecks(r))
}

// Table holds the rules of play. It carries no game state of its own: every
// call to Step maps a state and an input event to the next state.
type Table struct {
	newDeck DeckSource
}

func NewTable(opts ...Option) *Table {
	t := &Table{
		newDeck: ShuffledDecks(rand.New(rand.NewSource(time.Now().UnixNano()))),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Step applies ev to state and returns the resulting state. The input state is
// left untouched. Events that mean nothing in the current phase are ignored.
// The only error is running out of cards, which leaves no playable round.
func (t *Table) Step(state State, ev Event) (State, error) {
	next := state.clone()

	if next.Round == nil {
		if ev != EventStart {
			return next, nil
		}
		round, err := t.Deal()
		if err != nil {
			return state, err
		}
		next.Session.Started = true
		next.Round = round
		return next, nil
	}

	switch next.Round.Phase {
	case PhasePlayerTurn:
		if err := playerStep(next.Round, ev); err != nil {
			return state, err
		}
	case PhaseDealerTurn:
		if err := dealerStep(&next); err != nil {
			return state, err
		}
	case PhaseOver:
		switch ev {
		case EventNextRound:
			round, err := t.Deal()
			if err != nil {
				return state, err
			}
			next.Round = round
		case EventQuit:
			next.Session = Session{}
			next.Round = nil
		}
	}

	return next, nil
}

// Deal starts a round from a fresh deck, alternating player and dealer until
// both hold two cards.
func (t *Table) Deal() (*Round, error) {
	round := &Round{
		Deck:  t.newDeck(),
		Phase: PhasePlayerTurn,
	}

	for i := 0; i < 2; i++ {
		if err := draw(round.Deck, &round.Player); err != nil {
			return nil, fmt.Errorf("deal player: %w", err)
		}
		if err := draw(round.Deck, &round.Dealer); err != nil {
			return nil, fmt.Errorf("deal dealer: %w", err)
		}
	}

	return round, nil
}

func playerStep(r *Round, ev Event) error {
	switch ev {
	case EventHit:
		if err := draw(r.Deck, &r.Player); err != nil {
			return fmt.Errorf("player hit: %w", err)
		}
		if r.Player.Busted() {
			r.finish(OutcomePlayerBust)
		}
	case EventStand:
		r.Phase = PhaseDealerTurn
		r.Message = MsgDealerTurn
	}
	return nil
}

// dealerStep draws at most one card per call so each draw can be rendered.
func dealerStep(s *State) error {
	r := s.Round
	dealer := r.Dealer.Value()

	if dealer < DealerStandsAt {
		if err := draw(r.Deck, &r.Dealer); err != nil {
			return fmt.Errorf("dealer hit: %w", err)
		}
		return nil
	}

	player := r.Player.Value()
	switch {
	case dealer > cards.BlackjackLimit || dealer < player:
		r.finish(OutcomePlayerWins)
		s.Session.Wins++
	case dealer > player:
		r.finish(OutcomeDealerWins)
	default:
		r.finish(OutcomeTie)
	}
	return nil
}

func (r *Round) finish(o Outcome) {
	r.Phase = PhaseOver
	r.Outcome = o
	switch o {
	case OutcomePlayerBust:
		r.Message = MsgPlayerBust
	case OutcomePlayerWins:
		r.Message = MsgPlayerWins
	case OutcomeDealerWins:
		r.Message = MsgDealerWins
	case OutcomeTie:
		r.Message = MsgTie
	}
}

func draw(d *cards.Deck, h *cards.Hand) error {
	c, err := d.Draw()
	if err != nil {
		return err
	}
	h.Add(c)
	return nil
}
