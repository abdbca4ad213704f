package game

import "blackjack/internal/cards"

// DealerStandsAt is the total at which the dealer stops drawing.
const DealerStandsAt = 17

const (
	MsgPlayerBust = "You busted! Dealer wins."
	MsgDealerTurn = "Dealer's turn..."
	MsgPlayerWins = "You win!"
	MsgDealerWins = "Dealer wins!"
	MsgTie        = "It's a tie!"
)

type Phase int

const (
	PhasePlayerTurn Phase = iota
	PhaseDealerTurn
	PhaseOver
)

func (p Phase) String() string {
	switch p {
	case PhasePlayerTurn:
		return "player_turn"
	case PhaseDealerTurn:
		return "dealer_turn"
	case PhaseOver:
		return "over"
	default:
		return "unknown"
	}
}

type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomePlayerBust
	OutcomePlayerWins
	OutcomeDealerWins
	OutcomeTie
)

func (o Outcome) String() string {
	switch o {
	case OutcomePlayerBust:
		return "player_bust"
	case OutcomePlayerWins:
		return "player_wins"
	case OutcomeDealerWins:
		return "dealer_wins"
	case OutcomeTie:
		return "tie"
	default:
		return "none"
	}
}

// Round is the state of a single deal. It is replaced, never reset, when a
// new round starts.
type Round struct {
	Deck    *cards.Deck
	Player  cards.Hand
	Dealer  cards.Hand
	Phase   Phase
	Outcome Outcome
	Message string
}

func (r *Round) PlayerTurn() bool { return r.Phase == PhasePlayerTurn }

func (r *Round) Over() bool { return r.Phase == PhaseOver }

// CardsInPlay counts every card of the round: deck plus both hands.
func (r *Round) CardsInPlay() int {
	return r.Deck.Len() + r.Player.Len() + r.Dealer.Len()
}

func (r *Round) clone() *Round {
	c := *r
	c.Deck = r.Deck.Clone()
	c.Player = r.Player.Clone()
	c.Dealer = r.Dealer.Clone()
	return &c
}

// Session persists across rounds within one run.
type Session struct {
	Wins    int
	Started bool
}

// State is everything the frame loop owns. Round is nil while the menu is
// shown.
type State struct {
	Session Session
	Round   *Round
}

func (s State) clone() State {
	if s.Round != nil {
		s.Round = s.Round.clone()
	}
	return s
}

type Event int

const (
	EventTick Event = iota
	EventStart
	EventHit
	EventStand
	EventNextRound
	EventQuit
)

func (e Event) String() string {
	switch e {
	case EventTick:
		return "tick"
	case EventStart:
		return "start"
	case EventHit:
		return "hit"
	case EventStand:
		return "stand"
	case EventNextRound:
		return "next_round"
	case EventQuit:
		return "quit"
	default:
		return "unknown"
	}
}
